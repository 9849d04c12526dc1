package cli

import (
	"errors"
	"io"

	"github.com/spf13/pflag"
)

// Parse builds a Config from command-line arguments (without the program
// name). Flags may appear before, between or after the query and filename.
func Parse(args []string) (Config, error) {
	var cfg Config
	fs := newFlagSet(&cfg)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, &ArgumentError{Msg: err.Error()}
	}
	if err := cfg.setPositional(fs.Args()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// newFlagSet returns a quiet flag set with the minigrep flags bound to cfg.
func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("minigrep", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	bindFlags(fs, cfg)
	return fs
}
