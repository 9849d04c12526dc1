package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

var colorModeNames = map[ColorMode]string{
	ColorAuto:   "auto",
	ColorAlways: "always",
	ColorNever:  "never",
}

func (c ColorMode) String() string {
	return colorModeNames[c]
}

// Set implements pflag.Value.
func (c *ColorMode) Set(s string) error {
	for mode, name := range colorModeNames {
		if name == s {
			*c = mode
			return nil
		}
	}
	return errors.New("must be one of auto, always, never")
}

// Type implements pflag.Value.
func (c *ColorMode) Type() string {
	return "when"
}

// Config holds all configuration for a minigrep search.
type Config struct {
	Query      string
	Filename   string
	IgnoreCase bool
	Color      ColorMode
	Debug      bool
}

// CaseSensitive reports whether the query must match case exactly.
func (c Config) CaseSensitive() bool {
	return !c.IgnoreCase
}

// bindFlags registers the minigrep flags on fs, storing values into cfg.
func bindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "match the query regardless of case")
	fs.Var(&cfg.Color, "color", "when to highlight matches: auto, always, never")
	fs.BoolVar(&cfg.Debug, "debug", false, "log debug information to stderr")
}

// setPositional assigns the non-flag arguments: the first is the query,
// the second is the filename.
func (c *Config) setPositional(args []string) error {
	switch len(args) {
	case 0:
		return &ArgumentError{Msg: "missing query and filename"}
	case 1:
		return &ArgumentError{Msg: "missing filename"}
	case 2:
		c.Query, c.Filename = args[0], args[1]
		return nil
	default:
		return &ArgumentError{Msg: fmt.Sprintf("unexpected argument %q", args[2])}
	}
}
