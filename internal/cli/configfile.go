package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// LoadConfigArgs reads the minigrep config file and returns parsed arguments.
// Config file location: MINIGREP_CONFIG_PATH env var, or ~/.minigrep.
// Format: one flag per line, # comments, empty lines ignored. A flag and its
// value may be split by whitespace ("--color never") or joined with "=".
// Each line must be a complete flag on its own: lines that fail to parse, or
// that would supply a query or filename, are skipped so they can never
// consume arguments from the command line. Returns nil if no config file found.
func LoadConfigArgs() []string {
	path := os.Getenv("MINIGREP_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".minigrep")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var args []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if !isCompleteFlag(fields) {
			continue
		}
		args = append(args, fields...)
	}
	return args
}

// isCompleteFlag reports whether fields parse as flags alone, with every
// value present and no positional left over.
func isCompleteFlag(fields []string) bool {
	if !strings.HasPrefix(fields[0], "-") {
		return false
	}
	fs := newFlagSet(&Config{})
	if err := fs.Parse(fields); err != nil {
		return false
	}
	return fs.NArg() == 0 && fs.ArgsLenAtDash() < 0
}
