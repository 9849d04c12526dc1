package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for output formatting.
type Styles struct {
	Match lipgloss.Style
}

// NewStyles creates the default color styles.
// The renderer is pinned to the ANSI profile: whether to color at all is
// decided by the caller, not by probing the environment.
func NewStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return Styles{
		Match: r.NewStyle().
			Foreground(lipgloss.Color("1")). // bold red
			Bold(true).
			TabWidth(lipgloss.NoTabConversion),
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Match: lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion),
	}
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
