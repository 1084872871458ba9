package colorscheme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 5
)

// TerminalDetector infers the preference from the terminal background color.
// It only answers when stdout is a terminal that can be queried.
type TerminalDetector struct {
	isTerminal        func() bool
	hasDarkBackground func() bool
}

// NewTerminalDetector creates a terminal background detector.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{
		isTerminal: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		hasDarkBackground: lipgloss.HasDarkBackground,
	}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string { return detectorNameTerminal }

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int { return priorityTerminal }

// Available implements port.ColorSchemeDetector.
func (d *TerminalDetector) Available() bool {
	return d.isTerminal()
}

// Detect implements port.ColorSchemeDetector.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	if !d.isTerminal() {
		return false, false
	}
	return d.hasDarkBackground(), true
}
