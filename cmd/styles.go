package cmd

import (
	"io"
	"os"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Icons used in command output
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// theme holds the styles used across commands. The plain theme renders text
// unchanged.
type theme struct {
	Header    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Muted     lipgloss.Style
	Bold      lipgloss.Style
	Highlight lipgloss.Style
	Key       lipgloss.Style
}

func newTheme(color bool) theme {
	if !color {
		plain := lipgloss.NewStyle()
		return theme{
			Header:    plain,
			Success:   plain,
			Error:     plain,
			Warning:   plain,
			Muted:     plain,
			Bold:      plain,
			Highlight: plain,
			Key:       plain,
		}
	}
	return theme{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Muted:     lipgloss.NewStyle().Faint(true),
		Bold:      lipgloss.NewStyle().Bold(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B")).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(lipgloss.Color("#6272A4")).
			Padding(0, 1),
	}
}

// useColor decides whether styled output goes to w.
func useColor(mode config.ColorMode, noColor bool, w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
