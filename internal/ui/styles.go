package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Signal styles
	Good    lipgloss.Style // desirable question types, passing gates
	Bad     lipgloss.Style // anti-patterns, undesirable types
	Warning lipgloss.Style
	Accent  lipgloss.Style // suggestions
	Muted   lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Label     lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconGood       string
	IconBad        string
	IconWarning    string
	IconSuggestion string
	IconPrompt     string
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output).
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		// Signal colors: green, red, yellow, cyan, gray
		s.Good = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		s.Bad = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconGood = "✓"
		s.IconBad = "✗"
		s.IconWarning = "⚠"
		s.IconSuggestion = "\U0001f4a1" // light bulb
		s.IconPrompt = "▶"
	} else {
		s.Good = lipgloss.NewStyle()
		s.Bad = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Accent = lipgloss.NewStyle()
		s.Muted = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconGood = "OK:"
		s.IconBad = "BAD:"
		s.IconWarning = "WARN:"
		s.IconSuggestion = "HINT:"
		s.IconPrompt = "PROMPT:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
