package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Every color used by the CLI is named here.
var (
	// ColorCyan is used for identifiable nouns: module slugs, field names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for warnings printed outside the logger.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleWarning styles inline warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// Styles groups the styles used by the renderers in this package.
type Styles struct {
	Bold   lipgloss.Style
	Muted  lipgloss.Style
	Noun   lipgloss.Style
	Header lipgloss.Style
	Border lipgloss.Style
}

// GetStyles returns the default styles.
func GetStyles() *Styles {
	return &Styles{
		Bold:   lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(ColorDimGray),
		Noun:   StyleNoun,
		Header: lipgloss.NewStyle().Bold(true).Foreground(ColorBlue),
		Border: lipgloss.NewStyle().Foreground(ColorDimGray),
	}
}

// FormatCheckmark renders a green checkmark followed by msg.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatNoun renders s in the noun style.
func FormatNoun(s string) string {
	return StyleNoun.Render(s)
}
