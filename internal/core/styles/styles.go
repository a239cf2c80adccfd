// Package styles provides shared lipgloss styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Text styles, rebuilt by SetTheme.
var (
	TextPrimaryBoldStyle    lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style
)

// Task status styles, rebuilt by SetTheme.
var (
	StatusTodoStyle       lipgloss.Style
	StatusInProgressStyle lipgloss.Style
	StatusDoneStyle       lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	StatusTodoStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	StatusInProgressStyle = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
	StatusDoneStyle = lipgloss.NewStyle().Foreground(p.Success)
}

// StatusStyle returns the style for a task status label. Unknown values get
// an unstyled renderer.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "todo":
		return StatusTodoStyle
	case "in-progress":
		return StatusInProgressStyle
	case "done":
		return StatusDoneStyle
	default:
		return lipgloss.NewStyle()
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
