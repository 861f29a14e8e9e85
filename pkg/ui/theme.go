package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the adaptive colors and precomputed styles used by the tree
// view. Styles are built against an explicit renderer so tests can render
// without a TTY.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor

	Folder lipgloss.AdaptiveColor
	File   lipgloss.AdaptiveColor

	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor

	Base        lipgloss.Style
	Selected    lipgloss.Style
	Header      lipgloss.Style
	FolderName  lipgloss.Style
	FileName    lipgloss.Style
	Connector   lipgloss.Style
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	HelpBar     lipgloss.Style
	Prompt      lipgloss.Style
}

// DefaultTheme returns the standard Dracula-flavored theme with light-mode
// equivalents chosen for contrast.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}, // Purple
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}, // Gray
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"}, // Dim

		Folder: lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#8BE9FD"}, // Blue/cyan
		File:   lipgloss.AdaptiveColor{Light: "#222222", Dark: "#F8F8F2"}, // Plain text

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
		Error:     lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F8F8F2"})

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		PaddingLeft(1).
		Bold(true)

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true).
		Padding(0, 1)

	t.FolderName = r.NewStyle().Foreground(t.Folder).Bold(true)
	t.FileName = r.NewStyle().Foreground(t.File)
	t.Connector = r.NewStyle().Foreground(t.Muted)

	t.StatusBar = r.NewStyle().Foreground(t.Subtext)
	t.StatusError = r.NewStyle().Foreground(t.Error).Bold(true)
	t.HelpBar = r.NewStyle().Foreground(t.Muted)
	t.Prompt = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)

	return t
}
