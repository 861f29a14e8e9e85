package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// truncate limits a string to max visual cells, appending an ellipsis when
// cut. Uses go-runewidth so wide characters count correctly.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 1 {
		return runewidth.Truncate(s, max, "")
	}
	return runewidth.Truncate(s, max-1, "") + "…"
}

// keyMatches reports whether the message matches the binding.
func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}

// trimName normalizes user input for a rename: surrounding whitespace and a
// stray trailing slash (the folder marker is derived from kind, not typed).
func trimName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/")
	return strings.TrimSpace(s)
}
