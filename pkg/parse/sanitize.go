package parse

import (
	"strings"
	"unicode"
)

// commentMarker starts a comment. A line whose trimmed form starts with the
// marker is dropped wholesale; otherwise everything from the first marker
// onward is stripped.
const commentMarker = "#"

// Sanitize strips comment lines, inline comments, and decoration-only lines
// from raw input. Surviving lines keep their original indentation and are
// joined with newlines. Never fails; worst case is the empty string.
func Sanitize(raw string) string {
	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, commentMarker) {
			continue
		}
		if i := strings.Index(line, commentMarker); i >= 0 {
			line = line[:i]
		}
		if !hasContent(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// hasContent reports whether a line carries anything beyond decoration.
// Decoration is whitespace, box-drawing glyphs, and similar filler: we
// require at least one alphanumeric rune, path separator, hyphen, or period.
func hasContent(line string) bool {
	for _, r := range line {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
		switch r {
		case '/', '\\', '-', '.':
			return true
		}
	}
	return false
}
