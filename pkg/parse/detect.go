package parse

import "strings"

// Format classifies sanitized input.
type Format int

const (
	FormatUnknown Format = iota
	FormatMarkdown
	FormatASCII
)

// String returns a short label for logs and error messages.
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatASCII:
		return "ascii"
	default:
		return "unknown"
	}
}

// boxGlyphs are the box-drawing characters used by the ASCII tree grammar.
// One occurrence anywhere routes the whole document to the ASCII parser.
const boxGlyphs = "├└│─"

// detectRule is one entry in the ordered classification list. Rules are
// evaluated top to bottom; the first match wins. New formats slot in without
// disturbing the existing order.
type detectRule struct {
	name    string
	matches func(sanitized string) bool
	format  Format
}

var detectRules = []detectRule{
	{
		// Even one box glyph means ASCII, regardless of bullet markers
		// elsewhere in the document.
		name:    "box-drawing glyph",
		matches: func(s string) bool { return strings.ContainsAny(s, boxGlyphs) },
		format:  FormatASCII,
	},
	{
		name:    "bullet marker",
		matches: anyLine(func(l string) bool { return strings.HasPrefix(l, "-") }),
		format:  FormatMarkdown,
	},
	{
		// Permissive fallback: bare lines are an implicit single-item list.
		name:    "bare line",
		matches: anyLine(func(l string) bool { return l != "" }),
		format:  FormatMarkdown,
	},
}

// Detect classifies sanitized input by running the ordered rule list.
func Detect(sanitized string) Format {
	for _, rule := range detectRules {
		if rule.matches(sanitized) {
			return rule.format
		}
	}
	return FormatUnknown
}

// anyLine lifts a trimmed-line predicate to a whole-document predicate.
func anyLine(pred func(trimmed string) bool) func(string) bool {
	return func(s string) bool {
		for _, line := range strings.Split(s, "\n") {
			if pred(strings.TrimSpace(line)) {
				return true
			}
		}
		return false
	}
}
