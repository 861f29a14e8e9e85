package parse

import "github.com/vanderheijden86/structree/pkg/model"

// stackEntry is one open folder on the nesting stack, keyed by the value the
// grammar uses for nesting: raw indent width for markdown, connector-derived
// level for ASCII.
type stackEntry struct {
	node  *model.Node
	level int
}

// levelStack resolves parent/child nesting for both parsers. Entries are
// open folders ordered outermost to innermost.
type levelStack []stackEntry

// resolveParent pops entries whose recorded level is >= the current line's
// level and returns the node the line should attach under (nil means forest
// root) along with the popped stack. Comparing recorded keys rather than
// depths lets inconsistent-but-monotonic indentation still nest correctly.
func (s levelStack) resolveParent(level int) (*model.Node, levelStack) {
	for len(s) > 0 && s[len(s)-1].level >= level {
		s = s[:len(s)-1]
	}
	if len(s) == 0 {
		return nil, s
	}
	return s[len(s)-1].node, s
}

// push records a newly opened folder at the given level.
func (s levelStack) push(n *model.Node, level int) levelStack {
	return append(s, stackEntry{node: n, level: level})
}
