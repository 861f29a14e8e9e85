package parse

import (
	"strings"

	"github.com/vanderheijden86/structree/pkg/model"
)

// rootSentinelLevel marks an un-prefixed first-line root on the nesting
// stack. It is lower than any real level, so every subsequent line nests
// under the root.
const rootSentinelLevel = -1

// continuationWidth is the cell width of one continuation block ("│   " or
// four spaces), i.e. one nesting level that names no node itself.
const continuationWidth = 4

// parseASCII builds a forest from a box-drawing tree.
//
// Each line is scanned from the start, consuming continuation blocks (a
// vertical bar padded to four cells, or four blanks) and counting one
// nesting level per block, until a branch ("├── ") or corner ("└── ")
// connector is found; the remainder of the line is the name. Lines with no
// connector are skipped, with one exception: a bare "name/" as the very
// first line becomes an implicit root that everything below nests under.
func parseASCII(sanitized string, ids model.IDGenerator) []*model.Node {
	var forest []*model.Node
	var stack levelStack

	for i, line := range strings.Split(sanitized, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		rest, level, found := scanPrefix(line)
		if !found {
			trimmed := strings.TrimSpace(line)
			if i == 0 && strings.HasSuffix(trimmed, "/") {
				name, kind := splitName(trimmed)
				if name == "" {
					continue
				}
				root := newNode(ids, name, kind, nil)
				forest = append(forest, root)
				stack = stack.push(root, rootSentinelLevel)
			}
			continue
		}

		name, kind := splitName(rest)
		if name == "" {
			continue
		}

		var parent *model.Node
		parent, stack = stack.resolveParent(level)

		node := newNode(ids, name, kind, parent)
		if parent != nil {
			parent.Children = append(parent.Children, node)
		} else {
			forest = append(forest, node)
		}

		if node.IsFolder() {
			stack = stack.push(node, level)
		}
	}

	normalizeDepths(forest)
	return forest
}

// scanPrefix consumes the box-drawing prefix of a line. It returns the text
// after the connector, the number of continuation blocks consumed (the
// line's nesting level), and whether a connector was found at all.
func scanPrefix(line string) (rest string, level int, found bool) {
	rest = line
	for {
		switch {
		case strings.HasPrefix(rest, "├"), strings.HasPrefix(rest, "└"):
			// Branch or corner connector: the item marker. Consume the
			// glyph, the horizontal run, and one separating space; the
			// remainder is the name.
			rest = rest[len("├"):]
			rest = strings.TrimLeft(rest, "─")
			rest = strings.TrimPrefix(rest, " ")
			return rest, level, true

		case strings.HasPrefix(rest, "│"):
			// Vertical continuation: one ancestor level, no item here.
			rest = trimSpaces(rest[len("│"):], continuationWidth-1)
			level++

		case strings.HasPrefix(rest, strings.Repeat(" ", continuationWidth)):
			// Blank continuation under a corner connector.
			rest = rest[continuationWidth:]
			level++

		default:
			return "", 0, false
		}
	}
}

// trimSpaces strips up to max leading spaces.
func trimSpaces(s string, max int) string {
	for i := 0; i < max && strings.HasPrefix(s, " "); i++ {
		s = s[1:]
	}
	return s
}
