package parse

import (
	"strings"
	"unicode"

	"github.com/vanderheijden86/structree/pkg/model"
)

// parseMarkdown builds a forest from an indented bullet list.
//
// Nesting is resolved by raw indent width, not by the conventional
// two-spaces-per-level depth: before a line is attached, open folders with a
// recorded indent >= the line's indent are popped, so documents with uneven
// but monotonic indentation still nest correctly. Odd widths (3-space
// indents) fold into the nearest level rather than being rejected.
//
// Lines without a leading "-" are accepted as a fallback using the same
// trimming rule, to tolerate minor format drift. A trailing "/" marks a
// folder and is stripped from the stored name. Lines that leave an empty
// name are skipped, never fatal.
func parseMarkdown(sanitized string, ids model.IDGenerator) []*model.Node {
	var forest []*model.Node
	var stack levelStack

	for _, line := range strings.Split(sanitized, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		w := indentWidth(line)
		name, kind := splitName(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if name == "" {
			continue
		}

		var parent *model.Node
		parent, stack = stack.resolveParent(w)

		node := newNode(ids, name, kind, parent)
		if parent != nil {
			parent.Children = append(parent.Children, node)
		} else {
			forest = append(forest, node)
		}

		if node.IsFolder() {
			stack = stack.push(node, w)
		}
	}

	normalizeDepths(forest)
	return forest
}

// indentWidth counts leading whitespace runes. Tabs count as one; the stack
// comparison in resolveParent only needs relative ordering, not exact cells.
func indentWidth(line string) int {
	w := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		w++
	}
	return w
}

// splitName trims the raw name text and strips the trailing "/" folder
// marker. Returns the stored name and the node kind.
func splitName(raw string) (string, model.Kind) {
	name := strings.TrimSpace(raw)
	if strings.HasSuffix(name, "/") {
		return strings.TrimSpace(strings.TrimSuffix(name, "/")), model.KindFolder
	}
	return name, model.KindFile
}

// newNode mints a node under the given parent. Folders get a non-nil (empty)
// Children slice and start expanded.
func newNode(ids model.IDGenerator, name string, kind model.Kind, parent *model.Node) *model.Node {
	depth := 0
	if parent != nil {
		depth = parent.Depth + 1
	}
	n := &model.Node{
		ID:    ids.NewID(),
		Name:  name,
		Kind:  kind,
		Depth: depth,
	}
	if kind == model.KindFolder {
		n.Children = []*model.Node{}
		n.Expanded = true
	}
	return n
}

// normalizeDepths is the post-parse pass that restores the depth invariant:
// roots at 0, each child exactly one deeper than its parent. The builders
// assign depth from the attachment parent so this is usually a no-op, but it
// also corrects the single-rooted-folder case where the root consumed the
// top level of the source layout.
func normalizeDepths(forest []*model.Node) {
	var walk func(nodes []*model.Node, depth int)
	walk = func(nodes []*model.Node, depth int) {
		for _, n := range nodes {
			n.Depth = depth
			walk(n.Children, depth+1)
		}
	}
	walk(forest, 0)
}
