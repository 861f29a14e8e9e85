// Package render serializes a forest back to text. The ascii and markdown
// renderers are inverses of the parsers in pkg/parse: rendering a parsed
// forest and parsing it again yields the same shape.
package render

import (
	"strings"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/structree/pkg/model"
)

// DefaultIndent is the markdown indentation width per nesting level.
const DefaultIndent = 2

// ASCII renders the forest as a box-drawing tree.
//
// A forest with a single folder root is rendered in the conventional layout
// with a bare "name/" header line; otherwise every root gets a connector so
// the output stays inside the grammar the parser accepts.
func ASCII(forest []*model.Node) string {
	var sb strings.Builder

	if len(forest) == 1 && forest[0].IsFolder() {
		root := forest[0]
		sb.WriteString(label(root))
		sb.WriteString("\n")
		writeBranches(&sb, root.Children, "")
		return sb.String()
	}

	writeBranches(&sb, forest, "")
	return sb.String()
}

// writeBranches renders one sibling run with the given ancestor prefix.
func writeBranches(sb *strings.Builder, nodes []*model.Node, prefix string) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		connector := "├── "
		if last {
			connector = "└── "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(label(n))
		sb.WriteString("\n")

		if n.IsFolder() {
			childPrefix := prefix + "│   "
			if last {
				childPrefix = prefix + "    "
			}
			writeBranches(sb, n.Children, childPrefix)
		}
	}
}

// Markdown renders the forest as an indented bullet list with the given
// spaces-per-level width (DefaultIndent if width is not positive).
func Markdown(forest []*model.Node, indent int) string {
	if indent <= 0 {
		indent = DefaultIndent
	}
	var sb strings.Builder
	var walk func(nodes []*model.Node, depth int)
	walk = func(nodes []*model.Node, depth int) {
		for _, n := range nodes {
			sb.WriteString(strings.Repeat(" ", depth*indent))
			sb.WriteString("- ")
			sb.WriteString(label(n))
			sb.WriteString("\n")
			walk(n.Children, depth+1)
		}
	}
	walk(forest, 0)
	return sb.String()
}

// JSON renders the forest as indented JSON.
func JSON(forest []*model.Node) ([]byte, error) {
	return json.MarshalIndent(forest, "", "  ")
}

// label returns the display form of a node name: folders carry the trailing
// slash the grammars use as the kind marker.
func label(n *model.Node) string {
	if n.IsFolder() {
		return n.Name + "/"
	}
	return n.Name
}
