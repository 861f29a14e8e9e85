package render

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/structree/pkg/model"
	"github.com/vanderheijden86/structree/pkg/parse"
)

func parseFixture(t *testing.T, in string) []*model.Node {
	t.Helper()
	forest, err := parse.Parse(in, model.NewSequentialIDs("t"))
	if err != nil {
		t.Fatalf("fixture parse failed: %v", err)
	}
	return forest
}

// TestASCIISingleRoot verifies the conventional bare-header layout
func TestASCIISingleRoot(t *testing.T) {
	forest := parseFixture(t, "- project/\n  - src/\n    - index.ts\n  - package.json")

	want := "project/\n" +
		"├── src/\n" +
		"│   └── index.ts\n" +
		"└── package.json\n"

	if got := ASCII(forest); got != want {
		t.Errorf("ASCII() =\n%s\nwant:\n%s", got, want)
	}
}

// TestASCIIMultiRoot verifies multiple roots keep connectors so the output
// stays parseable
func TestASCIIMultiRoot(t *testing.T) {
	forest := parseFixture(t, "- a.txt\n- b/\n  - c.txt")

	want := "├── a.txt\n" +
		"└── b/\n" +
		"    └── c.txt\n"

	if got := ASCII(forest); got != want {
		t.Errorf("ASCII() =\n%s\nwant:\n%s", got, want)
	}
}

// TestMarkdown verifies bullets and indentation
func TestMarkdown(t *testing.T) {
	forest := parseFixture(t, "project/\n├── src/\n│   └── index.ts\n└── readme.md")

	want := "- project/\n" +
		"  - src/\n" +
		"    - index.ts\n" +
		"  - readme.md\n"

	if got := Markdown(forest, 2); got != want {
		t.Errorf("Markdown() =\n%s\nwant:\n%s", got, want)
	}
}

// TestMarkdownCustomIndent verifies the spaces-per-level width is honored
func TestMarkdownCustomIndent(t *testing.T) {
	forest := parseFixture(t, "- a/\n  - b.txt")

	want := "- a/\n    - b.txt\n"
	if got := Markdown(forest, 4); got != want {
		t.Errorf("Markdown(4) =\n%s\nwant:\n%s", got, want)
	}

	// Non-positive width falls back to the default.
	if got := Markdown(forest, 0); got != "- a/\n  - b.txt\n" {
		t.Errorf("Markdown(0) =\n%s", got)
	}
}

// TestJSONRoundTrip verifies the JSON form preserves ids, kinds, and
// nesting
func TestJSONRoundTrip(t *testing.T) {
	forest := parseFixture(t, "- src/\n  - index.ts")

	data, err := JSON(forest)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var back []*model.Node
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if len(back) != 1 || back[0].Name != "src" || back[0].Kind != model.KindFolder {
		t.Errorf("unexpected round-trip root: %+v", back[0])
	}
	if back[0].Children[0].Name != "index.ts" || back[0].Children[0].Kind != model.KindFile {
		t.Errorf("unexpected round-trip child: %+v", back[0].Children[0])
	}
}

// TestASCIIRoundTrip verifies rendering and reparsing preserves the shape
func TestASCIIRoundTrip(t *testing.T) {
	inputs := []string{
		"- project/\n  - src/\n    - app/\n      - main.go\n  - go.mod",
		"- a.txt",
		"- a/\n- b/\n  - c.txt\n- d.txt",
	}

	for _, in := range inputs {
		orig := parseFixture(t, in)
		back, err := parse.Parse(ASCII(orig), model.NewSequentialIDs("b"))
		if err != nil {
			t.Fatalf("reparse of %q failed: %v", in, err)
		}
		if got, want := shape(back), shape(orig); got != want {
			t.Errorf("round trip changed shape for %q:\n%s\nwant:\n%s", in, got, want)
		}
	}
}

// TestMarkdownRoundTrip verifies the markdown renderer against its parser
func TestMarkdownRoundTrip(t *testing.T) {
	orig := parseFixture(t, "project/\n├── src/\n│   ├── a.go\n│   └── b.go\n└── doc/")
	back, err := parse.Parse(Markdown(orig, 2), model.NewSequentialIDs("b"))
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if got, want := shape(back), shape(orig); got != want {
		t.Errorf("round trip changed shape:\n%s\nwant:\n%s", got, want)
	}
}

// shape fingerprints names, kinds, and depths in traversal order.
func shape(forest []*model.Node) string {
	var sb strings.Builder
	model.Walk(forest, func(n *model.Node) bool {
		sb.WriteString(strings.Repeat(">", n.Depth))
		sb.WriteString(n.Name)
		sb.WriteString(":")
		sb.WriteString(n.Kind.String())
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}
