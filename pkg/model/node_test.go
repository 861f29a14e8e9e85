package model

import "testing"

func sampleForest() []*Node {
	return []*Node{
		{
			ID: "1", Name: "src", Kind: KindFolder, Expanded: true,
			Children: []*Node{
				{ID: "2", Name: "main.go", Kind: KindFile, Depth: 1},
				{
					ID: "3", Name: "util", Kind: KindFolder, Expanded: true, Depth: 1,
					Children: []*Node{
						{ID: "4", Name: "io.go", Kind: KindFile, Depth: 2},
					},
				},
			},
		},
		{ID: "5", Name: "go.mod", Kind: KindFile},
	}
}

// TestWalkOrder verifies depth-first source-order traversal
func TestWalkOrder(t *testing.T) {
	var got []string
	Walk(sampleForest(), func(n *Node) bool {
		got = append(got, n.ID)
		return true
	})

	want := []string{"1", "2", "3", "4", "5"}
	if len(got) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

// TestWalkEarlyStop verifies returning false halts the traversal
func TestWalkEarlyStop(t *testing.T) {
	count := 0
	Walk(sampleForest(), func(n *Node) bool {
		count++
		return n.ID != "3"
	})
	if count != 3 {
		t.Errorf("visited %d nodes, want 3", count)
	}
}

// TestFindByID covers hit, nested hit, and miss
func TestFindByID(t *testing.T) {
	forest := sampleForest()

	if n := FindByID(forest, "4"); n == nil || n.Name != "io.go" {
		t.Errorf("FindByID(4) = %+v", n)
	}
	if n := FindByID(forest, "5"); n == nil || n.Name != "go.mod" {
		t.Errorf("FindByID(5) = %+v", n)
	}
	if n := FindByID(forest, "nope"); n != nil {
		t.Errorf("FindByID(nope) = %+v, want nil", n)
	}
}

// TestCloneIsDeep verifies mutations on a clone never reach the original
func TestCloneIsDeep(t *testing.T) {
	forest := sampleForest()
	clone := CloneForest(forest)

	clone[0].Name = "changed"
	clone[0].Children[0].Name = "changed.go"
	clone[0].Children[1].Children[0].Expanded = true

	if forest[0].Name != "src" {
		t.Error("root name leaked into original")
	}
	if forest[0].Children[0].Name != "main.go" {
		t.Error("child name leaked into original")
	}
	if forest[0].Children[1].Children[0].Expanded {
		t.Error("grandchild flag leaked into original")
	}
}

// TestCount verifies the whole-forest node count
func TestCount(t *testing.T) {
	if got := Count(sampleForest()); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if got := Count(nil); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
}

// TestSequentialIDs verifies deterministic ordering and distinctness
func TestSequentialIDs(t *testing.T) {
	g := NewSequentialIDs("x")
	if a, b := g.NewID(), g.NewID(); a != "x-1" || b != "x-2" {
		t.Errorf("ids = %s, %s", a, b)
	}
}

// TestUUIDGeneratorDistinct verifies consecutive ids differ
func TestUUIDGeneratorDistinct(t *testing.T) {
	g := UUIDGenerator{}
	if g.NewID() == g.NewID() {
		t.Error("uuid generator returned equal ids")
	}
}

// TestKindJSON verifies the string encoding both ways
func TestKindJSON(t *testing.T) {
	data, err := KindFolder.MarshalJSON()
	if err != nil || string(data) != `"folder"` {
		t.Errorf("MarshalJSON = %s, %v", data, err)
	}

	var k Kind
	if err := k.UnmarshalJSON([]byte(`"file"`)); err != nil || k != KindFile {
		t.Errorf("UnmarshalJSON = %v, %v", k, err)
	}
	if err := k.UnmarshalJSON([]byte(`"dir"`)); err == nil {
		t.Error("expected error for unknown kind")
	}
}
