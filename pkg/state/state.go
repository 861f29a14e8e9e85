// Package state is the edit engine over a parsed forest.
//
// It is a pure state machine: Apply(state, action) returns a new snapshot
// and never mutates the old one, so a renderer holding the previous snapshot
// never observes a half-applied edit. Actions are applied strictly in
// dispatch order; unknown ids are no-ops, not errors.
package state

import "github.com/vanderheijden86/structree/pkg/model"

// State is one immutable snapshot of the edit session: the forest plus the
// current selection (empty SelectedID means nothing selected).
type State struct {
	Forest     []*model.Node
	SelectedID string
}

// Action is the tagged union of edit operations. Adding nodes is reserved
// for a future revision; the engine currently only transforms structures
// produced by the parsers.
type Action interface {
	isAction()
}

// ReplaceForest swaps in a freshly parsed forest. Selection is cleared
// because node identities changed wholesale.
type ReplaceForest struct {
	Forest []*model.Node
}

// ToggleExpand flips the expanded flag on a folder. A miss, or an id that
// belongs to a file, is a no-op.
type ToggleExpand struct {
	ID string
}

// Rename sets a node's display name regardless of kind. The engine does not
// reject empty names; validating input is the dispatcher's job.
type Rename struct {
	ID   string
	Name string
}

// Delete removes a node and its entire subtree from wherever it occurs.
type Delete struct {
	ID string
}

// Select sets the selection unconditionally, with no existence check.
// An empty ID clears the selection.
type Select struct {
	ID string
}

func (ReplaceForest) isAction() {}
func (ToggleExpand) isAction()  {}
func (Rename) isAction()        {}
func (Delete) isAction()        {}
func (Select) isAction()        {}

// Apply produces the successor snapshot for one action. It is total and
// synchronous: every action yields a valid state, and the input state is
// left untouched.
func Apply(s State, a Action) State {
	switch act := a.(type) {
	case ReplaceForest:
		return State{Forest: act.Forest}

	case ToggleExpand:
		return State{
			Forest:     mapForest(s.Forest, act.ID, toggleExpand),
			SelectedID: s.SelectedID,
		}

	case Rename:
		return State{
			Forest: mapForest(s.Forest, act.ID, func(n *model.Node) {
				n.Name = act.Name
			}),
			SelectedID: s.SelectedID,
		}

	case Delete:
		next := State{
			Forest:     deleteNode(s.Forest, act.ID),
			SelectedID: s.SelectedID,
		}
		if s.SelectedID == act.ID {
			next.SelectedID = ""
		}
		return next

	case Select:
		return State{Forest: s.Forest, SelectedID: act.ID}

	default:
		return s
	}
}

// Find is the read-only lookup over the current forest.
func (s State) Find(id string) *model.Node {
	return model.FindByID(s.Forest, id)
}

func toggleExpand(n *model.Node) {
	if n.IsFolder() {
		n.Expanded = !n.Expanded
	}
}

// mapForest rebuilds the forest with fn applied to the unique node matching
// id. Untouched subtrees are still deep-copied: snapshots share nothing, so
// an old snapshot can be read safely while a new one is built.
func mapForest(forest []*model.Node, id string, fn func(*model.Node)) []*model.Node {
	out := model.CloneForest(forest)
	if n := model.FindByID(out, id); n != nil {
		fn(n)
	}
	return out
}

// deleteNode rebuilds the forest without the matching node or its subtree.
func deleteNode(forest []*model.Node, id string) []*model.Node {
	var rebuild func(nodes []*model.Node) []*model.Node
	rebuild = func(nodes []*model.Node) []*model.Node {
		if nodes == nil {
			return nil
		}
		out := make([]*model.Node, 0, len(nodes))
		for _, n := range nodes {
			if n.ID == id {
				continue
			}
			c := *n
			c.Children = rebuild(n.Children)
			out = append(out, &c)
		}
		return out
	}
	return rebuild(forest)
}
