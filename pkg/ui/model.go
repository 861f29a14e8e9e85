// Package ui is the interactive tree editor. It is a thin collaborator over
// pkg/state: every edit is dispatched as a state action and the view renders
// the resulting snapshot, so all structural logic stays in the engine.
package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/structree/pkg/config"
	"github.com/vanderheijden86/structree/pkg/debug"
	"github.com/vanderheijden86/structree/pkg/model"
	"github.com/vanderheijden86/structree/pkg/parse"
	"github.com/vanderheijden86/structree/pkg/render"
	"github.com/vanderheijden86/structree/pkg/state"
)

// focus represents which UI element has keyboard focus.
type focus int

const (
	focusTree focus = iota
	focusRename
	focusConfirmDelete
	focusHelp
)

// statusTimeout is how long a transient status message stays visible.
const statusTimeout = 3 * time.Second

// Model is the bubbletea model for the editor.
type Model struct {
	state  state.State
	flat   []*model.Node // visible nodes, depth-first, collapsed subtrees omitted
	cursor int
	offset int // index of first visible row

	width  int
	height int

	theme Theme
	keys  keyMap
	help  help.Model
	focus focus

	renameInput textinput.Model
	renameID    string
	deleteID    string

	status      string
	statusIsErr bool

	sourcePath string
	indent     int
	compact    bool
	ids        model.IDGenerator
	changes    <-chan struct{} // watcher channel; nil when not watching
}

// Messages.
type (
	fileChangedMsg struct{}
	reloadedMsg    struct {
		forest []*model.Node
		err    error
	}
	clearStatusMsg struct{ at time.Time }
)

// NewModel builds the editor around an already-parsed forest.
func NewModel(forest []*model.Node, sourcePath string, ids model.IDGenerator, cfg config.Config) Model {
	ti := textinput.New()
	ti.CharLimit = 255

	m := Model{
		theme:       DefaultTheme(lipgloss.NewRenderer(os.Stdout)),
		keys:        defaultKeyMap(),
		help:        help.New(),
		renameInput: ti,
		sourcePath:  sourcePath,
		indent:      cfg.Indent,
		compact:     cfg.UI.CompactHelp,
		ids:         ids,
	}
	m.state = state.Apply(state.State{}, state.ReplaceForest{Forest: forest})
	m.rebuildFlat()
	m.syncSelection()
	return m
}

// WithChanges wires a watcher change channel into the model. Each receive
// triggers a reparse of the source file.
func (m Model) WithChanges(ch <-chan struct{}) Model {
	m.changes = ch
	return m
}

// Init starts the watch loop when a change channel is wired.
func (m Model) Init() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return waitForChange(m.changes)
}

// waitForChange blocks on the watcher channel and surfaces a change message.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return fileChangedMsg{}
	}
}

// reloadFile re-reads and re-parses the source document off the update loop.
func reloadFile(path string, ids model.IDGenerator) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return reloadedMsg{err: fmt.Errorf("reading %s: %w", path, err)}
		}
		forest, err := parse.Parse(string(data), ids)
		return reloadedMsg{forest: forest, err: err}
	}
}

func expireStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(t time.Time) tea.Msg {
		return clearStatusMsg{at: t}
	})
}

// Update handles messages and keeps the snapshot, flat list, and cursor
// consistent.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureCursorVisible()
		return m, nil

	case fileChangedMsg:
		debug.Log("ui: source file changed, reparsing %s", m.sourcePath)
		return m, tea.Batch(reloadFile(m.sourcePath, m.ids), waitForChange(m.changes))

	case reloadedMsg:
		if msg.err != nil {
			return m.setStatus(msg.err.Error(), true)
		}
		m.dispatch(state.ReplaceForest{Forest: msg.forest})
		m.cursor = 0
		m.offset = 0
		m.syncSelection()
		return m.setStatus("reloaded from "+m.sourcePath, false)

	case clearStatusMsg:
		m.status = ""
		m.statusIsErr = false
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case focusRename:
			return m.updateRename(msg)
		case focusConfirmDelete:
			return m.updateConfirmDelete(msg)
		case focusHelp:
			m.focus = focusTree
			return m, nil
		default:
			return m.updateTree(msg)
		}
	}

	return m, nil
}

// updateTree handles keys while the tree has focus.
func (m Model) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Quit):
		return m, tea.Quit

	case keyMatches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case keyMatches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case keyMatches(msg, m.keys.Top):
		m.cursor = 0
		m.ensureCursorVisible()
		m.syncSelection()
		return m, nil

	case keyMatches(msg, m.keys.Bottom):
		m.cursor = len(m.flat) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.ensureCursorVisible()
		m.syncSelection()
		return m, nil

	case keyMatches(msg, m.keys.Toggle):
		if n := m.current(); n != nil {
			m.dispatch(state.ToggleExpand{ID: n.ID})
			m.clampCursor()
		}
		return m, nil

	case keyMatches(msg, m.keys.Rename):
		if n := m.current(); n != nil {
			m.renameID = n.ID
			m.renameInput.SetValue(n.Name)
			m.renameInput.CursorEnd()
			m.renameInput.Focus()
			m.focus = focusRename
		}
		return m, nil

	case keyMatches(msg, m.keys.Delete):
		if n := m.current(); n != nil {
			m.deleteID = n.ID
			m.focus = focusConfirmDelete
		}
		return m, nil

	case keyMatches(msg, m.keys.Copy):
		text := render.ASCII(m.state.Forest)
		if err := clipboard.WriteAll(text); err != nil {
			return m.setStatus("clipboard: "+err.Error(), true)
		}
		return m.setStatus("copied tree to clipboard", false)

	case keyMatches(msg, m.keys.Help):
		m.focus = focusHelp
		return m, nil
	}

	return m, nil
}

// updateRename handles keys while the rename prompt is open. Empty names are
// rejected here; the engine itself accepts any name, so validation has to
// happen before dispatch.
func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.focus = focusTree
		m.renameID = ""
		return m, nil

	case tea.KeyEnter:
		name := trimName(m.renameInput.Value())
		if name == "" {
			return m.setStatus("name cannot be empty", true)
		}
		m.dispatch(state.Rename{ID: m.renameID, Name: name})
		m.focus = focusTree
		m.renameID = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

// updateConfirmDelete handles the y/n confirmation for a pending delete.
func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		id := m.deleteID
		m.deleteID = ""
		m.focus = focusTree
		m.dispatch(state.Delete{ID: id})
		m.clampCursor()
		m.syncSelection()
		return m, nil

	case "n", "N", "esc", "q":
		m.deleteID = ""
		m.focus = focusTree
		return m, nil
	}
	return m, nil
}

// dispatch applies one action to the engine and rebuilds the visible list.
func (m *Model) dispatch(a state.Action) {
	m.state = state.Apply(m.state, a)
	m.rebuildFlat()
}

// rebuildFlat recomputes the visible rows: every root, plus the children of
// expanded folders, in source order.
func (m *Model) rebuildFlat() {
	m.flat = m.flat[:0]
	var walk func(nodes []*model.Node)
	walk = func(nodes []*model.Node) {
		for _, n := range nodes {
			m.flat = append(m.flat, n)
			if n.IsFolder() && n.Expanded {
				walk(n.Children)
			}
		}
	}
	walk(m.state.Forest)
}

// current returns the node under the cursor, or nil for an empty tree.
func (m *Model) current() *model.Node {
	if m.cursor < 0 || m.cursor >= len(m.flat) {
		return nil
	}
	return m.flat[m.cursor]
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.syncSelection()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// syncSelection mirrors the cursor into the engine's selection so external
// readers of the snapshot see the same selected node the view highlights.
func (m *Model) syncSelection() {
	id := ""
	if n := m.current(); n != nil {
		id = n.ID
	}
	m.state = state.Apply(m.state, state.Select{ID: id})
}

func (m *Model) ensureCursorVisible() {
	visible := m.treeHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) setStatus(s string, isErr bool) (tea.Model, tea.Cmd) {
	m.status = s
	m.statusIsErr = isErr
	return m, expireStatus()
}

// State exposes the current snapshot for tests and embedding callers.
func (m Model) State() state.State {
	return m.state
}

// VisibleCount returns the number of rows in the flat list.
func (m Model) VisibleCount() int {
	return len(m.flat)
}
