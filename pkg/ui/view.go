package ui

import (
	"fmt"
	"strings"

	"github.com/vanderheijden86/structree/pkg/model"
)

// chrome line counts used to size the tree window.
const (
	headerLines = 2 // title bar + blank
	footerLines = 2 // status + help bar
)

// View renders the full frame.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.viewHeader())
	sb.WriteString("\n\n")

	switch m.focus {
	case focusHelp:
		sb.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
		sb.WriteString("\n")
	default:
		sb.WriteString(m.viewTree())
	}

	sb.WriteString(m.viewFooter())
	return sb.String()
}

func (m Model) viewHeader() string {
	title := m.theme.Header.Render("structree")
	src := m.sourcePath
	if src == "" {
		src = "(stdin)"
	}
	info := m.theme.StatusBar.Render(fmt.Sprintf(" %s · %d nodes", src, model.Count(m.state.Forest)))
	return title + info
}

// viewTree renders the visible window of flattened rows.
func (m Model) viewTree() string {
	if len(m.flat) == 0 {
		return m.theme.StatusBar.Render("  (empty tree)") + "\n"
	}

	visible := m.treeHeight()
	end := m.offset + visible
	if end > len(m.flat) {
		end = len(m.flat)
	}

	var sb strings.Builder
	for i := m.offset; i < end; i++ {
		sb.WriteString(m.viewRow(m.flat[i], i == m.cursor))
		sb.WriteString("\n")
	}
	return sb.String()
}

// viewRow renders one node line: indentation, expand marker, name.
func (m Model) viewRow(n *model.Node, selected bool) string {
	indent := strings.Repeat("  ", n.Depth)

	marker := "  "
	if n.IsFolder() {
		if n.Expanded {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	name := n.Name
	if n.IsFolder() {
		name += "/"
	}

	if selected && m.focus == focusRename && n.ID == m.renameID {
		return indent + marker + m.renameInput.View()
	}

	nameStyle := m.theme.FileName
	if n.IsFolder() {
		nameStyle = m.theme.FolderName
	}

	line := indent + m.theme.Connector.Render(marker) + nameStyle.Render(name)
	if selected {
		width := m.width - 2
		if width < 0 {
			width = 0
		}
		return m.theme.Selected.Render(truncate(indent+marker+name, width))
	}
	return truncate(line, m.width)
}

func (m Model) viewFooter() string {
	var sb strings.Builder

	switch m.focus {
	case focusConfirmDelete:
		n := m.state.Find(m.deleteID)
		label := m.deleteID
		if n != nil {
			label = n.Name
			if n.IsFolder() {
				label += "/ (and its subtree)"
			}
		}
		sb.WriteString(m.theme.Prompt.Render(fmt.Sprintf("delete %s? (y/n)", label)))
		sb.WriteString("\n")
	default:
		status := m.status
		style := m.theme.StatusBar
		if m.statusIsErr {
			style = m.theme.StatusError
		}
		if status != "" {
			sb.WriteString(style.Render(status))
		}
		sb.WriteString("\n")
	}

	bindings := m.keys.ShortHelp()
	if m.compact {
		bindings = m.keys.CompactHelp()
	}
	sb.WriteString(m.theme.HelpBar.Render(m.help.ShortHelpView(bindings)))
	return sb.String()
}

// treeHeight is the number of rows available for the tree window.
func (m Model) treeHeight() int {
	h := m.height - headerLines - footerLines
	if h <= 0 {
		// No measured size yet (tests, first frame): show everything.
		return len(m.flat) + 1
	}
	return h
}
