package update

import (
	"fmt"

	"github.com/sandeepkv93/todod/internal/views"
)

const helpMarkdown = `**Rows** show a checkbox, the title, an edit button and a delete button.

- Editing: *enter* or *ctrl+e* saves, *esc* cancels. A blank title is not saved.
- Palette: ` + "`add <title>`, `done <n>`, `undone <n>`, `toggle <n>`, `rename <n> <title>`, `delete <n>`, `clear`" + `
`

type KeyBinding struct {
	Key    string
	Action string
}

func renderedHelpMarkdown() string {
	return views.RenderMarkdown(helpMarkdown)
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.contextBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		Markdown: m.helpMarkdown,
		HelpView: m.helpModel.View(m.Keys),
	})
}

// contextBindings lists the keys that act on the control that currently has
// focus.
func (m Model) contextBindings() []KeyBinding {
	switch {
	case m.Palette.Active:
		return []KeyBinding{
			{Key: "enter", Action: "run command"},
			{Key: "esc", Action: "close palette"},
		}
	case m.Mode == RowModeEditing:
		return []KeyBinding{
			{Key: "enter / ctrl+e", Action: "save title"},
			{Key: "esc", Action: "cancel edit"},
		}
	case m.Focus == FocusAdd:
		return []KeyBinding{
			{Key: "enter", Action: "add task"},
			{Key: "esc / tab", Action: "go to list"},
		}
	default:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space/x", Action: "toggle done"},
			{Key: "e", Action: "edit title"},
			{Key: "d", Action: "delete task"},
			{Key: "a", Action: "new task"},
			{Key: "/", Action: "command palette"},
		}
	}
}
