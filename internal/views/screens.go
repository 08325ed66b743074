package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	PencilIcon = "✎"
	CheckIcon  = "✓"
	DeleteIcon = "🗑"

	EditLabel   = "Edit"
	SaveLabel   = "Save"
	DeleteLabel = "Delete"
	AddLabel    = "Add"
)

var (
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// RowData describes one task row. When Editing is set, EditView replaces the
// title.
type RowData struct {
	Position  int
	ID        string
	Title     string
	Completed bool
	Selected  bool
	Editing   bool
	EditView  string
}

type TaskListData struct {
	Rows         []RowData
	AddInputView string
	AddFocused   bool
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
	Markdown string
}

// RenderTaskList draws every row in list order followed by the add row.
func RenderTaskList(data TaskListData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if len(data.Rows) == 0 {
		b.WriteString("  (no tasks yet)\n")
	}
	for _, row := range data.Rows {
		b.WriteString(RenderRow(row))
		b.WriteString("\n")
	}
	b.WriteString(RenderAddRow(data.AddInputView, data.AddFocused))
	return b.String()
}

func RenderRow(row RowData) string {
	cursor := " "
	if row.Selected {
		cursor = cursorStyle.Render(">")
	}
	title := row.Title
	if row.Completed {
		title = completedStyle.Render(title)
	}
	if row.Editing {
		title = row.EditView
	}
	return fmt.Sprintf("%s %2d. %s %s  %s %s",
		cursor,
		row.Position,
		Checkbox(row.Completed),
		title,
		EditButton(row.Editing),
		DeleteButton(),
	)
}

func RenderAddRow(inputView string, focused bool) string {
	cursor := " "
	if focused {
		cursor = cursorStyle.Render(">")
	}
	return fmt.Sprintf("%s %s  [+ %s]", cursor, inputView, AddLabel)
}

func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// EditButton shows the pencil while a row is at rest and the check while it
// is being edited.
func EditButton(editing bool) string {
	if editing {
		return fmt.Sprintf("[%s %s]", CheckIcon, SaveLabel)
	}
	return fmt.Sprintf("[%s %s]", PencilIcon, EditLabel)
}

func DeleteButton() string {
	return fmt.Sprintf("[%s %s]", DeleteIcon, DeleteLabel)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", inputView)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	b.WriteString(strings.Join(data.Bindings, "\n"))
	if data.Markdown != "" {
		b.WriteString("\n\n")
		b.WriteString(data.Markdown)
	}
	if data.HelpView != "" {
		b.WriteString("\n\n")
		b.WriteString(data.HelpView)
	}
	return b.String()
}

func RenderFooter(year int, keys string) string {
	return fmt.Sprintf("© %d todod | %s", year, keys)
}
