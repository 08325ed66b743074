package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todod/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(typed, m.Keys.ForceQuit) {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Mode == RowModeEditing {
			return m.handleEditKey(typed)
		}
		if m.Focus == FocusAdd {
			return m.handleAddKey(typed)
		}
		return m.handleListKey(typed)
	case tea.WindowSizeMsg:
		m.panelWidth = panelWidthFor(typed.Width, m.HelpVisible)
		m.helpModel.Width = typed.Width
		return m, nil
	case ReloadMsg:
		m.render()
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.log.Error("app error", "err", typed.Err)
			m.fail(typed.Err)
		}
		return m, nil
	}

	return m, nil
}

// Enter and Esc are consumed here and never reach the text input.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Submit), key.Matches(msg, m.Keys.Save):
		m.finishEdit(true)
		return m, nil
	case key.Matches(msg, m.Keys.Cancel):
		m.finishEdit(false)
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.addTask()
		return m, nil
	case "esc", "tab", "down":
		m.focusList()
		return m, nil
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case key.Matches(msg, m.Keys.Palette):
		m.openPalette()
		return m, nil
	case key.Matches(msg, m.Keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor >= len(m.Tasks)-1 {
			m.focusAdd()
			return m, nil
		}
		m.moveCursor(1)
	case key.Matches(msg, m.Keys.Toggle):
		m.toggleSelected()
	case key.Matches(msg, m.Keys.Edit):
		if task, ok := m.SelectedTask(); ok {
			m.startEdit(task.ID)
		}
	case key.Matches(msg, m.Keys.Delete):
		m.deleteSelected()
	case key.Matches(msg, m.Keys.AddFocus):
		m.focusAdd()
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := views.RenderTaskList(m.taskListData())
	if palette := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()); palette != "" {
		leftPane += "\n\n" + palette
	}
	rightPane := m.renderHelpIfVisible()

	done := 0
	for _, task := range m.Tasks {
		if task.Completed {
			done++
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("todod | %d tasks | %d done | mode: %s", len(m.Tasks), done, m.Mode),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Width:      m.panelWidth,
		Footer:     views.RenderFooter(m.Year, "space toggle | e edit | d delete | a add | / cmd | ? help | q quit"),
	})
}

func (m Model) taskListData() views.TaskListData {
	rows := make([]views.RowData, 0, len(m.Tasks))
	for i, task := range m.Tasks {
		editing := m.Mode == RowModeEditing && task.ID == m.EditingID
		row := views.RowData{
			Position:  i + 1,
			ID:        task.ID,
			Title:     task.Title,
			Completed: task.Completed,
			Selected:  m.Focus == FocusList && i == m.Cursor,
			Editing:   editing,
		}
		if editing {
			row.EditView = m.editInput.View()
		}
		rows = append(rows, row)
	}
	return views.TaskListData{
		Rows:         rows,
		AddInputView: m.addInput.View(),
		AddFocused:   m.Focus == FocusAdd && m.Mode == RowModeView,
	}
}

func panelWidthFor(termWidth int, split bool) int {
	width := termWidth - 4
	if split {
		width = termWidth/2 - 4
	}
	if width < 40 {
		width = 40
	}
	return width
}
