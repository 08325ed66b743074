package update

import (
	"github.com/sandeepkv93/todod/internal/model"
)

// render reloads the list from storage. The view is always built from this
// fresh copy, never patched in place.
func (m *Model) render() {
	m.Tasks = m.service.List(m.ctx)
	if m.Cursor >= len(m.Tasks) {
		m.Cursor = len(m.Tasks) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Mode == RowModeEditing {
		if _, ok := model.Find(m.Tasks, m.EditingID); !ok {
			m.exitEdit()
		}
	}
}

func (m *Model) addTask() {
	task, added, err := m.service.Add(m.ctx, m.addInput.Value())
	if err != nil {
		m.fail(err)
		return
	}
	if !added {
		return
	}
	m.addInput.SetValue("")
	m.render()
	m.Status = StatusBar{Text: "added: " + task.Title}
}

func (m *Model) toggleSelected() {
	task, ok := m.SelectedTask()
	if !ok {
		return
	}
	if err := m.service.SetCompleted(m.ctx, task.ID, !task.Completed); err != nil {
		m.fail(err)
		return
	}
	m.render()
}

func (m *Model) deleteSelected() {
	task, ok := m.SelectedTask()
	if !ok {
		return
	}
	if err := m.service.Delete(m.ctx, task.ID); err != nil {
		m.fail(err)
		return
	}
	m.render()
	m.Status = StatusBar{Text: "deleted: " + task.Title}
}

func (m *Model) moveCursor(delta int) {
	next := m.Cursor + delta
	if next < 0 || next >= len(m.Tasks) {
		return
	}
	m.Cursor = next
}

func (m *Model) focusAdd() {
	m.Focus = FocusAdd
	m.addInput.Focus()
}

func (m *Model) focusList() {
	m.Focus = FocusList
	m.addInput.Blur()
}

func (m *Model) fail(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}
