package update

import (
	"github.com/sandeepkv93/todod/internal/model"
	"github.com/sandeepkv93/todod/internal/tasklist"
)

// startEdit puts the row for id into editing mode with its title loaded and
// the cursor at the end of the input.
func (m *Model) startEdit(id string) {
	task, ok := model.Find(m.Tasks, id)
	if !ok {
		return
	}
	m.Mode = RowModeEditing
	m.EditingID = id
	m.addInput.Blur()
	m.editInput.SetValue(task.Title)
	m.editInput.CursorEnd()
	m.editInput.Focus()
}

// finishEdit leaves editing mode. With commit set the trimmed input is saved
// unless it is blank, in which case the input reverts to the stored title.
// Cancel always reverts. A row whose task has disappeared just drops its
// edit state.
func (m *Model) finishEdit(commit bool) {
	if m.Mode != RowModeEditing {
		return
	}
	target, ok := model.Find(m.service.List(m.ctx), m.EditingID)
	if !ok {
		m.exitEdit()
		m.render()
		return
	}

	if commit {
		task, result, err := m.service.Rename(m.ctx, target.ID, m.editInput.Value())
		if err != nil {
			m.fail(err)
		}
		if result == tasklist.RenameRejected {
			m.editInput.SetValue(task.Title)
		}
	} else {
		m.editInput.SetValue(target.Title)
	}

	m.exitEdit()
	m.render()
}

func (m *Model) exitEdit() {
	m.Mode = RowModeView
	m.EditingID = ""
	m.editInput.Blur()
}
