package update

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todod/internal/ident"
	"github.com/sandeepkv93/todod/internal/model"
	"github.com/sandeepkv93/todod/internal/storage"
	"github.com/sandeepkv93/todod/internal/tasklist"
)

func newTestModel(t *testing.T, seed ...model.Task) (Model, *storage.TaskStore) {
	t.Helper()
	store := storage.NewTaskStore(storage.NewMemoryKV(), "")
	if len(seed) > 0 {
		if err := store.Save(context.Background(), seed); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	svc := tasklist.NewService(store, &ident.SequenceGenerator{Prefix: "t"}, nil)
	m := NewModel(svc, Options{Now: func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }})
	return m, store
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Focus != FocusAdd || m.Mode != RowModeView {
		t.Fatalf("unexpected initial state: focus=%s mode=%s", m.Focus, m.Mode)
	}
	if m.Year != 2026 {
		t.Fatalf("expected footer year 2026, got %d", m.Year)
	}
	if len(m.Tasks) != 0 {
		t.Fatalf("expected empty list, got %#v", m.Tasks)
	}
}

func TestAddTaskFromEmptyStorage(t *testing.T) {
	m, store := newTestModel(t)
	m = send(t, m, runes("Buy milk"), enterKey)

	got := store.Load(context.Background())
	if len(got) != 1 || got[0].Title != "Buy milk" || got[0].Completed || got[0].ID == "" {
		t.Fatalf("unexpected persisted list: %#v", got)
	}
	if m.AddInputValue() != "" {
		t.Fatalf("expected add input cleared, got %q", m.AddInputValue())
	}
	if len(m.Tasks) != 1 {
		t.Fatalf("expected re-render with one row, got %#v", m.Tasks)
	}
}

func TestAddBlankTaskIsIgnored(t *testing.T) {
	m, store := newTestModel(t)
	m = send(t, m, runes("   "), enterKey)
	if got := store.Load(context.Background()); len(got) != 0 {
		t.Fatalf("blank add must not persist: %#v", got)
	}
	if m.AddInputValue() != "   " {
		t.Fatalf("blank input should be left as typed, got %q", m.AddInputValue())
	}
}

func TestToggleCompletion(t *testing.T) {
	m, store := newTestModel(t, model.Task{ID: "a", Title: "Walk dog"})
	m = send(t, m, escKey, runes("x"))

	got := store.Load(context.Background())
	if len(got) != 1 || !got[0].Completed || got[0].Title != "Walk dog" || got[0].ID != "a" {
		t.Fatalf("unexpected toggle result: %#v", got)
	}
	if !m.Tasks[0].Completed {
		t.Fatal("expected rendered row to be completed")
	}

	m = send(t, m, runes("x"))
	if store.Load(context.Background())[0].Completed {
		t.Fatal("second toggle should reopen the task")
	}
}

func TestEditCommitTrimsTitle(t *testing.T) {
	m, store := newTestModel(t, model.Task{ID: "a", Title: "Old"})
	m = send(t, m, escKey, runes("e"))
	if m.Mode != RowModeEditing || m.EditingID != "a" {
		t.Fatalf("expected editing mode for a, got mode=%s id=%q", m.Mode, m.EditingID)
	}
	if m.EditInputValue() != "Old" {
		t.Fatalf("edit input should be prefilled, got %q", m.EditInputValue())
	}
	if !strings.Contains(m.View(), "[✓ Save]") {
		t.Fatalf("expected save button while editing: %q", m.View())
	}

	m.editInput.SetValue("  New  ")
	m = send(t, m, enterKey)

	if got := store.Load(context.Background()); got[0].Title != "New" {
		t.Fatalf("expected trimmed title, got %#v", got)
	}
	if m.Mode != RowModeView || m.EditingID != "" {
		t.Fatalf("expected view mode after commit, got %s", m.Mode)
	}
	if !strings.Contains(m.View(), "[✎ Edit]") {
		t.Fatalf("expected pencil button after commit: %q", m.View())
	}
}

func TestEditTypingAppendsAtCursorEnd(t *testing.T) {
	m, store := newTestModel(t, model.Task{ID: "a", Title: "Old"})
	m = send(t, m, escKey, runes("e"), runes("er"), enterKey)
	if got := store.Load(context.Background()); got[0].Title != "Older" {
		t.Fatalf("expected typed text appended at end, got %#v", got)
	}
}

func TestEditBlankCommitKeepsTitle(t *testing.T) {
	m, store := newTestModel(t, model.Task{ID: "a", Title: "Old"})
	m = send(t, m, escKey, runes("e"))
	m.editInput.SetValue("   ")
	m = send(t, m, enterKey)

	if got := store.Load(context.Background()); got[0].Title != "Old" {
		t.Fatalf("blank edit must not change title: %#v", got)
	}
	if m.EditInputValue() != "Old" {
		t.Fatalf("input should revert to stored title, got %q", m.EditInputValue())
	}
	if m.Mode != RowModeView {
		t.Fatalf("expected view mode, got %s", m.Mode)
	}
}

func TestEditCancelReverts(t *testing.T) {
	m, store := newTestModel(t, model.Task{ID: "a", Title: "Old"})
	m = send(t, m, escKey, runes("e"), runes(" changed"), escKey)

	if got := store.Load(context.Background()); got[0].Title != "Old" {
		t.Fatalf("cancel must not persist: %#v", got)
	}
	if m.EditInputValue() != "Old" || m.Mode != RowModeView {
		t.Fatalf("unexpected state after cancel: input=%q mode=%s", m.EditInputValue(), m.Mode)
	}
}

func TestEditToggleKeyCommits(t *testing.T) {
	m, store := newTestModel(t, model.Task{ID: "a", Title: "Old"})
	m = send(t, m, escKey, runes("e"), runes("!"), tea.KeyMsg{Type: tea.KeyCtrlE})
	if got := store.Load(context.Background()); got[0].Title != "Old!" {
		t.Fatalf("edit toggle should commit, got %#v", got)
	}
	if m.Mode != RowModeView {
		t.Fatalf("expected view mode, got %s", m.Mode)
	}
}

func TestEditOfDeletedTaskIsDropped(t *testing.T) {
	m, store := newTestModel(t, model.Task{ID: "a", Title: "Old"}, model.Task{ID: "b", Title: "Other"})
	m = send(t, m, escKey, runes("e"))

	if err := store.Save(context.Background(), []model.Task{{ID: "b", Title: "Other"}}); err != nil {
		t.Fatalf("simulate external delete: %v", err)
	}
	m.editInput.SetValue("New")
	m = send(t, m, enterKey)

	got := store.Load(context.Background())
	if len(got) != 1 || got[0].ID != "b" || got[0].Title != "Other" {
		t.Fatalf("stale edit must not write: %#v", got)
	}
	if m.Mode != RowModeView || len(m.Tasks) != 1 {
		t.Fatalf("expected view mode and reloaded rows, got mode=%s tasks=%#v", m.Mode, m.Tasks)
	}
}

func TestDeleteFirstOfTwo(t *testing.T) {
	m, store := newTestModel(t, model.Task{ID: "a", Title: "A"}, model.Task{ID: "b", Title: "B"})
	m = send(t, m, escKey, runes("d"))

	got := store.Load(context.Background())
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("unexpected list after delete: %#v", got)
	}
	if m.Cursor != 0 || len(m.Tasks) != 1 {
		t.Fatalf("unexpected cursor/rows: cursor=%d rows=%#v", m.Cursor, m.Tasks)
	}
}

func TestCursorNavigation(t *testing.T) {
	m, _ := newTestModel(t, model.Task{ID: "a", Title: "A"}, model.Task{ID: "b", Title: "B"})
	m = send(t, m, escKey, runes("j"))
	if task, _ := m.SelectedTask(); task.ID != "b" {
		t.Fatalf("expected cursor on b, got %#v", task)
	}
	m = send(t, m, runes("k"), runes("k"))
	if m.Cursor != 0 {
		t.Fatalf("cursor should stop at top, got %d", m.Cursor)
	}
	m = send(t, m, runes("j"), runes("j"))
	if m.Focus != FocusAdd {
		t.Fatalf("moving past the last row should focus the add row, got %s", m.Focus)
	}
}

func TestRowsRenderInListOrderBeforeAddRow(t *testing.T) {
	m, _ := newTestModel(t,
		model.Task{ID: "a", Title: "first"},
		model.Task{ID: "b", Title: "second", Completed: true},
	)
	out := m.View()
	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	add := strings.Index(out, "[+ Add]")
	if first < 0 || second < 0 || add < 0 || !(first < second && second < add) {
		t.Fatalf("unexpected row layout: %q", out)
	}
	if !strings.Contains(out, "[x]") || !strings.Contains(out, "[ ]") {
		t.Fatalf("expected both checkbox states: %q", out)
	}
	if !strings.Contains(out, "© 2026") {
		t.Fatalf("expected footer year: %q", out)
	}
}

func TestPaletteRunsCommands(t *testing.T) {
	m, store := newTestModel(t, model.Task{ID: "a", Title: "A"})
	m = send(t, m, escKey, runes("/"))
	if !m.Palette.Active {
		t.Fatal("expected palette active")
	}
	m = send(t, m, runes("rename 1 Renamed"), enterKey)

	if m.Palette.Active {
		t.Fatal("palette should close after running")
	}
	if got := store.Load(context.Background()); got[0].Title != "Renamed" {
		t.Fatalf("palette rename not applied: %#v", got)
	}
	if m.Tasks[0].Title != "Renamed" || m.Status.Text != "renamed: Renamed" {
		t.Fatalf("expected reload and status, got tasks=%#v status=%+v", m.Tasks, m.Status)
	}

	m = send(t, m, runes("/"), runes("bogus"), enterKey)
	if !m.Status.IsError {
		t.Fatalf("expected error status for unknown command: %+v", m.Status)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, escKey, runes("?"))
	if !m.HelpVisible {
		t.Fatal("expected help visible")
	}
	if !strings.Contains(m.View(), "help:") {
		t.Fatalf("expected help panel in view: %q", m.View())
	}
	m = send(t, m, runes("?"))
	if m.HelpVisible {
		t.Fatal("expected help hidden")
	}
}

func TestStatusAndErrorMessages(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, SetStatusMsg{Text: "ready"})
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}

	m = send(t, m, AppErrorMsg{Err: errors.New("boom")})
	if m.LastError == nil || !m.Status.IsError || m.Status.Text != "boom" {
		t.Fatalf("unexpected error state: %+v err=%v", m.Status, m.LastError)
	}

	m = send(t, m, ClearStatusMsg{})
	if m.Status.Text != "" || m.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", m.Status)
	}
}

func TestReloadPicksUpExternalWrites(t *testing.T) {
	m, store := newTestModel(t)
	if err := store.Save(context.Background(), []model.Task{{ID: "z", Title: "From elsewhere"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	m = send(t, m, ReloadMsg{})
	if len(m.Tasks) != 1 || m.Tasks[0].ID != "z" {
		t.Fatalf("expected reload to pick up external write: %#v", m.Tasks)
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(runes("q"))
	next := updated.(Model)
	if next.Quitting {
		t.Fatal("q typed into the add input must not quit")
	}

	updated, cmd := next.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	next = updated.(Model)
	if !next.Quitting || cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}
