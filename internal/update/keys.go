package update

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Edit      key.Binding
	Save      key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Delete    key.Binding
	AddFocus  key.Binding
	Palette   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space/x", "toggle done")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title")),
		Save:      key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "save edit")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add / save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel / leave input")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete task")),
		AddFocus:  key.NewBinding(key.WithKeys("a", "i", "tab"), key.WithHelp("a", "new task")),
		Palette:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Delete, k.AddFocus, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Edit, k.Delete},
		{k.AddFocus, k.Submit, k.Save, k.Cancel},
		{k.Palette, k.Help, k.Quit},
	}
}
