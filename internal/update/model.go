package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/todod/internal/logging"
	"github.com/sandeepkv93/todod/internal/model"
	"github.com/sandeepkv93/todod/internal/tasklist"
)

// Focus says which control receives keys when no row is being edited.
type Focus string

const (
	FocusAdd  Focus = "add"
	FocusList Focus = "list"
)

// RowMode is the edit state of the list. At most one row is in
// RowModeEditing, identified by Model.EditingID.
type RowMode string

const (
	RowModeView    RowMode = "view"
	RowModeEditing RowMode = "editing"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
}

type Model struct {
	Tasks       []model.Task
	Cursor      int
	Focus       Focus
	Mode        RowMode
	EditingID   string
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        KeyMap
	Quitting    bool
	LastError   error
	// Year is fixed at start-up and shown in the footer.
	Year int

	ctx          context.Context
	service      *tasklist.Service
	log          *log.Logger
	addInput     textinput.Model
	editInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
	helpMarkdown string
	panelWidth   int
}

type Options struct {
	Context  context.Context
	Logger   *log.Logger
	Now      func() time.Time
	ShowHelp bool
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// ReloadMsg rebuilds the list from storage.
type ReloadMsg struct{}

func NewModel(service *tasklist.Service, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		Focus:       FocusAdd,
		Mode:        RowModeView,
		HelpVisible: opts.ShowHelp,
		Keys:        DefaultKeyMap(),
		Year:        now().Year(),
		ctx:         ctx,
		service:     service,
		log:         logger,
	}
	m.initBubbleComponents()
	m.render()
	return m
}

func (m *Model) initBubbleComponents() {
	m.addInput = textinput.New()
	m.addInput.Prompt = "add> "
	m.addInput.Placeholder = "What needs doing?"
	m.addInput.CharLimit = 256
	m.addInput.Width = 40
	m.addInput.Focus()

	m.editInput = textinput.New()
	m.editInput.Prompt = "edit> "
	m.editInput.CharLimit = 256

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.helpMarkdown = renderedHelpMarkdown()
}

func (m Model) AddInputValue() string  { return m.addInput.Value() }
func (m Model) EditInputValue() string { return m.editInput.Value() }

// SelectedTask returns the task under the cursor.
func (m Model) SelectedTask() (model.Task, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Tasks) {
		return model.Task{}, false
	}
	return m.Tasks[m.Cursor], true
}
