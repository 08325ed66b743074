package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todod/internal/commands"
)

func (m *Model) openPalette() {
	m.Palette.Active = true
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.executePaletteCommand(m.commandInput.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

// executePaletteCommand runs one command line against storage and reloads
// the list afterwards, whatever the outcome.
func (m *Model) executePaletteCommand(line string) {
	defer m.closePalette()

	cmd, err := commands.Parse(strings.TrimSpace(line))
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	res, err := commands.Execute(cmd, m.service.Handlers(m.ctx))
	m.render()
	if err != nil {
		m.fail(err)
		return
	}
	m.Status = StatusBar{Text: res.Message}
}
