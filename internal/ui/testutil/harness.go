package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives a tea.Model without a program, collecting the commands it
// returns.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness wraps m and records its Init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View renders the current model.
func (h *Harness) View() string {
	return h.model.View()
}

// Send delivers msg and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendRunes types s as one key event.
func (h *Harness) SendRunes(s string) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// SendKey sends a special key such as tea.KeyEnter.
func (h *Harness) SendKey(k tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: k})
}

// Type sends each rune of s as its own key event.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Commands returns every non-nil command returned so far.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands forgets the recorded commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// Exec runs cmd and returns its message, or nil for a nil cmd.
func Exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
