package keymap

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mpdwaves/internal/session"
)

// Resolver maps key strings to commands.
type Resolver struct {
	global map[string]session.Command
	search map[string]session.Command
}

// NewResolver creates a resolver from bindings. A later binding for the same
// key and context wins.
func NewResolver(bindings []Binding) *Resolver {
	return &Resolver{
		global: table(ByContext(bindings, Global)),
		search: table(ByContext(bindings, Search)),
	}
}

func table(bindings []Binding) map[string]session.Command {
	t := make(map[string]session.Command)
	for _, b := range bindings {
		if !b.Key.Enabled() {
			continue
		}
		for _, k := range b.Key.Keys() {
			t[k] = b.Command
		}
	}
	return t
}

// Resolve returns the commands for a key press. While searching, printable
// input goes to the query unless a search binding claims the key. Pasted
// text yields one command per rune.
func (r *Resolver) Resolve(msg tea.KeyMsg, searching bool) []session.Command {
	k := msg.String()
	if searching {
		if c, ok := r.search[k]; ok {
			return []session.Command{c}
		}
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			return []session.Command{session.Input(' ')}
		}
		if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Alt {
			cmds := make([]session.Command, 0, len(msg.Runes))
			for _, ch := range msg.Runes {
				cmds = append(cmds, session.Input(ch))
			}
			return cmds
		}
	}
	if c, ok := r.global[k]; ok {
		return []session.Command{c}
	}
	return nil
}

// ResolveMouse maps the wheel to selection movement.
func (r *Resolver) ResolveMouse(msg tea.MouseMsg) (session.Command, bool) {
	if msg.Action != tea.MouseActionPress {
		return session.Command{}, false
	}
	switch msg.Button { //nolint:exhaustive // only the wheel moves the selection
	case tea.MouseButtonWheelDown:
		return session.Cmd(session.Down), true
	case tea.MouseButtonWheelUp:
		return session.Cmd(session.Up), true
	}
	return session.Command{}, false
}
