package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mpdwaves/internal/errmsg"
	"github.com/llehouerou/mpdwaves/internal/session"
)

// Update handles messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleCommands(m.keys.Resolve(msg, m.Session.Searching))

	case tea.MouseMsg:
		if cmd, ok := m.keys.ResolveMouse(msg); ok {
			return m.handleCommands([]session.Command{cmd})
		}
		return m, nil

	case IdleMsg:
		if err := m.refresh(msg.Queue); err != nil {
			return m.fail(err)
		}
		return m, waitForIdle(m.watcher)

	case TickMsg:
		if err := m.refresh(false); err != nil {
			return m.fail(err)
		}
		return m, tickCmd(m.interval)

	case ErrMsg:
		return m.fail(msg.Err)
	}

	return m, nil
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.log.Error("fatal", "err", err)
	m.err = err
	return m, tea.Quit
}

func (m Model) handleCommands(cmds []session.Command) (tea.Model, tea.Cmd) {
	for _, c := range cmds {
		m.log.Debug("command", "cmd", c.String())
		quit, err := m.dispatch(c)
		if err != nil {
			return m.fail(err)
		}
		if quit {
			return m, tea.Quit
		}
	}
	return m, nil
}

// dispatch performs one command and reports whether the program should quit.
func (m *Model) dispatch(c session.Command) (bool, error) {
	switch {
	case c.Kind == session.Quit:
		return true, nil
	case c.Kind == session.Play:
		return false, m.play()
	case !c.Remote():
		m.Session.Apply(c)
		return false, nil
	}

	line, op, ok := session.RequestFor(c, m.Session.Status, m.seekSecs)
	if !ok {
		return false, nil
	}
	if err := m.daemon.Command(line); err != nil {
		return false, errmsg.Wrap(op, err)
	}
	return false, m.refresh(false)
}

func (m *Model) play() error {
	pos, ok := m.Session.PlayTarget()
	if !ok {
		return nil
	}
	if err := m.daemon.Play(pos); err != nil {
		return errmsg.Wrap(errmsg.OpPlay, err)
	}
	if m.clearQueryOnPlay {
		m.Session.QuitSearch()
	}
	return m.refresh(false)
}
