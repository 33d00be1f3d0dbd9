package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/mpdwaves/internal/errmsg"
)

// waitForIdle blocks on the idle connection and reports the next change.
func waitForIdle(w Watcher) tea.Cmd {
	return func() tea.Msg {
		queue, status, err := w.Idle()
		if err != nil {
			return ErrMsg{Err: errmsg.Wrap(errmsg.OpWaitChanges, err)}
		}
		return IdleMsg{Queue: queue, Status: status}
	}
}

// tickCmd returns a command that sends TickMsg after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// interval converts updates per second into a tick period.
func interval(ups float64) time.Duration {
	if ups <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / ups)
}
