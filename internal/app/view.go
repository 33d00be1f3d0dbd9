package app

import (
	"github.com/llehouerou/mpdwaves/internal/ui/widget"
)

// View renders the layout over the whole terminal.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	s := m.Session
	st := &widget.State{
		Status:    s.Status,
		Queue:     s.Queue,
		Filtered:  s.Filtered,
		Query:     s.Query,
		Searching: s.Searching,
		Selected:  s.Selected,
		Cursor:    m.cursor,
	}
	return widget.Frame(m.layout, st, m.Width, m.Height)
}
