// Package app wires the session, the daemon connections and the layout
// renderer into a bubbletea program.
package app

import "time"

// IdleMsg reports which daemon subsystems changed.
type IdleMsg struct {
	Queue  bool
	Status bool
}

// TickMsg triggers the periodic status refresh that keeps elapsed time
// moving between idle wakeups.
type TickMsg time.Time

// ErrMsg carries a fatal error to the event loop, which stops the program.
type ErrMsg struct {
	Err error
}

func (e ErrMsg) Error() string { return e.Err.Error() }
