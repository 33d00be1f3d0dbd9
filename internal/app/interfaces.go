package app

import "github.com/llehouerou/mpdwaves/internal/mpd"

// Compile-time assertions that the protocol client satisfies both roles.
var (
	_ Daemon  = (*mpd.Client)(nil)
	_ Watcher = (*mpd.Client)(nil)
)

// Daemon is the command connection. Calls block until the daemon replies.
type Daemon interface {
	Status() (mpd.Status, error)
	Queue(lenHint int, fields mpd.SearchFields) ([]mpd.Track, mpd.SearchIndex, error)
	Play(pos int) error
	Command(cmd string) error
}

// Watcher is the dedicated idle connection.
type Watcher interface {
	// Idle blocks until the queue or the player status changes.
	Idle() (queueChanged, statusChanged bool, err error)
}
