// Package mpd implements the subset of the MPD line protocol the client needs
// and the typed snapshots parsed from it.
package mpd

// PlayerState is the daemon's playback state.
type PlayerState int

const (
	Stop PlayerState = iota
	Play
	Pause
)

func (s PlayerState) String() string {
	switch s {
	case Play:
		return "play"
	case Pause:
		return "pause"
	case Stop:
		return "stop"
	}
	return "unknown"
}

// SingleMode is MPD's tri-state single flag. Oneshot is distinct from On and
// must not collapse into a boolean.
type SingleMode int

const (
	SingleOff SingleMode = iota
	SingleOn
	SingleOneshot
)

func (m SingleMode) String() string {
	switch m {
	case SingleOn:
		return "1"
	case SingleOneshot:
		return "oneshot"
	case SingleOff:
		return "0"
	}
	return "unknown"
}

// Song is the current queue entry as reported by status.
type Song struct {
	Pos     int
	Elapsed int // seconds
}

// Status is a snapshot of the remote player. It is replaced wholesale on
// every refresh.
type Status struct {
	Repeat   bool
	Random   bool
	Single   SingleMode
	Consume  bool
	QueueLen int
	State    PlayerState
	Song     *Song // nil when the daemon reports no current position
}

// CurrentPos returns the current queue position, or 0 when nothing is
// selected by the daemon.
func (s Status) CurrentPos() int {
	if s.Song == nil {
		return 0
	}
	return s.Song.Pos
}

// Track is one queue entry.
type Track struct {
	File   string
	Artist *string
	Album  *string
	Title  *string
	Time   int // seconds
}
