// Package session holds the client's local view layered over the daemon's
// state: the selection, the search query and its filtered view. Transitions
// are plain methods; the caller owns the Session and serializes access.
package session

import (
	"unicode/utf8"

	"github.com/llehouerou/mpdwaves/internal/mpd"
)

// Options tune selection movement.
type Options struct {
	Cycle     bool // wrap around the ends instead of stopping
	JumpLines int
}

// Session is the mutable client state.
type Session struct {
	opts Options

	Status mpd.Status
	Queue  []mpd.Track
	Index  mpd.SearchIndex

	// Selected indexes the visible rows: Filtered when Query is set, the
	// whole Queue otherwise.
	Selected  int
	Searching bool
	Query     string
	Filtered  []int
}

// New returns a session on an empty queue.
func New(opts Options) *Session {
	return &Session{opts: opts}
}

// Filtering reports whether a query restricts the visible rows.
func (s *Session) Filtering() bool {
	return s.Query != ""
}

// VisibleLen is the number of rows selection moves over.
func (s *Session) VisibleLen() int {
	if s.Filtering() {
		return len(s.Filtered)
	}
	return len(s.Queue)
}

// SetStatus replaces the status snapshot.
func (s *Session) SetStatus(st mpd.Status) {
	s.Status = st
}

// SetQueue replaces the queue and its search index together, moves the
// selection to the current song and reruns an active search.
func (s *Session) SetQueue(q []mpd.Track, idx mpd.SearchIndex) {
	s.Queue = q
	s.Index = idx
	s.Reselect()
	if s.Filtering() {
		s.rescan()
	}
}

// Reselect moves the selection to the daemon's current song, or the top
// when there is none.
func (s *Session) Reselect() {
	s.Selected = s.Status.CurrentPos()
}

// PlayTarget maps the selection to a queue position.
func (s *Session) PlayTarget() (int, bool) {
	if s.Selected < 0 || s.Selected >= s.VisibleLen() {
		return 0, false
	}
	if s.Filtering() {
		return s.Filtered[s.Selected], true
	}
	return s.Selected, true
}

// Apply performs a local command and reports whether it was one. Daemon
// commands are left to the caller.
func (s *Session) Apply(cmd Command) bool {
	switch cmd.Kind {
	case Reselect:
		s.Reselect()
	case Down:
		s.Down()
	case Up:
		s.Up()
	case JumpDown:
		s.JumpDown()
	case JumpUp:
		s.JumpUp()
	case GotoTop:
		s.GotoTop()
	case GotoBottom:
		s.GotoBottom()
	case InputSearch:
		s.InputSearch(cmd.Rune)
	case BackspaceSearch:
		s.Backspace()
	case QuitSearch:
		s.QuitSearch()
	case ClearSearch:
		s.ClearSearch()
	case Searching:
		s.Searching = cmd.On
	default:
		return false
	}
	return true
}

// snap reports whether the selection fell outside the visible rows, in
// which case it has been moved to the current song instead.
func (s *Session) snap() bool {
	if s.Selected >= 0 && s.Selected < s.VisibleLen() {
		return false
	}
	s.Reselect()
	return true
}

// Down selects the next row, wrapping to the top when cycling.
func (s *Session) Down() {
	n := s.VisibleLen()
	if s.snap() || n == 0 {
		return
	}
	switch {
	case s.Selected < n-1:
		s.Selected++
	case s.opts.Cycle:
		s.Selected = 0
	}
}

// Up selects the previous row, wrapping to the bottom when cycling.
func (s *Session) Up() {
	n := s.VisibleLen()
	if s.snap() || n == 0 {
		return
	}
	switch {
	case s.Selected > 0:
		s.Selected--
	case s.opts.Cycle:
		s.Selected = n - 1
	}
}

// JumpDown moves the selection JumpLines rows down.
func (s *Session) JumpDown() {
	n := s.VisibleLen()
	if s.snap() || n == 0 {
		return
	}
	if s.opts.Cycle {
		s.Selected = (s.Selected + s.opts.JumpLines) % n
		return
	}
	s.Selected = min(s.Selected+s.opts.JumpLines, n-1)
}

// JumpUp moves the selection JumpLines rows up.
func (s *Session) JumpUp() {
	n := s.VisibleLen()
	if s.snap() || n == 0 {
		return
	}
	if s.opts.Cycle {
		s.Selected = ((s.Selected-s.opts.JumpLines)%n + n) % n
		return
	}
	s.Selected = max(s.Selected-s.opts.JumpLines, 0)
}

// GotoTop selects the first row.
func (s *Session) GotoTop() {
	s.Selected = 0
}

// GotoBottom selects the last row, or row 0 when nothing is visible.
func (s *Session) GotoBottom() {
	s.Selected = max(s.VisibleLen()-1, 0)
}

// InputSearch appends r to the query. The first character scans the whole
// index; later ones only narrow the current matches.
func (s *Session) InputSearch(r rune) {
	if s.Query == "" {
		s.Query = string(r)
		s.rescan()
		return
	}

	s.Query += string(r)
	s.Filtered = s.Index.Retain(s.Filtered, s.Query)
	s.clamp()
}

// Backspace drops the last character of the query. Emptying the query
// removes the filter and returns to the current song.
func (s *Session) Backspace() {
	if s.Query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.Query)
	s.Query = s.Query[:len(s.Query)-size]

	if s.Query != "" {
		s.rescan()
		return
	}
	s.Filtered = nil
	s.Reselect()
}

// QuitSearch leaves text entry and drops the query.
func (s *Session) QuitSearch() {
	s.Searching = false
	s.dropQuery()
}

// ClearSearch drops the query but stays in text entry.
func (s *Session) ClearSearch() {
	s.dropQuery()
}

func (s *Session) dropQuery() {
	if s.Query == "" {
		return
	}
	s.Query = ""
	s.Filtered = nil
	s.Reselect()
}

func (s *Session) rescan() {
	s.Filtered = s.Index.Match(s.Query)
	s.Selected = 0
}

func (s *Session) clamp() {
	if s.Selected >= s.VisibleLen() {
		s.Selected = max(s.VisibleLen()-1, 0)
	}
}
