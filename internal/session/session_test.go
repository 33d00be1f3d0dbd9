package session

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/mpdwaves/internal/mpd"
)

func strp(s string) *string { return &s }

// newSession loads a queue of n tracks titled "track NN" with the daemon
// playing position current.
func newSession(opts Options, n, current int) *Session {
	s := New(opts)
	s.SetStatus(mpd.Status{State: mpd.Play, QueueLen: n, Song: &mpd.Song{Pos: current}})

	q := make([]mpd.Track, n)
	idx := make(mpd.SearchIndex, n)
	for i := range q {
		q[i] = mpd.Track{File: fmt.Sprintf("%02d.mp3", i), Title: strp(fmt.Sprintf("track %02d", i)), Time: 1}
		idx[i] = mpd.Normalize(*q[i].Title)
	}
	s.SetQueue(q, idx)
	return s
}

func TestSetQueue_Reselects(t *testing.T) {
	s := newSession(Options{}, 10, 4)
	assert.Equal(t, 4, s.Selected)
	assert.Equal(t, 10, s.VisibleLen())
}

func TestMovement(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		start int
		cmd   Kind
		want  int
	}{
		{"down", Options{}, 3, Down, 4},
		{"down clamps", Options{}, 9, Down, 9},
		{"down cycles", Options{Cycle: true}, 9, Down, 0},
		{"up", Options{}, 3, Up, 2},
		{"up clamps", Options{}, 0, Up, 0},
		{"up cycles", Options{Cycle: true}, 0, Up, 9},
		{"jump down", Options{JumpLines: 4}, 3, JumpDown, 7},
		{"jump down clamps", Options{JumpLines: 4}, 8, JumpDown, 9},
		{"jump down cycles", Options{JumpLines: 4, Cycle: true}, 8, JumpDown, 2},
		{"jump up", Options{JumpLines: 4}, 7, JumpUp, 3},
		{"jump up clamps below jump", Options{JumpLines: 10}, 2, JumpUp, 0},
		{"jump up cycles", Options{JumpLines: 4, Cycle: true}, 2, JumpUp, 8},
		{"jump up cycles past a full lap", Options{JumpLines: 24, Cycle: true}, 2, JumpUp, 8},
		{"goto top", Options{}, 5, GotoTop, 0},
		{"goto bottom", Options{}, 5, GotoBottom, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(tt.opts, 10, 0)
			s.Selected = tt.start
			require.True(t, s.Apply(Cmd(tt.cmd)))
			assert.Equal(t, tt.want, s.Selected)
		})
	}
}

func TestMovement_SnapsWhenOutOfRange(t *testing.T) {
	for _, k := range []Kind{Down, Up, JumpDown, JumpUp} {
		t.Run(k.String(), func(t *testing.T) {
			s := newSession(Options{JumpLines: 3}, 10, 6)
			s.Selected = 15
			s.Apply(Cmd(k))
			assert.Equal(t, 6, s.Selected)
		})
	}
}

func TestMovement_EmptyQueue(t *testing.T) {
	for _, opts := range []Options{{JumpLines: 5}, {JumpLines: 5, Cycle: true}} {
		s := New(opts)
		for _, k := range []Kind{Down, Up, JumpDown, JumpUp, GotoTop, GotoBottom} {
			assert.NotPanics(t, func() { s.Apply(Cmd(k)) }, k.String())
			assert.Equal(t, 0, s.Selected, k.String())
		}
	}
}

func TestSearch_FirstCharacterScans(t *testing.T) {
	s := newSession(Options{}, 12, 5)
	s.Apply(SetSearching(true))
	s.Apply(Input('1'))

	assert.True(t, s.Searching)
	assert.Equal(t, "1", s.Query)
	assert.Equal(t, []int{1, 10, 11}, s.Filtered)
	assert.Equal(t, 0, s.Selected)
	assert.Equal(t, 3, s.VisibleLen())
}

func TestSearch_NarrowingClampsSelection(t *testing.T) {
	s := newSession(Options{}, 12, 0)
	s.Apply(Input('1'))
	s.Selected = 2

	s.Apply(Input('1'))
	assert.Equal(t, []int{11}, s.Filtered)
	assert.Equal(t, 0, s.Selected)
}

func TestSearch_Monotonic(t *testing.T) {
	s := newSession(Options{}, 30, 0)

	query := "track 2"
	var prev []int
	for i, r := range query {
		s.InputSearch(r)
		got := slices.Clone(s.Filtered)
		if i > 0 {
			for _, pos := range got {
				assert.Contains(t, prev, pos, "query %q", s.Query)
			}
		}
		prev = got
	}
	assert.Equal(t, []int{20, 21, 22, 23, 24, 25, 26, 27, 28, 29}, prev)
}

func TestSearch_RetainMatchesRescan(t *testing.T) {
	s := newSession(Options{}, 25, 0)
	for _, r := range "CK 1" {
		s.InputSearch(r)
	}
	assert.Equal(t, s.Index.Match(s.Query), s.Filtered)
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, s.Filtered)
}

func TestSearch_Backspace(t *testing.T) {
	s := newSession(Options{}, 12, 7)
	s.Apply(SetSearching(true))
	s.Apply(Input('1'))
	s.Apply(Input('1'))
	require.Equal(t, []int{11}, s.Filtered)

	s.Apply(Cmd(BackspaceSearch))
	assert.Equal(t, "1", s.Query)
	assert.Equal(t, []int{1, 10, 11}, s.Filtered)
	assert.Equal(t, 0, s.Selected)

	s.Apply(Cmd(BackspaceSearch))
	assert.Empty(t, s.Query)
	assert.Nil(t, s.Filtered)
	assert.Equal(t, 7, s.Selected)
	assert.True(t, s.Searching)

	// Nothing left to delete.
	s.Selected = 3
	s.Apply(Cmd(BackspaceSearch))
	assert.Equal(t, 3, s.Selected)
}

func TestSearch_BackspaceMultibyte(t *testing.T) {
	s := newSession(Options{}, 3, 0)
	s.InputSearch('t')
	s.InputSearch('é')
	s.Backspace()
	assert.Equal(t, "t", s.Query)
}

func TestSearch_ConfirmKeepsQuery(t *testing.T) {
	s := newSession(Options{}, 12, 0)
	s.Apply(SetSearching(true))
	s.Apply(Input('1'))
	s.Apply(SetSearching(false))

	assert.False(t, s.Searching)
	assert.Equal(t, "1", s.Query)
	assert.Len(t, s.Filtered, 3)
}

func TestSearch_QuitAndClear(t *testing.T) {
	s := newSession(Options{}, 12, 9)
	s.Apply(SetSearching(true))
	s.Apply(Input('1'))

	s.Apply(Cmd(ClearSearch))
	assert.True(t, s.Searching)
	assert.Empty(t, s.Query)
	assert.Nil(t, s.Filtered)
	assert.Equal(t, 9, s.Selected)

	s.Apply(Input('2'))
	s.Apply(Cmd(QuitSearch))
	assert.False(t, s.Searching)
	assert.Empty(t, s.Query)
	assert.Nil(t, s.Filtered)
	assert.Equal(t, 9, s.Selected)
}

func TestSetQueue_RerunsSearch(t *testing.T) {
	s := newSession(Options{}, 12, 0)
	s.InputSearch('1')
	s.Selected = 2

	q := slices.Clone(s.Queue[:5])
	idx := slices.Clone(s.Index[:5])
	s.SetQueue(q, idx)

	assert.Equal(t, []int{1}, s.Filtered)
	assert.Equal(t, 0, s.Selected)
}

func TestPlayTarget(t *testing.T) {
	s := newSession(Options{}, 12, 0)
	s.Selected = 4
	pos, ok := s.PlayTarget()
	assert.True(t, ok)
	assert.Equal(t, 4, pos)

	s.InputSearch('1')
	s.Selected = 1
	pos, ok = s.PlayTarget()
	assert.True(t, ok)
	assert.Equal(t, 10, pos)

	s.Selected = 3
	_, ok = s.PlayTarget()
	assert.False(t, ok)
}

func TestReselect_NoCurrentSong(t *testing.T) {
	s := newSession(Options{}, 5, 3)
	s.SetStatus(mpd.Status{State: mpd.Stop})
	s.Apply(Cmd(Reselect))
	assert.Equal(t, 0, s.Selected)
}

func TestApply_RemoteCommandsNotHandled(t *testing.T) {
	s := newSession(Options{}, 3, 1)
	for _, k := range []Kind{Quit, ToggleRepeat, Play, Next, SeekForwards} {
		assert.False(t, s.Apply(Cmd(k)), k.String())
	}
	assert.Equal(t, 1, s.Selected)
}
