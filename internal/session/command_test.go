package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/mpdwaves/internal/errmsg"
	"github.com/llehouerou/mpdwaves/internal/mpd"
)

func TestRequestFor(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		status mpd.Status
		want   string
		op     errmsg.Op
	}{
		{"repeat on", ToggleRepeat, mpd.Status{}, "repeat 1", errmsg.OpToggleRepeat},
		{"repeat off", ToggleRepeat, mpd.Status{Repeat: true}, "repeat 0", errmsg.OpToggleRepeat},
		{"random on", ToggleRandom, mpd.Status{}, "random 1", errmsg.OpToggleRandom},
		{"random off", ToggleRandom, mpd.Status{Random: true}, "random 0", errmsg.OpToggleRandom},
		{"consume on", ToggleConsume, mpd.Status{}, "consume 1", errmsg.OpToggleConsume},
		{"consume off", ToggleConsume, mpd.Status{Consume: true}, "consume 0", errmsg.OpToggleConsume},
		{"single from off", ToggleSingle, mpd.Status{Single: mpd.SingleOff}, "single 1", errmsg.OpToggleSingle},
		{"single from on", ToggleSingle, mpd.Status{Single: mpd.SingleOn}, "single 0", errmsg.OpToggleSingle},
		{"single from oneshot", ToggleSingle, mpd.Status{Single: mpd.SingleOneshot}, "single 1", errmsg.OpToggleSingle},
		{"oneshot from off", ToggleOneshot, mpd.Status{Single: mpd.SingleOff}, "single oneshot", errmsg.OpToggleOneshot},
		{"oneshot from on", ToggleOneshot, mpd.Status{Single: mpd.SingleOn}, "single oneshot", errmsg.OpToggleOneshot},
		{"oneshot from oneshot", ToggleOneshot, mpd.Status{Single: mpd.SingleOneshot}, "single 0", errmsg.OpToggleOneshot},
		{"pause while playing", TogglePause, mpd.Status{State: mpd.Play}, "pause", errmsg.OpTogglePause},
		{"pause while paused", TogglePause, mpd.Status{State: mpd.Pause}, "pause", errmsg.OpTogglePause},
		{"pause while stopped", TogglePause, mpd.Status{State: mpd.Stop}, "play", errmsg.OpTogglePause},
		{"stop", Stop, mpd.Status{}, "stop", errmsg.OpStop},
		{"seek back", SeekBackwards, mpd.Status{}, "seekcur -5", errmsg.OpSeekBackwards},
		{"seek forward", SeekForwards, mpd.Status{}, "seekcur +5", errmsg.OpSeekForwards},
		{"previous", Previous, mpd.Status{}, "previous", errmsg.OpPrevious},
		{"next", Next, mpd.Status{}, "next", errmsg.OpNext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, op, ok := RequestFor(Cmd(tt.kind), tt.status, 5)
			if !ok {
				t.Fatalf("RequestFor(%v) not handled", tt.kind)
			}
			if got != tt.want {
				t.Errorf("RequestFor(%v) = %q, want %q", tt.kind, got, tt.want)
			}
			if op != tt.op {
				t.Errorf("RequestFor(%v) op = %q, want %q", tt.kind, op, tt.op)
			}
		})
	}
}

func TestRequestFor_FractionalSeek(t *testing.T) {
	got, _, _ := RequestFor(Cmd(SeekForwards), mpd.Status{}, 2.5)
	assert.Equal(t, "seekcur +2.5", got)
}

func TestRequestFor_LocalCommands(t *testing.T) {
	for _, k := range []Kind{Quit, Play, Down, Reselect, InputSearch, Searching} {
		_, _, ok := RequestFor(Cmd(k), mpd.Status{}, 5)
		assert.False(t, ok, k.String())
	}
}

func TestCommand_Remote(t *testing.T) {
	assert.True(t, Cmd(ToggleRepeat).Remote())
	assert.True(t, Cmd(Play).Remote())
	assert.True(t, Cmd(SeekBackwards).Remote())
	assert.False(t, Cmd(Quit).Remote())
	assert.False(t, Cmd(Down).Remote())
	assert.False(t, Input('a').Remote())
}

func TestCommand_String(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Cmd(Quit), "quit"},
		{Cmd(ToggleOneshot), "toggle_oneshot"},
		{Cmd(GotoBottom), "goto_bottom"},
		{Input('x'), "input_search('x')"},
		{SetSearching(true), "searching(true)"},
		{Command{Kind: Kind(99)}, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cmd.String())
	}
}
