package session

import (
	"strconv"

	"github.com/llehouerou/mpdwaves/internal/errmsg"
	"github.com/llehouerou/mpdwaves/internal/mpd"
)

// Kind identifies a user command.
type Kind int

const (
	Quit Kind = iota
	ToggleRepeat
	ToggleRandom
	ToggleSingle
	ToggleOneshot
	ToggleConsume
	TogglePause
	Stop
	SeekBackwards
	SeekForwards
	Previous
	Next
	Play
	Reselect
	Down
	Up
	JumpDown
	JumpUp
	GotoTop
	GotoBottom
	InputSearch
	BackspaceSearch
	QuitSearch
	ClearSearch
	Searching
)

var kindNames = [...]string{
	Quit:            "quit",
	ToggleRepeat:    "toggle_repeat",
	ToggleRandom:    "toggle_random",
	ToggleSingle:    "toggle_single",
	ToggleOneshot:   "toggle_oneshot",
	ToggleConsume:   "toggle_consume",
	TogglePause:     "toggle_pause",
	Stop:            "stop",
	SeekBackwards:   "seek_backwards",
	SeekForwards:    "seek_forwards",
	Previous:        "previous",
	Next:            "next",
	Play:            "play",
	Reselect:        "reselect",
	Down:            "down",
	Up:              "up",
	JumpDown:        "jump_down",
	JumpUp:          "jump_up",
	GotoTop:         "goto_top",
	GotoBottom:      "goto_bottom",
	InputSearch:     "input_search",
	BackspaceSearch: "backspace_search",
	QuitSearch:      "quit_search",
	ClearSearch:     "clear_search",
	Searching:       "searching",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Command is one user intent. Rune carries the character of InputSearch and
// On the mode of Searching.
type Command struct {
	Kind Kind
	Rune rune
	On   bool
}

// Cmd returns a command without payload.
func Cmd(k Kind) Command { return Command{Kind: k} }

// Input appends r to the search query.
func Input(r rune) Command { return Command{Kind: InputSearch, Rune: r} }

// SetSearching enters or leaves text entry.
func SetSearching(on bool) Command { return Command{Kind: Searching, On: on} }

func (c Command) String() string {
	switch c.Kind {
	case InputSearch:
		return c.Kind.String() + "(" + strconv.QuoteRune(c.Rune) + ")"
	case Searching:
		return c.Kind.String() + "(" + strconv.FormatBool(c.On) + ")"
	}
	return c.Kind.String()
}

// Remote reports whether the command is carried out by the daemon.
func (c Command) Remote() bool {
	switch c.Kind {
	case ToggleRepeat, ToggleRandom, ToggleSingle, ToggleOneshot, ToggleConsume,
		TogglePause, Stop, SeekBackwards, SeekForwards, Previous, Next, Play:
		return true
	}
	return false
}

// RequestFor returns the request line for a daemon command given the
// current status, and the operation to report if it fails. Play is not
// covered since its target depends on the selection; see PlayTarget.
func RequestFor(cmd Command, st mpd.Status, seekSecs float64) (string, errmsg.Op, bool) {
	switch cmd.Kind {
	case ToggleRepeat:
		return "repeat " + flag(!st.Repeat), errmsg.OpToggleRepeat, true
	case ToggleRandom:
		return "random " + flag(!st.Random), errmsg.OpToggleRandom, true
	case ToggleSingle:
		if st.Single == mpd.SingleOn {
			return "single 0", errmsg.OpToggleSingle, true
		}
		return "single 1", errmsg.OpToggleSingle, true
	case ToggleOneshot:
		if st.Single == mpd.SingleOneshot {
			return "single 0", errmsg.OpToggleOneshot, true
		}
		return "single oneshot", errmsg.OpToggleOneshot, true
	case ToggleConsume:
		return "consume " + flag(!st.Consume), errmsg.OpToggleConsume, true
	case TogglePause:
		if st.State == mpd.Stop {
			return "play", errmsg.OpTogglePause, true
		}
		return "pause", errmsg.OpTogglePause, true
	case Stop:
		return "stop", errmsg.OpStop, true
	case SeekBackwards:
		return "seekcur -" + seconds(seekSecs), errmsg.OpSeekBackwards, true
	case SeekForwards:
		return "seekcur +" + seconds(seekSecs), errmsg.OpSeekForwards, true
	case Previous:
		return "previous", errmsg.OpPrevious, true
	case Next:
		return "next", errmsg.OpNext, true
	}
	return "", "", false
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func seconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
