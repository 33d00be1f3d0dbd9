package keymap

import "github.com/llehouerou/mpdwaves/internal/session"

func cmd(k session.Kind) session.Command { return session.Cmd(k) }

// Bindings is the fixed key table.
var Bindings = []Binding{
	// Global
	bind(Global, cmd(session.Quit), "q", "ctrl+q"),
	bind(Global, session.SetSearching(true), "/"),
	bind(Global, cmd(session.QuitSearch), "esc"),

	// Player
	bind(Global, cmd(session.ToggleRepeat), "r"),
	bind(Global, cmd(session.ToggleRandom), "R"),
	bind(Global, cmd(session.ToggleSingle), "s"),
	bind(Global, cmd(session.ToggleOneshot), "S"),
	bind(Global, cmd(session.ToggleConsume), "c"),
	bind(Global, cmd(session.TogglePause), "p"),
	bind(Global, cmd(session.Stop), ";"),
	bind(Global, cmd(session.SeekBackwards), "h", "left"),
	bind(Global, cmd(session.SeekForwards), "l", "right"),
	bind(Global, cmd(session.Previous), "H"),
	bind(Global, cmd(session.Next), "L"),
	bind(Global, cmd(session.Play), "enter"),

	// Queue
	bind(Global, cmd(session.Reselect), " ", "space"),
	bind(Global, cmd(session.Down), "j", "down"),
	bind(Global, cmd(session.Up), "k", "up"),
	bind(Global, cmd(session.JumpDown), "J", "pgdown"),
	bind(Global, cmd(session.JumpUp), "K", "pgup"),
	bind(Global, cmd(session.GotoTop), "g", "home"),
	bind(Global, cmd(session.GotoBottom), "G", "end"),

	// Search entry
	bind(Search, session.SetSearching(false), "enter"),
	bind(Search, cmd(session.BackspaceSearch), "backspace"),
	bind(Search, cmd(session.ClearSearch), "ctrl+u"),
}
