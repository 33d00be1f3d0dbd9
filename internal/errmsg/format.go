// Package errmsg provides consistent error wrapping for fatal, user-facing
// failures.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpConnect    Op = "connect to the daemon"
	OpLoadConfig Op = "load config"
	OpRunUI      Op = "run the interface"

	// Refreshes
	OpQueryStatus Op = "query status"
	OpQueryQueue  Op = "query queue"
	OpWaitChanges Op = "wait for changes"

	// Player commands
	OpToggleRepeat  Op = "toggle repeat"
	OpToggleRandom  Op = "toggle random"
	OpToggleSingle  Op = "toggle single"
	OpToggleOneshot Op = "toggle oneshot"
	OpToggleConsume Op = "toggle consume"
	OpTogglePause   Op = "toggle pause"
	OpStop          Op = "stop playing"
	OpSeekBackwards Op = "seek backwards"
	OpSeekForwards  Op = "seek forwards"
	OpPrevious      Op = "play previous song"
	OpNext          Op = "play next song"
	OpPlay          Op = "play the selected song"

	// One-off mode
	OpRunCommand Op = "run command"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// Wrap returns err annotated with op, or nil for a nil err. The result
// unwraps to err.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// WrapWith is Wrap with extra context, such as an address or a command line.
func WrapWith(op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	if context == "" {
		return Wrap(op, err)
	}
	return fmt.Errorf("failed to %s '%s': %w", op, context, err)
}
