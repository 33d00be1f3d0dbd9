package mpd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrBadGreeting is returned when the server does not open with "OK MPD ".
	ErrBadGreeting = errors.New("server did not greet with a success")

	// ErrIncompleteResponse is returned when a response ended before every
	// mandatory field was seen.
	ErrIncompleteResponse = errors.New("incomplete response")
)

// AckError is an application-level failure reported by the daemon:
//
//	ACK [code@index] {command} message
type AckError struct {
	Code    int
	Index   int
	Command string
	Message string
}

func (e *AckError) Error() string {
	if e.Command == "" {
		return "mpd: " + e.Message
	}
	return fmt.Sprintf("mpd: %s: %s", e.Command, e.Message)
}

// parseAck decodes an ACK line. Lines that do not follow the documented
// layout keep their text as the message.
func parseAck(line string) *AckError {
	rest := strings.TrimPrefix(line, "ACK ")
	ack := &AckError{Message: rest}

	if !strings.HasPrefix(rest, "[") {
		return ack
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return ack
	}
	codeIdx := rest[1:end]
	if code, idx, ok := strings.Cut(codeIdx, "@"); ok {
		ack.Code, _ = strconv.Atoi(code)
		ack.Index, _ = strconv.Atoi(idx)
	}

	rest = strings.TrimSpace(rest[end+1:])
	if strings.HasPrefix(rest, "{") {
		if cmdEnd := strings.IndexByte(rest, '}'); cmdEnd >= 0 {
			ack.Command = rest[1:cmdEnd]
			rest = strings.TrimSpace(rest[cmdEnd+1:])
		}
	}
	ack.Message = rest
	return ack
}
