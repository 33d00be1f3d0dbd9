package mpd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"path/filepath"
	"strconv"
	"strings"
)

const greeting = "OK MPD "

// Client is one protocol connection. A Client is not safe for concurrent use;
// open a second one for idle waits so they never block commands.
type Client struct {
	conn    net.Conn
	r       *bufio.Reader
	w       *bufio.Writer
	version string

	// OnAck is called for ACK replies to Play and Command, which otherwise
	// succeed.
	OnAck func(*AckError)
}

// Dial connects to addr and performs the greeting handshake. Absolute paths
// are dialed as unix sockets.
func Dial(ctx context.Context, addr string) (*Client, error) {
	network := "tcp"
	if filepath.IsAbs(addr) {
		network = "unix"
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}

	c, err := NewClient(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

// NewClient wraps an established connection and consumes the greeting.
func NewClient(conn net.Conn) (*Client, error) {
	c := &Client{
		conn: conn,
		r:    bufio.NewReader(conn),
		w:    bufio.NewWriter(conn),
	}

	buf := make([]byte, len(greeting))
	if _, err := io.ReadFull(c.r, buf); err != nil {
		return nil, fmt.Errorf("read greeting: %w", err)
	}
	if string(buf) != greeting {
		return nil, ErrBadGreeting
	}

	version, err := c.r.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("read greeting: %w", err)
	}
	c.version = strings.TrimSuffix(version, "\n")

	return c, nil
}

// Version returns the protocol version the server announced.
func (c *Client) Version() string {
	return c.version
}

// Close closes the connection, unblocking any pending Idle.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Status queries the player status.
func (c *Client) Status() (Status, error) {
	return c.status()
}

func (c *Client) status() (Status, error) {
	var (
		st                              Status
		repeat, random, single, consume bool
		queueLen                        bool
		pos, elapsed                    = -1, -1
	)

	if err := c.send("status"); err != nil {
		return st, err
	}

	for {
		line, err := c.readLine()
		if err != nil {
			return st, err
		}

		switch line {
		case "OK":
			if !repeat || !random || !single || !consume || !queueLen {
				return Status{}, ErrIncompleteResponse
			}
			if pos >= 0 && elapsed >= 0 {
				st.Song = &Song{Pos: pos, Elapsed: elapsed}
			}
			return st, nil
		case "repeat: 0", "repeat: 1":
			st.Repeat, repeat = line == "repeat: 1", true
		case "random: 0", "random: 1":
			st.Random, random = line == "random: 1", true
		case "single: 0":
			st.Single, single = SingleOff, true
		case "single: 1":
			st.Single, single = SingleOn, true
		case "single: oneshot":
			st.Single, single = SingleOneshot, true
		case "consume: 0", "consume: 1":
			st.Consume, consume = line == "consume: 1", true
		case "state: play":
			st.State = Play
		case "state: pause":
			st.State = Pause
		case "state: stop":
			st.State = Stop
		default:
			if strings.HasPrefix(line, "ACK ") {
				return Status{}, parseAck(line)
			}
			if v, ok := strings.CutPrefix(line, "playlistlength: "); ok {
				if st.QueueLen, err = strconv.Atoi(v); err != nil {
					return Status{}, fmt.Errorf("parse playlistlength: %w", err)
				}
				queueLen = true
			} else if v, ok := strings.CutPrefix(line, "song: "); ok {
				if pos, err = strconv.Atoi(v); err != nil {
					return Status{}, fmt.Errorf("parse song: %w", err)
				}
			} else if v, ok := strings.CutPrefix(line, "elapsed: "); ok {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return Status{}, fmt.Errorf("parse elapsed: %w", err)
				}
				elapsed = int(math.Round(f))
			}
		}
	}
}

// Queue dumps the playlist. lenHint sizes the result; the index is built
// from the enabled fields alongside each track.
func (c *Client) Queue(lenHint int, fields SearchFields) ([]Track, SearchIndex, error) {
	return c.queue(lenHint, fields)
}

func (c *Client) queue(lenHint int, fields SearchFields) ([]Track, SearchIndex, error) {
	tracks := make([]Track, 0, max(lenHint, 0))
	index := make(SearchIndex, 0, max(lenHint, 0))

	var (
		cur     *Track
		hasTime bool
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if !hasTime {
			return fmt.Errorf("%w: %q has no duration", ErrIncompleteResponse, cur.File)
		}
		index = append(index, searchString(cur, fields))
		tracks = append(tracks, *cur)
		cur = nil
		return nil
	}

	if err := c.send("playlistinfo"); err != nil {
		return nil, nil, err
	}

	for {
		line, err := c.readLine()
		if err != nil {
			return nil, nil, err
		}

		if line == "OK" {
			if err := flush(); err != nil {
				return nil, nil, err
			}
			return tracks, index, nil
		}
		if strings.HasPrefix(line, "ACK ") {
			return nil, nil, parseAck(line)
		}

		if v, ok := strings.CutPrefix(line, "file: "); ok {
			if err := flush(); err != nil {
				return nil, nil, err
			}
			cur = &Track{File: v}
			hasTime = false
			continue
		}
		if cur == nil {
			continue
		}

		if v, ok := strings.CutPrefix(line, "Artist: "); ok {
			cur.Artist = &v
		} else if v, ok := strings.CutPrefix(line, "Album: "); ok {
			cur.Album = &v
		} else if v, ok := strings.CutPrefix(line, "Title: "); ok {
			cur.Title = &v
		} else if v, ok := strings.CutPrefix(line, "Time: "); ok {
			if cur.Time, err = strconv.Atoi(v); err != nil {
				return nil, nil, fmt.Errorf("parse Time: %w", err)
			}
			hasTime = true
		}
	}
}

// Idle blocks until the daemon reports a change to the queue or to the
// player status/options. Wakeups for other subsystems are ignored.
func (c *Client) Idle() (queueChanged, statusChanged bool, err error) {
	for !queueChanged && !statusChanged {
		if err := c.send("idle options player playlist"); err != nil {
			return false, false, err
		}

	read:
		for {
			line, err := c.readLine()
			if err != nil {
				return false, false, err
			}

			switch line {
			case "changed: playlist":
				queueChanged = true
			case "changed: player", "changed: options":
				statusChanged = true
			case "OK":
				break read
			default:
				if strings.HasPrefix(line, "ACK ") {
					return false, false, parseAck(line)
				}
			}
		}
	}
	return queueChanged, statusChanged, nil
}

// Play starts playback at queue position pos.
func (c *Client) Play(pos int) error {
	return c.Command("play " + strconv.Itoa(pos))
}

// Command sends one raw request line and discards the response.
func (c *Client) Command(cmd string) error {
	if err := c.send(cmd); err != nil {
		return err
	}
	return c.drain(nil)
}

// CommandTo sends one raw request line and copies every response line,
// including the final OK or ACK, to w.
func (c *Client) CommandTo(w io.Writer, cmd string) error {
	if err := c.send(cmd); err != nil {
		return err
	}
	return c.drain(w)
}

func (c *Client) drain(w io.Writer) error {
	for {
		line, err := c.readLine()
		if err != nil {
			return err
		}
		if w != nil {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}

		if line == "OK" {
			return nil
		}
		if strings.HasPrefix(line, "ACK ") {
			if c.OnAck != nil {
				c.OnAck(parseAck(line))
			}
			return nil
		}
	}
}

func (c *Client) send(cmd string) error {
	if _, err := c.w.WriteString(strings.TrimRight(cmd, "\n") + "\n"); err != nil {
		return err
	}
	return c.w.Flush()
}

func (c *Client) readLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
