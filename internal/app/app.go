package app

import (
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/mpdwaves/internal/errmsg"
	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/mpd"
	"github.com/llehouerou/mpdwaves/internal/session"
	"github.com/llehouerou/mpdwaves/internal/template"
	"github.com/llehouerou/mpdwaves/internal/ui/cursor"
)

// Options configures a Model.
type Options struct {
	Layout           template.Widget
	Session          session.Options
	SearchFields     mpd.SearchFields
	SeekSecs         float64
	ClearQueryOnPlay bool
	UPS              float64
	Logger           *slog.Logger
}

// Model is the bubbletea model. Update is the only writer of Session.
type Model struct {
	Session *session.Session
	Width   int
	Height  int

	daemon  Daemon
	watcher Watcher
	keys    *keymap.Resolver
	cursor  *cursor.Cursor
	layout  template.Widget

	fields           mpd.SearchFields
	seekSecs         float64
	clearQueryOnPlay bool
	interval         time.Duration

	log *slog.Logger
	err error
}

// New loads the initial status and queue over daemon.
func New(daemon Daemon, watcher Watcher, opts Options) (Model, error) {
	if opts.Layout == nil {
		opts.Layout = template.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := Model{
		Session:          session.New(opts.Session),
		daemon:           daemon,
		watcher:          watcher,
		keys:             keymap.NewResolver(keymap.Bindings),
		cursor:           cursor.New(0),
		layout:           opts.Layout,
		fields:           opts.SearchFields,
		seekSecs:         opts.SeekSecs,
		clearQueryOnPlay: opts.ClearQueryOnPlay,
		interval:         interval(opts.UPS),
		log:              opts.Logger,
	}

	if err := m.refresh(true); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts the idle listener and the status ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForIdle(m.watcher), tickCmd(m.interval))
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// refresh reloads the status, and the queue when queue is set. The status
// comes first since its queue length sizes the queue dump.
func (m *Model) refresh(queue bool) error {
	st, err := m.daemon.Status()
	if err != nil {
		return errmsg.Wrap(errmsg.OpQueryStatus, err)
	}
	m.Session.SetStatus(st)
	if !queue {
		return nil
	}

	tracks, idx, err := m.daemon.Queue(st.QueueLen, m.fields)
	if err != nil {
		return errmsg.Wrap(errmsg.OpQueryQueue, err)
	}
	m.Session.SetQueue(tracks, idx)
	m.log.Debug("queue refreshed", "tracks", humanize.Comma(int64(len(tracks))))
	return nil
}
