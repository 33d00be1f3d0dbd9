package widget

import (
	"github.com/llehouerou/mpdwaves/internal/mpd"
	"github.com/llehouerou/mpdwaves/internal/template"
)

// Context is what texts and conditions are evaluated against. QueueTrack,
// QueueCurrent and Selected are only set while rendering a queue row.
type Context struct {
	Status       *mpd.Status
	CurrentTrack *mpd.Track
	QueueTrack   *mpd.Track
	QueueCurrent bool
	Selected     bool
	Searching    bool
	Query        string
}

// Eval evaluates c against ctx.
func Eval(c template.Condition, ctx *Context) bool {
	switch c := c.(type) {
	case template.Predicate:
		return predicate(c, ctx)
	case *template.Not:
		return !Eval(c.Cond, ctx)
	case *template.And:
		return Eval(c.Left, ctx) && Eval(c.Right, ctx)
	case *template.Or:
		return Eval(c.Left, ctx) || Eval(c.Right, ctx)
	case *template.Xor:
		return Eval(c.Left, ctx) != Eval(c.Right, ctx)
	}
	return false
}

func predicate(p template.Predicate, ctx *Context) bool {
	st := ctx.Status
	if st == nil {
		st = &mpd.Status{}
	}

	switch p {
	case template.Repeat:
		return st.Repeat
	case template.Random:
		return st.Random
	case template.Single:
		return st.Single == mpd.SingleOn
	case template.Oneshot:
		return st.Single == mpd.SingleOneshot
	case template.Consume:
		return st.Consume
	case template.Playing:
		return st.State == mpd.Play
	case template.Paused:
		return st.State == mpd.Pause
	case template.Stopped:
		return st.State == mpd.Stop
	case template.TitleExist:
		return ctx.CurrentTrack != nil && ctx.CurrentTrack.Title != nil
	case template.ArtistExist:
		return ctx.CurrentTrack != nil && ctx.CurrentTrack.Artist != nil
	case template.AlbumExist:
		return ctx.CurrentTrack != nil && ctx.CurrentTrack.Album != nil
	case template.QueueTitleExist:
		return ctx.QueueTrack != nil && ctx.QueueTrack.Title != nil
	case template.QueueCurrent:
		return ctx.QueueCurrent
	case template.Selected:
		return ctx.Selected
	case template.Searching:
		return ctx.Searching
	case template.Filtered:
		return ctx.Query != ""
	}
	return false
}
