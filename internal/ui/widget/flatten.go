package widget

import (
	"fmt"

	"github.com/llehouerou/mpdwaves/internal/mpd"
	"github.com/llehouerou/mpdwaves/internal/template"
	"github.com/llehouerou/mpdwaves/internal/ui/render"
	"github.com/llehouerou/mpdwaves/internal/ui/styles"
)

// Span is one styled run of text.
type Span = render.Span

// Flatten evaluates t against ctx into spans. Fields that are absent produce
// no span at all.
func Flatten(t template.Texts, ctx *Context) []Span {
	return flatten(nil, t, ctx, styles.Style{})
}

func flatten(out []Span, t template.Texts, ctx *Context, st styles.Style) []Span {
	switch t := t.(type) {
	case template.Text:
		return append(out, Span{Text: string(t), Style: st})

	case template.Field:
		if s, ok := field(t, ctx); ok {
			return append(out, Span{Text: s, Style: st})
		}
		return out

	case *template.Styled:
		return flatten(out, t.Content, ctx, st.Patch(t.Mods))

	case template.Parts:
		for _, part := range t {
			out = flatten(out, part, ctx, st)
		}
		return out

	case *template.If:
		if Eval(t.Cond, ctx) {
			return flatten(out, t.Then, ctx, st)
		}
		if t.Else != nil {
			return flatten(out, t.Else, ctx, st)
		}
	}
	return out
}

func field(f template.Field, ctx *Context) (string, bool) {
	switch f {
	case template.CurrentElapsed:
		if ctx.Status == nil || ctx.Status.Song == nil {
			return "", false
		}
		return FormatDuration(ctx.Status.Song.Elapsed), true
	case template.CurrentDuration:
		if ctx.CurrentTrack == nil {
			return "", false
		}
		return FormatDuration(ctx.CurrentTrack.Time), true
	case template.CurrentFile:
		if ctx.CurrentTrack == nil {
			return "", false
		}
		return ctx.CurrentTrack.File, true
	case template.CurrentTitle:
		return optional(ctx.CurrentTrack, func(t *mpd.Track) *string { return t.Title })
	case template.CurrentArtist:
		return optional(ctx.CurrentTrack, func(t *mpd.Track) *string { return t.Artist })
	case template.CurrentAlbum:
		return optional(ctx.CurrentTrack, func(t *mpd.Track) *string { return t.Album })
	case template.QueueDuration:
		if ctx.QueueTrack == nil {
			return "", false
		}
		return FormatDuration(ctx.QueueTrack.Time), true
	case template.QueueFile:
		if ctx.QueueTrack == nil {
			return "", false
		}
		return ctx.QueueTrack.File, true
	case template.QueueTitle:
		return optional(ctx.QueueTrack, func(t *mpd.Track) *string { return t.Title })
	case template.QueueArtist:
		return optional(ctx.QueueTrack, func(t *mpd.Track) *string { return t.Artist })
	case template.QueueAlbum:
		return optional(ctx.QueueTrack, func(t *mpd.Track) *string { return t.Album })
	case template.Query:
		return ctx.Query, true
	}
	return "", false
}

func optional(t *mpd.Track, get func(*mpd.Track) *string) (string, bool) {
	if t == nil {
		return "", false
	}
	if v := get(t); v != nil {
		return *v, true
	}
	return "", false
}

// FormatDuration formats seconds as m:ss.
func FormatDuration(secs int) string {
	secs = max(secs, 0)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
