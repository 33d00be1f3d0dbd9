// Package widget renders a layout document into a frame buffer.
package widget

import (
	"github.com/llehouerou/mpdwaves/internal/mpd"
	"github.com/llehouerou/mpdwaves/internal/template"
	"github.com/llehouerou/mpdwaves/internal/ui/cursor"
	"github.com/llehouerou/mpdwaves/internal/ui/layout"
	"github.com/llehouerou/mpdwaves/internal/ui/render"
	"github.com/llehouerou/mpdwaves/internal/ui/styles"
)

// State is everything a frame is rendered from.
type State struct {
	Status    mpd.Status
	Queue     []mpd.Track
	Filtered  []int // queue positions matching Query
	Query     string
	Searching bool
	Selected  int // index into the visible rows

	// Cursor keeps the queue scroll offset between frames. A nil Cursor
	// always scrolls from the top.
	Cursor *cursor.Cursor
}

// Visible returns the queue positions shown, in display order.
func (s *State) Visible() []int {
	if s.Query != "" {
		return s.Filtered
	}
	all := make([]int, len(s.Queue))
	for i := range all {
		all[i] = i
	}
	return all
}

// CurrentTrack is the queue entry the daemon reports as current.
func (s *State) CurrentTrack() *mpd.Track {
	if s.Status.Song == nil {
		return nil
	}
	pos := s.Status.Song.Pos
	if pos < 0 || pos >= len(s.Queue) {
		return nil
	}
	return &s.Queue[pos]
}

func (s *State) context() Context {
	return Context{
		Status:       &s.Status,
		CurrentTrack: s.CurrentTrack(),
		Searching:    s.Searching,
		Query:        s.Query,
	}
}

// Frame renders w over a width x height buffer and returns it as styled
// terminal text.
func Frame(w template.Widget, st *State, width, height int) string {
	buf := render.NewBuffer(width, height)
	Render(buf, buf.Area(), w, st)
	return buf.String()
}

// Render draws w into area of buf.
func Render(buf *render.Buffer, area layout.Rect, w template.Widget, st *State) {
	if area.Empty() {
		return
	}

	switch w := w.(type) {
	case *template.Rows:
		renderChildren(buf, area, layout.Vertical, w.Children, st)
	case *template.Columns:
		renderChildren(buf, area, layout.Horizontal, w.Children, st)
	case *template.Textbox:
		renderTextbox(buf, area, w, st)
	case *template.Queue:
		renderQueue(buf, area, w, st)
	}
}

func renderChildren(buf *render.Buffer, area layout.Rect, dir layout.Direction, children []template.Constrained[template.Widget], st *State) {
	denom := template.RatioDenominator(children)
	cs := make([]layout.Constraint, len(children))
	for i, c := range children {
		cs[i] = constraint(c.Sizing, c.N, denom)
	}

	for i, r := range layout.SplitRect(area, dir, cs) {
		Render(buf, r, children[i].Value, st)
	}
}

func constraint(s template.Sizing, n, denom int) layout.Constraint {
	switch s {
	case template.Max:
		return layout.Max(n)
	case template.Min:
		return layout.Min(n)
	case template.Ratio:
		return layout.Ratio(n, denom)
	}
	return layout.Length(n)
}

func renderTextbox(buf *render.Buffer, area layout.Rect, tb *template.Textbox, st *State) {
	ctx := st.context()
	spans := Flatten(tb.Content, &ctx)

	offset := 0
	if gap := area.Width - render.SpansWidth(spans); gap > 0 {
		switch tb.Align {
		case template.AlignCenter:
			offset = gap / 2
		case template.AlignRight:
			offset = gap
		}
	}
	buf.SetSpans(area.X+offset, area.Y, area.Width-offset, spans)
}

func renderQueue(buf *render.Buffer, area layout.Rect, q *template.Queue, st *State) {
	visible := st.Visible()

	cur := st.Cursor
	if cur == nil {
		cur = cursor.New(0)
	}
	cur.Jump(st.Selected, len(visible), area.Height)
	start, end := cur.VisibleRange(len(visible), area.Height)

	items := make([]template.Constrained[template.Texts], len(q.Columns))
	for i, col := range q.Columns {
		items[i] = col.Item
	}
	denom := template.RatioDenominator(items)
	cs := make([]layout.Constraint, len(items))
	for i, it := range items {
		cs[i] = constraint(it.Sizing, it.N, denom)
	}

	current := -1
	if st.Status.Song != nil {
		current = st.Status.Song.Pos
	}
	base := st.context()

	for i, rect := range layout.SplitRect(area, layout.Horizontal, cs) {
		if rect.Empty() {
			continue
		}
		col := q.Columns[i]
		buf.SetStyle(rect, styles.Style{}.Patch(col.Style))
		selected := styles.Style{}.Patch(col.SelectedStyle)

		for row := start; row < end; row++ {
			pos := visible[row]
			if pos < 0 || pos >= len(st.Queue) {
				continue
			}
			y := rect.Y + row - start

			ctx := base
			ctx.QueueTrack = &st.Queue[pos]
			ctx.QueueCurrent = pos == current
			ctx.Selected = row == st.Selected

			buf.SetSpans(rect.X, y, rect.Width, Flatten(col.Item.Value, &ctx))
			if ctx.Selected {
				buf.SetStyle(layout.Rect{X: rect.X, Y: y, Width: rect.Width, Height: 1}, selected)
			}
		}
	}
}
