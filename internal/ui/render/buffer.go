package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/mpdwaves/internal/template"
	"github.com/llehouerou/mpdwaves/internal/ui/layout"
	"github.com/llehouerou/mpdwaves/internal/ui/styles"
)

// Span is a run of text drawn with one style.
type Span struct {
	Text  string
	Style styles.Style
}

// SpansWidth is the total cell width of spans after sanitizing.
func SpansWidth(spans []Span) int {
	w := 0
	for _, s := range spans {
		w += Width(Sanitize(s.Text))
	}
	return w
}

// Cell is one screen cell. A wide grapheme occupies its first cell; the
// cells it covers after that are marked as continuations.
type Cell struct {
	Content string
	Style   styles.Style
	cont    bool
}

// Buffer is a grid of cells covering a full frame.
type Buffer struct {
	width, height int
	cells         []Cell
}

// NewBuffer returns a buffer of blank, unstyled cells.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range b.cells {
		b.cells[i].Content = " "
	}
	return b
}

// Area is the rectangle the buffer covers.
func (b *Buffer) Area() layout.Rect {
	return layout.Rect{Width: b.width, Height: b.height}
}

// Cell returns the cell at (x, y), or nil outside the buffer.
func (b *Buffer) Cell(x, y int) *Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return nil
	}
	return &b.cells[y*b.width+x]
}

// SetStyle merges st over every cell of area.
func (b *Buffer) SetStyle(area layout.Rect, st styles.Style) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			if c := b.Cell(x, y); c != nil {
				c.Style = styles.Merge(c.Style, st)
			}
		}
	}
}

// SetSpans draws spans left to right starting at (x, y), writing no more than
// maxWidth cells. Span styles are merged over the styles already in the
// cells. Drawing stops at the first grapheme that does not fit, so a later
// span never fills the gap a clipped wide grapheme leaves. It returns the
// number of cells written.
func (b *Buffer) SetSpans(x, y, maxWidth int, spans []Span) int {
	written := 0
	for _, s := range spans {
		n, ok := b.setString(x+written, y, maxWidth-written, s.Text, s.Style)
		written += n
		if !ok || written >= maxWidth {
			break
		}
	}
	return written
}

// setString reports the cells written and whether all of s fit.
func (b *Buffer) setString(x, y, maxWidth int, s string, st styles.Style) (int, bool) {
	if maxWidth <= 0 {
		return 0, s == ""
	}

	written := 0
	gr := uniseg.NewGraphemes(Sanitize(s))
	for gr.Next() {
		g := gr.Str()
		if g == "\t" {
			g = " "
		}
		w := runewidth.StringWidth(g)
		if w == 0 {
			continue
		}
		if written+w > maxWidth {
			return written, false
		}

		c := b.Cell(x+written, y)
		if c == nil {
			return written, false
		}
		c.Content = g
		c.Style = styles.Merge(c.Style, st)
		c.cont = false
		for i := 1; i < w; i++ {
			if next := b.Cell(x+written+i, y); next != nil {
				next.Content = ""
				next.Style = c.Style
				next.cont = true
			}
		}
		written += w
	}
	return written, true
}

// Line returns row y as plain text.
func (b *Buffer) Line(y int) string {
	var sb strings.Builder
	for x := range b.width {
		c := b.Cell(x, y)
		if c.cont {
			continue
		}
		sb.WriteString(c.Content)
	}
	return sb.String()
}

// String renders the buffer with lipgloss, one line per row. Adjacent cells
// with equal styles are rendered as one run.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range b.height {
		var sb strings.Builder
		var run strings.Builder
		var runStyle styles.Style

		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(renderRun(run.String(), runStyle))
			run.Reset()
		}

		for x := range b.width {
			c := b.Cell(x, y)
			if c.cont {
				continue
			}
			if !c.Style.Equal(runStyle) {
				flush()
				runStyle = c.Style
			}
			run.WriteString(c.Content)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func renderRun(text string, st styles.Style) string {
	if st.Has(template.Hidden) {
		text = strings.Repeat(" ", Width(text))
	}
	return st.Lipgloss().Render(text)
}
