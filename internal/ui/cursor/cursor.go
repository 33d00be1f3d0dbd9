// Package cursor tracks the highlighted row of a scrolling list and the
// window of rows currently on screen.
package cursor

// Cursor holds a highlighted position and a scroll offset. The list length
// and viewport height are passed in on every call since both change between
// frames. Every column of a queue draws against the same Cursor so their
// rows stay aligned.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below pos
}

// New creates a Cursor with the given scroll margin.
func New(margin int) *Cursor {
	return &Cursor{margin: margin}
}

// Pos returns the highlighted row.
func (c *Cursor) Pos() int { return c.pos }

// Offset returns the first row on screen.
func (c *Cursor) Offset() int { return c.offset }

// Jump highlights pos, clamped to the list, and scrolls it into view.
// An empty list resets the cursor.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen <= 0 {
		c.Reset()
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.EnsureVisible(listLen, height)
}

// EnsureVisible moves the scroll offset the least needed to show pos with
// its margin, without scrolling past the end of the list.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen <= 0 {
		return
	}

	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// VisibleRange returns the rows on screen as [start, end).
func (c *Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen <= 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	end = min(start+height, listLen)
	return start, end
}

// Reset moves the cursor and the scroll offset back to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
