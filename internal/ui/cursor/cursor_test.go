package cursor

import "testing"

func TestNew(t *testing.T) {
	c := New(2)
	if c.Pos() != 0 {
		t.Errorf("New() pos = %d, want 0", c.Pos())
	}
	if c.Offset() != 0 {
		t.Errorf("New() offset = %d, want 0", c.Offset())
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		startPos   int
		startOff   int
		pos        int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{
			name:       "within first page",
			pos:        3,
			len:        10,
			height:     5,
			wantPos:    3,
			wantOffset: 0,
		},
		{
			name:       "below the page scrolls down",
			pos:        7,
			len:        10,
			height:     5,
			wantPos:    7,
			wantOffset: 3,
		},
		{
			name:       "above the page scrolls up",
			startPos:   7,
			startOff:   3,
			pos:        1,
			len:        10,
			height:     5,
			wantPos:    1,
			wantOffset: 1,
		},
		{
			name:       "past the end clamps",
			pos:        20,
			len:        10,
			height:     5,
			wantPos:    9,
			wantOffset: 5,
		},
		{
			name:       "negative clamps to 0",
			startPos:   4,
			startOff:   2,
			pos:        -3,
			len:        10,
			height:     5,
			wantPos:    0,
			wantOffset: 0,
		},
		{
			name:       "margin scrolls early",
			margin:     2,
			pos:        3,
			len:        10,
			height:     5,
			wantPos:    3,
			wantOffset: 1,
		},
		{
			name:       "list shrank below the offset",
			startPos:   9,
			startOff:   5,
			pos:        9,
			len:        4,
			height:     5,
			wantPos:    3,
			wantOffset: 0,
		},
		{
			name:       "empty list resets",
			startPos:   4,
			startOff:   2,
			pos:        4,
			len:        0,
			height:     5,
			wantPos:    0,
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cursor{pos: tt.startPos, offset: tt.startOff, margin: tt.margin}
			c.Jump(tt.pos, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("Jump() pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("Jump() offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestJump_KeepsOffsetWhileVisible(t *testing.T) {
	c := New(0)
	c.Jump(9, 20, 5) // offset 5
	for _, pos := range []int{5, 6, 7, 8, 9} {
		c.Jump(pos, 20, 5)
		if c.Offset() != 5 {
			t.Fatalf("Jump(%d) offset = %d, want 5", pos, c.Offset())
		}
	}
}

func TestEnsureVisible_ZeroHeight(t *testing.T) {
	c := &Cursor{pos: 8, offset: 2}
	c.EnsureVisible(10, 0)
	if c.Offset() != 2 {
		t.Errorf("EnsureVisible(height 0) offset = %d, want 2", c.Offset())
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		len       int
		height    int
		wantStart int
		wantEnd   int
	}{
		{"empty list", 0, 0, 10, 0, 0},
		{"zero height", 0, 10, 0, 0, 0},
		{"list shorter than height", 0, 3, 10, 0, 3},
		{"scrolled", 4, 20, 5, 4, 9},
		{"near the end", 8, 10, 5, 8, 10},
		{"offset past the end", 12, 10, 5, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cursor{offset: tt.offset}
			start, end := c.VisibleRange(tt.len, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange() = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestReset(t *testing.T) {
	c := &Cursor{pos: 5, offset: 3, margin: 1}
	c.Reset()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("Reset() = (%d, %d), want (0, 0)", c.Pos(), c.Offset())
	}
}
