// Package layout provides pure functions for partitioning screen space.
package layout

// Rect is a rectangular screen area in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the area has no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Direction is the axis a Rect is split along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// Kind is the sizing rule of a Constraint.
type Kind int

const (
	KindLength Kind = iota
	KindMax
	KindMin
	KindRatio
)

// Constraint sizes one slot of a split.
type Constraint struct {
	Kind  Kind
	N     int
	Denom int // KindRatio only
}

// Length asks for exactly n cells.
func Length(n int) Constraint { return Constraint{Kind: KindLength, N: n} }

// Max asks for up to n cells.
func Max(n int) Constraint { return Constraint{Kind: KindMax, N: n} }

// Min asks for at least n cells.
func Min(n int) Constraint { return Constraint{Kind: KindMin, N: n} }

// Ratio asks for w/denom of the space left after the other slots.
func Ratio(w, denom int) Constraint { return Constraint{Kind: KindRatio, N: w, Denom: denom} }

// Split divides total cells among the constraints. The result always sums to
// total (when there is at least one constraint):
//
//   - Length and Min slots get their n. If that overflows, Min slots shrink
//     first, then Length slots, both from the last one backwards.
//   - Max slots take up to n from what remains, in order.
//   - Ratio slots share the rest by weight, rounded down.
//   - Leftover cells go to the last Ratio slot, else the last Min, else the
//     last Max, else the last non-Length slot. Only an all-Length split
//     stretches a Length slot.
func Split(total int, cs []Constraint) []int {
	out := make([]int, len(cs))
	if len(cs) == 0 {
		return out
	}
	total = max(total, 0)

	used := 0
	for i, c := range cs {
		if c.Kind == KindLength || c.Kind == KindMin {
			out[i] = max(c.N, 0)
			used += out[i]
		}
	}
	if used > total {
		over := used - total
		over = shrink(out, cs, KindMin, over)
		shrink(out, cs, KindLength, over)
		used = total
	}
	avail := total - used

	for i, c := range cs {
		if c.Kind == KindMax {
			out[i] = min(max(c.N, 0), avail)
			avail -= out[i]
		}
	}

	share := avail
	for i, c := range cs {
		if c.Kind == KindRatio && c.Denom > 0 {
			out[i] = max(c.N, 0) * share / c.Denom
			avail -= out[i]
		}
	}

	if avail > 0 {
		out[leftoverSlot(cs)] += avail
	}
	return out
}

func shrink(out []int, cs []Constraint, kind Kind, over int) int {
	for i := len(cs) - 1; i >= 0 && over > 0; i-- {
		if cs[i].Kind != kind {
			continue
		}
		take := min(out[i], over)
		out[i] -= take
		over -= take
	}
	return over
}

func leftoverSlot(cs []Constraint) int {
	last := func(match func(Constraint) bool) int {
		for i := len(cs) - 1; i >= 0; i-- {
			if match(cs[i]) {
				return i
			}
		}
		return -1
	}
	for _, match := range []func(Constraint) bool{
		func(c Constraint) bool { return c.Kind == KindRatio && c.Denom > 0 },
		func(c Constraint) bool { return c.Kind == KindMin },
		func(c Constraint) bool { return c.Kind == KindMax },
		func(c Constraint) bool { return c.Kind != KindLength },
	} {
		if i := last(match); i >= 0 {
			return i
		}
	}
	return len(cs) - 1
}

// SplitRect partitions area along dir. Vertical stacks slots top to bottom,
// Horizontal places them left to right.
func SplitRect(area Rect, dir Direction, cs []Constraint) []Rect {
	total := area.Height
	if dir == Horizontal {
		total = area.Width
	}

	sizes := Split(total, cs)
	rects := make([]Rect, len(sizes))
	offset := 0
	for i, n := range sizes {
		r := area
		if dir == Horizontal {
			r.X += offset
			r.Width = n
		} else {
			r.Y += offset
			r.Height = n
		}
		rects[i] = r
		offset += n
	}
	return rects
}
