// Package template defines the declarative layout document: widgets that
// partition the screen, inline texts evaluated against player state,
// conditions, and style modifiers. Documents are immutable once decoded.
package template

// Widget is a node of the panel tree.
type Widget interface {
	widget()
}

// Rows stacks its children vertically.
type Rows struct {
	Children []Constrained[Widget]
}

// Columns places its children side by side.
type Columns struct {
	Children []Constrained[Widget]
}

// Align is the horizontal alignment of a Textbox line.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Textbox renders one line of texts.
type Textbox struct {
	Align   Align
	Content Texts
}

// Queue renders one row per visible queue entry.
type Queue struct {
	Columns []Column
}

// Column is one column of a Queue widget.
type Column struct {
	Item          Constrained[Texts]
	Style         []StyleMod
	SelectedStyle []StyleMod
}

func (*Rows) widget()    {}
func (*Columns) widget() {}
func (*Textbox) widget() {}
func (*Queue) widget()   {}

// Sizing is the policy a Constrained value is laid out with.
type Sizing int

const (
	Fixed Sizing = iota
	Max
	Min
	Ratio
)

func (s Sizing) String() string {
	switch s {
	case Fixed:
		return "fixed"
	case Max:
		return "max"
	case Min:
		return "min"
	case Ratio:
		return "ratio"
	}
	return "unknown"
}

// Constrained pairs a value with its sizing policy. N is a cell count for
// Fixed, Max and Min, and a weight for Ratio.
type Constrained[T any] struct {
	Sizing Sizing
	N      int
	Value  T
}

// RatioDenominator sums the weights of the Ratio entries.
func RatioDenominator[T any](xs []Constrained[T]) int {
	denom := 0
	for _, x := range xs {
		if x.Sizing == Ratio {
			denom += x.N
		}
	}
	return denom
}
