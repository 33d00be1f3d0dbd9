package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Attr is a set of text attributes.
type Attr uint16

const (
	Bold Attr = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut
)

var attrNames = map[string]Attr{
	"bold":        Bold,
	"dim":         Dim,
	"italic":      Italic,
	"underlined":  Underlined,
	"slow_blink":  SlowBlink,
	"rapid_blink": RapidBlink,
	"reversed":    Reversed,
	"hidden":      Hidden,
	"crossed_out": CrossedOut,
}

// Has reports whether every attribute of b is set in a.
func (a Attr) Has(b Attr) bool {
	return a&b == b
}

// ModKind is the operation a StyleMod performs.
type ModKind int

const (
	SetFg ModKind = iota
	SetBg
	AddAttr
	RemoveAttr
)

// StyleMod is one style modifier. Modifiers are applied in order and later
// ones win on conflicting properties.
type StyleMod struct {
	Kind  ModKind
	Color Color
	Attr  Attr
}

func Fg(c Color) StyleMod    { return StyleMod{Kind: SetFg, Color: c} }
func Bg(c Color) StyleMod    { return StyleMod{Kind: SetBg, Color: c} }
func Add(a Attr) StyleMod    { return StyleMod{Kind: AddAttr, Attr: a} }
func Remove(a Attr) StyleMod { return StyleMod{Kind: RemoveAttr, Attr: a} }

// ColorKind tells how a Color is encoded.
type ColorKind int

const (
	ColorReset ColorKind = iota
	ColorIndexed
	ColorRGB
)

// Color is a terminal color: the terminal default, an ANSI-256 index, or a
// 24-bit value.
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

func Indexed(i uint8) Color { return Color{Kind: ColorIndexed, Index: i} }

func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

var colorNames = map[string]Color{
	"reset":         {Kind: ColorReset},
	"black":         Indexed(0),
	"red":           Indexed(1),
	"green":         Indexed(2),
	"yellow":        Indexed(3),
	"blue":          Indexed(4),
	"magenta":       Indexed(5),
	"cyan":          Indexed(6),
	"gray":          Indexed(7),
	"dark_gray":     Indexed(8),
	"light_red":     Indexed(9),
	"light_green":   Indexed(10),
	"light_yellow":  Indexed(11),
	"light_blue":    Indexed(12),
	"light_magenta": Indexed(13),
	"light_cyan":    Indexed(14),
	"white":         Indexed(15),
}

// ParseColor accepts an ANSI color name, an index "0".."255", or "#rrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return colorIndex(n)
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

func colorIndex(n int) (Color, error) {
	if n < 0 || n > 255 {
		return Color{}, fmt.Errorf("color index %d out of range 0-255", n)
	}
	return Indexed(uint8(n)), nil
}

// Hex returns the color as "#rrggbb", or "" for non-RGB colors.
func (c Color) Hex() string {
	if c.Kind != ColorRGB {
		return ""
	}
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
