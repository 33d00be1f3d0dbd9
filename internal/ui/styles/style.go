// Package styles implements the style algebra of the layout engine: modifier
// lists patched onto partial styles, merging of nested styles, and conversion
// to lipgloss for output.
package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/mpdwaves/internal/template"
)

// Style is a partial style. Nil colors and attributes in neither set are
// inherited from whatever the style is merged onto. Add holds the attributes
// this style turns on, Sub the ones it turns off; the two never overlap.
type Style struct {
	Fg  *template.Color
	Bg  *template.Color
	Add template.Attr
	Sub template.Attr
}

// Patch applies mods in order onto a copy of s. Later mods win.
func (s Style) Patch(mods []template.StyleMod) Style {
	for _, m := range mods {
		switch m.Kind {
		case template.SetFg:
			c := m.Color
			s.Fg = &c
		case template.SetBg:
			c := m.Color
			s.Bg = &c
		case template.AddAttr:
			s.Add |= m.Attr
			s.Sub &^= m.Attr
		case template.RemoveAttr:
			s.Sub |= m.Attr
			s.Add &^= m.Attr
		}
	}
	return s
}

// Merge layers top over base: set colors replace, attribute changes in top
// override those in base.
func Merge(base, top Style) Style {
	out := base
	if top.Fg != nil {
		out.Fg = top.Fg
	}
	if top.Bg != nil {
		out.Bg = top.Bg
	}
	out.Add = (base.Add &^ top.Sub) | top.Add
	out.Sub = (base.Sub &^ top.Add) | top.Sub
	return out
}

// Has reports whether the attribute is active.
func (s Style) Has(a template.Attr) bool {
	return s.Add.Has(a)
}

// Equal compares by value, following color pointers.
func (s Style) Equal(o Style) bool {
	return colorEqual(s.Fg, o.Fg) && colorEqual(s.Bg, o.Bg) && s.Add == o.Add && s.Sub == o.Sub
}

func colorEqual(a, b *template.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Lipgloss converts the style for output. Removed attributes are simply
// absent since output always starts from the terminal default.
func (s Style) Lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if c, ok := lipglossColor(s.Fg); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := lipglossColor(s.Bg); ok {
		ls = ls.Background(c)
	}

	a := s.Add
	if a.Has(template.Bold) {
		ls = ls.Bold(true)
	}
	if a.Has(template.Dim) {
		ls = ls.Faint(true)
	}
	if a.Has(template.Italic) {
		ls = ls.Italic(true)
	}
	if a.Has(template.Underlined) {
		ls = ls.Underline(true)
	}
	if a.Has(template.SlowBlink) || a.Has(template.RapidBlink) {
		ls = ls.Blink(true)
	}
	if a.Has(template.Reversed) {
		ls = ls.Reverse(true)
	}
	if a.Has(template.CrossedOut) {
		ls = ls.Strikethrough(true)
	}
	return ls
}

func lipglossColor(c *template.Color) (lipgloss.TerminalColor, bool) {
	if c == nil {
		return nil, false
	}
	switch c.Kind {
	case template.ColorIndexed:
		return lipgloss.Color(strconv.Itoa(int(c.Index))), true
	case template.ColorRGB:
		return lipgloss.Color(c.Hex()), true
	}
	return lipgloss.NoColor{}, true
}
