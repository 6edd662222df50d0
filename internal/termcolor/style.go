package termcolor

import "strconv"

type colorKind uint8

const (
	colorNone colorKind = iota
	colorBasic
	colorIndexed
	colorRGB
)

// Color is a foreground colour in one of the three terminal profiles.
// The zero value leaves the terminal default.
type Color struct {
	kind  colorKind
	index uint8
	rgb   [3]uint8
}

// Basic returns one of the eight standard colours (0 black .. 7 white).
func Basic(n uint8) Color { return Color{kind: colorBasic, index: n & 7} }

// Indexed returns a colour from the 256-colour palette.
func Indexed(n uint8) Color { return Color{kind: colorIndexed, index: n} }

// RGB returns a 24-bit colour.
func RGB(rgb [3]uint8) Color { return Color{kind: colorRGB, rgb: rgb} }

func (c Color) IsZero() bool { return c.kind == colorNone }

func (c Color) appendSGR(b []byte) []byte {
	switch c.kind {
	case colorBasic:
		return strconv.AppendInt(b, 30+int64(c.index), 10)
	case colorIndexed:
		b = append(b, "38;5;"...)
		return strconv.AppendInt(b, int64(c.index), 10)
	case colorRGB:
		b = append(b, "38;2;"...)
		for i, v := range c.rgb {
			if i > 0 {
				b = append(b, ';')
			}
			b = strconv.AppendInt(b, int64(v), 10)
		}
	}
	return b
}

// Style is a set of SGR attributes plus a foreground colour.
type Style struct {
	Bold      bool
	Dim       bool
	Underline bool
	FG        Color
}

// Wrap surrounds text with the style's escape sequence and a reset.
// Disabled or empty styles return text unchanged.
func (s Style) Wrap(text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	params := s.sgr()
	if len(params) == 0 {
		return text
	}
	return "\x1b[" + string(params) + "m" + text + "\x1b[0m"
}

func (s Style) sgr() []byte {
	var b []byte
	attr := func(code byte) {
		if len(b) > 0 {
			b = append(b, ';')
		}
		b = append(b, code)
	}
	if s.Bold {
		attr('1')
	}
	if s.Dim {
		attr('2')
	}
	if s.Underline {
		attr('4')
	}
	if !s.FG.IsZero() {
		if len(b) > 0 {
			b = append(b, ';')
		}
		b = s.FG.appendSGR(b)
	}
	return b
}
