package command

import (
	"fmt"
	"image/color"
)

// Payload is the variant data carried by a command.
// The set of implementations is closed: Int32, Vec2f, Vec2i, Color, String.
// A nil Payload means the command carries no data.
type Payload interface {
	payload()
}

// Int32 is a 32-bit integer payload.
type Int32 int32

// Vec2f is a 2D float vector payload.
type Vec2f struct {
	X, Y float32
}

// Vec2i is a 2D integer vector payload.
type Vec2i struct {
	X, Y int32
}

// Color is a non-premultiplied RGBA color payload.
type Color struct {
	R, G, B, A uint8
}

// String is a UTF-8 string payload.
type String string

func (Int32) payload()  {}
func (Vec2f) payload()  {}
func (Vec2i) payload()  {}
func (Color) payload()  {}
func (String) payload() {}

// Black is opaque black, the reset value of the current color.
var Black = Color{A: 255}

// White is opaque white.
var White = Color{R: 255, G: 255, B: 255, A: 255}

// V2 is shorthand for Vec2f{x, y}.
func V2(x, y float32) Vec2f { return Vec2f{X: x, Y: y} }

// V2i is shorthand for Vec2i{x, y}.
func V2i(x, y int32) Vec2i { return Vec2i{X: x, Y: y} }

// RGBA is shorthand for Color{r, g, b, a}.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Add returns v + o.
func (v Vec2f) Add(o Vec2f) Vec2f { return Vec2f{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2f) Sub(o Vec2f) Vec2f { return Vec2f{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2f) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

func (v Vec2i) String() string { return fmt.Sprintf("(%d, %d)", v.X, v.Y) }

// NRGBA converts c to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHexColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" (leading '#'
// optional). It accepts the same forms as gg.Hex but reports malformed input.
func ParseHexColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	hex := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	var digits [8]uint8
	for i := 0; i < len(s) && i < len(digits); i++ {
		d, ok := hex(s[i])
		if !ok {
			return Color{}, fmt.Errorf("command: invalid hex color %q", s)
		}
		digits[i] = d
	}
	switch len(s) {
	case 3:
		return Color{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 255}, nil
	case 4:
		return Color{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: digits[3] * 17}, nil
	case 6:
		return Color{R: digits[0]<<4 | digits[1], G: digits[2]<<4 | digits[3], B: digits[4]<<4 | digits[5], A: 255}, nil
	case 8:
		return Color{
			R: digits[0]<<4 | digits[1], G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5], A: digits[6]<<4 | digits[7],
		}, nil
	default:
		return Color{}, fmt.Errorf("command: invalid hex color %q", s)
	}
}
