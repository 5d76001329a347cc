// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image/color"

	"github.com/gogpu/ggbridge/text"
)

// ErrLayout is wrapped by every text layout construction failure.
var ErrLayout = errors.New("surface: cannot build text layout")

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// TextLayout is a shaped single line of text ready to be drawn.
type TextLayout struct {
	// Text is the normalized string.
	Text string

	// Color is the foreground color.
	Color color.NRGBA

	// Extents are the measured metrics of Text.
	Extents text.Extents
}

// ImageBounds returns the ink box of the layout relative to its top-left.
func (l *TextLayout) ImageBounds() Rect {
	ink := l.Extents.Ink
	return Rect{X: ink.X, Y: ink.Y, W: ink.W, H: ink.H}
}

// Surface is the drawing capability the host must provide.
//
// Surfaces are NOT thread-safe; the bridge drives one from a single
// paint callback.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clip restricts subsequent drawing to r with rounded corners.
	Clip(r Rect, radius float64)

	// ResetClip removes any clip.
	ResetClip()

	// FillRect fills r, with rounded corners when radius > 0.
	FillRect(r Rect, radius float64, c color.Color)

	// StrokeLine strokes the segment p1-p2.
	StrokeLine(p1, p2 Point, width float64, c color.Color)

	// NewTextLayout shapes s. A failure wraps ErrLayout.
	NewTextLayout(s string, c color.Color) (*TextLayout, error)

	// DrawText draws l with its top-left corner at at.
	DrawText(l *TextLayout, at Point)
}

// Resizer is implemented by surfaces whose size can change after creation.
type Resizer interface {
	Resize(width, height int) error
}

// Options configures surface creation through the registry.
type Options struct {
	Width, Height int

	// Font is used for drawing glyphs. Nil selects text.Default().
	Font *text.Font

	// Measurer shapes text layouts. Nil selects an x/image measurer for
	// Font at TextSize.
	Measurer text.Measurer

	// TextSize is the font size used when Measurer is nil.
	TextSize float64
}

// DefaultTextSize is the UI font size in surface units.
const DefaultTextSize = 12

// normalize fills in defaults.
func (o Options) normalize() (Options, error) {
	if o.Width <= 0 {
		o.Width = 1
	}
	if o.Height <= 0 {
		o.Height = 1
	}
	if o.Font == nil {
		o.Font = text.Default()
	}
	if o.TextSize <= 0 {
		o.TextSize = DefaultTextSize
	}
	if o.Measurer == nil {
		m, err := text.NewXImageMeasurer(o.Font, o.TextSize)
		if err != nil {
			return o, err
		}
		o.Measurer = m
	}
	return o, nil
}

// BuildLayout builds a TextLayout for s with m.
// Surfaces share it so every backend measures the same way.
func BuildLayout(m text.Measurer, s string, c color.Color) (*TextLayout, error) {
	if m == nil {
		return nil, ErrLayout
	}
	s = text.Normalize(s)
	ext, err := m.Measure(s)
	if err != nil {
		return nil, errors.Join(ErrLayout, err)
	}
	return &TextLayout{
		Text:    s,
		Color:   color.NRGBAModel.Convert(c).(color.NRGBA),
		Extents: ext,
	}, nil
}
