package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// XImageMeasurer measures with golang.org/x/image/font.
// It is not safe for concurrent use.
type XImageMeasurer struct {
	size    float64
	face    font.Face
	ascent  float64
	descent float64
}

// NewXImageMeasurer creates a measurer for f at size (72 DPI).
func NewXImageMeasurer(f *Font, size float64) (*XImageMeasurer, error) {
	face, err := opentype.NewFace(f.SFNT(), &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: opentype face: %w", err)
	}
	m := face.Metrics()
	return &XImageMeasurer{
		size:    size,
		face:    face,
		ascent:  fixedToFloat(m.Ascent),
		descent: fixedToFloat(m.Descent),
	}, nil
}

// Measure implements Measurer.
func (m *XImageMeasurer) Measure(s string) (Extents, error) {
	ext := Extents{Ascent: m.ascent, Descent: m.descent}
	if s == "" {
		return ext, nil
	}
	bounds, advance := font.BoundString(m.face, s)
	ext.Advance = fixedToFloat(advance)
	if bounds.Empty() {
		return ext, nil
	}
	// BoundString is relative to the baseline origin.
	ext.Ink = Rect{
		X: fixedToFloat(bounds.Min.X),
		Y: m.ascent + fixedToFloat(bounds.Min.Y),
		W: fixedToFloat(bounds.Max.X - bounds.Min.X),
		H: fixedToFloat(bounds.Max.Y - bounds.Min.Y),
	}
	return ext, nil
}

// Size implements Measurer.
func (m *XImageMeasurer) Size() float64 { return m.size }

// Close releases the underlying face.
func (m *XImageMeasurer) Close() error { return m.face.Close() }

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
