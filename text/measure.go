package text

import (
	"fmt"

	"github.com/gogpu/ggbridge/cache"
	"golang.org/x/text/unicode/norm"
)

// Rect is an axis-aligned box in layout coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Extents describes a measured single-line layout.
type Extents struct {
	// Advance is the pen advance of the whole string.
	Advance float64

	// Ascent and Descent are the font line metrics (both positive).
	Ascent, Descent float64

	// Ink is the union of glyph image bounds relative to the layout's
	// top-left corner.
	Ink Rect
}

// Measurer measures strings with a fixed font and size.
type Measurer interface {
	Measure(s string) (Extents, error)
	Size() float64
}

// Shaper names a Measurer implementation.
type Shaper string

const (
	ShaperXImage Shaper = "ximage"
	ShaperGoText Shaper = "gotext"
)

// ParseShaper validates a shaper name.
func ParseShaper(s string) (Shaper, error) {
	switch Shaper(s) {
	case ShaperXImage, "":
		return ShaperXImage, nil
	case ShaperGoText:
		return ShaperGoText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShaper, s)
}

// NewMeasurer builds the measurer named by shaper.
func NewMeasurer(shaper Shaper, f *Font, size float64) (Measurer, error) {
	switch shaper {
	case ShaperXImage, "":
		return NewXImageMeasurer(f, size)
	case ShaperGoText:
		return NewGoTextMeasurer(f, size)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShaper, shaper)
}

// Normalize returns s in Unicode NFC form, the form every measurer and
// surface works on so measurements and painted glyphs agree.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// CachedMeasurer memoizes another Measurer.
// Failed measurements are not cached.
type CachedMeasurer struct {
	inner Measurer
	lru   *cache.LRU[string, Extents]
}

// NewCachedMeasurer wraps m with an LRU of the given capacity.
func NewCachedMeasurer(m Measurer, capacity int) *CachedMeasurer {
	return &CachedMeasurer{inner: m, lru: cache.New[string, Extents](capacity)}
}

// Measure implements Measurer.
func (c *CachedMeasurer) Measure(s string) (Extents, error) {
	return c.lru.GetOrCreate(s, func() (Extents, error) {
		return c.inner.Measure(s)
	})
}

// Size implements Measurer.
func (c *CachedMeasurer) Size() float64 { return c.inner.Size() }

// Stats returns the cache counters.
func (c *CachedMeasurer) Stats() cache.Stats { return c.lru.Stats() }

// FixedMeasurer is a deterministic measurer where every rune has the same
// advance and ink box. It needs no font and is used by headless dry runs
// and tests.
type FixedMeasurer struct {
	RuneAdvance float64
	LineAscent  float64
	LineDescent float64
	FontSize    float64
}

// NewFixedMeasurer returns a FixedMeasurer approximating a size-pt UI font.
func NewFixedMeasurer(size float64) FixedMeasurer {
	return FixedMeasurer{
		RuneAdvance: size * 0.6,
		LineAscent:  size * 0.8,
		LineDescent: size * 0.2,
		FontSize:    size,
	}
}

// Measure implements Measurer.
func (m FixedMeasurer) Measure(s string) (Extents, error) {
	n := float64(len([]rune(s)))
	ext := Extents{Advance: n * m.RuneAdvance, Ascent: m.LineAscent, Descent: m.LineDescent}
	if n > 0 {
		ext.Ink = Rect{W: ext.Advance, H: m.LineAscent}
	}
	return ext, nil
}

// Size implements Measurer.
func (m FixedMeasurer) Size() float64 { return m.FontSize }
