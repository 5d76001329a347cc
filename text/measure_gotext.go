package text

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextMeasurer measures with go-text/typesetting's HarfBuzz shaper.
// It is not safe for concurrent use.
type GoTextMeasurer struct {
	size   float64
	face   *font.Face
	shaper shaping.HarfbuzzShaper
	lang   language.Language
}

// NewGoTextMeasurer creates a measurer for f at size.
func NewGoTextMeasurer(f *Font, size float64) (*GoTextMeasurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(f.Data()))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFontParse, f.Name(), err)
	}
	return &GoTextMeasurer{
		size: size,
		face: face,
		lang: language.NewLanguage("en"),
	}, nil
}

// Measure implements Measurer.
func (m *GoTextMeasurer) Measure(s string) (Extents, error) {
	runes := []rune(s)
	out := m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      fixed.Int26_6(m.size * 64),
		Script:    detectScript(runes),
		Language:  m.lang,
	})

	ext := Extents{
		Advance: fixedToFloat(out.Advance),
		Ascent:  fixedToFloat(out.LineBounds.Ascent),
		Descent: math.Abs(fixedToFloat(out.LineBounds.Descent)),
	}

	// Glyph extents are y-up relative to the baseline.
	var (
		pen                     float64
		minX, maxX, top, bottom float64
		seen                    bool
	)
	for _, g := range out.Glyphs {
		if g.Width != 0 && g.Height != 0 {
			left := pen + fixedToFloat(g.XOffset+g.XBearing)
			right := left + fixedToFloat(g.Width)
			gTop := fixedToFloat(g.YOffset + g.YBearing)
			gBottom := gTop + fixedToFloat(g.Height)
			if !seen {
				minX, maxX, top, bottom = left, right, gTop, gBottom
				seen = true
			} else {
				minX = math.Min(minX, left)
				maxX = math.Max(maxX, right)
				top = math.Max(top, gTop)
				bottom = math.Min(bottom, gBottom)
			}
		}
		pen += fixedToFloat(g.Advance)
	}
	if seen {
		ext.Ink = Rect{X: minX, Y: ext.Ascent - top, W: maxX - minX, H: top - bottom}
	}
	return ext, nil
}

// Size implements Measurer.
func (m *GoTextMeasurer) Size() float64 { return m.size }

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
