// Package text loads the UI font and measures strings for the bridge.
//
// Measurement returns the ink (image) bounds of a single-line layout
// together with its advance and line metrics. Two measurers are provided:
//
//   - XImageMeasurer uses golang.org/x/image/font/opentype and
//     font.BoundString, the same rasterizer gg draws text with
//   - GoTextMeasurer shapes with go-text/typesetting's HarfBuzz port and
//     accumulates per-glyph extents, which accounts for kerning and
//     ligatures
//
// Both take the layout's top-left corner as origin, with y growing down.
//
// Example:
//
//	f := text.Default()
//	m, err := text.NewMeasurer(text.ShaperXImage, f, 12)
//	if err != nil {
//	    return err
//	}
//	ext, err := m.Measure("Hello")
//	// ext.Ink.W, ext.Ink.H is what the engine receives
package text
