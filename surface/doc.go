// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface is the host drawing-surface boundary of the bridge.
//
// The bridge never rasterizes anything itself. It needs a surface that can
// fill and clip rectangles, stroke lines and build and draw single-line text
// layouts; this package names that capability ([Surface]) and provides the
// default implementation over gg's software context ([GGSurface]).
//
// # Backends
//
// Backends register a factory by name, mirroring how gg lets third-party
// surfaces plug in:
//
//	surface.Register("gg", 10, ggFactory, nil)
//	s, err := surface.NewSurfaceByName("gg", surface.Options{Width: 800, Height: 600})
//
// The "gg" backend is registered by this package; the recording package
// registers "recording".
//
// # Text
//
// Text layouts are built from a [text.Measurer], so the size the engine is
// told about during the measurement pass is exactly the ink box of what is
// later drawn. Layout positions are top-left corners; GGSurface converts
// them to baselines.
package surface
