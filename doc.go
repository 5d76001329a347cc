// Package ggbridge connects an external scene engine to a 2D drawing
// surface.
//
// # Overview
//
// The engine produces flat streams of tagged commands once per frame. The
// bridge decodes them into operand stacks, applies camera updates, asks the
// host to measure text, hands the sizes back to the engine and finally
// draws the frame. Pointer input travels the other way as touch reports.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggbridge"
//	    "github.com/gogpu/ggbridge/engine/demo"
//	    "github.com/gogpu/ggbridge/surface"
//	)
//
//	b, err := ggbridge.New(demo.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, _ := surface.NewGGSurface(surface.Options{Width: 640, Height: 480})
//	defer s.Close()
//
//	b.Paint(s)
//	s.SavePNG("frame.png")
//
// # Frame Pipeline
//
// Paint runs one frame in a fixed order:
//
//	viewport report, FrameStart, Step,
//	execution decode, engine Flush,
//	RenderPass1, measure decode, local flush, engine Flush,
//	RenderPass2, local flush, RenderStateFlush,
//	background, paint decode, FrameEnd
//
// The measure decode reports the ink size of every pushed string. The
// engine uses those sizes to place the commands it returns for
// RenderPass2.
//
// # Errors
//
// Frames never fail. Short operand stacks degrade to partial actions,
// unknown opcodes are skipped, and strings whose layout cannot be built are
// left out. Everything skipped is logged and counted in FrameStats.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Draw
// positions are relative to the current camera. Pointer positions are
// host pixels and never camera adjusted.
package ggbridge

// Version is the current version of the module.
const Version = "0.1.0"
