package ggbridge

import (
	"log/slog"
	"time"

	"github.com/gogpu/ggbridge/camera"
	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/dispatch"
	"github.com/gogpu/ggbridge/engine"
	"github.com/gogpu/ggbridge/surface"
)

// Bridge drives an engine.Engine against a drawing surface.
//
// The bridge owns the camera registry and both decoders. It is not safe for
// concurrent use: the host calls Paint, Layout and the pointer methods from
// its UI thread.
type Bridge struct {
	engine  engine.Engine
	cameras *camera.Registry
	exec    *dispatch.ExecDecoder
	render  *dispatch.RenderDecoder
	opts    bridgeOptions
	log     *slog.Logger

	viewport command.Vec2i
	frame    uint64
	last     FrameStats
}

// New creates a bridge for e.
func New(e engine.Engine, opts ...Option) (*Bridge, error) {
	if e == nil {
		return nil, ErrNoEngine
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cams := camera.New(o.policy)
	logOpt := dispatch.WithLogger(o.logger)
	return &Bridge{
		engine:  e,
		cameras: cams,
		exec:    dispatch.NewExecDecoder(cams, logOpt),
		render:  dispatch.NewRenderDecoder(cams, e, logOpt),
		opts:    o,
		log:     o.logger,
	}, nil
}

// Engine returns the driven engine.
func (b *Bridge) Engine() engine.Engine { return b.engine }

// Camera returns the position of camera slot i, or the origin for an
// invalid slot.
func (b *Bridge) Camera(i int) command.Vec2f { return b.cameras.Position(i) }

// CurrentCamera returns the camera selected by the last set-camera.
func (b *Bridge) CurrentCamera() int { return b.cameras.Current() }

// SetCameraPosition moves camera slot id from the host side. Out-of-range
// ids follow the bridge's camera policy and return an error wrapping
// ErrCameraIndex.
func (b *Bridge) SetCameraPosition(id int32, pos command.Vec2f) error {
	return b.cameras.SetPosition(id, pos)
}

// SetBackground changes the color painted under the next frames.
func (b *Bridge) SetBackground(c command.Color) { b.opts.background = c }

// Viewport returns the last reported viewport size.
func (b *Bridge) Viewport() command.Vec2i { return b.viewport }

// LastFrame returns the stats of the most recent Paint.
func (b *Bridge) LastFrame() FrameStats { return b.last }

// Layout reports a new viewport size to the engine. The host calls it once
// per layout pass.
func (b *Bridge) Layout(width, height int) {
	b.reportViewport(width, height)
}

func (b *Bridge) reportViewport(width, height int) {
	b.viewport = command.V2i(int32(width), int32(height)) //nolint:gosec // surface sizes fit int32
	b.engine.ReportViewportSize(b.viewport)
}

// Paint runs one frame against s.
func (b *Bridge) Paint(s surface.Surface) FrameStats {
	start := time.Now()
	e := b.engine

	b.reportViewport(s.Width(), s.Height())

	e.FrameStart()
	b.frame++
	st := FrameStats{Frame: b.frame, Viewport: b.viewport}

	// Nothing but camera positions survives a frame boundary.
	b.cameras.ResetSelection()
	b.exec.Flush()
	b.render.Flush()

	e.Step()

	st.Exec = b.exec.Decode(e.ExecutionCommands())
	b.exec.Flush()
	e.Flush()

	e.RenderPass1()
	st.Measure = b.render.Decode(s, e.RenderCommands(), dispatch.ModeMeasure)
	b.render.Flush()
	e.Flush()

	e.RenderPass2()
	b.render.Flush()
	e.RenderStateFlush()

	b.paintBackground(s)
	st.Paint = b.render.Decode(s, e.RenderCommands(), dispatch.ModePaint)
	b.render.Flush()
	s.ResetClip()

	e.FrameEnd()

	st.Cameras = b.cameras.Positions()
	st.Duration = time.Since(start)
	b.last = st

	if n := st.Total().LayoutFailures; n > 0 {
		b.log.Warn("ggbridge: frame skipped text", "frame", st.Frame, "count", n)
	}
	b.log.Debug("ggbridge: frame painted", "frame", st.Frame, "duration", st.Duration,
		"measured", st.Measure.Measured, "texts", st.Paint.Texts, "lines", st.Paint.Lines,
		"quads", st.Paint.Quads, "ignored", st.Total().Ignored)

	for _, fn := range b.opts.observers {
		fn(st)
	}
	return st
}

// paintBackground clips to the rounded viewport and fills it.
func (b *Bridge) paintBackground(s surface.Surface) {
	r := surface.Rect{W: float64(s.Width()), H: float64(s.Height())}
	s.Clip(r, b.opts.cornerRadius)
	s.FillRect(r, 0, b.opts.background)
}
