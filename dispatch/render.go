package dispatch

import (
	"log/slog"
	"math"

	"github.com/gogpu/ggbridge/camera"
	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/operand"
	"github.com/gogpu/ggbridge/surface"
)

// lineWidth is the stroke width of draw-lines segments.
const lineWidth = 1

// RenderDecoder decodes the render command stream.
//
// The current color and the operand stacks live as long as the decoder.
// Both are reset by every flushing action and by Flush.
// It is not safe for concurrent use.
type RenderDecoder struct {
	stacks  operand.Stacks
	cameras *camera.Registry
	sink    MetricsSink
	color   command.Color
	log     *slog.Logger
}

// NewRenderDecoder creates a decoder reading camera offsets from cameras
// and reporting measured text sizes to sink. sink may be nil when the
// decoder is only used in ModePaint.
func NewRenderDecoder(cameras *camera.Registry, sink MetricsSink, opts ...Option) *RenderDecoder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &RenderDecoder{
		cameras: cameras,
		sink:    sink,
		color:   command.Black,
		log:     o.logger,
	}
}

// Stacks exposes the operand stacks for inspection.
func (d *RenderDecoder) Stacks() *operand.Stacks { return &d.stacks }

// Color returns the current color.
func (d *RenderDecoder) Color() command.Color { return d.color }

// Flush clears all operand stacks and resets the current color to opaque
// black.
func (d *RenderDecoder) Flush() {
	d.stacks.Flush()
	d.color = command.Black
}

// Decode walks cmds once, in order, against s.
func (d *RenderDecoder) Decode(s surface.Surface, cmds []command.RenderCommand, mode Mode) Stats {
	var st Stats
	for _, c := range cmds {
		st.Commands++
		if c.Kind.IsPush() {
			d.push(&st, c)
			continue
		}
		switch c.Kind {
		case command.RenderDrawText:
			if mode == ModeMeasure {
				d.measureText(&st, s)
			} else {
				d.drawText(&st, s)
			}
			d.Flush()
			continue
		case command.RenderSetCamera:
			d.setCamera(&st)
			continue
		}
		if mode == ModeMeasure {
			st.Ignored++
			continue
		}
		switch c.Kind {
		case command.RenderDrawLines:
			d.drawLines(&st, s)
			d.Flush()
		case command.RenderDrawQuads:
			d.drawQuads(&st, s)
			d.Flush()
		case command.RenderDrawPoints:
			d.Flush()
		case command.RenderSetColorUniform:
			if c, ok := d.stacks.Color.First(); ok {
				d.color = c
			}
			d.stacks.Color.Clear()
		default:
			st.Ignored++
			d.log.Debug("dispatch: ignored render opcode", "kind", c.Kind.String())
		}
	}
	return st
}

func (d *RenderDecoder) push(st *Stats, c command.RenderCommand) {
	ok := false
	switch c.Kind {
	case command.RenderPushColor:
		_, ok = c.Payload.(command.Color)
	case command.RenderPushVec2f:
		_, ok = c.Payload.(command.Vec2f)
	case command.RenderPushVec2i:
		_, ok = c.Payload.(command.Vec2i)
	case command.RenderPushInt32:
		_, ok = c.Payload.(command.Int32)
	case command.RenderPushString:
		_, ok = c.Payload.(command.String)
	}
	if !ok {
		st.Mismatched++
		d.log.Debug("dispatch: payload does not match opcode", "kind", c.Kind.String(), "payload", c.Payload)
		return
	}
	d.stacks.Push(c.Payload)
	st.Pushes++
}

func (d *RenderDecoder) setCamera(st *Stats) {
	defer d.stacks.Int32.Clear()

	id, ok := d.stacks.Int32.First()
	if !ok {
		return
	}
	if err := d.cameras.Select(id); err != nil {
		st.CameraErrors++
		d.log.Warn("dispatch: camera index out of range", "index", id, "err", err)
	}
}

// drawText pairs strings and positions walking both from the tail, so the
// i-th pushed string lands at the i-th pushed position. Strings without a
// position are drawn at the camera origin.
func (d *RenderDecoder) drawText(st *Stats, s surface.Surface) {
	cam := d.cameras.Offset()
	strs := d.stacks.Strings.All()
	for i := len(strs) - 1; i >= 0; i-- {
		pos, _ := d.stacks.Vec2f.Pop()
		at := pos.Add(cam)

		l, err := s.NewTextLayout(strs[i], d.color)
		if err != nil {
			st.LayoutFailures++
			d.log.Warn("dispatch: skipping text", "text", strs[i], "err", err)
			continue
		}
		s.DrawText(l, surface.Pt(float64(at.X), float64(at.Y)))
		st.Texts++
	}
}

// measureText reports the ink size of each string, most recent first.
func (d *RenderDecoder) measureText(st *Stats, s surface.Surface) {
	strs := d.stacks.Strings.All()
	for i := len(strs) - 1; i >= 0; i-- {
		l, err := s.NewTextLayout(strs[i], d.color)
		if err != nil {
			st.LayoutFailures++
			d.log.Warn("dispatch: skipping text measurement", "text", strs[i], "err", err)
			continue
		}
		b := l.ImageBounds()
		if d.sink != nil {
			d.sink.ReportTextSize(command.V2(float32(b.W), float32(b.H)))
		}
		st.Measured++
	}
}

func (d *RenderDecoder) drawLines(st *Stats, s surface.Surface) {
	cam := d.cameras.Offset()
	d.stacks.Vec2f.Pairs(func(a, b command.Vec2f) {
		s.StrokeLine(snap(a, cam), snap(b, cam), lineWidth, d.color)
		st.Lines++
	})
}

func (d *RenderDecoder) drawQuads(st *Stats, s surface.Surface) {
	cam := d.cameras.Offset()
	d.stacks.Vec2f.Pairs(func(pos, size command.Vec2f) {
		p := pos.Add(cam)
		s.FillRect(surface.Rect{
			X: float64(p.X), Y: float64(p.Y),
			W: float64(size.X), H: float64(size.Y),
		}, 0, d.color)
		st.Quads++
	})
}

// snap offsets p by cam and moves it to the nearest pixel center. The sum is
// taken in float64 so large coordinates keep their fractional part.
func snap(p, cam command.Vec2f) surface.Point {
	return surface.Pt(
		math.Floor(float64(p.X)+float64(cam.X))+0.5,
		math.Floor(float64(p.Y)+float64(cam.Y))+0.5,
	)
}
