// Package demo implements a small animated engine.Engine.
//
// The demo lays out a row of labelled boxes. Box sizes depend on the text
// sizes measured by the host during the render-state pass, so every frame
// exercises the two-pass handshake. A scrolling grid is drawn through
// camera 1 and the boxes through camera 0, which follows pointer drags.
package demo

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/engine"
)

const (
	gridStep = 32
	padding  = 6
	gap      = 24
	margin   = 16
)

var (
	gridColor  = command.RGBA(0xdd, 0xe3, 0xea, 0xff)
	boxColor   = command.RGBA(0x3b, 0x82, 0xf6, 0x40)
	linkColor  = command.RGBA(0x33, 0x41, 0x55, 0xff)
	labelColor = command.RGBA(0x0f, 0x17, 0x2a, 0xff)
)

// Engine is the demo engine. It is not safe for concurrent use.
type Engine struct {
	labels   []string
	viewport command.Vec2i
	frame    int

	measured []command.Vec2f
	sizes    []command.Vec2f

	pan      command.Vec2f
	last     command.Vec2f
	dragging bool

	exec   command.ExecList
	render command.RenderList
}

var _ engine.Engine = (*Engine)(nil)

// New creates a demo engine showing labels. With no labels a default set
// is used.
func New(labels ...string) *Engine {
	if len(labels) == 0 {
		labels = []string{"ggbridge", "measure", "paint", "two-pass"}
	}
	return &Engine{labels: labels, viewport: command.V2i(640, 480)}
}

// Frame returns the number of simulation steps taken.
func (e *Engine) Frame() int { return e.frame }

// Pan returns the camera 0 offset accumulated from pointer drags.
func (e *Engine) Pan() command.Vec2f { return e.pan }

// Sizes returns the label sizes used by the last render pass, in label
// order.
func (e *Engine) Sizes() []command.Vec2f { return e.sizes }

// FrameStart implements engine.Engine.
func (e *Engine) FrameStart() {}

// FrameEnd implements engine.Engine.
func (e *Engine) FrameEnd() {}

// Step implements engine.Engine.
func (e *Engine) Step() { e.frame++ }

// Flush implements engine.Engine.
func (e *Engine) Flush() { e.exec.Reset() }

// RenderStateFlush drops the sizes measured for this frame.
func (e *Engine) RenderStateFlush() { e.measured = e.measured[:0] }

// ExecutionCommands implements engine.Engine.
func (e *Engine) ExecutionCommands() []command.ExecCommand {
	e.exec.Reset()
	e.exec.UpdateCameraPosition(0, e.pan)
	scroll := float32(e.frame % gridStep)
	e.exec.UpdateCameraPosition(1, command.V2(-scroll, 0))
	return e.exec.Commands()
}

// RenderCommands implements engine.Engine.
func (e *Engine) RenderCommands() []command.RenderCommand { return e.render.Commands() }

// RenderPass1 asks the host to measure every label.
func (e *Engine) RenderPass1() {
	e.measured = e.measured[:0]
	e.render.Reset()
	for _, s := range e.labels {
		e.render.PushString(s)
	}
	e.render.DrawText()
}

// RenderPass2 lays the labels out with the measured sizes.
func (e *Engine) RenderPass2() {
	// Sizes arrive most recently pushed first.
	e.sizes = append(e.sizes[:0], e.measured...)
	slices.Reverse(e.sizes)

	e.render.Reset()
	e.grid()

	e.render.SetCamera(0)
	y := float32(margin + padding)
	x := float32(margin + padding)
	var anchors []command.Vec2f
	for i, s := range e.labels {
		size := e.size(i)
		center := y + size.Y/2
		if i > 0 {
			anchors = append(anchors, command.V2(x-padding, center))
		}
		e.render.SetColor(boxColor).
			Quad(command.V2(x-padding, y-padding), command.V2(size.X+2*padding, size.Y+2*padding))
		e.render.SetColor(labelColor).Text(s, command.V2(x, y))
		x += size.X + 2*padding + gap
		if i < len(e.labels)-1 {
			anchors = append(anchors, command.V2(x-gap-padding, center))
		}
	}

	// Anchors pair up as (right edge of i, left edge of i+1).
	e.render.SetColor(linkColor)
	for _, a := range anchors {
		e.render.PushVec2f(a)
	}
	e.render.DrawLines()
}

func (e *Engine) grid() {
	w := float32(e.viewport.X) + gridStep
	h := float32(e.viewport.Y)
	e.render.SetCamera(1).SetColor(gridColor)
	for x := float32(0); x <= w; x += gridStep {
		e.render.PushVec2f(command.V2(x, 0)).PushVec2f(command.V2(x, h))
	}
	e.render.DrawLines()
}

func (e *Engine) size(i int) command.Vec2f {
	if i < len(e.sizes) {
		return e.sizes[i]
	}
	return command.Vec2f{}
}

// ReportTextSize implements engine.Engine.
func (e *Engine) ReportTextSize(size command.Vec2f) {
	e.measured = append(e.measured, command.V2(math32.Ceil(size.X), math32.Ceil(size.Y)))
}

// ReportViewportSize implements engine.Engine.
func (e *Engine) ReportViewportSize(size command.Vec2i) { e.viewport = size }

// ReportTouchStart implements engine.Engine.
func (e *Engine) ReportTouchStart(pos command.Vec2f) {
	e.dragging = true
	e.last = pos
}

// ReportTouchMove implements engine.Engine.
func (e *Engine) ReportTouchMove(pos command.Vec2f) {
	if !e.dragging {
		return
	}
	e.pan = e.pan.Add(pos.Sub(e.last))
	e.last = pos
}

// ReportTouchEnd implements engine.Engine.
func (e *Engine) ReportTouchEnd(pos command.Vec2f) {
	e.ReportTouchMove(pos)
	e.dragging = false
}
