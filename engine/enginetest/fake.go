// Package enginetest provides an engine.Engine that records every call.
package enginetest

import (
	"fmt"

	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/engine"
)

// Call names recorded by Fake.
const (
	CallFrameStart         = "FrameStart"
	CallFrameEnd           = "FrameEnd"
	CallStep               = "Step"
	CallFlush              = "Flush"
	CallRenderPass1        = "RenderPass1"
	CallRenderPass2        = "RenderPass2"
	CallRenderStateFlush   = "RenderStateFlush"
	CallExecutionCommands  = "ExecutionCommands"
	CallRenderCommands     = "RenderCommands"
	CallReportTextSize     = "ReportTextSize"
	CallReportViewportSize = "ReportViewportSize"
	CallReportTouchStart   = "ReportTouchStart"
	CallReportTouchMove    = "ReportTouchMove"
	CallReportTouchEnd     = "ReportTouchEnd"
)

// Touch is a recorded touch report.
type Touch struct {
	Phase string
	Pos   command.Vec2f
}

func (t Touch) String() string { return fmt.Sprintf("%s%v", t.Phase, t.Pos) }

// Fake is a scripted engine.Engine.
//
// Exec is returned by ExecutionCommands. Pass1 is returned by
// RenderCommands after RenderPass1 and Pass2 after RenderPass2. Before
// either pass RenderCommands returns nil.
//
// OnTextSize, when set, runs for every ReportTextSize and may rewrite Pass2
// to emulate an engine laying out with measured sizes.
type Fake struct {
	Exec  []command.ExecCommand
	Pass1 []command.RenderCommand
	Pass2 []command.RenderCommand

	OnTextSize func(f *Fake, size command.Vec2f)

	Calls     []string
	TextSizes []command.Vec2f
	Viewports []command.Vec2i
	Touches   []Touch

	pass int
}

var _ engine.Engine = (*Fake)(nil)

func (f *Fake) record(name string) { f.Calls = append(f.Calls, name) }

// FrameStart implements engine.Engine.
func (f *Fake) FrameStart() { f.record(CallFrameStart) }

// FrameEnd implements engine.Engine.
func (f *Fake) FrameEnd() {
	f.record(CallFrameEnd)
	f.pass = 0
}

// Step implements engine.Engine.
func (f *Fake) Step() { f.record(CallStep) }

// Flush implements engine.Engine.
func (f *Fake) Flush() { f.record(CallFlush) }

// RenderPass1 implements engine.Engine.
func (f *Fake) RenderPass1() {
	f.record(CallRenderPass1)
	f.pass = 1
}

// RenderPass2 implements engine.Engine.
func (f *Fake) RenderPass2() {
	f.record(CallRenderPass2)
	f.pass = 2
}

// RenderStateFlush implements engine.Engine.
func (f *Fake) RenderStateFlush() { f.record(CallRenderStateFlush) }

// ExecutionCommands implements engine.Engine.
func (f *Fake) ExecutionCommands() []command.ExecCommand {
	f.record(CallExecutionCommands)
	return f.Exec
}

// RenderCommands implements engine.Engine.
func (f *Fake) RenderCommands() []command.RenderCommand {
	f.record(CallRenderCommands)
	switch f.pass {
	case 1:
		return f.Pass1
	case 2:
		return f.Pass2
	default:
		return nil
	}
}

// ReportTextSize implements engine.Engine.
func (f *Fake) ReportTextSize(size command.Vec2f) {
	f.record(CallReportTextSize)
	f.TextSizes = append(f.TextSizes, size)
	if f.OnTextSize != nil {
		f.OnTextSize(f, size)
	}
}

// ReportViewportSize implements engine.Engine.
func (f *Fake) ReportViewportSize(size command.Vec2i) {
	f.record(CallReportViewportSize)
	f.Viewports = append(f.Viewports, size)
}

// ReportTouchStart implements engine.Engine.
func (f *Fake) ReportTouchStart(pos command.Vec2f) {
	f.record(CallReportTouchStart)
	f.Touches = append(f.Touches, Touch{Phase: "start", Pos: pos})
}

// ReportTouchMove implements engine.Engine.
func (f *Fake) ReportTouchMove(pos command.Vec2f) {
	f.record(CallReportTouchMove)
	f.Touches = append(f.Touches, Touch{Phase: "move", Pos: pos})
}

// ReportTouchEnd implements engine.Engine.
func (f *Fake) ReportTouchEnd(pos command.Vec2f) {
	f.record(CallReportTouchEnd)
	f.Touches = append(f.Touches, Touch{Phase: "end", Pos: pos})
}

// Lifecycle returns Calls without the snapshot and report calls.
func (f *Fake) Lifecycle() []string {
	var out []string
	for _, c := range f.Calls {
		switch c {
		case CallExecutionCommands, CallRenderCommands, CallReportTextSize,
			CallReportViewportSize, CallReportTouchStart, CallReportTouchMove, CallReportTouchEnd:
			continue
		}
		out = append(out, c)
	}
	return out
}

// Reset clears every recorded call.
func (f *Fake) Reset() {
	f.Calls = f.Calls[:0]
	f.TextSizes = f.TextSizes[:0]
	f.Viewports = f.Viewports[:0]
	f.Touches = f.Touches[:0]
}
