// Package engine defines the boundary between the bridge and the external
// scene engine that produces command streams.
//
// The bridge drives an Engine once per frame. Lifecycle calls have no
// result and are assumed to succeed. Command snapshots returned by
// ExecutionCommands and RenderCommands are read-only and stay valid until
// the next Flush.
package engine

import "github.com/gogpu/ggbridge/command"

// Engine is the external scene engine.
type Engine interface {
	// FrameStart opens a frame.
	FrameStart()
	// FrameEnd closes a frame.
	FrameEnd()
	// Step advances the simulation by one tick.
	Step()
	// Flush discards the command snapshots of the current stage.
	Flush()
	// RenderPass1 builds the render-state commands used for measurement.
	RenderPass1()
	// RenderPass2 builds the final render commands.
	RenderPass2()
	// RenderStateFlush discards the render state built for measurement.
	// The RenderPass2 snapshot stays valid.
	RenderStateFlush()

	// ExecutionCommands returns the execution stream snapshot.
	ExecutionCommands() []command.ExecCommand
	// RenderCommands returns the render stream snapshot of the last pass.
	RenderCommands() []command.RenderCommand

	// ReportTextSize delivers one measured text size.
	ReportTextSize(size command.Vec2f)
	// ReportViewportSize delivers the host viewport size.
	ReportViewportSize(size command.Vec2i)
	// ReportTouchStart delivers a pointer-down in host pixels.
	ReportTouchStart(pos command.Vec2f)
	// ReportTouchMove delivers a pointer-move in host pixels.
	ReportTouchMove(pos command.Vec2f)
	// ReportTouchEnd delivers a pointer-up in host pixels.
	ReportTouchEnd(pos command.Vec2f)
}

// Nop is an Engine that produces no commands and ignores every report.
// Embed it to implement only part of the interface.
type Nop struct{}

var _ Engine = Nop{}

func (Nop) FrameStart()                              {}
func (Nop) FrameEnd()                                {}
func (Nop) Step()                                    {}
func (Nop) Flush()                                   {}
func (Nop) RenderPass1()                             {}
func (Nop) RenderPass2()                             {}
func (Nop) RenderStateFlush()                        {}
func (Nop) ExecutionCommands() []command.ExecCommand { return nil }
func (Nop) RenderCommands() []command.RenderCommand  { return nil }
func (Nop) ReportTextSize(command.Vec2f)             {}
func (Nop) ReportViewportSize(command.Vec2i)         {}
func (Nop) ReportTouchStart(command.Vec2f)           {}
func (Nop) ReportTouchMove(command.Vec2f)            {}
func (Nop) ReportTouchEnd(command.Vec2f)             {}
