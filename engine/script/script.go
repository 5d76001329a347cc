// Package script implements an engine.Engine that replays frames described
// in YAML.
//
// A script lists frames. Each frame holds the raw command streams the
// engine hands out: exec for the execution stream, measure for the
// render-state pass and paint for the final render pass. Commands are
// written with their opcode name and at most one payload field:
//
//	viewport: [320, 200]
//	loop: true
//	frames:
//	  - exec:
//	      - {op: PushInt32, int: 1}
//	      - {op: PushVec2f, vec: [10, 0]}
//	      - {op: UpdateCameraPosition}
//	    measure:
//	      - {op: PushString, str: Hello}
//	      - {op: DrawText}
//	    paint:
//	      - {op: PushColor, color: "#ff0000"}
//	      - {op: SetColorUniform}
//	      - {op: PushString, str: Hello}
//	      - {op: PushVec2f, vec: [8, 8]}
//	      - {op: DrawText}
//
// Sizes reported during the measure pass and pointer input are recorded so
// callers can inspect what the bridge fed back.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/engine"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every script validation error.
var ErrInvalid = errors.New("script: invalid script")

// Op is one command as written in a script.
type Op struct {
	Op    string    `yaml:"op"`
	Int   *int32    `yaml:"int,omitempty"`
	Vec   []float32 `yaml:"vec,omitempty"`
	IVec  []int32   `yaml:"ivec,omitempty"`
	Color string    `yaml:"color,omitempty"`
	Str   *string   `yaml:"str,omitempty"`
}

// Frame is one frame of a script.
type Frame struct {
	Exec    []Op `yaml:"exec,omitempty"`
	Measure []Op `yaml:"measure,omitempty"`
	Paint   []Op `yaml:"paint,omitempty"`
}

// Script is the YAML document.
type Script struct {
	Viewport []int32 `yaml:"viewport,omitempty"`
	Loop     bool    `yaml:"loop,omitempty"`
	Frames   []Frame `yaml:"frames"`
}

type compiledFrame struct {
	exec    []command.ExecCommand
	measure []command.RenderCommand
	paint   []command.RenderCommand
}

// TouchEvent is a recorded pointer report.
type TouchEvent struct {
	Frame int
	Phase string
	Pos   command.Vec2f
}

// Engine replays a Script.
// It is not safe for concurrent use.
type Engine struct {
	frames []compiledFrame
	loop   bool

	viewport command.Vec2i
	current  int
	pass     int
	steps    int

	sizes   [][]command.Vec2f
	touches []TouchEvent
}

var _ engine.Engine = (*Engine)(nil)

// Load decodes and compiles a script from r.
func Load(r io.Reader) (*Engine, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return New(s)
}

// LoadFile loads a script from path.
func LoadFile(path string) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// New compiles s.
func New(s Script) (*Engine, error) {
	if s.Loop && len(s.Frames) == 0 {
		return nil, fmt.Errorf("%w: loop needs at least one frame", ErrInvalid)
	}
	e := &Engine{loop: s.Loop}
	switch len(s.Viewport) {
	case 0:
	case 2:
		e.viewport = command.V2i(s.Viewport[0], s.Viewport[1])
	default:
		return nil, fmt.Errorf("%w: viewport needs 2 values, got %d", ErrInvalid, len(s.Viewport))
	}
	for i, f := range s.Frames {
		var cf compiledFrame
		for j, op := range f.Exec {
			c, err := compileExec(op)
			if err != nil {
				return nil, fmt.Errorf("%w: frame %d exec[%d]: %w", ErrInvalid, i, j, err)
			}
			cf.exec = append(cf.exec, c)
		}
		for j, op := range f.Measure {
			c, err := compileRender(op)
			if err != nil {
				return nil, fmt.Errorf("%w: frame %d measure[%d]: %w", ErrInvalid, i, j, err)
			}
			cf.measure = append(cf.measure, c)
		}
		for j, op := range f.Paint {
			c, err := compileRender(op)
			if err != nil {
				return nil, fmt.Errorf("%w: frame %d paint[%d]: %w", ErrInvalid, i, j, err)
			}
			cf.paint = append(cf.paint, c)
		}
		e.frames = append(e.frames, cf)
	}
	e.sizes = make([][]command.Vec2f, len(e.frames))
	return e, nil
}

func compileExec(op Op) (command.ExecCommand, error) {
	k, ok := command.ParseExecKind(op.Op)
	if !ok {
		return command.ExecCommand{}, fmt.Errorf("unknown exec op %q", op.Op)
	}
	p, err := op.payload()
	if err != nil {
		return command.ExecCommand{}, err
	}
	return command.ExecCommand{Kind: k, Payload: p}, nil
}

func compileRender(op Op) (command.RenderCommand, error) {
	k, ok := command.ParseRenderKind(op.Op)
	if !ok {
		return command.RenderCommand{}, fmt.Errorf("unknown render op %q", op.Op)
	}
	p, err := op.payload()
	if err != nil {
		return command.RenderCommand{}, err
	}
	return command.RenderCommand{Kind: k, Payload: p}, nil
}

// payload returns the single payload field set on op, or nil.
func (op Op) payload() (command.Payload, error) {
	var (
		p command.Payload
		n int
	)
	if op.Int != nil {
		p = command.Int32(*op.Int)
		n++
	}
	if op.Vec != nil {
		if len(op.Vec) != 2 {
			return nil, fmt.Errorf("%s: vec needs 2 values", op.Op)
		}
		p = command.V2(op.Vec[0], op.Vec[1])
		n++
	}
	if op.IVec != nil {
		if len(op.IVec) != 2 {
			return nil, fmt.Errorf("%s: ivec needs 2 values", op.Op)
		}
		p = command.V2i(op.IVec[0], op.IVec[1])
		n++
	}
	if op.Color != "" {
		c, err := command.ParseHexColor(op.Color)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Op, err)
		}
		p = c
		n++
	}
	if op.Str != nil {
		p = command.String(*op.Str)
		n++
	}
	if n > 1 {
		return nil, fmt.Errorf("%s: more than one payload", op.Op)
	}
	return p, nil
}

// Len returns the number of frames in the script.
func (e *Engine) Len() int { return len(e.frames) }

// Frame returns the index of the frame being replayed.
func (e *Engine) Frame() int { return e.current }

// Done reports whether a non-looping script has replayed every frame.
func (e *Engine) Done() bool { return !e.loop && e.current >= len(e.frames) }

// Steps returns how many times Step was called.
func (e *Engine) Steps() int { return e.steps }

// Viewport returns the viewport from the script, overwritten by the last
// ReportViewportSize.
func (e *Engine) Viewport() command.Vec2i { return e.viewport }

// TextSizes returns the sizes reported while frame i was measured.
func (e *Engine) TextSizes(i int) []command.Vec2f {
	if i < 0 || i >= len(e.sizes) {
		return nil
	}
	return e.sizes[i]
}

// Touches returns every recorded pointer report.
func (e *Engine) Touches() []TouchEvent { return e.touches }

func (e *Engine) frame() (compiledFrame, bool) {
	if len(e.frames) == 0 || e.Done() {
		return compiledFrame{}, false
	}
	return e.frames[e.current%len(e.frames)], true
}

// FrameStart implements engine.Engine.
func (e *Engine) FrameStart() {
	if i := e.index(); i >= 0 {
		e.sizes[i] = e.sizes[i][:0]
	}
}

// FrameEnd implements engine.Engine.
func (e *Engine) FrameEnd() {
	e.pass = 0
	if !e.Done() {
		e.current++
	}
}

// Step implements engine.Engine.
func (e *Engine) Step() { e.steps++ }

// Flush implements engine.Engine.
func (e *Engine) Flush() {}

// RenderPass1 implements engine.Engine.
func (e *Engine) RenderPass1() { e.pass = 1 }

// RenderPass2 implements engine.Engine.
func (e *Engine) RenderPass2() { e.pass = 2 }

// RenderStateFlush implements engine.Engine.
func (e *Engine) RenderStateFlush() {}

// ExecutionCommands implements engine.Engine.
func (e *Engine) ExecutionCommands() []command.ExecCommand {
	f, _ := e.frame()
	return f.exec
}

// RenderCommands implements engine.Engine.
func (e *Engine) RenderCommands() []command.RenderCommand {
	f, _ := e.frame()
	switch e.pass {
	case 1:
		return f.measure
	case 2:
		return f.paint
	default:
		return nil
	}
}

// ReportTextSize implements engine.Engine.
func (e *Engine) ReportTextSize(size command.Vec2f) {
	if i := e.index(); i >= 0 {
		e.sizes[i] = append(e.sizes[i], size)
	}
}

// ReportViewportSize implements engine.Engine.
func (e *Engine) ReportViewportSize(size command.Vec2i) { e.viewport = size }

// ReportTouchStart implements engine.Engine.
func (e *Engine) ReportTouchStart(pos command.Vec2f) { e.touch("start", pos) }

// ReportTouchMove implements engine.Engine.
func (e *Engine) ReportTouchMove(pos command.Vec2f) { e.touch("move", pos) }

// ReportTouchEnd implements engine.Engine.
func (e *Engine) ReportTouchEnd(pos command.Vec2f) { e.touch("end", pos) }

func (e *Engine) touch(phase string, pos command.Vec2f) {
	e.touches = append(e.touches, TouchEvent{Frame: e.current, Phase: phase, Pos: pos})
}

// index returns the slot of the frame being replayed, or -1.
func (e *Engine) index() int {
	if len(e.frames) == 0 || e.Done() {
		return -1
	}
	return e.current % len(e.frames)
}
