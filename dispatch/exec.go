package dispatch

import (
	"log/slog"

	"github.com/gogpu/ggbridge/camera"
	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/operand"
)

// ExecDecoder decodes the execution command stream.
// It is not safe for concurrent use.
type ExecDecoder struct {
	stacks  operand.Stacks
	cameras *camera.Registry
	log     *slog.Logger
}

// NewExecDecoder creates a decoder writing camera updates into cameras.
func NewExecDecoder(cameras *camera.Registry, opts ...Option) *ExecDecoder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ExecDecoder{cameras: cameras, log: o.logger}
}

// Stacks exposes the operand stacks for inspection.
func (d *ExecDecoder) Stacks() *operand.Stacks { return &d.stacks }

// Flush clears all operand stacks.
func (d *ExecDecoder) Flush() { d.stacks.Flush() }

// Decode walks cmds once, in order.
func (d *ExecDecoder) Decode(cmds []command.ExecCommand) Stats {
	var st Stats
	for _, c := range cmds {
		st.Commands++
		if c.Kind.IsPush() {
			d.push(&st, c)
			continue
		}
		switch c.Kind {
		case command.ExecUpdateCameraPosition:
			d.updateCameraPosition(&st)
		default:
			st.Ignored++
			d.log.Debug("dispatch: ignored execution opcode", "kind", uint8(c.Kind))
		}
	}
	return st
}

// updateCameraPosition writes the first pushed vector into the camera named
// by the first pushed int, or the current camera when no int was pushed.
func (d *ExecDecoder) updateCameraPosition(st *Stats) {
	defer d.stacks.Flush()

	pos, ok := d.stacks.Vec2f.First()
	if !ok {
		d.log.Debug("dispatch: update-camera-position without position")
		return
	}
	id := int32(d.cameras.Current())
	if v, ok := d.stacks.Int32.First(); ok {
		id = v
	}
	if err := d.cameras.SetPosition(id, pos); err != nil {
		st.CameraErrors++
		d.log.Warn("dispatch: camera index out of range", "index", id, "err", err)
		if d.cameras.Policy() == camera.PolicyReject {
			return
		}
	}
	st.CameraUpdates++
}

func (d *ExecDecoder) push(st *Stats, c command.ExecCommand) {
	switch v := c.Payload.(type) {
	case command.Vec2f:
		if c.Kind == command.ExecPushVec2f {
			d.stacks.Vec2f.Push(v)
			st.Pushes++
			return
		}
	case command.Int32:
		if c.Kind == command.ExecPushInt32 {
			d.stacks.Int32.Push(int32(v))
			st.Pushes++
			return
		}
	}
	st.Mismatched++
	d.log.Debug("dispatch: payload does not match opcode", "kind", c.Kind.String(), "payload", c.Payload)
}
