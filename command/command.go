package command

import "fmt"

// ExecCommand is one entry of an execution stream.
type ExecCommand struct {
	Kind    ExecKind
	Payload Payload
}

func (c ExecCommand) String() string {
	if c.Payload == nil {
		return c.Kind.String()
	}
	return fmt.Sprintf("%s%v", c.Kind, c.Payload)
}

// RenderCommand is one entry of a render stream.
type RenderCommand struct {
	Kind    RenderKind
	Payload Payload
}

func (c RenderCommand) String() string {
	if c.Payload == nil {
		return c.Kind.String()
	}
	return fmt.Sprintf("%s%v", c.Kind, c.Payload)
}

// ExecList builds an execution stream.
// The zero value is ready to use. ExecList is not safe for concurrent use.
type ExecList struct {
	cmds []ExecCommand
}

// PushVec2f appends a push-float-vector command.
func (l *ExecList) PushVec2f(v Vec2f) *ExecList {
	l.cmds = append(l.cmds, ExecCommand{Kind: ExecPushVec2f, Payload: v})
	return l
}

// PushInt32 appends a push-int command.
func (l *ExecList) PushInt32(v int32) *ExecList {
	l.cmds = append(l.cmds, ExecCommand{Kind: ExecPushInt32, Payload: Int32(v)})
	return l
}

// UpdateCameraPosition appends the commands that move camera slot id to pos.
func (l *ExecList) UpdateCameraPosition(id int32, pos Vec2f) *ExecList {
	l.PushInt32(id)
	l.PushVec2f(pos)
	l.cmds = append(l.cmds, ExecCommand{Kind: ExecUpdateCameraPosition})
	return l
}

// Append appends raw commands.
func (l *ExecList) Append(cmds ...ExecCommand) *ExecList {
	l.cmds = append(l.cmds, cmds...)
	return l
}

// Commands returns the built stream. The slice is shared with the list
// until the next Reset.
func (l *ExecList) Commands() []ExecCommand { return l.cmds }

// Len returns the number of commands.
func (l *ExecList) Len() int { return len(l.cmds) }

// Reset empties the list, keeping its capacity.
func (l *ExecList) Reset() { l.cmds = l.cmds[:0] }

// RenderList builds a render stream.
// The zero value is ready to use. RenderList is not safe for concurrent use.
type RenderList struct {
	cmds []RenderCommand
}

func (l *RenderList) add(k RenderKind, p Payload) *RenderList {
	l.cmds = append(l.cmds, RenderCommand{Kind: k, Payload: p})
	return l
}

// PushColor appends a push-color command.
func (l *RenderList) PushColor(c Color) *RenderList { return l.add(RenderPushColor, c) }

// PushVec2f appends a push-float-vector command.
func (l *RenderList) PushVec2f(v Vec2f) *RenderList { return l.add(RenderPushVec2f, v) }

// PushVec2i appends a push-int-vector command.
func (l *RenderList) PushVec2i(v Vec2i) *RenderList { return l.add(RenderPushVec2i, v) }

// PushInt32 appends a push-int command.
func (l *RenderList) PushInt32(v int32) *RenderList { return l.add(RenderPushInt32, Int32(v)) }

// PushString appends a push-string command.
func (l *RenderList) PushString(s string) *RenderList { return l.add(RenderPushString, String(s)) }

// DrawText appends a draw-text command.
func (l *RenderList) DrawText() *RenderList { return l.add(RenderDrawText, nil) }

// DrawLines appends a draw-lines command.
func (l *RenderList) DrawLines() *RenderList { return l.add(RenderDrawLines, nil) }

// DrawQuads appends a draw-quads command.
func (l *RenderList) DrawQuads() *RenderList { return l.add(RenderDrawQuads, nil) }

// DrawPoints appends a draw-points command.
func (l *RenderList) DrawPoints() *RenderList { return l.add(RenderDrawPoints, nil) }

// SetCamera appends the commands selecting camera id.
func (l *RenderList) SetCamera(id int32) *RenderList {
	l.PushInt32(id)
	return l.add(RenderSetCamera, nil)
}

// SetColorUniform appends a set-color-uniform command.
// It consumes the first pushed color.
func (l *RenderList) SetColorUniform() *RenderList { return l.add(RenderSetColorUniform, nil) }

// SetColor appends the commands selecting c as the current color.
func (l *RenderList) SetColor(c Color) *RenderList {
	return l.PushColor(c).SetColorUniform()
}

// Text appends the commands drawing s with its top-left corner at pos.
func (l *RenderList) Text(s string, pos Vec2f) *RenderList {
	return l.PushString(s).PushVec2f(pos).DrawText()
}

// Line appends the commands stroking a segment from p1 to p2.
func (l *RenderList) Line(p1, p2 Vec2f) *RenderList {
	return l.PushVec2f(p1).PushVec2f(p2).DrawLines()
}

// Quad appends the commands filling the rectangle at pos with the given size.
func (l *RenderList) Quad(pos, size Vec2f) *RenderList {
	return l.PushVec2f(pos).PushVec2f(size).DrawQuads()
}

// Append appends raw commands.
func (l *RenderList) Append(cmds ...RenderCommand) *RenderList {
	l.cmds = append(l.cmds, cmds...)
	return l
}

// Commands returns the built stream. The slice is shared with the list
// until the next Reset.
func (l *RenderList) Commands() []RenderCommand { return l.cmds }

// Len returns the number of commands.
func (l *RenderList) Len() int { return len(l.cmds) }

// Reset empties the list, keeping its capacity.
func (l *RenderList) Reset() { l.cmds = l.cmds[:0] }
