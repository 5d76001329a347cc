package dispatch

import (
	"testing"

	"github.com/gogpu/ggbridge/camera"
	"github.com/gogpu/ggbridge/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCameraPosition(t *testing.T) {
	cams := camera.New(camera.PolicyClamp)
	d := NewExecDecoder(cams)

	var l command.ExecList
	l.UpdateCameraPosition(1, command.V2(5, 6))
	st := d.Decode(l.Commands())

	assert.Equal(t, command.V2(5, 6), cams.Position(1))
	assert.Equal(t, command.Vec2f{}, cams.Position(0))
	assert.Equal(t, 1, st.CameraUpdates)
	assert.True(t, d.Stacks().Empty())
}

func TestUpdateCameraUsesFirstOperands(t *testing.T) {
	cams := camera.New(camera.PolicyClamp)
	d := NewExecDecoder(cams)

	var l command.ExecList
	l.PushInt32(1).PushInt32(0).
		PushVec2f(command.V2(1, 2)).PushVec2f(command.V2(3, 4)).
		Append(command.ExecCommand{Kind: command.ExecUpdateCameraPosition})
	d.Decode(l.Commands())

	assert.Equal(t, command.V2(1, 2), cams.Position(1))
	assert.Equal(t, command.Vec2f{}, cams.Position(0))
}

func TestUpdateCameraDefaultsToCurrent(t *testing.T) {
	cams := camera.New(camera.PolicyClamp)
	require.NoError(t, cams.Select(1))
	d := NewExecDecoder(cams)

	var l command.ExecList
	l.PushVec2f(command.V2(7, 8)).
		Append(command.ExecCommand{Kind: command.ExecUpdateCameraPosition})
	d.Decode(l.Commands())

	assert.Equal(t, command.V2(7, 8), cams.Position(1))
}

func TestUpdateCameraWithoutPosition(t *testing.T) {
	cams := camera.New(camera.PolicyClamp)
	require.NoError(t, cams.SetPosition(0, command.V2(1, 1)))
	d := NewExecDecoder(cams)

	var l command.ExecList
	l.PushInt32(0).Append(command.ExecCommand{Kind: command.ExecUpdateCameraPosition})
	st := d.Decode(l.Commands())

	assert.Equal(t, command.V2(1, 1), cams.Position(0))
	assert.Equal(t, 0, st.CameraUpdates)
	assert.True(t, d.Stacks().Empty(), "the action still flushes")
}

func TestUpdateCameraOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		policy  camera.Policy
		want    [camera.Slots]command.Vec2f
		updates int
	}{
		{"clamp", camera.PolicyClamp, [camera.Slots]command.Vec2f{{}, command.V2(9, 9)}, 1},
		{"reject", camera.PolicyReject, [camera.Slots]command.Vec2f{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cams := camera.New(tt.policy)
			d := NewExecDecoder(cams)
			var l command.ExecList
			l.UpdateCameraPosition(4, command.V2(9, 9))
			st := d.Decode(l.Commands())

			assert.Equal(t, tt.want, cams.Positions())
			assert.Equal(t, 1, st.CameraErrors)
			assert.Equal(t, tt.updates, st.CameraUpdates)
		})
	}
}

func TestExecIgnoresUnknownAndMismatched(t *testing.T) {
	d := NewExecDecoder(camera.New(camera.PolicyClamp))
	st := d.Decode([]command.ExecCommand{
		{Kind: command.ExecKind(42)},
		{Kind: command.ExecPushInt32, Payload: command.String("x")},
		{Kind: command.ExecPushVec2f, Payload: command.V2(1, 1)},
	})
	assert.Equal(t, 1, st.Ignored)
	assert.Equal(t, 1, st.Mismatched)
	assert.Equal(t, 1, st.Pushes)
	assert.Equal(t, 1, d.Stacks().Vec2f.Len())

	d.Flush()
	assert.True(t, d.Stacks().Empty())
}
