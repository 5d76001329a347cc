package ggbridge

import (
	"testing"

	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/engine/enginetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerForwarding(t *testing.T) {
	var exec command.ExecList
	exec.UpdateCameraPosition(0, command.V2(100, 100))
	f := &enginetest.Fake{Exec: exec.Commands()}
	b, err := New(f)
	require.NoError(t, err)

	b.HandlePointer(PointerEvent{Kind: PointerDown, X: 1.5, Y: 2})
	b.HandlePointer(PointerEvent{Kind: PointerMove, X: 3, Y: 4})
	b.HandlePointer(PointerEvent{Kind: PointerUp, X: 5, Y: 6})
	b.HandlePointer(PointerEvent{Kind: PointerKind(9), X: 7, Y: 8})

	assert.Equal(t, []enginetest.Touch{
		{Phase: "start", Pos: command.V2(1.5, 2)},
		{Phase: "move", Pos: command.V2(3, 4)},
		{Phase: "end", Pos: command.V2(5, 6)},
	}, f.Touches, "pointer positions are not camera adjusted")
}

func TestPointerKindString(t *testing.T) {
	assert.Equal(t, "down", PointerDown.String())
	assert.Equal(t, "move", PointerMove.String())
	assert.Equal(t, "up", PointerUp.String())
	assert.Equal(t, "PointerKind(9)", PointerKind(9).String())
}
