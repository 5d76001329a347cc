package camera

import (
	"errors"
	"testing"

	"github.com/gogpu/ggbridge/command"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaults(t *testing.T) {
	r := New(PolicyClamp)
	assert.Equal(t, 0, r.Current())
	assert.Equal(t, command.Vec2f{}, r.Offset())
	assert.Equal(t, [Slots]command.Vec2f{}, r.Positions())
}

func TestSelectAndOffset(t *testing.T) {
	r := New(PolicyClamp)
	require.NoError(t, r.SetPosition(1, command.V2(5, 6)))
	require.NoError(t, r.Select(1))
	assert.Equal(t, 1, r.Current())
	assert.Equal(t, command.V2(5, 6), r.Offset())

	r.ResetSelection()
	assert.Equal(t, 0, r.Current())
	assert.Equal(t, command.V2(5, 6), r.Position(1), "reset must keep positions")
}

func TestOutOfRangeClamp(t *testing.T) {
	tests := []struct {
		id   int32
		want int
	}{
		{-3, 0},
		{2, 1},
		{100, 1},
	}
	for _, tt := range tests {
		r := New(PolicyClamp)
		err := r.Select(tt.id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))

		var ie *IndexError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, tt.want, ie.Applied)
		assert.Equal(t, tt.want, r.Current())
	}
}

func TestOutOfRangeReject(t *testing.T) {
	r := New(PolicyReject)
	require.NoError(t, r.Select(1))

	err := r.Select(7)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 1, r.Current(), "rejected select must keep the selection")

	err = r.SetPosition(-1, command.V2(9, 9))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, [Slots]command.Vec2f{}, r.Positions())
	assert.Contains(t, err.Error(), "rejected")
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("reject")
	require.NoError(t, err)
	assert.Equal(t, PolicyReject, p)
	assert.Equal(t, "reject", p.String())

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyClamp, p)

	_, err = ParsePolicy("wrap")
	assert.Error(t, err)
}

func TestSetPositionIsolatesSlots(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("updating one slot leaves the other untouched", prop.ForAll(
		func(slot int32, x, y, ox, oy float32) bool {
			r := New(PolicyClamp)
			other := 1 - slot
			_ = r.SetPosition(other, command.V2(ox, oy))
			_ = r.SetPosition(slot, command.V2(x, y))
			return r.Position(int(other)) == command.V2(ox, oy) &&
				r.Position(int(slot)) == command.V2(x, y)
		},
		gen.Int32Range(0, 1),
		gen.Float32Range(-1e6, 1e6),
		gen.Float32Range(-1e6, 1e6),
		gen.Float32Range(-1e6, 1e6),
		gen.Float32Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}
