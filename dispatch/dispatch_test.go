package dispatch

import (
	"bytes"
	"image/color"
	"log/slog"
	"testing"

	"github.com/gogpu/ggbridge/camera"
	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/recording"
	"github.com/gogpu/ggbridge/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sizeSink records reported text sizes.
type sizeSink struct {
	sizes []command.Vec2f
}

func (s *sizeSink) ReportTextSize(size command.Vec2f) { s.sizes = append(s.sizes, size) }

func newRender(t *testing.T) (*RenderDecoder, *camera.Registry, *sizeSink, *recording.Recorder) {
	t.Helper()
	cams := camera.New(camera.PolicyClamp)
	sink := &sizeSink{}
	return NewRenderDecoder(cams, sink), cams, sink, recording.NewRecorder(200, 100)
}

var red = color.NRGBA{R: 255, A: 255}

func TestModeString(t *testing.T) {
	assert.Equal(t, "paint", ModePaint.String())
	assert.Equal(t, "measure", ModeMeasure.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

func TestRedLineScenario(t *testing.T) {
	d, cams, _, rec := newRender(t)
	require.NoError(t, cams.SetPosition(0, command.V2(3.2, 4.7)))

	var l command.RenderList
	l.PushColor(command.RGBA(255, 0, 0, 255)).SetColorUniform().
		PushVec2f(command.V2(0, 0)).PushVec2f(command.V2(10, 10)).DrawLines()

	st := d.Decode(rec, l.Commands(), ModePaint)

	lines := recording.OfType[recording.StrokeLineOp](rec)
	require.Len(t, lines, 1)
	assert.Equal(t, surface.Pt(3.5, 4.5), lines[0].P1)
	assert.Equal(t, surface.Pt(13.5, 14.5), lines[0].P2)
	assert.Equal(t, 1.0, lines[0].Width)
	assert.Equal(t, red, lines[0].Color)
	assert.Equal(t, 1, st.Lines)
	assert.Equal(t, command.Black, d.Color(), "draw-lines flushes the color")
	assert.True(t, d.Stacks().Empty())
}

func TestMisalignedPushDoesNotFail(t *testing.T) {
	d, _, _, rec := newRender(t)
	var l command.RenderList
	l.PushVec2f(command.V2(10, 20)).PushInt32(1)

	assert.NotPanics(t, func() { d.Decode(rec, l.Commands(), ModePaint) })
	assert.Equal(t, 0, rec.Len())
	assert.Equal(t, 1, d.Stacks().Vec2f.Len())
	assert.Equal(t, 1, d.Stacks().Int32.Len())
}

func TestTextMeasureAndPaint(t *testing.T) {
	var l command.RenderList
	l.PushString("AB").DrawText()

	t.Run("measure", func(t *testing.T) {
		d, _, sink, rec := newRender(t)
		st := d.Decode(rec, l.Commands(), ModeMeasure)
		require.Len(t, sink.sizes, 1)
		assert.Greater(t, sink.sizes[0].X, float32(0))
		assert.Greater(t, sink.sizes[0].Y, float32(0))
		assert.Equal(t, 0, rec.Count(recording.OpDrawText))
		assert.Equal(t, 1, st.Measured)
	})

	t.Run("paint", func(t *testing.T) {
		d, _, sink, rec := newRender(t)
		st := d.Decode(rec, l.Commands(), ModePaint)
		assert.Empty(t, sink.sizes)
		assert.Equal(t, 1, rec.Count(recording.OpDrawText))
		assert.Equal(t, 1, st.Texts)
	})
}

func TestMeasuredSizeMatchesLayout(t *testing.T) {
	d, _, sink, rec := newRender(t)
	var l command.RenderList
	l.PushString("hello").DrawText()
	d.Decode(rec, l.Commands(), ModeMeasure)

	layouts := recording.OfType[recording.LayoutTextOp](rec)
	require.Len(t, layouts, 1)
	require.Len(t, sink.sizes, 1)
	assert.InDelta(t, layouts[0].Bounds.W, float64(sink.sizes[0].X), 1e-4)
	assert.InDelta(t, layouts[0].Bounds.H, float64(sink.sizes[0].Y), 1e-4)
}

func TestDrawTextPairing(t *testing.T) {
	d, cams, _, rec := newRender(t)
	require.NoError(t, cams.SetPosition(0, command.V2(100, 0)))

	var l command.RenderList
	l.PushString("a").PushVec2f(command.V2(1, 1)).
		PushString("b").PushVec2f(command.V2(2, 2)).
		PushString("c").DrawText()
	d.Decode(rec, l.Commands(), ModePaint)

	texts := recording.OfType[recording.DrawTextOp](rec)
	require.Len(t, texts, 3)
	got := map[string]surface.Point{}
	for _, op := range texts {
		got[op.Text] = op.At
	}
	// Pushed order is a(1,1), b(2,2), c; walking from the tail pairs
	// c with (2,2), b with (1,1) and leaves a at the camera origin.
	assert.Equal(t, surface.Pt(102, 2), got["c"])
	assert.Equal(t, surface.Pt(101, 1), got["b"])
	assert.Equal(t, surface.Pt(100, 0), got["a"])
	assert.Equal(t, "c", texts[0].Text, "strings are walked most recent first")
}

func TestDrawTextUsesCurrentColor(t *testing.T) {
	d, _, _, rec := newRender(t)
	var l command.RenderList
	l.SetColor(command.RGBA(255, 0, 0, 255)).Text("x", command.V2(0, 0)).Text("y", command.V2(0, 0))
	d.Decode(rec, l.Commands(), ModePaint)

	texts := recording.OfType[recording.DrawTextOp](rec)
	require.Len(t, texts, 2)
	assert.Equal(t, red, texts[0].Color)
	assert.Equal(t, color.NRGBA{A: 255}, texts[1].Color, "flush resets to black")
}

func TestLayoutFailureSkipsString(t *testing.T) {
	d, _, sink, rec := newRender(t)
	rec.FailLayout = func(s string) bool { return s == "bad" }

	var l command.RenderList
	l.PushString("ok").PushString("bad").DrawText()

	st := d.Decode(rec, l.Commands(), ModeMeasure)
	assert.Len(t, sink.sizes, 1)
	assert.Equal(t, 1, st.LayoutFailures)

	st = d.Decode(rec, l.Commands(), ModePaint)
	assert.Equal(t, 1, rec.Count(recording.OpDrawText))
	assert.Equal(t, 1, st.LayoutFailures)
	assert.True(t, d.Stacks().Empty())
}

func TestDrawQuads(t *testing.T) {
	d, cams, _, rec := newRender(t)
	require.NoError(t, cams.SetPosition(1, command.V2(10, 20)))

	var l command.RenderList
	l.SetCamera(1).SetColor(command.RGBA(255, 0, 0, 255)).
		PushVec2f(command.V2(1, 2)).PushVec2f(command.V2(30, 40)).
		PushVec2f(command.V2(5, 5)).PushVec2f(command.V2(1, 1)).
		PushVec2f(command.V2(9, 9)).
		DrawQuads()
	st := d.Decode(rec, l.Commands(), ModePaint)

	quads := recording.OfType[recording.FillRectOp](rec)
	require.Len(t, quads, 2)
	assert.Equal(t, surface.Rect{X: 11, Y: 22, W: 30, H: 40}, quads[0].Rect)
	assert.Equal(t, surface.Rect{X: 15, Y: 25, W: 1, H: 1}, quads[1].Rect)
	assert.Equal(t, red, quads[1].Color)
	assert.Equal(t, 2, st.Quads)
}

func TestColorPersistsUntilFlush(t *testing.T) {
	d, _, _, rec := newRender(t)
	var l command.RenderList
	l.SetColor(command.RGBA(255, 0, 0, 255)).SetCamera(0).
		PushVec2f(command.V2(0, 0)).PushInt32(5)
	d.Decode(rec, l.Commands(), ModePaint)

	assert.Equal(t, command.RGBA(255, 0, 0, 255), d.Color())
	assert.Equal(t, 1, d.Stacks().Vec2f.Len(), "set actions clear only their own stack")
	assert.Equal(t, 1, d.Stacks().Int32.Len())
}

func TestSetColorUniformTakesFirstColor(t *testing.T) {
	d, _, _, rec := newRender(t)
	var l command.RenderList
	l.PushColor(command.RGBA(255, 0, 0, 255)).PushColor(command.White).SetColorUniform().
		PushVec2f(command.V2(0, 0)).PushVec2f(command.V2(4, 4)).DrawQuads()
	d.Decode(rec, l.Commands(), ModePaint)

	quads := recording.OfType[recording.FillRectOp](rec)
	require.Len(t, quads, 1)
	assert.Equal(t, red, quads[0].Color)
}

func TestDrawLinesSnapsWithoutFloat32Rounding(t *testing.T) {
	d, cams, _, rec := newRender(t)
	require.NoError(t, cams.SetPosition(0, command.V2(1.5, 0)))

	// 2^24 + 1.5 is not representable as a float32.
	var l command.RenderList
	l.PushVec2f(command.V2(1<<24, 0)).PushVec2f(command.V2(0, 0)).DrawLines()
	d.Decode(rec, l.Commands(), ModePaint)

	lines := recording.OfType[recording.StrokeLineOp](rec)
	require.Len(t, lines, 1)
	assert.Equal(t, surface.Pt(16777217.5, 0.5), lines[0].P1)
	assert.Equal(t, surface.Pt(1.5, 0.5), lines[0].P2)
}

func TestSnap(t *testing.T) {
	tests := []struct {
		p, cam command.Vec2f
		want   surface.Point
	}{
		{command.V2(0, 0), command.V2(0, 0), surface.Pt(0.5, 0.5)},
		{command.V2(10.9, 3.2), command.V2(0, 0), surface.Pt(10.5, 3.5)},
		{command.V2(-0.25, -1), command.V2(0, 0), surface.Pt(-0.5, -0.5)},
		{command.V2(1, 1), command.V2(0.75, -0.5), surface.Pt(1.5, 0.5)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, snap(tt.p, tt.cam), "snap(%v, %v)", tt.p, tt.cam)
	}
}

func TestSetCameraClearsOnlyInts(t *testing.T) {
	d, cams, _, rec := newRender(t)
	var l command.RenderList
	l.PushColor(command.White).PushString("s").SetCamera(1)
	d.Decode(rec, l.Commands(), ModePaint)

	assert.Equal(t, 1, cams.Current())
	assert.Equal(t, 0, d.Stacks().Int32.Len())
	assert.Equal(t, 1, d.Stacks().Color.Len())
	assert.Equal(t, 1, d.Stacks().Strings.Len())
}

func TestSetCameraOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cams := camera.New(camera.PolicyClamp)
	d := NewRenderDecoder(cams, nil, WithLogger(logger))
	var l command.RenderList
	l.SetCamera(5)
	st := d.Decode(recording.NewRecorder(1, 1), l.Commands(), ModePaint)

	assert.Equal(t, 1, cams.Current())
	assert.Equal(t, 1, st.CameraErrors)
	assert.Contains(t, buf.String(), "camera index out of range")
}

func TestDrawPointsFlushes(t *testing.T) {
	d, _, _, rec := newRender(t)
	var l command.RenderList
	l.SetColor(command.White).PushVec2f(command.V2(1, 1)).DrawPoints()
	d.Decode(rec, l.Commands(), ModePaint)

	assert.Equal(t, 0, rec.Len())
	assert.True(t, d.Stacks().Empty())
	assert.Equal(t, command.Black, d.Color())
}

func TestIgnoredOpcodes(t *testing.T) {
	d, _, _, rec := newRender(t)
	var l command.RenderList
	l.PushVec2f(command.V2(1, 1)).
		Append(
			command.RenderCommand{Kind: command.RenderDrawCircles},
			command.RenderCommand{Kind: command.RenderDrawTexture},
			command.RenderCommand{Kind: command.RenderKind(200)},
		)
	st := d.Decode(rec, l.Commands(), ModePaint)

	assert.Equal(t, 3, st.Ignored)
	assert.Equal(t, 1, d.Stacks().Vec2f.Len(), "ignored opcodes do not flush")
}

func TestMismatchedPayloadSkipped(t *testing.T) {
	d, _, _, rec := newRender(t)
	var l command.RenderList
	l.Append(
		command.RenderCommand{Kind: command.RenderPushColor, Payload: command.V2(1, 1)},
		command.RenderCommand{Kind: command.RenderPushString},
	)
	st := d.Decode(rec, l.Commands(), ModePaint)

	assert.Equal(t, 2, st.Mismatched)
	assert.True(t, d.Stacks().Empty())
}

func TestMeasureModeIgnoresDrawing(t *testing.T) {
	d, cams, sink, rec := newRender(t)
	var l command.RenderList
	l.SetColor(command.RGBA(255, 0, 0, 255)).
		Line(command.V2(0, 0), command.V2(5, 5)).
		Quad(command.V2(0, 0), command.V2(5, 5)).
		DrawPoints().
		SetCamera(1)
	st := d.Decode(rec, l.Commands(), ModeMeasure)

	assert.Equal(t, 0, rec.Len())
	assert.Empty(t, sink.sizes)
	assert.Equal(t, 1, cams.Current(), "set-camera acts in measure mode")
	assert.Equal(t, command.Black, d.Color(), "set-color-uniform is ignored in measure mode")
	assert.Equal(t, 4, st.Ignored)
	assert.Equal(t, 4, d.Stacks().Vec2f.Len(), "ignored actions do not flush")
}

func TestStatsAdd(t *testing.T) {
	a := Stats{Commands: 1, Lines: 2, Measured: 3}
	a.Add(Stats{Commands: 4, Lines: 1, CameraErrors: 1})
	assert.Equal(t, Stats{Commands: 5, Lines: 3, Measured: 3, CameraErrors: 1}, a)
}
