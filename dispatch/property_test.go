package dispatch

import (
	"fmt"
	"testing"

	"github.com/gogpu/ggbridge/camera"
	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/recording"
	"github.com/gogpu/ggbridge/surface"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDispatchProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("draw-lines emits floor(n/2) segments", prop.ForAll(
		func(n int) bool {
			d := NewRenderDecoder(camera.New(camera.PolicyClamp), nil)
			rec := recording.NewRecorder(100, 100)
			var l command.RenderList
			for i := range n {
				l.PushVec2f(command.V2(float32(i), float32(2*i)))
			}
			l.DrawLines()
			d.Decode(rec, l.Commands(), ModePaint)

			lines := recording.OfType[recording.StrokeLineOp](rec)
			if len(lines) != n/2 {
				return false
			}
			for i, op := range lines {
				a := float64(2 * i)
				if op.P1 != surface.Pt(a+0.5, 2*a+0.5) || op.P2 != surface.Pt(a+1.5, 2*a+2.5) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 64),
	))

	properties.Property("draw-text attributes each string to its position", prop.ForAll(
		func(k int) bool {
			d := NewRenderDecoder(camera.New(camera.PolicyClamp), nil)
			rec := recording.NewRecorder(100, 100)
			var l command.RenderList
			for i := range k {
				l.PushString(fmt.Sprintf("s%d", i)).PushVec2f(command.V2(float32(i), 0))
			}
			l.DrawText()
			d.Decode(rec, l.Commands(), ModePaint)

			texts := recording.OfType[recording.DrawTextOp](rec)
			if len(texts) != k {
				return false
			}
			for _, op := range texts {
				var i int
				if _, err := fmt.Sscanf(op.Text, "s%d", &i); err != nil {
					return false
				}
				if op.At != surface.Pt(float64(i), 0) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 32),
	))

	properties.Property("current color applies to every primitive of a draw action", prop.ForAll(
		func(r, g, b uint8, draws int) bool {
			d := NewRenderDecoder(camera.New(camera.PolicyClamp), nil)
			rec := recording.NewRecorder(100, 100)
			c := command.RGBA(r, g, b, 255)
			var l command.RenderList
			l.SetColor(c)
			for range draws {
				l.PushVec2f(command.V2(0, 0)).PushVec2f(command.V2(1, 1))
			}
			l.DrawQuads()
			d.Decode(rec, l.Commands(), ModePaint)

			quads := recording.OfType[recording.FillRectOp](rec)
			if len(quads) != draws {
				return false
			}
			for _, op := range quads {
				if op.Color != c.NRGBA() {
					return false
				}
			}
			return d.Color() == command.Black
		},
		gen.UInt8(), gen.UInt8(), gen.UInt8(), gen.IntRange(1, 8),
	))

	properties.Property("flush law after every action", prop.ForAll(
		func(kind uint8) bool {
			rk := command.RenderKind(kind)
			d := NewRenderDecoder(camera.New(camera.PolicyClamp), nil)
			rec := recording.NewRecorder(100, 100)
			var l command.RenderList
			l.PushVec2f(command.V2(1, 1)).PushVec2i(command.V2i(1, 1)).
				PushInt32(0).PushString("x").SetColor(command.RGBA(1, 2, 3, 255)).
				PushColor(command.White).
				Append(command.RenderCommand{Kind: rk})
			d.Decode(rec, l.Commands(), ModePaint)

			st := d.Stacks()
			switch rk {
			case command.RenderSetCamera:
				return st.Int32.Len() == 0 && st.Strings.Len() == 1 &&
					d.Color() == command.RGBA(1, 2, 3, 255)
			case command.RenderSetColorUniform:
				return st.Color.Len() == 0 && st.Strings.Len() == 1 &&
					d.Color() == command.White
			case command.RenderDrawText, command.RenderDrawLines,
				command.RenderDrawQuads, command.RenderDrawPoints:
				return st.Empty() && d.Color() == command.Black
			default:
				return true
			}
		},
		gen.UInt8Range(uint8(command.RenderDrawText), uint8(command.RenderDrawTexture)),
	))

	properties.Property("update-camera-position leaves the other slot alone", prop.ForAll(
		func(slot int32, x, y float32) bool {
			cams := camera.New(camera.PolicyClamp)
			before := cams.Position(int(1 - slot))
			d := NewExecDecoder(cams)
			var l command.ExecList
			l.UpdateCameraPosition(slot, command.V2(x, y))
			d.Decode(l.Commands())
			return cams.Position(int(slot)) == command.V2(x, y) &&
				cams.Position(int(1-slot)) == before
		},
		gen.Int32Range(0, 1), gen.Float32Range(-1e4, 1e4), gen.Float32Range(-1e4, 1e4),
	))

	properties.TestingRun(t)
}
