package recording

import (
	"image/color"

	"github.com/gogpu/ggbridge/surface"
	"github.com/gogpu/ggbridge/text"
)

// Recorder is a surface.Surface that captures operations.
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	measurer      text.Measurer
	ops           []Op

	// FailLayout, when set, makes NewTextLayout fail for matching strings.
	FailLayout func(s string) bool
}

var _ surface.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder measuring text with a FixedMeasurer at the
// default UI font size.
func NewRecorder(width, height int) *Recorder {
	return NewRecorderWithMeasurer(width, height, text.NewFixedMeasurer(surface.DefaultTextSize))
}

// NewRecorderWithMeasurer creates a Recorder measuring text with m.
func NewRecorderWithMeasurer(width, height int, m text.Measurer) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		measurer: m,
		ops:      make([]Op, 0, 64),
	}
}

// Width implements surface.Surface.
func (r *Recorder) Width() int { return r.width }

// Height implements surface.Surface.
func (r *Recorder) Height() int { return r.height }

// Resize implements surface.Resizer. It changes the reported size only.
func (r *Recorder) Resize(width, height int) error {
	r.width, r.height = width, height
	return nil
}

// Clip implements surface.Surface.
func (r *Recorder) Clip(rect surface.Rect, radius float64) {
	r.ops = append(r.ops, ClipOp{Rect: rect, Radius: radius})
}

// ResetClip implements surface.Surface.
func (r *Recorder) ResetClip() {
	r.ops = append(r.ops, ResetClipOp{})
}

// FillRect implements surface.Surface.
func (r *Recorder) FillRect(rect surface.Rect, radius float64, c color.Color) {
	r.ops = append(r.ops, FillRectOp{Rect: rect, Radius: radius, Color: nrgba(c)})
}

// StrokeLine implements surface.Surface.
func (r *Recorder) StrokeLine(p1, p2 surface.Point, width float64, c color.Color) {
	r.ops = append(r.ops, StrokeLineOp{P1: p1, P2: p2, Width: width, Color: nrgba(c)})
}

// NewTextLayout implements surface.Surface.
func (r *Recorder) NewTextLayout(s string, c color.Color) (*surface.TextLayout, error) {
	if r.FailLayout != nil && r.FailLayout(s) {
		return nil, surface.ErrLayout
	}
	l, err := surface.BuildLayout(r.measurer, s, c)
	if err != nil {
		return nil, err
	}
	r.ops = append(r.ops, LayoutTextOp{Text: l.Text, Bounds: l.ImageBounds()})
	return l, nil
}

// DrawText implements surface.Surface.
func (r *Recorder) DrawText(l *surface.TextLayout, at surface.Point) {
	if l == nil {
		return
	}
	r.ops = append(r.ops, DrawTextOp{Text: l.Text, At: at, Color: l.Color})
}

// Ops returns the recorded operations in call order.
func (r *Recorder) Ops() []Op { return r.ops }

// Len returns the number of recorded operations.
func (r *Recorder) Len() int { return len(r.ops) }

// Count returns how many operations of type t were recorded.
func (r *Recorder) Count(t OpType) int {
	n := 0
	for _, op := range r.ops {
		if op.Type() == t {
			n++
		}
	}
	return n
}

// Reset drops all recorded operations.
func (r *Recorder) Reset() {
	clear(r.ops)
	r.ops = r.ops[:0]
}

// Playback replays the recorded drawing onto dst. Layout operations are
// rebuilt on dst; layouts dst cannot build are skipped.
func (r *Recorder) Playback(dst surface.Surface) {
	for _, op := range r.ops {
		switch op := op.(type) {
		case ClipOp:
			dst.Clip(op.Rect, op.Radius)
		case ResetClipOp:
			dst.ResetClip()
		case FillRectOp:
			dst.FillRect(op.Rect, op.Radius, op.Color)
		case StrokeLineOp:
			dst.StrokeLine(op.P1, op.P2, op.Width, op.Color)
		case DrawTextOp:
			l, err := dst.NewTextLayout(op.Text, op.Color)
			if err != nil {
				continue
			}
			dst.DrawText(l, op.At)
		}
	}
}

// OfType returns the recorded operations of concrete type T in call order.
func OfType[T Op](r *Recorder) []T {
	var out []T
	for _, op := range r.ops {
		if v, ok := op.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func init() {
	surface.Register("recording", 0, func(opts surface.Options) (surface.Surface, error) {
		m := opts.Measurer
		if m == nil {
			size := opts.TextSize
			if size <= 0 {
				size = surface.DefaultTextSize
			}
			m = text.NewFixedMeasurer(size)
		}
		return NewRecorderWithMeasurer(opts.Width, opts.Height, m), nil
	}, nil)
}
