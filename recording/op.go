package recording

import (
	"image/color"

	"github.com/gogpu/ggbridge/surface"
)

// OpType identifies a recorded operation.
type OpType uint8

const (
	OpClip       OpType = iota // Clip to a rounded rectangle
	OpResetClip                // Remove the clip
	OpFillRect                 // Fill a rectangle
	OpStrokeLine               // Stroke a segment
	OpLayoutText               // Build a text layout
	OpDrawText                 // Draw a text layout
)

var opTypeNames = [...]string{
	OpClip:       "Clip",
	OpResetClip:  "ResetClip",
	OpFillRect:   "FillRect",
	OpStrokeLine: "StrokeLine",
	OpLayoutText: "LayoutText",
	OpDrawText:   "DrawText",
}

// String returns the string representation of an OpType.
func (t OpType) String() string {
	if int(t) < len(opTypeNames) {
		return opTypeNames[t]
	}
	return "Unknown"
}

// Op is implemented by all recorded operations.
type Op interface {
	// Type returns the OpType for this operation.
	Type() OpType
}

// ClipOp records Surface.Clip.
type ClipOp struct {
	Rect   surface.Rect
	Radius float64
}

// Type implements Op.
func (ClipOp) Type() OpType { return OpClip }

// ResetClipOp records Surface.ResetClip.
type ResetClipOp struct{}

// Type implements Op.
func (ResetClipOp) Type() OpType { return OpResetClip }

// FillRectOp records Surface.FillRect.
type FillRectOp struct {
	Rect   surface.Rect
	Radius float64
	Color  color.NRGBA
}

// Type implements Op.
func (FillRectOp) Type() OpType { return OpFillRect }

// StrokeLineOp records Surface.StrokeLine.
type StrokeLineOp struct {
	P1, P2 surface.Point
	Width  float64
	Color  color.NRGBA
}

// Type implements Op.
func (StrokeLineOp) Type() OpType { return OpStrokeLine }

// LayoutTextOp records a successful Surface.NewTextLayout.
type LayoutTextOp struct {
	Text   string
	Bounds surface.Rect
}

// Type implements Op.
func (LayoutTextOp) Type() OpType { return OpLayoutText }

// DrawTextOp records Surface.DrawText.
type DrawTextOp struct {
	Text  string
	At    surface.Point
	Color color.NRGBA
}

// Type implements Op.
func (DrawTextOp) Type() OpType { return OpDrawText }
