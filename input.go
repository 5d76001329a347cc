package ggbridge

import (
	"fmt"

	"github.com/gogpu/ggbridge/command"
)

// PointerKind identifies a pointer event.
type PointerKind uint8

const (
	PointerDown PointerKind = iota // Button pressed
	PointerMove                    // Pointer moved
	PointerUp                      // Button released
)

// String returns the string representation of a PointerKind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return fmt.Sprintf("PointerKind(%d)", k)
	}
}

// PointerEvent is a pointer event in host pixels.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// PointerDown forwards a button press as a touch start.
func (b *Bridge) PointerDown(x, y float64) {
	b.engine.ReportTouchStart(hostPoint(x, y))
}

// PointerMove forwards pointer motion as a touch move.
func (b *Bridge) PointerMove(x, y float64) {
	b.engine.ReportTouchMove(hostPoint(x, y))
}

// PointerUp forwards a button release as a touch end.
func (b *Bridge) PointerUp(x, y float64) {
	b.engine.ReportTouchEnd(hostPoint(x, y))
}

// HandlePointer forwards ev. Unknown kinds are dropped.
func (b *Bridge) HandlePointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		b.PointerDown(ev.X, ev.Y)
	case PointerMove:
		b.PointerMove(ev.X, ev.Y)
	case PointerUp:
		b.PointerUp(ev.X, ev.Y)
	default:
		b.log.Debug("ggbridge: dropped pointer event", "kind", ev.Kind.String())
	}
}

// hostPoint keeps host coordinates as they are. Camera offsets only apply
// to drawing.
func hostPoint(x, y float64) command.Vec2f {
	return command.V2(float32(x), float32(y))
}
