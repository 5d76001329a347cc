// Package camera implements the fixed two-slot camera table used to turn
// engine coordinates into surface coordinates.
//
// Slot positions are written only by the execution stream and read by every
// coordinate-consuming draw action through the current selection.
package camera

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggbridge/command"
)

// Slots is the number of physical camera slots.
const Slots = 2

// ErrIndexOutOfRange is wrapped by every IndexError.
var ErrIndexOutOfRange = errors.New("camera: index out of range")

// Policy decides what happens to an index outside [0, Slots).
type Policy uint8

const (
	// PolicyClamp moves the index to the nearest valid slot.
	PolicyClamp Policy = iota

	// PolicyReject drops the action that carried the index.
	PolicyReject
)

func (p Policy) String() string {
	switch p {
	case PolicyClamp:
		return "clamp"
	case PolicyReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParsePolicy parses "clamp" or "reject".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "clamp", "":
		return PolicyClamp, nil
	case "reject":
		return PolicyReject, nil
	}
	return 0, fmt.Errorf("camera: unknown policy %q", s)
}

// IndexError reports an out-of-range camera index and how it was handled.
type IndexError struct {
	Index   int32
	Applied int // slot actually used, -1 when the action was dropped
}

func (e *IndexError) Error() string {
	if e.Applied < 0 {
		return fmt.Sprintf("camera: index %d out of range [0, %d), rejected", e.Index, Slots)
	}
	return fmt.Sprintf("camera: index %d out of range [0, %d), clamped to %d", e.Index, Slots, e.Applied)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Registry owns the camera slots and the current selection.
// The zero value is a valid registry with the clamp policy.
// Registry is not safe for concurrent use.
type Registry struct {
	positions [Slots]command.Vec2f
	current   int
	policy    Policy
}

// New returns a registry with both slots at the origin.
func New(policy Policy) *Registry {
	return &Registry{policy: policy}
}

// Policy returns the out-of-range policy.
func (r *Registry) Policy() Policy { return r.policy }

// SetPolicy changes the out-of-range policy.
func (r *Registry) SetPolicy(p Policy) { r.policy = p }

func (r *Registry) resolve(id int32) (int, error) {
	if id >= 0 && id < Slots {
		return int(id), nil
	}
	if r.policy == PolicyReject {
		return -1, &IndexError{Index: id, Applied: -1}
	}
	slot := 0
	if id >= Slots {
		slot = Slots - 1
	}
	return slot, &IndexError{Index: id, Applied: slot}
}

// Select makes id the current camera.
// A non-nil error is always an *IndexError; under PolicyClamp the clamped
// slot has still been selected.
func (r *Registry) Select(id int32) error {
	slot, err := r.resolve(id)
	if slot >= 0 {
		r.current = slot
	}
	return err
}

// Current returns the selected slot.
func (r *Registry) Current() int { return r.current }

// ResetSelection selects slot 0. Positions are kept.
func (r *Registry) ResetSelection() { r.current = 0 }

// SetPosition moves slot id to pos without touching the other slot.
// Errors follow the same rules as Select.
func (r *Registry) SetPosition(id int32, pos command.Vec2f) error {
	slot, err := r.resolve(id)
	if slot >= 0 {
		r.positions[slot] = pos
	}
	return err
}

// Position returns the position of slot i, or the origin for an invalid slot.
func (r *Registry) Position(i int) command.Vec2f {
	if i < 0 || i >= Slots {
		return command.Vec2f{}
	}
	return r.positions[i]
}

// Offset returns the position of the current camera.
func (r *Registry) Offset() command.Vec2f {
	return r.positions[r.current]
}

// Positions returns a copy of both slots.
func (r *Registry) Positions() [Slots]command.Vec2f {
	return r.positions
}
