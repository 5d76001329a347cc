// Package operand holds the operand stacks filled by push commands and
// drained by action commands.
//
// A Stack only grows at its tail until it is cleared. Consumers that find a
// stack shorter than they need get ok == false back and are expected to
// degrade to a partial action or a no-op.
package operand

import "github.com/gogpu/ggbridge/command"

// Stack is an ordered, append-only-until-cleared buffer of one operand type.
// The zero value is an empty stack. Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// Push appends v at the tail.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the most recently pushed value.
// ok is false when the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	s.items = s.items[:n-1]
	return v, true
}

// First returns the earliest pushed value without removing it.
// ok is false when the stack is empty.
func (s *Stack[T]) First() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[0], true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// All returns the values in arrival order. The slice aliases the stack and
// is only valid until the next Push or Clear.
func (s *Stack[T]) All() []T { return s.items }

// Pairs calls fn for consecutive non-overlapping pairs in arrival order.
// A trailing unpaired value is skipped.
func (s *Stack[T]) Pairs(fn func(a, b T)) {
	for i := 0; i+1 < len(s.items); i += 2 {
		fn(s.items[i], s.items[i+1])
	}
}

// Clear empties the stack, keeping its capacity for the next frame.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Stacks bundles the five operand stacks a decoder writes into.
type Stacks struct {
	Int32   Stack[int32]
	Vec2f   Stack[command.Vec2f]
	Vec2i   Stack[command.Vec2i]
	Color   Stack[command.Color]
	Strings Stack[string]
}

// Flush clears all five stacks.
func (s *Stacks) Flush() {
	s.Int32.Clear()
	s.Vec2f.Clear()
	s.Vec2i.Clear()
	s.Color.Clear()
	s.Strings.Clear()
}

// Empty reports whether all five stacks are empty.
func (s *Stacks) Empty() bool {
	return s.Int32.Len() == 0 && s.Vec2f.Len() == 0 && s.Vec2i.Len() == 0 &&
		s.Color.Len() == 0 && s.Strings.Len() == 0
}

// Len returns the total number of operands held.
func (s *Stacks) Len() int {
	return s.Int32.Len() + s.Vec2f.Len() + s.Vec2i.Len() + s.Color.Len() + s.Strings.Len()
}

// Push appends p to the stack matching its variant.
// It returns false for a nil payload.
func (s *Stacks) Push(p command.Payload) bool {
	switch v := p.(type) {
	case command.Int32:
		s.Int32.Push(int32(v))
	case command.Vec2f:
		s.Vec2f.Push(v)
	case command.Vec2i:
		s.Vec2i.Push(v)
	case command.Color:
		s.Color.Push(v)
	case command.String:
		s.Strings.Push(string(v))
	default:
		return false
	}
	return true
}
