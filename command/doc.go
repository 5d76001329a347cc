// Package command defines the tagged command records exchanged with an
// external scene engine.
//
// An engine produces two disjoint streams per frame:
//
//   - execution commands, which mutate bridge state the engine owns on the
//     simulation side (camera positions)
//   - render commands, which either supply operands or trigger a drawing or
//     measurement action
//
// Every command carries a kind discriminant and an optional payload. The
// payload is a closed sum type: one of [Int32], [Vec2f], [Vec2i], [Color] or
// [String], or nil for action commands.
//
// Commands are immutable values. Streams are handed to the bridge as plain
// slices which the bridge only reads:
//
//	var l command.RenderList
//	l.PushColor(command.RGBA(255, 0, 0, 255)).
//		SetColorUniform().
//		PushVec2f(command.V2(0, 0)).
//		PushVec2f(command.V2(10, 10)).
//		DrawLines()
//	cmds := l.Commands()
package command
