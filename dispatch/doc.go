// Package dispatch decodes engine command streams into operand stacks and
// turns action commands into camera updates, draw calls and text metrics.
//
// Two decoders exist. ExecDecoder drains the execution stream, whose only
// action is update-camera-position. RenderDecoder drains the render stream
// in one of two modes:
//
//   - ModeMeasure: draw-text lays each string out and reports its ink size
//     to a MetricsSink. Only pushes, draw-text and set-camera act; every
//     other opcode is ignored.
//   - ModePaint: every action draws on a surface.Surface relative to the
//     current camera.
//
// Decoding never fails. Short operand stacks turn the affected action into
// a partial action or a no-op, unknown opcodes are skipped, and text layout
// failures skip the affected string. Anything skipped is logged and counted
// in Stats.
package dispatch
