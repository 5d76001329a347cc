// Package recording provides a surface that records drawing operations
// instead of rasterizing them.
//
// A Recorder implements surface.Surface. Every call is captured as a typed
// operation that can be inspected, counted or replayed onto another surface.
// Tests use it to observe exactly what the dispatcher asked the host to do;
// the CLI uses it for dry runs.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	b := ggbridge.New(engine)
//	b.Paint(rec)
//	for _, line := range recording.OfType[recording.StrokeLineOp](rec) {
//	    fmt.Println(line.P1, line.P2)
//	}
package recording
