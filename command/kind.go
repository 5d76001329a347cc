package command

// ExecKind identifies an execution command.
type ExecKind uint8

const (
	ExecPushVec2f            ExecKind = iota // Push a float vector operand
	ExecPushInt32                            // Push an int operand
	ExecUpdateCameraPosition                 // Move a camera slot

	execKindCount
)

var execKindNames = [...]string{
	ExecPushVec2f:            "PushVec2f",
	ExecPushInt32:            "PushInt32",
	ExecUpdateCameraPosition: "UpdateCameraPosition",
}

// String returns the string representation of an ExecKind.
func (k ExecKind) String() string {
	if k < execKindCount {
		return execKindNames[k]
	}
	return "Unknown"
}

// IsPush reports whether the kind appends an operand instead of acting.
func (k ExecKind) IsPush() bool {
	return k == ExecPushVec2f || k == ExecPushInt32
}

// RenderKind identifies a render command.
type RenderKind uint8

const (
	// Operand commands
	RenderPushColor  RenderKind = iota // Push a color operand
	RenderPushVec2f                    // Push a float vector operand
	RenderPushVec2i                    // Push an int vector operand
	RenderPushInt32                    // Push an int operand
	RenderPushString                   // Push a string operand

	// Drawing commands
	RenderDrawText   // Draw (or measure) every pushed string
	RenderDrawLines  // Stroke consecutive vector pairs
	RenderDrawQuads  // Fill consecutive (position, size) pairs
	RenderDrawPoints // Reserved, flushes only

	// State commands
	RenderSetCamera       // Select the current camera
	RenderSetColorUniform // Select the current color

	// Reserved, ignored by the dispatcher
	RenderDrawCircles
	RenderDrawTexture

	renderKindCount
)

var renderKindNames = [...]string{
	RenderPushColor:       "PushColor",
	RenderPushVec2f:       "PushVec2f",
	RenderPushVec2i:       "PushVec2i",
	RenderPushInt32:       "PushInt32",
	RenderPushString:      "PushString",
	RenderDrawText:        "DrawText",
	RenderDrawLines:       "DrawLines",
	RenderDrawQuads:       "DrawQuads",
	RenderDrawPoints:      "DrawPoints",
	RenderSetCamera:       "SetCamera",
	RenderSetColorUniform: "SetColorUniform",
	RenderDrawCircles:     "DrawCircles",
	RenderDrawTexture:     "DrawTexture",
}

// String returns the string representation of a RenderKind.
func (k RenderKind) String() string {
	if k < renderKindCount {
		return renderKindNames[k]
	}
	return "Unknown"
}

// IsPush reports whether the kind appends an operand instead of acting.
func (k RenderKind) IsPush() bool {
	return k <= RenderPushString
}

// ParseRenderKind returns the RenderKind with the given name.
// The second result is false for unknown names.
func ParseRenderKind(name string) (RenderKind, bool) {
	for i, n := range renderKindNames {
		if n == name {
			return RenderKind(i), true //nolint:gosec // bounded by renderKindCount
		}
	}
	return 0, false
}

// ParseExecKind returns the ExecKind with the given name.
// The second result is false for unknown names.
func ParseExecKind(name string) (ExecKind, bool) {
	for i, n := range execKindNames {
		if n == name {
			return ExecKind(i), true //nolint:gosec // bounded by execKindCount
		}
	}
	return 0, false
}
