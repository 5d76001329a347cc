package ggbridge

import (
	"errors"

	"github.com/gogpu/ggbridge/camera"
)

// ErrNoEngine is returned by New when no engine is given.
var ErrNoEngine = errors.New("ggbridge: engine is nil")

// ErrCameraIndex reports a camera index outside the two slots.
// Frames never fail with it; it is what Bridge.SetCameraPosition returns
// and what the decoders log.
var ErrCameraIndex = camera.ErrIndexOutOfRange
