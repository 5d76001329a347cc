package ggbridge

import (
	"fmt"
	"time"

	"github.com/gogpu/ggbridge/camera"
	"github.com/gogpu/ggbridge/command"
	"github.com/gogpu/ggbridge/dispatch"
)

// FrameStats describes one painted frame.
type FrameStats struct {
	Frame    uint64                      `json:"frame"`
	Viewport command.Vec2i               `json:"viewport"`
	Exec     dispatch.Stats              `json:"exec"`
	Measure  dispatch.Stats              `json:"measure"`
	Paint    dispatch.Stats              `json:"paint"`
	Cameras  [camera.Slots]command.Vec2f `json:"cameras"`
	Duration time.Duration               `json:"duration"`
}

// Total returns the three decode passes combined.
func (s FrameStats) Total() dispatch.Stats {
	var t dispatch.Stats
	t.Add(s.Exec)
	t.Add(s.Measure)
	t.Add(s.Paint)
	return t
}

func (s FrameStats) String() string {
	return fmt.Sprintf("frame %d %dx%d: %d measured, %d texts, %d lines, %d quads in %v",
		s.Frame, s.Viewport.X, s.Viewport.Y,
		s.Measure.Measured, s.Paint.Texts, s.Paint.Lines, s.Paint.Quads, s.Duration)
}
