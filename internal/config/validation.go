package config

import (
	"errors"
	"fmt"
)

// ValidationError reports one invalid field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s (got %v)", ve.Field, ve.Message, ve.Value)
}

// Validate checks every field and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(field string, value any, msg string) {
		errs = append(errs, &ValidationError{Field: field, Value: value, Message: msg})
	}

	if c.Width <= 0 {
		add("width", c.Width, "must be positive")
	}
	if c.Height <= 0 {
		add("height", c.Height, "must be positive")
	}
	if c.Frames < 0 {
		add("frames", c.Frames, "must not be negative")
	}
	if c.FrameInterval <= 0 {
		add("frame_interval", c.FrameInterval, "must be positive")
	}
	switch c.Backend {
	case "gg", "recording":
	default:
		add("backend", c.Backend, "must be gg or recording")
	}
	if c.Text.Size <= 0 {
		add("text.size", c.Text.Size, "must be positive")
	}
	if c.Text.CacheSize < 0 {
		add("text.cache_size", c.Text.CacheSize, "must not be negative")
	}
	if _, err := c.Shaper(); err != nil {
		add("text.shaper", c.Text.Shaper, err.Error())
	}
	if _, err := c.BackgroundColor(); err != nil {
		add("canvas.background", c.Canvas.Background, err.Error())
	}
	if c.Canvas.CornerRadius < 0 {
		add("canvas.corner_radius", c.Canvas.CornerRadius, "must not be negative")
	}
	if _, err := c.CameraPolicy(); err != nil {
		add("camera.policy", c.Camera.Policy, err.Error())
	}
	if _, err := c.LogLevel(); err != nil {
		add("log.level", c.Log.Level, "must be debug, info, warn or error")
	}
	return errors.Join(errs...)
}
