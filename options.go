package ggbridge

import (
	"log/slog"
	"time"

	"github.com/gogpu/ggbridge/camera"
	"github.com/gogpu/ggbridge/command"
)

// DefaultFrameInterval is the repaint cadence requested by Run.
const DefaultFrameInterval = 16666666 * time.Nanosecond

// DefaultCornerRadius is the radius of the viewport clip.
const DefaultCornerRadius = 4

// Option configures a Bridge during creation.
//
// Example:
//
//	b, err := ggbridge.New(eng,
//	    ggbridge.WithBackground(command.RGBA(0x20, 0x20, 0x20, 0xff)),
//	    ggbridge.WithCameraPolicy(camera.PolicyReject),
//	)
type Option func(*bridgeOptions)

type bridgeOptions struct {
	logger       *slog.Logger
	background   command.Color
	cornerRadius float64
	policy       camera.Policy
	interval     time.Duration
	observers    []func(FrameStats)
}

func defaultOptions() bridgeOptions {
	return bridgeOptions{
		logger:       Logger(),
		background:   command.White,
		cornerRadius: DefaultCornerRadius,
		policy:       camera.PolicyClamp,
		interval:     DefaultFrameInterval,
	}
}

// WithLogger sets the logger of one bridge. Nil keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *bridgeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBackground sets the color painted under every frame.
func WithBackground(c command.Color) Option {
	return func(o *bridgeOptions) {
		o.background = c
	}
}

// WithCornerRadius sets the radius of the viewport clip. Zero clips to a
// plain rectangle.
func WithCornerRadius(r float64) Option {
	return func(o *bridgeOptions) {
		if r >= 0 {
			o.cornerRadius = r
		}
	}
}

// WithCameraPolicy selects how out-of-range camera indices are handled.
func WithCameraPolicy(p camera.Policy) Option {
	return func(o *bridgeOptions) {
		o.policy = p
	}
}

// WithFrameInterval sets the repaint cadence used by Run.
func WithFrameInterval(d time.Duration) Option {
	return func(o *bridgeOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithFrameObserver registers fn to receive the stats of every painted
// frame. Observers run synchronously at the end of Paint.
func WithFrameObserver(fn func(FrameStats)) Option {
	return func(o *bridgeOptions) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}
