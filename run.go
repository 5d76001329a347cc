package ggbridge

import (
	"context"
	"time"
)

// Host is the embedding UI. RequestRepaint asks it to schedule a paint,
// which must end up calling Bridge.Paint.
type Host interface {
	RequestRepaint()
}

// HostFunc adapts a function to Host.
type HostFunc func()

// RequestRepaint implements Host.
func (f HostFunc) RequestRepaint() { f() }

// Run requests a repaint from host at the frame interval until ctx is
// done. It returns ctx.Err().
func (b *Bridge) Run(ctx context.Context, host Host) error {
	ticker := time.NewTicker(b.opts.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			host.RequestRepaint()
		}
	}
}

// FrameInterval returns the repaint cadence used by Run.
func (b *Bridge) FrameInterval() time.Duration { return b.opts.interval }
