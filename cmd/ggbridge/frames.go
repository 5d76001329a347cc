package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/ggbridge"
	"github.com/gogpu/ggbridge/engine"
	"github.com/gogpu/ggbridge/internal/config"
	"github.com/gogpu/ggbridge/internal/inspect"
	_ "github.com/gogpu/ggbridge/recording" // registers the "recording" backend
	"github.com/gogpu/ggbridge/surface"
	"github.com/gogpu/ggbridge/text"
)

// pngSaver is implemented by surfaces that can write themselves out.
type pngSaver interface {
	SavePNG(path string) error
}

// frameJob describes one paint session.
type frameJob struct {
	engine   engine.Engine
	realtime bool
	// done reports that the engine has nothing left to paint.
	done func() bool
	// reload delivers configuration changes to apply between frames.
	reload <-chan *config.Config
}

func (a *app) newSurface() (surface.Surface, error) {
	font := text.Default()
	if a.cfg.Text.Font != "" {
		f, err := text.LoadFile(a.cfg.Text.Font)
		if err != nil {
			return nil, err
		}
		font = f
	}
	shaper, err := a.cfg.Shaper()
	if err != nil {
		return nil, err
	}
	m, err := text.NewMeasurer(shaper, font, a.cfg.Text.Size)
	if err != nil {
		return nil, err
	}
	if a.cfg.Text.CacheSize > 0 {
		m = text.NewCachedMeasurer(m, a.cfg.Text.CacheSize)
	}
	return surface.NewSurfaceByName(a.cfg.Backend, surface.Options{
		Width:    a.cfg.Width,
		Height:   a.cfg.Height,
		Font:     font,
		Measurer: m,
		TextSize: a.cfg.Text.Size,
	})
}

func (a *app) bridgeOptions() ([]ggbridge.Option, error) {
	bg, err := a.cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	policy, err := a.cfg.CameraPolicy()
	if err != nil {
		return nil, err
	}
	return []ggbridge.Option{
		ggbridge.WithLogger(a.log),
		ggbridge.WithBackground(bg),
		ggbridge.WithCornerRadius(a.cfg.Canvas.CornerRadius),
		ggbridge.WithCameraPolicy(policy),
		ggbridge.WithFrameInterval(a.cfg.FrameInterval),
	}, nil
}

// paint runs job until the frame budget is spent, the engine is done or
// ctx is cancelled.
func (a *app) paint(ctx context.Context, job frameJob) (int, error) {
	opts, err := a.bridgeOptions()
	if err != nil {
		return 0, err
	}
	if a.cfg.Inspect.Addr != "" {
		srv := inspect.New(a.log)
		stop, err := a.serveInspect(srv)
		if err != nil {
			return 0, err
		}
		defer stop()
		opts = append(opts, ggbridge.WithFrameObserver(srv.Publish))
	}

	b, err := ggbridge.New(job.engine, opts...)
	if err != nil {
		return 0, err
	}
	s, err := a.newSurface()
	if err != nil {
		return 0, err
	}
	if c, ok := s.(interface{ Close() error }); ok {
		defer c.Close()
	}
	if err := os.MkdirAll(a.cfg.Output.Dir, 0o755); err != nil {
		return 0, err
	}
	b.Layout(s.Width(), s.Height())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	painted := 0
	var frameErr error
	frame := func() {
		a.applyReload(b, s, job.reload)
		st := b.Paint(s)
		painted++
		if err := a.save(s, st); err != nil {
			frameErr = err
			cancel()
			return
		}
		a.log.Debug("frame", "stats", st.String())
		if (a.cfg.Frames > 0 && painted >= a.cfg.Frames) || (job.done != nil && job.done()) {
			cancel()
		}
	}

	if job.realtime {
		err = b.Run(ctx, ggbridge.HostFunc(frame))
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		for ctx.Err() == nil {
			frame()
		}
	}
	if frameErr != nil {
		return painted, frameErr
	}
	return painted, err
}

func (a *app) applyReload(b *ggbridge.Bridge, s surface.Surface, reload <-chan *config.Config) {
	select {
	case cfg := <-reload:
		if bg, err := cfg.BackgroundColor(); err == nil {
			b.SetBackground(bg)
		}
		if r, ok := s.(surface.Resizer); ok && (cfg.Width != s.Width() || cfg.Height != s.Height()) {
			if err := r.Resize(cfg.Width, cfg.Height); err != nil {
				a.log.Warn("resize failed", "width", cfg.Width, "height", cfg.Height, "err", err)
			} else {
				b.Layout(cfg.Width, cfg.Height)
			}
		}
		if lvl, err := cfg.LogLevel(); err == nil {
			a.level.Set(lvl)
		}
		a.log.Info("configuration reloaded", "background", cfg.Canvas.Background,
			"log_level", cfg.Log.Level, "width", s.Width(), "height", s.Height())
	default:
	}
}

func (a *app) save(s surface.Surface, st ggbridge.FrameStats) error {
	saver, ok := s.(pngSaver)
	if !ok {
		return nil
	}
	path := filepath.Join(a.cfg.Output.Dir, fmt.Sprintf("frame-%04d.png", st.Frame))
	if err := saver.SavePNG(path); err != nil {
		return fmt.Errorf("save frame %d: %w", st.Frame, err)
	}
	return nil
}

func (a *app) serveInspect(srv *inspect.Server) (func(), error) {
	ln, err := net.Listen("tcp", a.cfg.Inspect.Addr)
	if err != nil {
		return nil, fmt.Errorf("inspect: %w", err)
	}
	hs := &http.Server{Handler: srv.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Warn("inspect server stopped", "err", err)
		}
	}()
	a.log.Info("serving frame stats", "addr", ln.Addr().String())
	return func() {
		srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = hs.Shutdown(ctx)
	}, nil
}
