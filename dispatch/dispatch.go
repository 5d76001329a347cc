package dispatch

import (
	"log/slog"

	"github.com/gogpu/ggbridge/command"
)

// Mode selects what a render decode pass does with its actions.
type Mode uint8

const (
	// ModePaint draws on the surface.
	ModePaint Mode = iota
	// ModeMeasure reports text sizes and draws nothing.
	ModeMeasure
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "paint"
	case ModeMeasure:
		return "measure"
	default:
		return "unknown"
	}
}

// MetricsSink receives text sizes measured in ModeMeasure.
// engine.Engine satisfies it.
type MetricsSink interface {
	ReportTextSize(size command.Vec2f)
}

// Option configures a decoder.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: slog.New(slog.DiscardHandler)}
}

// WithLogger sets the logger used for skipped commands and degraded
// actions. A nil logger keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Stats counts what a decode pass did.
type Stats struct {
	Commands       int // commands visited
	Pushes         int // operands pushed
	Ignored        int // unknown, reserved or mode-ignored opcodes
	Mismatched     int // push commands with the wrong payload variant
	Lines          int // line segments stroked
	Quads          int // rectangles filled
	Texts          int // strings drawn
	Measured       int // text sizes reported
	LayoutFailures int // strings skipped because no layout could be built
	CameraErrors   int // out-of-range camera indices
	CameraUpdates  int // camera positions written
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Commands += o.Commands
	s.Pushes += o.Pushes
	s.Ignored += o.Ignored
	s.Mismatched += o.Mismatched
	s.Lines += o.Lines
	s.Quads += o.Quads
	s.Texts += o.Texts
	s.Measured += o.Measured
	s.LayoutFailures += o.LayoutFailures
	s.CameraErrors += o.CameraErrors
	s.CameraUpdates += o.CameraUpdates
}
