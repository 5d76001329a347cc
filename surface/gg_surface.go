// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
)

// GGSurface draws through a gg.Context using gg's software rasterizer.
//
// Example:
//
//	s, err := surface.NewGGSurface(surface.Options{Width: 800, Height: 600})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//	s.FillRect(surface.Rect{W: 800, H: 600}, 4, color.White)
//	_ = s.SavePNG("frame.png")
type GGSurface struct {
	dc   *gg.Context
	opts Options
	face ggtext.Face
	src  *ggtext.FontSource
}

// NewGGSurface creates a software surface.
func NewGGSurface(opts Options) (*GGSurface, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	src, err := ggtext.NewFontSource(opts.Font.Data())
	if err != nil {
		return nil, fmt.Errorf("surface: font source: %w", err)
	}
	return &GGSurface{
		dc:   gg.NewContext(opts.Width, opts.Height),
		opts: opts,
		face: src.Face(opts.Measurer.Size()),
		src:  src,
	}, nil
}

// Context returns the underlying gg context.
func (s *GGSurface) Context() *gg.Context { return s.dc }

// Width implements Surface.
func (s *GGSurface) Width() int { return s.dc.Width() }

// Height implements Surface.
func (s *GGSurface) Height() int { return s.dc.Height() }

// Clip implements Surface.
func (s *GGSurface) Clip(r Rect, radius float64) {
	if radius > 0 {
		s.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, radius)
		s.dc.Clip()
		return
	}
	s.dc.ClipRect(r.X, r.Y, r.W, r.H)
}

// ResetClip implements Surface.
func (s *GGSurface) ResetClip() { s.dc.ResetClip() }

// FillRect implements Surface.
func (s *GGSurface) FillRect(r Rect, radius float64, c color.Color) {
	if r.W == 0 || r.H == 0 {
		return
	}
	s.dc.SetColor(c)
	if radius > 0 {
		s.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, radius)
	} else {
		s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	}
	if err := s.dc.Fill(); err != nil {
		gg.Logger().Warn("surface: fill failed", "err", err)
	}
}

// StrokeLine implements Surface.
func (s *GGSurface) StrokeLine(p1, p2 Point, width float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	if err := s.dc.Stroke(); err != nil {
		gg.Logger().Warn("surface: stroke failed", "err", err)
	}
}

// NewTextLayout implements Surface.
func (s *GGSurface) NewTextLayout(str string, c color.Color) (*TextLayout, error) {
	return BuildLayout(s.opts.Measurer, str, c)
}

// DrawText implements Surface.
func (s *GGSurface) DrawText(l *TextLayout, at Point) {
	if l == nil || l.Text == "" {
		return
	}
	s.dc.SetFont(s.face)
	s.dc.SetColor(l.Color)
	s.dc.DrawString(l.Text, at.X, at.Y+l.Extents.Ascent)
}

// Resize implements Resizer. It clears the surface contents.
func (s *GGSurface) Resize(width, height int) error {
	return s.dc.Resize(width, height)
}

// Image returns the rendered pixels.
func (s *GGSurface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the rendered pixels to path.
func (s *GGSurface) SavePNG(path string) error { return s.dc.SavePNG(path) }

// Close releases the context and font source.
func (s *GGSurface) Close() error {
	err := s.dc.Close()
	if cerr := s.src.Close(); err == nil {
		err = cerr
	}
	return err
}

func init() {
	Register("gg", 10, func(opts Options) (Surface, error) {
		return NewGGSurface(opts)
	}, nil)
}
