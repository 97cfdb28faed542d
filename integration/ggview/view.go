// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggview

import (
	"errors"

	"github.com/gogpu/gg"

	"github.com/gogpu/lattice"
	"github.com/gogpu/lattice/math3"
)

// Common errors returned by View operations.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("ggview: invalid dimensions")
)

// View draws lattice scenes into a gg software context.
//
// View is NOT safe for concurrent use. Create one View per goroutine, or
// use external synchronization.
type View struct {
	dc     *gg.Context
	width  int
	height int

	// Style knobs, settable before rendering.
	Background gg.RGBA
	LineWidth  float64
	DotRadius  float64
}

// New creates a View with a fresh width x height drawing context.
func New(width, height int) (*View, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &View{
		dc:         gg.NewContext(width, height),
		width:      width,
		height:     height,
		Background: gg.RGB(0.07, 0.08, 0.1),
		LineWidth:  2,
		DotRadius:  4,
	}, nil
}

// Context returns the underlying gg drawing context, e.g. to set a font
// face for labels or to draw extra chrome around the scene.
func (v *View) Context() *gg.Context {
	return v.dc
}

// RenderScene draws one frame: background, both segment families, the
// intersection dots, then the digit labels at their projected positions.
// Geometry is projected through the frame's view-projection matrix, so
// the output matches whichever projection mode produced the frame.
func (v *View) RenderScene(s *lattice.Scene, f *lattice.Frame) error {
	v.dc.ClearWithColor(v.Background)

	v.dc.SetLineWidth(v.LineWidth)
	for _, seg := range s.Segments() {
		x1, y1, ok1 := v.project(seg.Start, f)
		x2, y2, ok2 := v.project(seg.End, f)
		if !ok1 || !ok2 {
			continue
		}
		v.dc.SetRGB(seg.Color.R, seg.Color.G, seg.Color.B)
		v.dc.DrawLine(x1, y1, x2, y2)
		if err := v.dc.Stroke(); err != nil {
			return err
		}
	}

	for _, d := range s.Dots {
		x, y, ok := v.project(d.Pos, f)
		if !ok {
			continue
		}
		v.dc.SetRGB(d.Color.R, d.Color.G, d.Color.B)
		v.dc.DrawCircle(x, y, v.DotRadius)
		if err := v.dc.Fill(); err != nil {
			return err
		}
	}

	v.dc.SetRGB(0.92, 0.92, 0.95)
	for _, l := range f.Labels {
		if !l.Visible {
			continue
		}
		v.dc.DrawStringAnchored(l.Text, l.X, l.Y, 0.5, 0.5)
	}

	lattice.Logger().Debug("ggview: frame rendered",
		"segments", len(s.SegmentsA)+len(s.SegmentsB),
		"dots", len(s.Dots))
	return nil
}

// project lifts a ground-plane point into world space and maps it through
// the frame's matrix, rescaling from the frame viewport to the view's own
// pixel dimensions when they differ.
func (v *View) project(p lattice.Point, f *lattice.Frame) (x, y float64, ok bool) {
	world := math3.V3(float32(p.X), 0, float32(p.Y))
	x, y, ok = lattice.Project(world, f.ViewProj, f.Width, f.Height)
	if !ok {
		return 0, 0, false
	}
	if f.Width > 0 && f.Height > 0 {
		x *= float64(v.width) / f.Width
		y *= float64(v.height) / f.Height
	}
	return x, y, true
}

// SavePNG writes the current contents of the view to a PNG file.
func (v *View) SavePNG(path string) error {
	return v.dc.SavePNG(path)
}
