// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawing

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/tessellate"
	"github.com/gogpu/ink/render"
)

// Stroke is one completed freehand polyline.
type Stroke struct {
	points []ink.Point
	path   *tessellate.Path
	geom   *render.Geometry

	width float64
	color ink.RGBA
}

// Points returns the accepted input points of the stroke.
// The returned slice must not be modified.
func (s *Stroke) Points() []ink.Point { return s.points }

// Path returns the tessellation source path.
func (s *Stroke) Path() *tessellate.Path { return s.path }

// Geometry returns the cached mesh.
func (s *Stroke) Geometry() *render.Geometry { return s.geom }

// Width returns the width the stroke was drawn with.
func (s *Stroke) Width() float64 { return s.width }

// Color returns the straight-alpha color the stroke was drawn with.
func (s *Stroke) Color() ink.RGBA { return s.color }

// hit reports whether any endpoint of the source path lies strictly inside
// the circle of radius sqrt(r2) around p.
func (s *Stroke) hit(p ink.Point, r2 float32) bool {
	found := false
	s.path.Endpoints(func(q ink.Point) bool {
		if p.DistanceSquared(q) < r2 {
			found = true
			return false
		}
		return true
	})
	return found
}
