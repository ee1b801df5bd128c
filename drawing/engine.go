// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawing

import (
	"fmt"
	"math"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/tessellate"
	"github.com/gogpu/ink/render"
)

const (
	// Epsilon is the minimum Manhattan distance, in pixels, between two
	// consecutive accepted points of a stroke.
	Epsilon = 5.0

	// MaxPoints is the largest number of points an in-progress stroke may
	// hold. Longer strokes are split.
	MaxPoints = 2048

	// DefaultStrokeWidth is the stroke width used when none is configured.
	DefaultStrokeWidth = 8.0

	// eraseRadiusFactor scales the stroke width into the erase hit radius.
	eraseRadiusFactor = 10
)

// Engine owns the completed strokes of a drawing and the stroke currently
// being drawn.
type Engine struct {
	strokes []*Stroke
	current []ink.Point

	width       float64
	color       ink.RGBA
	premultiply bool
	tolerance   float64
	alignment   int
	height      uint32

	dirty bool
}

// NewEngine creates an empty drawing.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		width:       o.width,
		color:       o.color,
		premultiply: o.premultiply,
		tolerance:   o.tolerance,
		alignment:   o.alignment,
		height:      o.height,
		dirty:       true,
	}
}

// AddPoint appends a surface-space position (top-left origin) to the
// in-progress stroke. The point is dropped when it is within Epsilon
// (Manhattan) of the previous accepted point. A stroke that grows past
// MaxPoints, or whose mesh could outgrow tessellate.MaxVertices with the new
// point, is finalized and drawing continues in a fresh stroke.
func (e *Engine) AddPoint(x, y float64) {
	p, ok := ink.FromSurface(x, y, e.height)
	if !ok {
		ink.Logger().Debug("drawing: ignoring non-finite point", "x", x, "y", y)
		return
	}
	if n := len(e.current); n > 0 && e.current[n-1].Manhattan(p) <= Epsilon {
		return
	}

	if n := len(e.current); n > 0 && !e.fits(n+1, e.width) {
		ink.Logger().Debug("drawing: splitting wide stroke", "points", n, "width", e.width)
		e.FinalizeCurrentStroke()
	}

	e.current = append(e.current, p)
	e.dirty = true

	if len(e.current) > MaxPoints {
		ink.Logger().Debug("drawing: splitting long stroke", "points", len(e.current))
		e.FinalizeCurrentStroke()
	}
}

// FinalizeCurrentStroke turns the in-progress points into a completed
// stroke. It does nothing when no stroke is in progress.
func (e *Engine) FinalizeCurrentStroke() {
	if len(e.current) == 0 {
		return
	}
	points := e.current
	e.current = nil

	path := tessellate.Polyline(points)
	e.strokes = append(e.strokes, &Stroke{
		points: points,
		path:   path,
		geom:   e.tessellate(path, e.color),
		width:  e.width,
		color:  e.color,
	})
	e.dirty = true
}

// Undo aborts the in-progress stroke if there is one, and otherwise removes
// the most recent completed stroke.
func (e *Engine) Undo() {
	switch {
	case len(e.current) > 0:
		e.current = nil
	case len(e.strokes) > 0:
		e.strokes[len(e.strokes)-1] = nil
		e.strokes = e.strokes[:len(e.strokes)-1]
	default:
		return
	}
	e.dirty = true
}

// Clear removes every stroke, including the one in progress.
func (e *Engine) Clear() {
	if len(e.current) == 0 && len(e.strokes) == 0 {
		return
	}
	e.current = nil
	e.strokes = nil
	e.dirty = true
}

// Erase removes the oldest completed stroke with an endpoint within ten
// stroke widths of the surface-space position (x, y). It reports whether a
// stroke was removed. At most one stroke is removed per call.
func (e *Engine) Erase(x, y float64) bool {
	p, ok := ink.FromSurface(x, y, e.height)
	if !ok {
		return false
	}
	r := float32(e.width * eraseRadiusFactor)
	r2 := r * r

	for i, s := range e.strokes {
		if s.hit(p, r2) {
			e.strokes = append(e.strokes[:i], e.strokes[i+1:]...)
			e.dirty = true
			ink.Logger().Debug("drawing: erased stroke", "index", i, "remaining", len(e.strokes))
			return true
		}
	}
	return false
}

// SetHeight sets the surface height used to flip input positions.
func (e *Engine) SetHeight(h uint32) { e.height = h }

// Height returns the surface height.
func (e *Engine) Height() uint32 { return e.height }

// SetStrokeWidth sets the width of strokes drawn from now on.
// Non-positive and infinite widths are ignored. An in-progress stroke too
// long to tessellate at the new width is finalized at the old one first.
func (e *Engine) SetStrokeWidth(w float64) {
	if !(w > 0) || math.IsInf(w, 1) {
		return
	}
	if n := len(e.current); n > 0 && !e.fits(n, w) {
		e.FinalizeCurrentStroke()
	}
	e.width = w
}

// fits reports whether an n-point stroke of the given width is guaranteed to
// tessellate within tessellate.MaxVertices.
func (e *Engine) fits(n int, width float64) bool {
	t := tessellate.NewTessellator(tessellate.RoundStyle(width))
	t.SetTolerance(e.tolerance)
	return t.VertexBound(n) <= tessellate.MaxVertices
}

// StrokeWidth returns the current stroke width.
func (e *Engine) StrokeWidth() float64 { return e.width }

// SetStrokeColor sets the color of strokes drawn from now on.
func (e *Engine) SetStrokeColor(c ink.RGBA) { e.color = c }

// StrokeColor returns the current stroke color.
func (e *Engine) StrokeColor() ink.RGBA { return e.color }

// SetPremultiply switches vertex colors between straight and premultiplied
// alpha. Cached geometries are recolored when the setting changes.
func (e *Engine) SetPremultiply(enabled bool) {
	if e.premultiply == enabled {
		return
	}
	e.premultiply = enabled
	for _, s := range e.strokes {
		s.geom = s.geom.Recolor(e.vertexColor(s.color))
	}
	e.dirty = true
}

// Premultiply reports whether vertex colors are premultiplied.
func (e *Engine) Premultiply() bool { return e.premultiply }

// Strokes returns the completed strokes, oldest first.
// The returned slice must not be modified.
func (e *Engine) Strokes() []*Stroke { return e.strokes }

// CurrentPoints returns the points of the in-progress stroke.
// The returned slice must not be modified.
func (e *Engine) CurrentPoints() []ink.Point { return e.current }

// Geometries returns the meshes to draw: completed strokes in creation order
// followed by the in-progress stroke, if any.
func (e *Engine) Geometries() []*render.Geometry {
	geoms := make([]*render.Geometry, 0, len(e.strokes)+1)
	for _, s := range e.strokes {
		geoms = append(geoms, s.geom)
	}
	if len(e.current) > 0 {
		geoms = append(geoms, e.tessellate(tessellate.Polyline(e.current), e.color))
	}
	return geoms
}

// Dirty reports whether the drawing changed since the last MarkClean.
func (e *Engine) Dirty() bool { return e.dirty }

// MarkClean records that the current drawing has been rendered.
func (e *Engine) MarkClean() { e.dirty = false }

// MarkDirty forces the next frame to render, for example after the surface
// lost its contents.
func (e *Engine) MarkDirty() { e.dirty = true }

func (e *Engine) vertexColor(c ink.RGBA) ink.RGBA {
	if e.premultiply {
		return c.Premultiply()
	}
	return c
}

// tessellate panics if the mesh does not fit 16-bit indices.
func (e *Engine) tessellate(path *tessellate.Path, c ink.RGBA) *render.Geometry {
	t := tessellate.NewTessellator(tessellate.RoundStyle(e.width))
	t.SetTolerance(e.tolerance)
	mesh, err := t.Tessellate(path)
	if err != nil {
		panic(fmt.Sprintf("drawing: tessellate %d points: %v", path.Len(), err))
	}
	return render.NewGeometry(mesh, e.vertexColor(c), e.alignment)
}
