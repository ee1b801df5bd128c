// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tessellate

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/ink"
)

// ErrTooManyVertices is returned when a mesh would need more vertices than a
// 16-bit index can address.
var ErrTooManyVertices = errors.New("tessellate: too many vertices for 16-bit indices")

// MaxVertices is the number of vertices addressable by a 16-bit index.
const MaxVertices = math.MaxUint16 + 1

// DefaultTolerance is the maximum distance between an arc and its polygonal
// approximation.
const DefaultTolerance = 0.1

// degenerateLength is the squared length below which a segment is treated as
// zero-length.
const degenerateLength = 1e-12

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Style defines the stroke appearance.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// RoundStyle returns a style with round caps and joins, used for freehand
// strokes.
func RoundStyle(width float64) Style {
	return Style{
		Width:      width,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: 4.0,
	}
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Positions []ink.Point
	Indices   []uint16
}

// IsEmpty reports whether the mesh has no triangles.
func (m Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Tessellator converts paths into triangle meshes for a stroke style.
type Tessellator struct {
	style     Style
	tolerance float64

	mesh Mesh
	err  error
}

// NewTessellator creates a tessellator for the given style.
func NewTessellator(style Style) *Tessellator {
	return &Tessellator{
		style:     style,
		tolerance: DefaultTolerance,
	}
}

// SetTolerance sets the arc approximation tolerance.
// Non-positive values are ignored.
func (t *Tessellator) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		t.tolerance = tolerance
	}
}

// VertexBound returns an upper bound on the number of vertices Tessellate
// produces for one open polyline of n points.
func (t *Tessellator) VertexBound(n int) int {
	if n <= 0 || !(t.style.Width > 0) {
		return 0
	}
	// Joins turn by at most pi, and a round cap is a half turn. One spare
	// segment absorbs rounding in the offset length.
	arc := arcSegments(0.5*t.style.Width, math.Pi, t.tolerance) + 3

	var capCost, joinCost int
	switch t.style.Cap {
	case LineCapRound:
		capCost = arc
	case LineCapSquare:
		capCost = 4
	}
	switch t.style.Join {
	case LineJoinRound:
		joinCost = arc
	case LineJoinMiter:
		joinCost = 6
	default:
		joinCost = 3
	}
	return 2*capCost + 4*(n-1) + joinCost*max(n-2, 0)
}

// Tessellate strokes every sub-path of p and returns the combined mesh.
// Zero-length segments are skipped. A path with no sub-paths, or a
// non-positive width, yields an empty mesh.
func (t *Tessellator) Tessellate(p *Path) (Mesh, error) {
	t.mesh = Mesh{}
	t.err = nil

	if p.IsEmpty() || !(t.style.Width > 0) {
		return Mesh{}, nil
	}

	for _, sub := range p.subPaths() {
		t.strokeSubPath(sub)
		if t.err != nil {
			return Mesh{}, t.err
		}
	}

	m := t.mesh
	t.mesh = Mesh{}
	return m, nil
}

func (t *Tessellator) strokeSubPath(points []ink.Point) {
	pts := dedupe(points)
	hw := 0.5 * t.style.Width

	if len(pts) == 1 {
		t.dot(pts[0], hw)
		return
	}

	var prevDir vec
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dir := b.sub(a).normalize()
		norm := dir.perp().scale(hw)

		if i == 1 {
			t.cap(a, dir.neg(), norm)
		} else {
			t.join(a, prevDir, dir, hw)
		}

		t.quad(a.add(norm), a.sub(norm), b.add(norm), b.sub(norm))
		prevDir = dir
	}

	last := pts[len(pts)-1]
	t.cap(last, prevDir, prevDir.perp().scale(hw).neg())
}

// dot draws an isolated point.
func (t *Tessellator) dot(center vec, hw float64) {
	switch t.style.Cap {
	case LineCapRound:
		// Two caps back to back, as a zero-length segment would get.
		t.fan(center, vec{0, hw}, math.Pi)
		t.fan(center, vec{0, -hw}, math.Pi)
	case LineCapSquare:
		t.quad(center.add(vec{-hw, -hw}), center.add(vec{hw, -hw}),
			center.add(vec{-hw, hw}), center.add(vec{hw, hw}))
	}
}

// cap closes a stroke end at center. outward points away from the stroke
// and from is the offset on the side where the cap starts; the cap sweeps
// counter-clockwise from from to -from.
func (t *Tessellator) cap(center, outward, from vec) {
	switch t.style.Cap {
	case LineCapRound:
		t.fan(center, from, math.Pi)
	case LineCapSquare:
		ext := outward.scale(from.length())
		t.quad(center.add(from), center.sub(from), center.add(from).add(ext), center.sub(from).add(ext))
	}
}

// join fills the outer gap between two segments meeting at p.
func (t *Tessellator) join(p, d0, d1 vec, hw float64) {
	cross := d0.cross(d1)
	dot := d0.dot(d1)
	angle := math.Atan2(cross, dot)
	if math.Abs(angle) < 1e-6 {
		return
	}

	// The outer side is on the right of a left turn and on the left of a
	// right turn. Rotating v0 by angle lands on v1.
	v0 := d0.perp().scale(hw)
	if angle > 0 {
		v0 = v0.neg()
	}
	v1 := v0.rotate(angle)

	switch t.style.Join {
	case LineJoinRound:
		t.fan(p, v0, angle)
	case LineJoinMiter:
		half := math.Cos(angle / 2)
		if half > 0 && 1/half <= t.style.MiterLimit {
			tip := p.add(v0.add(v1).normalize().scale(hw / half))
			t.triangle(p, p.add(v0), tip)
			t.triangle(p, tip, p.add(v1))
			return
		}
		t.triangle(p, p.add(v0), p.add(v1))
	default:
		t.triangle(p, p.add(v0), p.add(v1))
	}
}

// fan emits a triangle fan around center, starting at center+from and
// sweeping by angle radians (counter-clockwise when positive).
func (t *Tessellator) fan(center, from vec, angle float64) {
	n := arcSegments(from.length(), math.Abs(angle), t.tolerance)
	base, ok := t.reserve(n + 2)
	if !ok {
		return
	}

	t.push(center)
	step := angle / float64(n)
	for i := 0; i <= n; i++ {
		t.push(center.add(from.rotate(step * float64(i))))
	}
	for i := 0; i < n; i++ {
		t.mesh.Indices = append(t.mesh.Indices, base, base+uint16(i)+1, base+uint16(i)+2)
	}
}

// quad emits two triangles covering a0, a1, b0, b1, where a0-b0 and a1-b1
// are opposite edges.
func (t *Tessellator) quad(a0, a1, b0, b1 vec) {
	base, ok := t.reserve(4)
	if !ok {
		return
	}
	t.push(a0)
	t.push(a1)
	t.push(b0)
	t.push(b1)
	t.mesh.Indices = append(t.mesh.Indices,
		base, base+1, base+2,
		base+1, base+3, base+2,
	)
}

func (t *Tessellator) triangle(a, b, c vec) {
	base, ok := t.reserve(3)
	if !ok {
		return
	}
	t.push(a)
	t.push(b)
	t.push(c)
	t.mesh.Indices = append(t.mesh.Indices, base, base+1, base+2)
}

// reserve checks that n more vertices fit and returns the first new index.
func (t *Tessellator) reserve(n int) (uint16, bool) {
	if t.err != nil {
		return 0, false
	}
	count := len(t.mesh.Positions)
	if count+n > MaxVertices {
		t.err = fmt.Errorf("%w: need %d", ErrTooManyVertices, count+n)
		return 0, false
	}
	return uint16(count), true
}

func (t *Tessellator) push(v vec) {
	t.mesh.Positions = append(t.mesh.Positions, ink.Point{X: float32(v.x), Y: float32(v.y)})
}

// maxArcSegments caps the chords of a single arc so that one dot or join
// stays far below MaxVertices at any width.
const maxArcSegments = 128

// arcSegments returns how many chords approximate an arc of the given radius
// and sweep within tolerance, at most maxArcSegments.
func arcSegments(radius, sweep, tolerance float64) int {
	step := math.Pi / 2
	if tolerance < radius {
		step = math.Min(step, 2*math.Acos(1-tolerance/radius))
	}
	n := math.Ceil(sweep / step)
	switch {
	case n < 1:
		return 1
	case n > maxArcSegments:
		return maxArcSegments
	}
	return int(n)
}

// dedupe converts points to vectors, dropping consecutive duplicates.
func dedupe(points []ink.Point) []vec {
	out := make([]vec, 0, len(points))
	for _, p := range points {
		v := vec{float64(p.X), float64(p.Y)}
		if len(out) > 0 && v.sub(out[len(out)-1]).lengthSquared() < degenerateLength {
			continue
		}
		out = append(out, v)
	}
	return out
}
