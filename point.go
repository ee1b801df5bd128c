// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ink

import "math"

// Point is a position (or vector) in drawing space.
//
// Drawing space has its origin at the bottom-left of the surface, which is
// what the vertex shader expects. Input devices report top-left origin
// coordinates; use FromSurface to convert.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// FromSurface converts a surface-space position (top-left origin, as
// delivered by pointer and tablet events) into drawing space for a surface
// of the given height. It reports false if the resulting point is not finite.
func FromSurface(x, y float64, height uint32) (Point, bool) {
	p := Point{X: float32(x), Y: float32(height) - float32(y)}
	return p, p.IsFinite()
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(float64(p.X)) && !math.IsInf(float64(p.X), 0) &&
		!math.IsNaN(float64(p.Y)) && !math.IsInf(float64(p.Y), 0)
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return float32(math.Sqrt(float64(p.X*p.X + p.Y*p.Y)))
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float32 {
	return p.X*p.X + p.Y*p.Y
}

// DistanceSquared returns the squared Euclidean distance between two points.
func (p Point) DistanceSquared(q Point) float32 {
	return p.Sub(q).LengthSquared()
}

// Manhattan returns the taxicab distance |dx| + |dy| between two points.
func (p Point) Manhattan(q Point) float32 {
	return float32(math.Abs(float64(p.X-q.X)) + math.Abs(float64(p.Y-q.Y)))
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}
