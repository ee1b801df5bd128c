// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tessellate

import "math"

// vec is the float64 working type used while tessellating. Results are
// narrowed to ink.Point only when vertices are emitted.
type vec struct {
	x, y float64
}

func (v vec) add(w vec) vec { return vec{v.x + w.x, v.y + w.y} }
func (v vec) sub(w vec) vec { return vec{v.x - w.x, v.y - w.y} }
func (v vec) scale(s float64) vec { return vec{v.x * s, v.y * s} }
func (v vec) neg() vec { return vec{-v.x, -v.y} }
func (v vec) dot(w vec) float64 { return v.x*w.x + v.y*w.y }
func (v vec) cross(w vec) float64 { return v.x*w.y - v.y*w.x }
func (v vec) lengthSquared() float64 { return v.x*v.x + v.y*v.y }
func (v vec) length() float64 { return math.Sqrt(v.lengthSquared()) }

// perp returns the vector rotated 90 degrees counter-clockwise.
func (v vec) perp() vec { return vec{-v.y, v.x} }

func (v vec) normalize() vec {
	l := v.length()
	if l < 1e-10 {
		return vec{}
	}
	return vec{v.x / l, v.y / l}
}

func (v vec) rotate(angle float64) vec {
	sin, cos := math.Sincos(angle)
	return vec{v.x*cos - v.y*sin, v.x*sin + v.y*cos}
}
