// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tessellate converts stroked polylines into indexed triangle meshes.
//
// A stroke is built from three kinds of pieces:
//   - one quad per non-degenerate segment, offset by width/2 on each side
//   - a join at every interior vertex, filling the gap on the outer side
//   - a cap at both ends of every sub-path
//
// Round joins and caps are emitted as triangle fans. The number of fan
// segments is chosen so the chord error stays below the tolerance.
//
// A sub-path whose points all coincide produces a filled dot when the cap is
// round (or square), which is how single-point strokes are drawn.
//
// # Usage
//
//	var b tessellate.Builder
//	b.Begin(ink.Pt(0, 0))
//	b.LineTo(ink.Pt(100, 0))
//	b.LineTo(ink.Pt(100, 100))
//	b.End()
//
//	t := tessellate.NewTessellator(tessellate.Style{
//	    Width: 8,
//	    Cap:   tessellate.LineCapRound,
//	    Join:  tessellate.LineJoinRound,
//	})
//	mesh, err := t.Tessellate(b.Build())
//
// Meshes use 16-bit indices. Tessellate fails with ErrTooManyVertices when a
// path would need more vertices than a uint16 can address.
package tessellate
