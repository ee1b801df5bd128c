// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package drawing holds the strokes of a freehand drawing.
//
// An Engine accepts pointer positions one at a time, decimates them, and
// groups them into strokes. Completed strokes are tessellated once and
// cached as render.Geometry; the stroke being drawn is tessellated on
// demand. Strokes can be undone, cleared, and erased by position.
//
// Example:
//
//	e := drawing.NewEngine(drawing.WithHeight(600), drawing.WithStrokeWidth(4))
//	e.AddPoint(10, 10)
//	e.AddPoint(40, 12)
//	e.FinalizeCurrentStroke()
//	err := batcher.Render(e.Geometries())
//
// An Engine is not safe for concurrent use.
package drawing
