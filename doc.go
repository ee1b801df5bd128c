// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ink is the freehand-annotation engine of a screen-overlay drawing
// tool.
//
// # Overview
//
// ink turns pointing-device events (mouse or stylus) into persistent vector
// strokes, tessellates them into triangle meshes, and packs the meshes into
// the fixed-size vertex and index buffers of a GPU frame. Strokes can be
// undone, cleared, and erased by pointing at them.
//
// # Pipeline
//
//	gesture.Event -> gesture.Aggregator -> gesture.Intent
//	              -> drawing.Engine (decimate, chunk, tessellate)
//	              -> render.Batcher -> render.Target (HAL, raster, recorder)
//
// overlay.Session wires the stages together and is driven by a single loop:
// input events, frame signals, and commands received over the control socket
// (package command).
//
// # Coordinate System
//
// Drawing space has its origin at the bottom-left of the overlay surface.
// Input events use top-left origin and are flipped at ingestion with
// FromSurface.
//
// # Logging
//
// ink is silent by default. Call SetLogger to receive structured logs from
// every sub-package.
package ink

// Version is the current version of the module.
const Version = "0.1.0"
