// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gesture coalesces raw pointing-device events into one decision
// per input frame.
//
// Input protocols deliver bursts of small events (motion, button edges,
// enter and leave) terminated by a frame event. A Sequence accumulates one
// burst and emits it as a Snapshot exactly once, when the frame event
// arrives. Edges that happen between frames set flags and are harvested at
// the boundary, so none are lost.
//
// An Aggregator keeps the persistent state of one device (last position,
// held buttons) and turns each Snapshot into an Intent: where to draw,
// where to erase, and whether the current stroke ends.
//
// Each device gets its own Aggregator. The mouse aggregator owns a cursor
// handle; the stylus aggregator looks cursors up per tool in a Tools map,
// since tools come and go while the overlay runs.
//
//	mouse, err := gesture.NewBuilder(gesture.Mouse).WithCursor(cursor).Build()
//	for ev := range events {
//	    if intent, ok := mouse.Ingest(ev); ok {
//	        apply(intent)
//	    }
//	}
package gesture
