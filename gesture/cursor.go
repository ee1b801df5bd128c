// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import "sync"

// Shape is a cursor shape.
type Shape uint8

const (
	// ShapeDefault is the compositor's default arrow.
	ShapeDefault Shape = iota
	// ShapeCrosshair is shown while the pointer is over the overlay.
	ShapeCrosshair
)

// String returns the shape name.
func (s Shape) String() string {
	if s == ShapeCrosshair {
		return "crosshair"
	}
	return "default"
}

// Cursor is a handle to a device cursor owned by the display connection.
type Cursor interface {
	// SetShape sets the cursor shape. serial is the serial of the enter
	// or proximity-in event that granted the pointer focus.
	SetShape(serial uint32, shape Shape)
}

// CursorFunc adapts a function to the Cursor interface.
type CursorFunc func(serial uint32, shape Shape)

// SetShape calls f(serial, shape).
func (f CursorFunc) SetShape(serial uint32, shape Shape) {
	f(serial, shape)
}

// Tools maps tablet tools to their cursor handles.
//
// Tools only looks cursors up; it never creates or destroys them. The
// display connection adds a tool when it appears and removes it when it is
// gone. Tools is safe for concurrent use.
type Tools struct {
	mu      sync.RWMutex
	cursors map[ToolID]Cursor
}

// NewTools creates an empty tool map.
func NewTools() *Tools {
	return &Tools{cursors: make(map[ToolID]Cursor)}
}

// AddTool registers the cursor of a tool, replacing any previous one.
func (t *Tools) AddTool(id ToolID, c Cursor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursors[id] = c
}

// RemoveTool forgets a tool.
func (t *Tools) RemoveTool(id ToolID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.cursors, id)
}

// Cursor returns the cursor of a tool.
func (t *Tools) Cursor(id ToolID) (Cursor, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.cursors[id]
	return c, ok
}

// Len returns the number of registered tools.
func (t *Tools) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cursors)
}
