// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import "errors"

// ErrMissingCursor is returned when a mouse aggregator is built without a
// cursor.
var ErrMissingCursor = errors.New("gesture: mouse aggregator needs a cursor")

// Builder collects the handles an Aggregator needs. An Aggregator can only
// be obtained from Build, so it never exists half-connected.
type Builder struct {
	kind   DeviceKind
	cursor Cursor
	tools  *Tools
}

// NewBuilder starts building an aggregator for a device kind.
func NewBuilder(kind DeviceKind) *Builder {
	return &Builder{kind: kind}
}

// WithCursor sets the mouse cursor handle.
func (b *Builder) WithCursor(c Cursor) *Builder {
	b.cursor = c
	return b
}

// WithTools sets the tool map of a Tool aggregator. Without it, Build
// creates an empty one.
func (b *Builder) WithTools(t *Tools) *Builder {
	b.tools = t
	return b
}

// Build returns the aggregator.
func (b *Builder) Build() (*Aggregator, error) {
	a := &Aggregator{kind: b.kind}
	switch b.kind {
	case Mouse:
		if b.cursor == nil {
			return nil, ErrMissingCursor
		}
		a.cursor = b.cursor
	case Tool:
		a.tools = b.tools
		if a.tools == nil {
			a.tools = NewTools()
		}
	}
	return a, nil
}
