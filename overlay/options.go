// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package overlay

import (
	"github.com/gogpu/ink/command"
	"github.com/gogpu/ink/gesture"
	"github.com/gogpu/ink/render"
)

// Option configures a Session during creation.
type Option func(*options)

type options struct {
	cursor  gesture.Cursor
	batcher *render.Batcher
	queue   *command.Queue
	tools   *gesture.Tools
}

// WithMouseCursor enables pointer input. The cursor is switched to a
// crosshair when the pointer enters the surface.
func WithMouseCursor(c gesture.Cursor) Option {
	return func(o *options) {
		o.cursor = c
	}
}

// WithBatcher sets the batcher frames are rendered with.
func WithBatcher(b *render.Batcher) Option {
	return func(o *options) {
		o.batcher = b
	}
}

// WithQueue sets the command queue drained by Tick. By default the
// Session creates its own.
func WithQueue(q *command.Queue) Option {
	return func(o *options) {
		o.queue = q
	}
}

// WithTools sets the tablet tool cursor map.
func WithTools(t *gesture.Tools) Option {
	return func(o *options) {
		o.tools = t
	}
}
