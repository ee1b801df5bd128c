// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package drawing

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/tessellate"
	"github.com/gogpu/ink/render"
)

// Option configures an Engine during creation.
type Option func(*options)

type options struct {
	width       float64
	color       ink.RGBA
	premultiply bool
	tolerance   float64
	alignment   int
	height      uint32
}

func defaultOptions() options {
	return options{
		width:     DefaultStrokeWidth,
		color:     ink.Red,
		tolerance: tessellate.DefaultTolerance,
		alignment: render.CopyBufferAlignment,
	}
}

// WithStrokeWidth sets the initial stroke width in pixels.
// Non-positive widths are ignored.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.width = w
		}
	}
}

// WithStrokeColor sets the initial stroke color.
func WithStrokeColor(c ink.RGBA) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithPremultiply makes vertex colors premultiplied by alpha, for surfaces
// that composite with premultiplied alpha.
func WithPremultiply(enabled bool) Option {
	return func(o *options) {
		o.premultiply = enabled
	}
}

// WithTolerance sets the arc approximation tolerance used for round caps
// and joins.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithAlignment sets the index padding alignment of produced geometries.
func WithAlignment(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.alignment = n
		}
	}
}

// WithHeight sets the surface height used to flip input positions into
// drawing space.
func WithHeight(h uint32) Option {
	return func(o *options) {
		o.height = h
	}
}
