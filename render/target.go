// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "errors"

// DefaultBufferSize is the default size, in bytes, of each of a target's
// vertex and index buffers.
const DefaultBufferSize = 0x1000000

var (
	// ErrCapacityExceeded is returned when a frame's geometry does not fit
	// in the target's buffers.
	ErrCapacityExceeded = errors.New("render: buffer capacity exceeded")

	// ErrPassEnded is returned when a Pass is used after End.
	ErrPassEnded = errors.New("render: pass already ended")

	// ErrInvalidSize is returned when resizing a target to zero width or
	// height.
	ErrInvalidSize = errors.New("render: invalid surface size")
)

// Target is a destination for batched stroke geometry.
//
// A Target owns one vertex buffer and one index buffer of fixed size. Each
// frame is recorded through a Pass obtained from Begin.
type Target interface {
	// VertexCapacity returns the vertex buffer size in bytes.
	VertexCapacity() uint64

	// IndexCapacity returns the index buffer size in bytes.
	IndexCapacity() uint64

	// Begin starts a frame. The frame is cleared to transparent.
	Begin() (Pass, error)
}

// Pass records one frame.
type Pass interface {
	// WriteVertices copies data into the vertex buffer at a byte offset.
	WriteVertices(offset uint64, data []byte) error

	// WriteIndices copies data into the index buffer at a byte offset.
	WriteIndices(offset uint64, data []byte) error

	// DrawIndexed draws indexCount indices starting at firstIndex, adding
	// baseVertex to every index.
	DrawIndexed(indexCount, firstIndex uint32, baseVertex int32) error

	// End finishes the frame and submits it.
	End() error
}

// Resizer is implemented by targets that own their frame storage and must
// follow the surface size.
type Resizer interface {
	Resize(width, height uint32) error
}
