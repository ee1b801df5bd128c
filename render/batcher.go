// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/gogpu/ink"
)

// Stats describes the last frame rendered by a Batcher.
type Stats struct {
	Draws       int
	Vertices    uint32
	Indices     uint32 // written, including padding
	VertexBytes uint64
	IndexBytes  uint64
}

// Batcher packs geometries into a Target's buffers, one draw per geometry.
//
// Batcher is not safe for concurrent use.
type Batcher struct {
	target Target
	stats  Stats
}

// NewBatcher creates a batcher drawing into target.
func NewBatcher(target Target) *Batcher {
	return &Batcher{target: target}
}

// Target returns the batcher's target.
func (b *Batcher) Target() Target {
	return b.target
}

// Stats returns statistics for the last call to Render.
func (b *Batcher) Stats() Stats {
	return b.stats
}

// Render draws geometries in order in a single frame. Empty geometries are
// skipped; an empty list still produces a cleared frame.
//
// If a geometry does not fit, Render stops before writing it, ends the
// frame with what was already recorded, and returns an error wrapping
// ErrCapacityExceeded.
func (b *Batcher) Render(geometries []*Geometry) error {
	b.stats = Stats{}

	pass, err := b.target.Begin()
	if err != nil {
		return fmt.Errorf("render: begin frame: %w", err)
	}

	drawErr := b.record(pass, geometries)
	endErr := pass.End()
	if drawErr != nil {
		return drawErr
	}
	if endErr != nil {
		return fmt.Errorf("render: end frame: %w", endErr)
	}

	ink.Logger().Debug("render: frame",
		"draws", b.stats.Draws,
		"vertices", b.stats.Vertices,
		"indices", b.stats.Indices)
	return nil
}

func (b *Batcher) record(pass Pass, geometries []*Geometry) error {
	vertexCap := b.target.VertexCapacity()
	indexCap := b.target.IndexCapacity()

	var vertexOffset, indexOffset uint32
	for i, g := range geometries {
		if g.IsEmpty() {
			continue
		}

		vb := uint64(vertexOffset) * VertexSize
		ib := uint64(indexOffset) * IndexSize
		if vb+uint64(len(g.VertexBytes())) > vertexCap {
			return fmt.Errorf("%w: geometry %d needs %d vertex bytes at offset %d, capacity %d",
				ErrCapacityExceeded, i, len(g.VertexBytes()), vb, vertexCap)
		}
		if ib+uint64(len(g.IndexBytes())) > indexCap {
			return fmt.Errorf("%w: geometry %d needs %d index bytes at offset %d, capacity %d",
				ErrCapacityExceeded, i, len(g.IndexBytes()), ib, indexCap)
		}

		if err := pass.WriteVertices(vb, g.VertexBytes()); err != nil {
			return fmt.Errorf("render: write vertices: %w", err)
		}
		if err := pass.WriteIndices(ib, g.IndexBytes()); err != nil {
			return fmt.Errorf("render: write indices: %w", err)
		}
		if err := pass.DrawIndexed(g.IndexCount(), indexOffset, int32(vertexOffset)); err != nil {
			return fmt.Errorf("render: draw: %w", err)
		}

		vertexOffset += g.VertexCount()
		indexOffset += g.PaddedIndexCount()

		b.stats.Draws++
		b.stats.Vertices = vertexOffset
		b.stats.Indices = indexOffset
		b.stats.VertexBytes = uint64(vertexOffset) * VertexSize
		b.stats.IndexBytes = uint64(indexOffset) * IndexSize
	}
	return nil
}
