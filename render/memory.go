// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a draw references vertices or indices
// outside the written buffer contents.
var ErrIndexOutOfRange = errors.New("render: index out of range")

// DrawCall is one recorded indexed draw.
type DrawCall struct {
	IndexCount uint32
	FirstIndex uint32
	BaseVertex int32
}

// memoryBuffers emulates a target's vertex and index buffers in memory.
// Slices grow on demand up to capacity; contents persist across frames the
// way GPU buffers do.
type memoryBuffers struct {
	vertices  []byte
	indices   []byte
	vertexCap uint64
	indexCap  uint64
}

func newMemoryBuffers(vertexCap, indexCap uint64) memoryBuffers {
	if vertexCap == 0 {
		vertexCap = DefaultBufferSize
	}
	if indexCap == 0 {
		indexCap = DefaultBufferSize
	}
	return memoryBuffers{vertexCap: vertexCap, indexCap: indexCap}
}

func (m *memoryBuffers) writeVertices(offset uint64, data []byte) error {
	return writeAt(&m.vertices, m.vertexCap, offset, data)
}

func (m *memoryBuffers) writeIndices(offset uint64, data []byte) error {
	return writeAt(&m.indices, m.indexCap, offset, data)
}

func writeAt(buf *[]byte, capacity, offset uint64, data []byte) error {
	end := offset + uint64(len(data))
	if end > capacity {
		return fmt.Errorf("%w: write of %d bytes at %d, capacity %d",
			ErrCapacityExceeded, len(data), offset, capacity)
	}
	if uint64(len(*buf)) < end {
		*buf = append(*buf, make([]byte, end-uint64(len(*buf)))...)
	}
	copy((*buf)[offset:end], data)
	return nil
}

// triangles resolves a draw call against the buffer contents.
func (m *memoryBuffers) triangles(d DrawCall) ([][3]Vertex, error) {
	first := uint64(d.FirstIndex) * IndexSize
	last := first + uint64(d.IndexCount)*IndexSize
	if last > uint64(len(m.indices)) {
		return nil, fmt.Errorf("%w: indices [%d, %d) beyond %d written",
			ErrIndexOutOfRange, d.FirstIndex, d.FirstIndex+d.IndexCount, len(m.indices)/IndexSize)
	}
	indices := DecodeIndices(m.indices[first:last])

	nverts := int64(len(m.vertices) / VertexSize)
	tris := make([][3]Vertex, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		var tri [3]Vertex
		for k := range tri {
			v := int64(indices[i+k]) + int64(d.BaseVertex)
			if v < 0 || v >= nverts {
				return nil, fmt.Errorf("%w: vertex %d, %d written", ErrIndexOutOfRange, v, nverts)
			}
			off := v * VertexSize
			tri[k] = DecodeVertices(m.vertices[off : off+VertexSize])[0]
		}
		tris = append(tris, tri)
	}
	return tris, nil
}
