// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"encoding/binary"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/tessellate"
)

// CopyBufferAlignment is the minimum alignment, in index elements, of index
// buffer writes.
const CopyBufferAlignment = 4

// Geometry is the GPU-ready mesh of one stroke.
type Geometry struct {
	vertices   []Vertex
	indices    []uint16 // padded with zeros
	indexCount uint32   // before padding

	vertexBytes []byte
	indexBytes  []byte
}

// NewGeometry builds a Geometry from a tessellated mesh, giving every vertex
// the same color. Indices are padded with zeros to a multiple of alignment;
// alignment values below 1 mean CopyBufferAlignment.
func NewGeometry(mesh tessellate.Mesh, color ink.RGBA, alignment int) *Geometry {
	if alignment < 1 {
		alignment = CopyBufferAlignment
	}

	c := color.Vec4()
	vertices := make([]Vertex, len(mesh.Positions))
	for i, p := range mesh.Positions {
		vertices[i] = Vertex{Position: [2]float32{p.X, p.Y}, Color: c}
	}

	n := len(mesh.Indices)
	padded := n
	if rem := n % alignment; rem != 0 {
		padded += alignment - rem
	}
	indices := make([]uint16, padded)
	copy(indices, mesh.Indices)

	g := &Geometry{
		vertices:   vertices,
		indices:    indices,
		indexCount: uint32(n),
	}
	g.encode()
	return g
}

// Recolor returns a copy of g with every vertex set to color.
// Positions and indices are shared with g.
func (g *Geometry) Recolor(color ink.RGBA) *Geometry {
	c := color.Vec4()
	vertices := make([]Vertex, len(g.vertices))
	for i, v := range g.vertices {
		vertices[i] = Vertex{Position: v.Position, Color: c}
	}
	out := &Geometry{
		vertices:   vertices,
		indices:    g.indices,
		indexCount: g.indexCount,
		indexBytes: g.indexBytes,
	}
	out.encodeVertices()
	return out
}

func (g *Geometry) encode() {
	g.encodeVertices()
	g.indexBytes = make([]byte, 0, len(g.indices)*IndexSize)
	for _, i := range g.indices {
		g.indexBytes = binary.LittleEndian.AppendUint16(g.indexBytes, i)
	}
}

func (g *Geometry) encodeVertices() {
	g.vertexBytes = make([]byte, 0, len(g.vertices)*VertexSize)
	for _, v := range g.vertices {
		g.vertexBytes = appendVertex(g.vertexBytes, v)
	}
}

// Vertices returns the vertex list. The caller must not modify it.
func (g *Geometry) Vertices() []Vertex { return g.vertices }

// Indices returns the padded index list. The caller must not modify it.
func (g *Geometry) Indices() []uint16 { return g.indices }

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() uint32 { return uint32(len(g.vertices)) }

// IndexCount returns the number of indices to draw, before padding.
func (g *Geometry) IndexCount() uint32 { return g.indexCount }

// PaddedIndexCount returns the number of indices written to the index
// buffer, including padding.
func (g *Geometry) PaddedIndexCount() uint32 { return uint32(len(g.indices)) }

// VertexBytes returns the encoded vertex buffer contents.
func (g *Geometry) VertexBytes() []byte { return g.vertexBytes }

// IndexBytes returns the encoded, padded index buffer contents.
func (g *Geometry) IndexBytes() []byte { return g.indexBytes }

// IsEmpty reports whether the geometry draws nothing.
func (g *Geometry) IsEmpty() bool { return g == nil || g.indexCount == 0 }
