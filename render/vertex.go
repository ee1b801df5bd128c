// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexSize is the size of an encoded Vertex in bytes.
const VertexSize = 24

// IndexSize is the size of an encoded index in bytes.
const IndexSize = 2

// Vertex is a stroke vertex: a position in drawing space and an RGBA color.
//
// Layout (24 bytes):
//
//	position: vec2<f32> at offset 0
//	color:    vec4<f32> at offset 8
type Vertex struct {
	Position [2]float32
	Color    [4]float32
}

// VertexLayout returns the vertex buffer layout matching Vertex.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexSize,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			},
		},
	}
}

// appendVertex encodes v in little-endian order.
func appendVertex(buf []byte, v Vertex) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Position[0]))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Position[1]))
	for _, c := range v.Color {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c))
	}
	return buf
}

// DecodeVertices decodes a little-endian vertex buffer. Trailing bytes that
// do not form a whole vertex are ignored.
func DecodeVertices(data []byte) []Vertex {
	out := make([]Vertex, len(data)/VertexSize)
	for i := range out {
		b := data[i*VertexSize:]
		out[i].Position[0] = math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))
		out[i].Position[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
		for c := range out[i].Color {
			out[i].Color[c] = math.Float32frombits(binary.LittleEndian.Uint32(b[8+4*c:]))
		}
	}
	return out
}

// DecodeIndices decodes a little-endian uint16 index buffer.
func DecodeIndices(data []byte) []uint16 {
	out := make([]uint16, len(data)/IndexSize)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(data[i*IndexSize:])
	}
	return out
}
