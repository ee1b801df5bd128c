// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/tessellate"
)

// meshWithIndices returns a mesh with n indices, all referencing vertex 0.
func meshWithIndices(n int) tessellate.Mesh {
	return tessellate.Mesh{
		Positions: []ink.Point{ink.Pt(1, 2), ink.Pt(3, 4), ink.Pt(5, 6)},
		Indices:   make([]uint16, n),
	}
}

func TestNewGeometryPadding(t *testing.T) {
	for _, alignment := range []int{1, 2, 4, 8} {
		for n := 0; n <= 20; n++ {
			g := NewGeometry(meshWithIndices(n), ink.Red, alignment)

			if g.IndexCount() != uint32(n) {
				t.Fatalf("align %d n %d: IndexCount = %d", alignment, n, g.IndexCount())
			}
			padded := g.PaddedIndexCount()
			if padded%uint32(alignment) != 0 {
				t.Errorf("align %d n %d: padded %d not aligned", alignment, n, padded)
			}
			if padded < g.IndexCount() || padded-g.IndexCount() >= uint32(alignment) {
				t.Errorf("align %d n %d: padded %d out of range", alignment, n, padded)
			}
			if len(g.IndexBytes()) != int(padded)*IndexSize {
				t.Errorf("align %d n %d: %d index bytes, want %d", alignment, n, len(g.IndexBytes()), padded*IndexSize)
			}
			for _, idx := range g.Indices()[n:] {
				if idx != 0 {
					t.Errorf("align %d n %d: padding index %d, want 0", alignment, n, idx)
				}
			}
		}
	}
}

func TestNewGeometryDefaultAlignment(t *testing.T) {
	g := NewGeometry(meshWithIndices(3), ink.Red, 0)
	if g.PaddedIndexCount() != CopyBufferAlignment {
		t.Errorf("PaddedIndexCount = %d, want %d", g.PaddedIndexCount(), CopyBufferAlignment)
	}
}

func TestNewGeometryVertices(t *testing.T) {
	color := ink.RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	g := NewGeometry(meshWithIndices(3), color, CopyBufferAlignment)

	if g.VertexCount() != 3 {
		t.Fatalf("VertexCount = %d, want 3", g.VertexCount())
	}
	want := Vertex{Position: [2]float32{3, 4}, Color: [4]float32{0.25, 0.5, 0.75, 1}}
	if g.Vertices()[1] != want {
		t.Errorf("vertex 1 = %+v, want %+v", g.Vertices()[1], want)
	}

	decoded := DecodeVertices(g.VertexBytes())
	if len(decoded) != 3 || decoded[1] != want {
		t.Errorf("decoded vertex bytes = %+v", decoded)
	}
}

func TestGeometryRecolor(t *testing.T) {
	g := NewGeometry(meshWithIndices(6), ink.Red, CopyBufferAlignment)
	blue := ink.RGBA{B: 1, A: 0.5}
	r := g.Recolor(blue)

	for i, v := range r.Vertices() {
		if v.Color != blue.Vec4() {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, blue.Vec4())
		}
		if v.Position != g.Vertices()[i].Position {
			t.Errorf("vertex %d moved", i)
		}
	}
	if r.IndexCount() != g.IndexCount() || r.PaddedIndexCount() != g.PaddedIndexCount() {
		t.Error("Recolor changed index counts")
	}
	if g.Vertices()[0].Color != ink.Red.Vec4() {
		t.Error("Recolor modified the original geometry")
	}
}

func TestGeometryIsEmpty(t *testing.T) {
	var nilGeom *Geometry
	if !nilGeom.IsEmpty() {
		t.Error("nil geometry should be empty")
	}
	if !NewGeometry(tessellate.Mesh{}, ink.Red, 4).IsEmpty() {
		t.Error("geometry without indices should be empty")
	}
}
