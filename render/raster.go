// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"
)

// RasterTarget is a Target that rasterizes frames on the CPU.
//
// Drawing space has its origin at the bottom-left, so rows are flipped when
// rasterizing. Each draw is filled with the color of its first vertex,
// which is exact for stroke geometry. Frames are anti-aliased by the
// rasterizer's coverage computation.
type RasterTarget struct {
	mem           memoryBuffers
	img           *image.RGBA
	ras           vector.Rasterizer
	premultiplied bool
}

// NewRasterTarget creates a CPU target of the given size with default
// buffer capacities.
func NewRasterTarget(width, height int) *RasterTarget {
	return &RasterTarget{
		mem: newMemoryBuffers(0, 0),
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// SetBufferSize sets the capacity, in bytes, of the vertex and index
// buffers. Buffer contents are discarded.
func (t *RasterTarget) SetBufferSize(size uint64) {
	t.mem = newMemoryBuffers(size, size)
}

// SetPremultiplied selects whether vertex colors are interpreted as
// premultiplied by alpha.
func (t *RasterTarget) SetPremultiplied(premultiplied bool) {
	t.premultiplied = premultiplied
}

// Resize replaces the image with a blank one of the new size.
func (t *RasterTarget) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	t.img = image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	return nil
}

// Width returns the target width in pixels.
func (t *RasterTarget) Width() int { return t.img.Bounds().Dx() }

// Height returns the target height in pixels.
func (t *RasterTarget) Height() int { return t.img.Bounds().Dy() }

// Image returns the rendered image. It shares memory with the target.
func (t *RasterTarget) Image() *image.RGBA { return t.img }

// VertexCapacity implements Target.
func (t *RasterTarget) VertexCapacity() uint64 { return t.mem.vertexCap }

// IndexCapacity implements Target.
func (t *RasterTarget) IndexCapacity() uint64 { return t.mem.indexCap }

// Begin implements Target. The image is cleared to transparent.
func (t *RasterTarget) Begin() (Pass, error) {
	clear(t.img.Pix)
	return &rasterPass{t: t}, nil
}

// WritePNG encodes the current image as PNG.
func (t *RasterTarget) WritePNG(w io.Writer) error {
	return png.Encode(w, t.img)
}

// SavePNG writes the current image to a PNG file.
func (t *RasterTarget) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := t.WritePNG(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}

func (t *RasterTarget) fill(tris [][3]Vertex) {
	if len(tris) == 0 {
		return
	}
	w, h := t.Width(), t.Height()
	if w == 0 || h == 0 {
		return
	}

	t.ras.Reset(w, h)
	t.ras.DrawOp = draw.Over
	fh := float32(h)
	for _, tri := range tris {
		a, b, c := tri[0].Position, tri[1].Position, tri[2].Position
		// The rasterizer accumulates signed area, so overlapping triangles
		// must share a winding to add up instead of cancelling out.
		if (b[0]-a[0])*(c[1]-a[1])-(b[1]-a[1])*(c[0]-a[0]) < 0 {
			b, c = c, b
		}
		t.ras.MoveTo(a[0], fh-a[1])
		t.ras.LineTo(b[0], fh-b[1])
		t.ras.LineTo(c[0], fh-c[1])
		t.ras.ClosePath()
	}

	src := image.NewUniform(t.color(tris[0][0].Color))
	t.ras.Draw(t.img, t.img.Bounds(), src, image.Point{})
}

func (t *RasterTarget) color(c [4]float32) color.Color {
	ch := func(v float32) uint16 {
		return uint16(max(0, min(1, v))*0xffff + 0.5)
	}
	if t.premultiplied {
		a := ch(c[3])
		return color.RGBA64{R: min(ch(c[0]), a), G: min(ch(c[1]), a), B: min(ch(c[2]), a), A: a}
	}
	return color.NRGBA64{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: ch(c[3])}
}

type rasterPass struct {
	t     *RasterTarget
	ended bool
}

func (p *rasterPass) WriteVertices(offset uint64, data []byte) error {
	if p.ended {
		return ErrPassEnded
	}
	return p.t.mem.writeVertices(offset, data)
}

func (p *rasterPass) WriteIndices(offset uint64, data []byte) error {
	if p.ended {
		return ErrPassEnded
	}
	return p.t.mem.writeIndices(offset, data)
}

func (p *rasterPass) DrawIndexed(indexCount, firstIndex uint32, baseVertex int32) error {
	if p.ended {
		return ErrPassEnded
	}
	tris, err := p.t.mem.triangles(DrawCall{IndexCount: indexCount, FirstIndex: firstIndex, BaseVertex: baseVertex})
	if err != nil {
		return err
	}
	p.t.fill(tris)
	return nil
}

func (p *rasterPass) End() error {
	if p.ended {
		return ErrPassEnded
	}
	p.ended = true
	return nil
}

var _ Target = (*RasterTarget)(nil)
