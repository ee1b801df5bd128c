// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/gogpu/ink"
)

func TestRasterTargetDrawsStroke(t *testing.T) {
	target := NewRasterTarget(100, 100)
	g := strokeGeometry(t, ink.Pt(20, 80), ink.Pt(80, 80))

	if err := NewBatcher(target).Render([]*Geometry{g}); err != nil {
		t.Fatal(err)
	}

	img := target.Image()
	// Drawing-space y=80 is image row 20.
	if c := img.RGBAAt(50, 20); c.R < 250 || c.A < 250 || c.G != 0 {
		t.Errorf("pixel on stroke = %v, want opaque red", c)
	}
	if c := img.RGBAAt(50, 80); c.A != 0 {
		t.Errorf("pixel off stroke = %v, want transparent", c)
	}
	// Round caps extend width/2 past the endpoints.
	if c := img.RGBAAt(17, 20); c.A == 0 {
		t.Error("round cap not drawn")
	}
}

func TestRasterTargetClearsEachFrame(t *testing.T) {
	target := NewRasterTarget(50, 50)
	b := NewBatcher(target)

	if err := b.Render([]*Geometry{strokeGeometry(t, ink.Pt(25, 25))}); err != nil {
		t.Fatal(err)
	}
	if target.Image().RGBAAt(25, 25).A == 0 {
		t.Fatal("dot not drawn")
	}
	if err := b.Render(nil); err != nil {
		t.Fatal(err)
	}
	if c := target.Image().RGBAAt(25, 25); c.A != 0 {
		t.Errorf("pixel after empty frame = %v, want transparent", c)
	}
}

func TestRasterTargetPremultiplied(t *testing.T) {
	half := ink.RGBA{R: 1, A: 0.5}
	tests := []struct {
		name          string
		color         ink.RGBA
		premultiplied bool
	}{
		{"straight", half, false},
		{"premultiplied", half.Premultiply(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewRasterTarget(40, 40)
			target.SetPremultiplied(tt.premultiplied)
			g := strokeGeometry(t, ink.Pt(20, 20)).Recolor(tt.color)
			if err := NewBatcher(target).Render([]*Geometry{g}); err != nil {
				t.Fatal(err)
			}
			c := target.Image().RGBAAt(20, 20)
			if c.R < 120 || c.R > 135 || c.A < 120 || c.A > 135 {
				t.Errorf("pixel = %v, want half-transparent red (~128)", c)
			}
		})
	}
}

func TestRasterTargetPNG(t *testing.T) {
	target := NewRasterTarget(16, 8)
	var buf bytes.Buffer
	if err := target.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("decoded size = %v, want 16x8", b)
	}

	path := t.TempDir() + "/frame.png"
	if err := target.SavePNG(path); err != nil {
		t.Errorf("SavePNG: %v", err)
	}
}

func TestRasterTargetResize(t *testing.T) {
	target := NewRasterTarget(10, 10)
	if err := target.Resize(30, 20); err != nil {
		t.Fatal(err)
	}
	if target.Width() != 30 || target.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", target.Width(), target.Height())
	}
	if err := target.Resize(0, 20); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 20) = %v, want ErrInvalidSize", err)
	}
	var _ Resizer = target
}

func TestRasterTargetBufferSize(t *testing.T) {
	target := NewRasterTarget(10, 10)
	if target.VertexCapacity() != DefaultBufferSize {
		t.Errorf("VertexCapacity = %d, want default", target.VertexCapacity())
	}
	target.SetBufferSize(1024)
	if target.VertexCapacity() != 1024 || target.IndexCapacity() != 1024 {
		t.Errorf("capacities = %d/%d, want 1024", target.VertexCapacity(), target.IndexCapacity())
	}
}
