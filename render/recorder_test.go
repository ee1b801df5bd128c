// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"testing"
)

func TestRecorderPassLifecycle(t *testing.T) {
	rec := NewRecorder(64, 64)
	if rec.VertexCapacity() != 64 || rec.IndexCapacity() != 64 {
		t.Fatalf("capacities = %d/%d, want 64/64", rec.VertexCapacity(), rec.IndexCapacity())
	}

	pass, err := rec.Begin()
	if err != nil {
		t.Fatal(err)
	}
	if err := pass.WriteIndices(60, make([]byte, 8)); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("overflowing write error = %v, want ErrCapacityExceeded", err)
	}
	if err := pass.End(); err != nil {
		t.Fatal(err)
	}
	if err := pass.End(); !errors.Is(err, ErrPassEnded) {
		t.Errorf("second End error = %v, want ErrPassEnded", err)
	}
	if err := pass.DrawIndexed(3, 0, 0); !errors.Is(err, ErrPassEnded) {
		t.Errorf("draw after End error = %v, want ErrPassEnded", err)
	}

	if len(rec.Frames()) != 1 {
		t.Errorf("frames = %d, want 1", len(rec.Frames()))
	}
	rec.Reset()
	if _, ok := rec.Last(); ok {
		t.Error("Reset should drop frames")
	}
}

func TestFrameTrianglesOutOfRange(t *testing.T) {
	rec := NewRecorder(0, 0)
	pass, _ := rec.Begin()
	_ = pass.WriteVertices(0, appendVertex(nil, Vertex{}))
	_ = pass.WriteIndices(0, []byte{0, 0, 1, 0, 2, 0, 0, 0})
	_ = pass.DrawIndexed(3, 0, 0)
	_ = pass.End()

	frame, _ := rec.Last()
	if _, err := frame.Triangles(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("error = %v, want ErrIndexOutOfRange", err)
	}
}
