// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Frame is a snapshot of one recorded frame.
type Frame struct {
	// Vertices and Indices hold the buffer contents at the end of the frame.
	Vertices []byte
	Indices  []byte
	Draws    []DrawCall
}

// Triangles resolves every draw of the frame into triangles, in draw order.
func (f Frame) Triangles() ([][3]Vertex, error) {
	m := memoryBuffers{vertices: f.Vertices, indices: f.Indices}
	var out [][3]Vertex
	for _, d := range f.Draws {
		tris, err := m.triangles(d)
		if err != nil {
			return nil, err
		}
		out = append(out, tris...)
	}
	return out, nil
}

// Recorder is a Target that keeps buffer contents and draw calls in memory.
// It is used in tests and for diagnostics.
type Recorder struct {
	mem    memoryBuffers
	frames []Frame
}

// NewRecorder creates a recorder with the given buffer capacities in bytes.
// Zero means DefaultBufferSize.
func NewRecorder(vertexCap, indexCap uint64) *Recorder {
	return &Recorder{mem: newMemoryBuffers(vertexCap, indexCap)}
}

// VertexCapacity implements Target.
func (r *Recorder) VertexCapacity() uint64 { return r.mem.vertexCap }

// IndexCapacity implements Target.
func (r *Recorder) IndexCapacity() uint64 { return r.mem.indexCap }

// Begin implements Target.
func (r *Recorder) Begin() (Pass, error) {
	return &recorderPass{r: r}, nil
}

// Frames returns every completed frame, oldest first.
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Last returns the most recent completed frame.
func (r *Recorder) Last() (Frame, bool) {
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

// Reset drops recorded frames and buffer contents.
func (r *Recorder) Reset() {
	r.frames = nil
	r.mem.vertices = nil
	r.mem.indices = nil
}

type recorderPass struct {
	r     *Recorder
	draws []DrawCall
	ended bool
}

func (p *recorderPass) WriteVertices(offset uint64, data []byte) error {
	if p.ended {
		return ErrPassEnded
	}
	return p.r.mem.writeVertices(offset, data)
}

func (p *recorderPass) WriteIndices(offset uint64, data []byte) error {
	if p.ended {
		return ErrPassEnded
	}
	return p.r.mem.writeIndices(offset, data)
}

func (p *recorderPass) DrawIndexed(indexCount, firstIndex uint32, baseVertex int32) error {
	if p.ended {
		return ErrPassEnded
	}
	p.draws = append(p.draws, DrawCall{IndexCount: indexCount, FirstIndex: firstIndex, BaseVertex: baseVertex})
	return nil
}

func (p *recorderPass) End() error {
	if p.ended {
		return ErrPassEnded
	}
	p.ended = true
	p.r.frames = append(p.r.frames, Frame{
		Vertices: append([]byte(nil), p.r.mem.vertices...),
		Indices:  append([]byte(nil), p.r.mem.indices...),
		Draws:    p.draws,
	})
	return nil
}

var _ Target = (*Recorder)(nil)
