// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tessellate

import "github.com/gogpu/ink"

// Verb identifies a path event.
type Verb uint8

const (
	// VerbBegin starts a sub-path at a point.
	VerbBegin Verb = iota
	// VerbLine adds a straight segment to a point.
	VerbLine
	// VerbEnd terminates the current sub-path. It carries no point.
	VerbEnd
)

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case VerbBegin:
		return "Begin"
	case VerbLine:
		return "Line"
	case VerbEnd:
		return "End"
	}
	return "Unknown"
}

// Event is one step of a path walk.
//
// For VerbBegin, To is the start point. For VerbLine, From and To are the
// segment endpoints. For VerbEnd, From is the last point of the sub-path and
// To its first point.
type Event struct {
	Verb     Verb
	From, To ink.Point
}

// Path is an immutable sequence of open polyline sub-paths.
type Path struct {
	verbs  []Verb
	points []ink.Point
}

// Polyline returns a single sub-path through points.
//
// The first point is repeated as a zero-length segment so that a one-point
// polyline still has a segment to stroke and renders as a dot. Polyline
// returns an empty path when points is empty.
func Polyline(points []ink.Point) *Path {
	var b Builder
	if len(points) == 0 {
		return b.Build()
	}
	b.Begin(points[0])
	b.LineTo(points[0])
	for _, p := range points[1:] {
		b.LineTo(p)
	}
	b.End()
	return b.Build()
}

// IsEmpty reports whether the path has no sub-paths.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.verbs) == 0
}

// Len returns the number of stored points (one per Begin and Line).
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.points)
}

// Events returns the path as a list of events.
func (p *Path) Events() []Event {
	if p.IsEmpty() {
		return nil
	}
	events := make([]Event, 0, len(p.verbs))
	var first, last ink.Point
	i := 0
	for _, v := range p.verbs {
		switch v {
		case VerbBegin:
			first, last = p.points[i], p.points[i]
			events = append(events, Event{Verb: VerbBegin, To: first})
			i++
		case VerbLine:
			to := p.points[i]
			events = append(events, Event{Verb: VerbLine, From: last, To: to})
			last = to
			i++
		case VerbEnd:
			events = append(events, Event{Verb: VerbEnd, From: last, To: first})
		}
	}
	return events
}

// Endpoints calls fn for the endpoint of every Begin and Line event, in path
// order, until fn returns false.
func (p *Path) Endpoints(fn func(ink.Point) bool) {
	if p == nil {
		return
	}
	for _, pt := range p.points {
		if !fn(pt) {
			return
		}
	}
}

// subPaths splits the path into the point lists of its sub-paths.
func (p *Path) subPaths() [][]ink.Point {
	var out [][]ink.Point
	start, i := 0, 0
	for _, v := range p.verbs {
		switch v {
		case VerbBegin:
			start = i
			i++
		case VerbLine:
			i++
		case VerbEnd:
			out = append(out, p.points[start:i])
		}
	}
	return out
}

// Builder constructs a Path. The zero value is ready to use.
type Builder struct {
	verbs  []Verb
	points []ink.Point
	open   bool
}

// Begin starts a new sub-path at p, ending the previous one if it is open.
func (b *Builder) Begin(p ink.Point) {
	if b.open {
		b.End()
	}
	b.verbs = append(b.verbs, VerbBegin)
	b.points = append(b.points, p)
	b.open = true
}

// LineTo adds a segment from the current point to p.
// It starts a sub-path at p if none is open.
func (b *Builder) LineTo(p ink.Point) {
	if !b.open {
		b.Begin(p)
		return
	}
	b.verbs = append(b.verbs, VerbLine)
	b.points = append(b.points, p)
}

// End terminates the current sub-path. It is a no-op if none is open.
func (b *Builder) End() {
	if !b.open {
		return
	}
	b.verbs = append(b.verbs, VerbEnd)
	b.open = false
}

// Build ends any open sub-path and returns the path. The builder is reset.
func (b *Builder) Build() *Path {
	b.End()
	p := &Path{verbs: b.verbs, points: b.points}
	*b = Builder{}
	return p
}
