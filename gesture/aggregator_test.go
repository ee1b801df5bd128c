// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"errors"
	"testing"
)

type shapeCall struct {
	serial uint32
	shape  Shape
}

type recordingCursor struct {
	calls []shapeCall
}

func (c *recordingCursor) SetShape(serial uint32, shape Shape) {
	c.calls = append(c.calls, shapeCall{serial, shape})
}

func newMouse(t *testing.T) (*Aggregator, *recordingCursor) {
	t.Helper()
	cursor := &recordingCursor{}
	a, err := NewBuilder(Mouse).WithCursor(cursor).Build()
	if err != nil {
		t.Fatal(err)
	}
	return a, cursor
}

// frame feeds events followed by a frame boundary and returns the intent.
func frame(t *testing.T, a *Aggregator, events ...Event) Intent {
	t.Helper()
	for _, ev := range events {
		if _, ok := a.Ingest(ev); ok {
			t.Fatalf("Ingest(%v) produced an intent before the frame", ev)
		}
	}
	intent, ok := a.Ingest(FrameEvent())
	if !ok {
		t.Fatal("frame produced no intent")
	}
	return intent
}

func TestDrawPosition(t *testing.T) {
	motion := Position{10, 10}
	last := Position{1, 1}

	tests := []struct {
		name      string
		pressed   bool
		hasMotion bool
		held      bool
		hasLast   bool
		want      Position
		ok        bool
	}{
		{"idle", false, true, false, true, Position{}, false},
		{"held and moving", false, true, true, true, motion, true},
		{"held without motion", false, false, true, true, Position{}, false},
		{"just pressed, no motion", true, false, true, true, last, true},
		{"just pressed, no known position", true, false, true, false, Position{}, false},
		{"pressed and released, no motion", true, false, false, true, last, true},
		{"press and motion in one frame", true, true, true, true, motion, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DrawPosition(tt.pressed, motion, tt.hasMotion, tt.held, last, tt.hasLast)
			if ok != tt.ok || got != tt.want {
				t.Errorf("DrawPosition = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAggregatorStroke(t *testing.T) {
	a, _ := newMouse(t)

	// Pointer rests at (5, 5).
	if in := frame(t, a, MotionEvent(5, 5)); in.HasDraw || in.HasErase {
		t.Errorf("hover intent = %+v, want nothing", in)
	}

	// Press without motion starts at the resting position.
	in := frame(t, a, PressEvent(1, ButtonPrimary))
	if !in.HasDraw || in.Draw != (Position{5, 5}) {
		t.Errorf("press intent draw = %v %v, want (5,5)", in.Draw, in.HasDraw)
	}
	if !a.PrimaryHeld() {
		t.Error("primary should be held after press")
	}

	// Held and moving draws at the new position.
	in = frame(t, a, MotionEvent(20, 30))
	if !in.HasDraw || in.Draw != (Position{20, 30}) {
		t.Errorf("drag intent draw = %v %v, want (20,30)", in.Draw, in.HasDraw)
	}

	// Held but not moving draws nothing.
	if in = frame(t, a); in.HasDraw {
		t.Error("empty frame while held should not draw")
	}

	// Release ends the stroke.
	in = frame(t, a, ReleaseEvent(ButtonPrimary))
	if !in.EndStroke || in.HasDraw {
		t.Errorf("release intent = %+v, want EndStroke only", in)
	}
	if a.PrimaryHeld() {
		t.Error("primary should not be held after release")
	}
}

func TestAggregatorPressWithMotion(t *testing.T) {
	a, _ := newMouse(t)
	frame(t, a, MotionEvent(1, 1))

	in := frame(t, a, PressEvent(1, ButtonPrimary), MotionEvent(9, 9))
	if !in.HasDraw || in.Draw != (Position{9, 9}) {
		t.Errorf("draw = %v %v, want motion (9,9)", in.Draw, in.HasDraw)
	}
}

func TestAggregatorPressWithoutMotion(t *testing.T) {
	tests := []struct {
		name   string
		button Button
	}{
		{"primary draws", ButtonPrimary},
		{"secondary erases", ButtonSecondary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newMouse(t)
			frame(t, a, MotionEvent(40, 50))

			in := frame(t, a, PressEvent(1, tt.button))
			pos, ok := in.Draw, in.HasDraw
			if tt.button == ButtonSecondary {
				pos, ok = in.Erase, in.HasErase
			}
			if !ok || pos != (Position{40, 50}) {
				t.Errorf("press-only frame acts at %v %v, want (40,50)", pos, ok)
			}

			// Holding still afterwards does nothing more.
			in = frame(t, a)
			if in.HasDraw || in.HasErase {
				t.Errorf("still frame intent = %+v, want nothing", in)
			}
		})
	}
}

func TestAggregatorClick(t *testing.T) {
	a, _ := newMouse(t)
	frame(t, a, MotionEvent(3, 4))

	in := frame(t, a, PressEvent(1, ButtonPrimary), ReleaseEvent(ButtonPrimary))
	if !in.HasDraw || in.Draw != (Position{3, 4}) {
		t.Errorf("click draw = %v %v, want (3,4)", in.Draw, in.HasDraw)
	}
	if !in.EndStroke {
		t.Error("click should end the stroke")
	}
}

func TestAggregatorErase(t *testing.T) {
	a, _ := newMouse(t)
	frame(t, a, MotionEvent(7, 7))

	in := frame(t, a, PressEvent(2, ButtonSecondary))
	if !in.HasErase || in.Erase != (Position{7, 7}) || in.HasDraw {
		t.Errorf("erase press intent = %+v", in)
	}
	in = frame(t, a, MotionEvent(8, 8))
	if !in.HasErase || in.Erase != (Position{8, 8}) {
		t.Errorf("erase drag intent = %+v", in)
	}
	in = frame(t, a, ReleaseEvent(ButtonSecondary), MotionEvent(9, 9))
	if in.HasErase || in.EndStroke {
		t.Errorf("erase release intent = %+v", in)
	}
}

func TestAggregatorEnterAndLeave(t *testing.T) {
	a, cursor := newMouse(t)

	in := frame(t, a, EnterEvent(77, 40, 50))
	if !in.Snapshot.Entered {
		t.Error("enter not reported")
	}
	if len(cursor.calls) != 1 || cursor.calls[0] != (shapeCall{77, ShapeCrosshair}) {
		t.Errorf("cursor calls = %+v, want crosshair with serial 77", cursor.calls)
	}
	if pos, ok := a.Position(); !ok || pos != (Position{40, 50}) {
		t.Errorf("position after enter = %v %v", pos, ok)
	}

	frame(t, a, LeaveEvent())
	if _, ok := a.Position(); ok {
		t.Error("leave should forget the position")
	}

	// Nothing to draw at after leaving.
	if in := frame(t, a, PressEvent(3, ButtonPrimary)); in.HasDraw {
		t.Errorf("press after leave drew at %v", in.Draw)
	}
}

func TestAggregatorToolCursor(t *testing.T) {
	tools := NewTools()
	pen := &recordingCursor{}
	tools.AddTool(1, pen)

	a, err := NewBuilder(Tool).WithTools(tools).Build()
	if err != nil {
		t.Fatal(err)
	}
	if a.Tools() != tools {
		t.Error("Tools() should return the configured map")
	}

	frame(t, a, ProximityInEvent(9, 1))
	if len(pen.calls) != 1 || pen.calls[0] != (shapeCall{9, ShapeCrosshair}) {
		t.Errorf("pen cursor calls = %+v", pen.calls)
	}

	// An unknown tool has no cursor; nothing happens.
	frame(t, a, ProximityInEvent(10, 2))
	if len(pen.calls) != 1 {
		t.Errorf("unknown tool changed the pen cursor: %+v", pen.calls)
	}

	tools.RemoveTool(1)
	frame(t, a, ProximityInEvent(11, 1))
	if len(pen.calls) != 1 {
		t.Error("removed tool still received cursor updates")
	}
}

func TestAggregatorToolStroke(t *testing.T) {
	a, err := NewBuilder(Tool).Build()
	if err != nil {
		t.Fatal(err)
	}
	if a.Tools() == nil || a.Tools().Len() != 0 {
		t.Fatal("tool aggregator should get an empty tool map")
	}

	frame(t, a, ProximityInEvent(1, 5), MotionEvent(10, 10))
	in := frame(t, a, PressEvent(2, ButtonPrimary))
	if !in.HasDraw || in.Draw != (Position{10, 10}) {
		t.Errorf("pen down draw = %v %v", in.Draw, in.HasDraw)
	}
	in = frame(t, a, MotionEvent(20, 10), ReleaseEvent(ButtonPrimary))
	if !in.EndStroke {
		t.Error("pen up should end the stroke")
	}

	frame(t, a, ProximityOutEvent(5))
	if _, ok := a.Position(); ok {
		t.Error("proximity out should forget the position")
	}
}

func TestBuilderMissingCursor(t *testing.T) {
	if _, err := NewBuilder(Mouse).Build(); !errors.Is(err, ErrMissingCursor) {
		t.Errorf("error = %v, want ErrMissingCursor", err)
	}

	calls := 0
	a, err := NewBuilder(Mouse).WithCursor(CursorFunc(func(uint32, Shape) { calls++ })).Build()
	if err != nil {
		t.Fatal(err)
	}
	frame(t, a, EnterEvent(1, 0, 0))
	if calls != 1 {
		t.Errorf("CursorFunc called %d times, want 1", calls)
	}
	if a.Kind() != Mouse {
		t.Errorf("Kind = %v, want mouse", a.Kind())
	}
}
