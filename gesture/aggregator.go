// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import "github.com/gogpu/ink"

// DeviceKind distinguishes the two kinds of pointing devices.
type DeviceKind uint8

const (
	// Mouse is a pointer with buttons.
	Mouse DeviceKind = iota
	// Tool is a tablet stylus.
	Tool
)

// String returns the device kind name.
func (k DeviceKind) String() string {
	if k == Tool {
		return "tool"
	}
	return "mouse"
}

// Intent is what one input frame asks the drawing to do.
// Appliers should draw first, then erase, then end the stroke.
type Intent struct {
	Snapshot Snapshot

	// Draw is where to add a stroke point.
	Draw    Position
	HasDraw bool

	// Erase is where to erase.
	Erase    Position
	HasErase bool

	// EndStroke is set when the primary button was released.
	EndStroke bool
}

// DrawPosition chooses where a button acts in a frame.
//
// While the button is held, it acts at the new motion position, if the
// pointer moved. Otherwise, when the button was pressed in this frame, it
// acts at the last known position. A press and a motion in the same frame
// leave the button held, so the motion wins.
func DrawPosition(pressed bool, motion Position, hasMotion, held bool, last Position, hasLast bool) (Position, bool) {
	switch {
	case held && hasMotion:
		return motion, true
	case pressed:
		return last, hasLast
	}
	return Position{}, false
}

// Aggregator turns the events of one device into intents.
// Create it with a Builder. Aggregator is not safe for concurrent use.
type Aggregator struct {
	kind   DeviceKind
	seq    Sequence
	cursor Cursor
	tools  *Tools

	last    Position
	hasLast bool

	primaryHeld   bool
	secondaryHeld bool

	// tool is the tablet tool that produced the current frame's events.
	tool ToolID
}

// Kind returns the device kind.
func (a *Aggregator) Kind() DeviceKind { return a.kind }

// Tools returns the tool map of a Tool aggregator, or nil for a mouse.
func (a *Aggregator) Tools() *Tools { return a.tools }

// Position returns the last known pointer position.
func (a *Aggregator) Position() (Position, bool) { return a.last, a.hasLast }

// PrimaryHeld reports whether the primary button is held.
func (a *Aggregator) PrimaryHeld() bool { return a.primaryHeld }

// SecondaryHeld reports whether the secondary button is held.
func (a *Aggregator) SecondaryHeld() bool { return a.secondaryHeld }

// Ingest feeds one event. On a frame boundary it updates the device state
// and returns the frame's intent.
func (a *Aggregator) Ingest(ev Event) (Intent, bool) {
	if a.kind == Tool && ev.Kind != Frame && ev.Tool != 0 {
		a.tool = ev.Tool
	}

	snap, ok := a.seq.Ingest(ev)
	if !ok {
		return Intent{}, false
	}
	a.update(snap)

	if snap.Entered {
		a.setCrosshair(snap.EnterSerial)
	}

	intent := Intent{
		Snapshot:  snap,
		EndStroke: snap.PrimaryReleased,
	}
	intent.Draw, intent.HasDraw = DrawPosition(snap.PrimaryPressed,
		snap.Motion, snap.HasMotion, a.primaryHeld, a.last, a.hasLast)
	intent.Erase, intent.HasErase = DrawPosition(snap.SecondaryPressed,
		snap.Motion, snap.HasMotion, a.secondaryHeld, a.last, a.hasLast)

	if !snap.IsZero() {
		ink.Logger().Debug("gesture: frame",
			"device", a.kind,
			"snapshot", snap,
			"draw", intent.HasDraw,
			"erase", intent.HasErase,
			"end", intent.EndStroke)
	}
	return intent, true
}

func (a *Aggregator) update(snap Snapshot) {
	if snap.HasMotion {
		a.last = snap.Motion
		a.hasLast = true
	}
	if snap.Left {
		a.last = Position{}
		a.hasLast = false
	}

	if snap.PrimaryPressed {
		a.primaryHeld = true
	}
	if snap.PrimaryReleased {
		a.primaryHeld = false
	}
	if snap.SecondaryPressed {
		a.secondaryHeld = true
	}
	if snap.SecondaryReleased {
		a.secondaryHeld = false
	}
}

func (a *Aggregator) setCrosshair(serial uint32) {
	c := a.cursor
	if a.kind == Tool {
		var ok bool
		if c, ok = a.tools.Cursor(a.tool); !ok {
			ink.Logger().Debug("gesture: no cursor for tool", "tool", a.tool)
			return
		}
	}
	if c != nil {
		c.SetShape(serial, ShapeCrosshair)
	}
}
