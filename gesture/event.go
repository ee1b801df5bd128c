// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for unknown event names.
var ErrUnknownKind = errors.New("gesture: unknown event kind")

// Kind identifies the type of an input event.
type Kind uint8

const (
	// Motion reports a new pointer position.
	Motion Kind = iota
	// Press reports a button going down (or the pen touching the surface).
	Press
	// Release reports a button going up (or the pen lifting).
	Release
	// Enter reports the pointer entering the surface, with its position.
	Enter
	// Leave reports the pointer leaving the surface.
	Leave
	// ProximityIn reports a tool coming into range of the tablet.
	ProximityIn
	// ProximityOut reports a tool leaving range of the tablet.
	ProximityOut
	// Pressure reports tool pressure. It is accepted and ignored.
	Pressure
	// Frame terminates a burst of events.
	Frame
)

var kindNames = [...]string{
	Motion:       "motion",
	Press:        "press",
	Release:      "release",
	Enter:        "enter",
	Leave:        "leave",
	ProximityIn:  "proximity_in",
	ProximityOut: "proximity_out",
	Pressure:     "pressure",
	Frame:        "frame",
}

// String returns the event kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind parses an event kind name as returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Button identifies a logical button.
type Button uint8

const (
	// ButtonNone is an unmapped button. Events with it are ignored.
	ButtonNone Button = iota
	// ButtonPrimary is the left mouse button or the pen tip. It draws.
	ButtonPrimary
	// ButtonSecondary is the right mouse button or the stylus barrel
	// button. It erases.
	ButtonSecondary
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	}
	return "none"
}

// Linux input event codes.
const (
	BtnLeft   = 0x110 // 272
	BtnRight  = 0x111 // 273
	BtnStylus = 0x14b // 331
)

// MouseButton maps a Linux mouse button code to a logical button.
func MouseButton(code uint32) (Button, bool) {
	switch code {
	case BtnLeft:
		return ButtonPrimary, true
	case BtnRight:
		return ButtonSecondary, true
	}
	return ButtonNone, false
}

// StylusButton maps a Linux stylus button code to a logical button.
// Pen down and up are reported as Press and Release of ButtonPrimary.
func StylusButton(code uint32) (Button, bool) {
	if code == BtnStylus {
		return ButtonSecondary, true
	}
	return ButtonNone, false
}

// ToolID is a stable identity for a tablet tool.
type ToolID uint64

// Event is a raw input event of one device.
//
// X and Y are surface coordinates with a top-left origin. They are set for
// Motion and Enter. Serial is set for Press, Enter and ProximityIn. Tool
// identifies the tablet tool that produced the event; it is zero for the
// mouse.
type Event struct {
	Kind     Kind
	X, Y     float64
	Serial   uint32
	Button   Button
	Tool     ToolID
	Pressure float64
}

// String implements fmt.Stringer.
func (e Event) String() string {
	switch e.Kind {
	case Motion:
		return fmt.Sprintf("motion(%g, %g)", e.X, e.Y)
	case Enter:
		return fmt.Sprintf("enter(%d, %g, %g)", e.Serial, e.X, e.Y)
	case Press, Release:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Button)
	}
	return e.Kind.String()
}

// MotionEvent returns a Motion event.
func MotionEvent(x, y float64) Event {
	return Event{Kind: Motion, X: x, Y: y}
}

// PressEvent returns a Press event.
func PressEvent(serial uint32, b Button) Event {
	return Event{Kind: Press, Serial: serial, Button: b}
}

// ReleaseEvent returns a Release event.
func ReleaseEvent(b Button) Event {
	return Event{Kind: Release, Button: b}
}

// EnterEvent returns an Enter event.
func EnterEvent(serial uint32, x, y float64) Event {
	return Event{Kind: Enter, Serial: serial, X: x, Y: y}
}

// LeaveEvent returns a Leave event.
func LeaveEvent() Event {
	return Event{Kind: Leave}
}

// ProximityInEvent returns a ProximityIn event for a tool.
func ProximityInEvent(serial uint32, tool ToolID) Event {
	return Event{Kind: ProximityIn, Serial: serial, Tool: tool}
}

// ProximityOutEvent returns a ProximityOut event for a tool.
func ProximityOutEvent(tool ToolID) Event {
	return Event{Kind: ProximityOut, Tool: tool}
}

// FrameEvent returns a Frame event.
func FrameEvent() Event {
	return Event{Kind: Frame}
}
