// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

// Position is a surface position with a top-left origin.
type Position struct {
	X, Y float64
}

// Snapshot is the coalesced content of one input frame.
//
// The zero value is an empty frame. Snapshots are comparable.
type Snapshot struct {
	// Motion is the latest position reported in the frame.
	Motion    Position
	HasMotion bool

	PrimaryPressed    bool
	PrimaryReleased   bool
	SecondaryPressed  bool
	SecondaryReleased bool

	// EnterSerial is the serial of an Enter or ProximityIn event.
	EnterSerial uint32
	Entered     bool

	// Left is set by Leave and ProximityOut.
	Left bool
}

// IsZero reports whether the snapshot carries no input.
func (s Snapshot) IsZero() bool {
	return s == Snapshot{}
}

// Sequence accumulates events between two frame boundaries.
// The zero value is ready to use.
type Sequence struct {
	acc Snapshot
}

// Ingest adds ev to the current frame. For a Frame event it returns the
// accumulated snapshot and starts a new one; for any other event it returns
// false.
func (s *Sequence) Ingest(ev Event) (Snapshot, bool) {
	switch ev.Kind {
	case Motion:
		s.acc.Motion = Position{X: ev.X, Y: ev.Y}
		s.acc.HasMotion = true
	case Enter:
		s.acc.Motion = Position{X: ev.X, Y: ev.Y}
		s.acc.HasMotion = true
		s.acc.EnterSerial = ev.Serial
		s.acc.Entered = true
	case ProximityIn:
		s.acc.EnterSerial = ev.Serial
		s.acc.Entered = true
	case Leave, ProximityOut:
		s.acc.Left = true
	case Press:
		switch ev.Button {
		case ButtonPrimary:
			s.acc.PrimaryPressed = true
		case ButtonSecondary:
			s.acc.SecondaryPressed = true
		}
	case Release:
		switch ev.Button {
		case ButtonPrimary:
			s.acc.PrimaryReleased = true
		case ButtonSecondary:
			s.acc.SecondaryReleased = true
		}
	case Frame:
		snap := s.acc
		s.acc = Snapshot{}
		return snap, true
	}
	return Snapshot{}, false
}

// Pending returns the snapshot accumulated so far without consuming it.
func (s *Sequence) Pending() Snapshot {
	return s.acc
}
