// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package overlay

import (
	"errors"
	"fmt"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/command"
	"github.com/gogpu/ink/drawing"
	"github.com/gogpu/ink/gesture"
	"github.com/gogpu/ink/render"
)

// ErrNoBatcher is returned by NewSession without WithBatcher.
var ErrNoBatcher = errors.New("overlay: no batcher configured")

// Surface is the overlay window the drawing is shown on.
type Surface interface {
	// SetInteractive makes the surface receive input (true) or pass it
	// through to the windows below (false).
	SetInteractive(interactive bool)

	// Size returns the surface size in pixels.
	Size() (width, height uint32)
}

// Session is one drawing session on an overlay surface.
type Session struct {
	surface Surface
	engine  *drawing.Engine
	batcher *render.Batcher
	queue   *command.Queue

	mouse  *gesture.Aggregator // nil without WithMouseCursor
	tablet *gesture.Aggregator

	active bool
}

// NewSession creates an inactive session: the surface is made
// click-through until Activate or a toggle command.
func NewSession(surface Surface, engine *drawing.Engine, opts ...Option) (*Session, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.batcher == nil {
		return nil, ErrNoBatcher
	}
	if o.queue == nil {
		o.queue = command.NewQueue()
	}

	s := &Session{
		surface: surface,
		engine:  engine,
		batcher: o.batcher,
		queue:   o.queue,
	}

	if o.cursor != nil {
		mouse, err := gesture.NewBuilder(gesture.Mouse).WithCursor(o.cursor).Build()
		if err != nil {
			return nil, fmt.Errorf("overlay: %w", err)
		}
		s.mouse = mouse
	}
	tb := gesture.NewBuilder(gesture.Tool)
	if o.tools != nil {
		tb = tb.WithTools(o.tools)
	}
	tablet, err := tb.Build()
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	s.tablet = tablet

	_, h := surface.Size()
	engine.SetHeight(h)
	surface.SetInteractive(false)
	return s, nil
}

// Engine returns the stroke engine.
func (s *Session) Engine() *drawing.Engine { return s.engine }

// Queue returns the command queue drained by Tick.
func (s *Session) Queue() *command.Queue { return s.queue }

// Active reports whether the surface currently takes input.
func (s *Session) Active() bool { return s.active }

// HandlePointer feeds a pointer event. Pointer events are dropped when the
// session was created without a mouse cursor.
func (s *Session) HandlePointer(ev gesture.Event) {
	if s.mouse == nil {
		ink.Logger().Debug("overlay: no pointer configured", "event", ev.String())
		return
	}
	if intent, ok := s.mouse.Ingest(ev); ok {
		s.apply(intent)
	}
}

// HandleTool feeds a tablet tool event.
func (s *Session) HandleTool(ev gesture.Event) {
	if intent, ok := s.tablet.Ingest(ev); ok {
		s.apply(intent)
	}
}

// AddTool registers the cursor of a newly attached tablet tool.
func (s *Session) AddTool(id gesture.ToolID, c gesture.Cursor) {
	s.tablet.Tools().AddTool(id, c)
	ink.Logger().Debug("overlay: tool added", "tool", uint64(id))
}

// RemoveTool forgets a detached tablet tool.
func (s *Session) RemoveTool(id gesture.ToolID) {
	s.tablet.Tools().RemoveTool(id)
	ink.Logger().Debug("overlay: tool removed", "tool", uint64(id))
}

// apply performs an intent: draw, then erase, then end the stroke.
func (s *Session) apply(in gesture.Intent) {
	if in.HasDraw {
		s.engine.AddPoint(in.Draw.X, in.Draw.Y)
	}
	if in.HasErase {
		s.engine.Erase(in.Erase.X, in.Erase.Y)
	}
	if in.EndStroke {
		s.engine.FinalizeCurrentStroke()
	}
}

// Resize follows a surface size change. The render target is resized when
// it implements render.Resizer.
func (s *Session) Resize(width, height uint32) error {
	s.engine.SetHeight(height)
	if r, ok := s.batcher.Target().(render.Resizer); ok {
		if err := r.Resize(width, height); err != nil {
			return fmt.Errorf("overlay: resize: %w", err)
		}
	}
	s.engine.MarkDirty()
	return nil
}

// Apply performs one control command. It reports whether the command asks
// the session to exit.
func (s *Session) Apply(c command.Command) (exit bool) {
	ink.Logger().Debug("overlay: command", "cmd", c.String())
	switch c.Kind {
	case command.Toggle:
		s.Toggle()
	case command.Undo:
		s.engine.Undo()
	case command.Clear:
		s.engine.Clear()
	case command.ClearAndDeactivate:
		s.engine.Clear()
		s.Deactivate()
	case command.StrokeWidth:
		s.engine.SetStrokeWidth(float64(c.Width))
	case command.StrokeColor:
		s.engine.SetStrokeColor(c.Color)
	case command.Exit:
		return true
	default:
		ink.Logger().Warn("overlay: ignoring command", "kind", c.Kind.String())
	}
	return false
}

// Tick applies every queued command. It reports whether one of them asked
// the session to exit; commands after an exit are dropped.
func (s *Session) Tick() (exit bool) {
	for _, c := range s.queue.Drain() {
		if s.Apply(c) {
			return true
		}
	}
	return false
}

// Frame renders the drawing if it changed since the last frame. A render
// error is fatal for the session.
func (s *Session) Frame() error {
	if !s.engine.Dirty() {
		return nil
	}
	if err := s.batcher.Render(s.engine.Geometries()); err != nil {
		return fmt.Errorf("overlay: frame: %w", err)
	}
	s.engine.MarkClean()
	return nil
}

// Toggle switches between active and inactive.
func (s *Session) Toggle() {
	if s.active {
		s.Deactivate()
	} else {
		s.Activate()
	}
}

// Activate makes the surface take input.
func (s *Session) Activate() {
	ink.Logger().Info("overlay: activate")
	s.surface.SetInteractive(true)
	s.active = true
}

// Deactivate makes the surface click-through.
func (s *Session) Deactivate() {
	ink.Logger().Info("overlay: deactivate")
	s.surface.SetInteractive(false)
	s.active = false
}
