// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package overlay coordinates a drawing session on a screen overlay.
//
// A Session owns the stroke engine, one gesture aggregator per input
// device, and the batcher that renders the drawing. It is driven from a
// single loop that feeds it input events, drains control commands once per
// tick, and calls Frame when the compositor asks for a new frame:
//
//	s, err := overlay.NewSession(surface, engine,
//		overlay.WithMouseCursor(cursor),
//		overlay.WithBatcher(render.NewBatcher(target)),
//	)
//	...
//	for {
//		select {
//		case ev := <-pointer:
//			s.HandlePointer(ev)
//		case <-s.Queue().Ready():
//			if s.Tick() {
//				return nil
//			}
//		case <-frames:
//			if err := s.Frame(); err != nil {
//				return err
//			}
//		}
//	}
//
// A Session is not safe for concurrent use; only its Queue is.
package overlay
