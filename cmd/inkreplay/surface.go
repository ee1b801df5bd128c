// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gogpu/ink"
	"github.com/gogpu/ink/gesture"
)

// headlessSurface stands in for the overlay window.
type headlessSurface struct {
	width, height uint32
	interactive   bool
}

func (s *headlessSurface) SetInteractive(v bool) {
	s.interactive = v
	ink.Logger().Info("surface input", "interactive", v)
}

func (s *headlessSurface) Size() (uint32, uint32) { return s.width, s.height }

var pointerCursor = gesture.CursorFunc(func(serial uint32, shape gesture.Shape) {
	ink.Logger().Debug("pointer cursor", "serial", serial, "shape", shape.String())
})
