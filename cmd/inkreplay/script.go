// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/command"
	"github.com/gogpu/ink/gesture"
	"github.com/gogpu/ink/overlay"
)

var errBadStep = errors.New("inkreplay: bad step")

// Script is a recorded input session.
//
//	width: 800
//	height: 600
//	tools: [1]
//	events:
//	  - {kind: enter, x: 10, y: 10, serial: 1}
//	  - {kind: frame}
//	  - {kind: press, button: primary}
//	  - {kind: frame}
//	  - {device: tool, kind: press, code: 331}
//	  - {command: "stroke_width 4"}
type Script struct {
	Width  uint32   `yaml:"width"`
	Height uint32   `yaml:"height"`
	Tools  []uint64 `yaml:"tools"`
	Steps  []Step   `yaml:"events"`
}

// Step is either one input event or one control command.
type Step struct {
	Device  string  `yaml:"device"` // pointer (default) or tool
	Kind    string  `yaml:"kind"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Serial  uint32  `yaml:"serial"`
	Button  string  `yaml:"button"` // primary or secondary
	Code    uint32  `yaml:"code"`   // evdev button code, instead of Button
	Tool    uint64  `yaml:"tool"`
	Command string  `yaml:"command"`
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("inkreplay: %w", err)
	}
	defer f.Close()
	return ParseScript(f)
}

// ParseScript decodes a script.
func ParseScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("inkreplay: parse script: %w", err)
	}
	return &s, nil
}

func (s Step) isTool() bool { return s.Device == "tool" }

// Event converts an input step to a gesture event.
func (s Step) Event() (gesture.Event, error) {
	switch s.Device {
	case "", "pointer", "tool":
	default:
		return gesture.Event{}, fmt.Errorf("%w: unknown device %q", errBadStep, s.Device)
	}

	kind, err := gesture.ParseKind(s.Kind)
	if err != nil {
		return gesture.Event{}, err
	}
	ev := gesture.Event{
		Kind:   kind,
		X:      s.X,
		Y:      s.Y,
		Serial: s.Serial,
		Tool:   gesture.ToolID(s.Tool),
	}
	if kind == gesture.Press || kind == gesture.Release {
		if ev.Button, err = s.button(); err != nil {
			return gesture.Event{}, err
		}
	}
	return ev, nil
}

func (s Step) button() (gesture.Button, error) {
	if s.Code != 0 {
		var b gesture.Button
		var ok bool
		if s.isTool() {
			b, ok = gesture.StylusButton(s.Code)
		} else {
			b, ok = gesture.MouseButton(s.Code)
		}
		if !ok {
			return gesture.ButtonNone, fmt.Errorf("%w: unmapped button code %#x", errBadStep, s.Code)
		}
		return b, nil
	}
	switch strings.ToLower(s.Button) {
	case "", "primary":
		return gesture.ButtonPrimary, nil
	case "secondary":
		return gesture.ButtonSecondary, nil
	}
	return gesture.ButtonNone, fmt.Errorf("%w: unknown button %q", errBadStep, s.Button)
}

// Play feeds the script to the session, rendering on every frame event. It
// reports whether the script sent an exit command.
func Play(session *overlay.Session, s *Script) (exit bool, err error) {
	for _, id := range s.Tools {
		session.AddTool(gesture.ToolID(id), toolCursor(gesture.ToolID(id)))
	}

	for i, step := range s.Steps {
		if step.Command != "" {
			cmd, err := command.Parse([]byte(step.Command))
			if err != nil {
				ink.Logger().Warn("dropping command", "step", i, "err", err)
				continue
			}
			if session.Apply(cmd) {
				return true, nil
			}
			continue
		}

		ev, err := step.Event()
		if err != nil {
			return false, fmt.Errorf("step %d: %w", i, err)
		}
		if step.isTool() {
			session.HandleTool(ev)
		} else {
			session.HandlePointer(ev)
		}
		if ev.Kind == gesture.Frame {
			if err := session.Frame(); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}

func toolCursor(id gesture.ToolID) gesture.Cursor {
	return gesture.CursorFunc(func(serial uint32, shape gesture.Shape) {
		ink.Logger().Debug("tool cursor", "tool", uint64(id), "serial", serial, "shape", shape.String())
	})
}
