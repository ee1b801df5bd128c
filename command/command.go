// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package command implements the control protocol of the overlay: a small
// set of text commands sent over a unix socket, one command per connection.
//
// Wire format (UTF-8, trailing whitespace ignored):
//
//	toggle
//	undo
//	clear
//	clear_and_deactivate
//	stroke_width <float>
//	stroke_color <css-color>
//	exit
package command

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/ink"
)

// Parse errors.
var (
	ErrEmpty        = errors.New("command: empty message")
	ErrUnknown      = errors.New("command: unknown command")
	ErrInvalidWidth = errors.New("command: invalid stroke width")
	ErrInvalidColor = errors.New("command: invalid stroke color")
)

// Kind identifies a command.
type Kind uint8

const (
	Toggle Kind = iota + 1
	Undo
	Clear
	ClearAndDeactivate
	StrokeWidth
	StrokeColor
	Exit
)

var kindNames = map[Kind]string{
	Toggle:             "toggle",
	Undo:               "undo",
	Clear:              "clear",
	ClearAndDeactivate: "clear_and_deactivate",
	StrokeWidth:        "stroke_width",
	StrokeColor:        "stroke_color",
	Exit:               "exit",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Command is one control message. Width is set for StrokeWidth and Color
// for StrokeColor.
type Command struct {
	Kind  Kind
	Width float32
	Color ink.RGBA
}

// SetStrokeWidth returns a stroke_width command.
func SetStrokeWidth(w float32) Command {
	return Command{Kind: StrokeWidth, Width: w}
}

// SetStrokeColor returns a stroke_color command.
func SetStrokeColor(c ink.RGBA) Command {
	return Command{Kind: StrokeColor, Color: c}
}

// String serializes the command in wire format. Colors are written as CSS
// hex.
func (c Command) String() string {
	switch c.Kind {
	case StrokeWidth:
		return c.Kind.String() + " " + strconv.FormatFloat(float64(c.Width), 'g', -1, 32)
	case StrokeColor:
		return c.Kind.String() + " " + c.Color.CSSHex()
	}
	return c.Kind.String()
}

// MarshalText implements encoding.TextMarshaler.
func (c Command) MarshalText() ([]byte, error) {
	if _, ok := kindNames[c.Kind]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknown, c.Kind)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Command) UnmarshalText(b []byte) error {
	parsed, err := Parse(b)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Parse decodes one wire message.
func Parse(b []byte) (Command, error) {
	msg := strings.TrimSpace(string(b))
	if msg == "" {
		return Command{}, ErrEmpty
	}
	name, arg, _ := strings.Cut(msg, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "toggle":
		return Command{Kind: Toggle}, nil
	case "undo":
		return Command{Kind: Undo}, nil
	case "clear":
		return Command{Kind: Clear}, nil
	case "clear_and_deactivate":
		return Command{Kind: ClearAndDeactivate}, nil
	case "exit":
		return Command{Kind: Exit}, nil
	case "stroke_width":
		w, err := ParseWidth(arg)
		if err != nil {
			return Command{}, err
		}
		return SetStrokeWidth(w), nil
	case "stroke_color":
		c, err := ink.ParseColor(arg)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrInvalidColor, err)
		}
		return SetStrokeColor(c), nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// ParseWidth parses a stroke width. The width must be finite and positive.
func ParseWidth(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWidth, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWidth, v)
	}
	return float32(v), nil
}
