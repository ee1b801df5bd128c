// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"testing"

	"github.com/gogpu/ink"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"toggle", Command{Kind: Toggle}},
		{"undo", Command{Kind: Undo}},
		{"clear", Command{Kind: Clear}},
		{"clear_and_deactivate", Command{Kind: ClearAndDeactivate}},
		{"exit\n", Command{Kind: Exit}},
		{"stroke_width 12.5", SetStrokeWidth(12.5)},
		{"stroke_width   3 ", SetStrokeWidth(3)},
		{"stroke_color #00ff00", SetStrokeColor(ink.RGBA{G: 1, A: 1})},
		{"stroke_color blue", SetStrokeColor(ink.RGBA{B: 1, A: 1})},
		{"stroke_color rgb(255, 0, 0)", SetStrokeColor(ink.Red)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmpty},
		{"  \n", ErrEmpty},
		{"draw", ErrUnknown},
		{"Toggle", ErrUnknown},
		{"stroke_width", ErrInvalidWidth},
		{"stroke_width wide", ErrInvalidWidth},
		{"stroke_width 0", ErrInvalidWidth},
		{"stroke_width -2", ErrInvalidWidth},
		{"stroke_width NaN", ErrInvalidWidth},
		{"stroke_width +Inf", ErrInvalidWidth},
		{"stroke_width 1e40", ErrInvalidWidth},
		{"stroke_color", ErrInvalidColor},
		{"stroke_color notacolor", ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Kind: Toggle}, "toggle"},
		{Command{Kind: ClearAndDeactivate}, "clear_and_deactivate"},
		{SetStrokeWidth(4), "stroke_width 4"},
		{SetStrokeWidth(2.5), "stroke_width 2.5"},
		{SetStrokeColor(ink.Red), "stroke_color #ff0000"},
		{SetStrokeColor(ink.RGBA{B: 1, A: 0.5}), "stroke_color #0000ff80"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, in := range []string{"undo", "stroke_width 0.1", "stroke_color #12345678", "exit"} {
		var c Command
		if err := c.UnmarshalText([]byte(in)); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", in, err)
		}
		out, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText: %v", err)
		}
		if string(out) != in {
			t.Errorf("round trip %q -> %q", in, out)
		}
	}

	if _, err := (Command{}).MarshalText(); !errors.Is(err, ErrUnknown) {
		t.Errorf("MarshalText of zero command: %v, want ErrUnknown", err)
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue()
	if got := q.Drain(); len(got) != 0 {
		t.Errorf("Drain on empty queue = %v", got)
	}

	q.Push(Command{Kind: Undo})
	q.Push(Command{Kind: Clear})
	q.Push(Command{Kind: Exit})

	select {
	case <-q.Ready():
	default:
		t.Error("Ready not signaled after Push")
	}
	if q.Len() != 3 {
		t.Errorf("Len = %d, want 3", q.Len())
	}

	got := q.Drain()
	want := []Kind{Undo, Clear, Exit}
	if len(got) != len(want) {
		t.Fatalf("Drain returned %d commands, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("command %d = %v, want %v", i, got[i].Kind, k)
		}
	}
	if q.Len() != 0 {
		t.Error("Drain did not empty the queue")
	}
}

func TestDefaultSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	if got := DefaultSocketPath(); got != "/run/user/1000/ink.sock" {
		t.Errorf("DefaultSocketPath = %q", got)
	}
}
