// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"errors"
	"testing"
)

func TestMouseButton(t *testing.T) {
	tests := []struct {
		code uint32
		want Button
		ok   bool
	}{
		{272, ButtonPrimary, true},
		{273, ButtonSecondary, true},
		{274, ButtonNone, false},
		{331, ButtonNone, false},
	}
	for _, tt := range tests {
		got, ok := MouseButton(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MouseButton(%d) = %v, %v; want %v, %v", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStylusButton(t *testing.T) {
	if b, ok := StylusButton(331); b != ButtonSecondary || !ok {
		t.Errorf("StylusButton(331) = %v, %v", b, ok)
	}
	if _, ok := StylusButton(332); ok {
		t.Error("StylusButton(332) should be unmapped")
	}
}

func TestParseKind(t *testing.T) {
	for k := Motion; k <= Frame; k++ {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if got, err := ParseKind(" Frame "); err != nil || got != Frame {
		t.Errorf("ParseKind is not case-insensitive: %v, %v", got, err)
	}
	if _, err := ParseKind("scroll"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(scroll) error = %v, want ErrUnknownKind", err)
	}
}
