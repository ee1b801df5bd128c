// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ink

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for strings that are not CSS colors.
var ErrInvalidColor = errors.New("ink: invalid color")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Red is the default stroke color.
var Red = RGBA{R: 1, A: 1}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Premultiply returns the color with R, G and B multiplied by alpha.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Vec4 returns the color as four float32 components, ready for a vertex.
func (c RGBA) Vec4() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// CSSHex formats the color as "#rrggbb", or "#rrggbbaa" when not opaque.
// The result round-trips through ParseColor.
func (c RGBA) CSSHex() string {
	n := c.Color().(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// String implements fmt.Stringer.
func (c RGBA) String() string {
	return c.CSSHex()
}

// ParseColor parses a CSS color string.
//
// Supported forms:
//   - named colors: "red", "cornflowerblue", "transparent"
//   - hex: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" (the "#" is optional)
//   - functional: "rgb(255,0,0)", "rgba(255,0,0,0.5)", "rgb(100% 0% 0% / 50%)"
//   - functional: "hsl(120,100%,50%)", "hsla(120deg,100%,50%,0.3)"
func ParseColor(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if s == "transparent" {
		return RGBA{}, nil
	}
	if named, ok := colornames.Map[s]; ok {
		return FromColor(named), nil
	}

	if open := strings.IndexByte(s, '('); open > 0 && strings.HasSuffix(s, ")") {
		fn := s[:open]
		args := splitArgs(s[open+1 : len(s)-1])
		switch fn {
		case "rgb", "rgba":
			return parseRGBFunc(s, args)
		case "hsl", "hsla":
			return parseHSLFunc(s, args)
		}
		return RGBA{}, fmt.Errorf("%w: unknown function %q", ErrInvalidColor, fn)
	}

	c, ok := parseHex(strings.TrimPrefix(s, "#"))
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// MustParseColor is like ParseColor but panics on error.
// Use only for hardcoded colors.
func MustParseColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(hex string) (RGBA, bool) {
	var digits [8]uint8
	for i := 0; i < len(hex); i++ {
		if i >= len(digits) {
			return RGBA{}, false
		}
		v, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, false
		}
		digits[i] = v
	}

	var r, g, b, a uint8
	a = 255
	switch len(hex) {
	case 3:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
	case 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return RGBA{}, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// splitArgs splits functional notation arguments on commas, whitespace and
// the CSS4 alpha separator "/".
func splitArgs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
}

func parseRGBFunc(s string, args []string) (RGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("%w: %q needs 3 or 4 arguments", ErrInvalidColor, s)
	}
	var c [4]float64
	c[3] = 1
	for i, arg := range args {
		var v float64
		var err error
		switch {
		case i == 3:
			v, err = parseAlpha(arg)
		case strings.HasSuffix(arg, "%"):
			v, err = parsePercent(arg)
		default:
			v, err = parseNumber(arg)
			v /= 255
		}
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
		}
		c[i] = clamp01(v)
	}
	return RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}

func parseHSLFunc(s string, args []string) (RGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("%w: %q needs 3 or 4 arguments", ErrInvalidColor, s)
	}
	hue, err := parseNumber(strings.TrimSuffix(args[0], "deg"))
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
	}
	sat, err := parsePercent(args[1])
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
	}
	light, err := parsePercent(args[2])
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
	}
	alpha := 1.0
	if len(args) == 4 {
		if alpha, err = parseAlpha(args[3]); err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
		}
	}

	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	c := colorful.Hsl(hue, clamp01(sat), clamp01(light)).Clamped()
	return RGBA{R: c.R, G: c.G, B: c.B, A: clamp01(alpha)}, nil
}

func parseAlpha(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		return parsePercent(s)
	}
	return parseNumber(s)
}

func parsePercent(s string) (float64, error) {
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("expected percentage, got %q", s)
	}
	v, err := parseNumber(strings.TrimSuffix(s, "%"))
	return v / 100, err
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clamp255(v float64) float64 {
	return math.Max(0, math.Min(255, math.Round(v)))
}
