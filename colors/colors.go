// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides hex parsing and formatting of colors,
// conversion to and from packed display colors, and
// maximally spaced color sequences in the HCT color space.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/hct/base/errors"
	"cogentcore.org/hct/colors/cam/cie"
)

var (
	// Black is opaque black.
	Black = color.RGBA{0, 0, 0, 255}

	// White is opaque white.
	White = color.RGBA{255, 255, 255, 255}
)

// AsRGBA converts the given color to an RGBA color.
// A nil color gives transparent black.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromHex parses the given hex color string and returns the resulting color.
// The leading # or 0x is optional, and the string can have 3 (RGB),
// 4 (RGBA), 6 (RRGGBB), or 8 (RRGGBBAA) hex digits.
func FromHex(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == len(hex) {
		h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	}
	switch len(h) {
	case 3, 4:
		var sb strings.Builder
		for _, r := range h {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		h = sb.String()
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: need 3, 4, 6, or 8 hex digits", hex)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// MustFromHex is a version of [FromHex] that panics on error.
// It should only be used in situations where the hex string is
// known to be valid, like in constant declarations.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// LogFromHex is a version of [FromHex] that logs any error,
// returning transparent black in that case.
func LogFromHex(hex string) color.RGBA {
	return errors.Log1(FromHex(hex))
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string, with alpha included only when the color is not fully opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// Packed returns the packed opaque display color of c,
// undoing any alpha premultiplication.
func Packed(c color.Color) cie.RGB {
	return cie.RGBFromColor(c)
}

// FromPacked returns the given packed display color as opaque RGBA.
func FromPacked(c cie.RGB) color.RGBA {
	return c.AsRGBA()
}

// ParsePacked parses a hex color string with [FromHex]
// and returns it as a packed display color, ignoring alpha.
func ParsePacked(hex string) (cie.RGB, error) {
	c, err := FromHex(hex)
	if err != nil {
		return cie.Black, err
	}
	return cie.NewRGB(c.R, c.G, c.B), nil
}
