// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// SRGBToLinearComp converts an sRGB gamma-encoded component
// on a 0-1 scale into a linear-light value on a 0-1 scale.
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear-light value on a 0-1 scale
// into an sRGB gamma-encoded component on a 0-1 scale.
// The result is not clamped.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return lin * 12.92
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// ToLinear converts an 8-bit sRGB channel into
// a linear-light value on a 0-1 scale.
func ToLinear(channel uint8) float64 {
	return SRGBToLinearComp(float64(channel) / 255)
}

// ToGamma converts a linear-light value on a 0-100 scale into an
// 8-bit sRGB channel. The result is rounded and clamped to [0, 255].
func ToGamma(linear float64) uint8 {
	c, _ := gammaChannel(linear)
	return c
}

// gammaChannel is [ToGamma] that also reports whether
// the rounded value had to be clamped into [0, 255].
func gammaChannel(linear float64) (uint8, bool) {
	v := math.Floor(SRGBFromLinearComp(linear/100)*255 + 0.5)
	switch {
	case v < 0:
		return 0, true
	case v > 255:
		return 255, true
	}
	return uint8(v), false
}

// SRGBFromLinear100 encodes linear-light values on a 0-100 scale
// into a packed [RGB], reporting whether any channel was clamped.
func SRGBFromLinear100(r, g, b float64) (RGB, bool) {
	rc, rclip := gammaChannel(r)
	gc, gclip := gammaChannel(g)
	bc, bclip := gammaChannel(b)
	return NewRGB(rc, gc, bc), rclip || gclip || bclip
}
