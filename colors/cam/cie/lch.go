// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// LABToLCH converts L*a*b* into its polar L*C*h form,
// with the hue in degrees in [0, 360).
func LABToLCH(l, a, b float64) (lo, c, h float64) {
	lo = l
	c = math.Hypot(a, b)
	h = math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return
}

// LCHToLAB converts polar L*C*h, with the hue in degrees,
// into L*a*b*.
func LCHToLAB(l, c, h float64) (lo, a, b float64) {
	hr := h * math.Pi / 180
	return l, c * math.Cos(hr), c * math.Sin(hr)
}

// LCHToDisplay converts an L*C*h color relative to [WhiteD65] into
// the nearest display color, clamping each channel into [0, 255].
// The returned bool reports whether any channel needed clamping,
// meaning that the color lies outside of the sRGB gamut.
func LCHToDisplay(l, c, h float64) (RGB, bool) {
	x, y, z := LABToXYZ(LCHToLAB(l, c, h))
	return SRGBFromLinear100(XYZToSRGBLin(x, y, z))
}

// DisplayToLCH returns the L*C*h coordinates of the given display color.
func DisplayToLCH(c RGB) (l, ch, h float64) {
	rl, gl, bl := c.Linear()
	x, y, z := SRGBLinToXYZ(100*rl, 100*gl, 100*bl)
	return LABToLCH(XYZToLAB(x, y, z))
}
