// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2022 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License")

// Package cam16 provides the forward CAM16 color appearance model used by
// the HCT engine: display color to hue, chroma and lightness under fixed
// default viewing conditions.
package cam16

import (
	"fmt"
	"math"

	"cogentcore.org/hct/colors/cam/cie"
)

// CAM represents a point in the cam16 color model: the perceived hue,
// chroma and lightness of a color under some viewing conditions.
type CAM struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float64

	// chroma (C) is the colorfulness or saturation of the color; greyscale colors have no chroma, and fully saturated ones have high chroma
	Chroma float64

	// lightness (J) is the brightness relative to a reference white, which varies as a function of chroma and hue
	Lightness float64
}

func (cam CAM) String() string {
	return fmt.Sprintf("cam16(%g, %g, %g)", cam.Hue, cam.Chroma, cam.Lightness)
}

// XYZToLMS converts XYZ to the CAM16 "cone" responses (the M16 matrix).
func XYZToLMS(x, y, z float64) (l, m, s float64) {
	l = 0.401288*x + 0.650173*y - 0.051461*z
	m = -0.250268*x + 1.204414*y + 0.045854*z
	s = -0.002079*x + 0.048952*y + 0.953127*z
	return
}

// Compress is the CAM16 post-adaptation response compression:
// 400 · sign(v) · |v|^0.42 / (|v|^0.42 + 27.13).
func Compress(v float64) float64 {
	if v == 0 {
		return 0
	}
	af := math.Pow(math.Abs(v), 0.42)
	return math.Copysign(400*af/(af+27.13), v)
}

// Opponents combines compressed cone responses into the
// red-green (a) and yellow-blue (b) opponent axes.
func Opponents(rA, gA, bA float64) (a, b float64) {
	a = (11*rA - 12*gA + bA) / 11
	b = (rA + gA - 2*bA) / 9
	return
}

// FromRGB returns the CAM values of the given display color
// under standard viewing conditions.
func FromRGB(c cie.RGB) CAM {
	rl, gl, bl := c.Linear()
	x, y, z := cie.SRGBLinToXYZ(100*rl, 100*gl, 100*bl)
	return FromXYZView(x, y, z, StdView)
}

// FromXYZView returns CAM values from the given XYZ color coordinate,
// under the given viewing conditions. Requires 100-base XYZ coordinates.
func FromXYZView(x, y, z float64, vw *View) CAM {
	rA, gA, bA := vw.Adapt(XYZToLMS(x, y, z))
	a, b := Opponents(rA, gA, bA)
	hue := SanitizeDegrees(math.Atan2(b, a) * 180 / math.Pi)

	// achromatic response to color
	u := (20*rA + 20*gA + 21*bA) / 20
	p2 := (40*rA + 20*gA + bA) / 20
	ac := p2 * vw.NBB

	// CAM16 lightness
	j := 0.0
	if ac > 0 {
		j = 100 * math.Pow(ac/vw.AW, vw.C*vw.Z)
	}

	huePrime := hue
	if hue < 20.14 {
		huePrime += 360
	}
	eHue := 0.25 * (math.Cos(huePrime*math.Pi/180+2) + 3.8)
	p1 := 50000.0 / 13 * eHue * vw.NC * vw.NCB
	t := p1 * math.Hypot(a, b) / (u + 0.305)
	alpha := math.Pow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.BgYToWhiteY), 0.73)

	return CAM{Hue: hue, Chroma: alpha * math.Sqrt(j/100), Lightness: j}
}

// HueOf returns only the CAM16 hue of the given display color under
// standard viewing conditions, skipping the lightness and chroma terms.
func HueOf(c cie.RGB) float64 {
	rl, gl, bl := c.Linear()
	rA, gA, bA := StdView.Adapt(XYZToLMS(cie.SRGBLinToXYZ(100*rl, 100*gl, 100*bl)))
	a, b := Opponents(rA, gA, bA)
	return SanitizeDegrees(math.Atan2(b, a) * 180 / math.Pi)
}
