// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hct provides the HCT (hue, chroma, tone) color space: conversion
// from display colors, a gamut-mapping solver for the inverse direction,
// and a float32 [HCT] value type implementing [color.Color].
package hct

import (
	"fmt"
	"image/color"

	"cogentcore.org/hct/colors/cam/cie"
	"github.com/chewxy/math32"
)

// HCT, hue, chroma, and tone. A color system that provides a perceptually
// accurate color measurement system that can also accurately render what
// colors will appear as in different lighting environments.
type HCT struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees (0-360)
	Hue float32 `min:"0" max:"360"`

	// chroma (C) is the colorfulness or saturation of the color; greyscale colors have no chroma, and fully saturated ones have high chroma. The maximum varies as a function of hue and tone, but 150 is an upper bound.
	Chroma float32 `min:"0" max:"150"`

	// tone is the L* component from the LAB (L*a*b*) color system, which is linear in human perception of lightness
	Tone float32 `min:"0" max:"100"`

	// sRGB standard gamma-corrected 0-1 normalized RGB representation of the color. Critically, components are not premultiplied by alpha.
	R, G, B, A float32
}

// New returns a new HCT representation for given parameters:
// hue = 0..360
// chroma = 0..? depends on other params
// tone = 0..100 (clamped)
// The hue, chroma and tone of the result are those of the display
// color found by [MatchChroma], so chroma may be lower than requested.
func New(hue, chroma, tone float32) HCT {
	tone = min(max(tone, 0), 100)
	return FromRGB(MatchChroma(float64(hue), float64(chroma), float64(tone)))
}

// FromRGB returns the HCT representation of the given packed display color.
func FromRGB(c cie.RGB) HCT {
	h, ch, t := RGBToHCT(c)
	return HCT{
		Hue: float32(h), Chroma: float32(ch), Tone: float32(t),
		R: float32(c.R()) / 255, G: float32(c.G()) / 255, B: float32(c.B()) / 255, A: 1,
	}
}

// FromColor constructs a new HCT color from a standard [color.Color].
// A nil color gives transparent black.
func FromColor(c color.Color) HCT {
	if c == nil {
		h := FromRGB(cie.Black)
		h.A = 0
		return h
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	h := FromRGB(cie.NewRGB(n.R, n.G, n.B))
	h.A = float32(n.A) / 255
	return h
}

// Model is the standard [color.Model] that converts colors to HCT.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HCT); ok {
		return h
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface.
// Performs the premultiplication of the RGB components by alpha at this point.
func (h HCT) RGBA() (r, g, b, a uint32) {
	r = uint32(h.R*h.A*65535.0 + 0.5)
	g = uint32(h.G*h.A*65535.0 + 0.5)
	b = uint32(h.B*h.A*65535.0 + 0.5)
	a = uint32(h.A*65535.0 + 0.5)
	return
}

// AsRGBA returns a standard color.RGBA type
func (h HCT) AsRGBA() color.RGBA {
	return color.RGBA{uint8(h.R*h.A*255.0 + 0.5), uint8(h.G*h.A*255.0 + 0.5), uint8(h.B*h.A*255.0 + 0.5), uint8(h.A*255.0 + 0.5)}
}

// Packed returns the opaque packed display color of h.
func (h HCT) Packed() cie.RGB {
	return cie.NewRGB(uint8(h.R*255+0.5), uint8(h.G*255+0.5), uint8(h.B*255+0.5))
}

// SetHue sets the hue of this color. Chroma may decrease because chroma has a
// different maximum for any given hue and tone.
// 0 <= hue < 360; invalid values are corrected.
func (h *HCT) SetHue(hue float32) {
	*h = h.WithHue(hue)
}

// WithHue is like [HCT.SetHue] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithHue(hue float32) HCT {
	hue = math32.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return h.with(hue, h.Chroma, h.Tone)
}

// SetChroma sets the chroma of this color (0 to max that depends on other params),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetChroma(chroma float32) {
	*h = h.WithChroma(chroma)
}

// WithChroma is like [HCT.SetChroma] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithChroma(chroma float32) HCT {
	return h.with(h.Hue, math32.Max(chroma, 0), h.Tone)
}

// SetTone sets the tone of this color (0 < tone < 100),
// while keeping the sRGB representation within its gamut,
// which may cause the chroma to decrease until it is inside the gamut.
func (h *HCT) SetTone(tone float32) {
	*h = h.WithTone(tone)
}

// WithTone is like [HCT.SetTone] except it returns a new color
// instead of setting the existing one.
func (h HCT) WithTone(tone float32) HCT {
	return h.with(h.Hue, h.Chroma, tone)
}

// with solves for the given values, keeping the alpha of h.
// Values equal to those of h give h itself.
func (h HCT) with(hue, chroma, tone float32) HCT {
	if hue == h.Hue && chroma == h.Chroma && tone == h.Tone {
		return h
	}
	n := New(hue, chroma, tone)
	n.A = h.A
	return n
}

func (h HCT) String() string {
	return fmt.Sprintf("hct(%g, %g, %g)", h.Hue, h.Chroma, h.Tone)
}
