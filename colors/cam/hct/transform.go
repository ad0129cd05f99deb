// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"image/color"

	"github.com/chewxy/math32"
)

// adjust converts c to HCT, applies f, and returns the result as RGBA.
func adjust(c color.Color, f func(h HCT) HCT) color.RGBA {
	return f(FromColor(c)).AsRGBA()
}

// toward returns amount signed so that it moves the tone of h
// away from the middle (away = true) or toward it.
func toward(h HCT, amount float32, away bool) float32 {
	if (h.Tone >= 50) == away {
		return amount
	}
	return -amount
}

// Lighten returns a color that is lighter by the
// given absolute HCT tone amount (0-100, ranges enforced)
func Lighten(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h HCT) HCT { return h.WithTone(h.Tone + amount) })
}

// Darken returns a color that is darker by the
// given absolute HCT tone amount (0-100, ranges enforced)
func Darken(c color.Color, amount float32) color.RGBA {
	return Lighten(c, -amount)
}

// Highlight returns a color that is lighter or darker by the given
// absolute HCT tone amount, making light colors (tone >= 50) darker
// and dark colors lighter. It is the opposite of [Samelight].
func Highlight(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h HCT) HCT { return h.WithTone(h.Tone + toward(h, amount, false)) })
}

// Samelight is the opposite of [Highlight]: light colors
// get lighter and dark colors get darker.
func Samelight(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h HCT) HCT { return h.WithTone(h.Tone + toward(h, amount, true)) })
}

// Saturate returns a color that is more saturated by the
// given absolute HCT chroma amount (0-max that depends
// on other params but is around 150, ranges enforced)
func Saturate(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h HCT) HCT { return h.WithChroma(h.Chroma + amount) })
}

// Desaturate is [Saturate] with the amount subtracted.
func Desaturate(c color.Color, amount float32) color.RGBA {
	return Saturate(c, -amount)
}

// Spin returns a color whose hue is rotated by the given
// number of degrees; the result hue wraps around 360.
func Spin(c color.Color, amount float32) color.RGBA {
	return adjust(c, func(h HCT) HCT { return h.WithHue(h.Hue + amount) })
}

// MinHueDistance returns the signed shortest rotation from hue a to hue b:
// positive means add to a to get to b, negative means subtract.
func MinHueDistance(a, b float32) float32 {
	d := math32.Mod(b-a, 360)
	switch {
	case d > 180:
		d -= 360
	case d < -180:
		d += 360
	}
	return d
}

// Blend returns a color that is the given percent blend between the first
// and second color; 10 = 10% of the first and 90% of the second, etc.
// Tone, chroma and alpha are mixed linearly. The hue moves along the
// shorter arc, weighted by chroma since the hue of a near gray is unreliable.
func Blend(pct float32, x, y color.Color) color.RGBA {
	hx := FromColor(x)
	hy := FromColor(y)
	px := math32.Min(math32.Max(pct, 0), 100) / 100
	py := 1 - px

	chroma := px*hx.Chroma + py*hy.Chroma
	hue := hx.Hue
	if chroma > 0 {
		hue += py * hy.Chroma / chroma * MinHueDistance(hx.Hue, hy.Hue)
	}
	hr := New(hue, chroma, px*hx.Tone+py*hy.Tone)
	hr.A = px*hx.A + py*hy.A
	return hr.AsRGBA()
}

// IsLight returns whether the given color is light
// (has an HCT tone greater than or equal to 50)
func IsLight(c color.Color) bool {
	return FromColor(c).Tone >= 50
}

// IsDark returns whether the given color is dark
// (has an HCT tone less than 50)
func IsDark(c color.Color) bool {
	return !IsLight(c)
}
