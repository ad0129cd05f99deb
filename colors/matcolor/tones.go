// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matcolor provides tonal palettes: sets of colors sharing
// the hue and chroma of a key color at different HCT tones.
package matcolor

import (
	"image/color"
	"sync"

	"cogentcore.org/hct/colors/cam/hct"
)

// Tones contains cached color values for each tone
// of a key color. To get a tonal value, use [Tones.Tone].
// It is safe for concurrent use.
type Tones struct {

	// the key color used to generate these tones
	Key color.RGBA

	// hue and chroma of the key, shared by every tone
	hue, chroma float32

	mu sync.Mutex

	// the cached map of tonal color values
	tones map[int]color.RGBA
}

// NewTones returns a new set of [Tones] for the given color.
func NewTones(c color.Color) *Tones {
	h := hct.FromColor(c)
	return NewTonesHC(h.Hue, h.Chroma)
}

// NewTonesHC returns a new set of [Tones] with the given hue and chroma.
// The key color is the tone 40 color, as in material palettes.
func NewTonesHC(hue, chroma float32) *Tones {
	t := &Tones{hue: hue, chroma: chroma, tones: map[int]color.RGBA{}}
	t.Key = t.Tone(40)
	return t
}

// Tone returns the color at the given tone on a scale of 0 to 100
// (clamped). The chroma is limited to what can be displayed at that
// tone, so the tone itself is kept. It uses the cached value if it
// exists, and caches the value if it is not already.
func (t *Tones) Tone(tone int) color.RGBA {
	tone = min(max(tone, 0), 100)
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.tones[tone]; ok {
		return c
	}
	c := hct.MatchChroma(float64(t.hue), float64(t.chroma), float64(tone)).AsRGBA()
	t.tones[tone] = c
	return c
}

// Hue returns the hue shared by all tones.
func (t *Tones) Hue() float32 { return t.hue }

// Chroma returns the chroma requested for all tones.
func (t *Tones) Chroma() float32 { return t.chroma }
