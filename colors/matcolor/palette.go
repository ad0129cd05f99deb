// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

import (
	"image/color"

	"cogentcore.org/hct/colors/cam/cam16"
	"cogentcore.org/hct/colors/cam/hct"
)

// StdTones are the tones that are typically displayed for a palette.
var StdTones = []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}

// Key contains the hue and chroma of each of the key palettes
// from which a full [Palette] is generated.
type Key struct {
	Primary        hct.HCT
	Secondary      hct.HCT
	Tertiary       hct.HCT
	Error          hct.HCT
	Neutral        hct.HCT
	NeutralVariant hct.HCT
}

// KeyFromPrimary returns a [Key] derived from the given primary color:
// secondary keeps its hue at low chroma, tertiary rotates the hue by 60
// degrees, neutrals are near gray versions of its hue, and error is red.
func KeyFromPrimary(primary color.Color) *Key {
	p := hct.FromColor(primary)
	hc := func(hue, chroma float32) hct.HCT {
		return hct.HCT{Hue: hue, Chroma: chroma, Tone: 40}
	}
	return &Key{
		Primary:        hc(p.Hue, max(p.Chroma, 48)),
		Secondary:      hc(p.Hue, 16),
		Tertiary:       hc(float32(cam16.SanitizeDegrees(float64(p.Hue)+60)), 24),
		Error:          hc(25, 84),
		Neutral:        hc(p.Hue, 4),
		NeutralVariant: hc(p.Hue, 8),
	}
}

// Palette contains the tonal palettes generated from a [Key].
type Palette struct {
	Primary        *Tones
	Secondary      *Tones
	Tertiary       *Tones
	Error          *Tones
	Neutral        *Tones
	NeutralVariant *Tones
}

// NewPalette returns a new [Palette] from the given key.
func NewPalette(k *Key) *Palette {
	tn := func(h hct.HCT) *Tones { return NewTonesHC(h.Hue, h.Chroma) }
	return &Palette{
		Primary:        tn(k.Primary),
		Secondary:      tn(k.Secondary),
		Tertiary:       tn(k.Tertiary),
		Error:          tn(k.Error),
		Neutral:        tn(k.Neutral),
		NeutralVariant: tn(k.NeutralVariant),
	}
}

// Named returns the tonal palettes in a fixed order with their names.
func (p *Palette) Named() []NamedTones {
	return []NamedTones{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"tertiary", p.Tertiary},
		{"error", p.Error},
		{"neutral", p.Neutral},
		{"neutral-variant", p.NeutralVariant},
	}
}

// NamedTones is a tonal palette with its role name.
type NamedTones struct {
	Name  string
	Tones *Tones
}
