// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image"
	"image/color"
)

// Linear is an [image.Image] that renders a set of stops along
// one axis of its bounds.
type Linear struct {

	// the stops, sorted by position
	Stops []Stop

	// what to do beyond the first and last stop
	Spread Spreads

	// how to mix adjacent stops; nil means [BlendHCT]
	Blend BlendFunc

	// the bounds of the image
	Rect image.Rectangle

	// whether the gradient runs top to bottom instead of left to right
	Vertical bool
}

var _ image.Image = &Linear{}

// NewLinear returns a new horizontal [Linear] of the given size.
func NewLinear(stops []Stop, w, h int) *Linear {
	return &Linear{Stops: stops, Rect: image.Rect(0, 0, w, h)}
}

func (l *Linear) ColorModel() color.Model { return color.RGBAModel }

func (l *Linear) Bounds() image.Rectangle { return l.Rect }

// At returns the color at the given pixel, sampled at its center.
func (l *Linear) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(l.Rect)) {
		return color.RGBA{}
	}
	blend := l.Blend
	if blend == nil {
		blend = BlendHCT
	}
	pos := (float32(x-l.Rect.Min.X) + 0.5) / float32(l.Rect.Dx())
	if l.Vertical {
		pos = (float32(y-l.Rect.Min.Y) + 0.5) / float32(l.Rect.Dy())
	}
	return ColorAt(l.Stops, pos, l.Spread, blend)
}
