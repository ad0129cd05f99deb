// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient samples the HCT color space along hue, tone,
// and chroma sweeps, and renders the samples as images.
package gradient

import (
	"image/color"
	"strconv"

	"github.com/chewxy/math32"
)

// Stop represents a single stop in a gradient.
type Stop struct {

	// the position of the stop between 0 and 1
	Pos float32

	// the display color of the stop
	Color color.RGBA

	// requested hue, chroma, and tone that produced Color
	Hue, Chroma, Tone float64
}

// Spreads are the spread methods used when a gradient reaches
// its end but the object isn't yet fully filled.
type Spreads int32

const (
	// Pad indicates to have the final color of the gradient fill
	// the object beyond the end of the gradient.
	Pad Spreads = iota

	// Reflect indicates to have a gradient repeat in reverse order
	// (offset 1 to 0) to fully fill an object beyond the end of the gradient.
	Reflect

	// Repeat indicates to have a gradient continue in its original order
	// (offset 0 to 1) by jumping back to the start to fully fill an object beyond
	// the end of the gradient.
	Repeat
)

func (s Spreads) String() string {
	switch s {
	case Pad:
		return "pad"
	case Reflect:
		return "reflect"
	case Repeat:
		return "repeat"
	}
	return "Spreads(" + strconv.Itoa(int(s)) + ")"
}

// spreadPos maps pos onto [0, 1] according to the spread method.
func (s Spreads) spreadPos(pos float32) float32 {
	switch s {
	case Repeat:
		pos = math32.Mod(pos, 1)
		if pos < 0 {
			pos++
		}
	case Reflect:
		pos = math32.Mod(pos, 2)
		if pos < 0 {
			pos += 2
		}
		if pos > 1 {
			pos = 2 - pos
		}
	}
	return min(max(pos, 0), 1)
}

// ColorAt returns the color at the given position along the given
// stops, which must be sorted by position, using the given spread
// method. Between stops, colors are blended with blend.
func ColorAt(stops []Stop, pos float32, spread Spreads, blend BlendFunc) color.RGBA {
	d := len(stops)
	if d == 0 {
		return color.RGBA{}
	}
	pos = spread.spreadPos(pos)
	// advance to place where pos is greater than the indicated stop
	place := 0
	for place != d && pos > stops[place].Pos {
		place++
	}
	switch place {
	case 0:
		return stops[0].Color
	case d:
		return stops[d-1].Color
	}
	s1, s2 := stops[place-1], stops[place]
	if s2.Pos == s1.Pos {
		return s2.Color
	}
	tp := (pos - s1.Pos) / (s2.Pos - s1.Pos)
	return blend(100*(1-tp), s1.Color, s2.Color)
}
