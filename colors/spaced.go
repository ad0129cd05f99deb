// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/hct/colors/cam/hct"
)

// spacedHues are the hues of successive categories:
// blue, red, green, yellow, violet, aqua, orange, blueviolet
var spacedHues = []float32{255, 25, 150, 105, 340, 210, 60, 300}

// spacedRounds are the tone and chroma of each full round of hues.
var spacedRounds = []struct{ tone, chroma float32 }{
	{65, 90}, {80, 90}, {45, 90}, {65, 20}, {80, 20},
}

// Spaced returns a maximally widely spaced sequence of colors
// for progressive values of the index, using the HCT space.
// This is useful, for example, for assigning colors in graphs.
// The sequence is tuned for a light background; see [SpacedDark].
func Spaced(idx int) color.RGBA {
	return spaced(idx, []float32{0, -10, 0, 5, 0, 0, 5, 0})
}

// SpacedDark is [Spaced] tuned for a dark background.
func SpacedDark(idx int) color.RGBA {
	return spaced(idx, []float32{0, -10, 0, 10, 0, 0, 5, 0})
}

func spaced(idx int, toffs []float32) color.RGBA {
	if idx < 0 {
		idx = -idx
	}
	n := len(spacedHues)
	hi := idx % n
	rd := spacedRounds[(idx/n)%len(spacedRounds)]
	return hct.New(spacedHues[hi], rd.chroma, rd.tone+toffs[hi]).AsRGBA()
}
