// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"cogentcore.org/hct/colors/cam/hct"
)

// DefaultTones are the tones sampled by [ToneStops] when none are given.
var DefaultTones = []float64{0, 25, 50, 75, 100}

// newStop solves the given hue, chroma and tone into a stop at pos.
func newStop(pos, hue, chroma, tone float64) Stop {
	return Stop{
		Pos:   float32(pos),
		Color: hct.HCTToRGB(hue, chroma, tone).AsRGBA(),
		Hue:   hue, Chroma: chroma, Tone: tone,
	}
}

// HueStops samples the full hue circle at the given chroma and tone,
// every step degrees, from 0 up to and including 360 so that the
// result closes on itself. A step <= 0 gives 10 degrees.
func HueStops(chroma, tone, step float64) []Stop {
	if step <= 0 {
		step = 10
	}
	n := int(360 / step)
	stops := make([]Stop, 0, n+2)
	for i := 0; i <= n; i++ {
		hue := float64(i) * step
		stops = append(stops, newStop(hue/360, hue, chroma, tone))
	}
	if stops[len(stops)-1].Hue < 360 {
		stops = append(stops, newStop(1, 360, chroma, tone))
	}
	return stops
}

// ToneStops samples the given hue and chroma at the given tones,
// which must be in increasing order within [0, 100]; each stop is
// positioned at tone / 100. Nil tones gives [DefaultTones].
func ToneStops(hue, chroma float64, tones []float64) []Stop {
	if tones == nil {
		tones = DefaultTones
	}
	stops := make([]Stop, len(tones))
	for i, tone := range tones {
		stops[i] = newStop(tone/100, hue, chroma, tone)
	}
	return stops
}

// ChromaStops samples n evenly spaced chromas at the given hue and tone,
// from 0 up to [hct.MaxChroma] for that hue and tone. n < 2 gives 2.
func ChromaStops(hue, tone float64, n int) []Stop {
	n = max(n, 2)
	mc := hct.MaxChroma(hue, tone)
	stops := make([]Stop, n)
	for i := range n {
		pos := float64(i) / float64(n-1)
		stops[i] = newStop(pos, hue, pos*mc, tone)
	}
	return stops
}
