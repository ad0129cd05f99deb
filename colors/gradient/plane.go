// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image"

	"cogentcore.org/hct/colors/cam/hct"
	"github.com/kovidgoyal/go-parallel"
)

// Plane renders the chroma / tone plane for the given hue: tone runs
// from 100 at the top row to 0 at the bottom, and chroma from 0 at the
// left column to maxChroma at the right. If gamutOnly is set, pixels
// whose chroma exceeds [hct.MaxChroma] for their tone are left
// transparent; otherwise they show the clipped color. Rows are solved
// in parallel.
func Plane(hue, maxChroma float64, w, h int, gamutOnly bool) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img, nil
	}
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			tone := 100 * (1 - frac(y, h))
			limitChroma := hct.MaxChroma(hue, tone)
			for x := range w {
				chroma := maxChroma * frac(x, w)
				if gamutOnly && chroma > limitChroma {
					continue
				}
				img.SetRGBA(x, y, hct.HCTToRGB(hue, chroma, tone).AsRGBA())
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, h); err != nil {
		return nil, err
	}
	return img, nil
}

// frac returns i / (n - 1), or 0 for n = 1.
func frac(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
