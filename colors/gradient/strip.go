// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image"

	"golang.org/x/image/draw"
)

// Strip renders the stops as a row of flat swatches, one per stop,
// scaled up to w by h with the given interpolator
// (e.g., [draw.NearestNeighbor] keeps hard swatch edges, and
// [draw.BiLinear] smooths between them).
func Strip(stops []Stop, w, h int, interp draw.Interpolator) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(stops) == 0 {
		return dst
	}
	src := image.NewRGBA(image.Rect(0, 0, len(stops), 1))
	for i, s := range stops {
		src.SetRGBA(i, 0, s.Color)
	}
	if interp == nil {
		interp = draw.NearestNeighbor
	}
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
