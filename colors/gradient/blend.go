// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image/color"

	"cogentcore.org/hct/colors"
	"cogentcore.org/hct/colors/cam/hct"
)

// BlendFunc returns the given percent blend between two colors;
// 10 = 10% of the first and 90% of the second, etc.
type BlendFunc func(pct float32, x, y color.Color) color.RGBA

var (
	// BlendRGB blends the gamma-encoded RGB components directly.
	BlendRGB BlendFunc = blendRGB

	// BlendHCT blends in the HCT space, keeping perceived
	// lightness and colorfulness even across the sweep.
	BlendHCT BlendFunc = hct.Blend
)

func blendRGB(pct float32, x, y color.Color) color.RGBA {
	fx := min(max(pct, 0), 100) / 100
	fy := 1 - fx
	cx := colors.AsRGBA(x)
	cy := colors.AsRGBA(y)
	mix := func(a, b uint8) uint8 {
		return uint8(fx*float32(a) + fy*float32(b) + 0.5)
	}
	return color.RGBA{mix(cx.R, cy.R), mix(cx.G, cy.G), mix(cx.B, cy.B), mix(cx.A, cy.A)}
}
