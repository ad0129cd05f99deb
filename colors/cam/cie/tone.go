// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// YToTone converts relative luminance Y on a 0-1 scale into
// perceptual tone (CIE L*) on a 0-100 scale. Luminance at or
// below [LABEpsilon] uses the linear segment near black.
func YToTone(y float64) float64 {
	if y <= LABEpsilon {
		return LABKappa * y
	}
	return 116*math.Cbrt(y) - 16
}

// ToneToY converts perceptual tone on a 0-100 scale into relative
// luminance Y on a 0-1 scale. Tones at or below 8 use the linear
// segment near black. It is the inverse of [YToTone] up to
// rounding at the segment boundary.
func ToneToY(tone float64) float64 {
	if tone <= 8 {
		return tone / LABKappa
	}
	f := (tone + 16) / 116
	return f * f * f
}
