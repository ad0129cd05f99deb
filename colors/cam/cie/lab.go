// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	// LABEpsilon is the CIE ε = 216/24389 threshold between the
	// linear and cube-root segments of the L*a*b* transform.
	LABEpsilon = 216.0 / 24389.0

	// LABKappa is the CIE κ = 24389/27 slope of the linear segment.
	LABKappa = 24389.0 / 27.0
)

// LABCompress is the forward L*a*b* nonlinearity applied to
// white-point normalized XYZ components.
func LABCompress(t float64) float64 {
	if t > LABEpsilon {
		return math.Cbrt(t)
	}
	return (LABKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > LABEpsilon {
		return ft3
	}
	return (116*ft - 16) / LABKappa
}

// XYZToLAB converts XYZ on a Y = 0-100 scale into CIE L*a*b*
// relative to [WhiteD65].
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / WhiteD65[0])
	fy := LABCompress(y / WhiteD65[1])
	fz := LABCompress(z / WhiteD65[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts CIE L*a*b* relative to [WhiteD65] into XYZ
// on a Y = 0-100 scale. Y depends only on L* and matches [ToneToY].
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65[0]
	y = ToneToY(l) * WhiteD65[1]
	z = LABUncompress(fz) * WhiteD65[2]
	return
}
