// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// WhiteD65 is the D65 standard illuminant white point in XYZ, Y = 100.
var WhiteD65 = [3]float64{95.047, 100, 108.883}

// SRGBLinToXYZ converts linear sRGB into XYZ. The scale of the
// output matches the input (0-1 in gives Y 0-1, 0-100 gives Y 0-100).
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ into linear sRGB, using the same
// scale for input and output. Values outside the gamut are
// returned as is, possibly negative or above the white level.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	rl = 3.2413774792388685*x - 1.5376652402851851*y - 0.49885366846268053*z
	gl = -0.9691452513005321*x + 1.8758853451067872*y + 0.04156585616912061*z
	bl = 0.05562093689691305*x - 0.20395524564742123*y + 1.0571799111220335*z
	return
}

// YFromRGB returns the relative luminance Y of the given
// display color on a 0-1 scale.
func YFromRGB(c RGB) float64 {
	_, y, _ := SRGBLinToXYZ(c.Linear())
	return y
}
