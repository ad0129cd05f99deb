// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import "math"

// SanitizeDegrees ensures that the given angle in degrees is in [0, 360).
func SanitizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DiffDegrees returns the signed difference a - b in degrees,
// wrapped into [-180, 180].
func DiffDegrees(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

// InCyclicOrder returns whether b is reached before c when
// going counterclockwise (increasing degrees) from a.
func InCyclicOrder(a, b, c float64) bool {
	deltaAB := SanitizeDegrees(b - a)
	deltaAC := SanitizeDegrees(c - a)
	return deltaAB < deltaAC
}
