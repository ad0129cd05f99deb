// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"math"

	"cogentcore.org/hct/colors/cam/cam16"
	"cogentcore.org/hct/colors/cam/cie"
)

// Stabilize returns the color within one unit per channel of c
// (c itself included) whose CAM16 hue is closest to targetHue.
// Neighbors are scanned with red outermost and blue innermost,
// each from -1 to +1, and only a strictly smaller error replaces
// the current best, so the result is deterministic.
func Stabilize(c cie.RGB, targetHue float64) cie.RGB {
	return nearest(c, func(n cie.RGB) float64 { return hueError(n, targetHue) })
}

// nearest returns the color within one unit per channel of c
// with the smallest err, in the scan order of [Stabilize].
func nearest(c cie.RGB, err func(n cie.RGB) float64) cie.RGB {
	best := c
	bestErr := err(c)
	r, g, b := int(c.R()), int(c.G()), int(c.B())
	for dr := -1; dr <= 1; dr++ {
		for dg := -1; dg <= 1; dg++ {
			for db := -1; db <= 1; db++ {
				if dr == 0 && dg == 0 && db == 0 {
					continue
				}
				nr, ng, nb := r+dr, g+dg, b+db
				if !inByte(nr) || !inByte(ng) || !inByte(nb) {
					continue
				}
				n := cie.NewRGB(uint8(nr), uint8(ng), uint8(nb))
				if e := err(n); e < bestErr {
					best, bestErr = n, e
				}
			}
		}
	}
	return best
}

func hueError(c cie.RGB, targetHue float64) float64 {
	return math.Abs(cam16.DiffDegrees(cam16.HueOf(c), targetHue))
}

func inByte(v int) bool {
	return v >= 0 && v <= 255
}
