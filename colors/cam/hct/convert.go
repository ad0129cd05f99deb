// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"math"

	"cogentcore.org/hct/colors/cam/cam16"
	"cogentcore.org/hct/colors/cam/cie"
)

const (
	// ProbeChroma is the chroma requested by [MaxChroma] to find
	// the gamut boundary; no display color reaches it.
	ProbeChroma = 150

	// maxChromaSteps is the number of bisection steps in [MaxChroma]
	// and [MatchChroma].
	maxChromaSteps = 16

	// verifyMinChroma is the chroma below which [MaxChroma] stops
	// backing off, and verifyBackoff the factor it backs off by.
	verifyMinChroma = 10
	verifyBackoff   = 0.98

	// stabilizeMinTone and stabilizeMaxTone bound the exclusive
	// tone range in which hue stabilization is applied.
	stabilizeMinTone = 2
	stabilizeMaxTone = 98
)

// RGBToHCT returns the hue, chroma and tone of the given display color.
// Hue and chroma are CAM16 correlates under standard viewing conditions;
// tone is L* computed from the relative luminance of c.
func RGBToHCT(c cie.RGB) (hue, chroma, tone float64) {
	cam := cam16.FromRGB(c)
	return cam.Hue, cam.Chroma, cie.YToTone(cie.YFromRGB(c))
}

// HCTToRGB returns the display color for the given hue, chroma and tone,
// using [Solve] followed by [Stabilize] when the chroma is at least
// [MinRefineChroma] and the tone is strictly between 2 and 98.
func HCTToRGB(hue, chroma, tone float64) cie.RGB {
	c := Solve(hue, chroma, tone)
	if chroma >= MinRefineChroma && inStabilizeRange(tone) {
		c = Stabilize(c, hue)
	}
	return c
}

// StabilizeHue applies [Stabilize] to c when its tone is
// strictly between 2 and 98, and returns c unchanged otherwise.
func StabilizeHue(c cie.RGB, targetHue float64) cie.RGB {
	if !inStabilizeRange(cie.YToTone(cie.YFromRGB(c))) {
		return c
	}
	return Stabilize(c, targetHue)
}

// MaxChroma returns the largest chroma that can be displayed at the
// given hue and tone. It bisects for the largest requested chroma that
// solves without clamping, then backs off until [HCTToRGB] of that
// request reads back within 1 degree of hue and 1 of tone, and reports
// the chroma of the result. Tone at or beyond 0 or 100 gives 0.
// Below [verifyMinChroma] the hue of an 8-bit color is too coarse to
// verify, so small results are not backed off.
func MaxChroma(hue, tone float64) float64 {
	req := maxRequest(hue, tone)
	if req == 0 {
		return 0
	}
	return min(cam16.FromRGB(Solve(hue, req, tone)).Chroma, req)
}

// MatchChroma returns the display color at the given hue and tone whose
// CAM16 chroma is closest to the given chroma, which is capped at
// [MaxChroma]. Unlike [HCTToRGB], whose chroma seeds the solver in L*C*h
// space, it bisects on the chroma of the result, so the hue, chroma and
// tone of a color read back by [RGBToHCT] solve to that same color or
// one next to it.
func MatchChroma(hue, chroma, tone float64) cie.RGB {
	if tone <= 0 || tone >= 100 || chroma <= 0 {
		return HCTToRGB(hue, 0, tone)
	}
	top := maxRequest(hue, tone)
	best := HCTToRGB(hue, top, tone)
	if cam16.FromRGB(best).Chroma <= chroma {
		return best
	}
	lo, hi := 0.0, top
	for range maxChromaSteps {
		mid := (lo + hi) / 2
		if cam16.FromRGB(HCTToRGB(hue, mid, tone)).Chroma < chroma {
			lo = mid
		} else {
			hi = mid
		}
	}
	a, b := HCTToRGB(hue, lo, tone), HCTToRGB(hue, hi, tone)
	if math.Abs(cam16.FromRGB(a).Chroma-chroma) <= math.Abs(cam16.FromRGB(b).Chroma-chroma) {
		return a
	}
	return b
}

// maxRequest returns the largest requested chroma for [Solve] at the
// given hue and tone that stays in gamut and round trips through
// [HCTToRGB] and [RGBToHCT].
func maxRequest(hue, tone float64) float64 {
	if tone <= 0 || tone >= 100 {
		return 0
	}
	req := float64(ProbeChroma)
	if SolveDetail(hue, ProbeChroma, tone).Clipped {
		lo, hi := 0.0, float64(ProbeChroma)
		for range maxChromaSteps {
			mid := (lo + hi) / 2
			if SolveDetail(hue, mid, tone).Clipped {
				hi = mid
			} else {
				lo = mid
			}
		}
		req = lo
	}
	for req > verifyMinChroma && !roundTrips(hue, req, tone) {
		req *= verifyBackoff
	}
	return req
}

// roundTrips returns whether [HCTToRGB] of the given values reads back
// within 1 degree of hue and 1 of tone.
func roundTrips(hue, chroma, tone float64) bool {
	h, _, t := RGBToHCT(HCTToRGB(hue, chroma, tone))
	return math.Abs(cam16.DiffDegrees(h, hue)) <= 1 && math.Abs(t-tone) <= 1
}

func inStabilizeRange(tone float64) bool {
	return tone > stabilizeMinTone && tone < stabilizeMaxTone
}
