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
	// MinRefineChroma is the chroma below which the Lab seed is
	// returned without any hue correction.
	MinRefineChroma = 2

	// MaxIterations bounds the hue correction loop.
	MaxIterations = 10

	// HueTolerance is the hue error in degrees at which
	// the correction loop stops.
	HueTolerance = 0.5

	// InitialStep is the fraction of the measured hue error
	// subtracted from the working hue on the first correction.
	InitialStep = 0.8

	// StepDecay multiplies the step after every correction.
	StepDecay = 0.8
)

// SolveResult is the outcome of [SolveDetail].
type SolveResult struct {

	// RGB is the solved display color.
	RGB cie.RGB

	// Iterations is the number of hue corrections applied to the seed.
	Iterations int

	// HueError is the signed CAM16 hue error of RGB relative to the
	// requested hue, in degrees within [-180, 180].
	HueError float64

	// Converged is whether |HueError| is within [HueTolerance].
	// It is also true when refinement was skipped for low chroma.
	Converged bool

	// Clipped is whether the last candidate had channels
	// clamped into the display gamut.
	Clipped bool
}

// Solve returns the display color that best matches the given hue,
// chroma and tone. Tone outside [0, 100] gives black, and negative
// chroma is treated as 0. See [SolveDetail].
func Solve(hue, chroma, tone float64) cie.RGB {
	return SolveDetail(hue, chroma, tone).RGB
}

// SolveDetail is [Solve] that also reports how the solution was reached.
//
// The candidate is seeded by reading (tone, chroma, hue) as CIE LCH
// coordinates. Unless chroma is below [MinRefineChroma], the CAM16 hue
// of the candidate is then measured and a damped fraction of the error
// is subtracted from the working LCH hue, for at most [MaxIterations]
// rounds. Channels that fall out of gamut are clamped, so tone is not
// preserved for out of gamut requests.
func SolveDetail(hue, chroma, tone float64) SolveResult {
	if tone < 0 || tone > 100 {
		return SolveResult{RGB: cie.Black}
	}
	chroma = max(chroma, 0)
	hue = cam16.SanitizeDegrees(hue)

	res := SolveResult{Converged: true}
	res.RGB, res.Clipped = cie.LCHToDisplay(tone, chroma, hue)
	if chroma < MinRefineChroma {
		return res
	}
	work := hue
	step := InitialStep
	for res.Iterations < MaxIterations {
		res.HueError = cam16.DiffDegrees(cam16.HueOf(res.RGB), hue)
		if math.Abs(res.HueError) < HueTolerance {
			return res
		}
		work = cam16.SanitizeDegrees(work - res.HueError*step)
		res.RGB, res.Clipped = cie.LCHToDisplay(tone, chroma, work)
		step *= StepDecay
		res.Iterations++
	}
	res.HueError = cam16.DiffDegrees(cam16.HueOf(res.RGB), hue)
	res.Converged = math.Abs(res.HueError) < HueTolerance
	return res
}
