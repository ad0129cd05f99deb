// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hct

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"cogentcore.org/hct/colors/cam/cam16"
	"cogentcore.org/hct/colors/cam/cie"
	"github.com/stretchr/testify/assert"
)

func TestSolveAchromatic(t *testing.T) {
	for _, hue := range []float64{0, 37, 200, 359.5} {
		for i := 0; i <= 400; i++ {
			tone := float64(i) / 4
			c := HCTToRGB(hue, 0, tone)
			ts := fmt.Sprintf("hue %g tone %g: %v", hue, tone, c)
			assert.True(t, c.IsGray(), ts)
			assert.Equal(t, cie.ToGamma(cie.ToneToY(tone)*100), c.R(), ts)
		}
		assert.Equal(t, cie.Black, HCTToRGB(hue, 0, 0))
		assert.Equal(t, cie.White, HCTToRGB(hue, 0, 100))
	}
}

func TestSolveDegenerate(t *testing.T) {
	assert.Equal(t, cie.Black, Solve(10, 50, -1))
	assert.Equal(t, cie.Black, Solve(10, 50, 100.5))
	assert.Equal(t, cie.Black, HCTToRGB(10, 50, -0.01))
	assert.Equal(t, SolveResult{RGB: cie.Black}, SolveDetail(10, 50, 101))

	assert.Equal(t, Solve(120, 0, 50), Solve(120, -5, 50))
	assert.Equal(t, Solve(10, 40, 60), Solve(370, 40, 60))
	assert.Equal(t, Solve(350, 40, 60), Solve(-10, 40, 60))

	res := SolveDetail(37, 1.5, 50)
	assert.Equal(t, 0, res.Iterations)
	assert.True(t, res.Converged)
	seed, clipped := cie.LCHToDisplay(50, 1.5, 37)
	assert.Equal(t, seed, res.RGB)
	assert.Equal(t, clipped, res.Clipped)
}

func TestSolveConverge(t *testing.T) {
	for _, hue := range []float64{0, 45, 90, 180, 225, 315} {
		res := SolveDetail(hue, 80, 50)
		hs := fmt.Sprintf("hue %g: %+v", hue, res)
		assert.True(t, res.Converged, hs)
		assert.LessOrEqual(t, res.Iterations, MaxIterations, hs)
		assert.Less(t, math.Abs(res.HueError), HueTolerance, hs)
		assert.InDelta(t, res.HueError, cam16.DiffDegrees(cam16.HueOf(res.RGB), hue), 1e-9, hs)
	}
	// near the cusps the damped loop runs out of iterations
	// before reaching the tolerance
	for _, hue := range []float64{135, 270} {
		res := SolveDetail(hue, 80, 50)
		hs := fmt.Sprintf("hue %g: %+v", hue, res)
		assert.LessOrEqual(t, res.Iterations, MaxIterations, hs)
		assert.Less(t, math.Abs(res.HueError), 3.0, hs)
	}

	res := SolveDetail(0, 80, 50)
	assert.True(t, res.Clipped)
	assert.Equal(t, 1, res.Iterations)
}

func TestSolveDeterministic(t *testing.T) {
	for _, hct := range [][3]float64{{240, 50, 30}, {135, 80, 50}, {17.25, 120, 88.5}, {300, 3, 2.5}} {
		a := SolveDetail(hct[0], hct[1], hct[2])
		b := SolveDetail(hct[0], hct[1], hct[2])
		assert.Equal(t, a, b)
		assert.Equal(t, HCTToRGB(hct[0], hct[1], hct[2]), HCTToRGB(hct[0], hct[1], hct[2]))
	}
}

func TestStabilize(t *testing.T) {
	for _, c := range []cie.RGB{0x00577d, 0x6e8000, 0x123456, 0xff0000, 0x000000, 0xffffff, 0x00ff01} {
		for _, hue := range []float64{0, 90, 240, 359} {
			s := Stabilize(c, hue)
			cs := fmt.Sprintf("%v %g -> %v", c, hue, s)
			assert.LessOrEqual(t, hueError(s, hue), hueError(c, hue), cs)
			assert.LessOrEqual(t, absDiff(s.R(), c.R()), 1, cs)
			assert.LessOrEqual(t, absDiff(s.G(), c.G()), 1, cs)
			assert.LessOrEqual(t, absDiff(s.B(), c.B()), 1, cs)
		}
	}
	// already the best in its neighborhood
	assert.Equal(t, cie.RGB(0x00577d), Stabilize(0x00577d, 240))
}

func TestStabilizeTies(t *testing.T) {
	c := cie.RGB(0x808080)
	// zero error for the given colors and 1 for every other one
	ties := func(win ...cie.RGB) func(n cie.RGB) float64 {
		return func(n cie.RGB) float64 {
			if slices.Contains(win, n) {
				return 0
			}
			return 1
		}
	}
	// red is scanned outermost, so -1 red comes first
	assert.Equal(t, cie.RGB(0x7f8081), nearest(c, ties(0x81807f, 0x808181, 0x7f8081)))
	// then green, then blue
	assert.Equal(t, cie.RGB(0x807f81), nearest(c, ties(0x80817f, 0x807f81)))
	assert.Equal(t, cie.RGB(0x80807f), nearest(c, ties(0x808081, 0x80807f)))
	assert.Equal(t, cie.RGB(0x7f7f7f), nearest(c, ties(0x818181, 0x7f7f7f)))
	// c wins every tie
	assert.Equal(t, c, nearest(c, ties(0x808080, 0x7f7f7f)))
	assert.Equal(t, c, nearest(c, func(cie.RGB) float64 { return 0.5 }))
	// neighbors beyond the byte range are skipped
	others := func(c cie.RGB) func(n cie.RGB) float64 {
		return func(n cie.RGB) float64 {
			if n == c {
				return 1
			}
			return 0
		}
	}
	assert.Equal(t, cie.RGB(0x000001), nearest(cie.Black, others(cie.Black)))
	assert.Equal(t, cie.RGB(0xfefefe), nearest(cie.White, others(cie.White)))
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func BenchmarkSolve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Solve(float64(i%360), 80, 50)
	}
}
