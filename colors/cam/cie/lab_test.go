// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"testing"

	"cogentcore.org/hct/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestLAB(t *testing.T) {
	tolassert.Equal(t, 0.887904, LABCompress(0.7))
	tolassert.Equal(t, 0.1379544, LABCompress(0.000003))
	tolassert.Equal(t, 0.216, LABUncompress(0.6))

	l, a, b := XYZToLAB(41.24, 21.26, 1.93)
	tolassert.EqualTol(t, 53.2328818, l, 1e-6)
	tolassert.EqualTol(t, 80.1093095, a, 1e-6)
	tolassert.EqualTol(t, 67.2200683, b, 1e-6)

	x, y, z := LABToXYZ(28, 14, 36.2)
	tolassert.EqualTol(t, 6.42265708, x, 1e-6)
	tolassert.EqualTol(t, 5.45737833, y, 1e-6)
	tolassert.EqualTol(t, 0.84425956, z, 1e-6)
}

// TestLABColorful checks the L*a*b* transforms against go-colorful,
// which scales L to 0-1 and a, b by 1/100, with XYZ on a 0-1 scale.
func TestLABColorful(t *testing.T) {
	labs := [][3]float64{{28, 14, 36.2}, {50, -40, 20}, {5, 30, -60}, {97, 2, 5}, {62, 70, -10}}
	for _, lab := range labs {
		s := fmt.Sprint(lab)
		x, y, z := LABToXYZ(lab[0], lab[1], lab[2])
		cx, cy, cz := colorful.LabToXyz(lab[0]/100, lab[1]/100, lab[2]/100)
		tolassert.EqualTol(t, cx*100, x, 1e-4, s)
		tolassert.EqualTol(t, cy*100, y, 1e-4, s)
		tolassert.EqualTol(t, cz*100, z, 1e-4, s)

		l, a, b := XYZToLAB(x, y, z)
		cl, ca, cb := colorful.XyzToLab(cx, cy, cz)
		tolassert.EqualTol(t, cl*100, l, 1e-4, s)
		tolassert.EqualTol(t, ca*100, a, 1e-4, s)
		tolassert.EqualTol(t, cb*100, b, 1e-4, s)
	}
}

func TestTone(t *testing.T) {
	tolassert.EqualTol(t, 0.18418651851, ToneToY(50), 1e-10)
	tolassert.EqualTol(t, 0.00553528228, ToneToY(5), 1e-10)
	tolassert.EqualTol(t, 8/LABKappa, ToneToY(8), 1e-12)
	assert.Equal(t, 0.0, ToneToY(0))
	assert.Equal(t, 1.0, ToneToY(100))

	tolassert.EqualTol(t, 50, YToTone(0.18418651851244416), 1e-9)
	tolassert.EqualTol(t, 4.51648148148, YToTone(0.005), 1e-9)
	tolassert.EqualTol(t, 100, YToTone(1), 1e-9)
	assert.Equal(t, 0.0, YToTone(0))

	for tone := 0.0; tone <= 100; tone += 0.5 {
		tolassert.EqualTol(t, tone, YToTone(ToneToY(tone)), 1e-6, fmt.Sprint(tone))
	}
}

func TestLCH(t *testing.T) {
	l, c, h := LABToLCH(50, 0, -20)
	assert.Equal(t, 50.0, l)
	tolassert.EqualTol(t, 20, c, 1e-12)
	tolassert.EqualTol(t, 270, h, 1e-12)

	l, a, b := LCHToLAB(60, 30, 90)
	assert.Equal(t, 60.0, l)
	tolassert.EqualTol(t, 0, a, 1e-12)
	tolassert.EqualTol(t, 30, b, 1e-12)

	rgb, clipped := LCHToDisplay(50, 40, 120)
	assert.Equal(t, RGB(0x687f3a), rgb)
	assert.False(t, clipped)

	rgb, clipped = LCHToDisplay(50, 150, 300)
	assert.Equal(t, RGB(0x0052ff), rgb)
	assert.True(t, clipped)

	rgb, clipped = LCHToDisplay(53.23288, 104.54882, 39.99865)
	assert.Equal(t, RGB(0xff0000), rgb)
	assert.False(t, clipped)

	l, c, h = DisplayToLCH(0xff0000)
	tolassert.Equal(t, 53.2329, l)
	tolassert.EqualTol(t, 104.5488, c, 0.001)
	tolassert.EqualTol(t, 39.9986, h, 0.001)
}

func TestLCHToDisplayGray(t *testing.T) {
	for tone := 0.0; tone <= 100; tone += 0.25 {
		rgb, clipped := LCHToDisplay(tone, 0, 123)
		assert.False(t, clipped, "tone %g", tone)
		assert.True(t, rgb.IsGray(), "tone %g: %v", tone, rgb)
		assert.Equal(t, ToGamma(100*ToneToY(tone)), rgb.R(), "tone %g", tone)
	}
}
