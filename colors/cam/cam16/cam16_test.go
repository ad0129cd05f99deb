// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"testing"

	"cogentcore.org/hct/base/tolassert"
	"cogentcore.org/hct/colors/cam/cie"
	"github.com/stretchr/testify/assert"
)

func TestView(t *testing.T) {
	vw := StdView
	tolassert.Equal(t, 11.725676537, vw.AdaptingLuminance)
	tolassert.Equal(t, 50.000000000, vw.BgLuminance)
	tolassert.Equal(t, 2.000000000, vw.Surround)
	tolassert.Equal(t, 0.184186503, vw.BgYToWhiteY)
	tolassert.Equal(t, 29.981000900, vw.AW)
	tolassert.Equal(t, 1.016919255, vw.NBB)
	tolassert.Equal(t, 1.016919255, vw.NCB)
	tolassert.Equal(t, 0.689999998, vw.C)
	tolassert.Equal(t, 1.000000000, vw.NC)
	tolassert.Equal(t, 0.388481468, vw.FL)
	tolassert.Equal(t, 0.789482653, vw.FLRoot)
	tolassert.Equal(t, 1.909169555, vw.Z)

	tolassert.Equal(t, 1.021177769, vw.RGBD[0])
	tolassert.Equal(t, 0.986307740, vw.RGBD[1])
	tolassert.Equal(t, 0.933960497, vw.RGBD[2])

	nvw := *vw
	nvw.Surround = 0.5
	nvw.Update()
	tolassert.Equal(t, 0.55749995, nvw.C)
	assert.Equal(t, 2.0, StdView.Surround)
}

func TestCAM(t *testing.T) {
	camw := FromRGB(cie.White)
	tolassert.EqualTol(t, 209.492, camw.Hue, 0.01)
	tolassert.EqualTol(t, 2.869, camw.Chroma, 0.01)
	tolassert.EqualTol(t, 100, camw.Lightness, 0.01)

	camr := FromRGB(0xff0000)
	tolassert.EqualTol(t, 27.408, camr.Hue, 0.01)
	tolassert.EqualTol(t, 113.358, camr.Chroma, 0.01)
	tolassert.EqualTol(t, 46.445, camr.Lightness, 0.01)

	camg := FromRGB(0x00ff00)
	tolassert.EqualTol(t, 142.140, camg.Hue, 0.01)
	tolassert.EqualTol(t, 108.410, camg.Chroma, 0.01)
	tolassert.EqualTol(t, 79.332, camg.Lightness, 0.01)

	camb := FromRGB(0x0000ff)
	tolassert.EqualTol(t, 282.788, camb.Hue, 0.01)
	tolassert.EqualTol(t, 87.231, camb.Chroma, 0.01)
	tolassert.EqualTol(t, 25.466, camb.Lightness, 0.01)

	camk := FromRGB(cie.Black)
	assert.Equal(t, CAM{}, camk)

	cam := FromRGB(0x12c99d)
	tolassert.EqualTol(t, 171.835, cam.Hue, 0.01)
	tolassert.EqualTol(t, 55.694, cam.Chroma, 0.01)
}

func TestHueOf(t *testing.T) {
	for _, c := range []cie.RGB{0xff0000, 0x00ff00, 0x0000ff, 0x12c99d, 0x567c00, 0x777777, 0x010203} {
		assert.Equal(t, FromRGB(c).Hue, HueOf(c), c.String())
	}
}

func TestCompress(t *testing.T) {
	assert.Equal(t, 0.0, Compress(0))
	tolassert.Equal(t, -Compress(2.5), Compress(-2.5))
	// saturates toward 400 for large responses
	assert.Less(t, Compress(1e15), 400.0)
	assert.Greater(t, Compress(1e15), 399.0)
	tolassert.EqualTol(t, 400/28.13, Compress(1), 1e-12)
}

func TestDegrees(t *testing.T) {
	assert.Equal(t, 10.0, SanitizeDegrees(370))
	assert.Equal(t, 350.0, SanitizeDegrees(-10))
	assert.Equal(t, 0.0, SanitizeDegrees(360))
	assert.Equal(t, 0.0, SanitizeDegrees(-720))

	assert.Equal(t, 20.0, DiffDegrees(10, 350))
	assert.Equal(t, -20.0, DiffDegrees(350, 10))
	assert.Equal(t, 180.0, DiffDegrees(180, 0))
	assert.Equal(t, -5.0, DiffDegrees(715, 0))

	assert.True(t, InCyclicOrder(350, 5, 20))
	assert.False(t, InCyclicOrder(350, 20, 5))
}

func BenchmarkFromRGB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FromRGB(cie.RGB(i & 0xFFFFFF))
	}
}
