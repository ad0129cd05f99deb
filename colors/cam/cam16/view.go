// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cam16

import (
	"math"

	"cogentcore.org/hct/colors/cam/cie"
)

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. The HCT engine only ever
// uses [StdView]; other views are useful for exploring the model.
type View struct {

	// white point illumination, typically [cie.WhiteD65]
	WhitePoint [3]float64

	// the ambient light strength in lux
	Luminance float64 `default:"200"`

	// the average luminance of 10 degrees around the color in question
	BgLuminance float64 `default:"50"`

	// the brightness of the entire environment
	Surround float64 `default:"2"`

	// whether the person's eyes have adapted to the lighting
	Adapted bool `default:"false"`

	// computed from Luminance
	AdaptingLuminance float64 `display:"-"`

	// ratio of background relative luminance to white relative luminance (n)
	BgYToWhiteY float64 `display:"-"`

	// achromatic response to the white point
	AW float64 `display:"-"`

	// luminance level induction factor
	NBB float64 `display:"-"`

	// luminance level induction factor
	NCB float64 `display:"-"`

	// exponential nonlinearity
	C float64 `display:"-"`

	// chromatic induction factor
	NC float64 `display:"-"`

	// luminance-level adaptation factor, based on the HuntLiLuo03 equations
	FL float64 `display:"-"`

	// FL to the 1/4 power
	FLRoot float64 `display:"-"`

	// base exponential nonlinearity
	Z float64 `display:"-"`

	// cone responses to white point, adjusted for discounting
	RGBD [3]float64 `display:"-"`
}

// NewView returns a new view with all parameters initialized based on given major params
func NewView(whitePoint [3]float64, lum, bgLum, surround float64, adapt bool) *View {
	vw := &View{WhitePoint: whitePoint, Luminance: lum, BgLuminance: bgLum, Surround: surround, Adapted: adapt}
	vw.Update()
	return vw
}

// StdView is the standard (default) viewing conditions: D65 white,
// 200 lux, a 50 L* background and an average surround. It is computed
// once at package initialization and must be treated as read-only.
var StdView = NewView(cie.WhiteD65, 200, 50, 2, false)

// Update updates all the computed values based on main parameters
func (vw *View) Update() {
	vw.AdaptingLuminance = (vw.Luminance / math.Pi) * cie.ToneToY(50)
	// A background of pure black is non-physical and leads to infinities that
	// represent the idea that any color viewed in pure black can't be seen.
	vw.BgLuminance = max(0.1, vw.BgLuminance)

	// Transform test illuminant white in XYZ to 'cone'/'rgb' responses
	rW, gW, bW := XYZToLMS(vw.WhitePoint[0], vw.WhitePoint[1], vw.WhitePoint[2])

	// Scale input surround, domain (0, 2), to CAM16 surround, domain (0.8, 1.0)
	vw.Surround = min(max(vw.Surround, 0), 2)
	f := 0.8 + (vw.Surround / 10)
	// "Exponential non-linearity"
	if f >= 0.9 {
		vw.C = lerp(0.59, 0.69, (f-0.9)*10)
	} else {
		vw.C = lerp(0.525, 0.59, (f-0.8)*10)
	}
	// Calculate degree of adaptation to illuminant
	d := 1.0
	if !vw.Adapted {
		d = f * (1 - ((1 / 3.6) * math.Exp((-vw.AdaptingLuminance-42)/92)))
	}
	// Per Li et al, if D is greater than 1 or less than 0, set it to 1 or 0.
	d = min(max(d, 0), 1)

	// chromatic induction factor
	vw.NC = f

	// Cone responses to the whitePoint, adjusted for discounting.
	// 100 is used instead of the white point's relative luminance, following
	// Fairchild's Color Appearance Models (3rd edition).
	vw.RGBD[0] = d*(100/rW) + 1 - d
	vw.RGBD[1] = d*(100/gW) + 1 - d
	vw.RGBD[2] = d*(100/bW) + 1 - d

	// Factor used in calculating meaningful factors
	k := 1 / (5*vw.AdaptingLuminance + 1)
	k4 := k * k * k * k
	k4F := 1 - k4

	// Luminance-level adaptation factor
	vw.FL = (k4 * vw.AdaptingLuminance) +
		(0.1 * k4F * k4F * math.Cbrt(5*vw.AdaptingLuminance))
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	// Intermediate factor, ratio of background relative luminance to white relative luminance
	n := 100 * cie.ToneToY(vw.BgLuminance) / vw.WhitePoint[1]
	vw.BgYToWhiteY = n

	// Base exponential nonlinearity
	vw.Z = 1.48 + math.Sqrt(n)

	// Luminance-level induction factors; 0.725 is the background induction base
	vw.NBB = 0.725 / math.Pow(n, 0.2)
	vw.NCB = vw.NBB

	// Discounted cone responses to the white point, adjusted for post-saturation
	// adaptation perceptual nonlinearities.
	rA, gA, bA := vw.Adapt(rW, gW, bW)
	vw.AW = ((40*rA + 20*gA + bA) / 20) * vw.NBB
}

// Adapt applies the white point discounting, luminance-level adaptation
// and response compression of this view to the given cone responses.
func (vw *View) Adapt(l, m, s float64) (la, ma, sa float64) {
	la = Compress(vw.FL * vw.RGBD[0] * l / 100)
	ma = Compress(vw.FL * vw.RGBD[1] * m / 100)
	sa = Compress(vw.FL * vw.RGBD[2] * s / 100)
	return
}

func lerp(start, stop, amount float64) float64 {
	return (1-amount)*start + amount*stop
}
