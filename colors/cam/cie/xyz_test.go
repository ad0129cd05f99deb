// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/hct/base/tolassert"
)

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.EqualTol(t, 0.547099153, x, 1e-9)
	tolassert.EqualTol(t, 0.58596, y, 1e-9)
	tolassert.EqualTol(t, 0.746400343, z, 1e-9)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.EqualTol(t, 0.5, rl, 1e-7)
	tolassert.EqualTol(t, 0.6, gl, 1e-7)
	tolassert.EqualTol(t, 0.7, bl, 1e-7)

	// the D65 white point maps onto linear white
	rl, gl, bl = XYZToSRGBLin(WhiteD65[0], WhiteD65[1], WhiteD65[2])
	tolassert.EqualTol(t, 100, rl, 0.01)
	tolassert.EqualTol(t, 100, gl, 0.01)
	tolassert.EqualTol(t, 100, bl, 0.01)

	tolassert.EqualTol(t, 0.2126, YFromRGB(0xff0000), 1e-12)
	tolassert.EqualTol(t, 1, YFromRGB(White), 1e-12)
	tolassert.EqualTol(t, 0.1844749945, YFromRGB(0x777777), 1e-9)
}
