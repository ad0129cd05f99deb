// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE-standard color spaces used by the HCT
// engine: sRGB gamma encoding, linear sRGB to XYZ, CIE L*a*b* and its
// polar L*C*h form under the D65 white point, and the mapping between
// perceptual tone (L*) and relative luminance (Y).
//
// It also defines [RGB], the packed 24-bit display color that all
// conversions ultimately produce and consume.
package cie
