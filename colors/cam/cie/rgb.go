// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit-per-channel display color packed as 0xRRGGBB:
// red in bits 16-23, green in bits 8-15 and blue in bits 0-7.
// Bits above 23 are ignored. There is no alpha channel.
type RGB uint32

const (
	// Black is the packed display color 0x000000.
	Black RGB = 0x000000

	// White is the packed display color 0xFFFFFF.
	White RGB = 0xFFFFFF
)

// NewRGB packs the given channels into an [RGB].
func NewRGB(r, g, b uint8) RGB {
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBFromColor returns the [RGB] for the given standard color,
// discarding its alpha after un-premultiplying.
func RGBFromColor(c color.Color) RGB {
	if c == nil {
		return Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewRGB(n.R, n.G, n.B)
}

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// Uint32 returns the packed value with any bits above 23 cleared.
func (c RGB) Uint32() uint32 { return uint32(c) & 0xFFFFFF }

// Linear returns the linear-light channel values on a 0-1 scale.
func (c RGB) Linear() (r, g, b float64) {
	return ToLinear(c.R()), ToLinear(c.G()), ToLinear(c.B())
}

// IsGray returns whether all three channels are equal.
func (c RGB) IsGray() bool {
	return c.R() == c.G() && c.G() == c.B()
}

// RGBA implements the [color.Color] interface. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	a = 0xFFFF
	return
}

// AsRGBA returns the color as an opaque [color.RGBA].
func (c RGB) AsRGBA() color.RGBA {
	return color.RGBA{c.R(), c.G(), c.B(), 255}
}

// String returns the color as a lowercase #rrggbb hex string.
func (c RGB) String() string {
	return fmt.Sprintf("#%06x", c.Uint32())
}
