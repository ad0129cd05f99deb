// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"cogentcore.org/hct/base/errors"
	"cogentcore.org/hct/colors/cam/cie"
	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		hex  string
		want color.RGBA
	}{
		{"#00577d", color.RGBA{0x00, 0x57, 0x7d, 255}},
		{"00577D", color.RGBA{0x00, 0x57, 0x7d, 255}},
		{"0x12c99d", color.RGBA{0x12, 0xc9, 0x9d, 255}},
		{"#fff", White},
		{"#f008", color.RGBA{255, 0, 0, 0x88}},
		{"#12345678", color.RGBA{0x12, 0x34, 0x56, 0x78}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, errors.Test1(t, FromHex(test.hex)), test.hex)
	}

	for _, bad := range []string{"", "#12", "#12345", "#ggg", "#1234567890", "0x#fff"} {
		_, err := FromHex(bad)
		assert.Error(t, err, bad)
	}

	assert.Equal(t, Black, MustFromHex("000"))
	assert.Panics(t, func() { MustFromHex("nope") })
	assert.Equal(t, color.RGBA{}, LogFromHex("nope"))
	assert.Equal(t, White, LogFromHex("#ffffff"))
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#00577D", AsHex(color.RGBA{0x00, 0x57, 0x7d, 255}))
	assert.Equal(t, "#80000080", AsHex(color.NRGBA{255, 0, 0, 128}))
	assert.Equal(t, "nil", AsHex(nil))
	assert.Equal(t, color.RGBA{}, AsRGBA(nil))
	assert.Equal(t, MustFromHex(AsHex(color.RGBA{1, 2, 3, 4})), color.RGBA{1, 2, 3, 4})
}

func TestPacked(t *testing.T) {
	assert.Equal(t, cie.RGB(0x00577d), Packed(color.RGBA{0x00, 0x57, 0x7d, 255}))
	assert.Equal(t, cie.RGB(0xff0000), Packed(color.NRGBA{255, 0, 0, 128}))
	assert.Equal(t, color.RGBA{0x12, 0xc9, 0x9d, 255}, FromPacked(0x12c99d))

	p := errors.Test1(t, ParsePacked("#12c99d80"))
	assert.Equal(t, cie.RGB(0x12c99d), p)
	_, err := ParsePacked("xyz")
	assert.Error(t, err)
}

func TestSpaced(t *testing.T) {
	seen := map[color.RGBA]bool{}
	for idx := range 40 {
		c := Spaced(idx)
		assert.Equal(t, uint8(255), c.A)
		assert.False(t, seen[c], "index %d repeats %v", idx, c)
		seen[c] = true
	}
	assert.Equal(t, Spaced(3), Spaced(43))
	assert.Equal(t, Spaced(0), SpacedDark(0))
	assert.NotEqual(t, Spaced(3), SpacedDark(3))
	assert.Equal(t, Spaced(5), Spaced(-5))
}
