// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordT struct {
	msgs []string
}

func (r *recordT) Errorf(format string, args ...any) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func testImage(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := range 3 {
		for x := range 4 {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestFormats(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpeg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("svg")
	assert.Error(t, err)
	_, err = None.Encoder()
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	img := testImage(color.RGBA{0, 0x57, 0x7d, 255})
	fn := filepath.Join(t.TempDir(), "swatch.png")
	require.NoError(t, Save(img, fn))
	oimg, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), oimg.Bounds())
	assert.Equal(t, img.RGBAAt(1, 1), AsRGBA(oimg).RGBAAt(1, 1))

	assert.Error(t, Save(img, filepath.Join(t.TempDir(), "swatch.svg")))

	var buf bytes.Buffer
	require.NoError(t, Write(img, &buf, PNG))
	dimg, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), dimg.Bounds())
}

func TestCompare(t *testing.T) {
	a := color.RGBA{10, 20, 30, 255}
	assert.True(t, CompareColors(a, color.RGBA{11, 19, 30, 255}, 1))
	assert.False(t, CompareColors(a, color.RGBA{12, 20, 30, 255}, 1))

	d := AsRGBA(DiffImage(testImage(a), testImage(color.RGBA{5, 25, 30, 255})))
	assert.Equal(t, color.RGBA{5, 5, 0, 255}, d.RGBAAt(0, 0))
}

func TestAssert(t *testing.T) {
	t.Chdir(t.TempDir())
	img := testImage(color.RGBA{0x6e, 0x80, 0, 255})

	rt := &recordT{}
	Assert(rt, img, "swatch")
	assert.Empty(t, rt.msgs)
	assert.FileExists(t, filepath.Join("testdata", "swatch.png"))

	Assert(rt, img, "swatch")
	assert.Empty(t, rt.msgs)

	Assert(rt, testImage(color.RGBA{0x6e, 0x90, 0, 255}), "swatch")
	assert.Len(t, rt.msgs, 1)
	assert.FileExists(t, filepath.Join("testdata", "swatch.fail.png"))
	assert.FileExists(t, filepath.Join("testdata", "swatch.diff.png"))
}
