// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides saving, opening and test assertion
// of rendered color images.
package imagex

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/tiff"
)

// Formats are the supported image encoding formats.
type Formats int32

// The supported image encoding formats
const (
	None Formats = iota
	PNG
	JPEG
	BMP
	TIFF
)

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "":
		return None, fmt.Errorf("imagex.ExtToFormat: extension is empty")
	}
	return None, fmt.Errorf("imagex.ExtToFormat: extension %q not recognized", ext)
}

// Encoder returns the encoder for the given format.
func (f Formats) Encoder() (imgio.Encoder, error) {
	switch f {
	case PNG:
		return imgio.PNGEncoder(), nil
	case JPEG:
		return imgio.JPEGEncoder(95), nil
	case BMP:
		return imgio.BMPEncoder(), nil
	case TIFF:
		return func(w io.Writer, im image.Image) error { return tiff.Encode(w, im, nil) }, nil
	}
	return nil, fmt.Errorf("imagex: format %d not valid", f)
}

// Open opens an image from the given filename.
// png, jpeg and bmp are supported.
func Open(filename string) (image.Image, error) {
	return imgio.Open(filename)
}

// Save saves the image to the given filename,
// with the format inferred from the filename.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	enc, err := f.Encoder()
	if err != nil {
		return err
	}
	return imgio.Save(filename, im, enc)
}

// Write writes the image to the given writer in the given format.
func Write(im image.Image, w io.Writer, f Formats) error {
	enc, err := f.Encoder()
	if err != nil {
		return err
	}
	return enc(w, im)
}

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	bounds := src.Bounds()
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, src, bounds.Min, draw.Src)
	return img
}
