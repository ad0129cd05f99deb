// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/hct/base/iox/imagex"
	"cogentcore.org/hct/cmd/hct/config"
	"cogentcore.org/hct/colors/cam/cie"
	"cogentcore.org/hct/colors/gradient"
	"golang.org/x/image/draw"
)

// Sweeps are the kinds of gradient sweep.
var Sweeps = []string{"hue", "tone", "chroma"}

// Stop is the record of one sampled gradient stop.
type Stop struct {
	Pos float32 `json:"pos" yaml:"pos" toml:"pos"`

	// the requested coordinates
	Hue    float64 `json:"hue" yaml:"hue" toml:"hue"`
	Chroma float64 `json:"chroma" yaml:"chroma" toml:"chroma"`
	Tone   float64 `json:"tone" yaml:"tone" toml:"tone"`

	// the solved color and its measured HCT coordinates
	Color Color `json:"color" yaml:"color" toml:"color"`
}

// Sweep is the result of [Gradient].
type Sweep struct {
	Kind  string `json:"kind" yaml:"kind" toml:"kind"`
	Stops []Stop `json:"stops" yaml:"stops" toml:"stops"`

	// the image file written, if any
	File string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`
}

// Stops returns the gradient stops of the given kind of sweep.
func Stops(c *config.Config, kind string) ([]gradient.Stop, error) {
	g := &c.Gradient
	switch kind {
	case "hue":
		return gradient.HueStops(g.Chroma, g.Tone, g.HueStep), nil
	case "tone":
		return gradient.ToneStops(g.Hue, g.Chroma, g.Tones), nil
	case "chroma":
		return gradient.ChromaStops(g.Hue, g.Tone, g.ChromaSteps), nil
	}
	return nil, fmt.Errorf("%w: unknown gradient sweep %q; want one of %v", config.ErrInvalid, kind, Sweeps)
}

// Gradient prints the stops of the given kind of sweep, and
// renders them to the given image file if it is not empty.
func Gradient(c *config.Config, out *Output, kind, file string) error {
	stops, err := Stops(c, kind)
	if err != nil {
		return err
	}
	if file != "" {
		if err := imagex.Save(Render(c, stops), file); err != nil {
			return err
		}
		slog.Info("wrote gradient", "file", file, "stops", len(stops))
	}
	res := Sweep{Kind: kind, File: file, Stops: make([]Stop, len(stops))}
	for i, s := range stops {
		res.Stops[i] = Stop{Pos: s.Pos, Hue: s.Hue, Chroma: s.Chroma, Tone: s.Tone,
			Color: NewColor(cie.RGBFromColor(s.Color))}
	}
	return out.Print(res, func() {
		for _, s := range res.Stops {
			out.line(fmt.Sprintf("%5.3f  ", s.Pos), s.Color)
		}
	})
}

// Render draws the stops into an image of the configured size,
// blended in HCT when smoothing and as flat swatches otherwise.
func Render(c *config.Config, stops []gradient.Stop) image.Image {
	im := &c.Image
	if im.Smooth {
		return imagex.AsRGBA(gradient.NewLinear(stops, im.Width, im.Height))
	}
	return gradient.Strip(stops, im.Width, im.Height, draw.NearestNeighbor)
}

// PlaneImage is the result of [Plane].
type PlaneImage struct {
	Hue       float64 `json:"hue" yaml:"hue" toml:"hue"`
	MaxChroma float64 `json:"maxChroma" yaml:"maxChroma" toml:"max-chroma"`
	Width     int     `json:"width" yaml:"width" toml:"width"`
	Height    int     `json:"height" yaml:"height" toml:"height"`
	File      string  `json:"file" yaml:"file" toml:"file"`
}

// Plane renders the chroma and tone plane of the given hue
// to the given image file.
func Plane(c *config.Config, out *Output, hs, file string) error {
	h, err := ParseFloat("hue", hs)
	if err != nil {
		return err
	}
	if file == "" {
		return fmt.Errorf("%w: plane needs an output file", config.ErrInvalid)
	}
	im := &c.Image
	img, err := gradient.Plane(h, im.MaxChroma, im.Width, im.Height, im.GamutOnly)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, file); err != nil {
		return err
	}
	res := PlaneImage{Hue: h, MaxChroma: im.MaxChroma, Width: im.Width, Height: im.Height, File: file}
	return out.Print(res, func() {
		out.Printf("wrote %s (%dx%d)\n", file, res.Width, res.Height)
	})
}
