// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration information for the hct tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"slices"

	"cogentcore.org/hct/base/config"
)

// DefaultFile is the config file read from the current
// directory when no other file is given.
const DefaultFile = "hct.toml"

// ErrInvalid is wrapped by all config and argument validation errors.
var ErrInvalid = errors.New("invalid input")

// Formats are the supported output formats.
var Formats = []string{"text", "json", "yaml", "toml"}

// Config is the main config struct that contains all of the
// configuration options for the hct tool.
type Config struct {

	// the output format: text, json, yaml, or toml
	Format string `toml:"format" default:"text"`

	// whether to print info level log messages
	Verbose bool `toml:"verbose"`

	// whether to print debug level log messages,
	// including solver diagnostics
	VeryVerbose bool `toml:"very-verbose"`

	// whether to only print error level log messages
	Quiet bool `toml:"quiet"`

	// the configuration for gradient sweeps
	Gradient Gradient `toml:"gradient"`

	// the configuration for rendered images
	Image Image `toml:"image"`
}

// Gradient contains the configuration options for gradient sweeps.
type Gradient struct {

	// the hue held fixed by tone and chroma sweeps
	Hue float64 `toml:"hue" default:"240"`

	// the chroma held fixed by hue and tone sweeps
	Chroma float64 `toml:"chroma" default:"48"`

	// the tone held fixed by hue and chroma sweeps
	Tone float64 `toml:"tone" default:"50"`

	// the hue step in degrees of a hue sweep
	HueStep float64 `toml:"hue-step" default:"10"`

	// the tones sampled by a tone sweep, in increasing order
	Tones []float64 `toml:"tones" default:"[0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100]"`

	// the number of samples of a chroma sweep
	ChromaSteps int `toml:"chroma-steps" default:"9"`
}

// Image contains the configuration options for rendered images.
type Image struct {

	// the width of the image in pixels
	Width int `toml:"width" default:"360"`

	// the height of the image in pixels
	Height int `toml:"height" default:"48"`

	// the chroma at the right edge of a plane
	MaxChroma float64 `toml:"max-chroma" default:"120"`

	// whether a plane leaves out of gamut pixels transparent
	GamutOnly bool `toml:"gamut-only" default:"true"`

	// whether a gradient strip is blended between stops
	// instead of drawn as flat swatches
	Smooth bool `toml:"smooth"`
}

// New returns a new [Config] with its default values set.
func New() (*Config, error) {
	c := &Config{}
	if err := config.SetFromDefaults(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Load returns a new [Config] with its default values set and
// then overridden from the given TOML file. If filename is empty,
// [DefaultFile] is read if it exists.
func Load(filename string) (*Config, error) {
	c, err := New()
	if err != nil {
		return nil, err
	}
	if filename == "" {
		if _, err := os.Stat(DefaultFile); errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		filename = DefaultFile
	}
	if err := config.Open(c, filename); err != nil {
		return nil, fmt.Errorf("loading config file %q: %w", filename, err)
	}
	return c, nil
}

// Validate returns an error wrapping [ErrInvalid] for every
// setting that is out of range or not finite.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	if !slices.Contains(Formats, c.Format) {
		bad("format %q is not one of %v", c.Format, Formats)
	}
	g := &c.Gradient
	if err := CheckFinite("gradient hue", g.Hue); err != nil {
		errs = append(errs, err)
	}
	if err := CheckChroma("gradient chroma", g.Chroma); err != nil {
		errs = append(errs, err)
	}
	if err := CheckTone("gradient tone", g.Tone); err != nil {
		errs = append(errs, err)
	}
	if !(g.HueStep > 0 && g.HueStep <= 360) {
		bad("hue step %v must be in (0, 360]", g.HueStep)
	}
	for i, t := range g.Tones {
		if err := CheckTone("gradient tones", t); err != nil {
			errs = append(errs, err)
		} else if i > 0 && t <= g.Tones[i-1] {
			bad("gradient tones must be increasing, but %v follows %v", t, g.Tones[i-1])
		}
	}
	if g.ChromaSteps < 2 {
		bad("chroma steps %d must be at least 2", g.ChromaSteps)
	}
	im := &c.Image
	if im.Width <= 0 || im.Height <= 0 {
		bad("image size %dx%d must be positive", im.Width, im.Height)
	}
	if err := CheckChroma("image max chroma", im.MaxChroma); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CheckFinite returns an error wrapping [ErrInvalid]
// if the named value is NaN or infinite.
func CheckFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, not %v", ErrInvalid, name, v)
	}
	return nil
}

// CheckTone returns an error wrapping [ErrInvalid]
// if the named tone is not within [0, 100].
func CheckTone(name string, v float64) error {
	if err := CheckFinite(name, v); err != nil {
		return err
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("%w: %s %v must be within [0, 100]", ErrInvalid, name, v)
	}
	return nil
}

// CheckChroma returns an error wrapping [ErrInvalid]
// if the named chroma is negative or not finite.
func CheckChroma(name string, v float64) error {
	if err := CheckFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%w: %s %v must not be negative", ErrInvalid, name, v)
	}
	return nil
}
