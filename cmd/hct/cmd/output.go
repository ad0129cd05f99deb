// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the hct tool.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"cogentcore.org/hct/base/config"
	"cogentcore.org/hct/colors"
	"cogentcore.org/hct/colors/cam/cie"
	"cogentcore.org/hct/colors/cam/hct"
	hctconfig "cogentcore.org/hct/cmd/hct/config"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Output writes command results in the configured format.
type Output struct {

	// the underlying writer
	W io.Writer

	// the terminal styling of text output
	Term *termenv.Output

	// the output format: text, json, yaml, or toml
	Format string
}

// NewOutput returns a new [Output] writing to w in the given format,
// with the color profile detected from w unless given in opts.
func NewOutput(w io.Writer, format string, opts ...termenv.OutputOption) *Output {
	return &Output{W: w, Term: termenv.NewOutput(w, opts...), Format: format}
}

// Print writes v in the structured formats, and calls text
// to write it in the text format. TOML requires v to be a struct.
func (o *Output) Print(v any, text func()) error {
	switch o.Format {
	case "", "text":
		text()
		return nil
	case "json":
		enc := json.NewEncoder(o.W)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(o.W)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		b, err := config.WriteBytes(v)
		if err != nil {
			return err
		}
		_, err = o.W.Write(b)
		return err
	}
	return fmt.Errorf("%w: unknown output format %q", hctconfig.ErrInvalid, o.Format)
}

// Printf writes formatted text.
func (o *Output) Printf(format string, args ...any) {
	fmt.Fprintf(o.W, format, args...)
}

// Swatch returns a block filled with the given color
// when the terminal supports color.
func (o *Output) Swatch(c cie.RGB) string {
	return o.Term.String("    ").Background(o.Term.Color(c.String())).String()
}

// Faint returns s styled faint.
func (o *Output) Faint(s string) string {
	return o.Term.String(s).Faint().String()
}

// Color is the record of a display color and its HCT coordinates.
type Color struct {
	Hex    string  `json:"hex" yaml:"hex" toml:"hex"`
	Hue    float64 `json:"hue" yaml:"hue" toml:"hue"`
	Chroma float64 `json:"chroma" yaml:"chroma" toml:"chroma"`
	Tone   float64 `json:"tone" yaml:"tone" toml:"tone"`

	rgb cie.RGB
}

// NewColor returns the [Color] record of c, with its HCT
// coordinates rounded to two decimal places.
func NewColor(c cie.RGB) Color {
	h, ch, t := hct.RGBToHCT(c)
	return Color{Hex: colors.AsHex(c), Hue: round2(h), Chroma: round2(ch), Tone: round2(t), rgb: c}
}

// line writes the text form of a color record.
func (o *Output) line(label string, c Color) {
	o.Printf("%s%s  %s  %s\n", label, o.Swatch(c.rgb), c.Hex,
		o.Faint(fmt.Sprintf("H %6.2f  C %6.2f  T %6.2f", c.Hue, c.Chroma, c.Tone)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
