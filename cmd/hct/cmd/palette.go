// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"

	"cogentcore.org/hct/cmd/hct/config"
	"cogentcore.org/hct/colors"
	"cogentcore.org/hct/colors/cam/cie"
	"cogentcore.org/hct/colors/matcolor"
)

// Tone is the record of one tone of a tonal palette.
type Tone struct {
	Tone int    `json:"tone" yaml:"tone" toml:"tone"`
	Hex  string `json:"hex" yaml:"hex" toml:"hex"`
}

// TonalPalette is the record of one named tonal palette.
type TonalPalette struct {
	Name   string  `json:"name" yaml:"name" toml:"name"`
	Hue    float64 `json:"hue" yaml:"hue" toml:"hue"`
	Chroma float64 `json:"chroma" yaml:"chroma" toml:"chroma"`
	Tones  []Tone  `json:"tones" yaml:"tones" toml:"tones"`

	tones *matcolor.Tones
}

// Palettes is the result of [Palette].
type Palettes struct {
	Source   Color          `json:"source" yaml:"source" toml:"source"`
	Palettes []TonalPalette `json:"palettes" yaml:"palettes" toml:"palettes"`
}

// Palette prints the tonal palettes derived from the given
// primary hex color at the standard tones.
func Palette(c *config.Config, out *Output, hex string) error {
	src, err := colors.FromHex(hex)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	p := matcolor.NewPalette(matcolor.KeyFromPrimary(src))
	res := Palettes{Source: NewColor(cie.RGBFromColor(src))}
	for _, nt := range p.Named() {
		tp := TonalPalette{Name: nt.Name, Hue: round2(float64(nt.Tones.Hue())),
			Chroma: round2(float64(nt.Tones.Chroma())), tones: nt.Tones}
		for _, t := range matcolor.StdTones {
			tp.Tones = append(tp.Tones, Tone{Tone: t, Hex: colors.AsHex(nt.Tones.Tone(t))})
		}
		res.Palettes = append(res.Palettes, tp)
	}
	return out.Print(res, func() {
		out.line("source           ", res.Source)
		for _, tp := range res.Palettes {
			var sb strings.Builder
			for _, t := range matcolor.StdTones {
				sb.WriteString(out.Swatch(cie.RGBFromColor(tp.tones.Tone(t))))
			}
			out.Printf("%-16s %s  %s\n", tp.Name, sb.String(),
				out.Faint(fmt.Sprintf("H %6.2f  C %6.2f", tp.Hue, tp.Chroma)))
		}
	})
}
