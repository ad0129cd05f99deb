// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"cogentcore.org/hct/colors"
	"cogentcore.org/hct/colors/cam/hct"
	"cogentcore.org/hct/cmd/hct/config"
)

// ParseFloat parses the named numeric argument,
// which must be finite.
func ParseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", config.ErrInvalid, name, s)
	}
	if err := config.CheckFinite(name, v); err != nil {
		return 0, err
	}
	return v, nil
}

// parseHCT parses hue, chroma, and tone arguments.
// Negative chroma is accepted and solved as 0.
func parseHCT(hs, cs, ts string) (h, c, t float64, err error) {
	if h, err = ParseFloat("hue", hs); err != nil {
		return
	}
	if c, err = ParseFloat("chroma", cs); err != nil {
		return
	}
	if t, err = ParseFloat("tone", ts); err != nil {
		return
	}
	err = config.CheckTone("tone", t)
	return
}

// ToHCT prints the HCT coordinates of the given hex color.
func ToHCT(c *config.Config, out *Output, hex string) error {
	rgb, err := colors.ParsePacked(hex)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	res := NewColor(rgb)
	return out.Print(res, func() { out.line("", res) })
}

// Solution is the result of [ToRGB].
type Solution struct {

	// the requested hue, chroma, and tone
	Hue    float64 `json:"hue" yaml:"hue" toml:"hue"`
	Chroma float64 `json:"chroma" yaml:"chroma" toml:"chroma"`
	Tone   float64 `json:"tone" yaml:"tone" toml:"tone"`

	// the largest chroma displayable at the requested hue and tone
	MaxChroma float64 `json:"maxChroma" yaml:"maxChroma" toml:"max-chroma"`

	// whether the requested chroma is displayable
	InGamut bool `json:"inGamut" yaml:"inGamut" toml:"in-gamut"`

	// the solved color and its measured HCT coordinates
	Color Color `json:"color" yaml:"color" toml:"color"`
}

// ToRGB prints the display color solved for the given
// hue, chroma, and tone, with the solver diagnostics
// logged at the debug level.
func ToRGB(c *config.Config, out *Output, hs, cs, ts string) error {
	h, ch, t, err := parseHCT(hs, cs, ts)
	if err != nil {
		return err
	}
	d := hct.SolveDetail(h, ch, t)
	slog.Debug("solve", "hue", h, "chroma", ch, "tone", t,
		"iterations", d.Iterations, "hueError", round2(d.HueError),
		"converged", d.Converged, "clipped", d.Clipped)
	if !d.Converged {
		slog.Info("hue correction did not converge", "hueError", round2(d.HueError))
	}
	mc := hct.MaxChroma(h, t)
	res := Solution{
		Hue: h, Chroma: ch, Tone: t,
		MaxChroma: round2(mc),
		InGamut:   ch <= mc,
		Color:     NewColor(hct.HCTToRGB(h, ch, t)),
	}
	return out.Print(res, func() {
		out.line("", res.Color)
		if !res.InGamut {
			out.Printf("%s\n", out.Faint(fmt.Sprintf("chroma %g is out of gamut; max chroma is %.2f", ch, res.MaxChroma)))
		}
	})
}

// Limit is the result of [Max].
type Limit struct {
	Hue       float64 `json:"hue" yaml:"hue" toml:"hue"`
	Tone      float64 `json:"tone" yaml:"tone" toml:"tone"`
	MaxChroma float64 `json:"maxChroma" yaml:"maxChroma" toml:"max-chroma"`
}

// Max prints the largest displayable chroma for the given hue and tone.
func Max(c *config.Config, out *Output, hs, ts string) error {
	h, err := ParseFloat("hue", hs)
	if err != nil {
		return err
	}
	t, err := ParseFloat("tone", ts)
	if err != nil {
		return err
	}
	if err := config.CheckTone("tone", t); err != nil {
		return err
	}
	res := Limit{Hue: h, Tone: t, MaxChroma: round2(hct.MaxChroma(h, t))}
	return out.Print(res, func() { out.Printf("%.2f\n", res.MaxChroma) })
}

// Stabilized is the result of [Stabilize].
type Stabilized struct {
	TargetHue float64 `json:"targetHue" yaml:"targetHue" toml:"target-hue"`
	Input     Color   `json:"input" yaml:"input" toml:"input"`
	Output    Color   `json:"output" yaml:"output" toml:"output"`
}

// Stabilize prints the given hex color nudged by at most one step
// per channel toward the given hue.
func Stabilize(c *config.Config, out *Output, hex, hs string) error {
	rgb, err := colors.ParsePacked(hex)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	h, err := ParseFloat("hue", hs)
	if err != nil {
		return err
	}
	res := Stabilized{TargetHue: h, Input: NewColor(rgb), Output: NewColor(hct.StabilizeHue(rgb, h))}
	return out.Print(res, func() {
		out.line("in   ", res.Input)
		out.line("out  ", res.Output)
	})
}
