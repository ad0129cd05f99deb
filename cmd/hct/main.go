// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hct converts colors between sRGB and the HCT color space,
// reports gamut limits, and samples HCT gradients and tonal palettes.
package main

import (
	"io"
	"log/slog"
	"os"

	"cogentcore.org/hct/base/config"
	"cogentcore.org/hct/base/errors"
	"cogentcore.org/hct/base/logx"
	"cogentcore.org/hct/cmd/hct/cmd"
	hctconfig "cogentcore.org/hct/cmd/hct/config"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	logx.SetDefaultLogger()
	if err := newApp(os.Stdout, os.Stderr).root().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by the commands of one invocation.
type app struct {
	stdout, stderr io.Writer

	// extra options for the terminal output, used in tests
	termOpts []termenv.OutputOption

	// the config file given on the command line
	file string

	// the values of the command line flags, which override
	// those of cfg when they are set
	flags hctconfig.Config

	// the resolved configuration
	cfg *hctconfig.Config

	out *cmd.Output
}

func newApp(stdout, stderr io.Writer, opts ...termenv.OutputOption) *app {
	a := &app{stdout: stdout, stderr: stderr, termOpts: opts}
	errors.Log(config.SetFromDefaults(&a.flags))
	return a
}

func (a *app) root() *cobra.Command {
	root := &cobra.Command{
		Use:           "hct",
		Short:         "Convert colors between sRGB and the HCT color space",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return a.setup(c.Flags())
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	pf := root.PersistentFlags()
	pf.StringVar(&a.file, "config", "", "the TOML config file (default "+hctconfig.DefaultFile+" if it exists)")
	pf.StringVarP(&a.flags.Format, "format", "f", a.flags.Format, "the output format: text, json, yaml, or toml")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "print info level log messages")
	pf.BoolVar(&a.flags.VeryVerbose, "vv", false, "print debug level log messages, including solver diagnostics")
	pf.BoolVarP(&a.flags.Quiet, "quiet", "q", false, "only print error level log messages")

	root.AddCommand(
		&cobra.Command{
			Use:   "tohct <hex>",
			Short: "Print the HCT coordinates of a hex color",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return a.report(cmd.ToHCT(a.cfg, a.out, args[0]))
			},
		},
		&cobra.Command{
			Use:   "torgb <hue> <chroma> <tone>",
			Short: "Solve the display color closest to an HCT color",
			Args:  cobra.ExactArgs(3),
			RunE: func(c *cobra.Command, args []string) error {
				return a.report(cmd.ToRGB(a.cfg, a.out, args[0], args[1], args[2]))
			},
		},
		&cobra.Command{
			Use:   "max <hue> <tone>",
			Short: "Print the largest displayable chroma at a hue and tone",
			Args:  cobra.ExactArgs(2),
			RunE: func(c *cobra.Command, args []string) error {
				return a.report(cmd.Max(a.cfg, a.out, args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "stabilize <hex> <hue>",
			Short: "Nudge a hex color one step per channel toward a hue",
			Args:  cobra.ExactArgs(2),
			RunE: func(c *cobra.Command, args []string) error {
				return a.report(cmd.Stabilize(a.cfg, a.out, args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "palette <hex>",
			Short: "Print the tonal palettes derived from a primary color",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return a.report(cmd.Palette(a.cfg, a.out, args[0]))
			},
		},
		a.gradientCmd(),
		a.planeCmd(),
		a.configCmd(),
	)
	return root
}

func (a *app) gradientCmd() *cobra.Command {
	var file string
	gc := &cobra.Command{
		Use:   "gradient",
		Short: "Sample the HCT space along a hue, tone, or chroma sweep",
	}
	pf := gc.PersistentFlags()
	g := &a.flags.Gradient
	pf.Float64Var(&g.Hue, "hue", g.Hue, "the hue of tone and chroma sweeps")
	pf.Float64Var(&g.Chroma, "chroma", g.Chroma, "the chroma of hue and tone sweeps")
	pf.Float64Var(&g.Tone, "tone", g.Tone, "the tone of hue and chroma sweeps")
	pf.Float64Var(&g.HueStep, "step", g.HueStep, "the hue step in degrees of a hue sweep")
	pf.Float64SliceVar(&g.Tones, "tones", g.Tones, "the tones of a tone sweep")
	pf.IntVar(&g.ChromaSteps, "steps", g.ChromaSteps, "the number of samples of a chroma sweep")
	pf.StringVarP(&file, "output", "o", "", "render the sweep to this image file")
	a.imageFlags(pf)
	pf.BoolVar(&a.flags.Image.Smooth, "smooth", false, "blend between stops in the rendered image")
	for _, kind := range cmd.Sweeps {
		gc.AddCommand(&cobra.Command{
			Use:   kind,
			Short: "Sample a " + kind + " sweep",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				return a.report(cmd.Gradient(a.cfg, a.out, kind, file))
			},
		})
	}
	return gc
}

func (a *app) planeCmd() *cobra.Command {
	var file string
	pc := &cobra.Command{
		Use:   "plane <hue>",
		Short: "Render the chroma and tone plane of a hue to an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.report(cmd.Plane(a.cfg, a.out, args[0], file))
		},
	}
	f := pc.Flags()
	f.StringVarP(&file, "output", "o", "plane.png", "the image file to write")
	a.imageFlags(f)
	f.Float64Var(&a.flags.Image.MaxChroma, "max-chroma", a.flags.Image.MaxChroma, "the chroma at the right edge")
	f.BoolVar(&a.flags.Image.GamutOnly, "gamut-only", a.flags.Image.GamutOnly, "leave out of gamut pixels transparent")
	return pc
}

func (a *app) imageFlags(f *pflag.FlagSet) {
	im := &a.flags.Image
	f.IntVar(&im.Width, "width", im.Width, "the image width in pixels")
	f.IntVar(&im.Height, "height", im.Height, "the image height in pixels")
}

func (a *app) configCmd() *cobra.Command {
	var save string
	cc := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if save != "" {
				return a.report(config.Save(a.cfg, save))
			}
			b, err := config.WriteBytes(a.cfg)
			if err != nil {
				return a.report(err)
			}
			_, err = a.stdout.Write(b)
			return err
		},
	}
	cc.Flags().StringVar(&save, "save", "", "save the configuration to this file instead")
	return cc
}

// setup resolves the configuration from the defaults, the config
// file, and the flags that were set, in increasing priority, and
// then sets up logging and output.
func (a *app) setup(fs *pflag.FlagSet) error {
	cfg, err := hctconfig.Load(a.file)
	if err != nil {
		return a.report(err)
	}
	a.cfg = cfg
	a.override(fs)
	logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	slog.SetDefault(slog.New(logx.NewHandler(a.stderr, logx.UserLevel, a.termOpts...)))
	if err := cfg.Validate(); err != nil {
		return a.report(err)
	}
	a.out = cmd.NewOutput(a.stdout, cfg.Format, a.termOpts...)
	return nil
}

// override copies the flags that were set over the loaded config.
func (a *app) override(fs *pflag.FlagSet) {
	c, f := a.cfg, &a.flags
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("format", func() { c.Format = f.Format })
	set("verbose", func() { c.Verbose = f.Verbose })
	set("vv", func() { c.VeryVerbose = f.VeryVerbose })
	set("quiet", func() { c.Quiet = f.Quiet })
	set("hue", func() { c.Gradient.Hue = f.Gradient.Hue })
	set("chroma", func() { c.Gradient.Chroma = f.Gradient.Chroma })
	set("tone", func() { c.Gradient.Tone = f.Gradient.Tone })
	set("step", func() { c.Gradient.HueStep = f.Gradient.HueStep })
	set("tones", func() { c.Gradient.Tones = f.Gradient.Tones })
	set("steps", func() { c.Gradient.ChromaSteps = f.Gradient.ChromaSteps })
	set("width", func() { c.Image.Width = f.Image.Width })
	set("height", func() { c.Image.Height = f.Image.Height })
	set("max-chroma", func() { c.Image.MaxChroma = f.Image.MaxChroma })
	set("gamut-only", func() { c.Image.GamutOnly = f.Image.GamutOnly })
	set("smooth", func() { c.Image.Smooth = f.Image.Smooth })
}

// report logs a non-nil error and returns it.
func (a *app) report(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}
