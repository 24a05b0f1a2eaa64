package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/segdraw/internal/config"
)

var (
	configFile string
	drawKey    string
	hideKey    string
	radius     float64
	thickness  float64
	colorName  string
	bboxMin    []float64
	bboxMax    []float64
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "TOML config file")
	flags.StringVar(&drawKey, "draw-key", "", "key code that arms draw mode (default \"Space\")")
	flags.StringVar(&hideKey, "hide-key", "", "key code that hides the segment (default \"Escape\")")
	flags.Float64Var(&radius, "radius", 0, "tube radius (default 0.5)")
	flags.Float64Var(&thickness, "thickness", 0, "line width (default 6)")
	flags.StringVar(&colorName, "color", "", "segment color, #rrggbb or a color name (default \"#6600aa\")")
	flags.Float64SliceVar(&bboxMin, "bbox-min", nil, "minimum corner of the accepted region as x,y,z")
	flags.Float64SliceVar(&bboxMax, "bbox-max", nil, "maximum corner of the accepted region as x,y,z")
}

// overrides collects the config flags the user set
func overrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides

	flags := cmd.Flags()
	if flags.Changed("draw-key") {
		o.DrawKey = &drawKey
	}
	if flags.Changed("hide-key") {
		o.HideKey = &hideKey
	}
	if flags.Changed("radius") {
		o.Radius = &radius
	}
	if flags.Changed("thickness") {
		o.Thickness = &thickness
	}
	if flags.Changed("color") {
		o.Color = &colorName
	}
	if flags.Changed("bbox-min") {
		o.BBoxMin = bboxMin
	}
	if flags.Changed("bbox-max") {
		o.BBoxMax = bboxMax
	}
	return o
}

// loadConfig reads the config file, if any, and applies the flags the
// user set on top of it
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Resolve(configFile, overrides(cmd))
}
