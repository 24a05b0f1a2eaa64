// Package config loads the viewer settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/paint"
	"github.com/philipparndt/segdraw/pkg/segdraw"
)

// ErrInvalidConfig is wrapped by every validation error
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the viewer settings
type Config struct {
	DrawKey   string  `toml:"draw_key"`
	HideKey   string  `toml:"hide_key"`
	Radius    float64 `toml:"radius"`
	Thickness float64 `toml:"thickness"`
	Color     string  `toml:"color"`

	// Acceptance region for picked points. Both corners must be set to
	// restrict it, otherwise every hit is accepted.
	BBoxMin []float64 `toml:"bbox_min"`
	BBoxMax []float64 `toml:"bbox_max"`

	ResumeControlsOnDisable bool `toml:"resume_controls_on_disable"`
	Watch                   bool `toml:"watch"`

	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		DrawKey:   segdraw.DefaultDrawKey,
		HideKey:   segdraw.DefaultHideKey,
		Radius:    segdraw.DefaultRadius,
		Thickness: segdraw.DefaultThickness,
		Color:     segdraw.DefaultColor,
		Watch:     true,
		Width:     1400,
		Height:    900,
	}
}

// Load reads path on top of the defaults and validates the result. Keys
// missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings for values the viewer cannot use
func (c Config) Validate() error {
	if c.DrawKey == "" {
		return fmt.Errorf("%w: draw_key is empty", ErrInvalidConfig)
	}
	if c.HideKey == "" {
		return fmt.Errorf("%w: hide_key is empty", ErrInvalidConfig)
	}
	if c.DrawKey == c.HideKey {
		return fmt.Errorf("%w: draw_key and hide_key are both %q", ErrInvalidConfig, c.DrawKey)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidConfig, c.Radius)
	}
	if c.Thickness <= 0 {
		return fmt.Errorf("%w: thickness must be positive, got %g", ErrInvalidConfig, c.Thickness)
	}
	if _, err := paint.ParseColor(c.Color); err != nil {
		return fmt.Errorf("%w: color: %w", ErrInvalidConfig, err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}

	if (c.BBoxMin == nil) != (c.BBoxMax == nil) {
		return fmt.Errorf("%w: bbox_min and bbox_max must be set together", ErrInvalidConfig)
	}
	if c.BBoxMin != nil {
		if len(c.BBoxMin) != 3 || len(c.BBoxMax) != 3 {
			return fmt.Errorf("%w: bbox corners need three coordinates", ErrInvalidConfig)
		}
	}

	return nil
}

// DrawerConfig returns the drawer settings. Controls and pointer are left
// for the caller to attach.
func (c Config) DrawerConfig() segdraw.Config {
	return segdraw.Config{
		DrawKey:                 c.DrawKey,
		HideKey:                 c.HideKey,
		Radius:                  c.Radius,
		Thickness:               c.Thickness,
		Color:                   c.Color,
		ResumeControlsOnDisable: c.ResumeControlsOnDisable,
	}
}

// BoundingBox returns the acceptance region and whether one is configured
func (c Config) BoundingBox() (geometry.BoundingBox, bool) {
	if len(c.BBoxMin) != 3 || len(c.BBoxMax) != 3 {
		return geometry.NewInfiniteBoundingBox(), false
	}

	return geometry.NewBoundingBoxFromPoints(
		geometry.NewVector3(c.BBoxMin[0], c.BBoxMin[1], c.BBoxMin[2]),
		geometry.NewVector3(c.BBoxMax[0], c.BBoxMax[1], c.BBoxMax[2]),
	), true
}
