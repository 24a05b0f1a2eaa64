package segdraw

import (
	"fmt"

	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/paint"
)

// Defaults applied to zero-valued Config fields
const (
	DefaultDrawKey   = "Space"
	DefaultHideKey   = "Escape"
	DefaultRadius    = 0.5
	DefaultThickness = 6
	DefaultColor     = "#6600aa"
)

// Tube resolution of the segment mesh
const (
	tubularSegments = 10
	radialSegments  = 8
)

// Config configures a Drawer. The zero value is valid and uses the defaults.
type Config struct {
	// Controls is suspended while draw mode is armed. Optional.
	Controls Controls

	// Pointer, when set, is owned by the host: the drawer reads the
	// normalized position from it and never writes to it. When nil the
	// drawer tracks the pointer itself from PointerMove events.
	Pointer *geometry.Vector2

	// DrawKey and HideKey are key codes such as "Space", "Escape", "KeyD".
	DrawKey string
	HideKey string

	Radius    float64
	Thickness float64
	Color     string

	// ResumeControlsOnDisable makes Enable(false) leave draw mode the same
	// way releasing the draw key does. By default disabling freezes the
	// drawer and leaves the controls suspended.
	ResumeControlsOnDisable bool
}

// DefaultConfig returns a Config with every default filled in
func DefaultConfig() Config {
	return Config{
		DrawKey:   DefaultDrawKey,
		HideKey:   DefaultHideKey,
		Radius:    DefaultRadius,
		Thickness: DefaultThickness,
		Color:     DefaultColor,
	}
}

// withDefaults fills zero fields and validates the color
func (c Config) withDefaults() (Config, paint.Material, error) {
	if c.DrawKey == "" {
		c.DrawKey = DefaultDrawKey
	}
	if c.HideKey == "" {
		c.HideKey = DefaultHideKey
	}
	if c.Radius <= 0 {
		c.Radius = DefaultRadius
	}
	if c.Thickness <= 0 {
		c.Thickness = DefaultThickness
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}

	col, err := paint.ParseColor(c.Color)
	if err != nil {
		return c, paint.Material{}, fmt.Errorf("segment color: %w", err)
	}

	return c, paint.Material{
		Color:     col,
		LineWidth: c.Thickness,
		LineCap:   "square",
	}, nil
}
