// Package paint holds the material description shared by the drawer and the
// scene, and parses the color strings users type on the command line.
package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string cannot be parsed
var ErrInvalidColor = errors.New("invalid color")

// Material describes how a line-like mesh is drawn
type Material struct {
	Color     color.RGBA
	LineWidth float64
	LineCap   string
}

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" or an SVG color name
// such as "darkorchid"
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		// #rgb expands every digit, #6a0 == #66aa00
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q has %d hex digits", ErrInvalidColor, s, len(hex))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}

	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Hex formats c as "#rrggbb", dropping alpha
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
