package config

import "fmt"

// Overrides holds settings given on the command line. Nil fields are not
// set and leave the file value alone.
type Overrides struct {
	DrawKey   *string
	HideKey   *string
	Radius    *float64
	Thickness *float64
	Color     *string
	BBoxMin   []float64
	BBoxMax   []float64
}

// Apply returns cfg with the set overrides on top
func (o Overrides) Apply(cfg Config) Config {
	if o.DrawKey != nil {
		cfg.DrawKey = *o.DrawKey
	}
	if o.HideKey != nil {
		cfg.HideKey = *o.HideKey
	}
	if o.Radius != nil {
		cfg.Radius = *o.Radius
	}
	if o.Thickness != nil {
		cfg.Thickness = *o.Thickness
	}
	if o.Color != nil {
		cfg.Color = *o.Color
	}
	if o.BBoxMin != nil {
		cfg.BBoxMin = append([]float64(nil), o.BBoxMin...)
	}
	if o.BBoxMax != nil {
		cfg.BBoxMax = append([]float64(nil), o.BBoxMax...)
	}
	return cfg
}

// Resolve loads path, or the defaults when path is empty, applies the
// overrides and validates the result. The viewer calls it again on every
// config reload so the command line keeps precedence.
func Resolve(path string, o Overrides) (Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}

	cfg = o.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
