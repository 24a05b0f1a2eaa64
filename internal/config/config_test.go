package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/segdraw/pkg/geometry"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "segdraw.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
draw_key = "KeyD"
radius = 0.25
color = "orange"
bbox_min = [0.0, 0.0, 0.0]
bbox_max = [10.0, 20.0, 30.0]
resume_controls_on_disable = true
watch = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DrawKey != "KeyD" || cfg.Radius != 0.25 || cfg.Color != "orange" {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.HideKey != "Escape" || cfg.Thickness != 6 || cfg.Width != 1400 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
	if !cfg.ResumeControlsOnDisable || cfg.Watch {
		t.Errorf("booleans not decoded: %+v", cfg)
	}

	box, ok := cfg.BoundingBox()
	if !ok {
		t.Fatal("bounding box should be configured")
	}
	if box.Max != geometry.NewVector3(10, 20, 30) || box.Min != geometry.NewVector3(0, 0, 0) {
		t.Errorf("unexpected box: %+v", box)
	}

	dc := cfg.DrawerConfig()
	if dc.DrawKey != "KeyD" || dc.Radius != 0.25 || !dc.ResumeControlsOnDisable {
		t.Errorf("unexpected drawer config: %+v", dc)
	}
	if dc.Controls != nil || dc.Pointer != nil {
		t.Error("drawer config should leave controls and pointer to the caller")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"syntax", `radius = `, false},
		{"unknown key", `raduis = 1.0`, true},
		{"negative radius", `radius = -1.0`, true},
		{"zero thickness", `thickness = 0.0`, true},
		{"bad color", `color = "not-a-color"`, true},
		{"same keys", `draw_key = "Escape"`, true},
		{"empty key", `hide_key = ""`, true},
		{"half box", `bbox_min = [0.0, 0.0, 0.0]`, true},
		{"short box", "bbox_min = [0.0, 0.0]\nbbox_max = [1.0, 1.0]", true},
		{"window", `width = 0`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrInvalidConfig) != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v for %v", !tt.invalid, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestBoundingBoxUnset(t *testing.T) {
	box, ok := Default().BoundingBox()
	if ok {
		t.Error("default config has no bounding box")
	}
	if !box.ContainsPoint(geometry.NewVector3(-1e300, 1e300, 0)) {
		t.Error("unset bounding box should accept everything")
	}
}
