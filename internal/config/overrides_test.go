package config

import (
	"errors"
	"os"
	"testing"

	"github.com/philipparndt/segdraw/pkg/geometry"
)

func TestResolveWithoutFile(t *testing.T) {
	radius := 2.0
	cfg, err := Resolve("", Overrides{Radius: &radius})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Radius != 2 || cfg.DrawKey != "Space" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestOverridesWinOverFile(t *testing.T) {
	path := writeConfig(t, `
draw_key = "KeyD"
radius = 0.25
bbox_min = [0.0, 0.0, 0.0]
bbox_max = [1.0, 1.0, 1.0]
`)
	key := "KeyQ"
	o := Overrides{
		DrawKey: &key,
		BBoxMin: []float64{-5, -5, -5},
		BBoxMax: []float64{5, 5, 5},
	}

	cfg, err := Resolve(path, o)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.DrawKey != "KeyQ" || cfg.Radius != 0.25 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	box, _ := cfg.BoundingBox()
	if box.Max != geometry.NewVector3(5, 5, 5) {
		t.Errorf("flag box should win, got %+v", box)
	}

	o.BBoxMax[0] = 100
	if cfg.BBoxMax[0] != 5 {
		t.Error("Apply must copy the override slices")
	}
}

func TestOverridesSurviveReload(t *testing.T) {
	path := writeConfig(t, `radius = 0.25`)
	o := Overrides{
		BBoxMin: []float64{0, 0, 0},
		BBoxMax: []float64{2, 2, 2},
	}

	if _, err := Resolve(path, o); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// the file changes without any box, the flag box must stay
	if err := os.WriteFile(path, []byte("radius = 0.75\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Resolve(path, o)
	if err != nil {
		t.Fatalf("Resolve after reload failed: %v", err)
	}
	box, ok := cfg.BoundingBox()
	if !ok || box.Max != geometry.NewVector3(2, 2, 2) {
		t.Errorf("reload dropped the flag box: %+v %v", box, ok)
	}
	if cfg.Radius != 0.75 {
		t.Errorf("file changes should still apply, radius %g", cfg.Radius)
	}
}

func TestResolveValidatesOverrides(t *testing.T) {
	o := Overrides{BBoxMin: []float64{0, 0, 0}}
	if _, err := Resolve("", o); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("half a box from the flags should be invalid, got %v", err)
	}

	if _, err := Resolve(writeConfig(t, `radius = `), Overrides{}); err == nil {
		t.Error("file errors should be returned")
	}
}
