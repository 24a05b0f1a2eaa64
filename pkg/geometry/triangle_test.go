package geometry

import (
	"math"
	"testing"
)

func unitTriangle() Triangle {
	return NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)
}

func TestTriangleArea(t *testing.T) {
	area := unitTriangle().Area()
	if math.Abs(area-4.5) > 1e-10 {
		t.Errorf("Area failed: expected 4.5, got %v", area)
	}
}

func TestTriangleCenter(t *testing.T) {
	center := unitTriangle().Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	normal := unitTriangle().CalculateNormal()
	if !normal.ApproxEqual(NewVector3(0, 0, 1), 1e-10) {
		t.Errorf("CalculateNormal failed: got %v", normal)
	}
}

func TestTriangleIntersectRay(t *testing.T) {
	tri := unitTriangle()

	tests := []struct {
		name     string
		ray      Ray
		wantHit  bool
		wantDist float64
	}{
		{"front face", NewRay(NewVector3(1, 1, 5), NewVector3(0, 0, -1)), true, 5},
		{"back face", NewRay(NewVector3(1, 1, -2), NewVector3(0, 0, 1)), true, 2},
		{"outside", NewRay(NewVector3(4, 4, 5), NewVector3(0, 0, -1)), false, 0},
		{"behind origin", NewRay(NewVector3(1, 1, 5), NewVector3(0, 0, 1)), false, 0},
		{"parallel", NewRay(NewVector3(1, 1, 1), NewVector3(1, 0, 0)), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, ok := tri.IntersectRay(tt.ray)
			if ok != tt.wantHit {
				t.Fatalf("expected hit=%v, got %v", tt.wantHit, ok)
			}
			if ok && math.Abs(dist-tt.wantDist) > 1e-10 {
				t.Errorf("expected distance %v, got %v", tt.wantDist, dist)
			}
		})
	}
}

func TestTriangleTranslate(t *testing.T) {
	moved := unitTriangle().Translate(NewVector3(1, 1, 1))
	if moved.V1 != NewVector3(1, 1, 1) || moved.V3 != NewVector3(1, 4, 1) {
		t.Errorf("Translate failed: got %+v", moved)
	}
}

func TestTriangleIntersectRayNaN(t *testing.T) {
	ray := Ray{Origin: NewVector3(1, 1, 5), Direction: NewVector3(math.NaN(), math.NaN(), math.NaN())}
	if _, ok := unitTriangle().IntersectRay(ray); ok {
		t.Error("a NaN ray must not hit")
	}
}
