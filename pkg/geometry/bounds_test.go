package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if !NewBoundingBox().IsEmpty() {
		t.Error("new bounding box should be empty")
	}
	if NewInfiniteBoundingBox().IsEmpty() {
		t.Error("infinite bounding box should not be empty")
	}
}

func TestBoundingBoxContainsPoint(t *testing.T) {
	bbox := NewBoundingBoxFromPoints(NewVector3(10, 10, 10), NewVector3(0, 0, 0))

	tests := []struct {
		point Vector3
		want  bool
	}{
		{NewVector3(5, 5, 5), true},
		{NewVector3(0, 0, 0), true},
		{NewVector3(10, 10, 10), true},
		{NewVector3(10.001, 5, 5), false},
		{NewVector3(5, -1, 5), false},
	}

	for _, tt := range tests {
		if got := bbox.ContainsPoint(tt.point); got != tt.want {
			t.Errorf("ContainsPoint(%v): expected %v, got %v", tt.point, tt.want, got)
		}
	}

	if !NewInfiniteBoundingBox().ContainsPoint(NewVector3(1e300, -1e300, 0)) {
		t.Error("infinite box should contain every finite point")
	}
	if NewBoundingBox().ContainsPoint(NewVector3(0, 0, 0)) {
		t.Error("empty box should not contain anything")
	}
}

func TestBoundingBoxSizeCenterVolume(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 4, 6))

	if size := bbox.Size(); size != NewVector3(2, 4, 6) {
		t.Errorf("Size failed: got %v", size)
	}
	if center := bbox.Center(); center != NewVector3(1, 2, 3) {
		t.Errorf("Center failed: got %v", center)
	}
	if volume := bbox.Volume(); math.Abs(volume-48) > 1e-10 {
		t.Errorf("Volume failed: expected 48, got %v", volume)
	}
}

func TestBoundingBoxExpand(t *testing.T) {
	bbox := NewBoundingBoxFromPoints(NewVector3(0, 0, 0), NewVector3(1, 1, 1)).Expand(0.5)

	if bbox.Min != NewVector3(-0.5, -0.5, -0.5) || bbox.Max != NewVector3(1.5, 1.5, 1.5) {
		t.Errorf("Expand failed: got %+v", bbox)
	}
}
