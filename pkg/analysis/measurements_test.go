package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/stl"
)

func unitSquare() *stl.Model {
	m := stl.NewModel("square")
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(1, 1, 0)
	d := geometry.NewVector3(0, 1, 0)
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, b, c))
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, c, d))
	return m
}

func TestSummarizeModel(t *testing.T) {
	s := SummarizeModel(unitSquare())

	if s.TriangleCount != 2 {
		t.Errorf("expected 2 triangles, got %d", s.TriangleCount)
	}
	if math.Abs(s.SurfaceArea-1) > 1e-10 {
		t.Errorf("expected area 1, got %f", s.SurfaceArea)
	}
	if s.Dimensions != geometry.NewVector3(1, 1, 0) {
		t.Errorf("unexpected dimensions %v", s.Dimensions)
	}
}

func TestSummarizeEmptyModel(t *testing.T) {
	s := SummarizeModel(stl.NewModel("empty"))
	if s.TriangleCount != 0 || s.Dimensions != (geometry.Vector3{}) || s.AvgEdgeLength != 1 {
		t.Errorf("unexpected summary for empty model: %+v", s)
	}
}

func TestMeasureSegment(t *testing.T) {
	start := geometry.NewVector3(0.1, 0.1, 0)
	end := geometry.NewVector3(0.9, -0.5, 0)

	r := MeasureSegment(start, end, unitSquare())

	if math.Abs(r.Length-1.0) > 1e-10 {
		t.Errorf("expected length 1, got %f", r.Length)
	}
	if !r.Delta.ApproxEqual(geometry.NewVector3(0.8, 0.6, 0), 1e-10) {
		t.Errorf("unexpected delta %v", r.Delta)
	}
	if !r.Midpoint.ApproxEqual(geometry.NewVector3(0.5, -0.2, 0), 1e-10) {
		t.Errorf("unexpected midpoint %v", r.Midpoint)
	}
	if r.NearestStart != geometry.NewVector3(0, 0, 0) {
		t.Errorf("unexpected nearest start vertex %v", r.NearestStart)
	}
	if r.NearestEnd != geometry.NewVector3(1, 0, 0) {
		t.Errorf("unexpected nearest end vertex %v", r.NearestEnd)
	}
	if math.Abs(r.NearestStartDist-math.Sqrt(0.02)) > 1e-10 {
		t.Errorf("unexpected start distance %f", r.NearestStartDist)
	}
}

func TestMeasureSegmentWithoutModel(t *testing.T) {
	r := MeasureSegment(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 0, 2), nil)
	if r.Length != 2 || r.NearestStartDist != 0 {
		t.Errorf("unexpected report %+v", r)
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatVector(geometry.NewVector3(1, 2.5, -3)); got != "(1.000000, 2.500000, -3.000000)" {
		t.Errorf("unexpected vector format %q", got)
	}
	if got := FormatMeasurement(2, ""); got != "2.000000 units" {
		t.Errorf("unexpected measurement format %q", got)
	}
	if got := FormatMeasurement(2, "mm"); got != "2.000000 mm" {
		t.Errorf("unexpected measurement format %q", got)
	}
}
