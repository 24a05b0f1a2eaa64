// Package analysis measures drawn segments against the model they were
// drawn on.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/stl"
)

// ModelSummary contains the overall measurements of an STL model
type ModelSummary struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	AvgEdgeLength float64
}

// SummarizeModel measures the model once; the viewer shows it in the HUD
func SummarizeModel(model *stl.Model) ModelSummary {
	result := ModelSummary{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
		AvgEdgeLength: model.AvgEdgeLength(),
	}
	if result.TriangleCount > 0 {
		result.Dimensions = result.BoundingBox.Size()
	}
	return result
}

// SegmentReport describes a segment and how it relates to the model mesh
type SegmentReport struct {
	Start    geometry.Vector3
	End      geometry.Vector3
	Length   float64
	Delta    geometry.Vector3 // absolute per-axis extent
	Midpoint geometry.Vector3

	// Nearest mesh vertices to both ends, with their distance. Only set
	// when a model is given.
	NearestStart     geometry.Vector3
	NearestStartDist float64
	NearestEnd       geometry.Vector3
	NearestEndDist   float64
}

// MeasureSegment measures the segment from start to end. model may be nil.
func MeasureSegment(start, end geometry.Vector3, model *stl.Model) SegmentReport {
	d := end.Sub(start)
	r := SegmentReport{
		Start:    start,
		End:      end,
		Length:   d.Length(),
		Delta:    geometry.NewVector3(math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)),
		Midpoint: start.Lerp(end, 0.5),
	}

	if model != nil && model.TriangleCount() > 0 {
		r.NearestStart, r.NearestStartDist = FindNearestVertex(model, start)
		r.NearestEnd, r.NearestEndDist = FindNearestVertex(model, end)
	}
	return r
}

// FindNearestVertex finds the vertex in the model nearest to a given point
func FindNearestVertex(model *stl.Model, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearestVertex geometry.Vector3
	minDistance := math.MaxFloat64

	for _, triangle := range model.Triangles {
		for _, vertex := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			distance := point.Distance(vertex)
			if distance < minDistance {
				minDistance = distance
				nearestVertex = vertex
			}
		}
	}

	return nearestVertex, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
