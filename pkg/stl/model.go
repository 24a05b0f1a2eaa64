package stl

import (
	"github.com/philipparndt/segdraw/pkg/geometry"
)

// Model is a triangle soup loaded from an STL file
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle appends a facet. Facets stored without a normal get one
// computed from their winding order.
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	if triangle.Normal == (geometry.Vector3{}) {
		triangle.Normal = triangle.CalculateNormal()
	}
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// AvgEdgeLength samples up to 1000 facets and returns their mean edge
// length, or 1 for an empty model
func (m *Model) AvgEdgeLength() float64 {
	sampleSize := min(len(m.Triangles), 1000)
	if sampleSize == 0 {
		return 1.0
	}

	total := 0.0
	for _, tri := range m.Triangles[:sampleSize] {
		total += tri.V1.Distance(tri.V2) + tri.V2.Distance(tri.V3) + tri.V3.Distance(tri.V1)
	}
	return total / float64(sampleSize*3)
}
