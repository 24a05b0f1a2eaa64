package geometry

import "math"

// TubeGeometry is an indexed triangle mesh sweeping a circle of Radius along
// a LineCurve. Vertices are laid out ring by ring, RadialSegments+1 per ring
// (the seam vertex is duplicated), TubularSegments+1 rings.
type TubeGeometry struct {
	Path            LineCurve
	TubularSegments int
	Radius          float64
	RadialSegments  int
	Closed          bool

	Vertices []Vector3
	Normals  []Vector3
	Indices  []int
}

// NewTubeGeometry builds the tube mesh for path. Segment counts below one are
// raised to one.
func NewTubeGeometry(path LineCurve, tubularSegments int, radius float64, radialSegments int, closed bool) *TubeGeometry {
	if tubularSegments < 1 {
		tubularSegments = 1
	}
	if radialSegments < 1 {
		radialSegments = 1
	}

	g := &TubeGeometry{
		Path:            path,
		TubularSegments: tubularSegments,
		Radius:          radius,
		RadialSegments:  radialSegments,
		Closed:          closed,
	}

	tangent, normal, binormal := lineFrame(path)

	for i := 0; i < tubularSegments; i++ {
		g.addRing(float64(i)/float64(tubularSegments), tangent, normal, binormal)
	}
	if closed {
		g.addRing(0, tangent, normal, binormal)
	} else {
		g.addRing(1, tangent, normal, binormal)
	}

	ring := radialSegments + 1
	for j := 1; j <= tubularSegments; j++ {
		for i := 1; i <= radialSegments; i++ {
			a := ring*(j-1) + (i - 1)
			b := ring*j + (i - 1)
			c := ring*j + i
			d := ring*(j-1) + i
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}

	return g
}

// lineFrame picks a normal perpendicular to the tangent by starting from the
// world axis the tangent is least aligned with. A straight path keeps the
// same frame along its whole length.
func lineFrame(path LineCurve) (tangent, normal, binormal Vector3) {
	tangent = path.Tangent()
	if tangent == (Vector3{}) {
		tangent = Vector3{Z: 1}
	}

	smallest := math.MaxFloat64
	var axis Vector3
	tx, ty, tz := math.Abs(tangent.X), math.Abs(tangent.Y), math.Abs(tangent.Z)
	if tx <= smallest {
		smallest = tx
		axis = Vector3{X: 1}
	}
	if ty <= smallest {
		smallest = ty
		axis = Vector3{Y: 1}
	}
	if tz <= smallest {
		axis = Vector3{Z: 1}
	}

	side := tangent.Cross(axis).Normalize()
	normal = tangent.Cross(side)
	binormal = tangent.Cross(normal)
	return tangent, normal, binormal
}

func (g *TubeGeometry) addRing(t float64, tangent, normal, binormal Vector3) {
	center := g.Path.PointAt(t)
	for j := 0; j <= g.RadialSegments; j++ {
		v := float64(j) / float64(g.RadialSegments) * math.Pi * 2
		sin := math.Sin(v)
		cos := -math.Cos(v)

		n := normal.Mul(cos).Add(binormal.Mul(sin)).Normalize()
		g.Normals = append(g.Normals, n)
		g.Vertices = append(g.Vertices, center.Add(n.Mul(g.Radius)))
	}
}

// TriangleCount returns the number of faces in the mesh
func (g *TubeGeometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Triangles expands the index buffer into standalone triangles, with face
// normals taken from the winding order
func (g *TubeGeometry) Triangles() []Triangle {
	triangles := make([]Triangle, 0, g.TriangleCount())
	for i := 0; i+2 < len(g.Indices); i += 3 {
		tri := Triangle{
			V1: g.Vertices[g.Indices[i]],
			V2: g.Vertices[g.Indices[i+1]],
			V3: g.Vertices[g.Indices[i+2]],
		}
		tri.Normal = tri.CalculateNormal()
		triangles = append(triangles, tri)
	}
	return triangles
}

// Bounds returns the bounding box of all vertices
func (g *TubeGeometry) Bounds() BoundingBox {
	bbox := NewBoundingBox()
	for _, v := range g.Vertices {
		bbox.Extend(v)
	}
	return bbox
}
