package segdraw

import (
	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/paint"
)

// Engine builds the visual pieces of the segment. It is the one collaborator
// the drawer cannot work without.
type Engine interface {
	NewTube(path geometry.LineCurve, tubularSegments int, radius float64, radialSegments int, closed bool) *geometry.TubeGeometry
	NewMesh(name string, geom *geometry.TubeGeometry, material paint.Material) Mesh
}

// Mesh is a visual node whose geometry can be swapped and which can be shown
// or hidden
type Mesh interface {
	Name() string
	Geometry() *geometry.TubeGeometry
	SetGeometry(geom *geometry.TubeGeometry)
	Visible() bool
	SetVisible(visible bool)
}

// Object is the container the pointer ray is cast against. Hits must be
// ordered nearest first.
type Object interface {
	Intersect(ray geometry.Ray, recursive bool) []geometry.Hit
}

// Scene receives the segment mesh once, at construction
type Scene interface {
	Add(mesh Mesh)
}

// Camera turns a normalized pointer position into a world-space ray
type Camera interface {
	Ray(pointer geometry.Vector2) geometry.Ray
}

// Controls is the camera navigation the drawer suspends while draw mode is
// armed. SaveState stores the pose Reset returns to.
type Controls interface {
	Enabled() bool
	SetEnabled(enabled bool)
	Target() geometry.Vector3
	Position() geometry.Vector3
	Zoom() float64
	SaveState(target, position geometry.Vector3, zoom float64)
	Reset()
}
