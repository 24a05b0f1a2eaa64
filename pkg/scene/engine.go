// Package scene is the small rendering toolkit the segment drawer runs on:
// a node hierarchy that can be ray cast, meshes, and a perspective camera.
package scene

import (
	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/paint"
	"github.com/philipparndt/segdraw/pkg/segdraw"
)

// Engine builds tubes and meshes for segdraw. The zero value is ready to use.
type Engine struct{}

// NewTube builds a tube mesh around path
func (Engine) NewTube(path geometry.LineCurve, tubularSegments int, radius float64, radialSegments int, closed bool) *geometry.TubeGeometry {
	return geometry.NewTubeGeometry(path, tubularSegments, radius, radialSegments, closed)
}

// NewMesh creates a visible mesh
func (Engine) NewMesh(name string, geom *geometry.TubeGeometry, material paint.Material) segdraw.Mesh {
	return NewMesh(name, geom, material)
}

var _ segdraw.Engine = Engine{}
