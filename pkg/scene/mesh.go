package scene

import (
	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/paint"
)

// Mesh is a drawable tube with a material
type Mesh struct {
	name     string
	geom     *geometry.TubeGeometry
	material paint.Material
	visible  bool
	version  int
}

// NewMesh creates a visible mesh
func NewMesh(name string, geom *geometry.TubeGeometry, material paint.Material) *Mesh {
	return &Mesh{
		name:     name,
		geom:     geom,
		material: material,
		visible:  true,
	}
}

// Name returns the mesh name
func (m *Mesh) Name() string { return m.name }

// Geometry returns the current geometry
func (m *Mesh) Geometry() *geometry.TubeGeometry { return m.geom }

// SetGeometry replaces the geometry and bumps the version
func (m *Mesh) SetGeometry(geom *geometry.TubeGeometry) {
	m.geom = geom
	m.version++
}

// Version counts geometry replacements, so renderers can tell when to
// re-upload
func (m *Mesh) Version() int { return m.version }

// Visible reports whether the mesh is drawn
func (m *Mesh) Visible() bool { return m.visible }

// SetVisible shows or hides the mesh
func (m *Mesh) SetVisible(visible bool) { m.visible = visible }

// Material returns the mesh material
func (m *Mesh) Material() paint.Material { return m.material }

// Triangles returns the faces of the current geometry
func (m *Mesh) Triangles() []geometry.Triangle {
	if m.geom == nil {
		return nil
	}
	return m.geom.Triangles()
}
