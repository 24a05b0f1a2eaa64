package scene

import (
	"github.com/philipparndt/segdraw/pkg/segdraw"
)

// Scene owns the pickable hierarchy and the overlay meshes drawn on top of it
type Scene struct {
	Root   *Node
	meshes []segdraw.Mesh
}

// New creates a scene with an empty root node
func New() *Scene {
	return &Scene{Root: NewNode("root")}
}

// Add attaches an overlay mesh. Adding the same mesh twice is a no-op.
func (s *Scene) Add(mesh segdraw.Mesh) {
	if mesh == nil {
		return
	}
	for _, m := range s.meshes {
		if m == mesh {
			return
		}
	}
	s.meshes = append(s.meshes, mesh)
}

// Meshes returns the overlay meshes in insertion order
func (s *Scene) Meshes() []segdraw.Mesh {
	return s.meshes
}

// MeshByName returns the first overlay mesh with the given name
func (s *Scene) MeshByName(name string) (segdraw.Mesh, bool) {
	for _, m := range s.meshes {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

var (
	_ segdraw.Scene  = (*Scene)(nil)
	_ segdraw.Object = (*Node)(nil)
	_ segdraw.Mesh   = (*Mesh)(nil)
)
