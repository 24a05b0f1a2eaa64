package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/segdraw/pkg/geometry"
)

type edge struct {
	a, b geometry.Vector3
}

// key orders the end points so shared edges of neighbouring facets match
func (e edge) key() edge {
	if e.b.X < e.a.X || (e.b.X == e.a.X && (e.b.Y < e.a.Y || (e.b.Y == e.a.Y && e.b.Z < e.a.Z))) {
		return edge{a: e.b, b: e.a}
	}
	return e
}

// drawWireframe renders the model edges, each shared edge once
func (app *App) drawWireframe() {
	wireframeColor := rl.NewColor(100, 100, 100, 200)
	drawnEdges := make(map[edge]bool)

	for _, triangle := range app.Session.Model().Triangles {
		for _, e := range [3]edge{{triangle.V1, triangle.V2}, {triangle.V2, triangle.V3}, {triangle.V3, triangle.V1}} {
			k := e.key()
			if drawnEdges[k] {
				continue
			}
			drawnEdges[k] = true
			rl.DrawLine3D(toRaylib(k.a), toRaylib(k.b), wireframeColor)
		}
	}
}
