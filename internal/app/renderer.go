package app

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/scene"
	"github.com/philipparndt/segdraw/pkg/stl"
)

// Light direction for baked lighting
var lightDir = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// shade darkens c by the diffuse light falling on a face with the given
// normal. Min 30% ambient, max 100% diffuse.
func shade(c color.RGBA, normal geometry.Vector3) rl.Color {
	intensity := math.Max(0.3, -normal.Dot(lightDir))
	return rl.NewColor(
		uint8(float64(c.R)*intensity),
		uint8(float64(c.G)*intensity),
		uint8(float64(c.B)*intensity),
		c.A,
	)
}

// stlToRaylibMesh converts an STL model to a Raylib mesh with baked lighting
func stlToRaylibMesh(model *stl.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	base := color.RGBA{R: 100, G: 120, B: 200, A: 255}

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()
		c := shade(base, normal)

		for _, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			colors[idx*4+0] = c.R
			colors[idx*4+1] = c.G
			colors[idx*4+2] = c.B
			colors[idx*4+3] = c.A
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// drawSegment renders the overlay meshes, the drawn tube among them, in
// immediate mode. The tube is rebuilt on every drag so it is not uploaded.
func (app *App) drawSegment() {
	rl.DisableBackfaceCulling()
	defer rl.EnableBackfaceCulling()

	for _, m := range app.Session.Scene.Meshes() {
		mesh, ok := m.(*scene.Mesh)
		if !ok || !mesh.Visible() {
			continue
		}

		col := mesh.Material().Color
		for _, tri := range mesh.Triangles() {
			rl.DrawTriangle3D(toRaylib(tri.V1), toRaylib(tri.V2), toRaylib(tri.V3), shade(col, tri.Normal))
		}
	}
}

// drawBoundingBox outlines the acceptance region when it is finite
func (app *App) drawBoundingBox() {
	box := app.Session.Drawer.BoundingBox()
	if !box.Min.IsFinite() || !box.Max.IsFinite() {
		return
	}

	rl.DrawBoundingBox(rl.BoundingBox{Min: toRaylib(box.Min), Max: toRaylib(box.Max)}, rl.NewColor(255, 200, 0, 160))
}
