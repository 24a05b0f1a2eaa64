package segdraw

import (
	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/paint"
)

type fakeMesh struct {
	name     string
	geom     *geometry.TubeGeometry
	material paint.Material
	visible  bool
	rebuilds int
}

func (m *fakeMesh) Name() string                            { return m.name }
func (m *fakeMesh) Geometry() *geometry.TubeGeometry        { return m.geom }
func (m *fakeMesh) SetGeometry(geom *geometry.TubeGeometry) { m.geom = geom; m.rebuilds++ }
func (m *fakeMesh) Visible() bool                           { return m.visible }
func (m *fakeMesh) SetVisible(visible bool)                 { m.visible = visible }

type fakeEngine struct {
	meshes []*fakeMesh
}

func (e *fakeEngine) NewTube(path geometry.LineCurve, tubularSegments int, radius float64, radialSegments int, closed bool) *geometry.TubeGeometry {
	return geometry.NewTubeGeometry(path, tubularSegments, radius, radialSegments, closed)
}

func (e *fakeEngine) NewMesh(name string, geom *geometry.TubeGeometry, material paint.Material) Mesh {
	m := &fakeMesh{name: name, geom: geom, material: material, visible: true}
	e.meshes = append(e.meshes, m)
	return m
}

type fakeScene struct {
	added []Mesh
}

func (s *fakeScene) Add(mesh Mesh) { s.added = append(s.added, mesh) }

// fakeCamera remembers the pointer of the last ray it produced
type fakeCamera struct {
	last  geometry.Vector2
	calls int
}

func (c *fakeCamera) Ray(pointer geometry.Vector2) geometry.Ray {
	c.last = pointer
	c.calls++
	return geometry.NewRay(geometry.NewVector3(pointer.X, pointer.Y, 10), geometry.NewVector3(0, 0, -1))
}

// fakeObject returns whatever hits the test put under the cursor
type fakeObject struct {
	hits      []geometry.Hit
	recursive bool
}

func (o *fakeObject) Intersect(ray geometry.Ray, recursive bool) []geometry.Hit {
	o.recursive = recursive
	return o.hits
}

func (o *fakeObject) under(points ...geometry.Vector3) {
	o.hits = o.hits[:0]
	for i, p := range points {
		o.hits = append(o.hits, geometry.Hit{Distance: float64(i + 1), Point: p})
	}
}

type fakeControls struct {
	enabled  bool
	target   geometry.Vector3
	position geometry.Vector3
	zoom     float64

	target0   geometry.Vector3
	position0 geometry.Vector3
	zoom0     float64
	resets    int
}

func newFakeControls() *fakeControls {
	return &fakeControls{
		enabled:  true,
		target:   geometry.NewVector3(0, 0, 0),
		position: geometry.NewVector3(0, 0, 10),
		zoom:     1,
	}
}

func (c *fakeControls) Enabled() bool              { return c.enabled }
func (c *fakeControls) SetEnabled(enabled bool)    { c.enabled = enabled }
func (c *fakeControls) Target() geometry.Vector3   { return c.target }
func (c *fakeControls) Position() geometry.Vector3 { return c.position }
func (c *fakeControls) Zoom() float64              { return c.zoom }

func (c *fakeControls) SaveState(target, position geometry.Vector3, zoom float64) {
	c.target0, c.position0, c.zoom0 = target, position, zoom
}

func (c *fakeControls) Reset() {
	c.target, c.position, c.zoom = c.target0, c.position0, c.zoom0
	c.resets++
}

type harness struct {
	drawer   *Drawer
	engine   *fakeEngine
	scene    *fakeScene
	camera   *fakeCamera
	object   *fakeObject
	controls *fakeControls
	events   []string
	draws    [][2]geometry.Vector3
}

func newHarness(cfg Config) (*harness, error) {
	h := &harness{
		engine:   &fakeEngine{},
		scene:    &fakeScene{},
		camera:   &fakeCamera{},
		object:   &fakeObject{},
		controls: newFakeControls(),
	}
	if cfg.Controls == nil {
		cfg.Controls = h.controls
	}

	d, err := New(h.engine, h.object, h.scene, h.camera, cfg)
	if err != nil {
		return nil, err
	}
	h.drawer = d

	d.OnStartInteraction(func() { h.events = append(h.events, "start") })
	d.OnStopInteraction(func() { h.events = append(h.events, "stop") })
	d.OnDraw(func(start, end geometry.Vector3) {
		h.events = append(h.events, "draw")
		h.draws = append(h.draws, [2]geometry.Vector3{start, end})
	})
	return h, nil
}

func (h *harness) mesh() *fakeMesh {
	return h.engine.meshes[0]
}

func (h *harness) count(event string) int {
	n := 0
	for _, e := range h.events {
		if e == event {
			n++
		}
	}
	return n
}

// center is a pointer event in the middle of a 200x100 viewport
var center = PointerEvent{ClientX: 100, ClientY: 50, Width: 200, Height: 100}
