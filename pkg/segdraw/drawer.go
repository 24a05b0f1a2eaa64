package segdraw

import (
	"errors"
	"math"

	"github.com/philipparndt/segdraw/pkg/geometry"
)

// ErrNoEngine is returned by New when no rendering engine is given
var ErrNoEngine = errors.New("segdraw: rendering engine is required")

// MeshName is the name given to the segment mesh
const MeshName = "sampling_segment"

// startOffset separates the two ends of a freshly started segment so the
// tube never has zero length
var startOffset = geometry.NewVector3(0.01, 0.01, 0.01)

// State is the interaction mode of a Drawer
type State int

const (
	Disabled State = iota
	Idle
	DrawModeArmed
	DrawingActive
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Idle:
		return "idle"
	case DrawModeArmed:
		return "armed"
	case DrawingActive:
		return "drawing"
	}
	return "unknown"
}

// Segment is a snapshot of the drawn segment
type Segment struct {
	Start   geometry.Vector3
	End     geometry.Vector3
	Visible bool
	// Active is true between a pointer press that started the segment and
	// the matching release
	Active bool
}

// Length returns the distance between both ends
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// ControlSnapshot is the camera pose captured when controls are suspended
type ControlSnapshot struct {
	Target   geometry.Vector3
	Position geometry.Vector3
	Zoom     float64
}

// Drawer is the interactive segment drawer. Create it with New.
type Drawer struct {
	engine    Engine
	container Object
	camera    Camera
	controls  Controls
	cfg       Config

	mesh    Mesh
	segment Segment

	pointer     geometry.Vector2
	extPointer  *geometry.Vector2
	pointerDown bool
	enabled     bool
	drawMode    bool
	bounds      geometry.BoundingBox
	snapshot    ControlSnapshot
	hasSnapshot bool
	listeners   listeners
}

// New creates a drawer casting rays from camera against container and
// adding its segment mesh to scn. Only engine is required: without a
// container or camera every ray cast misses, without a scene the mesh is
// simply not attached.
func New(engine Engine, container Object, scn Scene, camera Camera, cfg Config) (*Drawer, error) {
	if engine == nil {
		return nil, ErrNoEngine
	}

	cfg, material, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	d := &Drawer{
		engine:     engine,
		container:  container,
		camera:     camera,
		controls:   cfg.Controls,
		cfg:        cfg,
		extPointer: cfg.Pointer,
		pointer:    geometry.Vector2{X: math.Inf(1), Y: math.Inf(1)},
		enabled:    true,
		bounds:     geometry.NewInfiniteBoundingBox(),
	}

	origin := geometry.Vector3{}
	d.mesh = engine.NewMesh(MeshName, d.tube(origin, origin), material)
	d.mesh.SetVisible(false)
	if scn != nil {
		scn.Add(d.mesh)
	}

	return d, nil
}

// Config returns the effective configuration, defaults included
func (d *Drawer) Config() Config {
	return d.cfg
}

// Mesh returns the segment mesh
func (d *Drawer) Mesh() Mesh {
	return d.mesh
}

// Segment returns a copy of the current segment
func (d *Drawer) Segment() Segment {
	s := d.segment
	s.Visible = d.mesh.Visible()
	return s
}

// State returns the current interaction mode
func (d *Drawer) State() State {
	switch {
	case !d.enabled:
		return Disabled
	case d.segment.Active:
		return DrawingActive
	case d.drawMode:
		return DrawModeArmed
	default:
		return Idle
	}
}

// Enabled reports whether input events are processed
func (d *Drawer) Enabled() bool {
	return d.enabled
}

// Enable turns input processing on or off. Disabling keeps the draw mode
// and the suspended controls as they are, unless the drawer was configured
// with ResumeControlsOnDisable.
func (d *Drawer) Enable(enabled bool) {
	if !enabled && d.enabled && d.cfg.ResumeControlsOnDisable && d.drawMode {
		d.stopDrawMode()
	}
	d.enabled = enabled
}

// SetBoundingBox restricts accepted ray hits to box. The box is copied.
func (d *Drawer) SetBoundingBox(box geometry.BoundingBox) {
	d.bounds = box
}

// BoundingBox returns the current acceptance region
func (d *Drawer) BoundingBox() geometry.BoundingBox {
	return d.bounds
}

// Hide makes the segment invisible without touching its ends or the draw mode
func (d *Drawer) Hide() {
	d.mesh.SetVisible(false)
}

// DrawSegment places the segment between start and end, shows it and
// notifies Draw listeners
func (d *Drawer) DrawSegment(start, end geometry.Vector3) {
	d.segment.Start = start
	d.segment.End = end
	d.rebuild()
	d.mesh.SetVisible(true)
	d.emitDraw()
}

// Snapshot returns the last saved camera pose and whether one exists
func (d *Drawer) Snapshot() (ControlSnapshot, bool) {
	return d.snapshot, d.hasSnapshot
}

func (d *Drawer) tube(start, end geometry.Vector3) *geometry.TubeGeometry {
	path := geometry.NewLineCurve(start, end)
	return d.engine.NewTube(path, tubularSegments, d.cfg.Radius, radialSegments, false)
}

func (d *Drawer) rebuild() {
	d.mesh.SetGeometry(d.tube(d.segment.Start, d.segment.End))
}

// startSegment begins a stroke at point
func (d *Drawer) startSegment(point geometry.Vector3, ok bool) {
	if !ok {
		return
	}
	d.segment.Active = true
	d.segment.Start = point
	d.segment.End = point.Add(startOffset)
	d.rebuild()
	d.mesh.SetVisible(true)
}

// continueSegment moves the second end of the stroke to point
func (d *Drawer) continueSegment(point geometry.Vector3, ok bool) {
	if !ok {
		return
	}
	d.segment.End = point
	d.rebuild()
	d.emitDraw()
}
