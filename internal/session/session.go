// Package session wires a model, a scene, an orbit camera and a segment
// drawer together. The viewer and the headless CLI commands share it.
package session

import (
	"fmt"
	"math"

	"github.com/philipparndt/segdraw/internal/config"
	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/orbit"
	"github.com/philipparndt/segdraw/pkg/scene"
	"github.com/philipparndt/segdraw/pkg/segdraw"
	"github.com/philipparndt/segdraw/pkg/stl"
)

// Initial orbit angles of the home view
const (
	homeAngleX = 0.3
	homeAngleY = 0.3
)

// Session is the drawing setup around one model
type Session struct {
	Scene     *scene.Scene
	Container *scene.Node
	Camera    *scene.PerspectiveCamera
	Controls  *orbit.Controls
	Drawer    *segdraw.Drawer

	model     *stl.Model
	modelNode *scene.Node
	cfg       config.Config
	home      View

	recording bool
	recorded  []DrawEvent
}

// View is an orbit pose
type View struct {
	Target   geometry.Vector3
	Distance float64
	AngleX   float64
	AngleY   float64
}

// DrawEvent is one draw notification
type DrawEvent struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// New builds the scene for model and frames the camera on it
func New(model *stl.Model, cfg config.Config) (*Session, error) {
	s := &Session{
		Scene:     scene.New(),
		Container: scene.NewNode("container"),
		model:     model,
		cfg:       cfg,
	}

	s.modelNode = scene.NewModelNode("", model)
	s.Container.Add(s.modelNode)
	s.Scene.Root.Add(s.Container)

	s.Camera = scene.NewPerspectiveCamera(geometry.Vector3{}, float64(cfg.Width)/float64(cfg.Height))
	s.Controls = orbit.New(s.Camera)
	s.Frame()

	dc := cfg.DrawerConfig()
	dc.Controls = s.Controls

	drawer, err := segdraw.New(scene.Engine{}, s.Container, s.Scene, s.Camera, dc)
	if err != nil {
		return nil, fmt.Errorf("failed to create drawer: %w", err)
	}
	s.Drawer = drawer

	if box, ok := cfg.BoundingBox(); ok {
		drawer.SetBoundingBox(box)
	}

	drawer.OnDraw(func(start, end geometry.Vector3) {
		if s.recording {
			s.recorded = append(s.recorded, DrawEvent{Start: start, End: end})
		}
	})

	return s, nil
}

// Model returns the current model
func (s *Session) Model() *stl.Model {
	return s.model
}

// Config returns the session settings
func (s *Session) Config() config.Config {
	return s.cfg
}

// Frame moves the camera to the home view of the model and records it as
// the reset point of the controls
func (s *Session) Frame() {
	target, distance := frameModel(s.model)
	s.home = View{Target: target, Distance: distance, AngleX: homeAngleX, AngleY: homeAngleY}
	s.Controls.SetView(target, distance, homeAngleX, homeAngleY)
	s.Camera.Zoom = 1
	s.Controls.SaveState(s.Controls.Target(), s.Controls.Position(), s.Controls.Zoom())
}

// Home returns the view set by the last Frame
func (s *Session) Home() View {
	return s.home
}

// CurrentView returns the orbit pose of the controls
func (s *Session) CurrentView() View {
	ax, ay := s.Controls.Angles()
	return View{
		Target:   s.Controls.Target(),
		Distance: s.Controls.Distance(),
		AngleX:   ax,
		AngleY:   ay,
	}
}

// frameModel returns the orbit center and a distance that fits the model
func frameModel(model *stl.Model) (geometry.Vector3, float64) {
	if model == nil || model.TriangleCount() == 0 {
		return geometry.Vector3{}, 10
	}

	bbox := model.BoundingBox()
	size := bbox.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim <= 0 {
		maxDim = 1
	}
	return bbox.Center(), maxDim * 2.0
}

// ReplaceModel swaps the model triangles in place. The drawer, its segment
// and its listeners are kept; the camera is not moved.
func (s *Session) ReplaceModel(model *stl.Model) {
	s.model = model
	s.modelNode.Name = model.Name
	s.modelNode.SetTriangles(model.Triangles)
}

// SetAspect updates the camera aspect ratio after a window resize
func (s *Session) SetAspect(width, height int) {
	if width > 0 && height > 0 {
		s.Camera.Aspect = float64(width) / float64(height)
	}
}

// Pick returns what the drawer would hit at the normalized pointer position
func (s *Session) Pick(pointer geometry.Vector2) (geometry.Hit, bool) {
	return s.Drawer.Raycast(pointer)
}

// PointerEvent converts a normalized position to a pixel event in the
// configured viewport
func (s *Session) PointerEvent(pointer geometry.Vector2) segdraw.PointerEvent {
	w, h := float64(s.cfg.Width), float64(s.cfg.Height)
	return segdraw.PointerEvent{
		ClientX: (pointer.X + 1) / 2 * w,
		ClientY: (1 - pointer.Y) / 2 * h,
		Width:   w,
		Height:  h,
	}
}

// TraceResult is the outcome of a replayed stroke
type TraceResult struct {
	Segment segdraw.Segment
	Draws   []DrawEvent
}

// Trace replays a full stroke: draw key down, press at from, steps moves
// towards to, release, draw key up
func (s *Session) Trace(from, to geometry.Vector2, steps int) TraceResult {
	if steps < 1 {
		steps = 1
	}

	s.recording = true
	s.recorded = nil
	defer func() { s.recording = false }()

	d := s.Drawer
	key := s.cfg.DrawKey

	d.KeyDown(key)
	d.PointerMove(s.PointerEvent(from))
	d.PointerDown(s.PointerEvent(from))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := geometry.NewVector2(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
		d.PointerMove(s.PointerEvent(p))
	}
	d.PointerUp(s.PointerEvent(to))
	d.KeyUp(key)

	return TraceResult{
		Segment: d.Segment(),
		Draws:   s.recorded,
	}
}
