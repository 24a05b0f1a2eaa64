package session

import (
	"math"
	"testing"

	"github.com/philipparndt/segdraw/internal/config"
	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/stl"
)

// plate is a 10x10 square in the y=0 plane, seen from above by the home view
func plate(name string, y float64) *stl.Model {
	m := stl.NewModel(name)
	a := geometry.NewVector3(-5, y, -5)
	b := geometry.NewVector3(5, y, -5)
	c := geometry.NewVector3(5, y, 5)
	d := geometry.NewVector3(-5, y, 5)
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, b, c))
	m.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, c, d))
	return m
}

func newSession(t *testing.T, cfg config.Config) *Session {
	t.Helper()
	s, err := New(plate("plate", 0), cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNewFramesModel(t *testing.T) {
	s := newSession(t, config.Default())

	if s.Controls.Target() != geometry.NewVector3(0, 0, 0) {
		t.Errorf("camera should target the model center, got %v", s.Controls.Target())
	}
	if math.Abs(s.Controls.Distance()-20) > 1e-9 {
		t.Errorf("expected distance 20, got %f", s.Controls.Distance())
	}
	if math.Abs(s.Camera.Aspect-1400.0/900.0) > 1e-12 {
		t.Errorf("unexpected aspect %f", s.Camera.Aspect)
	}
	if s.Camera.Position.Y <= 0 {
		t.Error("home view should look down onto the plate")
	}

	home, cur := s.Home(), s.CurrentView()
	if home.Target != cur.Target || math.Abs(home.Distance-cur.Distance) > 1e-9 ||
		math.Abs(home.AngleX-cur.AngleX) > 1e-9 || math.Abs(home.AngleY-cur.AngleY) > 1e-9 {
		t.Errorf("current view %+v should be the home view %+v", cur, home)
	}
}

func TestPickCenter(t *testing.T) {
	s := newSession(t, config.Default())

	hit, ok := s.Pick(geometry.NewVector2(0, 0))
	if !ok {
		t.Fatal("center ray should hit the plate")
	}
	if !hit.Point.ApproxEqual(geometry.NewVector3(0, 0, 0), 1e-9) {
		t.Errorf("expected hit at the origin, got %v", hit.Point)
	}

	if _, ok := s.Pick(geometry.NewVector2(1, 1)); ok {
		t.Error("corner ray should miss the plate")
	}
}

func TestPickRespectsBoundingBox(t *testing.T) {
	cfg := config.Default()
	cfg.BBoxMin = []float64{1, -1, 1}
	cfg.BBoxMax = []float64{5, 1, 5}
	s := newSession(t, cfg)

	if _, ok := s.Pick(geometry.NewVector2(0, 0)); ok {
		t.Error("origin is outside the configured box")
	}
}

func TestTrace(t *testing.T) {
	s := newSession(t, config.Default())
	home := s.Controls.Position()

	res := s.Trace(geometry.NewVector2(-0.1, 0), geometry.NewVector2(0.1, 0), 4)

	if !res.Segment.Visible || res.Segment.Active {
		t.Errorf("unexpected segment state: %+v", res.Segment)
	}
	if len(res.Draws) != 4 {
		t.Fatalf("expected 4 draw events, got %d", len(res.Draws))
	}
	last := res.Draws[len(res.Draws)-1]
	if last.Start != res.Segment.Start || last.End != res.Segment.End {
		t.Error("last draw event should match the final segment")
	}
	if math.Abs(res.Segment.Start.Y) > 1e-9 || math.Abs(res.Segment.End.Y) > 1e-9 {
		t.Errorf("segment should lie on the plate: %+v", res.Segment)
	}
	if res.Segment.Length() < 1 {
		t.Errorf("segment should span the stroke, length %f", res.Segment.Length())
	}

	if !s.Controls.Enabled() || !s.Controls.Position().ApproxEqual(home, 1e-12) {
		t.Error("controls should be back at the home view")
	}

	// Recording is limited to the trace
	s.Drawer.DrawSegment(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	if len(res.Draws) != 4 {
		t.Error("draws outside a trace should not be recorded")
	}
}

func TestTraceMissKeepsSegmentHidden(t *testing.T) {
	s := newSession(t, config.Default())

	res := s.Trace(geometry.NewVector2(0.99, 0.99), geometry.NewVector2(0.98, 0.98), 1)

	if res.Segment.Visible || len(res.Draws) != 0 {
		t.Errorf("a stroke off the model should draw nothing: %+v", res)
	}
}

func TestReplaceModelKeepsDrawer(t *testing.T) {
	s := newSession(t, config.Default())
	drawer := s.Drawer
	s.Drawer.DrawSegment(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))

	s.ReplaceModel(plate("raised", 0.5))

	if s.Drawer != drawer || !s.Drawer.Segment().Visible {
		t.Error("reload should keep the drawer and its segment")
	}
	if s.Model().Name != "raised" {
		t.Errorf("model not replaced: %s", s.Model().Name)
	}

	// aim at the raised center, the old plate would be hit at y=0 instead
	ndc, _ := s.Camera.Project(geometry.NewVector3(0, 0.5, 0))
	hit, ok := s.Pick(ndc)
	if !ok || math.Abs(hit.Point.Y-0.5) > 1e-9 {
		t.Errorf("pick should hit the replaced model, got %v %v", hit.Point, ok)
	}
	if !hit.Point.ApproxEqual(geometry.NewVector3(0, 0.5, 0), 1e-6) {
		t.Errorf("pick should land on the raised center, got %v", hit.Point)
	}
}

func TestPointerEventRoundTrip(t *testing.T) {
	s := newSession(t, config.Default())

	for _, p := range []geometry.Vector2{{X: 0, Y: 0}, {X: -1, Y: 1}, {X: 0.5, Y: -0.25}} {
		got := s.PointerEvent(p).Normalized()
		if math.Abs(got.X-p.X) > 1e-12 || math.Abs(got.Y-p.Y) > 1e-12 {
			t.Errorf("round trip of %v gave %v", p, got)
		}
	}
}

func TestEmptyModel(t *testing.T) {
	s, err := New(stl.NewModel("empty"), config.Default())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := s.Pick(geometry.NewVector2(0, 0)); ok {
		t.Error("empty model cannot be hit")
	}
}
