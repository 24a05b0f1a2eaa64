// Package orbit implements orbit camera controls: rotate around a target,
// pan the target, dolly in and out, and zoom the lens.
package orbit

import (
	"math"

	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/scene"
	"github.com/philipparndt/segdraw/pkg/segdraw"
)

const (
	// maxPolar keeps the camera off the poles to avoid flipping over
	maxPolar    = math.Pi/2 - 0.01
	minDistance = 0.1
	minZoom     = 0.05
)

// Controls orbits a scene.PerspectiveCamera around Target. Input methods do
// nothing while the controls are disabled.
type Controls struct {
	camera *scene.PerspectiveCamera

	enabled  bool
	target   geometry.Vector3
	distance float64
	angleX   float64 // elevation
	angleY   float64 // azimuth

	// reset point, see SaveState
	target0   geometry.Vector3
	position0 geometry.Vector3
	zoom0     float64
}

// New creates enabled controls that keep the camera's current pose and
// record it as the reset point
func New(camera *scene.PerspectiveCamera) *Controls {
	c := &Controls{camera: camera, enabled: true}
	c.target = camera.Target
	c.setFromPosition(camera.Position)
	c.SaveState(camera.Target, camera.Position, camera.Zoom)
	return c
}

// Camera returns the driven camera
func (c *Controls) Camera() *scene.PerspectiveCamera { return c.camera }

// Enabled reports whether user input moves the camera
func (c *Controls) Enabled() bool { return c.enabled }

// SetEnabled turns user input on or off
func (c *Controls) SetEnabled(enabled bool) { c.enabled = enabled }

// Target returns the orbit center
func (c *Controls) Target() geometry.Vector3 { return c.target }

// Position returns the camera position
func (c *Controls) Position() geometry.Vector3 { return c.camera.Position }

// Zoom returns the lens zoom
func (c *Controls) Zoom() float64 { return c.camera.Zoom }

// Distance returns the distance from the camera to the target
func (c *Controls) Distance() float64 { return c.distance }

// Angles returns elevation and azimuth in radians
func (c *Controls) Angles() (angleX, angleY float64) { return c.angleX, c.angleY }

// SaveState records the pose Reset returns to
func (c *Controls) SaveState(target, position geometry.Vector3, zoom float64) {
	c.target0 = target
	c.position0 = position
	c.zoom0 = zoom
}

// Reset returns the camera to the saved pose. The position is restored
// exactly, not re-derived from the orbit angles.
func (c *Controls) Reset() {
	c.target = c.target0
	c.camera.Zoom = c.zoom0
	c.setFromPosition(c.position0)
	c.camera.Position = c.position0
	c.camera.Target = c.target0
}

// SetView moves the camera to the given orbit pose, bypassing the enabled
// flag. Used for view presets and animations.
func (c *Controls) SetView(target geometry.Vector3, distance, angleX, angleY float64) {
	c.target = target
	c.distance = math.Max(distance, minDistance)
	c.angleX = clamp(angleX, -maxPolar, maxPolar)
	c.angleY = angleY
	c.Update()
}

// Rotate orbits around the target
func (c *Controls) Rotate(deltaX, deltaY float64) {
	if !c.enabled {
		return
	}
	c.angleX = clamp(c.angleX+deltaX, -maxPolar, maxPolar)
	c.angleY += deltaY
	c.Update()
}

// Pan moves the target in the view plane. dx and dy are fractions of the
// camera distance.
func (c *Controls) Pan(dx, dy float64) {
	if !c.enabled {
		return
	}

	forward := c.target.Sub(c.camera.Position).Normalize()
	right := forward.Cross(c.camera.Up).Normalize()
	up := right.Cross(forward).Normalize()

	move := right.Mul(-dx * c.distance).Add(up.Mul(dy * c.distance))
	c.target = c.target.Add(move)
	c.Update()
}

// Dolly scales the distance to the target, factor below 1 moves closer
func (c *Controls) Dolly(factor float64) {
	if !c.enabled || factor <= 0 {
		return
	}
	c.distance = math.Max(c.distance*factor, minDistance)
	c.Update()
}

// ZoomBy scales the lens zoom
func (c *Controls) ZoomBy(factor float64) {
	if !c.enabled || factor <= 0 {
		return
	}
	c.camera.Zoom = math.Max(c.camera.Zoom*factor, minZoom)
}

// Update writes the orbit pose to the camera
func (c *Controls) Update() {
	x := c.distance * math.Cos(c.angleX) * math.Sin(c.angleY)
	y := c.distance * math.Sin(c.angleX)
	z := c.distance * math.Cos(c.angleX) * math.Cos(c.angleY)

	c.camera.Position = c.target.Add(geometry.NewVector3(x, y, z))
	c.camera.Target = c.target
}

// setFromPosition derives distance and angles from a camera position
func (c *Controls) setFromPosition(position geometry.Vector3) {
	offset := position.Sub(c.target)
	c.distance = math.Max(offset.Length(), minDistance)
	c.angleX = clamp(math.Asin(clamp(offset.Y/c.distance, -1, 1)), -maxPolar, maxPolar)
	c.angleY = math.Atan2(offset.X, offset.Z)
}

var _ segdraw.Controls = (*Controls)(nil)

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
