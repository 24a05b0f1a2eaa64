package scene

import (
	"math"

	"github.com/philipparndt/segdraw/pkg/geometry"
)

// PerspectiveCamera looks from Position at Target. FovY is the vertical
// field of view in degrees; Zoom above 1 narrows it.
type PerspectiveCamera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FovY     float64
	Aspect   float64
	Zoom     float64
}

// NewPerspectiveCamera creates a camera with a 45 degree field of view
// looking down -Z from position
func NewPerspectiveCamera(position geometry.Vector3, aspect float64) *PerspectiveCamera {
	return &PerspectiveCamera{
		Position: position,
		Target:   position.Add(geometry.NewVector3(0, 0, -1)),
		Up:       geometry.NewVector3(0, 1, 0),
		FovY:     45,
		Aspect:   aspect,
		Zoom:     1,
	}
}

// FrameBounds places the camera so the whole box is in view, looking at
// its center from +Z
func (c *PerspectiveCamera) FrameBounds(bbox geometry.BoundingBox) {
	size := bbox.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	center := bbox.Center()

	c.Target = center
	c.Position = center.Add(geometry.NewVector3(0, 0, maxDim*2.0))
}

// EffectiveFovY returns the vertical field of view in degrees with zoom applied
func (c *PerspectiveCamera) EffectiveFovY() float64 {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	halfFov := c.FovY * math.Pi / 360
	return math.Atan(math.Tan(halfFov)/zoom) * 360 / math.Pi
}

// Ray returns the world-space ray through the normalized device position
// pointer, where (-1, -1) is the bottom-left corner of the viewport
func (c *PerspectiveCamera) Ray(pointer geometry.Vector2) geometry.Ray {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	halfHeight := math.Tan(c.EffectiveFovY() * math.Pi / 360)
	halfWidth := halfHeight * aspect

	dir := forward.
		Add(right.Mul(pointer.X * halfWidth)).
		Add(up.Mul(pointer.Y * halfHeight))

	return geometry.NewRay(c.Position, dir)
}

// Project maps a world point to normalized device coordinates and returns
// its depth along the view direction. Points behind the camera report a
// depth of zero or less.
func (c *PerspectiveCamera) Project(point geometry.Vector3) (geometry.Vector2, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)
	if z <= 0 {
		return geometry.Vector2{}, z
	}

	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	halfHeight := math.Tan(c.EffectiveFovY() * math.Pi / 360)

	return geometry.Vector2{
		X: x / (z * halfHeight * aspect),
		Y: y / (z * halfHeight),
	}, z
}
