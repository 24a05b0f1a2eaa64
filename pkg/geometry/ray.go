package geometry

import "math"

// Ray is a half line starting at Origin. Direction is kept normalized so the
// distances reported by intersection tests are world units.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectBox returns the entry distance of the ray into the box using the
// slab method. A ray starting inside the box reports 0.
func (r Ray) IntersectBox(b BoundingBox) (float64, bool) {
	if b.IsEmpty() || !r.Origin.IsFinite() || !r.Direction.IsFinite() {
		return 0, false
	}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[axis]
		t1 := (lo[axis] - origin[axis]) * inv
		t2 := (hi[axis] - origin[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	return math.Max(tMin, 0), true
}

// Hit is a single ray intersection in world space
type Hit struct {
	Distance float64
	Point    Vector3
	Object   string // name of the node that was hit
	Face     int    // triangle index within that node
}
