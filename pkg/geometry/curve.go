package geometry

// LineCurve is the straight path between two points, parameterized by t in [0, 1]
type LineCurve struct {
	V1, V2 Vector3
}

// NewLineCurve creates a line curve
func NewLineCurve(v1, v2 Vector3) LineCurve {
	return LineCurve{V1: v1, V2: v2}
}

// PointAt returns the point at parameter t
func (c LineCurve) PointAt(t float64) Vector3 {
	if t <= 0 {
		return c.V1
	}
	if t >= 1 {
		return c.V2
	}
	return c.V1.Lerp(c.V2, t)
}

// Tangent returns the unit direction of the curve, or the zero vector when
// both ends coincide
func (c LineCurve) Tangent() Vector3 {
	return c.V2.Sub(c.V1).Normalize()
}

// Length returns the distance between the two ends
func (c LineCurve) Length() float64 {
	return c.V1.Distance(c.V2)
}
