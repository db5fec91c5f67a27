package mathutil

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
// It doubles as an RGB color whose components are not clamped until output.
type Vec3 [3]float64

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale multiplies by a scalar. There is deliberately no vector*vector product.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector along v. A zero vector has no direction,
// so normalizing one is a caller bug and panics.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		panic("mathutil: normalize of zero-length vector")
	}
	return v.Div(l)
}

// Cosine returns the cosine of the angle between a and b raised to degree.
func (a Vec3) Cosine(b Vec3, degree float64) float64 {
	c := a.Dot(b) * (1 / (a.Len() * b.Len()))
	return math.Pow(c, degree)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
