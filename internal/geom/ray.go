package geom

import "sphere-raytracer/internal/mathutil"

// Ray is a half-line with a unit-length direction.
type Ray struct {
	Origin    mathutil.Vec3
	Direction mathutil.Vec3
}

// NewRay normalizes direction; a zero direction panics.
func NewRay(origin, direction mathutil.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
