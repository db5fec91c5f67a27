package geom

import (
	"math"

	"sphere-raytracer/internal/material"
	"sphere-raytracer/internal/mathutil"
)

// Sphere is the only primitive. It is read-only once a render starts.
type Sphere struct {
	Center   mathutil.Vec3
	Radius   float64
	Material material.Material
}

// Intersects returns the distance to the nearer root of the ray/sphere
// quadratic. Only strictly positive distances count as hits, so a ray never
// reports the surface point it starts on at t=0.
func (s *Sphere) Intersects(ray Ray) (float64, bool) {
	sphereToRay := ray.Origin.Sub(s.Center)

	// a = 1 since the direction is unit length
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - s.Radius*s.Radius
	discriminant := b*b - 4*c
	if discriminant < 0 {
		return 0, false
	}

	dist := (-b - math.Sqrt(discriminant)) / 2
	if dist > 0 {
		return dist, true
	}
	return 0, false
}

// Normal returns the outward unit normal at a point on the surface.
func (s *Sphere) Normal(point mathutil.Vec3) mathutil.Vec3 {
	return point.Sub(s.Center).Normalize()
}
