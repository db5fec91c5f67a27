package render

import (
	"sphere-raytracer/internal/geom"
	"sphere-raytracer/internal/mathutil"
)

// viewPlane maps pixel indices onto the [-1,1] x [-1/aspect,1/aspect] plane.
type viewPlane struct {
	x0, xstep float64
	y0, ystep float64
}

func newViewPlane(width, height int) viewPlane {
	aspect := float64(width) / float64(height)
	x0, x1 := -1.0, 1.0
	y0, y1 := -1.0/aspect, 1.0/aspect
	return viewPlane{
		x0:    x0,
		xstep: (x1 - x0) / float64(width-1),
		y0:    y0,
		ystep: (y1 - y0) / float64(height-1),
	}
}

func (vp viewPlane) x(i int) float64 { return vp.x0 + vp.xstep*float64(i) }
func (vp viewPlane) y(j int) float64 { return vp.y0 + vp.ystep*float64(j) }

// primaryRay aims from camera through the view plane point (x, y, 0).
// The camera must not lie on that plane point.
func primaryRay(camera mathutil.Vec3, x, y float64) geom.Ray {
	return geom.NewRay(camera, mathutil.Vec3{x, y, 0}.Sub(camera))
}
