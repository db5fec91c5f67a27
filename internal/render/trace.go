package render

import (
	"sphere-raytracer/internal/geom"
	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
)

// Trace returns the color seen along ray. depth is 0 for camera rays.
func (e *Engine) Trace(ray geom.Ray, sc *scene.Scene, depth int) mathutil.Vec3 {
	dist, obj := FindNearest(ray, sc.Objects)
	if obj == nil {
		return mathutil.Black
	}

	r := obj.Material.Coefficients().Reflection
	hit := ray.At(dist)
	normal := obj.Normal(hit)
	color := e.Shade(obj, hit, normal, sc)
	if depth >= ReflectionDepth || r <= 0 {
		return color
	}

	reflectedDir := ray.Direction.Sub(normal.Scale(2 * ray.Direction.Dot(normal)))
	reflected := geom.NewRay(hit.Add(normal.Scale(ReflectionBias)), reflectedDir)

	w := softReflectionWeights(hit, normal, reflectedDir)
	blend := e.reflectedBlend(reflected, sc, depth+1, w)

	return color.Scale(1 - r).Add(blend.Scale(r))
}

// reflectedBlend averages four traces of the same reflected ray, three of
// them weighted by w. Each trace is an independent recursive call unless
// SingleReflectionTrace is set; the results are identical either way.
func (e *Engine) reflectedBlend(ray geom.Ray, sc *scene.Scene, depth int, w [3]float64) mathutil.Vec3 {
	var t [4]mathutil.Vec3
	t[0] = e.Trace(ray, sc, depth)
	for k := 1; k < 4; k++ {
		if e.opts.SingleReflectionTrace {
			t[k] = t[0]
		} else {
			t[k] = e.Trace(ray, sc, depth)
		}
	}

	sum := t[0].Add(t[1].Scale(w[0])).Add(t[2].Scale(w[1])).Add(t[3].Scale(w[2]))
	return sum.Scale(1 / (1 + w[0] + w[1] + w[2]))
}

// mirror reflects a about n: n*(n.a)*2 - a.
func mirror(a, n mathutil.Vec3) mathutil.Vec3 {
	return n.Scale(n.Dot(a) * 2).Sub(a)
}

// softReflectionWeights nudges the mirror point of the reflected direction
// by ±eps in x and y and weights each nudge by its sharpened cosine to the
// unperturbed point, as seen from the hit. Only +x, -x and +y are used as
// weights; the -y nudge never contributes.
func softReflectionWeights(hit, normal, reflectedDir mathutil.Vec3) [3]float64 {
	r := mirror(reflectedDir.Neg(), normal)
	eps := SoftReflectionEps
	splits := [4]mathutil.Vec3{
		{r[0] + eps, r[1], r[2]},
		{r[0] - eps, r[1], r[2]},
		{r[0], r[1] + eps, r[2]},
		{r[0], r[1] - eps, r[2]},
	}

	toR := r.Sub(hit)
	var w [3]float64
	for k := range w {
		w[k] = toR.Cosine(splits[k].Sub(hit), SoftReflectionExponent)
	}
	return w
}
