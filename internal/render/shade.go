package render

import (
	"math"

	"sphere-raytracer/internal/geom"
	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/scene"
)

// ShadeConfig holds the local lighting parameters.
type ShadeConfig struct {
	// AmbientColor is scaled by each material's ambient coefficient. It is
	// black by default, so the ambient term contributes nothing.
	AmbientColor mathutil.Vec3
	// Shininess is the Blinn-Phong specular exponent.
	Shininess float64
}

// DefaultShadeConfig returns black ambient and shininess 50.
func DefaultShadeConfig() ShadeConfig {
	return ShadeConfig{
		AmbientColor: mathutil.Black,
		Shininess:    50,
	}
}

// Shade returns the direct lighting at a hit point: ambient plus, for each
// unoccluded light, a Lambert diffuse and a Blinn-Phong specular term.
//
// A light is skipped if its shadow ray hits anything at all, even beyond
// the light. The shadow ray starts exactly on the surface with no bias.
func (e *Engine) Shade(obj *geom.Sphere, hit, normal mathutil.Vec3, sc *scene.Scene) mathutil.Vec3 {
	m := obj.Material
	coeff := m.Coefficients()
	objColor := m.ColorAt(hit)
	viewDir := sc.Camera.Sub(hit).Normalize()

	color := e.opts.Shading.AmbientColor.Scale(coeff.Ambient)
	for _, light := range sc.Lights {
		toLight := geom.NewRay(hit, light.Position.Sub(hit))
		if _, blocker := FindNearest(toLight, sc.Objects); blocker != nil {
			continue
		}

		diffuse := math.Max(normal.Dot(toLight.Direction), 0)
		color = color.Add(objColor.Scale(coeff.Diffuse * diffuse))

		half := toLight.Direction.Add(viewDir).Normalize()
		spec := math.Pow(math.Max(normal.Dot(half), 0), e.opts.Shading.Shininess)
		color = color.Add(light.Color.Scale(coeff.Specular * spec))
	}
	return color
}
