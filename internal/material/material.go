// Package material evaluates surface color at world-space hit points.
package material

import (
	"math"

	"sphere-raytracer/internal/mathutil"
)

// Coefficients weight the shading terms of a surface. Reflection 0 disables
// the recursive bounce.
type Coefficients struct {
	Ambient    float64 `json:"ambient"`
	Diffuse    float64 `json:"diffuse"`
	Specular   float64 `json:"specular"`
	Reflection float64 `json:"reflection"`
}

// DefaultCoefficients returns ambient 0.05, diffuse 1, specular 1, reflection 0.5.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Ambient:    0.05,
		Diffuse:    1.0,
		Specular:   1.0,
		Reflection: 0.5,
	}
}

// Material returns the surface color at a point plus its fixed coefficients.
type Material interface {
	ColorAt(p mathutil.Vec3) mathutil.Vec3
	Coefficients() Coefficients
}

// Solid is a single constant color.
type Solid struct {
	Color mathutil.Vec3
	Coeff Coefficients
}

// NewSolid creates a solid material with default coefficients.
func NewSolid(color mathutil.Vec3) *Solid {
	return &Solid{Color: color, Coeff: DefaultCoefficients()}
}

func (s *Solid) ColorAt(mathutil.Vec3) mathutil.Vec3 { return s.Color }

func (s *Solid) Coefficients() Coefficients { return s.Coeff }

// Checker cell geometry in world units.
const (
	CheckerOffsetX = 5.0
	CheckerScale   = 3.0
)

// Checker alternates two colors on a grid over the x/z plane. Cells are
// 1/CheckerScale wide; y is ignored.
type Checker struct {
	Color1 mathutil.Vec3
	Color2 mathutil.Vec3
	Coeff  Coefficients
}

// NewChecker creates a checker with default coefficients.
func NewChecker(color1, color2 mathutil.Vec3) *Checker {
	return &Checker{Color1: color1, Color2: color2, Coeff: DefaultCoefficients()}
}

func (c *Checker) ColorAt(p mathutil.Vec3) mathutil.Vec3 {
	if parity((p[0]+CheckerOffsetX)*CheckerScale) == parity(p[2]*CheckerScale) {
		return c.Color1
	}
	return c.Color2
}

func (c *Checker) Coefficients() Coefficients { return c.Coeff }

// parity truncates toward zero and returns 0 or 1. Negative integers take
// the parity of their magnitude.
func parity(v float64) int {
	return int(math.Trunc(v)) & 1
}
