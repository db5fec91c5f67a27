package scene

import (
	"sphere-raytracer/internal/geom"
	"sphere-raytracer/internal/material"
	"sphere-raytracer/internal/mathutil"
)

// Default returns the reference scene: a huge checkered sphere acting as the
// floor, three colored balls and overhead lights. The world y axis points down.
func Default() *Scene {
	floor := material.NewChecker(mathutil.MustHex("#420500"), mathutil.MustHex("#E6B87D"))
	floor.Coeff.Ambient = 0.2
	floor.Coeff.Reflection = 0.2

	red := material.NewSolid(mathutil.MustHex("#FF0000"))
	red.Coeff.Ambient = 0.1

	green := material.NewSolid(mathutil.MustHex("#00FF00"))
	green.Coeff.Diffuse = 0.1

	blue := material.NewSolid(mathutil.MustHex("#0000FF"))
	blue.Coeff.Specular = 0.75

	objects := []*geom.Sphere{
		{Center: mathutil.Vec3{0, 10000.5, 1}, Radius: 10000, Material: floor},
		{Center: mathutil.Vec3{2, -0.5, 2.5}, Radius: 1, Material: red},
		{Center: mathutil.Vec3{-1.25, -0.5, 2}, Radius: 1, Material: green},
		{Center: mathutil.Vec3{0, 0, 0.7}, Radius: 0.5, Material: blue},
	}

	lightColor := mathutil.MustHex("#E6E6E6")
	l1 := Light{Position: mathutil.Vec3{-0.6, -7.5, 1.5}, Color: lightColor}
	l2 := Light{Position: mathutil.Vec3{-0.4, -7.5, -1.5}, Color: lightColor}
	l3 := Light{Position: mathutil.Vec3{-0.4, -7.5, 1.5}, Color: lightColor}

	return &Scene{
		Camera:  mathutil.Vec3{0, -0.35, -1},
		Objects: objects,
		// l3 is listed twice, doubling its contribution.
		Lights:      []Light{l1, l2, l3, l3},
		Width:       900,
		Height:      900,
		FocusObject: 3,
	}
}
