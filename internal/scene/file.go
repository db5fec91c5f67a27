package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"sphere-raytracer/internal/geom"
	"sphere-raytracer/internal/material"
	"sphere-raytracer/internal/mathutil"
)

// fileScene matches the JSON scene schema.
type fileScene struct {
	Camera      mathutil.Vec3 `json:"camera"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	FocusObject int           `json:"focus_object"`
	Objects     []fileSphere  `json:"objects"`
	Lights      []fileLight   `json:"lights"`
}

type fileSphere struct {
	Center   mathutil.Vec3 `json:"center"`
	Radius   float64       `json:"radius"`
	Material fileMaterial  `json:"material"`
}

// fileMaterial leaves unset coefficients nil so defaults can fill them in.
type fileMaterial struct {
	Type       string   `json:"type"`
	Color      string   `json:"color"`
	Color1     string   `json:"color1"`
	Color2     string   `json:"color2"`
	Ambient    *float64 `json:"ambient"`
	Diffuse    *float64 `json:"diffuse"`
	Specular   *float64 `json:"specular"`
	Reflection *float64 `json:"reflection"`
}

type fileLight struct {
	Position mathutil.Vec3 `json:"position"`
	Color    string        `json:"color"`
}

// Load reads a JSON scene file and validates it.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a JSON scene document.
func Parse(data []byte) (*Scene, error) {
	var fs fileScene
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	s := &Scene{
		Camera:      fs.Camera,
		Width:       fs.Width,
		Height:      fs.Height,
		FocusObject: fs.FocusObject,
	}

	for i, fo := range fs.Objects {
		m, err := fo.Material.build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Objects = append(s.Objects, &geom.Sphere{Center: fo.Center, Radius: fo.Radius, Material: m})
	}

	for i, fl := range fs.Lights {
		c, err := hexOr(fl.Color, mathutil.White)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.Lights = append(s.Lights, Light{Position: fl.Position, Color: c})
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (fm fileMaterial) build() (material.Material, error) {
	coeff := material.DefaultCoefficients()
	if fm.Ambient != nil {
		coeff.Ambient = *fm.Ambient
	}
	if fm.Diffuse != nil {
		coeff.Diffuse = *fm.Diffuse
	}
	if fm.Specular != nil {
		coeff.Specular = *fm.Specular
	}
	if fm.Reflection != nil {
		coeff.Reflection = *fm.Reflection
	}

	switch strings.ToLower(fm.Type) {
	case "", "solid":
		c, err := hexOr(fm.Color, mathutil.White)
		if err != nil {
			return nil, err
		}
		return &material.Solid{Color: c, Coeff: coeff}, nil
	case "checker":
		c1, err := hexOr(fm.Color1, mathutil.White)
		if err != nil {
			return nil, err
		}
		c2, err := hexOr(fm.Color2, mathutil.Black)
		if err != nil {
			return nil, err
		}
		return &material.Checker{Color1: c1, Color2: c2, Coeff: coeff}, nil
	default:
		return nil, fmt.Errorf("unknown material type %q", fm.Type)
	}
}

func hexOr(hex string, def mathutil.Vec3) (mathutil.Vec3, error) {
	if hex == "" {
		return def, nil
	}
	return mathutil.ColorFromHex(hex)
}
