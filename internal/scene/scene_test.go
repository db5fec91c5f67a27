package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sphere-raytracer/internal/geom"
	"sphere-raytracer/internal/material"
	"sphere-raytracer/internal/mathutil"
)

const testSceneJSON = `{
  "camera": [0, 0, 0],
  "width": 40,
  "height": 30,
  "focus_object": 1,
  "objects": [
    {"center": [0, 101, 5], "radius": 100,
     "material": {"type": "checker", "color1": "#420500", "reflection": 0}},
    {"center": [0, 0, 5], "radius": 1,
     "material": {"color": "#FF0000", "ambient": 0.1, "reflection": 0}}
  ],
  "lights": [
    {"position": [0, -100, 5], "color": "#E6E6E6"},
    {"position": [5, -5, 0]}
  ]
}`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(testSceneJSON))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 40 || s.Height != 30 {
		t.Errorf("size = %dx%d", s.Width, s.Height)
	}
	if len(s.Objects) != 2 || len(s.Lights) != 2 {
		t.Fatalf("objects=%d lights=%d", len(s.Objects), len(s.Lights))
	}

	checker, ok := s.Objects[0].Material.(*material.Checker)
	if !ok {
		t.Fatalf("object 0 material = %T, want *material.Checker", s.Objects[0].Material)
	}
	if checker.Color2 != mathutil.Black {
		t.Errorf("checker color2 default = %v, want black", checker.Color2)
	}
	if checker.Coeff.Reflection != 0 || checker.Coeff.Diffuse != 1 {
		t.Errorf("checker coefficients = %+v", checker.Coeff)
	}

	solid, ok := s.Objects[1].Material.(*material.Solid)
	if !ok {
		t.Fatalf("object 1 material = %T, want *material.Solid", s.Objects[1].Material)
	}
	if solid.Color != (mathutil.Vec3{1, 0, 0}) || solid.Coeff.Ambient != 0.1 {
		t.Errorf("solid = %+v", solid)
	}

	if s.Lights[1].Color != mathutil.White {
		t.Errorf("default light color = %v, want white", s.Lights[1].Color)
	}

	fp, err := s.FocalPoint()
	if err != nil || fp != 5 {
		t.Errorf("FocalPoint = %f, %v", fp, err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad json", `{"width": }`},
		{"unknown material", `{"width":4,"height":4,"objects":[{"center":[0,0,0],"radius":1,"material":{"type":"glass"}}]}`},
		{"bad color", `{"width":4,"height":4,"objects":[{"center":[0,0,0],"radius":1,"material":{"color":"red"}}]}`},
		{"zero radius", `{"width":4,"height":4,"objects":[{"center":[0,0,0],"radius":0,"material":{}}]}`},
		{"tiny image", `{"width":1,"height":4}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidate_WrapsErrInvalid(t *testing.T) {
	s := &Scene{Width: 10, Height: 10, Objects: []*geom.Sphere{{Radius: -1, Material: material.NewSolid(mathutil.White)}}}
	if err := s.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(testSceneJSON), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Objects) != 2 {
		t.Errorf("objects = %d", len(s.Objects))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWithCamera_DoesNotMutate(t *testing.T) {
	base := Default()
	moved := base.WithCamera(mathutil.Vec3{1, 2, 3})
	if base.Camera != (mathutil.Vec3{0, -0.35, -1}) {
		t.Errorf("base camera changed to %v", base.Camera)
	}
	if moved.Camera != (mathutil.Vec3{1, 2, 3}) {
		t.Errorf("moved camera = %v", moved.Camera)
	}
	if len(moved.Objects) != len(base.Objects) {
		t.Error("objects not shared")
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	fp, err := s.FocalPoint()
	if err != nil {
		t.Fatal(err)
	}
	if fp != 0.7 {
		t.Errorf("focal point = %f, want 0.7", fp)
	}
	if len(s.Lights) != 4 || s.Lights[2] != s.Lights[3] {
		t.Errorf("lights = %+v", s.Lights)
	}
}

func TestFocalPoint_OutOfRange(t *testing.T) {
	s := &Scene{Width: 4, Height: 4, FocusObject: 2}
	if _, err := s.FocalPoint(); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}
