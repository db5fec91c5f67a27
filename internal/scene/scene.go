package scene

import (
	"errors"
	"fmt"

	"sphere-raytracer/internal/geom"
	"sphere-raytracer/internal/mathutil"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("scene: invalid")

// Light is a point light with no distance falloff.
type Light struct {
	Position mathutil.Vec3
	Color    mathutil.Vec3
}

// Scene is everything a render needs. Objects and lights are shared and
// must not change after construction; use WithCamera to move the eye.
type Scene struct {
	Camera  mathutil.Vec3
	Objects []*geom.Sphere
	Lights  []Light
	Width   int
	Height  int

	// FocusObject indexes Objects; its center z is the depth-of-field focal point.
	FocusObject int
}

// WithCamera returns a shallow copy of s viewed from camera.
func (s *Scene) WithCamera(camera mathutil.Vec3) *Scene {
	cp := *s
	cp.Camera = camera
	return &cp
}

// WithSize returns a shallow copy of s rendered at width x height.
func (s *Scene) WithSize(width, height int) *Scene {
	cp := *s
	cp.Width = width
	cp.Height = height
	return &cp
}

// FocalPoint returns the z coordinate the depth-of-field pass focuses on.
func (s *Scene) FocalPoint() (float64, error) {
	if s.FocusObject < 0 || s.FocusObject >= len(s.Objects) {
		return 0, fmt.Errorf("%w: focus object %d out of range (%d objects)", ErrInvalid, s.FocusObject, len(s.Objects))
	}
	return s.Objects[s.FocusObject].Center.Z(), nil
}

// Validate rejects configurations the renderer cannot sample. The view plane
// step divides by width-1 and height-1, so both must be at least 2.
func (s *Scene) Validate() error {
	if s.Width < 2 || s.Height < 2 {
		return fmt.Errorf("%w: resolution %dx%d, need at least 2x2", ErrInvalid, s.Width, s.Height)
	}
	for i, obj := range s.Objects {
		if obj == nil {
			return fmt.Errorf("%w: object %d is nil", ErrInvalid, i)
		}
		if obj.Radius <= 0 {
			return fmt.Errorf("%w: object %d radius %g", ErrInvalid, i, obj.Radius)
		}
		if obj.Material == nil {
			return fmt.Errorf("%w: object %d has no material", ErrInvalid, i)
		}
	}
	return nil
}
