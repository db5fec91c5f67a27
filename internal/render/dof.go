package render

import (
	"context"
	"fmt"

	"sphere-raytracer/internal/geom"
	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/postprocess"
	"sphere-raytracer/internal/raster"
	"sphere-raytracer/internal/scene"
)

// Depth-of-field camera jitter.
const (
	FocusJitter   = 0.05
	FocusLift     = 0.35
	FocusPullback = -100.0
	// FocusPlaneZ is the view plane depth before scaling by focal/2.
	FocusPlaneZ = 4.0
)

// DepthOfField holds the four jittered sub-renders and their average.
type DepthOfField struct {
	Cameras [4]mathutil.Vec3
	Passes  [4]*raster.Buffer
	Final   *raster.Buffer
}

// FocusCameras returns the four jittered eye positions around base.
// The last two subtract the offset, so their pullback points the other way.
func FocusCameras(base mathutil.Vec3) [4]mathutil.Vec3 {
	return [4]mathutil.Vec3{
		base.Add(mathutil.Vec3{FocusJitter, FocusLift, FocusPullback}),
		base.Add(mathutil.Vec3{0, FocusLift + FocusJitter, FocusPullback}),
		base.Sub(mathutil.Vec3{FocusJitter, FocusLift, FocusPullback}),
		base.Sub(mathutil.Vec3{0, FocusLift + FocusJitter, FocusPullback}),
	}
}

// RenderDepthOfField renders sc from each FocusCameras position, aiming
// every ray through the view plane scaled to the focus object's depth, and
// averages the passes. Each pass is written with its rows flipped.
func (e *Engine) RenderDepthOfField(ctx context.Context, sc *scene.Scene) (*DepthOfField, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	focal, err := sc.FocalPoint()
	if err != nil {
		return nil, err
	}

	dof := &DepthOfField{Cameras: FocusCameras(sc.Camera)}
	for k, cam := range dof.Cameras {
		buf, err := e.renderFocusPass(ctx, sc.WithCamera(cam), focal)
		if err != nil {
			return nil, fmt.Errorf("render: focus pass %d: %w", k, err)
		}
		dof.Passes[k] = buf
	}

	dof.Final, err = postprocess.Average(dof.Passes[:]...)
	if err != nil {
		return nil, err
	}
	return dof, nil
}

func (e *Engine) renderFocusPass(ctx context.Context, sc *scene.Scene, focal float64) (*raster.Buffer, error) {
	vp := newViewPlane(sc.Width, sc.Height)
	camera := sc.Camera
	h := sc.Height

	buf := raster.New(sc.Width, h)
	err := e.forEachRow(ctx, h, func(j int) {
		y := vp.y(j)
		for i := 0; i < sc.Width; i++ {
			buf.Set(i, h-1-j, e.Trace(focusRay(camera, vp.x(i), y, focal), sc, 0))
		}
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// focusRay aims from camera at (x, y, FocusPlaneZ) * focal/2.
func focusRay(camera mathutil.Vec3, x, y, focal float64) geom.Ray {
	target := mathutil.Vec3{x, y, FocusPlaneZ}.Scale(focal / 2)
	return geom.NewRay(camera, target.Sub(camera))
}
