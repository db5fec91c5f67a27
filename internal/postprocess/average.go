package postprocess

import (
	"errors"
	"fmt"

	"sphere-raytracer/internal/raster"
)

// ErrSizeMismatch is returned when buffers of different sizes are combined.
var ErrSizeMismatch = errors.New("postprocess: buffer size mismatch")

// Average returns the per-pixel mean of bufs. Every input pixel must be set.
func Average(bufs ...*raster.Buffer) (*raster.Buffer, error) {
	if len(bufs) == 0 {
		return nil, errors.New("postprocess: nothing to average")
	}
	w, h := bufs[0].Width, bufs[0].Height
	for i, b := range bufs[1:] {
		if b.Width != w || b.Height != h {
			return nil, fmt.Errorf("%w: buffer %d is %dx%d, want %dx%d", ErrSizeMismatch, i+1, b.Width, b.Height, w, h)
		}
	}

	n := float64(len(bufs))
	out := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := bufs[0].At(x, y)
			for _, b := range bufs[1:] {
				sum = sum.Add(b.At(x, y))
			}
			out.Set(x, y, sum.Div(n))
		}
	}
	return out, nil
}
