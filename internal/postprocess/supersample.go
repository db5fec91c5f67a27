package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/raster"
)

// Downsample shrinks a supersampled render to width x height with
// CatmullRom filtering. Colors are clamped to [0,1] and filtered at 16 bits
// per channel.
func Downsample(buf *raster.Buffer, width, height int) *raster.Buffer {
	if buf.Width == width && buf.Height == height {
		return buf
	}

	src := image.NewRGBA64(image.Rect(0, 0, buf.Width, buf.Height))
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.At(x, y)
			src.SetRGBA64(x, y, color.RGBA64{R: to16(c[0]), G: to16(c[1]), B: to16(c[2]), A: 0xffff})
		}
	}

	dst := image.NewRGBA64(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := raster.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := dst.RGBA64At(x, y)
			out.Set(x, y, mathutil.Vec3{
				float64(c.R) / 0xffff,
				float64(c.G) / 0xffff,
				float64(c.B) / 0xffff,
			})
		}
	}
	return out
}

func to16(v float64) uint16 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 0xffff
	}
	return uint16(v*0xffff + 0.5)
}
