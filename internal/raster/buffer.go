package raster

import (
	"fmt"
	"image"
	"math"

	"sphere-raytracer/internal/mathutil"
)

// Buffer is a row-major grid of linear colors stored as flat slices for
// cache locality. Every pixel starts unset and must be written before it is
// read. Distinct pixels may be written from different goroutines.
type Buffer struct {
	Width  int
	Height int
	Pix    []mathutil.Vec3 // len = W*H
	set    []bool          // len = W*H
}

// New allocates a buffer with every pixel unset.
func New(w, h int) *Buffer {
	n := w * h
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]mathutil.Vec3, n),
		set:    make([]bool, n),
	}
}

func (b *Buffer) index(x, y int) int {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		panic(fmt.Sprintf("raster: pixel (%d,%d) outside %dx%d", x, y, b.Width, b.Height))
	}
	return y*b.Width + x
}

// Set writes the color at column x, row y.
func (b *Buffer) Set(x, y int, c mathutil.Vec3) {
	i := b.index(x, y)
	b.Pix[i] = c
	b.set[i] = true
}

// At reads the color at column x, row y. Reading an unset pixel panics.
func (b *Buffer) At(x, y int) mathutil.Vec3 {
	i := b.index(x, y)
	if !b.set[i] {
		panic(fmt.Sprintf("raster: read of unset pixel (%d,%d)", x, y))
	}
	return b.Pix[i]
}

// IsSet reports whether the pixel has been written.
func (b *Buffer) IsSet(x, y int) bool {
	return b.set[b.index(x, y)]
}

// Complete reports whether every pixel has been written.
func (b *Buffer) Complete() bool {
	for _, ok := range b.set {
		if !ok {
			return false
		}
	}
	return true
}

// Colors returns a row-major copy of the pixels.
func (b *Buffer) Colors() []mathutil.Vec3 {
	out := make([]mathutil.Vec3, len(b.Pix))
	copy(out, b.Pix)
	return out
}

// ToByte maps a color component to 0..255, rounding halves to even.
func ToByte(c float64) uint8 {
	v := c * 255
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.RoundToEven(v))
}

// ToNRGBA converts the buffer to an opaque 8-bit image.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, c := range b.Pix {
		off := i * 4
		img.Pix[off] = ToByte(c[0])
		img.Pix[off+1] = ToByte(c[1])
		img.Pix[off+2] = ToByte(c[2])
		img.Pix[off+3] = 255
	}
	return img
}

// FromImage builds a fully set buffer from an 8-bit image.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	buf := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			r, g, bl, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns 16-bit channels; the high byte is the 8-bit value.
			buf.Set(x, y, mathutil.Vec3{
				float64(r>>8) / 255.0,
				float64(g>>8) / 255.0,
				float64(bl>>8) / 255.0,
			})
		}
	}
	return buf
}
