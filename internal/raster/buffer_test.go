package raster

import (
	"image"
	"image/color"
	"testing"

	"sphere-raytracer/internal/mathutil"
)

func TestBuffer_SetAt(t *testing.T) {
	b := New(3, 2)
	if b.Complete() {
		t.Fatal("new buffer reported complete")
	}
	c := mathutil.Vec3{0.1, 0.2, 0.3}
	b.Set(2, 1, c)
	if !b.IsSet(2, 1) || b.IsSet(0, 0) {
		t.Error("IsSet mismatch")
	}
	if got := b.At(2, 1); got != c {
		t.Errorf("At = %v, want %v", got, c)
	}
	if b.Pix[1*3+2] != c {
		t.Error("pixel not stored row-major")
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			b.Set(x, y, c)
		}
	}
	if !b.Complete() {
		t.Error("expected complete buffer")
	}
}

func TestBuffer_UnsetReadPanics(t *testing.T) {
	b := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic reading unset pixel")
		}
	}()
	b.At(1, 1)
}

func TestBuffer_OutOfRangePanics(t *testing.T) {
	b := New(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range write")
		}
	}()
	b.Set(2, 0, mathutil.Black)
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{-0.5, 0},
		{3.2, 255},
		{0.5, 128}, // 127.5 rounds to even
		{0.2, 51},
	}
	for _, tt := range tests {
		if got := ToByte(tt.in); got != tt.want {
			t.Errorf("ToByte(%f) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToNRGBA_FromImage(t *testing.T) {
	b := New(2, 1)
	b.Set(0, 0, mathutil.Vec3{1, 0, 0})
	b.Set(1, 0, mathutil.Vec3{0, 2, 0.2})

	img := b.ToNRGBA()
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel 0 = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{0, 255, 51, 255}) {
		t.Errorf("pixel 1 = %v", got)
	}

	back := FromImage(img)
	if back.Width != 2 || back.Height != 1 || !back.Complete() {
		t.Fatalf("FromImage = %dx%d complete=%t", back.Width, back.Height, back.Complete())
	}
	for x := 0; x < 2; x++ {
		want := img.NRGBAAt(x, 0)
		c := back.At(x, 0)
		if ToByte(c[0]) != want.R || ToByte(c[1]) != want.G || ToByte(c[2]) != want.B {
			t.Errorf("pixel %d round trip = %v, want %v", x, c, want)
		}
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(6, 5, color.NRGBA{0, 0, 255, 255})
	b := FromImage(src)
	if c := b.At(1, 0); c != (mathutil.Vec3{0, 0, 1}) {
		t.Errorf("At(1,0) = %v", c)
	}
}
