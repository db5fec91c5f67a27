package imageio

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/raster"
)

func testBuffer() *raster.Buffer {
	red := mathutil.Vec3{1, 0, 0}
	green := mathutil.Vec3{0, 1, 0}
	blue := mathutil.Vec3{0, 0, 1}

	b := raster.New(3, 2)
	b.Set(0, 0, red)
	b.Set(1, 0, green)
	b.Set(2, 0, blue)
	b.Set(0, 1, red.Add(green))
	b.Set(1, 1, red.Add(blue).Add(green))
	b.Set(2, 1, red.Scale(0.001))
	return b
}

func TestWritePPM_Exact(t *testing.T) {
	var out bytes.Buffer
	b := testBuffer()
	if err := WritePPM(&out, b.Width, b.Height, b.Colors()); err != nil {
		t.Fatal(err)
	}
	want := "P3 3 2\n255\n" +
		"255 0 0 0 255 0 0 0 255 \n" +
		"255 255 0 255 255 255 0 0 0 \n"
	if out.String() != want {
		t.Errorf("got\n%q\nwant\n%q", out.String(), want)
	}
}

func TestWritePPM_ClampsOutOfRange(t *testing.T) {
	var out bytes.Buffer
	colors := []mathutil.Vec3{{2.5, -1, 0.5}}
	if err := WritePPM(&out, 1, 1, colors); err != nil {
		t.Fatal(err)
	}
	if want := "P3 1 1\n255\n255 0 128 \n"; out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestWritePPM_ShapeMismatch(t *testing.T) {
	if err := WritePPM(&bytes.Buffer{}, 2, 2, make([]mathutil.Vec3, 3)); err == nil {
		t.Error("expected error")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePPM_WriteFailure(t *testing.T) {
	b := testBuffer()
	err := WritePPM(failingWriter{}, b.Width, b.Height, b.Colors())
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("err = %v, want ErrWriteFailed", err)
	}
}

func TestPPM_RoundTripRed(t *testing.T) {
	b := raster.New(2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			b.Set(x, y, mathutil.Vec3{1, 0, 0})
		}
	}
	var out bytes.Buffer
	if err := Encode(&out, PPM, b); err != nil {
		t.Fatal(err)
	}
	img, err := ParsePPM(&out)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v, want (255,0,0)", got)
	}
}

func TestParsePPM(t *testing.T) {
	doc := "P3\n# made by hand\n2 1\n15\n15 0 0  0 15 7\n"
	img, err := ParsePPM(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel 0 = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{0, 255, 119, 255}) {
		t.Errorf("pixel 1 = %v", got)
	}

	for _, bad := range []string{"P6 1 1 255\n", "P3 1 1 255\n1 2\n", "P3 x 1 255\n", "P3 1 1 255\n1 2 300\n"} {
		if _, err := ParsePPM(strings.NewReader(bad)); err == nil {
			t.Errorf("ParsePPM(%q) succeeded, want error", bad)
		}
	}
}

func TestEncode_LosslessFormats(t *testing.T) {
	b := testBuffer()
	want := b.ToNRGBA()

	for _, f := range []Format{PNG, WebP, TGA, BMP, TIFF} {
		t.Run(string(f), func(t *testing.T) {
			var out bytes.Buffer
			if err := Encode(&out, f, b); err != nil {
				t.Fatal(err)
			}

			img, err := Decode(&out, f)
			if err != nil {
				t.Fatal(err)
			}

			bounds := img.Bounds()
			if bounds.Dx() != 3 || bounds.Dy() != 2 {
				t.Fatalf("size = %dx%d", bounds.Dx(), bounds.Dy())
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					got := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
					if got != want.NRGBAAt(x, y) {
						t.Errorf("(%d,%d) = %v, want %v", x, y, got, want.NRGBAAt(x, y))
					}
				}
			}
		})
	}
}

func TestEncode_Incomplete(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, PNG, raster.New(2, 2)); !errors.Is(err, ErrIncomplete) {
		t.Errorf("err = %v, want ErrIncomplete", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"ppm": PPM, ".PNG": PNG, "webp": WebP, ".tga": TGA, "bmp": BMP, ".tif": TIFF, "tiff": TIFF,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat(".jpg"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.ppm")
	if err := Save(path, testBuffer()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3 3 2\n255\n") {
		t.Errorf("unexpected header: %q", data[:12])
	}

	// A directory where the file should go makes Create fail.
	blocked := filepath.Join(dir, "blocked.png")
	if err := os.Mkdir(blocked, 0755); err != nil {
		t.Fatal(err)
	}
	if err := Save(blocked, testBuffer()); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("err = %v, want ErrWriteFailed", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tga")
	if err := Save(path, testBuffer()); err != nil {
		t.Fatal(err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	got := color.NRGBAModel.Convert(img.At(img.Bounds().Min.X+2, img.Bounds().Min.Y)).(color.NRGBA)
	if got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("pixel = %v, want blue", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
