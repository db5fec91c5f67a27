package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"sphere-raytracer/internal/raster"
)

// Format names an output encoding.
type Format string

const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists every supported output format.
var Formats = []Format{PPM, PNG, WebP, TGA, BMP, TIFF}

// ParseFormat accepts a format name or file extension, with or without dot.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(s), ".")
	if s == "tif" {
		return TIFF, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes buf to w in format f. Sink failures wrap ErrWriteFailed.
func Encode(w io.Writer, f Format, buf *raster.Buffer) error {
	if !buf.Complete() {
		return ErrIncomplete
	}
	if f == PPM {
		return WritePPM(w, buf.Width, buf.Height, buf.Pix)
	}

	img := buf.ToNRGBA()
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %s encode: %w", ErrWriteFailed, f, err)
	}
	return nil
}

// Save writes buf to path, picking the format from the extension and
// creating parent directories as needed.
func Save(path string, buf *raster.Buffer) error {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := Encode(out, f, buf); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}

// Decode reads an image in format f. Formats are never sniffed: TGA has no
// magic number to sniff by.
func Decode(r io.Reader, f Format) (image.Image, error) {
	var img image.Image
	var err error
	switch f {
	case PPM:
		img, err = ParsePPM(r)
	case PNG:
		img, err = png.Decode(r)
	case WebP:
		img, err = webp.Decode(r)
	case TGA:
		img, err = tga.Decode(r)
	case BMP:
		img, err = bmp.Decode(r)
	case TIFF:
		img, err = tiff.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", f, err)
	}
	return img, nil
}

// Load reads an image file, picking the decoder from the extension.
func Load(path string) (image.Image, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer in.Close()
	return Decode(in, f)
}
