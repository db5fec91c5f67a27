// Package imageio serializes finished raster buffers to image files.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"

	"sphere-raytracer/internal/mathutil"
	"sphere-raytracer/internal/raster"
)

var (
	// ErrWriteFailed wraps every failure of the underlying sink.
	ErrWriteFailed = errors.New("output write failed")
	// ErrIncomplete is returned for buffers with unset pixels.
	ErrIncomplete = errors.New("imageio: buffer has unset pixels")
	// ErrUnknownFormat is returned for unsupported file extensions.
	ErrUnknownFormat = errors.New("imageio: unknown format")
)

// WritePPM writes the ASCII "P3" bitmap: a "P3 W H" line, a "255" line, then
// one line per row with every pixel as "r g b " (trailing space included).
func WritePPM(w io.Writer, width, height int, colors []mathutil.Vec3) error {
	if len(colors) != width*height {
		return fmt.Errorf("imageio: %d colors for %dx%d image", len(colors), width, height)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3 %d %d\n255\n", width, height)
	for y := 0; y < height; y++ {
		for _, c := range colors[y*width : (y+1)*width] {
			fmt.Fprintf(bw, "%d %d %d ", raster.ToByte(c[0]), raster.ToByte(c[1]), raster.ToByte(c[2]))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// ParsePPM reads an ASCII "P3" bitmap. Comments start with '#' and run to
// the end of the line. Samples are rescaled when maxval is not 255.
func ParsePPM(r io.Reader) (*image.NRGBA, error) {
	fields, err := ppmFields(r)
	if err != nil {
		return nil, err
	}
	width, height, maxval, err := ppmHeader(fields)
	if err != nil {
		return nil, err
	}

	samples := fields[4:]
	if len(samples) < width*height*3 {
		return nil, fmt.Errorf("imageio: ppm has %d samples, want %d", len(samples), width*height*3)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		var rgb [3]uint8
		for k := 0; k < 3; k++ {
			v, err := strconv.Atoi(samples[i*3+k])
			if err != nil || v < 0 || v > maxval {
				return nil, fmt.Errorf("imageio: bad ppm sample %q", samples[i*3+k])
			}
			rgb[k] = uint8((v*255 + maxval/2) / maxval)
		}
		img.SetNRGBA(i%width, i/width, color.NRGBA{rgb[0], rgb[1], rgb[2], 255})
	}
	return img, nil
}

func ppmFields(r io.Reader) ([]string, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<26)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields = append(fields, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("imageio: read ppm: %w", err)
	}
	return fields, nil
}

func ppmHeader(fields []string) (width, height, maxval int, err error) {
	if len(fields) < 4 || fields[0] != "P3" {
		return 0, 0, 0, errors.New("imageio: not a P3 bitmap")
	}
	vals := [3]int{}
	for i := range vals {
		vals[i], err = strconv.Atoi(fields[1+i])
		if err != nil || vals[i] <= 0 {
			return 0, 0, 0, fmt.Errorf("imageio: bad ppm header field %q", fields[1+i])
		}
	}
	if vals[2] > 65535 {
		return 0, 0, 0, fmt.Errorf("imageio: ppm maxval %d", vals[2])
	}
	return vals[0], vals[1], vals[2], nil
}
