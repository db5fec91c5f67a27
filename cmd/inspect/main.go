package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"sphere-raytracer/internal/imageio"
)

// Prints the size of a rendered image and the bytes of the requested pixels
// (default: the corners and the center).
//
//	inspect out/default/focus.ppm [x y]...
func main() {
	if len(os.Args) < 2 || len(os.Args)%2 != 0 {
		fmt.Fprintln(os.Stderr, "usage: inspect <image> [x y]...")
		os.Exit(2)
	}
	path := os.Args[1]

	img, err := imageio.Load(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	fmt.Printf("%s: %dx%d\n", path, w, h)

	var points [][2]int
	for i := 2; i+1 < len(os.Args); i += 2 {
		x, errX := strconv.Atoi(os.Args[i])
		y, errY := strconv.Atoi(os.Args[i+1])
		if errX != nil || errY != nil {
			fmt.Fprintf(os.Stderr, "bad coordinate %q %q\n", os.Args[i], os.Args[i+1])
			os.Exit(2)
		}
		points = append(points, [2]int{x, y})
	}
	if len(points) == 0 {
		points = [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}, {w / 2, h / 2}}
	}

	for _, p := range points {
		if p[0] < 0 || p[0] >= w || p[1] < 0 || p[1] >= h {
			fmt.Printf("  (%d,%d): outside image\n", p[0], p[1])
			continue
		}
		c := color.NRGBAModel.Convert(img.At(b.Min.X+p[0], b.Min.Y+p[1])).(color.NRGBA)
		fmt.Printf("  (%d,%d): %d %d %d\n", p[0], p[1], c.R, c.G, c.B)
	}
}
