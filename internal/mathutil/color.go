package mathutil

import (
	"fmt"
	"strconv"
)

// Black is the zero color.
var Black = Vec3{}

// White is full intensity on every channel.
var White = Vec3{1, 1, 1}

// ColorFromHex parses "#RRGGBB" into a color with components in [0,1].
func ColorFromHex(hex string) (Vec3, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return Vec3{}, fmt.Errorf("mathutil: bad hex color %q", hex)
	}
	var c Vec3
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Vec3{}, fmt.Errorf("mathutil: bad hex color %q: %w", hex, err)
		}
		c[i] = float64(n) / 255.0
	}
	return c, nil
}

// MustHex is ColorFromHex for literals known to be valid.
func MustHex(hex string) Vec3 {
	c, err := ColorFromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}
