package material

import (
	"testing"

	"sphere-raytracer/internal/mathutil"
)

func TestSolid_ColorAt(t *testing.T) {
	red := mathutil.Vec3{1, 0, 0}
	m := NewSolid(red)
	for _, p := range []mathutil.Vec3{{0, 0, 0}, {-3, 7, 100}} {
		if got := m.ColorAt(p); got != red {
			t.Errorf("ColorAt(%v) = %v, want red", p, got)
		}
	}
	if m.Coefficients() != DefaultCoefficients() {
		t.Errorf("coefficients = %+v", m.Coefficients())
	}
}

func TestChecker_ColorAt(t *testing.T) {
	c1 := mathutil.Vec3{1, 1, 1}
	c2 := mathutil.Vec3{0, 0, 0}
	m := NewChecker(c1, c2)

	tests := []struct {
		name string
		p    mathutil.Vec3
		want mathutil.Vec3
	}{
		// (x+5)*3 = 15 (odd), z*3 = 0 (even)
		{"origin", mathutil.Vec3{0, 0, 0}, c2},
		// (x+5)*3 = 15.3 -> 15, z*3 = 3.3 -> 3, both odd
		{"both odd", mathutil.Vec3{0.1, 0, 1.1}, c1},
		// step x by one cell: 16.3 -> 16 even
		{"next cell in x", mathutil.Vec3{0.1 + 1.0/3.0, 0, 1.1}, c2},
		// step z by one cell: 4.3 -> 4 even
		{"next cell in z", mathutil.Vec3{0.1, 0, 1.1 + 1.0/3.0}, c2},
		// diagonal neighbour keeps the color
		{"diagonal", mathutil.Vec3{0.1 + 1.0/3.0, 0, 1.1 + 1.0/3.0}, c1},
		// y never matters
		{"y ignored", mathutil.Vec3{0.1, 42, 1.1}, c1},
		// z*3 = -3.3 truncates to -3, odd like 3
		{"negative z", mathutil.Vec3{0.1, 0, -1.1}, c1},
		// z*3 = -0.3 truncates to 0, same cell as +0.3
		{"negative z near zero", mathutil.Vec3{0.1, 0, -0.1}, c2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ColorAt(tt.p); got != tt.want {
				t.Errorf("ColorAt(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestChecker_ParityFlipsAtBoundary(t *testing.T) {
	m := NewChecker(mathutil.Vec3{1, 1, 1}, mathutil.Vec3{0, 0, 0})
	const eps = 1e-6
	// (x+5)*3 crosses the integer 16 at x = 1/3
	boundary := 16.0/CheckerScale - CheckerOffsetX
	below := m.ColorAt(mathutil.Vec3{boundary - eps, 0, 0.5})
	above := m.ColorAt(mathutil.Vec3{boundary + eps, 0, 0.5})
	if below == above {
		t.Errorf("expected color flip across x=%f", boundary)
	}
}
