// math/math_test.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
	"testing"
)

func TestDegreesRadians(t *testing.T) {
	cases := []struct{ deg, rad float64 }{
		{0, 0},
		{90, gomath.Pi / 2},
		{180, gomath.Pi},
		{-45, -gomath.Pi / 4},
		{360, 2 * gomath.Pi},
	}
	for _, c := range cases {
		if got := Radians(c.deg); !AlmostEqual(got, c.rad, 1e-12) {
			t.Errorf("Radians(%g) = %g, expected %g", c.deg, got, c.rad)
		}
		if got := Degrees(c.rad); !AlmostEqual(got, c.deg, 1e-12) {
			t.Errorf("Degrees(%g) = %g, expected %g", c.rad, got, c.deg)
		}
	}
}

func TestAngleFix(t *testing.T) {
	cases := []struct{ in, out float64 }{
		{0, 0},
		{2 * gomath.Pi, 0},
		{-gomath.Pi / 2, 3 * gomath.Pi / 2},
		{5 * gomath.Pi, gomath.Pi},
	}
	for _, c := range cases {
		if got := AngleFix2Pi(c.in); !AlmostEqual(got, c.out, 1e-12) {
			t.Errorf("AngleFix2Pi(%g) = %g, expected %g", c.in, got, c.out)
		}
	}

	if got := AngleFixPi(3 * gomath.Pi / 2); !AlmostEqual(got, -gomath.Pi/2, 1e-12) {
		t.Errorf("AngleFixPi(3pi/2) = %g", got)
	}
	if got := AngleFix360(-90); got != 270 {
		t.Errorf("AngleFix360(-90) = %g", got)
	}
	if got := AngleFix360(720); got != 0 {
		t.Errorf("AngleFix360(720) = %g", got)
	}
	if got := AngleFix90(123); got != 90 {
		t.Errorf("AngleFix90(123) = %g", got)
	}
}

func TestClampAbs(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5,0,3) = %d", got)
	}
	if got := Clamp(-1.5, 0.0, 3.0); got != 0 {
		t.Errorf("Clamp(-1.5,0,3) = %g", got)
	}
	if got := Abs(-7); got != 7 {
		t.Errorf("Abs(-7) = %d", got)
	}
}

func TestVec3(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := Add3(a, b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add3 = %v", got)
	}
	if got := Sub3(b, a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub3 = %v", got)
	}
	if got := Scale3(a, 2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale3 = %v", got)
	}
	if !AlmostEqual3(a, Vec3{1 + 1e-9, 2, 3 - 1e-9}, 1e-8) {
		t.Errorf("AlmostEqual3 rejected values within tolerance")
	}
	if AlmostEqual3(a, b, 1e-8) {
		t.Errorf("AlmostEqual3 accepted distant values")
	}
}
