// math/core.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package math provides the small set of scalar and angle helpers shared by
// the angle formatter and the GOG shape model. Angles are float64 radians
// unless a name says otherwise.
package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

const (
	DegToRad = gomath.Pi / 180
	RadToDeg = 180 / gomath.Pi
)

// Degrees converts an angle expressed in radians to degrees
func Degrees(r float64) float64 {
	return r * RadToDeg
}

// Radians converts an angle expressed in degrees to radians
func Radians(d float64) float64 {
	return d * DegToRad
}

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

func Abs[T constraints.Integer | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AlmostEqual reports whether a and b differ by no more than eps.
func AlmostEqual(a, b, eps float64) bool {
	return gomath.Abs(a-b) <= eps
}

// AngleFix2Pi wraps an angle into [0, 2pi).
func AngleFix2Pi(a float64) float64 {
	a = gomath.Mod(a, 2*gomath.Pi)
	if a < 0 {
		a += 2 * gomath.Pi
	}
	return a
}

// AngleFixPi wraps an angle into (-pi, pi].
func AngleFixPi(a float64) float64 {
	a = AngleFix2Pi(a)
	if a > gomath.Pi {
		a -= 2 * gomath.Pi
	}
	return a
}

// AngleWrapPi2 wraps a latitude-like angle into [-pi/2, pi/2], reflecting
// across the poles rather than wrapping through them.
func AngleWrapPi2(a float64) float64 {
	a = AngleFixPi(a)
	if a > gomath.Pi/2 {
		a = gomath.Pi - a
	} else if a < -gomath.Pi/2 {
		a = -gomath.Pi - a
	}
	return a
}

// AngleFix360 wraps a degree angle into [0, 360).
func AngleFix360(a float64) float64 {
	a = gomath.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AngleFix90 clamps a degree latitude into [-90, 90].
func AngleFix90(a float64) float64 {
	return Clamp(a, -90.0, 90.0)
}
