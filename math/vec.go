// math/vec.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// Vec3 is a 3-component vector. For geodetic positions the components are
// latitude and longitude in radians and altitude in meters; for local
// offsets they are x/y/z in meters.
type Vec3 [3]float64

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func Add3(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Sub3(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func Scale3(a Vec3, s float64) Vec3 {
	return Vec3{s * a[0], s * a[1], s * a[2]}
}

// AlmostEqual3 compares componentwise with tolerance eps.
func AlmostEqual3(a, b Vec3, eps float64) bool {
	return AlmostEqual(a[0], b[0], eps) && AlmostEqual(a[1], b[1], eps) && AlmostEqual(a[2], b[2], eps)
}
