// angle/angle_test.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package angle

import (
	gomath "math"
	"testing"

	"github.com/bdow/gogkit/math"
)

func TestFormatDMS(t *testing.T) {
	cases := []struct {
		degrees   float64
		precision int
		expected  string
	}{
		{0, 0, `0° 00' 00"`},
		{45.5125, 1, `45° 30' 45.0"`},
		{45.5125, 0, `45° 30' 45"`},
		{-12.25, 0, `-12° 15' 00"`},
		// seconds round up and carry through minutes and degrees
		{45 + 59.0/60 + 59.96/3600, 0, `46° 00' 00"`},
		{10.999999999, 2, `11° 00' 00.00"`},
	}
	for _, c := range cases {
		var f Formatter
		f.SetFormat(DegreesMinutesSeconds)
		f.SetPrecision(c.precision)
		f.SetSymbolStyle(SymbolUnicode)
		if got := f.Format(math.Radians(c.degrees)); got != c.expected {
			t.Errorf("DMS(%.9g, prec %d) = %q, expected %q", c.degrees, c.precision, got, c.expected)
		}
	}
}

func TestFormatDM(t *testing.T) {
	cases := []struct {
		degrees   float64
		precision int
		expected  string
	}{
		{45.5125, 2, `45° 30.75'`},
		{0, 0, `0° 00'`},
		// minutes round up into the degree
		{29.9999999, 2, `30° 00.00'`},
		{-0.5, 1, `-0° 30.0'`},
	}
	for _, c := range cases {
		var f Formatter
		f.SetFormat(DegreesMinutes)
		f.SetPrecision(c.precision)
		f.SetSymbolStyle(SymbolUnicode)
		if got := f.Format(math.Radians(c.degrees)); got != c.expected {
			t.Errorf("DM(%.9g, prec %d) = %q, expected %q", c.degrees, c.precision, got, c.expected)
		}
	}
}

func TestFormatDegrees(t *testing.T) {
	var f Formatter
	f.SetFormat(Degrees)
	f.SetPrecision(2)
	f.SetSymbolStyle(SymbolUnicode)
	if got := f.Format(math.Radians(123.456)); got != `123.46°` {
		t.Errorf("got %q", got)
	}

	f.SetSymbolStyle(SymbolNone)
	if got := f.Format(math.Radians(-45)); got != "-45.00" {
		t.Errorf("got %q", got)
	}

	// near-360 wraps to zero unless rollover is allowed
	f.SetPrecision(0)
	if got := f.Format(math.Radians(359.9999)); got != "0" {
		t.Errorf("wrap: got %q", got)
	}
	f.SetRolloverAllowed(true)
	if got := f.Format(math.Radians(359.9999)); got != "360" {
		t.Errorf("rollover: got %q", got)
	}
}

func TestFormatMiscUnits(t *testing.T) {
	cases := []struct {
		format    Format
		degrees   float64
		precision int
		expected  string
	}{
		{Radians, 180, 6, "3.141593"},
		{BAM, 90, 4, "0.2500"},
		{Milliradians, 90, 1, "1570.8"},
		{Mil, 90, 0, "1600"},
	}
	for _, c := range cases {
		var f Formatter
		f.SetFormat(c.format)
		f.SetPrecision(c.precision)
		if got := f.Format(math.Radians(c.degrees)); got != c.expected {
			t.Errorf("%v(%g) = %q, expected %q", c.format, c.degrees, got, c.expected)
		}
	}
}

func TestFormatHemisphere(t *testing.T) {
	var f Formatter
	f.SetFormat(Degrees)
	f.SetPrecision(2)
	f.SetDirectionChars('N', 'S')
	if got := f.Format(math.Radians(33.5)); got != "33.50 N" {
		t.Errorf("north: got %q", got)
	}
	// southern angles keep magnitude; the letter carries the sign
	if got := f.Format(math.Radians(-33.5)); got != "33.50 S" {
		t.Errorf("south: got %q", got)
	}

	f.SetAllNumerics(true)
	if got := f.Format(math.Radians(-33.5)); got != "-33.50" {
		t.Errorf("all numerics: got %q", got)
	}
}

func TestFormatLatitudeLongitude(t *testing.T) {
	if got := FormatLatitude(math.Radians(21.3), Degrees, 1, SymbolNone); got != "21.3 N" {
		t.Errorf("latitude: got %q", got)
	}
	if got := FormatLongitude(math.Radians(-157.85), Degrees, 2, SymbolNone); got != "157.85 W" {
		t.Errorf("longitude: got %q", got)
	}
	// longitudes wrap into (-180, 180]
	if got := FormatLongitude(math.Radians(270), Degrees, 0, SymbolNone); got != "90 W" {
		t.Errorf("wrapped longitude: got %q", got)
	}
}

func TestIdempotentMutators(t *testing.T) {
	var f Formatter
	f.SetFormat(DegreesMinutesSeconds)
	f.SetPrecision(3)
	f.SetSymbolStyle(SymbolUnicode)
	f.SetDirectionChars('N', 'S')

	rad := math.Radians(12.3456789)
	before := f.Format(rad)

	f.SetFormat(DegreesMinutesSeconds)
	f.SetPrecision(3)
	f.SetSymbolStyle(SymbolUnicode)
	f.SetDirectionChars('N', 'S')
	if after := f.Format(rad); after != before {
		t.Errorf("repeated no-op mutators changed output: %q -> %q", before, after)
	}

	// out-of-range precision clamps instead of failing
	f.SetPrecision(99)
	f.SetPrecision(-5)
	if got := f.Format(0); got == "" {
		t.Errorf("clamped precision produced empty output")
	}
}

func TestFromDegreeString(t *testing.T) {
	cases := []struct {
		str      string
		expected float64
	}{
		{"45.5", 45.5},
		{"-45.5", -45.5},
		{"45 30 15", 45 + 30.0/60 + 15.0/3600},
		{"45:30:15", 45 + 30.0/60 + 15.0/3600},
		{`45°30'15"N`, 45 + 30.0/60 + 15.0/3600},
		{`45°30'15"S`, -(45 + 30.0/60 + 15.0/3600)},
		{"22 30", 22.5},
		{"22 30 W", -22.5},
		{"W 120:30", -120.5},
		{"0", 0},
	}
	for _, c := range cases {
		got, err := FromDegreeString(c.str, false)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", c.str, err)
			continue
		}
		if !math.AlmostEqual(got, c.expected, 1e-9) {
			t.Errorf("%q: got %.9g, expected %.9g", c.str, got, c.expected)
		}
	}

	if got, err := FromDegreeString("180", true); err != nil || !math.AlmostEqual(got, gomath.Pi, 1e-12) {
		t.Errorf("radians conversion: got %.9g, %v", got, err)
	}

	for _, invalid := range []string{"", "north", "N E W", "--"} {
		if _, err := FromDegreeString(invalid, false); err == nil {
			t.Errorf("%q: no error for invalid angle string", invalid)
		}
	}
}
