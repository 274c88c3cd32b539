// units/units_test.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package units

import (
	"math"
	"testing"
)

func TestConvertIdentity(t *testing.T) {
	for _, u := range []Units{Meters, Degrees, Seconds, Knots, Fahrenheit, Volts} {
		for _, v := range []float64{0, 1, -273.15, 12345.678} {
			if got := u.ConvertTo(u, v); got != v {
				t.Errorf("%s: identity conversion of %g gave %g", u.Name(), v, got)
			}
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	pairs := [][2]Units{
		{Meters, Feet},
		{Meters, NauticalMiles},
		{Yards, Kilometers},
		{Degrees, Radians},
		{Degrees, Mil},
		{BAM, Milliradians},
		{Seconds, Days},
		{Knots, MetersPerSecond},
		{Celsius, Fahrenheit},
		{Kelvin, Rankine},
		{Millibars, Atmospheres},
		{Liters, Teaspoons},
		{Volts, Microvolts},
	}
	for _, p := range pairs {
		for _, v := range []float64{-1000, -1, 0, 0.5, 37, 99999} {
			rt := p[1].ConvertTo(p[0], p[0].ConvertTo(p[1], v))
			if math.Abs(rt-v) > 1e-6*math.Max(1, math.Abs(v)) {
				t.Errorf("%s <-> %s: round trip of %g gave %g", p[0].Name(), p[1].Name(), v, rt)
			}
		}
	}
}

func TestConvertKnownValues(t *testing.T) {
	cases := []struct {
		from, to Units
		in, out  float64
	}{
		{Degrees, Radians, 180, math.Pi},
		{Radians, Degrees, math.Pi / 2, 90},
		{Kilometers, Meters, 2.5, 2500},
		{Feet, Meters, 1, 0.30479999},
		{Minutes, Seconds, 2, 120},
		{Celsius, Fahrenheit, 100, 212},
		{Fahrenheit, Celsius, 32, 0},
		{Celsius, Kelvin, 0, 273.15},
		{Rankine, Fahrenheit, 491.67, 32},
		{Hours, Minutes, 1.5, 90},
		{BAM, Degrees, 0.25, 90},
	}
	for _, c := range cases {
		got, err := c.from.Convert(c.to, c.in)
		if err != nil {
			t.Errorf("%s -> %s: unexpected error: %v", c.from.Name(), c.to.Name(), err)
		}
		if math.Abs(got-c.out) > 1e-6 {
			t.Errorf("%s -> %s: %g gave %g, expected %g", c.from.Name(), c.to.Name(), c.in, got, c.out)
		}
	}
}

func TestCrossFamilyConvertIsNoOp(t *testing.T) {
	if Meters.CanConvert(Degrees) {
		t.Errorf("meters reported convertible to degrees")
	}
	if got := Meters.ConvertTo(Degrees, 5.0); got != 5.0 {
		t.Errorf("cross-family conversion changed the value: got %g", got)
	}
	if got, err := Meters.Convert(Degrees, 5.0); err == nil {
		t.Errorf("cross-family conversion did not report an error")
	} else if got != 5.0 {
		t.Errorf("cross-family conversion changed the value: got %g", got)
	}
}

func TestEqualIgnoresNames(t *testing.T) {
	renamed := New("metres", "mtr", 1, LengthFamily)
	if !Meters.Equal(renamed) {
		t.Errorf("units with same conversion but different names reported unequal")
	}
	if Meters.Equal(Feet) {
		t.Errorf("meters and feet reported equal")
	}
	if Celsius.Equal(Kelvin) {
		t.Errorf("celsius and kelvin reported equal despite differing offsets")
	}
	if Hertz.Equal(MetersPerSecond) {
		t.Errorf("units of different families with same scale reported equal")
	}
}

func TestNewPanicsOnMisuse(t *testing.T) {
	expectPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	expectPanic("zero scale", func() { New("bogus", "b", 0, LengthFamily) })
	expectPanic("invalid family", func() { New("bogus", "b", 1, InvalidFamily) })
}

func TestInvalidSentinel(t *testing.T) {
	if Invalid.IsValid() {
		t.Errorf("Invalid reported valid")
	}
	var zero Units
	if zero.IsValid() {
		t.Errorf("zero Units reported valid")
	}
	if got := Invalid.ConvertTo(Meters, 7); got != 7 {
		t.Errorf("conversion from Invalid changed the value: got %g", got)
	}
}
