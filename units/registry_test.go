// units/registry_test.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package units

import (
	"errors"
	"sort"
	"testing"
)

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := r.RegisterDefaults(); err != nil {
		t.Fatalf("RegisterDefaults: %v", err)
	}
	return r
}

func TestRegistryLookup(t *testing.T) {
	r := defaultRegistry(t)

	for _, name := range []string{"meters", "METERS", "Meters"} {
		u, ok := r.ByName(name)
		if !ok {
			t.Errorf("ByName(%q) not found", name)
		} else if !u.Equal(Meters) {
			t.Errorf("ByName(%q) resolved to %q", name, u.Name())
		}
	}

	if u, ok := r.ByAbbreviation("m"); !ok || !u.Equal(Meters) {
		t.Errorf("ByAbbreviation(\"m\") failed: %v %v", u.Name(), ok)
	}
	// abbreviations are case sensitive
	if u, ok := r.ByAbbreviation("M"); ok {
		t.Errorf("ByAbbreviation(\"M\") unexpectedly resolved to %q", u.Name())
	}

	if u, ok := r.ByName("cubits"); ok {
		t.Errorf("ByName(\"cubits\") unexpectedly resolved to %q", u.Name())
	} else if u.IsValid() {
		t.Errorf("failed lookup did not return the invalid sentinel")
	}
}

func TestRegistryDuplicateRejection(t *testing.T) {
	r := defaultRegistry(t)

	before := len(r.Units(LengthFamily))
	if err := r.Register(Meters); err == nil {
		t.Errorf("re-registering meters did not fail")
	} else if !errors.Is(err, ErrDuplicate) {
		t.Errorf("re-registering meters: got %v, expected ErrDuplicate", err)
	}
	if after := len(r.Units(LengthFamily)); after != before {
		t.Errorf("duplicate registration changed the length family: %d -> %d", before, after)
	}

	// same name, different conversion: still a collision
	if err := r.Register(New("meters", "mx", 2, LengthFamily)); !errors.Is(err, ErrDuplicate) {
		t.Errorf("name collision: got %v", err)
	}
	// same abbreviation, different name
	if err := r.Register(New("metros", "m", 2, LengthFamily)); !errors.Is(err, ErrDuplicate) {
		t.Errorf("abbreviation collision: got %v", err)
	}

	if err := r.RegisterDefaults(); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second RegisterDefaults: got %v", err)
	}
}

func TestRegistryFamilies(t *testing.T) {
	r := defaultRegistry(t)

	fams := r.Families()
	if !sort.StringsAreSorted(fams) {
		t.Errorf("Families() not sorted: %v", fams)
	}
	expected := []string{
		AccelerationFamily, AngleFamily, ElapsedTimeFamily, FrequencyFamily,
		LengthFamily, PotentialFamily, PressureFamily, SpeedFamily,
		TemperatureFamily, VolumeFamily,
	}
	if len(fams) != len(expected) {
		t.Fatalf("got %d families %v, expected %d", len(fams), fams, len(expected))
	}
	for i := range fams {
		if fams[i] != expected[i] {
			t.Errorf("family %d: got %q, expected %q", i, fams[i], expected[i])
		}
	}

	if u := r.Units("nonesuch"); len(u) != 0 {
		t.Errorf("unknown family returned %d units", len(u))
	}
}

func TestRegistryInsertionOrder(t *testing.T) {
	r := NewRegistry()
	seq := []Units{Feet, Meters, Yards}
	for _, u := range seq {
		if err := r.Register(u); err != nil {
			t.Fatalf("Register(%s): %v", u.Name(), err)
		}
	}
	got := r.Units(LengthFamily)
	if len(got) != len(seq) {
		t.Fatalf("got %d length units, expected %d", len(got), len(seq))
	}
	for i := range seq {
		if !got[i].Equal(seq[i]) {
			t.Errorf("position %d: got %q, expected %q", i, got[i].Name(), seq[i].Name())
		}
	}
}

// Every default unit must be recognized by any consumer that claims full
// catalog coverage; exercise that with a display-name mapping over all
// families.
func TestDefaultCatalogExhaustive(t *testing.T) {
	r := defaultRegistry(t)

	known := make(map[string]bool)
	for _, u := range []Units{
		Seconds, Milliseconds, Microseconds, Minutes, Hours, Days,
		Radians, Degrees, Milliradians, BAM, Mil,
		Meters, Kilometers, Yards, Miles, Feet, Inches, NauticalMiles,
		Centimeters, Millimeters, Kiloyards, Fathoms, Kilofeet, DataMiles,
		MetersPerSecond, KilometersPerHour, Knots, MilesPerHour,
		FeetPerSecond, KilometersPerSecond, DataMilesPerHour, YardsPerSecond,
		MetersPerSecondSquared, KilometersPerSecondSquared, YardsPerSecondSquared,
		MilesPerSecondSquared, FeetPerSecondSquared, InchesPerSecondSquared,
		KnotsPerSecond, NauticalMilesPerSecondSquared,
		Celsius, Fahrenheit, Kelvin, Rankine, Reaumur,
		Hertz, RevolutionsPerMinute, RadiansPerSecond, DegreesPerSecond,
		Liters, Milliliters, FluidOunces, Cups, Pints, Quarts, Gallons,
		Teaspoons, Tablespoons,
		Millibars, Bars, PoundsPerSquareInch, Atmospheres, KgfPerSquareCm,
		Kilopascals, Megapascals,
		Volts, Millivolts, Microvolts, Kilovolts, Megavolts, Gigavolts,
	} {
		known[u.Name()] = true
	}

	for _, fam := range r.Families() {
		for _, u := range r.Units(fam) {
			if !known[u.Name()] {
				t.Errorf("registered unit %q (%s) unknown to the coverage table", u.Name(), fam)
			}
		}
	}
}
