// units/registry.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package units

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrIncompatible is returned by Convert for units of different families.
	ErrIncompatible = errors.New("units: incompatible families")
	// ErrDuplicate indicates a Register collision; it is a caller bug, not a
	// runtime condition to retry.
	ErrDuplicate = errors.New("units: duplicate registration")
)

// Registry holds a dynamic set of units, queryable by family, by
// case-insensitive name, or by case-sensitive abbreviation. The zero value
// is not usable; call NewRegistry.
//
// A Registry is not internally synchronized: register everything up front,
// then lookups are safe from multiple goroutines.
type Registry struct {
	families    map[string][]Units
	familyNames []string // insertion order of first appearance
	byName      map[string]Units
	byAbbrev    map[string]Units
}

func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string][]Units),
		byName:   make(map[string]Units),
		byAbbrev: make(map[string]Units),
	}
}

// Register adds u to the registry. It returns ErrDuplicate (wrapped with
// detail) if an equal unit is already present in u's family, or if u's name
// or abbreviation collides with an existing entry; the registry is left
// unchanged in that case.
func (r *Registry) Register(u Units) error {
	if !u.IsValid() {
		return fmt.Errorf("units: cannot register invalid unit %q", u.Name())
	}
	for _, existing := range r.families[u.Family()] {
		if existing.Equal(u) {
			return fmt.Errorf("%w: %q already in family %q", ErrDuplicate, u.Name(), u.Family())
		}
	}
	lname := strings.ToLower(u.Name())
	if _, ok := r.byName[lname]; ok {
		return fmt.Errorf("%w: name %q", ErrDuplicate, u.Name())
	}
	if _, ok := r.byAbbrev[u.Abbreviation()]; ok {
		return fmt.Errorf("%w: abbreviation %q", ErrDuplicate, u.Abbreviation())
	}

	if _, ok := r.families[u.Family()]; !ok {
		r.familyNames = append(r.familyNames, u.Family())
	}
	r.families[u.Family()] = append(r.families[u.Family()], u)
	r.byName[lname] = u
	r.byAbbrev[u.Abbreviation()] = u
	return nil
}

// RegisterDefaults registers the entire built-in catalog. Calling it twice
// on the same registry returns ErrDuplicate from the first repeated unit.
func (r *Registry) RegisterDefaults() error {
	all := []Units{
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
	}
	for _, u := range all {
		if err := r.Register(u); err != nil {
			return err
		}
	}
	return nil
}

// Units returns all registered units of a family in registration order. An
// unknown family yields a nil slice, not an error.
func (r *Registry) Units(family string) []Units {
	return r.families[family]
}

// Families returns the registered family names, sorted.
func (r *Registry) Families() []string {
	names := make([]string, len(r.familyNames))
	copy(names, r.familyNames)
	sort.Strings(names)
	return names
}

// ByName looks up a unit by its long name, case-insensitively.
func (r *Registry) ByName(name string) (Units, bool) {
	u, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return Invalid, false
	}
	return u, true
}

// ByAbbreviation looks up a unit by its abbreviation, case-sensitively.
func (r *Registry) ByAbbreviation(abbrev string) (Units, bool) {
	u, ok := r.byAbbrev[abbrev]
	if !ok {
		return Invalid, false
	}
	return u, true
}
