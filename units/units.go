// units/units.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package units defines named units of measurement grouped into families
// (length, angle, speed, ...) with linear conversion between units of the
// same family, plus a Registry for lookup by name or abbreviation.
package units

import "math"

// Family tags; two Units are convertible iff they share a family.
const (
	InvalidFamily      = "invalid"
	UnitlessFamily     = "unitless"
	ElapsedTimeFamily  = "elapsed_time"
	AngleFamily        = "angle"
	LengthFamily       = "length"
	SpeedFamily        = "speed"
	AccelerationFamily = "acceleration"
	TemperatureFamily  = "temperature"
	FrequencyFamily    = "frequency"
	VolumeFamily       = "volume"
	PressureFamily     = "pressure"
	PotentialFamily    = "potential"
)

// Units describes a single unit of measurement. Conversion to the family's
// base unit is valueInBase = (value + offset) * scale; most units have a
// zero offset, the exceptions being temperatures like Fahrenheit.
type Units struct {
	name   string
	abbrev string
	scale  float64 // multiplicative factor to the family base unit
	offset float64 // additive pre-scale offset
	family string
}

// New returns a unit with the given conversion scale to its family's base
// unit. A zero scale or the "invalid" family is a programming error and
// panics.
func New(name, abbrev string, toBase float64, family string) Units {
	if toBase == 0 {
		panic("units: zero toBase scale for " + name)
	}
	if family == InvalidFamily {
		panic("units: cannot construct unit in the invalid family: " + name)
	}
	return Units{name: name, abbrev: abbrev, scale: toBase, family: family}
}

// OffsetThenScale returns a unit whose conversion to base first adds offset
// and then multiplies by toBase, as needed for temperature units.
func OffsetThenScale(name, abbrev string, offset, toBase float64, family string) Units {
	u := New(name, abbrev, toBase, family)
	u.offset = offset
	return u
}

// Invalid is the sentinel returned by failed registry lookups.
var Invalid = Units{name: "Invalid", abbrev: "inv", scale: 1, family: InvalidFamily}

func (u Units) Name() string         { return u.name }
func (u Units) Abbreviation() string { return u.abbrev }
func (u Units) Family() string       { return u.family }

// IsValid reports whether the unit belongs to a real family; the zero
// Units value and Invalid do not.
func (u Units) IsValid() bool { return u.family != InvalidFamily && u.family != "" }

// Equal reports whether two units have the same conversion behavior. Name
// and abbreviation are ignored.
func (u Units) Equal(other Units) bool {
	return u.scale == other.scale && u.offset == other.offset && u.family == other.family
}

// CanConvert reports whether values can be converted from u to to.
func (u Units) CanConvert(to Units) bool {
	return u.family == to.family && to.scale != 0
}

// ConvertTo converts value from u to to, returning value unchanged if the
// units are not convertible.
func (u Units) ConvertTo(to Units, value float64) float64 {
	out, _ := u.Convert(to, value)
	return out
}

// Convert converts value from u to to. If the units are not convertible it
// returns value unchanged along with ErrIncompatible, so callers can
// distinguish a pass-through from a real conversion.
func (u Units) Convert(to Units, value float64) (float64, error) {
	if !u.CanConvert(to) {
		return value, ErrIncompatible
	}
	base := (value + u.offset) * u.scale
	return base/to.scale - to.offset, nil
}

const degToRad = math.Pi / 180

// The built-in catalog. Constructed once at startup and immutable
// thereafter; safe for unsynchronized concurrent reads.
var (
	Unitless = New("", "", 1, UnitlessFamily)

	Seconds      = New("seconds", "sec", 1, ElapsedTimeFamily)
	Milliseconds = New("milliseconds", "ms", 1e-3, ElapsedTimeFamily)
	Microseconds = New("microseconds", "us", 1e-6, ElapsedTimeFamily)
	Minutes      = New("minutes", "min", 60, ElapsedTimeFamily)
	Hours        = New("hours", "hr", 3600, ElapsedTimeFamily)
	Days         = New("days", "d", 86400, ElapsedTimeFamily)

	Radians      = New("radians", "rad", 1, AngleFamily)
	Degrees      = New("degrees", "deg", degToRad, AngleFamily)
	Milliradians = New("milliradians", "mrad", 1e-3, AngleFamily)
	// BAM: one unit spans the full circle
	BAM = New("binary angle measurement", "bam", 2*math.Pi, AngleFamily)
	// NATO angular mil: 6400 mils in a circle
	Mil = New("angular mil", "mil", 9.8174770424681038701957605727484e-4, AngleFamily)

	Meters        = New("meters", "m", 1, LengthFamily)
	Kilometers    = New("kilometers", "km", 1e3, LengthFamily)
	Yards         = New("yards", "yd", 0.91439997, LengthFamily)
	Miles         = New("miles", "mi", 1609.3439, LengthFamily)
	Feet          = New("feet", "ft", 0.30479999, LengthFamily)
	Inches        = New("inches", "in", 0.025399999, LengthFamily)
	NauticalMiles = New("nautical miles", "nm", 1852, LengthFamily)
	Centimeters   = New("centimeters", "cm", 1e-2, LengthFamily)
	Millimeters   = New("millimeters", "mm", 1e-3, LengthFamily)
	Kiloyards     = New("kiloyards", "kyd", 914.399998610, LengthFamily)
	Fathoms       = New("fathoms", "fm", 1.82879994, LengthFamily)
	Kilofeet      = New("kilofeet", "kf", 304.79999, LengthFamily)
	// Distance used in radar related subjects, equal to 6000 feet
	DataMiles = New("data miles", "dm", 1828.800164446, LengthFamily)

	MetersPerSecond     = New("meters per second", "m/sec", 1, SpeedFamily)
	KilometersPerHour   = New("kilometers per hour", "km/hr", 0.27777778, SpeedFamily)
	Knots               = New("knots", "kts", 0.51444444, SpeedFamily)
	MilesPerHour        = New("miles per hour", "mph", 0.44703997, SpeedFamily)
	FeetPerSecond       = New("feet per second", "ft/sec", 0.3047999, SpeedFamily)
	KilometersPerSecond = New("kilometers per second", "km/sec", 1e3, SpeedFamily)
	DataMilesPerHour    = New("data miles per hour", "dm/hr", 0.50797738, SpeedFamily)
	YardsPerSecond      = New("yards per second", "yd/sec", 0.91439997, SpeedFamily)

	MetersPerSecondSquared        = New("meters per second squared", "m/(s^2)", 1, AccelerationFamily)
	KilometersPerSecondSquared    = New("kilometers per second squared", "km/(s^2)", 1e3, AccelerationFamily)
	YardsPerSecondSquared         = New("yards per second squared", "yd/(s^2)", 0.91439997, AccelerationFamily)
	MilesPerSecondSquared         = New("miles per second squared", "sm/(s^2)", 1609.3439, AccelerationFamily)
	FeetPerSecondSquared          = New("feet per second squared", "ft/(s^2)", 0.30479999, AccelerationFamily)
	InchesPerSecondSquared        = New("inches per second squared", "in/(s^2)", 0.025399999, AccelerationFamily)
	KnotsPerSecond                = New("knots per second", "kts/(s^2)", 0.51444444, AccelerationFamily)
	NauticalMilesPerSecondSquared = New("nautical miles per second squared", "nm/(s^2)", 1852, AccelerationFamily)

	Celsius    = New("celsius", "C", 1, TemperatureFamily)
	Fahrenheit = OffsetThenScale("fahrenheit", "F", -32, 5.0/9.0, TemperatureFamily)
	Kelvin     = OffsetThenScale("kelvin", "k", -273.15, 1, TemperatureFamily)
	Rankine    = OffsetThenScale("rankine", "ra", -491.67, 5.0/9.0, TemperatureFamily)
	Reaumur    = New("reaumur", "re", 1.25, TemperatureFamily)

	Hertz                = New("cycles per second", "Hz", 1, FrequencyFamily)
	RevolutionsPerMinute = New("revolutions per minute", "rpm", 60, FrequencyFamily)
	RadiansPerSecond     = New("radians per second", "rad/sec", 1/(2*math.Pi), FrequencyFamily)
	DegreesPerSecond     = New("degrees per second", "deg/sec", 1.0/360.0, FrequencyFamily)

	Liters      = New("liters", "l", 1, VolumeFamily)
	Milliliters = New("milliliters", "ml", 1e-3, VolumeFamily)
	FluidOunces = New("fluid ounces", "fl oz", 0.0295735, VolumeFamily)
	Cups        = New("cups", "cup", 0.236588, VolumeFamily)
	Pints       = New("pints", "pt", 0.473176, VolumeFamily)
	Quarts      = New("quarts", "qt", 0.946353, VolumeFamily)
	Gallons     = New("gallons", "gal", 3.78541, VolumeFamily)
	Teaspoons   = New("teaspoons", "tsp", 0.00492892, VolumeFamily)
	Tablespoons = New("tablespoons", "tbsp", 0.0147868, VolumeFamily)

	Millibars           = New("millibars", "mbar", 1, PressureFamily)
	Bars                = New("bars", "bar", 1000, PressureFamily)
	PoundsPerSquareInch = New("pounds per square inch", "psia", 68.9475728, PressureFamily)
	Atmospheres         = New("atmospheres", "atm", 1013.25, PressureFamily)
	KgfPerSquareCm      = New("kilogram-force per square centimeter", "kg/(cm^2)", 980.665, PressureFamily)
	Kilopascals         = New("kilopascals", "kPa", 10, PressureFamily)
	Megapascals         = New("megapascals", "MPa", 10000, PressureFamily)

	Volts      = New("volts", "V", 1, PotentialFamily)
	Millivolts = New("millivolts", "mV", 1e-3, PotentialFamily)
	Microvolts = New("microvolts", "uV", 1e-6, PotentialFamily)
	Kilovolts  = New("kilovolts", "kV", 1e3, PotentialFamily)
	Megavolts  = New("megavolts", "MV", 1e6, PotentialFamily)
	Gigavolts  = New("gigavolts", "GV", 1e9, PotentialFamily)
)
