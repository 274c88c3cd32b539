// gog/state.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gog

import (
	"strings"

	"github.com/bdow/gogkit/units"
	"github.com/bdow/gogkit/util"
)

// modifierState holds the styling and unit settings that persist across
// shape blocks within one parse call: a GOG file can set a line color once
// and have it apply to every subsequent shape until overridden.
type modifierState struct {
	lineColor            util.Optional[string]
	fillColor            util.Optional[string]
	lineWidth            util.Optional[string]
	lineStyle            util.Optional[string]
	pointSize            util.Optional[string]
	altitudeMode         util.Optional[string]
	altitudeUnits        util.Optional[string]
	rangeUnits           util.Optional[string]
	timeUnits            util.Optional[string]
	angleUnits           util.Optional[string]
	verticalDatum        util.Optional[string]
	priority             util.Optional[string]
	textOutlineColor     util.Optional[string]
	textOutlineThickness util.Optional[string]
	fontName             util.Optional[string]
	textSize             util.Optional[string]
}

// apply copies every set modifier into the block's parameter map, without
// overwriting parameters the block set itself.
func (m *modifierState) apply(ps *parsedShape) {
	set := func(key paramKey, o util.Optional[string]) {
		if v, ok := o.Get(); ok && !ps.hasValue(key) {
			ps.set(key, v)
		}
	}
	set(paramLineColor, m.lineColor)
	set(paramFillColor, m.fillColor)
	set(paramLineWidth, m.lineWidth)
	set(paramLineStyle, m.lineStyle)
	set(paramPointSize, m.pointSize)
	set(paramAltitudeMode, m.altitudeMode)
	set(paramAltitudeUnits, m.altitudeUnits)
	set(paramRangeUnits, m.rangeUnits)
	set(paramTimeUnits, m.timeUnits)
	set(paramAngleUnits, m.angleUnits)
	set(paramVerticalDatum, m.verticalDatum)
	set(paramPriority, m.priority)
	set(paramTextOutlineColor, m.textOutlineColor)
	set(paramTextOutlineThickness, m.textOutlineThickness)
	set(paramFontName, m.fontName)
	set(paramTextSize, m.textSize)
}

// unitsState resolves the units in effect for a block's numeric fields.
// Defaults: yards for ranges, feet for altitudes, seconds for times,
// degrees for angles.
type unitsState struct {
	altitudeUnits units.Units
	rangeUnits    units.Units
	timeUnits     units.Units
	angleUnits    units.Units
}

func newUnitsState() unitsState {
	return unitsState{
		altitudeUnits: units.Feet,
		rangeUnits:    units.Yards,
		timeUnits:     units.Seconds,
		angleUnits:    units.Degrees,
	}
}

// parse resolves any unit keywords the block carries against the registry;
// both full names and abbreviations are accepted, names case-insensitively.
func (u *unitsState) parse(ps *parsedShape, registry *units.Registry) {
	resolve := func(key paramKey, family string, dst *units.Units) {
		token, ok := ps.value(key)
		if !ok {
			return
		}
		unit, found := registry.ByName(token)
		if !found {
			unit, found = registry.ByAbbreviation(token)
		}
		if !found {
			// common plural/short spellings not in the registry proper
			unit, found = lookupUnitAlias(token)
		}
		if found && unit.Family() == family {
			*dst = unit
		}
	}
	resolve(paramAltitudeUnits, units.LengthFamily, &u.altitudeUnits)
	resolve(paramRangeUnits, units.LengthFamily, &u.rangeUnits)
	resolve(paramTimeUnits, units.ElapsedTimeFamily, &u.timeUnits)
	resolve(paramAngleUnits, units.AngleFamily, &u.angleUnits)
}

// lookupUnitAlias covers legacy GOG unit spellings ("secs", "degree",
// "nautical miles" vs "nm", ...) that the registry's canonical name and
// abbreviation maps do not.
func lookupUnitAlias(token string) (units.Units, bool) {
	switch strings.ToLower(token) {
	case "secs", "second":
		return units.Seconds, true
	case "mins", "minute":
		return units.Minutes, true
	case "hrs", "hour":
		return units.Hours, true
	case "degree":
		return units.Degrees, true
	case "radian", "rads":
		return units.Radians, true
	case "mils":
		return units.Mil, true
	case "meter", "metre", "metres":
		return units.Meters, true
	case "kilometer", "kilometre":
		return units.Kilometers, true
	case "foot":
		return units.Feet, true
	case "yard":
		return units.Yards, true
	case "inch":
		return units.Inches, true
	case "sm", "mile":
		return units.Miles, true
	case "nautical mile":
		return units.NauticalMiles, true
	}
	return units.Invalid, false
}

// toMeters converts a range-unit value to meters.
func (u *unitsState) rangeToMeters(v float64) float64 {
	return u.rangeUnits.ConvertTo(units.Meters, v)
}

// altitudeToMeters converts an altitude-unit value to meters.
func (u *unitsState) altitudeToMeters(v float64) float64 {
	return u.altitudeUnits.ConvertTo(units.Meters, v)
}

// angleToRadians converts an angle-unit value to radians.
func (u *unitsState) angleToRadians(v float64) float64 {
	return u.angleUnits.ConvertTo(units.Radians, v)
}
