// angle/angle.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package angle renders radian angles as display strings in a number of
// geodetic notations (decimal degrees, degrees-minutes, DMS, radians, BAM,
// angular mils, milliradians) and parses free-form degree strings back to
// numbers.
package angle

import (
	"fmt"
	gomath "math"
	"strconv"
	"strings"

	"github.com/bdow/gogkit/math"
	"github.com/bdow/gogkit/units"
)

type Format int

const (
	Degrees Format = iota
	DegreesMinutes
	DegreesMinutesSeconds
	Radians
	BAM
	Mil
	Milliradians
)

func (f Format) String() string {
	switch f {
	case Degrees:
		return "degrees"
	case DegreesMinutes:
		return "degrees minutes"
	case DegreesMinutesSeconds:
		return "degrees minutes seconds"
	case Radians:
		return "radians"
	case BAM:
		return "bam"
	case Mil:
		return "mil"
	case Milliradians:
		return "milliradians"
	}
	return "unknown"
}

// SymbolStyle selects the degree symbol emitted after the degree component.
type SymbolStyle int

const (
	SymbolNone    SymbolStyle = iota
	SymbolUnicode             // U+00B0
	SymbolASCII               // single Latin-1 0xB0 byte
	SymbolUTF8                // explicit 0xC2 0xB0 sequence
)

// Symbol returns the literal degree symbol for the style.
func (s SymbolStyle) Symbol() string {
	switch s {
	case SymbolUnicode:
		return "°"
	case SymbolASCII:
		return "\xb0"
	case SymbolUTF8:
		return "\xc2\xb0"
	}
	return ""
}

// A Formatter renders angles according to its configuration. The zero value
// formats decimal degrees at precision 6 with no symbol or hemisphere
// characters. Mutators are plain assignments; setting a value it already
// holds changes nothing.
type Formatter struct {
	format      Format
	allNumerics bool
	precision   int
	symbolStyle SymbolStyle
	positiveDir byte // hemisphere char for non-negative angles; 0 for none
	negativeDir byte
	rollover    bool // keep 360 as-is instead of wrapping to 0

	precisionSet bool
}

func (f *Formatter) SetFormat(format Format) { f.format = format }

// SetAllNumerics suppresses unit symbols and hemisphere letters, forcing a
// plain signed numeric string.
func (f *Formatter) SetAllNumerics(on bool) { f.allNumerics = on }

// SetPrecision sets the fractional digit count, clamped to [0, 16].
func (f *Formatter) SetPrecision(p int) {
	f.precision = math.Clamp(p, 0, 16)
	f.precisionSet = true
}

func (f *Formatter) SetSymbolStyle(s SymbolStyle) { f.symbolStyle = s }

// SetDirectionChars sets the hemisphere letters appended for positive and
// negative angles, e.g. 'N' and 'S'. A zero byte disables the letter; with
// the negative letter disabled, negative angles keep their minus sign.
func (f *Formatter) SetDirectionChars(positive, negative byte) {
	f.positiveDir = positive
	f.negativeDir = negative
}

// SetRolloverAllowed controls whether an angle that rounds to a full circle
// is preserved as 360 rather than wrapped to 0.
func (f *Formatter) SetRolloverAllowed(on bool) { f.rollover = on }

const defaultPrecision = 6

// near-zero guard so truncation does not manufacture -0 components
const tolerance = 1e-8

func areEqual(a, b float64) bool { return math.AlmostEqual(a, b, 1e-6) }

// Format renders the radian angle per the formatter's configuration.
func (f *Formatter) Format(radians float64) string {
	precision := f.precision
	if !f.precisionSet {
		precision = defaultPrecision
	}

	degree := units.Radians.ConvertTo(units.Degrees, radians)

	hemiDir := ""
	negative := false
	if degree < 0 {
		if f.negativeDir != 0 {
			hemiDir = " " + string(f.negativeDir)
		}
		degree = -degree
		negative = true
	} else if f.positiveDir != 0 {
		hemiDir = " " + string(f.positiveDir)
	}

	degSym, minSym, secSym := "", "", ""
	if f.allNumerics {
		hemiDir = ""
	} else {
		degSym = f.symbolStyle.Symbol()
		minSym = "'"
		secSym = "\""
	}

	// When a negative hemisphere letter carries the sign, the numeric text
	// stays unsigned.
	printNegativeSign := f.allNumerics || f.negativeDir == 0

	rounding := 5.0 / gomath.Pow(10, float64(precision)+1)

	var out string
	switch f.format {
	case DegreesMinutesSeconds:
		minValue := (degree - gomath.Floor(degree)) * 60
		degree = gomath.Floor(degree)
		secValue := (minValue - gomath.Floor(minValue)) * 60
		minValue = gomath.Floor(minValue)

		if secValue < tolerance {
			secValue = 0
		}
		if secValue+rounding > 60 || areEqual(secValue+rounding, 60) {
			secValue = 0
			minValue++
			if minValue >= 60 {
				minValue = 0
				degree++
			}
		} else if fraction := gomath.Mod(secValue*gomath.Pow(10, float64(precision)+1), 10); fraction > 5 || areEqual(fraction, 5) {
			secValue += rounding
		}

		if degree == 360 && !f.rollover {
			degree = 0
		}
		sign := ""
		if negative && printNegativeSign {
			sign = "-"
		}
		width := 2
		if precision > 0 {
			width = precision + 3
		}
		out = fmt.Sprintf("%s%d%s %02d%s %0*.*f%s", sign, int(degree), degSym,
			int(minValue), minSym, width, precision, secValue, secSym)

	case DegreesMinutes:
		minValue := (degree - gomath.Floor(degree)) * 60
		degree = gomath.Floor(degree)

		if gomath.Abs(minValue) <= tolerance {
			minValue = 0
		}
		if minValue+rounding >= 60 || areEqual(minValue+rounding, 60) {
			degree++
			minValue = 0
		} else if fraction := gomath.Mod(minValue*gomath.Pow(10, float64(precision)+1), 10); fraction > 5 || areEqual(fraction, 5) {
			minValue += rounding
		}

		if degree == 360 && !f.rollover {
			degree = 0
		}
		sign := ""
		if negative && printNegativeSign {
			sign = "-"
		}
		width := 2
		if precision > 0 {
			width = precision + 3
		}
		out = fmt.Sprintf("%s%d%s %0*.*f%s", sign, int(degree), degSym,
			width, precision, minValue, minSym)

	case Radians, BAM, Mil, Milliradians:
		if negative && printNegativeSign {
			degree = -degree
		}
		out = strconv.FormatFloat(units.Degrees.ConvertTo(formatUnits(f.format), degree), 'f', precision, 64)

	default: // Degrees
		if (degree+rounding > 360 || areEqual(degree+rounding, 360)) && !f.rollover {
			degree = 0
		}
		if negative && printNegativeSign {
			degree = -degree
		}
		out = strconv.FormatFloat(degree, 'f', precision, 64) + degSym
	}

	return out + hemiDir
}

func formatUnits(f Format) units.Units {
	switch f {
	case Radians:
		return units.Radians
	case BAM:
		return units.BAM
	case Mil:
		return units.Mil
	case Milliradians:
		return units.Milliradians
	}
	return units.Degrees
}

// FormatLatitude renders a radian latitude with N/S hemisphere letters,
// wrapped into [-90, 90].
func FormatLatitude(latRadians float64, format Format, precision int, style SymbolStyle) string {
	var f Formatter
	f.SetFormat(format)
	f.SetPrecision(precision)
	f.SetSymbolStyle(style)
	f.SetDirectionChars('N', 'S')
	return f.Format(math.AngleWrapPi2(latRadians))
}

// FormatLongitude renders a radian longitude with E/W hemisphere letters,
// wrapped into (-180, 180].
func FormatLongitude(lonRadians float64, format Format, precision int, style SymbolStyle) string {
	var f Formatter
	f.SetFormat(format)
	f.SetPrecision(precision)
	f.SetSymbolStyle(style)
	f.SetDirectionChars('E', 'W')
	return f.Format(math.AngleFixPi(lonRadians))
}

// parseNumber is a strict float parse: Inf and NaN spellings are rejected.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || gomath.IsInf(v, 0) || gomath.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// FromDegreeString parses a free-form geodetic degree string: plain decimal
// degrees, or degrees/minutes or degrees/minutes/seconds separated by
// whitespace, commas, colons, degree symbols or quote characters, with an
// optional hemisphere letter. A South or West letter, or a minus sign,
// anywhere in the string negates the result. The result is degrees, or
// radians when toRadians is set.
func FromDegreeString(s string, toRadians bool) (float64, error) {
	if v, ok := parseNumber(s); ok {
		if toRadians {
			v *= math.DegToRad
		}
		return v, nil
	}

	sign := 1.0
	if strings.ContainsAny(s, "SsWw-") {
		sign = -1
	}

	tokens := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		// � covers a bare Latin-1 0xB0 degree byte
		case ' ', '\t', '\n', ',', ':', '°', '�', '\'', '"',
			'N', 'n', 'E', 'e', 'S', 's', 'W', 'w':
			return true
		}
		return false
	})
	if len(tokens) == 0 {
		return 0, fmt.Errorf("angle: no numeric components in %q", s)
	}

	// components contribute their absolute value so a detached sign token
	// cannot double-negate
	var ang float64
	switch len(tokens) {
	case 1:
		deg, ok := parseNumber(tokens[0])
		if !ok {
			return 0, fmt.Errorf("angle: malformed degrees in %q", s)
		}
		ang = sign * gomath.Abs(deg)
	case 2:
		deg, ok1 := parseNumber(tokens[0])
		min, ok2 := parseNumber(tokens[1])
		if !ok1 || !ok2 {
			return 0, fmt.Errorf("angle: malformed degrees/minutes in %q", s)
		}
		ang = sign * (gomath.Abs(deg) + gomath.Abs(min)/60)
	default:
		deg, ok1 := parseNumber(tokens[0])
		min, ok2 := parseNumber(tokens[1])
		sec, ok3 := parseNumber(tokens[2])
		if !ok1 || !ok2 || !ok3 {
			return 0, fmt.Errorf("angle: malformed degrees/minutes/seconds in %q", s)
		}
		ang = sign * (gomath.Abs(deg) + gomath.Abs(min)/60 + gomath.Abs(sec)/3600)
	}

	if toRadians {
		ang *= math.DegToRad
	}
	return ang, nil
}
