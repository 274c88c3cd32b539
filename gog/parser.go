// gog/parser.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gog

import (
	"bufio"
	"fmt"
	"io"
	gomath "math"
	"strconv"
	"strings"

	"github.com/bdow/gogkit/units"
	"github.com/bdow/gogkit/util"
)

// paramKey identifies one normalized block parameter. Alias keywords
// collapse onto one key ("centerll", "centerlla" and "centerlatlon" all
// store under paramCenterLL; "diameter" stores under paramRadius at half
// value).
type paramKey int

const (
	paramDraw paramKey = iota
	paramLLABoxN
	paramLLABoxS
	paramLLABoxE
	paramLLABoxW
	paramLLABoxMinAlt
	paramLLABoxMaxAlt
	paramLLABoxRot
	paramText
	paramCenterLL
	paramCenterXY
	paramCenterLL2
	paramCenterXY2
	paramRefLLA
	paramAltitudeUnits
	paramAngleUnits
	paramRangeUnits
	paramTimeUnits
	paramVerticalDatum
	paramAltitudeMode
	paramAngleDeg
	paramAngleEnd
	paramAngleStart
	paramDepthBuffer
	paramExtrude
	paramExtrudeHeight
	paramFillColor
	paramFilled
	paramFontName
	paramTextSize
	paramHeight
	paramLineColor
	paramLineProjection
	paramLineStyle
	paramLineWidth
	paramMajorAxis
	paramMinorAxis
	paramOrient
	paramOrientHeading
	paramOrientPitch
	paramOrientRoll
	paramOutline
	paramPointSize
	paramPriority
	paramRadius
	paramScaleX
	paramScaleY
	paramScaleZ
	paramTessellate
	paramFollow
	paramName
	paramOffsetAlt
	paramOffsetCourse
	paramOffsetPitch
	paramOffsetRoll
	paramTextOutlineColor
	paramTextOutlineThickness
	paramImage
	paramIcon
	paramTimeStart
	paramTimeEnd
	paramOpacity
	paramAbsolutePoints
)

type positionStrings struct {
	x, y, z string
}

type pointType int

const (
	pointUnknown pointType = iota
	pointLLA
	pointXYZ
)

// parsedShape is the intermediate, all-strings representation of one
// start/end block, filled in by the line scanner and resolved into a Shape
// when the block closes.
type parsedShape struct {
	shape      ShapeType
	lineNumber int
	comments   []string
	values     map[paramKey]string
	positions  map[paramKey]positionStrings
	points     []positionStrings
	ptType     pointType
}

func newParsedShape(lineNumber int) *parsedShape {
	return &parsedShape{
		lineNumber: lineNumber,
		values:     make(map[paramKey]string),
		positions:  make(map[paramKey]positionStrings),
	}
}

func (ps *parsedShape) set(key paramKey, value string) { ps.values[key] = value }

func (ps *parsedShape) value(key paramKey) (string, bool) {
	v, ok := ps.values[key]
	return v, ok
}

func (ps *parsedShape) hasValue(key paramKey) bool {
	_, ok := ps.values[key]
	return ok
}

func (ps *parsedShape) boolValue(key paramKey, def bool) bool {
	v, ok := ps.values[key]
	if !ok {
		return def
	}
	return parseBoolToken(v)
}

func (ps *parsedShape) setPosition(key paramKey, pos positionStrings) { ps.positions[key] = pos }

func (ps *parsedShape) position(key paramKey) (positionStrings, bool) {
	pos, ok := ps.positions[key]
	return pos, ok
}

func (ps *parsedShape) appendPoint(t pointType, pos positionStrings) {
	ps.points = append(ps.points, pos)
	ps.ptType = t
}

// singleArgParams maps the one-argument keywords that store their argument
// verbatim for shape resolution.
var singleArgParams = map[string]paramKey{
	"radius":         paramRadius,
	"anglestart":     paramAngleStart,
	"angleend":       paramAngleEnd,
	"angledeg":       paramAngleDeg,
	"majoraxis":      paramMajorAxis,
	"minoraxis":      paramMinorAxis,
	"height":         paramHeight,
	"tessellate":     paramTessellate,
	"lineprojection": paramLineProjection,
	"depthbuffer":    paramDepthBuffer,
	"imagefile":      paramImage,
	"opacity":        paramOpacity,
}

// parseBoolToken: presence-style GOG booleans. Only the documented truthy
// tokens count; anything else, including misspellings, is false.
func parseBoolToken(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

// parseFloatToken is a strict float parse; Inf and NaN are rejected.
func parseFloatToken(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || gomath.IsInf(v, 0) || gomath.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// parseIntToken accepts fractional input for conceptually-integral fields
// (line width, point size, font size) and truncates.
func parseIntToken(s string) (int, bool) {
	v, ok := parseFloatToken(s)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// A Parser converts GOG text into shapes. All per-call state lives inside
// Parse, so concurrent Parse calls on one Parser are fine as long as the
// color table, registry and error handler are not mutated at the same
// time.
type Parser struct {
	colors   map[string]string
	registry *units.Registry
	onError  func(lineNumber int, msg string)
}

func NewParser() *Parser {
	return &Parser{colors: defaultGogColors()}
}

// AddOverwriteColor registers or replaces a named color; color is an
// AABBGGRR hex string with or without the 0x prefix.
func (p *Parser) AddOverwriteColor(key, color string) {
	if key == "" {
		return
	}
	if !strings.HasPrefix(color, "0x") && !strings.HasPrefix(color, "0X") {
		color = "0x" + color
	}
	p.colors[strings.ToLower(key)] = color
}

// SetUnitsRegistry supplies the registry used to resolve unit keywords;
// without one, a registry with the default catalog is used.
func (p *Parser) SetUnitsRegistry(r *units.Registry) { p.registry = r }

// SetErrorHandler installs a callback invoked once per problem line or
// dropped block. Parsing itself never fails; the callback is the only
// reporting channel beyond a shorter output collection.
func (p *Parser) SetErrorHandler(f func(lineNumber int, msg string)) { p.onError = f }

func (p *Parser) reportError(lineNumber int, msg string) {
	if p.onError != nil {
		p.onError(lineNumber, msg)
	}
}

// Parse reads GOG text and returns the shapes of every valid start/end
// block. Malformed blocks are dropped and reported through the error
// handler; parsing always continues.
//
// Modifier keywords (colors, widths, units, ...) persist across blocks
// within this one call until overwritten.
func (p *Parser) Parse(r io.Reader) []Shape {
	var output []Shape
	var state modifierState

	insideBlock := false
	invalidShape := false
	current := newParsedShape(0)
	var refLLA util.Optional[positionStrings]

	finalize := func() {
		if current.ptType == pointLLA {
			current.set(paramAbsolutePoints, "1")
		}
		state.apply(current)
		if shape := p.resolveShape(current); shape != nil {
			output = append(output, shape)
		}
	}

	lineNumber := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNumber++
		rawTokens := util.Tokenize(scanner.Text())
		if len(rawTokens) == 0 {
			continue
		}

		// lowercase tokens for keyword matching, but leave quoted strings,
		// comments, and free text after annotation/comment/name intact
		tokens := make([]string, len(rawTokens))
		lowering := true
		for i, tok := range rawTokens {
			tokens[i] = tok
			if lowering && tok[0] != '"' && tok[0] != '#' && tok[0] != '/' {
				tokens[i] = strings.ToLower(tok)
				if tokens[i] == "annotation" || tokens[i] == "comment" || tokens[i] == "name" {
					lowering = false
				}
			}
		}
		line := strings.Join(tokens, " ")
		keyword := tokens[0]
		isComment := keyword == "comment" || keyword[0] == '#' || keyword[0] == '/'

		if !insideBlock && !isComment && keyword != "start" && keyword != "version" {
			p.reportError(lineNumber, fmt.Sprintf("token %q detected outside of a valid start/end block", keyword))
			continue
		}

		switch {
		case isComment:
			current.comments = append(current.comments, line)
			// KML import annotations ride in on comments
			if len(tokens) > 2 && strings.ToLower(tokens[1]) == "kml_icon" {
				current.set(paramIcon, tokens[2])
			}
			if len(tokens) > 1 && strings.ToLower(tokens[1]) == "kml_groundoverlay" {
				current.shape = TypeImageOverlay
			}
			if len(tokens) > 6 && strings.ToLower(tokens[1]) == "kml_latlonbox" {
				current.set(paramLLABoxN, tokens[2])
				current.set(paramLLABoxS, tokens[3])
				current.set(paramLLABoxE, tokens[4])
				current.set(paramLLABoxW, tokens[5])
				current.set(paramLLABoxRot, tokens[6])
			}

		case keyword == "start" || keyword == "end":
			if insideBlock && keyword == "start" {
				p.reportError(lineNumber, "nested start command not allowed")
				continue
			}
			if !insideBlock && keyword == "end" {
				p.reportError(lineNumber, "end command encountered before start")
				continue
			}
			if keyword == "end" && current.shape == TypeUnknown {
				p.reportError(lineNumber, "end command encountered before recognized GOG shape type keyword")
			} else if keyword == "end" && !invalidShape {
				finalize()
			}
			refLLA.Clear()
			invalidShape = false
			insideBlock = keyword == "start"
			current = newParsedShape(lineNumber)

		case keyword == "annotation":
			if len(tokens) < 2 {
				p.reportError(lineNumber, "annotation command requires at least 1 argument")
				continue
			}
			// multiple annotations may share one start/end block; each
			// annotation keyword after the first closes out the previous one
			if current.shape == TypeAnnotation {
				finalize()
				current = newParsedShape(lineNumber)
				if ref, ok := refLLA.Get(); ok {
					current.setPosition(paramRefLLA, ref)
				}
			}
			if current.shape != TypeUnknown {
				p.reportError(lineNumber, "multiple shape keywords found in single start/end block")
				invalidShape = true
			}
			current.shape = TypeAnnotation
			text := util.RestOfLine(line, 1)
			current.set(paramText, text)
			name := strings.ReplaceAll(text, "_", " ")
			name = strings.ReplaceAll(name, `\n`, "\n")
			current.set(paramName, name)

		case keyword == "circle" || keyword == "ellipse" || keyword == "arc" ||
			keyword == "cylinder" || keyword == "hemisphere" || keyword == "sphere" ||
			keyword == "ellipsoid" || keyword == "points" || keyword == "line" ||
			keyword == "poly" || keyword == "polygon" || keyword == "linesegs" ||
			keyword == "cone" || keyword == "orbit":
			if current.shape != TypeUnknown {
				p.reportError(lineNumber, "multiple shape keywords found in single start/end block")
				invalidShape = true
			}
			current.shape = ShapeTypeFromString(keyword)

		case keyword == "latlonaltbox":
			if len(tokens) < 6 {
				p.reportError(lineNumber, "latlonaltbox command requires at least 5 arguments")
				continue
			}
			if current.shape != TypeUnknown {
				p.reportError(lineNumber, "multiple shape keywords found in single start/end block")
				invalidShape = true
			}
			current.shape = TypeLatLonAltBox
			current.set(paramLLABoxN, tokens[1])
			current.set(paramLLABoxS, tokens[2])
			current.set(paramLLABoxE, tokens[3])
			current.set(paramLLABoxW, tokens[4])
			current.set(paramLLABoxMinAlt, tokens[5])
			if len(tokens) > 6 {
				current.set(paramLLABoxMaxAlt, tokens[6])
			}

		case keyword == "imageoverlay":
			if len(tokens) < 6 {
				p.reportError(lineNumber, "imageoverlay command requires 5 arguments")
				continue
			}
			if current.shape != TypeUnknown {
				p.reportError(lineNumber, "multiple shape keywords found in single start/end block")
				invalidShape = true
			}
			current.shape = TypeImageOverlay
			current.set(paramLLABoxN, tokens[1])
			current.set(paramLLABoxS, tokens[2])
			current.set(paramLLABoxE, tokens[3])
			current.set(paramLLABoxW, tokens[4])
			current.set(paramLLABoxRot, tokens[5])

		case keyword == "off":
			current.set(paramDraw, "false")

		case keyword == "ref" || keyword == "referencepoint":
			if len(tokens) < 3 {
				p.reportError(lineNumber, "ref/referencepoint command requires at least 2 arguments")
				continue
			}
			pos := positionStrings{x: tokens[1], y: tokens[2]}
			if len(tokens) >= 4 {
				pos.z = tokens[3]
			}
			// cache for reuse by later annotations in the same block
			refLLA.Set(pos)
			current.setPosition(paramRefLLA, pos)

		case keyword == "xy" || keyword == "xyz":
			if len(tokens) < 3 {
				p.reportError(lineNumber, "xy/xyz command requires at least 2 arguments")
				continue
			}
			pos := positionStrings{x: tokens[1], y: tokens[2]}
			if len(tokens) >= 4 {
				pos.z = tokens[3]
			}
			current.appendPoint(pointXYZ, pos)

		case keyword == "ll" || keyword == "lla" || keyword == "latlon":
			if len(tokens) < 3 {
				p.reportError(lineNumber, "ll/lla/latlon command requires at least 2 arguments")
				continue
			}
			pos := positionStrings{x: tokens[1], y: tokens[2]}
			if len(tokens) >= 4 {
				pos.z = tokens[3]
			}
			current.appendPoint(pointLLA, pos)

		case keyword == "centerxy" || keyword == "centerxyz":
			if len(tokens) < 3 {
				p.reportError(lineNumber, "centerxy/centerxyz command requires at least 2 arguments")
				continue
			}
			pos := positionStrings{x: tokens[1], y: tokens[2]}
			if len(tokens) >= 4 {
				pos.z = tokens[3]
			}
			current.setPosition(paramCenterXY, pos)

		case keyword == "centerxy2":
			if len(tokens) < 3 {
				p.reportError(lineNumber, "centerxy2 command requires at least 2 arguments")
				continue
			}
			current.setPosition(paramCenterXY2, positionStrings{x: tokens[1], y: tokens[2]})

		case keyword == "centerll" || keyword == "centerlla" || keyword == "centerlatlon":
			if len(tokens) < 3 {
				p.reportError(lineNumber, "centerll/centerlla/centerlatlon command requires at least 2 arguments")
				continue
			}
			pos := positionStrings{x: tokens[1], y: tokens[2]}
			if len(tokens) >= 4 {
				pos.z = tokens[3]
			}
			current.setPosition(paramCenterLL, pos)

		case keyword == "centerll2" || keyword == "centerlatlon2":
			if len(tokens) < 3 {
				p.reportError(lineNumber, "centerll2 command requires at least 2 arguments")
				continue
			}
			// centerll2 carries lat/lon only; altitude comes from center 1
			current.setPosition(paramCenterLL2, positionStrings{x: tokens[1], y: tokens[2]})

		case keyword == "linecolor":
			switch len(tokens) {
			case 2:
				state.lineColor.Set(p.resolveColorString(tokens[1], false))
			case 3:
				state.lineColor.Set(p.resolveColorString(tokens[2], true))
			default:
				p.reportError(lineNumber, "linecolor command requires at least 1 argument")
			}

		case keyword == "fillcolor":
			switch len(tokens) {
			case 2:
				state.fillColor.Set(p.resolveColorString(tokens[1], false))
			case 3:
				state.fillColor.Set(p.resolveColorString(tokens[2], true))
			default:
				p.reportError(lineNumber, "fillcolor command requires at least 1 argument")
			}

		case keyword == "textoutlinecolor":
			switch len(tokens) {
			case 2:
				state.textOutlineColor.Set(p.resolveColorString(tokens[1], false))
			case 3:
				state.textOutlineColor.Set(p.resolveColorString(tokens[2], true))
			default:
				p.reportError(lineNumber, "textoutlinecolor command requires at least 1 argument")
			}

		case keyword == "linewidth" || keyword == "pointsize" || keyword == "altitudemode" ||
			keyword == "altitudeunits" || keyword == "rangeunits" || keyword == "timeunits" ||
			keyword == "angleunits" || keyword == "verticaldatum" || keyword == "priority" ||
			keyword == "textoutlinethickness" || keyword == "linestyle" ||
			keyword == "fontname" || keyword == "fontsize":
			if len(tokens) < 2 {
				p.reportError(lineNumber, keyword+" command requires 1 argument")
				continue
			}
			arg := util.Unquote(tokens[1])
			switch keyword {
			case "linewidth":
				state.lineWidth.Set(arg)
			case "pointsize":
				state.pointSize.Set(arg)
			case "altitudemode":
				state.altitudeMode.Set(arg)
			case "altitudeunits":
				state.altitudeUnits.Set(util.RestOfLine(line, 1))
			case "rangeunits":
				state.rangeUnits.Set(util.RestOfLine(line, 1))
			case "timeunits":
				state.timeUnits.Set(util.RestOfLine(line, 1))
			case "angleunits":
				state.angleUnits.Set(util.RestOfLine(line, 1))
			case "verticaldatum":
				state.verticalDatum.Set(arg)
			case "priority":
				state.priority.Set(arg)
			case "textoutlinethickness":
				state.textOutlineThickness.Set(arg)
			case "linestyle":
				state.lineStyle.Set(arg)
			case "fontname":
				state.fontName.Set(arg)
				current.set(paramFontName, arg)
			case "fontsize":
				state.textSize.Set(arg)
				current.set(paramTextSize, arg)
			}

		case keyword == "filled":
			current.set(paramFilled, "true")

		case keyword == "outline":
			if len(tokens) < 2 {
				p.reportError(lineNumber, "outline command requires 1 argument")
				continue
			}
			if parseBoolToken(tokens[1]) {
				current.set(paramOutline, "true")
			} else {
				current.set(paramOutline, "false")
			}

		case keyword == "diameter":
			if len(tokens) < 2 {
				p.reportError(lineNumber, "diameter command requires 1 argument")
				continue
			}
			if v, ok := parseFloatToken(tokens[1]); ok {
				current.set(paramRadius, strconv.FormatFloat(v*0.5, 'g', -1, 64))
			}

		case keyword == "semimajoraxis":
			if len(tokens) < 2 {
				p.reportError(lineNumber, "semimajoraxis command requires 1 argument")
				continue
			}
			if v, ok := parseFloatToken(tokens[1]); ok {
				current.set(paramMajorAxis, strconv.FormatFloat(v*2, 'g', -1, 64))
			}

		case keyword == "semiminoraxis":
			if len(tokens) < 2 {
				p.reportError(lineNumber, "semiminoraxis command requires 1 argument")
				continue
			}
			if v, ok := parseFloatToken(tokens[1]); ok {
				current.set(paramMinorAxis, strconv.FormatFloat(v*2, 'g', -1, 64))
			}

		case keyword == "radius" || keyword == "anglestart" || keyword == "angleend" ||
			keyword == "angledeg" || keyword == "majoraxis" || keyword == "minoraxis" ||
			keyword == "height" || keyword == "tessellate" || keyword == "lineprojection" ||
			keyword == "depthbuffer" || keyword == "imagefile" || keyword == "opacity":
			if len(tokens) < 2 {
				p.reportError(lineNumber, keyword+" command requires 1 argument")
				continue
			}
			current.set(singleArgParams[keyword], util.Unquote(tokens[1]))

		case keyword == "scale":
			if len(tokens) < 4 {
				p.reportError(lineNumber, "scale command requires 3 arguments")
				continue
			}
			current.set(paramScaleX, tokens[1])
			current.set(paramScaleY, tokens[2])
			current.set(paramScaleZ, tokens[3])

		case keyword == "orient":
			if len(tokens) < 2 {
				p.reportError(lineNumber, "orient command requires at least 1 argument")
				continue
			}
			current.set(paramOrientHeading, tokens[1])
			components := "c"
			if len(tokens) >= 3 {
				current.set(paramOrientPitch, tokens[2])
				components = "cp"
				if len(tokens) >= 4 {
					current.set(paramOrientRoll, tokens[3])
					components = "cpr"
				}
			}
			current.set(paramOrient, components)

		case keyword == "rotate":
			current.set(paramFollow, "cpr")

		case keyword == "3d":
			if len(tokens) < 3 {
				p.reportError(lineNumber, "3d command requires at least 2 arguments")
				continue
			}
			rest := util.RestOfLine(line, 2)
			switch tokens[1] {
			case "name":
				current.set(paramName, rest)
			case "offsetalt":
				current.set(paramOffsetAlt, rest)
			case "offsetcourse":
				current.set(paramOffsetCourse, rest)
			case "offsetpitch":
				current.set(paramOffsetPitch, rest)
			case "offsetroll":
				current.set(paramOffsetRoll, rest)
			case "follow":
				current.set(paramFollow, rest)
			case "billboard":
				// all annotations are billboarded; accepted and ignored
			default:
				p.reportError(lineNumber, "Found unknown GOG command 3d "+tokens[1])
			}

		case keyword == "extrude":
			if len(tokens) < 2 {
				p.reportError(lineNumber, "extrude command requires at least 1 argument")
				continue
			}
			current.set(paramExtrude, tokens[1])
			if len(tokens) >= 3 {
				current.set(paramExtrudeHeight, tokens[2])
			}

		case keyword == "starttime" || keyword == "endtime":
			if len(tokens) < 2 {
				p.reportError(lineNumber, keyword+" command requires 1 argument")
				continue
			}
			key := paramTimeStart
			if keyword == "endtime" {
				key = paramTimeEnd
			}
			current.set(key, util.Unquote(util.RestOfLine(line, 1)))

		case keyword == "version" || keyword == "innerradius":
			// accepted without effect

		default:
			p.reportError(lineNumber, "Found unknown GOG command "+keyword)
		}
	}

	return output
}
