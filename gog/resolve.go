// gog/resolve.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gog

import (
	"fmt"
	gomath "math"
	"strings"
	"time"

	"github.com/bdow/gogkit/angle"
	"github.com/bdow/gogkit/math"
	"github.com/bdow/gogkit/units"
	"github.com/bdow/gogkit/util"
)

// resolveShape converts a completed block into a typed Shape, converting
// every value to meters and radians under the block's units. It returns
// nil, after reporting, when a required field is missing.
func (p *Parser) resolveShape(ps *parsedShape) Shape {
	registry := p.registry
	if registry == nil {
		registry = units.NewRegistry()
		registry.RegisterDefaults()
	}
	us := newUnitsState()
	us.parse(ps, registry)

	// Relative (XYZ offsets from a reference) vs absolute (LLA) is decided
	// by the positions the block actually used, not by a declaration.
	relative := ps.ptType == pointXYZ
	if _, hasXY := ps.position(paramCenterXY); hasXY && ps.ptType == pointUnknown {
		if _, hasLL := ps.position(paramCenterLL); !hasLL {
			relative = true
		}
	}

	var shape Shape
	switch ps.shape {
	case TypeCircle:
		c := NewCircle(relative)
		if !p.resolveCircular(ps, &c.CircularShape, &us, relative) {
			return nil
		}
		shape = c
	case TypeSphere:
		s := NewSphere(relative)
		if !p.resolveCircular(ps, &s.CircularShape, &us, relative) {
			return nil
		}
		shape = s
	case TypeHemisphere:
		h := NewHemisphere(relative)
		if !p.resolveCircular(ps, &h.CircularShape, &us, relative) {
			return nil
		}
		shape = h
	case TypeOrbit:
		shape = p.resolveOrbit(ps, &us, relative)
	case TypeCone:
		c := NewCone(relative)
		if !p.resolveCircular(ps, &c.CircularShape, &us, relative) {
			return nil
		}
		p.resolveHeight(ps, &us, c.SetHeight)
		shape = c
	case TypeEllipsoid:
		e := NewEllipsoid(relative)
		if !p.resolveCircular(ps, &e.CircularShape, &us, relative) {
			return nil
		}
		p.resolveHeight(ps, &us, e.SetHeight)
		if v, ok := p.floatValue(ps, paramMajorAxis); ok {
			e.SetMajorAxis(us.rangeToMeters(v))
		}
		if v, ok := p.floatValue(ps, paramMinorAxis); ok {
			e.SetMinorAxis(us.rangeToMeters(v))
		}
		shape = e
	case TypeArc:
		a := NewArc(relative)
		if !p.resolveElliptical(ps, &a.EllipticalShape, &us, relative) {
			return nil
		}
		shape = a
	case TypeEllipse:
		e := NewEllipse(relative)
		if !p.resolveElliptical(ps, &e.EllipticalShape, &us, relative) {
			return nil
		}
		shape = e
	case TypeCylinder:
		c := NewCylinder(relative)
		if !p.resolveElliptical(ps, &c.EllipticalShape, &us, relative) {
			return nil
		}
		p.resolveHeight(ps, &us, c.SetHeight)
		shape = c
	case TypeLine:
		l := NewLine(relative)
		if !p.resolvePointBased(ps, &l.PointBasedShape, &us, relative, 2) {
			return nil
		}
		shape = l
	case TypeLineSegs:
		l := NewLineSegs(relative)
		if !p.resolvePointBased(ps, &l.PointBasedShape, &us, relative, 2) {
			return nil
		}
		shape = l
	case TypePolygon:
		poly := NewPolygon(relative)
		if !p.resolvePointBased(ps, &poly.PointBasedShape, &us, relative, 3) {
			return nil
		}
		shape = poly
	case TypePoints:
		shape = p.resolvePoints(ps, &us, relative)
	case TypeAnnotation:
		shape = p.resolveAnnotation(ps, &us, relative)
	case TypeLatLonAltBox:
		shape = p.resolveLatLonAltBox(ps, &us)
	case TypeImageOverlay:
		shape = p.resolveImageOverlay(ps, &us)
	default:
		p.reportError(ps.lineNumber, "no shape keyword found in start/end block")
		return nil
	}
	if shape == nil {
		return nil
	}

	p.applyGeneralOptions(ps, shape, &us)
	return shape
}

func (p *Parser) floatValue(ps *parsedShape, key paramKey) (float64, bool) {
	s, ok := ps.value(key)
	if !ok {
		return 0, false
	}
	v, ok := parseFloatToken(s)
	if !ok {
		p.reportError(ps.lineNumber, fmt.Sprintf("invalid numeric value %q", s))
		return 0, false
	}
	return v, true
}

func (p *Parser) intValue(ps *parsedShape, key paramKey) (int, bool) {
	s, ok := ps.value(key)
	if !ok {
		return 0, false
	}
	v, ok := parseIntToken(s)
	if !ok {
		p.reportError(ps.lineNumber, fmt.Sprintf("invalid numeric value %q", s))
		return 0, false
	}
	return v, true
}

func (p *Parser) colorValue(ps *parsedShape, key paramKey) (Color, bool) {
	s, ok := ps.value(key)
	if !ok {
		return Color{}, false
	}
	c, ok := parseColorValue(s)
	if !ok {
		p.reportError(ps.lineNumber, fmt.Sprintf("invalid color value %q", s))
		return DefaultColor, true
	}
	return c, true
}

// resolvePosition converts one position from the block's units. Relative
// positions are XYZ offsets (range units for x/y, altitude units for z);
// absolute positions are lat/lon angle strings with an altitude.
func (p *Parser) resolvePosition(ps *parsedShape, pos positionStrings, relative bool, us *unitsState) (math.Vec3, bool) {
	if pos.z == "" {
		pos.z = "0"
	}
	z, okZ := parseFloatToken(pos.z)
	if relative {
		x, okX := parseFloatToken(pos.x)
		y, okY := parseFloatToken(pos.y)
		if !okX || !okY || !okZ {
			p.reportError(ps.lineNumber, fmt.Sprintf("invalid position %q %q %q", pos.x, pos.y, pos.z))
			return math.Vec3{}, false
		}
		return math.Vec3{us.rangeToMeters(x), us.rangeToMeters(y), us.altitudeToMeters(z)}, true
	}
	lat, errLat := angle.FromDegreeString(pos.x, true)
	lon, errLon := angle.FromDegreeString(pos.y, true)
	if errLat != nil || errLon != nil || !okZ {
		p.reportError(ps.lineNumber, fmt.Sprintf("invalid position %q %q %q", pos.x, pos.y, pos.z))
		return math.Vec3{}, false
	}
	return math.Vec3{lat, lon, us.altitudeToMeters(z)}, true
}

// centerPosition finds the block's center under the given mode; the
// comma-ok result is false when the block has no usable center.
func (p *Parser) centerPosition(ps *parsedShape, relative bool, us *unitsState) (math.Vec3, bool) {
	key := paramCenterLL
	if relative {
		key = paramCenterXY
	}
	pos, ok := ps.position(key)
	if !ok {
		return math.Vec3{}, false
	}
	return p.resolvePosition(ps, pos, relative, us)
}

func (p *Parser) resolveCircular(ps *parsedShape, c *CircularShape, us *unitsState, relative bool) bool {
	center, ok := p.centerPosition(ps, relative, us)
	if !ok {
		p.reportError(ps.lineNumber, ps.shape.String()+" shape requires a center point")
		return false
	}
	c.SetCenterPosition(center)
	if v, ok := p.floatValue(ps, paramRadius); ok {
		c.SetRadius(us.rangeToMeters(v))
	}
	p.resolveFillable(ps, &c.FillableShape)
	return true
}

func (p *Parser) resolveElliptical(ps *parsedShape, e *EllipticalShape, us *unitsState, relative bool) bool {
	if !p.resolveCircular(ps, &e.CircularShape, us, relative) {
		return false
	}
	if v, ok := p.floatValue(ps, paramAngleStart); ok {
		e.SetAngleStart(us.angleToRadians(v))
	}
	if v, ok := p.floatValue(ps, paramAngleDeg); ok {
		e.SetAngleSweep(us.angleToRadians(v))
	}
	if v, ok := p.floatValue(ps, paramAngleEnd); ok {
		start, _ := e.AngleStart()
		e.SetAngleSweep(sweepFromEndAngle(start, us.angleToRadians(v)))
	}
	if v, ok := p.floatValue(ps, paramMajorAxis); ok {
		e.SetMajorAxis(us.rangeToMeters(v))
	}
	if v, ok := p.floatValue(ps, paramMinorAxis); ok {
		e.SetMinorAxis(us.rangeToMeters(v))
	}
	return true
}

// sweepFromEndAngle derives a sweep from an explicit end angle. A full
// ±360 sweep is kept as-is; otherwise the sweep is normalized to a
// positive direction.
func sweepFromEndAngle(startRad, endRad float64) float64 {
	d := endRad - startRad
	if math.AlmostEqual(d, 2*gomath.Pi, 1e-9) || math.AlmostEqual(d, -2*gomath.Pi, 1e-9) {
		return d
	}
	if d <= 0 {
		d += 2 * gomath.Pi
	}
	return d
}

func (p *Parser) resolveHeight(ps *parsedShape, us *unitsState, set func(float64)) {
	if v, ok := p.floatValue(ps, paramHeight); ok {
		set(us.altitudeToMeters(v))
	}
}

func (p *Parser) resolvePointBased(ps *parsedShape, s *PointBasedShape, us *unitsState, relative bool, minPoints int) bool {
	for _, pt := range ps.points {
		pos, ok := p.resolvePosition(ps, pt, relative, us)
		if !ok {
			continue
		}
		s.AddPoint(pos)
	}
	if len(s.Points()) < minPoints {
		p.reportError(ps.lineNumber, fmt.Sprintf("%s shape requires at least %d points", ps.shape, minPoints))
		return false
	}
	p.resolveFillable(ps, &s.FillableShape)
	if v, ok := ps.value(paramTessellate); ok {
		style := TessellationNone
		if parseBoolToken(v) {
			style = TessellationRhumbline
			if proj, ok := ps.value(paramLineProjection); ok && strings.EqualFold(proj, "greatcircle") {
				style = TessellationGreatCircle
			}
		}
		s.SetTessellation(style)
	}
	return true
}

func (p *Parser) resolvePoints(ps *parsedShape, us *unitsState, relative bool) Shape {
	pts := NewPoints(relative)
	for _, pt := range ps.points {
		pos, ok := p.resolvePosition(ps, pt, relative, us)
		if !ok {
			continue
		}
		pts.AddPoint(pos)
	}
	if len(pts.Points()) < 1 {
		p.reportError(ps.lineNumber, "points shape requires at least 1 point")
		return nil
	}
	p.resolveOutlined(ps, &pts.OutlinedShape)
	if v, ok := p.intValue(ps, paramPointSize); ok {
		pts.SetPointSize(v)
	}
	if c, ok := p.colorValue(ps, paramLineColor); ok {
		pts.SetColor(c)
	}
	return pts
}

func (p *Parser) resolveOrbit(ps *parsedShape, us *unitsState, relative bool) Shape {
	o := NewOrbit(relative)
	if !p.resolveCircular(ps, &o.CircularShape, us, relative) {
		return nil
	}
	key := paramCenterLL2
	if relative {
		key = paramCenterXY2
	}
	pos2, ok := ps.position(key)
	if !ok {
		p.reportError(ps.lineNumber, "orbit shape requires two center points")
		return nil
	}
	center2, ok := p.resolvePosition(ps, pos2, relative, us)
	if !ok {
		return nil
	}
	center, _ := o.CenterPosition()
	if center2[0] == center[0] && center2[1] == center[1] {
		p.reportError(ps.lineNumber, "orbit shape requires two distinct center points")
		return nil
	}
	o.SetCenterPosition2(center2)
	return o
}

func (p *Parser) resolveAnnotation(ps *parsedShape, us *unitsState, relative bool) Shape {
	text, ok := ps.value(paramText)
	if !ok || text == "" {
		p.reportError(ps.lineNumber, "annotation requires text")
		return nil
	}
	a := NewAnnotation(relative)
	var pos positionStrings
	havePos := false
	if c, okc := ps.position(paramCenterXY); okc && relative {
		pos, havePos = c, true
	} else if c, okc := ps.position(paramCenterLL); okc && !relative {
		pos, havePos = c, true
	} else if len(ps.points) > 0 {
		pos, havePos = ps.points[0], true
	}
	if !havePos {
		p.reportError(ps.lineNumber, "annotation requires a position")
		return nil
	}
	position, okPos := p.resolvePosition(ps, pos, relative, us)
	if !okPos {
		return nil
	}
	a.SetPosition(position)
	// display text: underscores are spaces, literal \n breaks lines
	text = strings.ReplaceAll(text, "_", " ")
	text = strings.ReplaceAll(text, `\n`, "\n")
	a.SetText(text)

	if v, ok := ps.value(paramFontName); ok {
		a.SetFontName(v)
	}
	if v, ok := p.intValue(ps, paramTextSize); ok {
		a.SetTextSize(v)
	}
	if c, ok := p.colorValue(ps, paramLineColor); ok {
		a.SetTextColor(c)
	}
	if c, ok := p.colorValue(ps, paramTextOutlineColor); ok {
		a.SetOutlineColor(c)
	}
	if v, ok := ps.value(paramTextOutlineThickness); ok {
		switch strings.ToLower(v) {
		case "thin":
			a.SetOutlineThickness(ThicknessThin)
		case "thick":
			a.SetOutlineThickness(ThicknessThick)
		case "none":
			a.SetOutlineThickness(ThicknessNone)
		default:
			p.reportError(ps.lineNumber, fmt.Sprintf("invalid textoutlinethickness %q", v))
		}
	}
	if v, ok := ps.value(paramIcon); ok {
		a.SetIconFile(v)
	}
	if v, ok := p.floatValue(ps, paramPriority); ok {
		a.SetPriority(v)
	}
	return a
}

// resolveCorners parses the four lat/lon degree strings shared by
// latlonaltbox and imageoverlay, normalizing north >= south.
func (p *Parser) resolveCorners(ps *parsedShape) (n, s, e, w float64, ok bool) {
	get := func(key paramKey) (float64, bool) {
		str, has := ps.value(key)
		if !has {
			return 0, false
		}
		v, err := angle.FromDegreeString(str, true)
		if err != nil {
			p.reportError(ps.lineNumber, fmt.Sprintf("invalid corner value %q", str))
			return 0, false
		}
		return v, true
	}
	var okN, okS, okE, okW bool
	n, okN = get(paramLLABoxN)
	s, okS = get(paramLLABoxS)
	e, okE = get(paramLLABoxE)
	w, okW = get(paramLLABoxW)
	if !okN || !okS || !okE || !okW {
		return 0, 0, 0, 0, false
	}
	if s > n {
		n, s = s, n
	}
	return n, s, e, w, true
}

func (p *Parser) resolveLatLonAltBox(ps *parsedShape, us *unitsState) Shape {
	n, s, e, w, ok := p.resolveCorners(ps)
	if !ok {
		p.reportError(ps.lineNumber, "latlonaltbox requires four corner values")
		return nil
	}
	b := NewLatLonAltBox()
	b.SetCorners(n, s, e, w)
	if v, ok := p.floatValue(ps, paramLLABoxMinAlt); ok {
		b.SetAltitude(us.altitudeToMeters(v))
	}
	if v, ok := p.floatValue(ps, paramLLABoxMaxAlt); ok {
		b.SetHeight(us.altitudeToMeters(v))
	}
	p.resolveFillable(ps, &b.FillableShape)
	return b
}

func (p *Parser) resolveImageOverlay(ps *parsedShape, us *unitsState) Shape {
	n, s, e, w, ok := p.resolveCorners(ps)
	if !ok {
		p.reportError(ps.lineNumber, "imageoverlay requires four corner values")
		return nil
	}
	o := NewImageOverlay()
	o.SetCorners(n, s, e, w)
	if v, ok := p.floatValue(ps, paramLLABoxRot); ok {
		o.SetRotation(us.angleToRadians(v))
	}
	if v, ok := ps.value(paramImage); ok {
		o.SetImageFile(v)
	} else if v, ok := ps.value(paramIcon); ok {
		o.SetImageFile(v)
	}
	if v, ok := p.floatValue(ps, paramOpacity); ok {
		o.SetOpacity(v)
	}
	return o
}

func (p *Parser) resolveOutlined(ps *parsedShape, s *OutlinedShape) {
	if v, ok := ps.value(paramOutline); ok {
		s.SetOutlined(parseBoolToken(v))
	}
}

func (p *Parser) resolveFillable(ps *parsedShape, s *FillableShape) {
	p.resolveOutlined(ps, &s.OutlinedShape)
	if v, ok := ps.value(paramLineWidth); ok {
		switch strings.ToLower(v) {
		case "thin":
			s.SetLineWidth(1)
		case "med", "medium":
			s.SetLineWidth(2)
		case "thick":
			s.SetLineWidth(4)
		default:
			if w, ok := parseIntToken(v); ok {
				s.SetLineWidth(w)
			} else {
				p.reportError(ps.lineNumber, fmt.Sprintf("invalid linewidth %q", v))
			}
		}
	}
	if c, ok := p.colorValue(ps, paramLineColor); ok {
		s.SetLineColor(c)
	}
	if v, ok := ps.value(paramLineStyle); ok {
		switch strings.ToLower(v) {
		case "solid":
			s.SetLineStyle(LineStyleSolid)
		case "dashed", "dash":
			s.SetLineStyle(LineStyleDashed)
		case "dotted", "dot":
			s.SetLineStyle(LineStyleDotted)
		default:
			p.reportError(ps.lineNumber, fmt.Sprintf("invalid linestyle %q", v))
		}
	}
	if v, ok := ps.value(paramFilled); ok {
		s.SetFilled(parseBoolToken(v))
	}
	if c, ok := p.colorValue(ps, paramFillColor); ok {
		s.SetFillColor(c)
	}
}

// applyGeneralOptions applies the fields every shape carries: name, draw,
// depth buffer, altitude handling, reference position, scale, orientation
// following, vertical datum and time range.
func (p *Parser) applyGeneralOptions(ps *parsedShape, shape Shape, us *unitsState) {
	b := shape.base()
	b.comments = append(b.comments, ps.comments...)

	if v, ok := ps.value(paramName); ok {
		b.SetName(util.Unquote(v))
	}
	if v, ok := ps.value(paramDraw); ok {
		b.SetDrawn(parseBoolToken(v))
	}
	if v, ok := ps.value(paramDepthBuffer); ok {
		b.SetDepthBufferActive(parseBoolToken(v))
	}
	if v, ok := p.floatValue(ps, paramOffsetAlt); ok {
		b.SetAltitudeOffset(us.altitudeToMeters(v))
	}

	if v, ok := ps.value(paramAltitudeMode); ok {
		switch strings.ToLower(v) {
		case "clamptoground":
			b.SetAltitudeMode(AltitudeModeClampToGround)
		case "relativetoground":
			b.SetAltitudeMode(AltitudeModeRelativeToGround)
		case "extrude":
			b.SetAltitudeMode(AltitudeModeExtrude)
		case "none":
			b.SetAltitudeMode(AltitudeModeNone)
		default:
			p.reportError(ps.lineNumber, fmt.Sprintf("invalid altitudemode %q", v))
		}
	}
	if v, ok := ps.value(paramExtrude); ok && parseBoolToken(v) {
		b.SetAltitudeMode(AltitudeModeExtrude)
		if h, ok := p.floatValue(ps, paramExtrudeHeight); ok {
			b.SetExtrudeHeight(us.altitudeToMeters(h))
		}
	}

	if pos, ok := ps.position(paramRefLLA); ok && shape.IsRelative() {
		if ref, ok := p.resolvePosition(ps, pos, false, us); ok {
			b.SetReferencePosition(ref)
		}
	}

	if x, okX := p.floatValue(ps, paramScaleX); okX {
		y, okY := p.floatValue(ps, paramScaleY)
		z, okZ := p.floatValue(ps, paramScaleZ)
		if okY && okZ {
			b.SetScale(math.Vec3{x, y, z})
		}
	}

	if components, ok := ps.value(paramOrient); ok {
		if strings.Contains(components, "c") {
			b.SetFollowYaw(true)
			if v, ok := p.floatValue(ps, paramOrientHeading); ok {
				b.SetYawOffset(us.angleToRadians(v))
			}
		}
		if strings.Contains(components, "p") {
			b.SetFollowPitch(true)
			if v, ok := p.floatValue(ps, paramOrientPitch); ok {
				b.SetPitchOffset(us.angleToRadians(v))
			}
		}
		if strings.Contains(components, "r") {
			b.SetFollowRoll(true)
			if v, ok := p.floatValue(ps, paramOrientRoll); ok {
				b.SetRollOffset(us.angleToRadians(v))
			}
		}
	}
	if components, ok := ps.value(paramFollow); ok {
		if strings.Contains(components, "c") {
			b.SetFollowYaw(true)
		}
		if strings.Contains(components, "p") {
			b.SetFollowPitch(true)
		}
		if strings.Contains(components, "r") {
			b.SetFollowRoll(true)
		}
	}
	if v, ok := p.floatValue(ps, paramOffsetCourse); ok {
		b.SetFollowYaw(true)
		b.SetYawOffset(us.angleToRadians(v))
	}
	if v, ok := p.floatValue(ps, paramOffsetPitch); ok {
		b.SetFollowPitch(true)
		b.SetPitchOffset(us.angleToRadians(v))
	}
	if v, ok := p.floatValue(ps, paramOffsetRoll); ok {
		b.SetFollowRoll(true)
		b.SetRollOffset(us.angleToRadians(v))
	}

	if v, ok := ps.value(paramVerticalDatum); ok {
		b.SetVerticalDatum(v)
	}

	var start, end time.Time
	if v, ok := ps.value(paramTimeStart); ok {
		t, err := parseTimeString(v)
		if err != nil {
			p.reportError(ps.lineNumber, err.Error())
		} else {
			start = t
		}
	}
	if v, ok := ps.value(paramTimeEnd); ok {
		t, err := parseTimeString(v)
		if err != nil {
			p.reportError(ps.lineNumber, err.Error())
		} else {
			end = t
		}
	}
	if !start.IsZero() || !end.IsZero() {
		b.SetTimeRange(start, end)
	}
}
