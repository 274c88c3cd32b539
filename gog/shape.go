// gog/shape.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package gog parses GOG (Graphical Overlay Geometry) text into a typed
// shape model and serializes shapes back to GOG text. Angles are stored in
// radians and distances in meters; accessors report whether a field was
// explicitly provided and return a documented default otherwise.
package gog

import (
	"time"

	"github.com/brunoga/deep"

	"github.com/bdow/gogkit/math"
	"github.com/bdow/gogkit/units"
	"github.com/bdow/gogkit/util"
)

type ShapeType int

const (
	TypeUnknown ShapeType = iota
	TypeAnnotation
	TypeCircle
	TypeEllipse
	TypeEllipsoid
	TypeArc
	TypeCylinder
	TypeHemisphere
	TypeSphere
	TypePoints
	TypeLine
	TypePolygon
	TypeLineSegs
	TypeLatLonAltBox
	TypeCone
	TypeImageOverlay
	TypeOrbit
)

func (t ShapeType) String() string {
	switch t {
	case TypeAnnotation:
		return "annotation"
	case TypeCircle:
		return "circle"
	case TypeEllipse:
		return "ellipse"
	case TypeEllipsoid:
		return "ellipsoid"
	case TypeArc:
		return "arc"
	case TypeCylinder:
		return "cylinder"
	case TypeHemisphere:
		return "hemisphere"
	case TypeSphere:
		return "sphere"
	case TypePoints:
		return "points"
	case TypeLine:
		return "line"
	case TypePolygon:
		return "polygon"
	case TypeLineSegs:
		return "linesegs"
	case TypeLatLonAltBox:
		return "latlonaltbox"
	case TypeCone:
		return "cone"
	case TypeImageOverlay:
		return "imageoverlay"
	case TypeOrbit:
		return "orbit"
	}
	return ""
}

// ShapeTypeFromString maps a GOG type keyword to its ShapeType; both "poly"
// and "polygon" name a polygon. Unrecognized keywords give TypeUnknown.
func ShapeTypeFromString(s string) ShapeType {
	switch s {
	case "annotation":
		return TypeAnnotation
	case "circle":
		return TypeCircle
	case "ellipse":
		return TypeEllipse
	case "ellipsoid":
		return TypeEllipsoid
	case "arc":
		return TypeArc
	case "cylinder":
		return TypeCylinder
	case "hemisphere":
		return TypeHemisphere
	case "sphere":
		return TypeSphere
	case "points":
		return TypePoints
	case "line":
		return TypeLine
	case "poly", "polygon":
		return TypePolygon
	case "linesegs":
		return TypeLineSegs
	case "latlonaltbox":
		return TypeLatLonAltBox
	case "cone":
		return TypeCone
	case "imageoverlay":
		return TypeImageOverlay
	case "orbit":
		return TypeOrbit
	}
	return TypeUnknown
}

type AltitudeMode int

const (
	AltitudeModeNone AltitudeMode = iota
	AltitudeModeClampToGround
	AltitudeModeRelativeToGround
	AltitudeModeExtrude
)

func (m AltitudeMode) String() string {
	switch m {
	case AltitudeModeClampToGround:
		return "clamptoground"
	case AltitudeModeRelativeToGround:
		return "relativetoground"
	case AltitudeModeExtrude:
		return "extrude"
	}
	return "none"
}

type LineStyle int

const (
	LineStyleSolid LineStyle = iota
	LineStyleDashed
	LineStyleDotted
)

func (s LineStyle) String() string {
	switch s {
	case LineStyleDashed:
		return "dashed"
	case LineStyleDotted:
		return "dotted"
	}
	return "solid"
}

type TessellationStyle int

const (
	TessellationNone TessellationStyle = iota
	TessellationRhumbline
	TessellationGreatCircle
)

type OutlineThickness int

const (
	ThicknessNone OutlineThickness = iota
	ThicknessThin
	ThicknessThick
)

func (t OutlineThickness) String() string {
	switch t {
	case ThicknessThin:
		return "thin"
	case ThicknessThick:
		return "thick"
	}
	return "none"
}

// Color is an RGBA color; the GOG wire format packs it as 0xAABBGGRR.
type Color struct {
	R, G, B, A uint8
}

// DefaultColor is opaque red, the fallback for unset and unparseable
// colors.
var DefaultColor = Color{255, 0, 0, 255}

// ColorFromABGR unpacks a 0xAABBGGRR value.
func ColorFromABGR(abgr uint32) Color {
	return Color{
		R: uint8(abgr & 0xff),
		G: uint8((abgr >> 8) & 0xff),
		B: uint8((abgr >> 16) & 0xff),
		A: uint8((abgr >> 24) & 0xff),
	}
}

// ABGR packs the color as 0xAABBGGRR.
func (c Color) ABGR() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// BSTUR is the default reference position for relative shapes that never
// set one: Barking Sands, Kauai.
var BSTUR = math.Vec3{math.DegToRad * 22.1194392, math.DegToRad * -159.9194988, 0}

// defaultRadiusMeters is the radius reported for circular shapes that never
// set one: 1000 yards.
var defaultRadiusMeters = units.Yards.ConvertTo(units.Meters, 1000)

// defaultHeightMeters is the height reported for cones, cylinders and
// ellipsoids that never set one: 1000 feet.
var defaultHeightMeters = units.Feet.ConvertTo(units.Meters, 1000)

// Shape is one parsed overlay primitive. Concrete types (Circle, Line,
// Annotation, ...) are independent value objects; use a type switch to get
// at type-specific fields.
type Shape interface {
	Type() ShapeType
	IsRelative() bool
	base() *shapeBase
}

// Clone returns a deep copy of a shape.
func Clone(s Shape) Shape {
	switch t := s.(type) {
	case *Circle:
		return deep.MustCopy(t)
	case *Sphere:
		return deep.MustCopy(t)
	case *Hemisphere:
		return deep.MustCopy(t)
	case *Orbit:
		return deep.MustCopy(t)
	case *Cone:
		return deep.MustCopy(t)
	case *Ellipsoid:
		return deep.MustCopy(t)
	case *Arc:
		return deep.MustCopy(t)
	case *Ellipse:
		return deep.MustCopy(t)
	case *Cylinder:
		return deep.MustCopy(t)
	case *Line:
		return deep.MustCopy(t)
	case *LineSegs:
		return deep.MustCopy(t)
	case *Polygon:
		return deep.MustCopy(t)
	case *Points:
		return deep.MustCopy(t)
	case *Annotation:
		return deep.MustCopy(t)
	case *LatLonAltBox:
		return deep.MustCopy(t)
	case *ImageOverlay:
		return deep.MustCopy(t)
	}
	return nil
}

// shapeBase carries the fields shared by every shape. Setters for
// capability-gated fields (altitude mode extrusion, follow components,
// reference position) are no-ops on shapes that do not support them.
type shapeBase struct {
	typ        ShapeType
	canExtrude bool
	canFollow  bool
	relative   bool

	comments []string

	name          util.Optional[string]
	draw          util.Optional[bool]
	depthBuffer   util.Optional[bool]
	altOffset     util.Optional[float64]
	altMode       util.Optional[AltitudeMode]
	extrudeHeight util.Optional[float64]
	refPos        util.Optional[math.Vec3]
	scale         util.Optional[math.Vec3]
	followYaw     util.Optional[bool]
	followPitch   util.Optional[bool]
	followRoll    util.Optional[bool]
	yawOffset     util.Optional[float64]
	pitchOffset   util.Optional[float64]
	rollOffset    util.Optional[float64]
	verticalDatum util.Optional[string]
	startTime     util.Optional[time.Time]
	endTime       util.Optional[time.Time]
}

func (s *shapeBase) base() *shapeBase { return s }

func (s *shapeBase) Type() ShapeType  { return s.typ }
func (s *shapeBase) IsRelative() bool { return s.relative }

// CanExtrude reports whether the shape honors the extrude altitude mode.
func (s *shapeBase) CanExtrude() bool { return s.canExtrude }

// CanFollow reports whether the shape honors follow/orient fields.
func (s *shapeBase) CanFollow() bool { return s.canFollow }

// SetRelative switches the shape between relative (XYZ) and absolute (LLA)
// position modes. A reference position is only meaningful on a relative
// shape, so turning relative off discards any stored reference position.
func (s *shapeBase) SetRelative(relative bool) {
	s.relative = relative
	if !relative {
		s.refPos.Clear()
	}
}

func (s *shapeBase) Comments() []string  { return s.comments }
func (s *shapeBase) AddComment(c string) { s.comments = append(s.comments, c) }

// Name returns the shape's name, defaulting to its type keyword.
func (s *shapeBase) Name() (string, bool) {
	return s.name.GetOr(s.typ.String()), s.name.IsSet()
}
func (s *shapeBase) SetName(name string) { s.name.Set(name) }

// IsDrawn defaults to true.
func (s *shapeBase) IsDrawn() (bool, bool) { return s.draw.GetOr(true), s.draw.IsSet() }
func (s *shapeBase) SetDrawn(draw bool)    { s.draw.Set(draw) }

// IsDepthBufferActive defaults to false.
func (s *shapeBase) IsDepthBufferActive() (bool, bool) {
	return s.depthBuffer.GetOr(false), s.depthBuffer.IsSet()
}
func (s *shapeBase) SetDepthBufferActive(active bool) { s.depthBuffer.Set(active) }

// AltitudeOffset is in meters; defaults to 0.
func (s *shapeBase) AltitudeOffset() (float64, bool) {
	return s.altOffset.GetOr(0), s.altOffset.IsSet()
}
func (s *shapeBase) SetAltitudeOffset(meters float64) { s.altOffset.Set(meters) }

// AltitudeMode defaults to AltitudeModeNone.
func (s *shapeBase) AltitudeMode() (AltitudeMode, bool) {
	return s.altMode.GetOr(AltitudeModeNone), s.altMode.IsSet()
}

// SetAltitudeMode ignores AltitudeModeExtrude on shapes that cannot
// extrude.
func (s *shapeBase) SetAltitudeMode(mode AltitudeMode) {
	if mode == AltitudeModeExtrude && !s.canExtrude {
		return
	}
	s.altMode.Set(mode)
}

// ExtrudeHeight is in meters; defaults to 0.
func (s *shapeBase) ExtrudeHeight() (float64, bool) {
	return s.extrudeHeight.GetOr(0), s.extrudeHeight.IsSet()
}
func (s *shapeBase) SetExtrudeHeight(meters float64) {
	if !s.canExtrude {
		return
	}
	s.extrudeHeight.Set(meters)
}

// ReferencePosition defaults to BSTUR. Only relative shapes store one.
func (s *shapeBase) ReferencePosition() (math.Vec3, bool) {
	return s.refPos.GetOr(BSTUR), s.refPos.IsSet()
}
func (s *shapeBase) SetReferencePosition(pos math.Vec3) {
	if !s.relative {
		return
	}
	s.refPos.Set(pos)
}

// Scale defaults to (1, 1, 1).
func (s *shapeBase) Scale() (math.Vec3, bool) {
	return s.scale.GetOr(math.Vec3{1, 1, 1}), s.scale.IsSet()
}
func (s *shapeBase) SetScale(scale math.Vec3) { s.scale.Set(scale) }

func (s *shapeBase) IsFollowingYaw() (bool, bool) {
	return s.followYaw.GetOr(false), s.followYaw.IsSet()
}
func (s *shapeBase) SetFollowYaw(follow bool) {
	if s.canFollow {
		s.followYaw.Set(follow)
	}
}

func (s *shapeBase) IsFollowingPitch() (bool, bool) {
	return s.followPitch.GetOr(false), s.followPitch.IsSet()
}
func (s *shapeBase) SetFollowPitch(follow bool) {
	if s.canFollow {
		s.followPitch.Set(follow)
	}
}

func (s *shapeBase) IsFollowingRoll() (bool, bool) {
	return s.followRoll.GetOr(false), s.followRoll.IsSet()
}
func (s *shapeBase) SetFollowRoll(follow bool) {
	if s.canFollow {
		s.followRoll.Set(follow)
	}
}

// Yaw/pitch/roll offsets are radians; default 0.
func (s *shapeBase) YawOffset() (float64, bool) { return s.yawOffset.GetOr(0), s.yawOffset.IsSet() }
func (s *shapeBase) SetYawOffset(rad float64) {
	if s.canFollow {
		s.yawOffset.Set(rad)
	}
}

func (s *shapeBase) PitchOffset() (float64, bool) {
	return s.pitchOffset.GetOr(0), s.pitchOffset.IsSet()
}
func (s *shapeBase) SetPitchOffset(rad float64) {
	if s.canFollow {
		s.pitchOffset.Set(rad)
	}
}

func (s *shapeBase) RollOffset() (float64, bool) { return s.rollOffset.GetOr(0), s.rollOffset.IsSet() }
func (s *shapeBase) SetRollOffset(rad float64) {
	if s.canFollow {
		s.rollOffset.Set(rad)
	}
}

// VerticalDatum defaults to "wgs84".
func (s *shapeBase) VerticalDatum() (string, bool) {
	return s.verticalDatum.GetOr("wgs84"), s.verticalDatum.IsSet()
}
func (s *shapeBase) SetVerticalDatum(datum string) { s.verticalDatum.Set(datum) }

func (s *shapeBase) StartTime() (time.Time, bool) { return s.startTime.Get() }
func (s *shapeBase) EndTime() (time.Time, bool)   { return s.endTime.Get() }

// SetTimeRange stores a start/end pair; an inverted range (start after
// end) clears both rather than storing half of it.
func (s *shapeBase) SetTimeRange(start, end time.Time) {
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		s.startTime.Clear()
		s.endTime.Clear()
		return
	}
	if !start.IsZero() {
		s.startTime.Set(start)
	}
	if !end.IsZero() {
		s.endTime.Set(end)
	}
}

// OutlinedShape adds the outline flag.
type OutlinedShape struct {
	shapeBase
	outlined util.Optional[bool]
}

// IsOutlined defaults to true.
func (s *OutlinedShape) IsOutlined() (bool, bool)  { return s.outlined.GetOr(true), s.outlined.IsSet() }
func (s *OutlinedShape) SetOutlined(outlined bool) { s.outlined.Set(outlined) }

// FillableShape adds line styling and fill.
type FillableShape struct {
	OutlinedShape
	lineWidth util.Optional[int]
	lineColor util.Optional[Color]
	lineStyle util.Optional[LineStyle]
	filled    util.Optional[bool]
	fillColor util.Optional[Color]
}

// LineWidth defaults to 1.
func (s *FillableShape) LineWidth() (int, bool) { return s.lineWidth.GetOr(1), s.lineWidth.IsSet() }
func (s *FillableShape) SetLineWidth(w int)     { s.lineWidth.Set(w) }

func (s *FillableShape) LineColor() (Color, bool) {
	return s.lineColor.GetOr(DefaultColor), s.lineColor.IsSet()
}
func (s *FillableShape) SetLineColor(c Color) { s.lineColor.Set(c) }

func (s *FillableShape) LineStyle() (LineStyle, bool) {
	return s.lineStyle.GetOr(LineStyleSolid), s.lineStyle.IsSet()
}
func (s *FillableShape) SetLineStyle(style LineStyle) { s.lineStyle.Set(style) }

// IsFilled defaults to false.
func (s *FillableShape) IsFilled() (bool, bool) { return s.filled.GetOr(false), s.filled.IsSet() }
func (s *FillableShape) SetFilled(filled bool)  { s.filled.Set(filled) }

func (s *FillableShape) FillColor() (Color, bool) {
	return s.fillColor.GetOr(DefaultColor), s.fillColor.IsSet()
}
func (s *FillableShape) SetFillColor(c Color) { s.fillColor.Set(c) }

// CircularShape adds a center position and radius.
type CircularShape struct {
	FillableShape
	center util.Optional[math.Vec3]
	radius util.Optional[float64]
}

func (s *CircularShape) CenterPosition() (math.Vec3, bool) { return s.center.Get() }
func (s *CircularShape) SetCenterPosition(pos math.Vec3)   { s.center.Set(pos) }

// Radius is in meters and defaults to 1000 yards.
func (s *CircularShape) Radius() (float64, bool) {
	return s.radius.GetOr(defaultRadiusMeters), s.radius.IsSet()
}
func (s *CircularShape) SetRadius(meters float64) { s.radius.Set(meters) }

// EllipticalShape adds start/sweep angles and axes.
type EllipticalShape struct {
	CircularShape
	angleStart util.Optional[float64]
	angleSweep util.Optional[float64]
	majorAxis  util.Optional[float64]
	minorAxis  util.Optional[float64]
}

// AngleStart is radians; default 0.
func (s *EllipticalShape) AngleStart() (float64, bool) {
	return s.angleStart.GetOr(0), s.angleStart.IsSet()
}
func (s *EllipticalShape) SetAngleStart(rad float64) { s.angleStart.Set(rad) }

// AngleSweep is radians; default 0.
func (s *EllipticalShape) AngleSweep() (float64, bool) {
	return s.angleSweep.GetOr(0), s.angleSweep.IsSet()
}
func (s *EllipticalShape) SetAngleSweep(rad float64) { s.angleSweep.Set(rad) }

// MajorAxis is meters; default 0.
func (s *EllipticalShape) MajorAxis() (float64, bool) {
	return s.majorAxis.GetOr(0), s.majorAxis.IsSet()
}
func (s *EllipticalShape) SetMajorAxis(meters float64) { s.majorAxis.Set(meters) }

func (s *EllipticalShape) MinorAxis() (float64, bool) {
	return s.minorAxis.GetOr(0), s.minorAxis.IsSet()
}
func (s *EllipticalShape) SetMinorAxis(meters float64) { s.minorAxis.Set(meters) }

// CircularHeightShape adds a height above the center.
type CircularHeightShape struct {
	CircularShape
	height util.Optional[float64]
}

// Height is meters; defaults to 1000 feet.
func (s *CircularHeightShape) Height() (float64, bool) {
	return s.height.GetOr(defaultHeightMeters), s.height.IsSet()
}
func (s *CircularHeightShape) SetHeight(meters float64) { s.height.Set(meters) }

// PointBasedShape holds an ordered point list.
type PointBasedShape struct {
	FillableShape
	points       []math.Vec3
	tessellation util.Optional[TessellationStyle]
}

func (s *PointBasedShape) Points() []math.Vec3    { return s.points }
func (s *PointBasedShape) AddPoint(pos math.Vec3) { s.points = append(s.points, pos) }
func (s *PointBasedShape) Tessellation() (TessellationStyle, bool) {
	return s.tessellation.GetOr(TessellationNone), s.tessellation.IsSet()
}
func (s *PointBasedShape) SetTessellation(style TessellationStyle) { s.tessellation.Set(style) }

type Circle struct{ CircularShape }

func NewCircle(relative bool) *Circle {
	c := &Circle{}
	c.typ = TypeCircle
	c.relative = relative
	c.canExtrude = true
	c.canFollow = true
	return c
}

type Sphere struct{ CircularShape }

func NewSphere(relative bool) *Sphere {
	s := &Sphere{}
	s.typ = TypeSphere
	s.relative = relative
	s.canFollow = true
	return s
}

type Hemisphere struct{ CircularShape }

func NewHemisphere(relative bool) *Hemisphere {
	h := &Hemisphere{}
	h.typ = TypeHemisphere
	h.relative = relative
	h.canFollow = true
	return h
}

// Orbit is a racetrack defined by two centers and a radius.
type Orbit struct {
	CircularShape
	center2 math.Vec3
}

func NewOrbit(relative bool) *Orbit {
	o := &Orbit{}
	o.typ = TypeOrbit
	o.relative = relative
	o.canFollow = true
	return o
}

func (o *Orbit) CenterPosition2() math.Vec3 { return o.center2 }

// SetCenterPosition2 stores the second center; its altitude always comes
// from the first center.
func (o *Orbit) SetCenterPosition2(pos math.Vec3) {
	center, _ := o.CenterPosition()
	pos[2] = center[2]
	o.center2 = pos
}

type Cone struct{ CircularHeightShape }

func NewCone(relative bool) *Cone {
	c := &Cone{}
	c.typ = TypeCone
	c.relative = relative
	c.canExtrude = true
	c.canFollow = true
	return c
}

type Ellipsoid struct {
	CircularHeightShape
	majorAxis util.Optional[float64]
	minorAxis util.Optional[float64]
}

func NewEllipsoid(relative bool) *Ellipsoid {
	e := &Ellipsoid{}
	e.typ = TypeEllipsoid
	e.relative = relative
	e.canFollow = true
	return e
}

func (e *Ellipsoid) MajorAxis() (float64, bool)  { return e.majorAxis.GetOr(0), e.majorAxis.IsSet() }
func (e *Ellipsoid) SetMajorAxis(meters float64) { e.majorAxis.Set(meters) }
func (e *Ellipsoid) MinorAxis() (float64, bool)  { return e.minorAxis.GetOr(0), e.minorAxis.IsSet() }
func (e *Ellipsoid) SetMinorAxis(meters float64) { e.minorAxis.Set(meters) }

type Arc struct{ EllipticalShape }

func NewArc(relative bool) *Arc {
	a := &Arc{}
	a.typ = TypeArc
	a.relative = relative
	a.canExtrude = true
	a.canFollow = true
	return a
}

type Ellipse struct{ EllipticalShape }

func NewEllipse(relative bool) *Ellipse {
	e := &Ellipse{}
	e.typ = TypeEllipse
	e.relative = relative
	e.canExtrude = true
	e.canFollow = true
	return e
}

type Cylinder struct {
	EllipticalShape
	height util.Optional[float64]
}

func NewCylinder(relative bool) *Cylinder {
	c := &Cylinder{}
	c.typ = TypeCylinder
	c.relative = relative
	c.canFollow = true
	return c
}

// Height is meters; defaults to 1000 feet.
func (c *Cylinder) Height() (float64, bool) {
	return c.height.GetOr(defaultHeightMeters), c.height.IsSet()
}
func (c *Cylinder) SetHeight(meters float64) { c.height.Set(meters) }

type Line struct{ PointBasedShape }

func NewLine(relative bool) *Line {
	l := &Line{}
	l.typ = TypeLine
	l.relative = relative
	l.canExtrude = true
	l.canFollow = relative
	return l
}

type LineSegs struct{ PointBasedShape }

func NewLineSegs(relative bool) *LineSegs {
	l := &LineSegs{}
	l.typ = TypeLineSegs
	l.relative = relative
	l.canExtrude = true
	l.canFollow = relative
	return l
}

type Polygon struct{ PointBasedShape }

func NewPolygon(relative bool) *Polygon {
	p := &Polygon{}
	p.typ = TypePolygon
	p.relative = relative
	p.canExtrude = true
	p.canFollow = relative
	return p
}

// Points is a set of markers drawn at each position.
type Points struct {
	OutlinedShape
	points    []math.Vec3
	pointSize util.Optional[int]
	color     util.Optional[Color]
}

func NewPoints(relative bool) *Points {
	p := &Points{}
	p.typ = TypePoints
	p.relative = relative
	p.canExtrude = true
	p.canFollow = relative
	return p
}

func (p *Points) Points() []math.Vec3    { return p.points }
func (p *Points) AddPoint(pos math.Vec3) { p.points = append(p.points, pos) }

// PointSize defaults to 1.
func (p *Points) PointSize() (int, bool) { return p.pointSize.GetOr(1), p.pointSize.IsSet() }
func (p *Points) SetPointSize(size int)  { p.pointSize.Set(size) }

func (p *Points) Color() (Color, bool) { return p.color.GetOr(DefaultColor), p.color.IsSet() }
func (p *Points) SetColor(c Color)     { p.color.Set(c) }

// Annotation is a text label at a single position.
type Annotation struct {
	shapeBase
	text             string
	position         util.Optional[math.Vec3]
	fontName         util.Optional[string]
	textSize         util.Optional[int]
	textColor        util.Optional[Color]
	outlineColor     util.Optional[Color]
	outlineThickness util.Optional[OutlineThickness]
	iconFile         util.Optional[string]
	priority         util.Optional[float64]
}

func NewAnnotation(relative bool) *Annotation {
	a := &Annotation{}
	a.typ = TypeAnnotation
	a.relative = relative
	return a
}

func (a *Annotation) Text() string        { return a.text }
func (a *Annotation) SetText(text string) { a.text = text }

func (a *Annotation) Position() (math.Vec3, bool) { return a.position.Get() }
func (a *Annotation) SetPosition(pos math.Vec3)   { a.position.Set(pos) }

// FontName defaults to "arial.ttf".
func (a *Annotation) FontName() (string, bool) {
	return a.fontName.GetOr("arial.ttf"), a.fontName.IsSet()
}
func (a *Annotation) SetFontName(name string) { a.fontName.Set(name) }

// TextSize defaults to 15 points.
func (a *Annotation) TextSize() (int, bool) { return a.textSize.GetOr(15), a.textSize.IsSet() }
func (a *Annotation) SetTextSize(size int)  { a.textSize.Set(size) }

func (a *Annotation) TextColor() (Color, bool) {
	return a.textColor.GetOr(DefaultColor), a.textColor.IsSet()
}
func (a *Annotation) SetTextColor(c Color) { a.textColor.Set(c) }

func (a *Annotation) OutlineColor() (Color, bool) {
	return a.outlineColor.GetOr(DefaultColor), a.outlineColor.IsSet()
}
func (a *Annotation) SetOutlineColor(c Color) { a.outlineColor.Set(c) }

func (a *Annotation) OutlineThickness() (OutlineThickness, bool) {
	return a.outlineThickness.GetOr(ThicknessNone), a.outlineThickness.IsSet()
}
func (a *Annotation) SetOutlineThickness(t OutlineThickness) { a.outlineThickness.Set(t) }

func (a *Annotation) IconFile() (string, bool) { return a.iconFile.GetOr(""), a.iconFile.IsSet() }
func (a *Annotation) SetIconFile(file string)  { a.iconFile.Set(file) }

// Priority defaults to 0; higher values win label decluttering.
func (a *Annotation) Priority() (float64, bool) { return a.priority.GetOr(0), a.priority.IsSet() }
func (a *Annotation) SetPriority(p float64)     { a.priority.Set(p) }

// LatLonAltBox is an absolute-only bounding box; corners are radians.
type LatLonAltBox struct {
	FillableShape
	north, south, east, west float64
	altitude                 util.Optional[float64]
	height                   util.Optional[float64]
}

func NewLatLonAltBox() *LatLonAltBox {
	b := &LatLonAltBox{}
	b.typ = TypeLatLonAltBox
	return b
}

func (b *LatLonAltBox) North() float64 { return b.north }
func (b *LatLonAltBox) South() float64 { return b.south }
func (b *LatLonAltBox) East() float64  { return b.east }
func (b *LatLonAltBox) West() float64  { return b.west }

func (b *LatLonAltBox) SetCorners(northRad, southRad, eastRad, westRad float64) {
	b.north, b.south, b.east, b.west = northRad, southRad, eastRad, westRad
}

// Altitude is the box floor in meters; default 0.
func (b *LatLonAltBox) Altitude() (float64, bool)  { return b.altitude.GetOr(0), b.altitude.IsSet() }
func (b *LatLonAltBox) SetAltitude(meters float64) { b.altitude.Set(meters) }

// Height is the box extent above the floor in meters; default 0.
func (b *LatLonAltBox) Height() (float64, bool)  { return b.height.GetOr(0), b.height.IsSet() }
func (b *LatLonAltBox) SetHeight(meters float64) { b.height.Set(meters) }

// ImageOverlay drapes an image over a lat/lon box; absolute-only.
type ImageOverlay struct {
	shapeBase
	north, south, east, west float64
	rotation                 float64
	imageFile                util.Optional[string]
	opacity                  util.Optional[float64]
}

func NewImageOverlay() *ImageOverlay {
	o := &ImageOverlay{}
	o.typ = TypeImageOverlay
	return o
}

func (o *ImageOverlay) North() float64 { return o.north }
func (o *ImageOverlay) South() float64 { return o.south }
func (o *ImageOverlay) East() float64  { return o.east }
func (o *ImageOverlay) West() float64  { return o.west }

func (o *ImageOverlay) SetCorners(northRad, southRad, eastRad, westRad float64) {
	o.north, o.south, o.east, o.west = northRad, southRad, eastRad, westRad
}

// Rotation is radians; positive rotates counterclockwise.
func (o *ImageOverlay) Rotation() float64       { return o.rotation }
func (o *ImageOverlay) SetRotation(rad float64) { o.rotation = rad }

func (o *ImageOverlay) ImageFile() (string, bool) { return o.imageFile.GetOr(""), o.imageFile.IsSet() }
func (o *ImageOverlay) SetImageFile(file string)  { o.imageFile.Set(file) }

// Opacity defaults to 1 (fully opaque).
func (o *ImageOverlay) Opacity() (float64, bool) { return o.opacity.GetOr(1), o.opacity.IsSet() }
func (o *ImageOverlay) SetOpacity(opacity float64) {
	o.opacity.Set(math.Clamp(opacity, 0.0, 1.0))
}
