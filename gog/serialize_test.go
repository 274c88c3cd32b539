// gog/serialize_test.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gog

import (
	"strings"
	"testing"
	"time"

	"github.com/bdow/gogkit/math"
)

func reparse(t *testing.T, s Shape) Shape {
	t.Helper()
	text := Serialize(s)
	var errs []string
	p := NewParser()
	p.SetErrorHandler(func(line int, msg string) {
		errs = append(errs, msg)
	})
	shapes := p.Parse(strings.NewReader(text))
	if len(errs) > 0 {
		t.Fatalf("reparse errors for:\n%s\n%v", text, errs)
	}
	if len(shapes) != 1 {
		t.Fatalf("serialized text parsed to %d shapes:\n%s", len(shapes), text)
	}
	return shapes[0]
}

func TestCircleRoundTrip(t *testing.T) {
	c := NewCircle(false)
	c.SetCenterPosition(math.Vec3{math.Radians(25.1), math.Radians(58.2), 120})
	c.SetRadius(2500)
	c.SetLineColor(Color{0, 255, 0, 255})
	c.SetLineWidth(3)
	c.SetFilled(true)
	c.SetFillColor(Color{0, 0, 255, 128})
	c.SetName("test circle")

	got := reparse(t, c).(*Circle)
	center, _ := got.CenterPosition()
	if !math.AlmostEqual3(center, math.Vec3{math.Radians(25.1), math.Radians(58.2), 120}, 1e-9) {
		t.Errorf("center = %v", center)
	}
	if r, _ := got.Radius(); !math.AlmostEqual(r, 2500, 1e-9) {
		t.Errorf("radius = %v", r)
	}
	if lc, _ := got.LineColor(); (lc != Color{0, 255, 0, 255}) {
		t.Errorf("line color = %v", lc)
	}
	if w, _ := got.LineWidth(); w != 3 {
		t.Errorf("line width = %d", w)
	}
	if filled, _ := got.IsFilled(); !filled {
		t.Errorf("filled lost")
	}
	if fc, _ := got.FillColor(); (fc != Color{0, 0, 255, 128}) {
		t.Errorf("fill color = %v", fc)
	}
	if name, _ := got.Name(); name != "test circle" {
		t.Errorf("name = %q", name)
	}
}

func TestRelativeLineRoundTrip(t *testing.T) {
	l := NewLine(true)
	l.AddPoint(math.Vec3{100, 200, 10})
	l.AddPoint(math.Vec3{-300, 50, 0})
	l.SetReferencePosition(math.Vec3{math.Radians(22.5), math.Radians(-159.5), 5})
	l.SetTessellation(TessellationGreatCircle)
	l.SetLineStyle(LineStyleDashed)

	got := reparse(t, l).(*Line)
	if !got.IsRelative() {
		t.Fatalf("relative flag lost")
	}
	pts := got.Points()
	if len(pts) != 2 || !math.AlmostEqual3(pts[0], math.Vec3{100, 200, 10}, 1e-9) ||
		!math.AlmostEqual3(pts[1], math.Vec3{-300, 50, 0}, 1e-9) {
		t.Errorf("points = %v", pts)
	}
	ref, set := got.ReferencePosition()
	if !set || !math.AlmostEqual3(ref, math.Vec3{math.Radians(22.5), math.Radians(-159.5), 5}, 1e-9) {
		t.Errorf("ref = %v set=%v", ref, set)
	}
	if style, _ := got.Tessellation(); style != TessellationGreatCircle {
		t.Errorf("tessellation = %v", style)
	}
	if style, _ := got.LineStyle(); style != LineStyleDashed {
		t.Errorf("line style = %v", style)
	}
}

func TestAnnotationRoundTrip(t *testing.T) {
	a := NewAnnotation(false)
	a.SetText("two words\nsecond line")
	a.SetPosition(math.Vec3{math.Radians(22.1), math.Radians(-159.9), 0})
	a.SetFontName("georgia.ttf")
	a.SetTextSize(24)
	a.SetTextColor(Color{255, 255, 0, 255})
	a.SetOutlineThickness(ThicknessThick)
	a.SetPriority(10)

	got := reparse(t, a).(*Annotation)
	if got.Text() != "two words\nsecond line" {
		t.Errorf("text = %q", got.Text())
	}
	if f, _ := got.FontName(); f != "georgia.ttf" {
		t.Errorf("font = %q", f)
	}
	if size, _ := got.TextSize(); size != 24 {
		t.Errorf("size = %d", size)
	}
	if c, _ := got.TextColor(); (c != Color{255, 255, 0, 255}) {
		t.Errorf("text color = %v", c)
	}
	if th, _ := got.OutlineThickness(); th != ThicknessThick {
		t.Errorf("thickness = %v", th)
	}
	if pr, _ := got.Priority(); pr != 10 {
		t.Errorf("priority = %v", pr)
	}
}

func TestOrbitRoundTrip(t *testing.T) {
	o := NewOrbit(false)
	o.SetCenterPosition(math.Vec3{math.Radians(25), math.Radians(58), 1000})
	o.SetCenterPosition2(math.Vec3{math.Radians(26), math.Radians(59), 0})
	o.SetRadius(800)

	got := reparse(t, o).(*Orbit)
	c2 := got.CenterPosition2()
	if !math.AlmostEqual3(c2, math.Vec3{math.Radians(26), math.Radians(59), 1000}, 1e-9) {
		t.Errorf("center2 = %v", c2)
	}
}

func TestArcRoundTripPreservesNegativeSweep(t *testing.T) {
	a := NewArc(false)
	a.SetCenterPosition(math.Vec3{math.Radians(25), math.Radians(58), 0})
	a.SetAngleStart(math.Radians(45))
	a.SetAngleSweep(math.Radians(-360))

	got := reparse(t, a).(*Arc)
	if sweep, _ := got.AngleSweep(); !math.AlmostEqual(math.Degrees(sweep), -360, 1e-9) {
		t.Errorf("sweep = %v deg", math.Degrees(sweep))
	}
}

func TestExtrudedPolygonRoundTrip(t *testing.T) {
	p := NewPolygon(false)
	p.AddPoint(math.Vec3{math.Radians(1), math.Radians(1), 0})
	p.AddPoint(math.Vec3{math.Radians(1), math.Radians(2), 0})
	p.AddPoint(math.Vec3{math.Radians(2), math.Radians(2), 0})
	p.SetAltitudeMode(AltitudeModeExtrude)
	p.SetExtrudeHeight(50)

	got := reparse(t, p).(*Polygon)
	if mode, _ := got.AltitudeMode(); mode != AltitudeModeExtrude {
		t.Errorf("mode = %v", mode)
	}
	if h, _ := got.ExtrudeHeight(); !math.AlmostEqual(h, 50, 1e-9) {
		t.Errorf("extrude height = %v", h)
	}
}

func TestBaseFieldsRoundTrip(t *testing.T) {
	c := NewCircle(false)
	c.SetCenterPosition(math.Vec3{math.Radians(25), math.Radians(58), 0})
	c.SetDrawn(false)
	c.SetDepthBufferActive(true)
	c.SetAltitudeOffset(12)
	c.SetScale(math.Vec3{1, 2, 3})
	c.SetVerticalDatum("msl")
	c.SetFollowYaw(true)
	c.SetYawOffset(math.Radians(90))
	start := time.Date(2024, time.June, 26, 12, 0, 0, 0, time.UTC)
	c.SetTimeRange(start, start.Add(time.Hour))

	got := reparse(t, c).(*Circle)
	if drawn, _ := got.IsDrawn(); drawn {
		t.Errorf("off lost")
	}
	if v, _ := got.IsDepthBufferActive(); !v {
		t.Errorf("depth buffer lost")
	}
	if v, _ := got.AltitudeOffset(); !math.AlmostEqual(v, 12, 1e-9) {
		t.Errorf("altitude offset = %v", v)
	}
	if v, _ := got.Scale(); !math.AlmostEqual3(v, math.Vec3{1, 2, 3}, 1e-9) {
		t.Errorf("scale = %v", v)
	}
	if v, _ := got.VerticalDatum(); v != "msl" {
		t.Errorf("datum = %q", v)
	}
	if yaw, _ := got.IsFollowingYaw(); !yaw {
		t.Errorf("follow yaw lost")
	}
	if v, _ := got.YawOffset(); !math.AlmostEqual(math.Degrees(v), 90, 1e-9) {
		t.Errorf("yaw offset = %v deg", math.Degrees(v))
	}
	if b, ok := got.StartTime(); !ok || !b.Equal(start) {
		t.Errorf("start time = %v ok=%v", b, ok)
	}
	if e, ok := got.EndTime(); !ok || !e.Equal(start.Add(time.Hour)) {
		t.Errorf("end time = %v ok=%v", e, ok)
	}
}

func TestLatLonAltBoxRoundTrip(t *testing.T) {
	b := NewLatLonAltBox()
	b.SetCorners(math.Radians(34.5), math.Radians(33.5), math.Radians(-118), math.Radians(-119))
	b.SetAltitude(100)
	b.SetHeight(500)

	got := reparse(t, b).(*LatLonAltBox)
	if !math.AlmostEqual(math.Degrees(got.North()), 34.5, 1e-9) ||
		!math.AlmostEqual(math.Degrees(got.West()), -119, 1e-9) {
		t.Errorf("corners n=%v w=%v", math.Degrees(got.North()), math.Degrees(got.West()))
	}
	if alt, _ := got.Altitude(); !math.AlmostEqual(alt, 100, 1e-9) {
		t.Errorf("altitude = %v", alt)
	}
	if h, _ := got.Height(); !math.AlmostEqual(h, 500, 1e-9) {
		t.Errorf("height = %v", h)
	}
}

func TestImageOverlayRoundTrip(t *testing.T) {
	o := NewImageOverlay()
	o.SetCorners(math.Radians(34.5), math.Radians(33.5), math.Radians(-118), math.Radians(-119))
	o.SetRotation(math.Radians(15))
	o.SetImageFile("overlay.png")
	o.SetOpacity(0.25)

	got := reparse(t, o).(*ImageOverlay)
	if !math.AlmostEqual(math.Degrees(got.Rotation()), 15, 1e-9) {
		t.Errorf("rotation = %v deg", math.Degrees(got.Rotation()))
	}
	if f, _ := got.ImageFile(); f != "overlay.png" {
		t.Errorf("image file = %q", f)
	}
	if v, _ := got.Opacity(); v != 0.25 {
		t.Errorf("opacity = %v", v)
	}
}

func TestPointsRoundTrip(t *testing.T) {
	p := NewPoints(false)
	p.AddPoint(math.Vec3{math.Radians(1), math.Radians(2), 0})
	p.SetPointSize(5)
	p.SetColor(Color{0, 255, 255, 255})
	p.SetOutlined(false)

	got := reparse(t, p).(*Points)
	if size, _ := got.PointSize(); size != 5 {
		t.Errorf("point size = %d", size)
	}
	if c, _ := got.Color(); (c != Color{0, 255, 255, 255}) {
		t.Errorf("color = %v", c)
	}
	if outlined, _ := got.IsOutlined(); outlined {
		t.Errorf("outline flag lost")
	}
}
