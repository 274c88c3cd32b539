// gog/serialize.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bdow/gogkit/math"
)

// Serialize renders a shape as one GOG start/end block. Output is
// canonical rather than a replay of the input text: every block declares
// meters and degrees explicitly, colors are hex, and only explicitly-set
// fields appear. Parsing the output yields an equivalent shape.
func Serialize(s Shape) string {
	var b strings.Builder
	b.WriteString("start\n")
	for _, c := range s.base().Comments() {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	b.WriteString("rangeunits meters\n")
	b.WriteString("altitudeunits meters\n")
	b.WriteString("angleunits degrees\n")

	switch t := s.(type) {
	case *Circle:
		b.WriteString("circle\n")
		serializeCircular(&b, &t.CircularShape, s.IsRelative())
	case *Sphere:
		b.WriteString("sphere\n")
		serializeCircular(&b, &t.CircularShape, s.IsRelative())
	case *Hemisphere:
		b.WriteString("hemisphere\n")
		serializeCircular(&b, &t.CircularShape, s.IsRelative())
	case *Orbit:
		b.WriteString("orbit\n")
		serializeCircular(&b, &t.CircularShape, s.IsRelative())
		c2 := t.CenterPosition2()
		if s.IsRelative() {
			fmt.Fprintf(&b, "centerxy2 %s %s\n", num(c2.X()), num(c2.Y()))
		} else {
			fmt.Fprintf(&b, "centerll2 %s %s\n", num(math.Degrees(c2.X())), num(math.Degrees(c2.Y())))
		}
	case *Cone:
		b.WriteString("cone\n")
		serializeCircular(&b, &t.CircularShape, s.IsRelative())
		if h, ok := t.Height(); ok {
			fmt.Fprintf(&b, "height %s\n", num(h))
		}
	case *Ellipsoid:
		b.WriteString("ellipsoid\n")
		serializeCircular(&b, &t.CircularShape, s.IsRelative())
		if h, ok := t.Height(); ok {
			fmt.Fprintf(&b, "height %s\n", num(h))
		}
		if v, ok := t.MajorAxis(); ok {
			fmt.Fprintf(&b, "majoraxis %s\n", num(v))
		}
		if v, ok := t.MinorAxis(); ok {
			fmt.Fprintf(&b, "minoraxis %s\n", num(v))
		}
	case *Arc:
		b.WriteString("arc\n")
		serializeElliptical(&b, &t.EllipticalShape, s.IsRelative())
	case *Ellipse:
		b.WriteString("ellipse\n")
		serializeElliptical(&b, &t.EllipticalShape, s.IsRelative())
	case *Cylinder:
		b.WriteString("cylinder\n")
		serializeElliptical(&b, &t.EllipticalShape, s.IsRelative())
		if h, ok := t.Height(); ok {
			fmt.Fprintf(&b, "height %s\n", num(h))
		}
	case *Line:
		b.WriteString("line\n")
		serializePointBased(&b, &t.PointBasedShape, s.IsRelative())
	case *LineSegs:
		b.WriteString("linesegs\n")
		serializePointBased(&b, &t.PointBasedShape, s.IsRelative())
	case *Polygon:
		b.WriteString("poly\n")
		serializePointBased(&b, &t.PointBasedShape, s.IsRelative())
	case *Points:
		b.WriteString("points\n")
		serializePositions(&b, t.Points(), s.IsRelative())
		if v, ok := t.PointSize(); ok {
			fmt.Fprintf(&b, "pointsize %d\n", v)
		}
		if c, ok := t.Color(); ok {
			fmt.Fprintf(&b, "linecolor hex %s\n", formatColorValue(c))
		}
		serializeOutlined(&b, &t.OutlinedShape)
	case *Annotation:
		serializeAnnotation(&b, t)
	case *LatLonAltBox:
		alt, _ := t.Altitude()
		line := fmt.Sprintf("latlonaltbox %s %s %s %s %s",
			num(math.Degrees(t.North())), num(math.Degrees(t.South())),
			num(math.Degrees(t.East())), num(math.Degrees(t.West())), num(alt))
		if h, ok := t.Height(); ok {
			line += " " + num(h)
		}
		b.WriteString(line)
		b.WriteByte('\n')
		serializeFillable(&b, &t.FillableShape)
	case *ImageOverlay:
		fmt.Fprintf(&b, "imageoverlay %s %s %s %s %s\n",
			num(math.Degrees(t.North())), num(math.Degrees(t.South())),
			num(math.Degrees(t.East())), num(math.Degrees(t.West())),
			num(math.Degrees(t.Rotation())))
		if f, ok := t.ImageFile(); ok {
			fmt.Fprintf(&b, "imagefile %s\n", f)
		}
		if v, ok := t.Opacity(); ok {
			fmt.Fprintf(&b, "opacity %s\n", num(v))
		}
	}

	serializeBase(&b, s)
	b.WriteString("end\n")
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func serializePosition(b *strings.Builder, keyword string, pos math.Vec3, relative bool) {
	if relative {
		fmt.Fprintf(b, "%s %s %s %s\n", keyword, num(pos.X()), num(pos.Y()), num(pos.Z()))
		return
	}
	fmt.Fprintf(b, "%s %s %s %s\n", keyword,
		num(math.Degrees(pos.X())), num(math.Degrees(pos.Y())), num(pos.Z()))
}

func serializePositions(b *strings.Builder, points []math.Vec3, relative bool) {
	keyword := "lla"
	if relative {
		keyword = "xyz"
	}
	for _, pt := range points {
		serializePosition(b, keyword, pt, relative)
	}
}

func serializeOutlined(b *strings.Builder, s *OutlinedShape) {
	if v, ok := s.IsOutlined(); ok {
		fmt.Fprintf(b, "outline %t\n", v)
	}
}

func serializeFillable(b *strings.Builder, s *FillableShape) {
	serializeOutlined(b, &s.OutlinedShape)
	if v, ok := s.LineWidth(); ok {
		fmt.Fprintf(b, "linewidth %d\n", v)
	}
	if c, ok := s.LineColor(); ok {
		fmt.Fprintf(b, "linecolor hex %s\n", formatColorValue(c))
	}
	if v, ok := s.LineStyle(); ok {
		fmt.Fprintf(b, "linestyle %s\n", v)
	}
	if v, ok := s.IsFilled(); ok && v {
		b.WriteString("filled\n")
	}
	if c, ok := s.FillColor(); ok {
		fmt.Fprintf(b, "fillcolor hex %s\n", formatColorValue(c))
	}
}

func serializeCircular(b *strings.Builder, s *CircularShape, relative bool) {
	if center, ok := s.CenterPosition(); ok {
		keyword := "centerlla"
		if relative {
			keyword = "centerxyz"
		}
		serializePosition(b, keyword, center, relative)
	}
	if r, ok := s.Radius(); ok {
		fmt.Fprintf(b, "radius %s\n", num(r))
	}
	serializeFillable(b, &s.FillableShape)
}

func serializeElliptical(b *strings.Builder, s *EllipticalShape, relative bool) {
	serializeCircular(b, &s.CircularShape, relative)
	if v, ok := s.AngleStart(); ok {
		fmt.Fprintf(b, "anglestart %s\n", num(math.Degrees(v)))
	}
	if v, ok := s.AngleSweep(); ok {
		fmt.Fprintf(b, "angledeg %s\n", num(math.Degrees(v)))
	}
	if v, ok := s.MajorAxis(); ok {
		fmt.Fprintf(b, "majoraxis %s\n", num(v))
	}
	if v, ok := s.MinorAxis(); ok {
		fmt.Fprintf(b, "minoraxis %s\n", num(v))
	}
}

func serializePointBased(b *strings.Builder, s *PointBasedShape, relative bool) {
	serializePositions(b, s.Points(), relative)
	serializeFillable(b, &s.FillableShape)
	if v, ok := s.Tessellation(); ok {
		switch v {
		case TessellationNone:
			b.WriteString("tessellate false\n")
		case TessellationRhumbline:
			b.WriteString("tessellate true\n")
		case TessellationGreatCircle:
			b.WriteString("tessellate true\nlineprojection greatcircle\n")
		}
	}
}

func serializeAnnotation(b *strings.Builder, a *Annotation) {
	text := strings.ReplaceAll(a.Text(), "\n", `\n`)
	text = strings.ReplaceAll(text, " ", "_")
	fmt.Fprintf(b, "annotation %s\n", text)
	if pos, ok := a.Position(); ok {
		keyword := "centerlla"
		if a.IsRelative() {
			keyword = "centerxyz"
		}
		serializePosition(b, keyword, pos, a.IsRelative())
	}
	if v, ok := a.FontName(); ok {
		fmt.Fprintf(b, "fontname %s\n", v)
	}
	if v, ok := a.TextSize(); ok {
		fmt.Fprintf(b, "fontsize %d\n", v)
	}
	if c, ok := a.TextColor(); ok {
		fmt.Fprintf(b, "linecolor hex %s\n", formatColorValue(c))
	}
	if c, ok := a.OutlineColor(); ok {
		fmt.Fprintf(b, "textoutlinecolor hex %s\n", formatColorValue(c))
	}
	if v, ok := a.OutlineThickness(); ok {
		fmt.Fprintf(b, "textoutlinethickness %s\n", v)
	}
	if v, ok := a.Priority(); ok {
		fmt.Fprintf(b, "priority %s\n", num(v))
	}
}

// serializeBase emits the fields shared by every shape.
func serializeBase(b *strings.Builder, s Shape) {
	base := s.base()
	if name, ok := base.Name(); ok {
		fmt.Fprintf(b, "3d name %s\n", name)
	}
	if v, ok := base.IsDrawn(); ok && !v {
		b.WriteString("off\n")
	}
	if v, ok := base.IsDepthBufferActive(); ok {
		fmt.Fprintf(b, "depthbuffer %t\n", v)
	}
	if v, ok := base.AltitudeOffset(); ok {
		fmt.Fprintf(b, "3d offsetalt %s\n", num(v))
	}
	if mode, ok := base.AltitudeMode(); ok {
		if mode == AltitudeModeExtrude {
			if h, hok := base.ExtrudeHeight(); hok {
				fmt.Fprintf(b, "extrude true %s\n", num(h))
			} else {
				b.WriteString("extrude true\n")
			}
		} else {
			fmt.Fprintf(b, "altitudemode %s\n", mode)
		}
	}
	if s.IsRelative() {
		if ref, ok := base.ReferencePosition(); ok {
			fmt.Fprintf(b, "referencepoint %s %s %s\n",
				num(math.Degrees(ref.X())), num(math.Degrees(ref.Y())), num(ref.Z()))
		}
	}
	if v, ok := base.Scale(); ok {
		fmt.Fprintf(b, "scale %s %s %s\n", num(v.X()), num(v.Y()), num(v.Z()))
	}

	follow := ""
	if v, ok := base.IsFollowingYaw(); ok && v {
		follow += "c"
	}
	if v, ok := base.IsFollowingPitch(); ok && v {
		follow += "p"
	}
	if v, ok := base.IsFollowingRoll(); ok && v {
		follow += "r"
	}
	if follow != "" {
		fmt.Fprintf(b, "3d follow %s\n", follow)
	}
	if v, ok := base.YawOffset(); ok {
		fmt.Fprintf(b, "3d offsetcourse %s\n", num(math.Degrees(v)))
	}
	if v, ok := base.PitchOffset(); ok {
		fmt.Fprintf(b, "3d offsetpitch %s\n", num(math.Degrees(v)))
	}
	if v, ok := base.RollOffset(); ok {
		fmt.Fprintf(b, "3d offsetroll %s\n", num(math.Degrees(v)))
	}

	if v, ok := base.VerticalDatum(); ok {
		fmt.Fprintf(b, "verticaldatum %s\n", v)
	}
	if t, ok := base.StartTime(); ok {
		fmt.Fprintf(b, "starttime \"%s\"\n", formatTimeString(t))
	}
	if t, ok := base.EndTime(); ok {
		fmt.Fprintf(b, "endtime \"%s\"\n", formatTimeString(t))
	}
}
