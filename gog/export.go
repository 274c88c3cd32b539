// gog/export.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gog

import (
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bdow/gogkit/math"
)

// ShapeRecord is the portable export form of one shape: its identity plus
// the canonical GOG text, which survives format evolution better than a
// field-for-field binary layout would.
type ShapeRecord struct {
	Type     string `msgpack:"type"`
	Name     string `msgpack:"name"`
	Relative bool   `msgpack:"relative"`
	Gog      string `msgpack:"gog"`
}

// NewShapeRecord captures a shape as a record.
func NewShapeRecord(s Shape) ShapeRecord {
	name, _ := s.base().Name()
	return ShapeRecord{
		Type:     s.Type().String(),
		Name:     name,
		Relative: s.IsRelative(),
		Gog:      Serialize(s),
	}
}

// EncodeShapes packs shapes into a msgpack record stream.
func EncodeShapes(shapes []Shape) ([]byte, error) {
	records := make([]ShapeRecord, len(shapes))
	for i, s := range shapes {
		records[i] = NewShapeRecord(s)
	}
	return msgpack.Marshal(records)
}

// DecodeShapes unpacks a msgpack record stream back into shapes. The
// embedded GOG text is re-parsed; a record whose text no longer yields
// exactly one shape is an error rather than a silent drop.
func DecodeShapes(data []byte) ([]Shape, error) {
	var records []ShapeRecord
	if err := msgpack.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("gog: decode records: %w", err)
	}
	parser := NewParser()
	shapes := make([]Shape, 0, len(records))
	for i, rec := range records {
		parsed := parser.Parse(strings.NewReader(rec.Gog))
		if len(parsed) != 1 {
			return nil, fmt.Errorf("gog: record %d (%s %q) did not parse to one shape", i, rec.Type, rec.Name)
		}
		shapes = append(shapes, parsed[0])
	}
	return shapes, nil
}

// JSONObject flattens a shape to an ordered map for JSON output, with
// stable key order for diffing. Positions are degrees and meters; colors
// are GOG hex strings.
func JSONObject(s Shape) *orderedmap.OrderedMap {
	o := orderedmap.New()
	o.Set("type", s.Type().String())
	name, _ := s.base().Name()
	o.Set("name", name)
	o.Set("relative", s.IsRelative())
	drawn, _ := s.base().IsDrawn()
	o.Set("drawn", drawn)

	position := func(pos math.Vec3) []float64 {
		if s.IsRelative() {
			return []float64{pos.X(), pos.Y(), pos.Z()}
		}
		return []float64{math.Degrees(pos.X()), math.Degrees(pos.Y()), pos.Z()}
	}
	positions := func(pts []math.Vec3) [][]float64 {
		out := make([][]float64, len(pts))
		for i, pt := range pts {
			out[i] = position(pt)
		}
		return out
	}
	setCircular := func(c *CircularShape) {
		if center, ok := c.CenterPosition(); ok {
			o.Set("center", position(center))
		}
		radius, _ := c.Radius()
		o.Set("radiusMeters", radius)
	}

	switch t := s.(type) {
	case *Circle:
		setCircular(&t.CircularShape)
	case *Sphere:
		setCircular(&t.CircularShape)
	case *Hemisphere:
		setCircular(&t.CircularShape)
	case *Orbit:
		setCircular(&t.CircularShape)
		o.Set("center2", position(t.CenterPosition2()))
	case *Cone:
		setCircular(&t.CircularShape)
		h, _ := t.Height()
		o.Set("heightMeters", h)
	case *Ellipsoid:
		setCircular(&t.CircularShape)
		h, _ := t.Height()
		o.Set("heightMeters", h)
	case *Arc:
		setCircular(&t.CircularShape)
		start, _ := t.AngleStart()
		sweep, _ := t.AngleSweep()
		o.Set("angleStartDeg", math.Degrees(start))
		o.Set("angleSweepDeg", math.Degrees(sweep))
	case *Ellipse:
		setCircular(&t.CircularShape)
	case *Cylinder:
		setCircular(&t.CircularShape)
		h, _ := t.Height()
		o.Set("heightMeters", h)
	case *Line:
		o.Set("points", positions(t.Points()))
	case *LineSegs:
		o.Set("points", positions(t.Points()))
	case *Polygon:
		o.Set("points", positions(t.Points()))
	case *Points:
		o.Set("points", positions(t.Points()))
		size, _ := t.PointSize()
		o.Set("pointSize", size)
		color, _ := t.Color()
		o.Set("color", formatColorValue(color))
	case *Annotation:
		o.Set("text", t.Text())
		if pos, ok := t.Position(); ok {
			o.Set("position", position(pos))
		}
		textColor, _ := t.TextColor()
		o.Set("textColor", formatColorValue(textColor))
	case *LatLonAltBox:
		o.Set("north", math.Degrees(t.North()))
		o.Set("south", math.Degrees(t.South()))
		o.Set("east", math.Degrees(t.East()))
		o.Set("west", math.Degrees(t.West()))
	case *ImageOverlay:
		o.Set("north", math.Degrees(t.North()))
		o.Set("south", math.Degrees(t.South()))
		o.Set("east", math.Degrees(t.East()))
		o.Set("west", math.Degrees(t.West()))
		o.Set("rotationDeg", math.Degrees(t.Rotation()))
		file, _ := t.ImageFile()
		o.Set("imageFile", file)
	}
	return o
}
