package wkt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spatialkit/planar/pkg/geometry"
)

// Marshal renders a geometry as WKT. Single-path polylines come back as
// LINESTRING, multi-path ones as MULTILINESTRING. Line and Envelope have
// no WKT keyword of their own and are emitted as derived forms
// (LINESTRING and a closed POLYGON ring), so they re-import as the
// derived variant.
func Marshal(g geometry.Geometry) (string, error) {
	switch v := g.(type) {
	case *geometry.Point:
		return marshalPoint(v), nil
	case *geometry.MultiPoint:
		return marshalMultiPoint(v), nil
	case *geometry.Polyline:
		return marshalPolyline(v), nil
	case *geometry.Polygon:
		return marshalPolygon(v), nil
	case *geometry.Line:
		if v.IsEmpty() {
			return "LINESTRING EMPTY", nil
		}
		return fmt.Sprintf("LINESTRING (%s, %s)", tuple(v.Start), tuple(v.End)), nil
	case *geometry.Envelope:
		return marshalEnvelope(v), nil
	default:
		var t geometry.Type
		if g != nil {
			t = g.Type()
		}
		return "", &geometry.UnsupportedError{Op: "wkt marshal", Type: t}
	}
}

func marshalPoint(p *geometry.Point) string {
	if p.IsEmpty() {
		return "POINT EMPTY"
	}
	return fmt.Sprintf("POINT (%s)", tuple(*p))
}

func marshalMultiPoint(m *geometry.MultiPoint) string {
	if m.IsEmpty() {
		return "MULTIPOINT EMPTY"
	}
	parts := make([]string, m.Len())
	for i := range parts {
		parts[i] = "(" + tuple(m.PointAt(i)) + ")"
	}
	return fmt.Sprintf("MULTIPOINT (%s)", strings.Join(parts, ", "))
}

func marshalPolyline(pl *geometry.Polyline) string {
	switch pl.PathCount() {
	case 0:
		return "LINESTRING EMPTY"
	case 1:
		return fmt.Sprintf("LINESTRING (%s)", tupleList(pl.Path(0)))
	default:
		parts := make([]string, pl.PathCount())
		for i := range parts {
			parts[i] = "(" + tupleList(pl.Path(i)) + ")"
		}
		return fmt.Sprintf("MULTILINESTRING (%s)", strings.Join(parts, ", "))
	}
}

func marshalPolygon(pg *geometry.Polygon) string {
	if pg.IsEmpty() {
		return "POLYGON EMPTY"
	}
	parts := make([]string, pg.RingCount())
	for i := range parts {
		parts[i] = "(" + tupleList(pg.Ring(i)) + ")"
	}
	return fmt.Sprintf("POLYGON (%s)", strings.Join(parts, ", "))
}

func marshalEnvelope(e *geometry.Envelope) string {
	if e.IsEmpty() {
		return "POLYGON EMPTY"
	}
	return fmt.Sprintf("POLYGON ((%s %s, %s %s, %s %s, %s %s, %s %s))",
		num(e.XMin), num(e.YMin),
		num(e.XMax), num(e.YMin),
		num(e.XMax), num(e.YMax),
		num(e.XMin), num(e.YMax),
		num(e.XMin), num(e.YMin))
}

func tupleList(pts []geometry.Point) string {
	parts := make([]string, len(pts))
	for i := range pts {
		parts[i] = tuple(pts[i])
	}
	return strings.Join(parts, ", ")
}

// tuple emits "X Y" or "X Y Z". M has no spot in the tuple grammar this
// package reads back, so it is not emitted.
func tuple(p geometry.Point) string {
	if p.Z != nil {
		return num(p.X) + " " + num(p.Y) + " " + num(*p.Z)
	}
	return num(p.X) + " " + num(p.Y)
}

// num formats with the shortest exact decimal representation so parsing
// the output reproduces the coordinate bit for bit.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
