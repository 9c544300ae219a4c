// Package geometry implements an in-memory planar (2-D) geometric data
// model: points, lines, envelopes, multipoints, polylines and polygons,
// plus area, length and bounding-envelope operators over them.
//
// Coordinates are IEEE-754 doubles. Emptiness is structural: an empty
// sequence for multi-part geometries, NaN bounds for points and
// envelopes. A geometry is never nil-valued internally; every instance
// is always queryable.
package geometry

// Type identifies the concrete geometry variant. The set is closed;
// operators switch exhaustively over it.
type Type int

const (
	TypeUnknown Type = iota
	TypePoint
	TypeLine
	TypeEnvelope
	TypeMultiPoint
	TypePolyline
	TypePolygon
)

func (t Type) String() string {
	switch t {
	case TypePoint:
		return "point"
	case TypeLine:
		return "line"
	case TypeEnvelope:
		return "envelope"
	case TypeMultiPoint:
		return "multipoint"
	case TypePolyline:
		return "polyline"
	case TypePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// IsPoint reports whether the variant is point-like (dimension 0).
func (t Type) IsPoint() bool {
	return t == TypePoint || t == TypeMultiPoint
}

// IsLinear reports whether the variant is line-like (dimension 1).
func (t Type) IsLinear() bool {
	return t == TypeLine || t == TypePolyline
}

// IsArea reports whether the variant is area-like (dimension 2).
func (t Type) IsArea() bool {
	return t == TypeEnvelope || t == TypePolygon
}

// Geometry is the capability set shared by every variant.
//
// Dimension is 0 for point-like, 1 for line-like and 2 for area-like
// variants regardless of emptiness. Bounds recomputes the minimal
// axis-aligned envelope covering every coordinate (an Envelope returns a
// copy of itself); empty geometries yield an empty envelope. Copy is a
// deep copy: no point, path or ring storage is shared with the source.
type Geometry interface {
	Type() Type
	IsEmpty() bool
	Dimension() int
	Bounds() *Envelope
	Copy() Geometry
}

var (
	_ Geometry = (*Point)(nil)
	_ Geometry = (*Line)(nil)
	_ Geometry = (*Envelope)(nil)
	_ Geometry = (*MultiPoint)(nil)
	_ Geometry = (*Polyline)(nil)
	_ Geometry = (*Polygon)(nil)
)
