package geometry

import "math"

// Point is a single coordinate with optional elevation (Z) and measure
// (M). A nil Z or M means the value is absent, not zero; presence is
// per-point and need not be uniform across a multi-part geometry.
type Point struct {
	X, Y float64
	Z, M *float64
}

// NewPoint returns a point at (x, y) with no Z or M.
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// NewEmptyPoint returns the empty point (NaN coordinates).
func NewEmptyPoint() *Point {
	return &Point{X: math.NaN(), Y: math.NaN()}
}

// Float64 returns a pointer to v, for filling optional Z/M fields.
func Float64(v float64) *float64 { return &v }

func (p *Point) Type() Type     { return TypePoint }
func (p *Point) Dimension() int { return 0 }

// IsEmpty reports whether either coordinate is the NaN sentinel.
func (p *Point) IsEmpty() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

func (p *Point) Bounds() *Envelope {
	env := NewEnvelope()
	if !p.IsEmpty() {
		env.MergePoint(*p)
	}
	return env
}

func (p *Point) Copy() Geometry {
	cp := p.copyValue()
	return &cp
}

// copyValue clones the point including its optional fields. Point values
// embedded in paths and rings are copied through this as well, so no two
// geometries ever share a Z/M allocation.
func (p *Point) copyValue() Point {
	cp := Point{X: p.X, Y: p.Y}
	if p.Z != nil {
		z := *p.Z
		cp.Z = &z
	}
	if p.M != nil {
		m := *p.M
		cp.M = &m
	}
	return cp
}

// Equal compares coordinates and optional-field presence and values.
// Empty points compare equal to each other.
func (p *Point) Equal(o *Point) bool {
	if p.IsEmpty() || o.IsEmpty() {
		return p.IsEmpty() && o.IsEmpty()
	}
	if p.X != o.X || p.Y != o.Y {
		return false
	}
	return eqOpt(p.Z, o.Z) && eqOpt(p.M, o.M)
}

func eqOpt(a, b *float64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

func copyPoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i := range pts {
		out[i] = pts[i].copyValue()
	}
	return out
}
