package geometry

import "math"

// Polygon is an ordered sequence of rings, each a closed run of at
// least three points. Multiple rings are either disjoint outer
// boundaries or an outer boundary with interior holes; the role of a
// ring is carried by its winding direction, not an explicit flag.
type Polygon struct {
	rings [][]Point
}

// MinRingPoints is the shortest admissible ring.
const MinRingPoints = 3

// NewPolygon returns a polygon holding copies of the given rings.
// Rings below MinRingPoints are dropped, not reported, mirroring the
// polyline path policy.
func NewPolygon(rings ...[]Point) *Polygon {
	pg := &Polygon{}
	for _, r := range rings {
		pg.AddRing(r)
	}
	return pg
}

// AddRing appends a copy of pts as a new ring. It reports whether the
// ring was admitted; rings shorter than MinRingPoints are excluded.
func (pg *Polygon) AddRing(pts []Point) bool {
	if len(pts) < MinRingPoints {
		return false
	}
	pg.rings = append(pg.rings, copyPoints(pts))
	return true
}

func (pg *Polygon) RingCount() int     { return len(pg.rings) }
func (pg *Polygon) Ring(i int) []Point { return pg.rings[i] }
func (pg *Polygon) Rings() [][]Point   { return pg.rings }

func (pg *Polygon) Type() Type     { return TypePolygon }
func (pg *Polygon) Dimension() int { return 2 }

func (pg *Polygon) IsEmpty() bool { return len(pg.rings) == 0 }

// SignedArea is the shoelace sum over all rings, including each ring's
// implicit closing edge. Winding is not validated or corrected: a ring
// wound opposite to the outer rings contributes negatively, which is
// how holes subtract from the total.
func (pg *Polygon) SignedArea() float64 {
	var total float64
	for _, ring := range pg.rings {
		total += ringSignedArea(ring)
	}
	return total
}

// Area is the absolute value of SignedArea. For a simple single-ring
// polygon this is its geometric area regardless of winding direction;
// for an outer ring with oppositely wound holes it is outer minus
// holes.
func (pg *Polygon) Area() float64 {
	return math.Abs(pg.SignedArea())
}

// Perimeter sums segment lengths around every ring, closing edge
// included.
func (pg *Polygon) Perimeter() float64 {
	var total float64
	for _, ring := range pg.rings {
		total += pathLength(ring, true)
	}
	return total
}

func (pg *Polygon) Bounds() *Envelope {
	env := NewEnvelope()
	for _, ring := range pg.rings {
		for i := range ring {
			env.MergePoint(ring[i])
		}
	}
	return env
}

func (pg *Polygon) Copy() Geometry {
	cp := &Polygon{rings: make([][]Point, len(pg.rings))}
	for i, ring := range pg.rings {
		cp.rings[i] = copyPoints(ring)
	}
	return cp
}
