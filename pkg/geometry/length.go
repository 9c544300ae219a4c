package geometry

import "math"

// distance is the planar Euclidean distance; Z and M are ignored for
// every measure in this package.
func distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// pathLength sums consecutive segment lengths. With closed set, the
// implicit edge from the last point back to the first is included.
func pathLength(pts []Point, closed bool) float64 {
	if len(pts) < 2 {
		return 0
	}
	var total float64
	for i := 1; i < len(pts); i++ {
		total += distance(pts[i-1], pts[i])
	}
	if closed {
		total += distance(pts[len(pts)-1], pts[0])
	}
	return total
}

// Length2D returns the total planar length of g: segment length for a
// line, open path lengths for a polyline, ring perimeters for a
// polygon. All other variants report exactly 0.
func Length2D(g Geometry) float64 {
	switch v := g.(type) {
	case *Line:
		return v.Length()
	case *Polyline:
		return v.Length()
	case *Polygon:
		return v.Perimeter()
	case *Point, *Envelope, *MultiPoint:
		return 0
	default:
		return 0
	}
}
