package geometry

// ringSignedArea applies the shoelace formula: half the sum, over
// consecutive vertices including the implicit closing edge, of
// x_i*y_{i+1} - x_{i+1}*y_i. The sign encodes winding direction.
func ringSignedArea(ring []Point) float64 {
	if len(ring) < MinRingPoints {
		return 0
	}
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum / 2
}

// Area2D returns the planar area of g, X/Y only. Only polygons have a
// non-zero area here; every other variant, envelopes included, reports
// exactly 0. Envelope keeps its own Area accessor for the rectangle
// measure.
func Area2D(g Geometry) float64 {
	switch v := g.(type) {
	case *Polygon:
		return v.Area()
	case *Point, *Line, *Envelope, *MultiPoint, *Polyline:
		return 0
	default:
		return 0
	}
}
