package geometry

// Polyline is an ordered sequence of paths, each an open run of at
// least two points.
type Polyline struct {
	paths [][]Point
}

// MinPathPoints is the shortest admissible path.
const MinPathPoints = 2

// NewPolyline returns a polyline holding copies of the given paths.
// Paths below MinPathPoints are dropped, not reported: an undersized
// sub-part is a benign encoding artifact, not a malformed document.
func NewPolyline(paths ...[]Point) *Polyline {
	pl := &Polyline{}
	for _, p := range paths {
		pl.AddPath(p)
	}
	return pl
}

// AddPath appends a copy of pts as a new path. It reports whether the
// path was admitted; paths shorter than MinPathPoints are excluded.
func (pl *Polyline) AddPath(pts []Point) bool {
	if len(pts) < MinPathPoints {
		return false
	}
	pl.paths = append(pl.paths, copyPoints(pts))
	return true
}

func (pl *Polyline) PathCount() int     { return len(pl.paths) }
func (pl *Polyline) Path(i int) []Point { return pl.paths[i] }
func (pl *Polyline) Paths() [][]Point   { return pl.paths }

func (pl *Polyline) Type() Type     { return TypePolyline }
func (pl *Polyline) Dimension() int { return 1 }

func (pl *Polyline) IsEmpty() bool { return len(pl.paths) == 0 }

// Length sums consecutive segment lengths within each path. Paths are
// open: there is no implicit closing edge.
func (pl *Polyline) Length() float64 {
	var total float64
	for _, path := range pl.paths {
		total += pathLength(path, false)
	}
	return total
}

func (pl *Polyline) Bounds() *Envelope {
	env := NewEnvelope()
	for _, path := range pl.paths {
		for i := range path {
			env.MergePoint(path[i])
		}
	}
	return env
}

func (pl *Polyline) Copy() Geometry {
	cp := &Polyline{paths: make([][]Point, len(pl.paths))}
	for i, path := range pl.paths {
		cp.paths[i] = copyPoints(path)
	}
	return cp
}
