package geometry

// MultiPoint is an ordered sequence of points. Order is preserved for
// iteration but carries no further meaning.
type MultiPoint struct {
	points []Point
}

// NewMultiPoint returns a multipoint holding copies of pts.
func NewMultiPoint(pts ...Point) *MultiPoint {
	m := &MultiPoint{}
	for _, p := range pts {
		m.Add(p)
	}
	return m
}

// Add appends a copy of p.
func (m *MultiPoint) Add(p Point) {
	m.points = append(m.points, p.copyValue())
}

func (m *MultiPoint) Len() int            { return len(m.points) }
func (m *MultiPoint) PointAt(i int) Point { return m.points[i] }

// Points exposes the backing sequence for iteration; callers must not
// modify it.
func (m *MultiPoint) Points() []Point { return m.points }

func (m *MultiPoint) Type() Type     { return TypeMultiPoint }
func (m *MultiPoint) Dimension() int { return 0 }

func (m *MultiPoint) IsEmpty() bool { return len(m.points) == 0 }

func (m *MultiPoint) Bounds() *Envelope {
	env := NewEnvelope()
	for i := range m.points {
		env.MergePoint(m.points[i])
	}
	return env
}

func (m *MultiPoint) Copy() Geometry {
	return &MultiPoint{points: copyPoints(m.points)}
}
