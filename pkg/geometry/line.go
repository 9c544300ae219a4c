package geometry

// Line is a single straight segment between two endpoints.
type Line struct {
	Start, End Point
}

// NewLine returns the segment from start to end.
func NewLine(start, end Point) *Line {
	return &Line{Start: start, End: end}
}

func (l *Line) Type() Type     { return TypeLine }
func (l *Line) Dimension() int { return 1 }

func (l *Line) IsEmpty() bool {
	return l.Start.IsEmpty() || l.End.IsEmpty()
}

// Length is the Euclidean distance between the endpoints, X/Y only.
func (l *Line) Length() float64 {
	if l.IsEmpty() {
		return 0
	}
	return distance(l.Start, l.End)
}

func (l *Line) Bounds() *Envelope {
	env := NewEnvelope()
	if !l.IsEmpty() {
		env.MergePoint(l.Start)
		env.MergePoint(l.End)
	}
	return env
}

func (l *Line) Copy() Geometry {
	return &Line{Start: l.Start.copyValue(), End: l.End.copyValue()}
}
