package geometry

import "math"

// Envelope is an axis-aligned bounding rectangle. All four bounds are
// NaN when empty; Merge initializes them from the first merged value.
type Envelope struct {
	XMin, YMin, XMax, YMax float64
}

// NewEnvelope returns an empty envelope.
func NewEnvelope() *Envelope {
	return &Envelope{
		XMin: math.NaN(),
		YMin: math.NaN(),
		XMax: math.NaN(),
		YMax: math.NaN(),
	}
}

// NewEnvelopeXY returns an envelope with the given bounds.
func NewEnvelopeXY(xmin, ymin, xmax, ymax float64) *Envelope {
	return &Envelope{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

func (e *Envelope) Type() Type     { return TypeEnvelope }
func (e *Envelope) Dimension() int { return 2 }

// IsEmpty reports whether any bound is the NaN sentinel.
func (e *Envelope) IsEmpty() bool {
	return math.IsNaN(e.XMin) || math.IsNaN(e.YMin) ||
		math.IsNaN(e.XMax) || math.IsNaN(e.YMax)
}

func (e *Envelope) Width() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.XMax - e.XMin
}

func (e *Envelope) Height() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.YMax - e.YMin
}

// Area is the rectangle area, 0 when empty.
func (e *Envelope) Area() float64 {
	return e.Width() * e.Height()
}

// Center is the midpoint of both axes; the empty point when empty.
func (e *Envelope) Center() *Point {
	if e.IsEmpty() {
		return NewEmptyPoint()
	}
	return NewPoint((e.XMin+e.XMax)/2, (e.YMin+e.YMax)/2)
}

// MergePoint grows the rectangle to cover p. Merging into an empty
// envelope initializes the bounds from p. Empty points are ignored.
func (e *Envelope) MergePoint(p Point) {
	if p.IsEmpty() {
		return
	}
	if e.IsEmpty() {
		e.XMin, e.YMin, e.XMax, e.YMax = p.X, p.Y, p.X, p.Y
		return
	}
	e.XMin = math.Min(e.XMin, p.X)
	e.YMin = math.Min(e.YMin, p.Y)
	e.XMax = math.Max(e.XMax, p.X)
	e.YMax = math.Max(e.YMax, p.Y)
}

// MergeEnvelope grows the rectangle to cover o. Empty operands are
// ignored; merging into an empty envelope copies o's bounds.
func (e *Envelope) MergeEnvelope(o *Envelope) {
	if o == nil || o.IsEmpty() {
		return
	}
	if e.IsEmpty() {
		*e = *o
		return
	}
	e.XMin = math.Min(e.XMin, o.XMin)
	e.YMin = math.Min(e.YMin, o.YMin)
	e.XMax = math.Max(e.XMax, o.XMax)
	e.YMax = math.Max(e.YMax, o.YMax)
}

// ContainsPoint uses closed intervals on both axes: a point exactly on
// the boundary is contained. False when either operand is empty.
func (e *Envelope) ContainsPoint(p Point) bool {
	if e.IsEmpty() || p.IsEmpty() {
		return false
	}
	return p.X >= e.XMin && p.X <= e.XMax && p.Y >= e.YMin && p.Y <= e.YMax
}

// Intersects is the negation of strict separation on some axis, so
// rectangles touching at an edge or corner intersect. False when either
// operand is empty or nil.
func (e *Envelope) Intersects(o *Envelope) bool {
	if o == nil || e.IsEmpty() || o.IsEmpty() {
		return false
	}
	return !(e.XMax < o.XMin || e.XMin > o.XMax ||
		e.YMax < o.YMin || e.YMin > o.YMax)
}

func (e *Envelope) Bounds() *Envelope {
	cp := *e
	return &cp
}

func (e *Envelope) Copy() Geometry {
	cp := *e
	return &cp
}
