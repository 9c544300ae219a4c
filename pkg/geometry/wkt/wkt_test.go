package wkt

import (
	"errors"
	"testing"

	"github.com/spatialkit/planar/pkg/geometry"
)

func TestParsePoint(t *testing.T) {
	g, err := Parse("POINT (10 20)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, ok := g.(*geometry.Point)
	if !ok {
		t.Fatalf("expected point, got %T", g)
	}
	if p.X != 10 || p.Y != 20 || p.Z != nil || p.M != nil {
		t.Fatalf("unexpected point: %+v", *p)
	}
}

func TestParsePoint_WithZAndKeywordMarker(t *testing.T) {
	g, err := Parse("point z (1.5 -2.25 30)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := g.(*geometry.Point)
	if p.X != 1.5 || p.Y != -2.25 || p.Z == nil || *p.Z != 30 {
		t.Fatalf("unexpected point: %+v", *p)
	}
}

func TestParseLineString(t *testing.T) {
	g, err := Parse("LINESTRING (0 0, 10 0, 10 10)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pl := g.(*geometry.Polyline)
	if pl.PathCount() != 1 || len(pl.Path(0)) != 3 {
		t.Fatalf("expected 1 path of 3 points, got %d paths", pl.PathCount())
	}
	if got := geometry.Length2D(pl); got != 20 {
		t.Fatalf("length = %v, want 20", got)
	}
}

func TestParseEmptyVariants(t *testing.T) {
	cases := []struct {
		in  string
		typ geometry.Type
	}{
		{"POINT EMPTY", geometry.TypePoint},
		{"LINESTRING EMPTY", geometry.TypePolyline},
		{"POLYGON EMPTY", geometry.TypePolygon},
		{"MULTIPOINT EMPTY", geometry.TypeMultiPoint},
		{"MULTILINESTRING EMPTY", geometry.TypePolyline},
		{"polygon empty", geometry.TypePolygon},
	}
	for _, c := range cases {
		g, err := Parse(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if g.Type() != c.typ || !g.IsEmpty() {
			t.Fatalf("%q: type=%s empty=%v", c.in, g.Type(), g.IsEmpty())
		}
		if geometry.Area2D(g) != 0 || geometry.Length2D(g) != 0 {
			t.Fatalf("%q: empty geometry must measure 0", c.in)
		}
	}
}

func TestParsePolygon_WithHole(t *testing.T) {
	g, err := Parse("POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0), (1 1, 1 3, 3 3, 3 1, 1 1))")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pg := g.(*geometry.Polygon)
	if pg.RingCount() != 2 {
		t.Fatalf("rings = %d, want 2", pg.RingCount())
	}
	if got := geometry.Area2D(pg); got != 12 {
		t.Fatalf("area = %v, want 16-4=12", got)
	}
}

func TestParseMultiLineString(t *testing.T) {
	g, err := Parse("MULTILINESTRING ((0 0, 1 0), (0 1, 0 2, 0 3))")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pl := g.(*geometry.Polyline)
	if pl.PathCount() != 2 {
		t.Fatalf("paths = %d, want 2", pl.PathCount())
	}
	if got := geometry.Length2D(pl); got != 3 {
		t.Fatalf("length = %v, want 3", got)
	}
}

func TestParseMultiPoint_BothTupleStyles(t *testing.T) {
	for _, in := range []string{
		"MULTIPOINT (1 2, 3 4)",
		"MULTIPOINT ((1 2), (3 4))",
	} {
		g, err := Parse(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		mp := g.(*geometry.MultiPoint)
		if mp.Len() != 2 || mp.PointAt(1).X != 3 || mp.PointAt(1).Y != 4 {
			t.Fatalf("%q: unexpected multipoint", in)
		}
	}
}

func TestParse_UndersizedPartsAreDropped(t *testing.T) {
	g, err := Parse("POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0), (1 1, 2 2))")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.(*geometry.Polygon).RingCount() != 1 {
		t.Fatalf("two-point ring must be dropped silently")
	}

	g, err = Parse("MULTILINESTRING ((0 0, 1 1), (5 5))")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.(*geometry.Polyline).PathCount() != 1 {
		t.Fatalf("one-point path must be dropped silently")
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse("   "); !errors.Is(err, geometry.ErrBlankInput) {
		t.Fatalf("blank input: got %v", err)
	}

	bad := []string{
		"CIRCLE (1 2)",
		"POINT (1)",
		"POINT (1 2 3 4)",
		"POINT (a b)",
		"POINT 1 2",
		"LINESTRING (0 0, x 1)",
		"POLYGON (0 0, 1 0, 1 1)",            // missing ring parentheses
		"POLYGON ((0 0, 1 0, 1 1)",           // unbalanced
		"MULTILINESTRING (0 0, 1 1)",         // missing path parentheses
	}
	for _, in := range bad {
		_, err := Parse(in)
		var fe *geometry.FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("%q: expected format error, got %v", in, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"POINT (10 20)",
		"POINT (1.5 -2.25 30)",
		"MULTIPOINT ((1 2), (3 4))",
		"LINESTRING (0 0, 10 0, 10 10)",
		"MULTILINESTRING ((0 0, 1 0), (0 1, 0 2, 0 3))",
		"POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0), (1 1, 1 3, 3 3, 3 1, 1 1))",
	}
	for _, in := range inputs {
		g, err := Parse(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		out, err := Marshal(g)
		if err != nil {
			t.Fatalf("%q: marshal: %v", in, err)
		}
		if out != in {
			t.Fatalf("round trip changed text:\n in=%s\nout=%s", in, out)
		}
		// and re-importing the emitted text reproduces the measures
		g2, err := Parse(out)
		if err != nil {
			t.Fatalf("%q: reparse: %v", out, err)
		}
		if geometry.Area2D(g) != geometry.Area2D(g2) || geometry.Length2D(g) != geometry.Length2D(g2) {
			t.Fatalf("%q: measures changed across round trip", in)
		}
	}
}

func TestMarshal_DerivedForms(t *testing.T) {
	line := geometry.NewLine(*geometry.NewPoint(0, 0), *geometry.NewPoint(3, 4))
	s, err := Marshal(line)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if s != "LINESTRING (0 0, 3 4)" {
		t.Fatalf("line wkt = %q", s)
	}

	env := geometry.NewEnvelopeXY(0, 0, 2, 3)
	s, err = Marshal(env)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	g, err := Parse(s)
	if err != nil {
		t.Fatalf("reparse envelope wkt: %v", err)
	}
	if got := geometry.Area2D(g); got != 6 {
		t.Fatalf("envelope ring area = %v, want 6", got)
	}
	if *g.Bounds() != *env {
		t.Fatalf("envelope ring bounds = %+v, want %+v", *g.Bounds(), *env)
	}

	if s, err = Marshal(geometry.NewEnvelope()); err != nil || s != "POLYGON EMPTY" {
		t.Fatalf("empty envelope wkt = %q, %v", s, err)
	}
	if _, err := Marshal(nil); err == nil {
		t.Fatalf("marshal of nil must fail")
	}
}
