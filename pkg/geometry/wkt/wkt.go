// Package wkt imports and exports geometries in Well-Known Text.
//
// Keywords are matched case-insensitively by prefix: POINT, LINESTRING,
// POLYGON, MULTIPOINT, MULTILINESTRING. Anything between the keyword and
// the opening parenthesis (such as a Z or M dimensionality marker) is
// tolerated without inspection. Nested ring and path lists are extracted
// by a depth-counting bracket scan rather than a grammar, because ring
// and point counts are unbounded and unknown ahead of time.
package wkt

import (
	"strconv"
	"strings"

	"github.com/spatialkit/planar/pkg/geometry"
)

const formatName = "wkt"

// Parse imports a WKT literal. Blank input returns
// geometry.ErrBlankInput; unrecognized or structurally malformed text
// returns a *geometry.FormatError. Rings shorter than three points and
// paths shorter than two are dropped silently, never reported.
func Parse(s string) (geometry.Geometry, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return nil, geometry.ErrBlankInput
	}
	upper := strings.ToUpper(text)

	// longer keywords first: MULTI* share prefixes with their
	// single-part counterparts
	switch {
	case strings.HasPrefix(upper, "MULTILINESTRING"):
		return parseMultiLineString(text, upper)
	case strings.HasPrefix(upper, "MULTIPOINT"):
		return parseMultiPoint(text, upper)
	case strings.HasPrefix(upper, "LINESTRING"):
		return parseLineString(text, upper)
	case strings.HasPrefix(upper, "POLYGON"):
		return parsePolygon(text, upper)
	case strings.HasPrefix(upper, "POINT"):
		return parsePoint(text, upper)
	default:
		return nil, geometry.NewFormatError(formatName, "unrecognized geometry keyword", text)
	}
}

func isEmptyLiteral(upper string) bool {
	return strings.HasSuffix(strings.TrimSpace(upper), "EMPTY")
}

// body returns the text between the first '(' and the last ')'.
func body(text string) (string, error) {
	open := strings.IndexByte(text, '(')
	close := strings.LastIndexByte(text, ')')
	if open < 0 || close < open {
		return "", geometry.NewFormatError(formatName, "missing parentheses", text)
	}
	return text[open+1 : close], nil
}

func parsePoint(text, upper string) (geometry.Geometry, error) {
	if isEmptyLiteral(upper) {
		return geometry.NewEmptyPoint(), nil
	}
	inner, err := body(text)
	if err != nil {
		return nil, err
	}
	p, err := parseTuple(inner)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func parseLineString(text, upper string) (geometry.Geometry, error) {
	pl := &geometry.Polyline{}
	if isEmptyLiteral(upper) {
		return pl, nil
	}
	inner, err := body(text)
	if err != nil {
		return nil, err
	}
	pts, err := parseTupleList(inner)
	if err != nil {
		return nil, err
	}
	pl.AddPath(pts)
	return pl, nil
}

func parseMultiPoint(text, upper string) (geometry.Geometry, error) {
	mp := &geometry.MultiPoint{}
	if isEmptyLiteral(upper) {
		return mp, nil
	}
	inner, err := body(text)
	if err != nil {
		return nil, err
	}
	pts, err := parseTupleList(inner)
	if err != nil {
		return nil, err
	}
	for _, p := range pts {
		mp.Add(p)
	}
	return mp, nil
}

func parsePolygon(text, upper string) (geometry.Geometry, error) {
	pg := &geometry.Polygon{}
	if isEmptyLiteral(upper) {
		return pg, nil
	}
	rings, err := captureGroups(text)
	if err != nil {
		return nil, err
	}
	for _, ring := range rings {
		pts, err := parseTupleList(ring)
		if err != nil {
			return nil, err
		}
		pg.AddRing(pts)
	}
	return pg, nil
}

func parseMultiLineString(text, upper string) (geometry.Geometry, error) {
	pl := &geometry.Polyline{}
	if isEmptyLiteral(upper) {
		return pl, nil
	}
	paths, err := captureGroups(text)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		pts, err := parseTupleList(path)
		if err != nil {
			return nil, err
		}
		pl.AddPath(pts)
	}
	return pl, nil
}

// captureGroups scans the whole literal counting bracket depth and
// returns the text of each inner list: depth increments on '(' and
// decrements on ')', and a complete ring or path is the slice between a
// depth-2 open and its matching close. A literal with balanced outer
// parentheses but no inner lists is malformed, not empty.
func captureGroups(text string) ([]string, error) {
	var groups []string
	depth := 0
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
			if depth == 2 {
				start = i + 1
			}
		case ')':
			if depth == 2 {
				groups = append(groups, text[start:i])
			}
			depth--
			if depth < 0 {
				return nil, geometry.NewFormatError(formatName, "unbalanced parentheses", text)
			}
		}
	}
	if depth != 0 {
		return nil, geometry.NewFormatError(formatName, "unbalanced parentheses", text)
	}
	if len(groups) == 0 {
		return nil, geometry.NewFormatError(formatName, "missing ring or path parentheses", text)
	}
	return groups, nil
}

// parseTupleList parses comma-separated coordinate tuples. Individually
// parenthesized tuples, as in MULTIPOINT ((1 2), (3 4)), are accepted.
func parseTupleList(text string) ([]geometry.Point, error) {
	parts := strings.Split(text, ",")
	pts := make([]geometry.Point, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "(")
		part = strings.TrimSuffix(part, ")")
		p, err := parseTuple(part)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// parseTuple parses "X Y" or "X Y Z" with locale-invariant decimals.
func parseTuple(text string) (geometry.Point, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 || len(fields) > 3 {
		return geometry.Point{}, geometry.NewFormatError(formatName, "coordinate tuple must have 2 or 3 values", text)
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Point{}, geometry.NewFormatError(formatName, "invalid number", f)
		}
		vals[i] = v
	}
	p := geometry.Point{X: vals[0], Y: vals[1]}
	if len(vals) == 3 {
		p.Z = geometry.Float64(vals[2])
	}
	return p, nil
}
