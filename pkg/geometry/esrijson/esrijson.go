// Package esrijson imports geometries from the Esri JSON encoding.
//
// The encoding carries no explicit type field; the shape is inferred
// from which keys are present, checked in a fixed priority order:
// x and y mean a point, then points, paths, rings, and finally xmin and
// ymin for an envelope. Coordinates nested in points/paths/rings are
// positional arrays [x, y, z?, m?]; a point object uses named fields.
package esrijson

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/spatialkit/planar/pkg/geometry"
)

const formatName = "esrijson"

// Parse imports an Esri JSON geometry object. Blank input returns
// geometry.ErrBlankInput; a document matching none of the recognized
// key patterns, or a nested coordinate array with fewer than two
// elements, returns a *geometry.FormatError. Undersized paths and rings
// are dropped silently, matching the WKT importer's tolerance policy.
func Parse(data []byte) (geometry.Geometry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, geometry.ErrBlankInput
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, geometry.NewFormatError(formatName, "invalid json object", string(data))
	}

	_, hasX := doc["x"]
	_, hasY := doc["y"]
	_, hasXMin := doc["xmin"]
	_, hasYMin := doc["ymin"]

	switch {
	case hasX && hasY:
		return parsePoint(doc)
	case present(doc, "points"):
		return parseMultiPoint(doc["points"])
	case present(doc, "paths"):
		return parsePolyline(doc["paths"])
	case present(doc, "rings"):
		return parsePolygon(doc["rings"])
	case hasXMin && hasYMin:
		return parseEnvelope(doc)
	default:
		return nil, geometry.NewFormatError(formatName, "unrecognized shape", string(data))
	}
}

// ParseString is Parse over a string document.
func ParseString(s string) (geometry.Geometry, error) {
	return Parse([]byte(s))
}

func present(doc map[string]json.RawMessage, key string) bool {
	_, ok := doc[key]
	return ok
}

// coordinate reads a required numeric field; JSON null becomes the NaN
// sentinel, which is how empty points and envelopes are encoded.
func coordinate(raw json.RawMessage, field string) (float64, error) {
	if raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return math.NaN(), nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, geometry.NewFormatError(formatName, "invalid number for "+field, string(raw))
	}
	return v, nil
}

// optional reads z or m; null and absent both mean "no value", never 0.
func optional(raw json.RawMessage, field string) (*float64, error) {
	if raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, geometry.NewFormatError(formatName, "invalid number for "+field, string(raw))
	}
	return &v, nil
}

func parsePoint(doc map[string]json.RawMessage) (geometry.Geometry, error) {
	x, err := coordinate(doc["x"], "x")
	if err != nil {
		return nil, err
	}
	y, err := coordinate(doc["y"], "y")
	if err != nil {
		return nil, err
	}
	z, err := optional(doc["z"], "z")
	if err != nil {
		return nil, err
	}
	m, err := optional(doc["m"], "m")
	if err != nil {
		return nil, err
	}
	return &geometry.Point{X: x, Y: y, Z: z, M: m}, nil
}

// positional converts one [x, y, z?, m?] array.
func positional(arr []float64, context string) (geometry.Point, error) {
	if len(arr) < 2 {
		return geometry.Point{}, geometry.NewFormatError(formatName,
			"coordinate array needs at least x and y in "+context, "")
	}
	p := geometry.Point{X: arr[0], Y: arr[1]}
	if len(arr) > 2 {
		p.Z = geometry.Float64(arr[2])
	}
	if len(arr) > 3 {
		p.M = geometry.Float64(arr[3])
	}
	return p, nil
}

func positionalRun(arrs [][]float64, context string) ([]geometry.Point, error) {
	pts := make([]geometry.Point, 0, len(arrs))
	for _, arr := range arrs {
		p, err := positional(arr, context)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func parseMultiPoint(raw json.RawMessage) (geometry.Geometry, error) {
	var arrs [][]float64
	if err := json.Unmarshal(raw, &arrs); err != nil {
		return nil, geometry.NewFormatError(formatName, "invalid points array", string(raw))
	}
	pts, err := positionalRun(arrs, "points")
	if err != nil {
		return nil, err
	}
	return geometry.NewMultiPoint(pts...), nil
}

func parsePolyline(raw json.RawMessage) (geometry.Geometry, error) {
	var paths [][][]float64
	if err := json.Unmarshal(raw, &paths); err != nil {
		return nil, geometry.NewFormatError(formatName, "invalid paths array", string(raw))
	}
	pl := &geometry.Polyline{}
	for _, path := range paths {
		pts, err := positionalRun(path, "paths")
		if err != nil {
			return nil, err
		}
		pl.AddPath(pts)
	}
	return pl, nil
}

func parsePolygon(raw json.RawMessage) (geometry.Geometry, error) {
	var rings [][][]float64
	if err := json.Unmarshal(raw, &rings); err != nil {
		return nil, geometry.NewFormatError(formatName, "invalid rings array", string(raw))
	}
	pg := &geometry.Polygon{}
	for _, ring := range rings {
		pts, err := positionalRun(ring, "rings")
		if err != nil {
			return nil, err
		}
		pg.AddRing(pts)
	}
	return pg, nil
}

func parseEnvelope(doc map[string]json.RawMessage) (geometry.Geometry, error) {
	env := geometry.NewEnvelope()
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"xmin", &env.XMin},
		{"ymin", &env.YMin},
		{"xmax", &env.XMax},
		{"ymax", &env.YMax},
	} {
		v, err := coordinate(doc[f.key], f.key)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	return env, nil
}
