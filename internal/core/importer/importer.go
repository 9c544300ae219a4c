// Package importer bridges the service to the geometry core: it
// dispatches a document to the right format importer and derives the
// summary the service serves and caches.
package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/spatialkit/planar/internal/core/model"
	"github.com/spatialkit/planar/internal/core/observability"
	"github.com/spatialkit/planar/pkg/geometry"
	"github.com/spatialkit/planar/pkg/geometry/esrijson"
	"github.com/spatialkit/planar/pkg/geometry/wkt"
)

// ErrUnknownFormat rejects format values other than wkt and esrijson.
var ErrUnknownFormat = errors.New("importer: unknown format")

// Import parses one document and records the attempt in metrics.
func Import(req model.ImportRequest) (geometry.Geometry, error) {
	start := time.Now()
	var (
		g   geometry.Geometry
		err error
	)
	switch req.Format {
	case model.FormatWKT:
		g, err = wkt.Parse(string(req.Data))
	case model.FormatEsriJSON:
		g, err = esrijson.Parse(req.Data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, req.Format)
	}
	observability.ObserveParse(req.Format, outcome(err), time.Since(start).Seconds())
	return g, err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, geometry.ErrBlankInput):
		return "blank"
	default:
		return "format"
	}
}

// Summarize derives the cached view of a parsed geometry.
func Summarize(g geometry.Geometry) model.Summary {
	s := model.Summary{
		Type:      g.Type().String(),
		Empty:     g.IsEmpty(),
		Dimension: g.Dimension(),
		Area:      geometry.Area2D(g),
		Length:    geometry.Length2D(g),
	}
	if env := g.Bounds(); !env.IsEmpty() {
		s.Bounds = &model.BoundsJSON{
			XMin: env.XMin, YMin: env.YMin, XMax: env.XMax, YMax: env.YMax,
		}
	}
	s.PartCount, s.PointCount = counts(g)
	return s
}

func counts(g geometry.Geometry) (parts, points int) {
	switch v := g.(type) {
	case *geometry.Point:
		if !v.IsEmpty() {
			return 1, 1
		}
		return 0, 0
	case *geometry.Line:
		if !v.IsEmpty() {
			return 1, 2
		}
		return 0, 0
	case *geometry.Envelope:
		if !v.IsEmpty() {
			return 1, 0
		}
		return 0, 0
	case *geometry.MultiPoint:
		return 1, v.Len()
	case *geometry.Polyline:
		for _, p := range v.Paths() {
			points += len(p)
		}
		return v.PathCount(), points
	case *geometry.Polygon:
		for _, r := range v.Rings() {
			points += len(r)
		}
		return v.RingCount(), points
	default:
		return 0, 0
	}
}
