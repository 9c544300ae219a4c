// Package model defines the service's request and response types.
package model

// Formats the import endpoints accept.
const (
	FormatWKT      = "wkt"
	FormatEsriJSON = "esrijson"
)

// ImportRequest is a geometry document plus the format it is encoded
// in.
type ImportRequest struct {
	Format string
	Data   []byte
}

// BoundsJSON is the envelope of a parsed geometry; nil bounds in a
// Summary mean the geometry was empty.
type BoundsJSON struct {
	XMin float64 `json:"xmin"`
	YMin float64 `json:"ymin"`
	XMax float64 `json:"xmax"`
	YMax float64 `json:"ymax"`
}

// Summary is the derived view of a parsed geometry the service caches
// and returns: the scalar measures plus enough structure to see what
// was parsed.
type Summary struct {
	Type       string      `json:"type"`
	Empty      bool        `json:"empty"`
	Dimension  int         `json:"dimension"`
	Area       float64     `json:"area"`
	Length     float64     `json:"length"`
	Bounds     *BoundsJSON `json:"bounds,omitempty"`
	PartCount  int         `json:"partCount"`
	PointCount int         `json:"pointCount"`
}
