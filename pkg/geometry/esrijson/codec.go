package esrijson

import (
	"encoding/json"

	"github.com/spatialkit/planar/pkg/geometry"
)

// MarshalPoint encodes a single point as an Esri JSON object with named
// fields, omitting absent z/m. The empty point encodes as null
// coordinates.
func MarshalPoint(p *geometry.Point) ([]byte, error) {
	if p == nil {
		return nil, geometry.ErrBlankInput
	}
	if p.IsEmpty() {
		return []byte(`{"x":null,"y":null}`), nil
	}
	obj := struct {
		X float64  `json:"x"`
		Y float64  `json:"y"`
		Z *float64 `json:"z,omitempty"`
		M *float64 `json:"m,omitempty"`
	}{p.X, p.Y, p.Z, p.M}
	return json.Marshal(obj)
}

// UnmarshalPoint decodes a single-point object. Documents whose key
// pattern resolves to any other variant are rejected.
func UnmarshalPoint(data []byte) (*geometry.Point, error) {
	g, err := Parse(data)
	if err != nil {
		return nil, err
	}
	p, ok := g.(*geometry.Point)
	if !ok {
		return nil, geometry.NewFormatError(formatName, "expected a point object", string(data))
	}
	return p, nil
}

type spatialReferenceJSON struct {
	WKID       int    `json:"wkid,omitempty"`
	LatestWKID int    `json:"latestWkid,omitempty"`
	WKT        string `json:"wkt,omitempty"`
}

// MarshalSpatialReference encodes the {wkid, latestWkid, wkt} value
// object.
func MarshalSpatialReference(sr *geometry.SpatialReference) ([]byte, error) {
	if sr == nil {
		return []byte("null"), nil
	}
	return json.Marshal(spatialReferenceJSON{sr.WKID, sr.LatestWKID, sr.WKT})
}

// UnmarshalSpatialReference decodes the {wkid, latestWkid, wkt} value
// object; null decodes to nil.
func UnmarshalSpatialReference(data []byte) (*geometry.SpatialReference, error) {
	var v *spatialReferenceJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, geometry.NewFormatError(formatName, "invalid spatial reference", string(data))
	}
	if v == nil {
		return nil, nil
	}
	return &geometry.SpatialReference{WKID: v.WKID, LatestWKID: v.LatestWKID, WKT: v.WKT}, nil
}

// ParseMap imports a geometry together with an optional embedded
// spatialReference member, pairing the two.
func ParseMap(data []byte) (*geometry.MapGeometry, error) {
	g, err := Parse(data)
	if err != nil {
		return nil, err
	}
	mg := &geometry.MapGeometry{Geometry: g}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, geometry.NewFormatError(formatName, "invalid json object", string(data))
	}
	if raw, ok := doc["spatialReference"]; ok {
		sr, err := UnmarshalSpatialReference(raw)
		if err != nil {
			return nil, err
		}
		mg.SpatialReference = sr
	}
	return mg, nil
}
