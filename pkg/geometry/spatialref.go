package geometry

// SpatialReference identifies a coordinate system by well-known ID
// and/or WKT definition text. It participates in no algorithm here;
// it is carried alongside geometries for collaborators that need it.
type SpatialReference struct {
	WKID       int
	LatestWKID int
	WKT        string
}

// IsEmpty reports whether neither an ID nor a definition is set.
func (sr *SpatialReference) IsEmpty() bool {
	return sr == nil || (sr.WKID == 0 && sr.LatestWKID == 0 && sr.WKT == "")
}

// MapGeometry pairs a geometry with the spatial reference its
// coordinates are expressed in.
type MapGeometry struct {
	Geometry         Geometry
	SpatialReference *SpatialReference
}

// Copy deep-copies the geometry; the spatial reference value is cloned
// as well so the pair owns both halves.
func (mg *MapGeometry) Copy() *MapGeometry {
	cp := &MapGeometry{}
	if mg.Geometry != nil {
		cp.Geometry = mg.Geometry.Copy()
	}
	if mg.SpatialReference != nil {
		sr := *mg.SpatialReference
		cp.SpatialReference = &sr
	}
	return cp
}
