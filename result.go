package geodesic

// Result holds the output of GenDirect, GenInverse and Line.GenPosition.
// Valid records which of the optional quantities were computed; fields
// outside it are left at zero. Point 1 and Arc are always set; GenInverse
// also echoes point 2 and reports Azi1 only with Azimuth.
type Result struct {
	Lat1, Lon1, Azi1 float64
	Lat2, Lon2, Azi2 float64

	// Distance s12 from point 1 to point 2 (meters).
	Distance float64
	// Arc a12 on the auxiliary sphere (degrees).
	Arc float64
	// ReducedLength m12 (meters).
	ReducedLength float64
	// M12 and M21 are the geodesic scales (dimensionless).
	M12, M21 float64
	// Area S12 between the geodesic and the equator (meters squared).
	Area float64

	Valid Mask
}

// Has reports whether the quantities in m were computed.
func (r Result) Has(m Mask) bool {
	return r.Valid.Has(m)
}
