package geodesic

// GenDirect solves the general direct geodesic problem.
//
// Param lat1, lon1 is point 1 (degrees) and azi1 the azimuth there.
// Param flags: with ArcMode, s12a12 is the arc length on the auxiliary
// sphere (degrees), otherwise the distance (meters); either may be
// negative. With LongUnroll, Lon2 is lon1 plus the accumulated longitude
// change instead of being reduced to (-180, 180].
// Param mask selects the quantities to compute.
//
// Arc is always returned. If point 1 is a pole the azimuth is taken as the
// limit approaching the pole along the meridian lon1.
func (e *Ellipsoid) GenDirect(lat1, lon1, azi1 float64, flags Flags, s12a12 float64, mask Mask) Result {
	caps := mask
	if flags&ArcMode == 0 {
		// distance input needs the reverted series
		caps |= DistanceIn
	}
	l := e.Line(lat1, lon1, azi1, caps)
	return l.GenPosition(flags, s12a12, mask)
}

func geodDirect(e *Ellipsoid, lat1, lon1, azi1, s12 float64, lat2, lon2, azi2 *float64) {
	var mask Mask
	if lat2 != nil {
		mask |= Latitude
	}
	if lon2 != nil {
		mask |= Longitude
	}
	if azi2 != nil {
		mask |= Azimuth
	}
	r := e.GenDirect(lat1, lon1, azi1, NoFlags, s12, mask)
	if lat2 != nil {
		*lat2 = r.Lat2
	}
	if lon2 != nil {
		*lon2 = r.Lon2
	}
	if azi2 != nil {
		*azi2 = r.Azi2
	}
}
