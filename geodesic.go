// Package geodesic solves the direct and inverse geodesic problems on an
// ellipsoid of revolution and measures the perimeter and area of polygons
// whose edges are geodesics.
package geodesic

// WGS84 conforming ellipsoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = MustEllipsoid(6378137, float64(1.)/298.257223563)

// GRS80 ellipsoid, the reference for NAD83 and ETRS89.
var GRS80 = MustEllipsoid(6378137, float64(1.)/298.257222101)

// Globe is a pre-initialized spherical representing Earth as a
// terrestrial globe.
var Globe = NewSpherical(6378137)

// Inverse solve the inverse geodesic problem.
//
// Param lat1 is latitude of point 1 (degrees).
// Param lon1 is longitude of point 1 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Out param s12 is a pointer to the distance from point 1 to point 2 (meters).
// Out param azi1 is a pointer to the azimuth at point 1 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// lat1 and lat2 should be in the range [-90,+90].
// The values of azi1 and azi2 returned are in the range [-180,+180].
// Any of the "return" arguments, s12, etc., may be replaced with nil, if you
// do not need some quantities computed. Use GenInverse for the reduced
// length, geodesic scales and area.
//
// The solution to the inverse problem is found using Newton's method.  If
// this fails to converge (this is very unlikely in geodetic applications
// but does occur for very eccentric ellipsoids), then the bisection method
// is used to refine the solution.
func (e *Ellipsoid) Inverse(
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2 *float64,
) {
	if !e.spherical {
		geodInverse(e, lat1, lon1, lat2, lon2, s12, azi1, azi2)
		return
	}
	d, a1, a2 := sphericalInverse(e.a, lat1, lon1, lat2, lon2)
	if s12 != nil {
		*s12 = d
	}
	if azi1 != nil {
		*azi1 = a1
	}
	if azi2 != nil {
		*azi2 = a2
	}
}

// Direct solves the direct geodesic problem.
//
// Param lat1 is the latitude of point 1 (degrees).
// Param lon1 is the longitude of point 1 (degrees).
// Param azi1 is the azimuth at point 1 (degrees).
// Param s12 is the distance from point 1 to point 2 (meters). negative is ok.
// Out param lat2 is a pointer to the latitude of point 2 (degrees).
// Out param lon2 is a pointer to the longitude of point 2 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// lat1 should be in the range [-90,+90].
// The values of lon2 and azi2 returned are in the range [-180,+180].
// Any of the "return" arguments, lat2, etc., may be replaced with nil, if you
// do not need some quantities computed.
func (e *Ellipsoid) Direct(
	lat1, lon1, azi1, s12 float64,
	lat2, lon2, azi2 *float64,
) {
	if !e.spherical {
		geodDirect(e, lat1, lon1, azi1, s12, lat2, lon2, azi2)
		return
	}
	la2, lo2, a2 := sphericalDirect(e.a, lat1, lon1, azi1, s12)
	if lat2 != nil {
		*lat2 = la2
	}
	if lon2 != nil {
		*lon2 = lo2
	}
	if azi2 != nil {
		*azi2 = a2
	}
}
