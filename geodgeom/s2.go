package geodgeom

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/geodlab/geodesic"
)

// InverseLatLng solves the inverse problem between two s2 coordinates,
// returning the distance (meters) and the azimuths at both ends.
func InverseLatLng(e *geodesic.Ellipsoid, a, b s2.LatLng) (s12 float64, azi1, azi2 s1.Angle) {
	var az1, az2 float64
	e.Inverse(a.Lat.Degrees(), a.Lng.Degrees(), b.Lat.Degrees(), b.Lng.Degrees(), &s12, &az1, &az2)
	return s12, s1.Angle(az1) * s1.Degree, s1.Angle(az2) * s1.Degree
}

// DirectLatLng travels s12 meters from p with initial azimuth azi and
// returns the destination and the azimuth there.
func DirectLatLng(e *geodesic.Ellipsoid, p s2.LatLng, azi s1.Angle, s12 float64) (s2.LatLng, s1.Angle) {
	var lat2, lon2, azi2 float64
	e.Direct(p.Lat.Degrees(), p.Lng.Degrees(), azi.Degrees(), s12, &lat2, &lon2, &azi2)
	return s2.LatLngFromDegrees(lat2, lon2), s1.Angle(azi2) * s1.Degree
}

// PointDistance is the geodesic distance in meters between two s2 points.
func PointDistance(e *geodesic.Ellipsoid, a, b s2.Point) float64 {
	s12, _, _ := InverseLatLng(e, s2.LatLngFromPoint(a), s2.LatLngFromPoint(b))
	return s12
}
