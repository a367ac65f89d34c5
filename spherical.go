// Great-circle formulae after Chris Veness, Latitude/longitude spherical
// geodesy tools (MIT Licence), www.movable-type.co.uk/scripts/latlong.html

package geodesic

import "math"

// NewSpherical initializes a new geodesic ellipsoid object that uses
// simplified operations on a sphere.
//
// The Inverse and Direct operations will often be more computationally
// efficient than NewEllipsoid because it uses simplier great-circle
// calculations such as the Haversine formula. The general operations
// (GenInverse, GenDirect, lines and polygons) use the series solution,
// which is exact for a sphere.
//
// Param radius is the equatorial radius (meters). It panics if radius is
// not a finite positive number.
//
// The Globe package-level variable is a pre-initialized spherical
// representing Earth as a terrestrial globe.
func NewSpherical(radius float64) *Ellipsoid {
	e := MustEllipsoid(radius, 0)
	e.spherical = true
	return e
}

func sphericalInverse(radius, lat1, lon1, lat2, lon2 float64) (s12, azi1, azi2 float64) {
	s12 = haversine(radius, lat1, lon1, lat2, lon2)
	azi1 = bearing(lat1, lon1, lat2, lon2)
	azi2 = angNormalize(bearing(lat2, lon2, lat1, lon1) + 180)
	return s12, azi1, azi2
}

func sphericalDirect(radius, lat1, lon1, azi1, s12 float64) (lat2, lon2, azi2 float64) {
	lat2, lon2 = destination(radius, lat1, lon1, azi1, s12)
	azi2 = angNormalize(bearing(lat2, lon2, lat1, lon1) + 180)
	return lat2, lon2, azi2
}

// destination travels s12 meters from (lat1, lon1) on initial bearing azi1.
func destination(radius, lat1, lon1, azi1, s12 float64) (lat2, lon2 float64) {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	δ := s12 / radius
	sδ, cδ := math.Sincos(δ)
	sθ, cθ := sincosd(azi1)
	sφ1, cφ1 := sincosd(lat1)
	sφ2 := sφ1*cδ + cφ1*sδ*cθ
	φ2 := math.Asin(math.Max(-1, math.Min(1, sφ2)))
	Δλ := math.Atan2(sθ*sδ*cφ1, cδ-sφ1*sφ2)
	return φ2 / degree, angNormalize(lon1 + Δλ/degree)
}

// haversine is the great-circle distance in meters.
func haversine(radius, lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := lat1 * degree
	φ2 := lat2 * degree
	sΔφ2 := math.Sin((φ2 - φ1) / 2)
	sΔλ2 := math.Sin((lon2 - lon1) * degree / 2)
	haver := sΔφ2*sΔφ2 + math.Cos(φ1)*math.Cos(φ2)*sΔλ2*sΔλ2
	return radius * 2 * math.Asin(math.Min(1, math.Sqrt(haver)))
}

// bearing is the initial great-circle bearing from point 1 to point 2 in
// [-180, 180].
func bearing(lat1, lon1, lat2, lon2 float64) float64 {
	// tanθ = sinΔλ⋅cosφ2 / cosφ1⋅sinφ2 − sinφ1⋅cosφ2⋅cosΔλ
	sφ1, cφ1 := sincosd(lat1)
	sφ2, cφ2 := sincosd(lat2)
	sΔλ, cΔλ := sincosd(lon2 - lon1)
	return atan2d(sΔλ*cφ2, cφ1*sφ2-sφ1*cφ2*cΔλ)
}
