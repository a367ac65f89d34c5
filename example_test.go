package geodesic_test

import (
	"fmt"

	"github.com/geodlab/geodesic"
)

func ExampleEllipsoid_Inverse() {
	// JFK to Singapore Changi
	var s12, azi1, azi2 float64
	geodesic.WGS84.Inverse(40.64, -73.78, 1.36, 103.99, &s12, &azi1, &azi2)
	fmt.Printf("%.3f m %.5f %.5f\n", s12, azi1, azi2)
	// Output: 15347512.941 m 3.30577 177.48784
}

func ExampleEllipsoid_Direct() {
	// 10000 km NE of JFK
	var lat2, lon2, azi2 float64
	geodesic.WGS84.Direct(40.64, -73.78, 45, 10e6, &lat2, &lon2, &azi2)
	fmt.Printf("%.5f %.5f %.5f\n", lat2, lon2, azi2)
	// Output: 32.62110 49.05249 140.40599
}

func ExampleEllipsoid_GenInverse() {
	r := geodesic.WGS84.GenInverse(0, 0, 0, 90, geodesic.Distance|geodesic.Area)
	fmt.Printf("%.1f km, area set: %v, azimuth set: %v\n",
		r.Distance/1000, r.Has(geodesic.Area), r.Has(geodesic.Azimuth))
	// Output: 10018.8 km, area set: true, azimuth set: false
}

func ExamplePolygon() {
	p := geodesic.WGS84.PolygonInit(false)
	p.AddPoint(90, 0)
	p.AddPoint(0, 0)
	p.AddPoint(0, 90)
	r := p.Compute(false, true)
	fmt.Printf("%d points, %.1f km, %.4e m^2\n", r.Count, r.Perimeter/1000, r.Area)
	// Output: 3 points, 30022.7 km, 6.3758e+13 m^2
}
