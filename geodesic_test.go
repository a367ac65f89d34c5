package geodesic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqish(x, y float64, prec int) bool {
	return math.Abs(x-y) < float64(1.0)/math.Pow10(prec)
}

func TestInverse(t *testing.T) {
	var s12, azi1, azi2 float64

	// JFK to Singapore Changi
	WGS84.Inverse(40.64, -73.78, 1.36, 103.99, &s12, &azi1, &azi2)
	assert.InDelta(t, 15347512.94051294, s12, 1e-6)
	assert.InDelta(t, 3.3057734780176125, azi1, 1e-12)
	assert.InDelta(t, 177.48784020815515, azi2, 1e-12)

	// Berkeley to Port Moresby
	WGS84.Inverse(37.87622, -122.23558, -9.4047, 147.1597, &s12, &azi1, &azi2)
	assert.InDelta(t, 10700471.955233702, s12, 1e-6)
	assert.InDelta(t, -96.91639942294974, azi1, 1e-12)
	assert.InDelta(t, -127.32548874543627, azi2, 1e-12)

	WGS84.Inverse(0, 0, 0, 10, &s12, &azi1, &azi2)
	assert.InDelta(t, 1113194.9079327357, s12, 1e-5)
	assert.Equal(t, 90.0, azi1)
	assert.Equal(t, 90.0, azi2)

	// nil outputs are skipped
	WGS84.Inverse(0, 0, 0, 10, nil, &azi1, nil)
	assert.Equal(t, 90.0, azi1)
}

func TestDirect(t *testing.T) {
	var lat2, lon2, azi2 float64
	// 10000 km NE of JFK
	WGS84.Direct(40.64, -73.78, 45, 10e6, &lat2, &lon2, &azi2)
	assert.InDelta(t, 32.621100463725796, lat2, 1e-12)
	assert.InDelta(t, 49.05248709295982, lon2, 1e-12)
	assert.InDelta(t, 140.40598587680074, azi2, 1e-12)

	WGS84.Direct(40.64, -73.78, 45, 10e6, nil, &lon2, nil)
	assert.InDelta(t, 49.05248709295982, lon2, 1e-12)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, e := range []*Ellipsoid{WGS84, GRS80, MustEllipsoid(6.4e6, -1/150.0)} {
		for i := 0; i < 2000; i++ {
			lat1 := rng.Float64()*180 - 90
			lon1 := rng.Float64()*360 - 180
			lat2 := rng.Float64()*180 - 90
			lon2 := rng.Float64()*360 - 180

			var s12, azi1, azi2 float64
			e.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, &azi2)
			require.False(t, math.IsNaN(s12))
			require.GreaterOrEqual(t, s12, 0.0)

			var lat, lon, azi float64
			e.Direct(lat1, lon1, azi1, s12, &lat, &lon, &azi)
			require.InDelta(t, lat2, lat, 1e-7, "lat %v %v %v %v", lat1, lon1, lat2, lon2)
			require.InDelta(t, 0, angNormalize(lon-lon2)*math.Cos(lat2*degree), 1e-7,
				"lon %v %v %v %v", lat1, lon1, lat2, lon2)
		}
	}
}

func TestSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lon2 := rng.Float64()*360 - 180
		var s12, s21 float64
		WGS84.Inverse(lat1, lon1, lat2, lon2, &s12, nil, nil)
		WGS84.Inverse(lat2, lon2, lat1, lon1, &s21, nil, nil)
		require.InDelta(t, s12, s21, 1e-8)
	}
}

func TestCoincident(t *testing.T) {
	r := WGS84.GenInverse(12, 34, 12, 34, All)
	assert.Equal(t, 0.0, r.Distance)
	assert.Equal(t, 0.0, r.Arc)
	assert.Equal(t, 0.0, r.ReducedLength)
	assert.InDelta(t, 1, r.M12, 1e-15)
	assert.InDelta(t, 1, r.M21, 1e-15)
	assert.Equal(t, 0.0, r.Area)
	assert.False(t, math.Signbit(r.Distance))
}

func TestSpherical(t *testing.T) {
	if !Globe.Spherical() {
		t.Fatal()
	}
	if Globe.Flattening() != 0 {
		t.Fatal()
	}
	if WGS84.Spherical() {
		t.Fatal()
	}

	rng := rand.New(rand.NewSource(3))

	e := MustEllipsoid(Globe.Radius(), 0)
	for i := 0; i < 100_000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lon2 := rng.Float64()*360 - 180

		var s12, azi1, azi2 float64
		e.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, &azi2)

		var ret [3]float64
		Globe.Inverse(lat1, lon1, lat2, lon2, &ret[0], &ret[1], &ret[2])
		if !eqish(ret[0], s12, 4) ||
			!eqish(ret[1], azi1, 4) ||
			!eqish(ret[2], azi2, 4) {
			t.Fatalf("inverse failure (%f %f %f %f %f %f %f)",
				lat1, lon1, lat2, lon2, s12, azi1, azi2)
		}
		Globe.Direct(lat1, lon1, azi1, s12, &ret[0], &ret[1], &ret[2])
		if !eqish(ret[0], lat2, 4) ||
			!eqish(ret[1], lon2, 4) ||
			!eqish(ret[2], azi2, 4) {
			t.Fatalf("direct failure (%f %f %f %f %f %f %f)",
				lat1, lon1, lat2, lon2, s12, azi1, azi2)
		}
	}
}

func TestSphericalGeneral(t *testing.T) {
	// Gen* on a spherical ellipsoid use the series solution.
	r := Globe.GenInverse(0, 0, 0, 90, Distance|Area)
	assert.InDelta(t, math.Pi/2*Globe.Radius(), r.Distance, 1e-6)
	assert.Equal(t, 0.0, r.Area)
}
