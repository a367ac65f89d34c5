package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planimeter(e *Ellipsoid, points [][2]float64) PolygonResult {
	p := e.PolygonInit(false)
	for _, pt := range points {
		p.AddPoint(pt[0], pt[1])
	}
	return p.Compute(false, true)
}

func polylength(e *Ellipsoid, points [][2]float64) PolygonResult {
	p := e.PolygonInit(true)
	for _, pt := range points {
		p.AddPoint(pt[0], pt[1])
	}
	return p.Compute(false, true)
}

func TestPlanimeter(t *testing.T) {
	for _, tc := range []struct {
		name      string
		points    [][2]float64
		perimeter float64
		perimTol  float64
		area      float64
	}{
		{"north pole", [][2]float64{{89, 0}, {89, 90}, {89, 180}, {89, 270}},
			631819.8745, 1e-4, 24952305678.0},
		{"south pole", [][2]float64{{-89, 0}, {-89, 90}, {-89, 180}, {-89, 270}},
			631819.8745, 1e-4, -24952305678.0},
		{"diamond", [][2]float64{{0, -1}, {-1, 0}, {0, 1}, {1, 0}},
			627598.2731, 1e-4, 24619419146.0},
		{"octant", [][2]float64{{90, 0}, {0, 0}, {0, 90}},
			30022685, 1, 63758202715511.0},
		{"pole crossing", [][2]float64{{89, 0.1}, {89, 90.1}, {89, -179.9}},
			539297, 1, 12476152838.5},
		{"pole twice", [][2]float64{{89, -360}, {89, -240}, {89, -120}, {89, 0}, {89, 120}, {89, 240}},
			1160741, 1, 32415230256.0},
		{"arctic circle", [][2]float64{{66.562222222, 0}, {66.562222222, 180}},
			10465729, 1, 0},
		{"lon12 rounding a", [][2]float64{{9, -0.00000000000001}, {9, 180}, {9, 0}},
			36026861, 1, 0},
		{"lon12 rounding b", [][2]float64{{9, 0.00000000000001}, {9, 0}, {9, 180}},
			36026861, 1, 0},
		{"lon12 rounding c", [][2]float64{{9, 0.00000000000001}, {9, 180}, {9, 0}},
			36026861, 1, 0},
		{"lon12 rounding d", [][2]float64{{9, -0.00000000000001}, {9, 0}, {9, 180}},
			36026861, 1, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := planimeter(WGS84, tc.points)
			assert.Equal(t, len(tc.points), r.Count)
			assert.True(t, r.HasArea)
			assert.InDelta(t, tc.perimeter, r.Perimeter, tc.perimTol)
			assert.InDelta(t, tc.area, r.Area, 1)
		})
	}

	r := polylength(WGS84, [][2]float64{{90, 0}, {0, 0}, {0, 90}})
	assert.InDelta(t, 20020719, r.Perimeter, 1)
	assert.False(t, r.HasArea)
	assert.Zero(t, r.Area)
}

func TestPolygonReverseSign(t *testing.T) {
	lat := []float64{2, 1, 3}
	lon := []float64{1, 2, 3}
	const r = 18454562325.45119
	a0 := WGS84.Area()
	require.InDelta(t, 510065621724088.5093, a0, 0.5)

	cases := []struct {
		reverse, sign bool
		want          float64
	}{
		{false, true, r},
		{false, false, r},
		{true, true, -r},
		{true, false, a0 - r},
	}

	p := WGS84.PolygonInit(false)
	p.AddPoint(lat[0], lon[0])
	p.AddPoint(lat[1], lon[1])
	for _, c := range cases {
		res := p.TestPoint(lat[2], lon[2], c.reverse, c.sign)
		assert.InDelta(t, c.want, res.Area, 0.5, "testpoint %+v", c)
		assert.Equal(t, 3, res.Count)
	}
	var s12, azi1 float64
	WGS84.Inverse(lat[1], lon[1], lat[2], lon[2], &s12, &azi1, nil)
	for _, c := range cases {
		res := p.TestEdge(azi1, s12, c.reverse, c.sign)
		assert.InDelta(t, c.want, res.Area, 0.5, "testedge %+v", c)
	}
	// nothing was added by the tests
	assert.Equal(t, 2, p.Count())

	p.AddPoint(lat[2], lon[2])
	for _, c := range cases {
		res := p.Compute(c.reverse, c.sign)
		assert.InDelta(t, c.want, res.Area, 0.5, "compute %+v", c)
	}

	area, perimeter := WGS84.PolygonArea(lat, lon)
	assert.InDelta(t, r, area, 0.5)
	assert.InDelta(t, p.Compute(false, true).Perimeter, perimeter, 1e-9)
}

func TestPolygonDegenerate(t *testing.T) {
	p := WGS84.NewPolygon(false)
	r := p.Compute(false, true)
	assert.Equal(t, 0, r.Count)
	assert.Zero(t, r.Area)
	assert.Zero(t, r.Perimeter)

	r = p.TestPoint(1, 1, false, true)
	assert.Equal(t, 1, r.Count)
	assert.Zero(t, r.Area)
	assert.Zero(t, r.Perimeter)

	r = p.TestEdge(90, 1000, false, true)
	assert.Equal(t, 0, r.Count)
	assert.True(t, math.IsNaN(r.Area))
	assert.True(t, math.IsNaN(r.Perimeter))

	// edges before the first point are ignored
	p.AddEdge(90, 1000)
	assert.Equal(t, 0, p.Count())

	p.AddPoint(1, 1)
	r = p.Compute(false, true)
	assert.Equal(t, 1, r.Count)
	assert.Zero(t, r.Area)
	assert.Zero(t, r.Perimeter)

	p = WGS84.NewPolygon(true)
	r = p.Compute(false, true)
	assert.Zero(t, r.Perimeter)
	r = p.TestPoint(1, 1, false, true)
	assert.Zero(t, r.Perimeter)
	r = p.TestEdge(90, 1000, false, true)
	assert.True(t, math.IsNaN(r.Perimeter))
	assert.False(t, r.HasArea)
	assert.Zero(t, r.Area)
	p.AddPoint(1, 1)
	r = p.Compute(false, true)
	assert.Zero(t, r.Perimeter)
	p.AddPoint(1, 1)
	r = p.TestEdge(90, 1000, false, true)
	assert.InDelta(t, 1000, r.Perimeter, 1e-10)
	r = p.TestPoint(2, 2, false, true)
	assert.InDelta(t, 156876.149, r.Perimeter, 0.5e-3)
}

func TestPolygonMultipleCircuits(t *testing.T) {
	const (
		lat = 45.0
		azi = 39.2144607176828184218
		s   = 8420705.40957178156285
		r   = 39433884866571.4277
	)
	a0 := WGS84.Area()
	p := WGS84.PolygonInit(false)
	for i := 0; i < 2; i++ {
		p.AddPoint(lat, 60)
		p.AddPoint(lat, 180)
		p.AddPoint(lat, -60)
	}
	for i := 3.0; i <= 4; i++ {
		p.AddPoint(lat, 60)
		p.AddPoint(lat, 180)
		cases := []struct {
			reverse, sign bool
			want          float64
		}{
			{false, true, i * r},
			{false, false, i * r},
			{true, true, -i * r},
			{true, false, -i*r + a0},
		}
		for _, c := range cases {
			assert.InDelta(t, c.want, p.TestPoint(lat, -60, c.reverse, c.sign).Area, 0.5, "testpoint %v %+v", i, c)
			assert.InDelta(t, c.want, p.TestEdge(azi, s, c.reverse, c.sign).Area, 0.5, "testedge %v %+v", i, c)
		}
		p.AddPoint(lat, -60)
		for _, c := range cases {
			assert.InDelta(t, c.want, p.Compute(c.reverse, c.sign).Area, 0.5, "compute %v %+v", i, c)
		}
	}
}

func TestPolygonAddEdge(t *testing.T) {
	pts := [][2]float64{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}
	want := planimeter(WGS84, pts)

	p := WGS84.NewPolygon(false)
	p.AddPoint(pts[0][0], pts[0][1])
	for i := 1; i < len(pts); i++ {
		var s12, azi1 float64
		WGS84.Inverse(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1], &s12, &azi1, nil)
		p.AddEdge(azi1, s12)
	}
	got := p.Compute(false, true)
	assert.Equal(t, want.Count, got.Count)
	assert.InDelta(t, want.Perimeter, got.Perimeter, 1e-6)
	assert.InDelta(t, want.Area, got.Area, 1)

	lat, lon := p.CurrentPoint()
	assert.InDelta(t, 1, lat, 1e-9)
	assert.InDelta(t, 0, lon, 1e-9)

	p.Clear()
	assert.Equal(t, 0, p.Count())
	lat, _ = p.CurrentPoint()
	assert.True(t, math.IsNaN(lat))
}

func TestPolygonTrialsUsePlainSums(t *testing.T) {
	p := WGS84.NewPolygon(true)
	p.AddPoint(0, 0)
	// A running length of 1 m with a low-order part just under half an ulp.
	p.perimeter.Add(1)
	p.perimeter.Add(1.1e-16)
	require.Equal(t, 1.0, p.perimeter.Value())

	// The trial edge is added to the rounded value and the low-order part
	// is lost.
	assert.Equal(t, 1.0, p.TestEdge(90, 1.1e-16, false, true).Perimeter)
	p.AddEdge(90, 1.1e-16)
	assert.Equal(t, math.Nextafter(1, 2), p.Compute(false, true).Perimeter)

	q := WGS84.NewPolygon(false)
	q.AddPoint(0, 0)
	q.AddPoint(0, 90)
	r1 := WGS84.GenInverse(0, 90, 10, 45, Distance|Area)
	r2 := WGS84.GenInverse(10, 45, 0, 0, Distance|Area)
	perimeter := q.perimeter.Value() + r1.Distance + r2.Distance
	area := q.area.Value() + r1.Area + r2.Area
	crossings := q.crossings + transit(90, 45) + transit(45, 0)
	got := q.TestPoint(10, 45, false, true)
	assert.Equal(t, perimeter, got.Perimeter)
	assert.Equal(t, reduceArea(area, WGS84.Area(), crossings, false, true), got.Area)
}

func TestTransit(t *testing.T) {
	assert.Equal(t, 1, transit(-10, 10))
	assert.Equal(t, -1, transit(10, -10))
	assert.Equal(t, 0, transit(10, 20))
	// the antimeridian is not counted
	assert.Equal(t, 0, transit(170, -170))
	assert.Equal(t, 1, transit(-1, 0))
	assert.Equal(t, -1, transit(0, -1))
	assert.Equal(t, 0, transitDirect(10, 20))
	assert.Equal(t, 1, transitDirect(350, 370))
	assert.Equal(t, 1, transitDirect(10, -10))
	assert.Equal(t, 0, transitDirect(-10, -350))
}

func TestPolygonManyVertices(t *testing.T) {
	// The long edges keep the running area sum near 1e14 m^2 where one ulp
	// is about 0.02 m^2.
	corners := [][2]float64{{44, 0}, {44, 170}, {45, 170}, {45, 0}}
	splits := []int{100000, 100, 100000, 100}
	want := planimeter(WGS84, corners)

	// Subdividing each edge along its own geodesic leaves the area unchanged.
	var verts [][2]float64
	for i, n := range splits {
		a, b := corners[i], corners[(i+1)%len(corners)]
		l := WGS84.InverseLine(a[0], a[1], b[0], b[1], Latitude|Longitude|DistanceIn)
		for k := 0; k < n; k++ {
			r := l.Position(l.Distance13()*float64(k)/float64(n), Latitude|Longitude)
			verts = append(verts, [2]float64{r.Lat2, r.Lon2})
		}
	}

	p := WGS84.NewPolygon(false)
	var exact Accumulator
	naive := 0.0
	for i, v := range verts {
		p.AddPoint(v[0], v[1])
		w := verts[(i+1)%len(verts)]
		S12 := WGS84.GenInverse(v[0], v[1], w[0], w[1], Area).Area
		exact.Add(S12)
		naive += S12
	}
	got := p.Compute(false, true)
	require.Equal(t, len(verts), got.Count)
	assert.InEpsilon(t, want.Perimeter, got.Perimeter, 1e-9)
	assert.InEpsilon(t, want.Area, got.Area, 1e-8)

	// The same edge terms summed naively drift away from their exact sum;
	// the polygon result does not.
	exactArea := reduceAreaAcc(&exact, WGS84.Area(), 0, false, true)
	naiveArea := reduceArea(naive, WGS84.Area(), 0, false, true)
	assert.Equal(t, exactArea, got.Area)
	assert.Greater(t, math.Abs(naiveArea-exactArea), 1e-4)
	assert.Greater(t, math.Abs(naiveArea-exactArea), math.Abs(got.Area-exactArea))
}
