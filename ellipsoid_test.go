package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEllipsoid(t *testing.T) {
	e, err := NewEllipsoid(6378137, 1/298.257223563)
	require.NoError(t, err)
	assert.Equal(t, 6378137.0, e.Radius())
	assert.InDelta(t, 6356752.314245179, e.MinorRadius(), 1e-8)
	assert.InDelta(t, 510065621724088.5093, e.Area(), 0.5)
	assert.InDelta(t, e.Area()/(4*math.Pi), e.AuthalicRadiusSquared(), 1e-3)
	assert.False(t, e.Spherical())

	for _, p := range [][2]float64{
		{0, 0},
		{-1, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{1, 1},
		{1, 2},
		{1, math.NaN()},
		{1, math.Inf(-1)},
	} {
		_, err := NewEllipsoid(p[0], p[1])
		assert.ErrorIs(t, err, ErrInvalidEllipsoid, "%v", p)
	}
	assert.Panics(t, func() { MustEllipsoid(0, 0) })
	assert.Panics(t, func() { NewSpherical(-1) })
}

func TestEllipsoidPresets(t *testing.T) {
	assert.InDelta(t, 1/298.257223563, WGS84.Flattening(), 1e-18)
	assert.InDelta(t, 1/298.257222101, GRS80.Flattening(), 1e-18)
	assert.Equal(t, 6378137.0, GRS80.Radius())
	assert.True(t, Globe.Spherical())

	// authalic radius of a sphere is its radius
	assert.InDelta(t, 1, Globe.AuthalicRadiusSquared()/(6378137.0*6378137.0), 1e-15)

	// prolate ellipsoids have a larger area than the sphere on their equator
	p := MustEllipsoid(6.4e6, -1/150.0)
	assert.Greater(t, p.Area(), 4*math.Pi*6.4e6*6.4e6)
	assert.Greater(t, p.MinorRadius(), p.Radius())
}
