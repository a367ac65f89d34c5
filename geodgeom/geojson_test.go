package geodgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/geodlab/geodesic"
)

const octantJSON = `{"type":"Polygon","coordinates":[[[0,90],[0,0],[90,0],[0,90]]]}`

func TestDecodeGeoJSON(t *testing.T) {
	gs, err := DecodeGeoJSON([]byte(octantJSON))
	require.NoError(t, err)
	require.Len(t, gs, 1)
	_, ok := gs[0].(*geom.Polygon)
	require.True(t, ok)
	m, err := Measure(geodesic.WGS84, gs[0])
	require.NoError(t, err)
	assert.InDelta(t, 63758202715511.0, m.Area, 1)

	gs, err = DecodeGeoJSON([]byte(`{"type":"Feature","properties":{"name":"octant"},"geometry":` + octantJSON + `}`))
	require.NoError(t, err)
	require.Len(t, gs, 1)

	gs, err = DecodeGeoJSON([]byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":` + octantJSON + `},
		{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[0,0],[1,0]]}}
	]}`))
	require.NoError(t, err)
	require.Len(t, gs, 2)
	_, ok = gs[1].(*geom.LineString)
	assert.True(t, ok)

	_, err = DecodeGeoJSON([]byte(`{"type":`))
	assert.Error(t, err)
	_, err = DecodeGeoJSON([]byte(`{"type":"Blob","coordinates":[]}`))
	assert.Error(t, err)
}
