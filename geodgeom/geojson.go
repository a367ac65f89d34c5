package geodgeom

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// DecodeGeoJSON parses a GeoJSON geometry, Feature or FeatureCollection
// and returns the geometries it holds. Features without a geometry are
// skipped.
func DecodeGeoJSON(data []byte) ([]geom.T, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errors.Wrap(err, "decode geojson")
	}
	switch head.Type {
	case "Feature":
		var f geojson.Feature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "decode geojson feature")
		}
		if f.Geometry == nil {
			return nil, nil
		}
		return []geom.T{f.Geometry}, nil
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, errors.Wrap(err, "decode geojson feature collection")
		}
		gs := make([]geom.T, 0, len(fc.Features))
		for _, f := range fc.Features {
			if f != nil && f.Geometry != nil {
				gs = append(gs, f.Geometry)
			}
		}
		return gs, nil
	default:
		var g geom.T
		if err := geojson.Unmarshal(data, &g); err != nil {
			return nil, errors.Wrapf(err, "decode geojson %q", head.Type)
		}
		return []geom.T{g}, nil
	}
}
