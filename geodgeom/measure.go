// Package geodgeom measures go-geom geometries on an ellipsoid. Coordinates
// are taken as [lon, lat] in degrees, the GeoJSON order; ordinates past the
// second are ignored.
package geodgeom

import (
	"math"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/geodlab/geodesic"
)

// ErrUnsupportedGeometry is returned by Measure for geometry types it
// cannot measure.
var ErrUnsupportedGeometry = errors.New("unsupported geometry")

// Measurement holds the geodesic measures of a geometry. Lines contribute
// to Length, polygon rings to Perimeter and Area.
type Measurement struct {
	// Length of line geometries (meters).
	Length float64
	// Perimeter of polygon rings, holes included (meters).
	Perimeter float64
	// Area of polygons with holes removed (meters squared).
	Area float64
}

func (m *Measurement) add(o Measurement) {
	m.Length += o.Length
	m.Perimeter += o.Perimeter
	m.Area += o.Area
}

// Measure returns the length, perimeter and area of g on e. Rings may be
// given in either orientation; each ring is assumed to enclose less than
// half of the ellipsoid.
func Measure(e *geodesic.Ellipsoid, g geom.T) (Measurement, error) {
	var m Measurement
	switch v := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return m, nil
	case *geom.LineString:
		m.Length = lineLength(e, v)
	case *geom.MultiLineString:
		for i := 0; i < v.NumLineStrings(); i++ {
			m.Length += lineLength(e, v.LineString(i))
		}
	case *geom.LinearRing:
		m.Area, m.Perimeter = ringArea(e, v)
	case *geom.Polygon:
		m = polygonMeasure(e, v)
	case *geom.MultiPolygon:
		for i := 0; i < v.NumPolygons(); i++ {
			m.add(polygonMeasure(e, v.Polygon(i)))
		}
	case *geom.GeometryCollection:
		for _, c := range v.Geoms() {
			cm, err := Measure(e, c)
			if err != nil {
				return Measurement{}, err
			}
			m.add(cm)
		}
	default:
		return Measurement{}, errors.Wrapf(ErrUnsupportedGeometry, "cannot measure %T", v)
	}
	return m, nil
}

type coordSeq interface {
	NumCoords() int
	Coord(i int) geom.Coord
}

func addCoords(p *geodesic.Polygon, s coordSeq, closed bool) {
	n := s.NumCoords()
	// GeoJSON and WKB rings repeat the first coordinate at the end.
	if closed && n > 1 {
		first, last := s.Coord(0), s.Coord(n-1)
		if first.X() == last.X() && first.Y() == last.Y() {
			n--
		}
	}
	for i := 0; i < n; i++ {
		c := s.Coord(i)
		p.AddPoint(c.Y(), c.X())
	}
}

func lineLength(e *geodesic.Ellipsoid, l *geom.LineString) float64 {
	p := e.PolygonInit(true)
	addCoords(&p, l, false)
	return p.Compute(false, true).Perimeter
}

func ringArea(e *geodesic.Ellipsoid, r *geom.LinearRing) (area, perimeter float64) {
	p := e.PolygonInit(false)
	addCoords(&p, r, true)
	res := p.Compute(false, true)
	return math.Abs(res.Area), res.Perimeter
}

func polygonMeasure(e *geodesic.Ellipsoid, p *geom.Polygon) Measurement {
	var m Measurement
	for i := 0; i < p.NumLinearRings(); i++ {
		area, perimeter := ringArea(e, p.LinearRing(i))
		m.Perimeter += perimeter
		if i == 0 {
			m.Area += area
		} else {
			m.Area -= area
		}
	}
	return m
}
