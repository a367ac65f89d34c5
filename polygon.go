package geodesic

import "math"

// Polygon struct for accumulating information about a geodesic polygon.
// Used for computing the perimeter and area of a polygon.
// This must be initialized from Ellipsoid.PolygonInit or Ellipsoid.NewPolygon
// before use.
type Polygon struct {
	e          *Ellipsoid
	lat, lon   float64
	lat0, lon0 float64
	area       Accumulator
	perimeter  Accumulator
	polyline   bool
	crossings  int
	num        int
}

// PolygonResult is returned by Polygon.Compute, Polygon.TestPoint and
// Polygon.TestEdge.
type PolygonResult struct {
	// Count is the number of vertices.
	Count int
	// Perimeter of the polygon or length of the polyline (meters).
	Perimeter float64
	// Area of the polygon (meters squared). Zero for polylines.
	Area float64
	// HasArea is false for polylines.
	HasArea bool
}

// PolygonInit initializes a polygon.
// Param polyline for polyline instead of a polygon.
//
// If polyline is not set, then the sequence of vertices and edges added by
// Polygon.AddPoint() and Polygon.AddEdge() define a polygon and
// the perimeter and area are returned by Polygon.Compute().
// If polyline is set, then the vertices and edges define a polyline and
// only the perimeter is returned by Polygon.Compute().
//
// The area and perimeter are accumulated at two times the standard floating
// point precision to guard against the loss of accuracy with many-sided
// polygons.  At any point you can ask for the perimeter and area so far.
func (e *Ellipsoid) PolygonInit(polyline bool) Polygon {
	p := Polygon{e: e, polyline: polyline}
	p.Clear()
	return p
}

// NewPolygon is like PolygonInit but returns a pointer.
func (e *Ellipsoid) NewPolygon(polyline bool) *Polygon {
	p := e.PolygonInit(polyline)
	return &p
}

// Clear the polygon, allowing a new polygon to be started.
func (p *Polygon) Clear() {
	p.lat, p.lon = math.NaN(), math.NaN()
	p.lat0, p.lon0 = math.NaN(), math.NaN()
	p.area.Reset()
	p.perimeter.Reset()
	p.crossings = 0
	p.num = 0
}

// Count returns the number of vertices added so far.
func (p *Polygon) Count() int {
	return p.num
}

// CurrentPoint returns the last vertex added, or NaNs for an empty polygon.
func (p *Polygon) CurrentPoint() (lat, lon float64) {
	return p.lat, p.lon
}

func (p *Polygon) edgeMask() Mask {
	if p.polyline {
		return Distance
	}
	return Distance | Area
}

// AddPoint adds a point to the polygon or polyline.
//
// Param lat is the latitude of the point (degrees).
// Param lon is the longitude of the point (degrees).
func (p *Polygon) AddPoint(lat, lon float64) {
	if p.num == 0 {
		p.lat0, p.lat = lat, lat
		p.lon0, p.lon = lon, lon
	} else {
		r := p.e.GenInverse(p.lat, p.lon, lat, lon, p.edgeMask())
		p.perimeter.Add(r.Distance)
		if !p.polyline {
			p.area.Add(r.Area)
			p.crossings += transit(p.lon, lon)
		}
		p.lat, p.lon = lat, lon
	}
	p.num++
}

// AddEdge adds an edge to the polygon or polyline. It does nothing until a
// first point has been added with AddPoint.
//
// Param azi is the azimuth at current point (degrees).
// Param s is the distance from current point to next point (meters).
func (p *Polygon) AddEdge(azi, s float64) {
	if p.num == 0 {
		return
	}
	mask := Latitude | Longitude
	if !p.polyline {
		mask |= Area
	}
	r := p.e.GenDirect(p.lat, p.lon, azi, LongUnroll, s, mask)
	p.perimeter.Add(s)
	if !p.polyline {
		p.area.Add(r.Area)
		p.crossings += transitDirect(p.lon, r.Lon2)
	}
	p.lat, p.lon = r.Lat2, r.Lon2
	p.num++
}

// Compute the results for a polygon
//
// Param reverse, if set then clockwise (instead of
// counter-clockwise) traversal counts as a positive area.
// Param sign, if set then return a signed result for the area if
// the polygon is traversed in the "wrong" direction instead of returning
// the area for the rest of the earth.
//
// Arbitrarily complex polygons are allowed.  In the case of
// self-intersecting polygons the area is accumulated "algebraically", e.g.,
// the areas of the 2 loops in a figure-8 polygon will partially cancel.
// There's no need to "close" the polygon by repeating the first vertex.
//
// More points can be added to the polygon after this call.
func (p *Polygon) Compute(reverse, sign bool) PolygonResult {
	res := PolygonResult{Count: p.num, HasArea: !p.polyline}
	if p.num < 2 {
		return res
	}
	if p.polyline {
		res.Perimeter = p.perimeter.Value()
		return res
	}
	r := p.e.GenInverse(p.lat, p.lon, p.lat0, p.lon0, Distance|Area)
	res.Perimeter = p.perimeter.Sum(r.Distance)
	t := p.area
	t.Add(r.Area)
	res.Area = reduceAreaAcc(&t, p.e.Area(),
		p.crossings+transit(p.lon, p.lon0), reverse, sign)
	return res
}

// TestPoint returns the results for the polygon with an extra vertex
// (lat, lon) appended, without adding it. The closing edge is included.
// The trial edges are summed in plain float64 arithmetic.
func (p *Polygon) TestPoint(lat, lon float64, reverse, sign bool) PolygonResult {
	res := PolygonResult{Count: p.num + 1, HasArea: !p.polyline}
	if p.num == 0 {
		return res
	}
	perimeter, area := p.perimeter.Value(), p.area.Value()
	crossings := p.crossings
	n := 2
	if p.polyline {
		n = 1
	}
	for i := 0; i < n; i++ {
		lat1, lon1, lat2, lon2 := p.lat, p.lon, lat, lon
		if i != 0 {
			lat1, lon1, lat2, lon2 = lat, lon, p.lat0, p.lon0
		}
		r := p.e.GenInverse(lat1, lon1, lat2, lon2, p.edgeMask())
		perimeter += r.Distance
		if !p.polyline {
			area += r.Area
			crossings += transit(lon1, lon2)
		}
	}
	res.Perimeter = perimeter
	if p.polyline {
		return res
	}
	res.Area = reduceArea(area, p.e.Area(), crossings, reverse, sign)
	return res
}

// TestEdge returns the results for the polygon with an extra edge of
// azimuth azi (degrees) and length s (meters) appended, without adding it.
// With no points yet, Perimeter and Area are NaN and Count is 0.
func (p *Polygon) TestEdge(azi, s float64, reverse, sign bool) PolygonResult {
	res := PolygonResult{HasArea: !p.polyline}
	if p.num == 0 {
		res.Perimeter = math.NaN()
		if !p.polyline {
			res.Area = math.NaN()
		}
		return res
	}
	res.Count = p.num + 1
	perimeter := p.perimeter.Value() + s
	if p.polyline {
		res.Perimeter = perimeter
		return res
	}
	area := p.area.Value()
	crossings := p.crossings
	d := p.e.GenDirect(p.lat, p.lon, azi, LongUnroll, s, Latitude|Longitude|Area)
	area += d.Area
	crossings += transitDirect(p.lon, d.Lon2)
	crossings += transit(d.Lon2, p.lon0)
	r := p.e.GenInverse(d.Lat2, d.Lon2, p.lat0, p.lon0, Distance|Area)
	perimeter += r.Distance
	area += r.Area
	res.Perimeter = perimeter
	res.Area = reduceArea(area, p.e.Area(), crossings, reverse, sign)
	return res
}

// PolygonArea returns the area and perimeter of the polygon with vertices
// at lats[i], lons[i]. Counter-clockwise traversal counts as a positive
// area and the area is signed. Extra elements of the longer slice are
// ignored.
func (e *Ellipsoid) PolygonArea(lats, lons []float64) (area, perimeter float64) {
	p := e.PolygonInit(false)
	n := min(len(lats), len(lons))
	for i := 0; i < n; i++ {
		p.AddPoint(lats[i], lons[i])
	}
	r := p.Compute(false, true)
	return r.Area, r.Perimeter
}

// transit returns 1 or -1 if crossing the prime meridian in the east or
// west direction going from lon1 to lon2, otherwise 0.
func transit(lon1, lon2 float64) int {
	// Compute lon12 the same way as the inverse solver so the results
	// agree for nearly cancelling longitudes.
	lon12, _ := angDiff(lon1, lon2)
	lon1 = angNormalize(lon1)
	lon2 = angNormalize(lon2)
	switch {
	case lon12 > 0 && ((lon1 < 0 && lon2 >= 0) || (lon1 > 0 && lon2 == 0)):
		return 1
	case lon12 < 0 && lon1 >= 0 && lon2 < 0:
		return -1
	}
	return 0
}

// transitDirect counts meridian crossings for unrolled longitudes, which
// may span several turns.
func transitDirect(lon1, lon2 float64) int {
	lon1 = math.Remainder(lon1, 720)
	lon2 = math.Remainder(lon2, 720)
	return outsideTurn(lon2) - outsideTurn(lon1)
}

func outsideTurn(lon float64) int {
	if lon >= 0 && lon < 360 {
		return 0
	}
	return 1
}

// reduceAreaAcc brings the accumulated area into range. area0 is the total
// area of the ellipsoid and crossings the number of prime meridian
// crossings; an odd count means the polygon encircles a pole.
func reduceAreaAcc(area *Accumulator, area0 float64, crossings int, reverse, sign bool) float64 {
	area.Remainder(area0)
	if crossings&1 != 0 {
		if area.Value() < 0 {
			area.Add(area0 / 2)
		} else {
			area.Add(-area0 / 2)
		}
	}
	// area is with the clockwise sense; flip unless reverse requested.
	if !reverse {
		area.Negate()
	}
	if sign {
		if area.Value() > area0/2 {
			area.Add(-area0)
		} else if area.Value() <= -area0/2 {
			area.Add(area0)
		}
	} else {
		if area.Value() >= area0 {
			area.Add(-area0)
		} else if area.Value() < 0 {
			area.Add(area0)
		}
	}
	return 0 + area.Value()
}

// reduceArea is reduceAreaAcc for a plain float64.
func reduceArea(area, area0 float64, crossings int, reverse, sign bool) float64 {
	area = math.Remainder(area, area0)
	if crossings&1 != 0 {
		if area < 0 {
			area += area0 / 2
		} else {
			area -= area0 / 2
		}
	}
	if !reverse {
		area = -area
	}
	if sign {
		if area > area0/2 {
			area -= area0
		} else if area <= -area0/2 {
			area += area0
		}
	} else {
		if area >= area0 {
			area -= area0
		} else if area < 0 {
			area += area0
		}
	}
	return 0 + area
}
