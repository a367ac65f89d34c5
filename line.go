package geodesic

import "math"

// Line is a geodesic ray from a starting point and azimuth. It carries the
// ellipsoid constants it needs and can be queried for the position of any
// point along it. A Line may be shared between goroutines as long as the
// point 3 setters are not called concurrently with readers.
type Line struct {
	lat1, lon1, azi1 float64
	a, f, b, c2, f1  float64

	salp0, calp0, k2                                     float64
	salp1, calp1, ssig1, csig1, dn1, stau1, ctau1, somg1 float64
	comg1                                                float64
	a1m1, a2m1, a3c, b11, b21, b31, a4, b41              float64

	c1a  [nC1 + 1]float64
	c1pa [nC1p + 1]float64
	c2a  [nC2 + 1]float64
	c3a  [nC3]float64
	c4a  [nC4]float64

	a13, s13 float64
	caps     Mask
}

// Line returns the geodesic starting at (lat1, lon1) with azimuth azi1
// (degrees). caps selects which quantities later Position calls may
// produce; zero means Latitude|Longitude|Azimuth|DistanceIn.
func (e *Ellipsoid) Line(lat1, lon1, azi1 float64, caps Mask) *Line {
	azi1 = angNormalize(azi1)
	// Guard against underflow in salp0
	salp1, calp1 := sincosd(angRound(azi1))
	return e.newLine(lat1, lon1, azi1, salp1, calp1, caps)
}

// DirectLine is Line with point 3 placed at distance s12 from the start.
func (e *Ellipsoid) DirectLine(lat1, lon1, azi1, s12 float64, caps Mask) *Line {
	return e.GenDirectLine(lat1, lon1, azi1, NoFlags, s12, caps)
}

// GenDirectLine is Line with point 3 placed at s12a12, which is a distance
// in meters, or an arc in degrees if flags has ArcMode.
func (e *Ellipsoid) GenDirectLine(lat1, lon1, azi1 float64, flags Flags, s12a12 float64, caps Mask) *Line {
	l := e.Line(lat1, lon1, azi1, caps)
	l.GenSetDistance(flags, s12a12)
	return l
}

// InverseLine returns the geodesic from (lat1, lon1) to (lat2, lon2) with
// point 3 placed at point 2.
func (e *Ellipsoid) InverseLine(lat1, lon1, lat2, lon2 float64, caps Mask) *Line {
	sol := e.solveInverse(lat1, lon1, lat2, lon2, None)
	azi1 := atan2d(sol.salp1, sol.calp1)
	if caps == 0 {
		caps = defaultLineCaps
	}
	// a12 has to be convertible to a distance
	if caps&(outAll&DistanceIn) != 0 {
		caps |= Distance
	}
	l := e.newLine(lat1, lon1, azi1, sol.salp1, sol.calp1, caps)
	l.SetArc(sol.a12)
	return l
}

func (e *Ellipsoid) newLine(lat1, lon1, azi1, salp1, calp1 float64, caps Mask) *Line {
	l := &Line{
		a:  e.a,
		f:  e.f,
		b:  e.b,
		c2: e.c2,
		f1: e.f1,
	}
	if caps == 0 {
		caps = defaultLineCaps
	}
	// latitude, azimuth and unrolling are always available
	l.caps = caps | Latitude | Azimuth | Mask(LongUnroll)

	l.lat1 = latFix(lat1)
	l.lon1 = lon1
	l.azi1 = azi1
	l.salp1 = salp1
	l.calp1 = calp1

	sbet1, cbet1 := sincosd(angRound(l.lat1))
	sbet1 *= l.f1
	// cbet1 = +epsilon at the poles
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)
	l.dn1 = math.Sqrt(1 + e.ep2*sq(sbet1))

	// sin(alp1) * cos(bet1) = sin(alp0), alp0 in [0, pi/2 - |bet1|]
	l.salp0 = l.salp1 * cbet1
	l.calp0 = math.Hypot(l.calp1, l.salp1*sbet1)
	// tan(bet1) = tan(sig1) * cos(alp1); sig = 0 is the nearest northward
	// crossing of the equator. tan(omg1) = sin(alp0) * tan(sig1).
	l.ssig1 = sbet1
	l.somg1 = l.salp0 * sbet1
	if sbet1 != 0 || l.calp1 != 0 {
		l.csig1 = cbet1 * l.calp1
	} else {
		l.csig1 = 1
	}
	l.comg1 = l.csig1
	l.ssig1, l.csig1 = norm2(l.ssig1, l.csig1)

	l.k2 = sq(l.calp0) * e.ep2
	eps := epsOf(l.k2)

	if l.caps&capC1 != 0 {
		l.a1m1 = a1m1f(eps)
		c1f(eps, l.c1a[:])
		l.b11 = sinCosSeries(true, l.ssig1, l.csig1, l.c1a[:])
		s, c := math.Sincos(l.b11)
		// tau1 = sig1 + B11
		l.stau1 = l.ssig1*c + l.csig1*s
		l.ctau1 = l.csig1*c - l.ssig1*s
	}
	if l.caps&capC1p != 0 {
		c1pf(eps, l.c1pa[:])
	}
	if l.caps&capC2 != 0 {
		l.a2m1 = a2m1f(eps)
		c2f(eps, l.c2a[:])
		l.b21 = sinCosSeries(true, l.ssig1, l.csig1, l.c2a[:])
	}
	if l.caps&capC3 != 0 {
		e.c3f(eps, l.c3a[:])
		l.a3c = -l.f * l.salp0 * e.a3f(eps)
		l.b31 = sinCosSeries(true, l.ssig1, l.csig1, l.c3a[:])
	}
	if l.caps&capC4 != 0 {
		e.c4f(eps, l.c4a[:])
		// a^2 * e^2 * cos(alp0) * sin(alp0)
		l.a4 = sq(l.a) * l.calp0 * l.salp0 * e.e2
		l.b41 = sinCosSeries(false, l.ssig1, l.csig1, l.c4a[:])
	}

	l.a13 = math.NaN()
	l.s13 = math.NaN()
	return l
}

// Position returns the point at distance s12 (meters) along the line. The
// line must have DistanceIn in its caps.
func (l *Line) Position(s12 float64, mask Mask) Result {
	return l.GenPosition(NoFlags, s12, mask)
}

// ArcPosition returns the point at arc length a12 (degrees) along the line.
func (l *Line) ArcPosition(a12 float64, mask Mask) Result {
	return l.GenPosition(ArcMode, a12, mask)
}

// GenPosition returns the point at s12a12 along the line, a distance in
// meters or, with ArcMode, an arc in degrees. Only quantities present in
// both mask and the line caps are computed. If a distance is given but the
// line lacks DistanceIn, nothing is computed and Arc is NaN.
func (l *Line) GenPosition(flags Flags, s12a12 float64, mask Mask) Result {
	r := Result{Lat1: l.lat1, Lon1: l.lon1, Azi1: l.azi1}
	outmask := mask & l.caps & outAll
	arcMode := flags&ArcMode != 0
	if !arcMode && l.caps&(DistanceIn&outAll) == 0 {
		r.Arc = math.NaN()
		return r
	}

	var sig12, ssig12, csig12, b12, ab1 float64
	var ssig2, csig2 float64
	if arcMode {
		sig12 = s12a12 * degree
		ssig12, csig12 = sincosd(s12a12)
	} else {
		tau12 := s12a12 / (l.b * (1 + l.a1m1))
		s, c := math.Sincos(tau12)
		// tau2 = tau1 + tau12
		b12 = -sinCosSeries(true, l.stau1*c+l.ctau1*s, l.ctau1*c-l.stau1*s, l.c1pa[:])
		sig12 = tau12 - (b12 - l.b11)
		ssig12, csig12 = math.Sincos(sig12)
		if math.Abs(l.f) > 0.01 {
			// The reverted series loses accuracy for |f| > 1/100; one
			// Newton step on sig12 restores it.
			ssig2 = l.ssig1*csig12 + l.csig1*ssig12
			csig2 = l.csig1*csig12 - l.ssig1*ssig12
			b12 = sinCosSeries(true, ssig2, csig2, l.c1a[:])
			serr := (1+l.a1m1)*(sig12+(b12-l.b11)) - s12a12/l.b
			sig12 -= serr / math.Sqrt(1+l.k2*sq(ssig2))
			ssig12, csig12 = math.Sincos(sig12)
		}
	}

	// sig2 = sig1 + sig12
	ssig2 = l.ssig1*csig12 + l.csig1*ssig12
	csig2 = l.csig1*csig12 - l.ssig1*ssig12
	dn2 := math.Sqrt(1 + l.k2*sq(ssig2))
	if outmask&(Distance|ReducedLength|GeodesicScale) != 0 {
		if arcMode || math.Abs(l.f) > 0.01 {
			b12 = sinCosSeries(true, ssig2, csig2, l.c1a[:])
		}
		ab1 = (1 + l.a1m1) * (b12 - l.b11)
	}
	// sin(bet2) = cos(alp0) * sin(sig2)
	sbet2 := l.calp0 * ssig2
	cbet2 := math.Hypot(l.salp0, l.calp0*csig2)
	if cbet2 == 0 {
		// salp0 = 0 and csig2 = 0: break the degeneracy
		cbet2 = tiny
		csig2 = tiny
	}
	// tan(alp0) = cos(sig2) * tan(alp2)
	salp2 := l.salp0
	calp2 := l.calp0 * csig2

	if outmask&Distance != 0 {
		if arcMode {
			r.Distance = l.b * ((1+l.a1m1)*sig12 + ab1)
		} else {
			r.Distance = s12a12
		}
	}

	if outmask&Longitude != 0 {
		e := math.Copysign(1, l.salp0) // east or west going
		// tan(omg2) = sin(alp0) * tan(sig2)
		somg2 := l.salp0 * ssig2
		comg2 := csig2
		var omg12 float64
		if flags&LongUnroll != 0 {
			omg12 = e * (sig12 -
				(math.Atan2(ssig2, csig2) - math.Atan2(l.ssig1, l.csig1)) +
				(math.Atan2(e*somg2, comg2) - math.Atan2(e*l.somg1, l.comg1)))
		} else {
			omg12 = math.Atan2(somg2*l.comg1-comg2*l.somg1, comg2*l.comg1+somg2*l.somg1)
		}
		lam12 := omg12 + l.a3c*(sig12+(sinCosSeries(true, ssig2, csig2, l.c3a[:])-l.b31))
		lon12 := lam12 / degree
		if flags&LongUnroll != 0 {
			r.Lon2 = l.lon1 + lon12
		} else {
			r.Lon2 = angNormalize(angNormalize(l.lon1) + angNormalize(lon12))
		}
	}

	if outmask&Latitude != 0 {
		r.Lat2 = atan2d(sbet2, l.f1*cbet2)
	}
	if outmask&Azimuth != 0 {
		r.Azi2 = atan2d(salp2, calp2)
	}

	if outmask&(ReducedLength|GeodesicScale) != 0 {
		b22 := sinCosSeries(true, ssig2, csig2, l.c2a[:])
		ab2 := (1 + l.a2m1) * (b22 - l.b21)
		j12 := (l.a1m1-l.a2m1)*sig12 + (ab1 - ab2)
		if outmask&ReducedLength != 0 {
			// Parenthesized products cancel accurately for coincident points.
			r.ReducedLength = l.b * ((dn2*(l.csig1*ssig2) - l.dn1*(l.ssig1*csig2)) - l.csig1*csig2*j12)
		}
		if outmask&GeodesicScale != 0 {
			t := l.k2 * (ssig2 - l.ssig1) * (ssig2 + l.ssig1) / (l.dn1 + dn2)
			r.M12 = csig12 + (t*ssig2-csig2*j12)*l.ssig1/l.dn1
			r.M21 = csig12 - (t*l.ssig1-l.csig1*j12)*ssig2/dn2
		}
	}

	if outmask&Area != 0 {
		b42 := sinCosSeries(false, ssig2, csig2, l.c4a[:])
		var salp12, calp12 float64
		if l.calp0 == 0 || l.salp0 == 0 {
			// alp12 = alp2 - alp1, used in atan2 so no need to normalize
			salp12 = salp2*l.calp1 - calp2*l.salp1
			calp12 = calp2*l.calp1 + salp2*l.salp1
		} else {
			// tan(alp2 - alp1) = calp0 * salp0 * (csig1 - csig2) /
			//   (salp0^2 + calp0^2 * csig1 * csig2)
			if csig12 <= 0 {
				salp12 = l.csig1*(1-csig12) + ssig12*l.ssig1
			} else {
				salp12 = ssig12 * (l.csig1*ssig12/(1+csig12) + l.ssig1)
			}
			salp12 *= l.calp0 * l.salp0
			calp12 = sq(l.salp0) + sq(l.calp0)*l.csig1*csig2
		}
		r.Area = l.c2*math.Atan2(salp12, calp12) + l.a4*(b42-l.b41)
	}

	r.Valid = outmask
	if arcMode {
		r.Arc = s12a12
	} else {
		r.Arc = sig12 / degree
	}
	return r
}

// SetDistance places point 3 at distance s13 (meters) from the start. It
// requires DistanceIn in the line caps.
func (l *Line) SetDistance(s13 float64) {
	l.s13 = s13
	l.a13 = l.GenPosition(NoFlags, s13, None).Arc
}

// SetArc places point 3 at arc length a13 (degrees) from the start. The
// distance s13 is only known if the line has Distance in its caps.
func (l *Line) SetArc(a13 float64) {
	l.a13 = a13
	l.s13 = math.NaN()
	if r := l.GenPosition(ArcMode, a13, Distance); r.Has(Distance) {
		l.s13 = r.Distance
	}
}

// GenSetDistance calls SetArc with ArcMode, SetDistance otherwise.
func (l *Line) GenSetDistance(flags Flags, s13a13 float64) {
	if flags&ArcMode != 0 {
		l.SetArc(s13a13)
	} else {
		l.SetDistance(s13a13)
	}
}

// Latitude of point 1 (degrees).
func (l *Line) Latitude() float64 { return l.lat1 }

// Longitude of point 1 (degrees).
func (l *Line) Longitude() float64 { return l.lon1 }

// Azimuth at point 1 (degrees).
func (l *Line) Azimuth() float64 { return l.azi1 }

// Caps returns the capabilities the line was built with.
func (l *Line) Caps() Mask { return l.caps }

// Distance13 is the distance to point 3, NaN if unset.
func (l *Line) Distance13() float64 { return l.s13 }

// Arc13 is the arc length to point 3, NaN if unset.
func (l *Line) Arc13() float64 { return l.a13 }

// EquatorialAzimuth is the azimuth (degrees) where the line crosses the
// equator northward.
func (l *Line) EquatorialAzimuth() float64 { return atan2d(l.salp0, l.calp0) }

// EquatorialArc is the arc length (degrees) from the northward equator
// crossing to point 1.
func (l *Line) EquatorialArc() float64 { return atan2d(l.ssig1, l.csig1) }

// Radius is the equatorial radius of the ellipsoid.
func (l *Line) Radius() float64 { return l.a }

// Flattening of the ellipsoid.
func (l *Line) Flattening() float64 { return l.f }
