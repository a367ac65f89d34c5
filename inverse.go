package geodesic

import "math"

// inverseMethod records which branch of the inverse solver produced a
// solution.
type inverseMethod int

const (
	methodMeridian inverseMethod = iota + 1
	methodEquatorial
	methodShortLine
	methodNewton
	methodBisection
)

func (m inverseMethod) String() string {
	switch m {
	case methodMeridian:
		return "meridian"
	case methodEquatorial:
		return "equatorial"
	case methodShortLine:
		return "short-line"
	case methodNewton:
		return "newton"
	case methodBisection:
		return "bisection"
	}
	return "unknown"
}

// inverseSolution is the raw output of solveInverse. Azimuths are kept as
// unnormalized sine/cosine pairs.
type inverseSolution struct {
	a12, s12, m12, M12, M21, S12 float64
	salp1, calp1, salp2, calp2   float64

	method     inverseMethod
	iterations int
}

// GenInverse solves the general inverse geodesic problem between
// (lat1, lon1) and (lat2, lon2). Arc is always returned; mask selects the
// remaining quantities. Lat/Lon fields echo the inputs with longitudes
// reduced to (-180, 180].
//
// The solution is found with Newton's method on the azimuth at point 1.
// If that fails to converge, which happens for very eccentric ellipsoids
// near antipodal points, bisection over a maintained bracket refines it.
func (e *Ellipsoid) GenInverse(lat1, lon1, lat2, lon2 float64, mask Mask) Result {
	sol := e.solveInverse(lat1, lon1, lat2, lon2, mask)
	outmask := mask & outAll
	r := Result{
		Lat1:  latFix(lat1),
		Lon1:  angNormalize(lon1),
		Lat2:  latFix(lat2),
		Lon2:  angNormalize(lon2),
		Arc:   sol.a12,
		Valid: outmask | Latitude | Longitude,
	}
	if outmask&Distance != 0 {
		r.Distance = sol.s12
	}
	if outmask&Azimuth != 0 {
		r.Azi1 = atan2d(sol.salp1, sol.calp1)
		r.Azi2 = atan2d(sol.salp2, sol.calp2)
	}
	if outmask&ReducedLength != 0 {
		r.ReducedLength = sol.m12
	}
	if outmask&GeodesicScale != 0 {
		r.M12 = sol.M12
		r.M21 = sol.M21
	}
	if outmask&Area != 0 {
		r.Area = sol.S12
	}
	return r
}

func geodInverse(e *Ellipsoid, lat1, lon1, lat2, lon2 float64, s12, azi1, azi2 *float64) {
	var mask Mask
	if s12 != nil {
		mask |= Distance
	}
	if azi1 != nil || azi2 != nil {
		mask |= Azimuth
	}
	r := e.GenInverse(lat1, lon1, lat2, lon2, mask)
	if s12 != nil {
		*s12 = r.Distance
	}
	if azi1 != nil {
		*azi1 = r.Azi1
	}
	if azi2 != nil {
		*azi2 = r.Azi2
	}
}

func (e *Ellipsoid) solveInverse(lat1, lon1, lat2, lon2 float64, mask Mask) inverseSolution {
	var sol inverseSolution
	outmask := mask & outAll

	// Longitude difference in [-180, 180]; -180 only for west-going
	// geodesics, 180 for east-going and meridional ones.
	lon12, lon12s := angDiff(lon1, lon2)
	lonsign := 1.0
	if lon12 < 0 {
		lonsign = -1
	}
	// If very close to being on the same half-meridian, then make it so.
	lon12 = lonsign * angRound(lon12)
	lon12s = angRound((180 - lon12) - lonsign*lon12s)
	lam12 := lon12 * degree
	var slam12, clam12 float64
	if lon12 > 90 {
		slam12, clam12 = sincosd(lon12s)
		clam12 = -clam12
	} else {
		slam12, clam12 = sincosd(lon12)
	}

	// If really close to the equator, treat as on equator.
	lat1 = angRound(latFix(lat1))
	lat2 = angRound(latFix(lat2))
	// Point 1 gets the larger |lat|; a NaN latitude becomes lat1.
	swapp := 1.0
	if math.Abs(lat1) < math.Abs(lat2) || math.IsNaN(lat2) {
		swapp = -1
		lonsign *= -1
		lat1, lat2 = lat2, lat1
	}
	// Make lat1 <= 0
	latsign := -1.0
	if lat1 < 0 {
		latsign = 1
	}
	lat1 *= latsign
	lat2 *= latsign
	// Now
	//
	//     0 <= lon12 <= 180
	//     -90 <= lat1 <= 0
	//     lat1 <= lat2 <= -lat1
	//
	// and lonsign, swapp, latsign record the transformation.

	sbet1, cbet1 := sincosd(lat1)
	sbet1 *= e.f1
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)
	sbet2, cbet2 := sincosd(lat2)
	sbet2 *= e.f1
	sbet2, cbet2 = norm2(sbet2, cbet2)
	cbet2 = math.Max(tiny, cbet2)

	// If cbet1 < -sbet1, cbet2 - cbet1 is a sensitive measure of
	// |bet1| - |bet2|, otherwise |sbet2| + sbet1 is. When these vanish force
	// bet2 = +/-bet1 exactly so lambda12 sees the symmetry.
	if cbet1 < -sbet1 {
		if cbet2 == cbet1 {
			sbet2 = math.Copysign(sbet1, sbet2)
		}
	} else if math.Abs(sbet2) == -sbet1 {
		cbet2 = cbet1
	}

	dn1 := math.Sqrt(1 + e.ep2*sq(sbet1))
	dn2 := math.Sqrt(1 + e.ep2*sq(sbet2))

	var (
		a12, sig12, s12x, m12x float64
		salp1, calp1           float64
		salp2, calp2           float64
		M12, M21               float64
		// somg12 == 2 marks that it needs to be calculated
		omg12, somg12, comg12 = 0.0, 2.0, 0.0
	)
	lengthMask := Distance | ReducedLength | outmask&GeodesicScale

	meridian := lat1 == -90 || slam12 == 0
	if meridian {
		// Endpoints are on a single full meridian, so the geodesic might
		// lie on a meridian.
		calp1, salp1 = clam12, slam12 // head to the target longitude
		calp2, salp2 = 1, 0           // at the target we're heading north

		// tan(bet) = tan(sig) * cos(alp)
		ssig1, csig1 := sbet1, calp1*cbet1
		ssig2, csig2 := sbet2, calp2*cbet2

		// sig12 = sig2 - sig1
		sig12 = math.Atan2(math.Max(0, csig1*ssig2-ssig1*csig2)+0, csig1*csig2+ssig1*ssig2)
		s12x, m12x, _, M12, M21 = e.lengths(e.n, sig12, ssig1, csig1, dn1,
			ssig2, csig2, dn2, cbet1, cbet2, lengthMask)
		// sig12 > pi/2 on a meridian is not a shortest path for prolate
		// ellipsoids near antipodal points, where m12 < 0.
		if sig12 < tol2 || m12x >= 0 {
			if sig12 < 3*tiny || (sig12 < tol0 && (s12x < 0 || m12x < 0)) {
				sig12, m12x, s12x = 0, 0, 0
			}
			m12x *= e.b
			s12x *= e.b
			a12 = sig12 / degree
			sol.method = methodMeridian
		} else {
			meridian = false
		}
	}

	if !meridian && sbet1 == 0 && (e.f <= 0 || lon12s >= e.f*180) {
		// Geodesic runs along the equator; mimic lambda12 with calp1 = 0.
		calp1, calp2 = 0, 0
		salp1, salp2 = 1, 1
		s12x = e.a * lam12
		sig12 = lam12 / e.f1
		omg12 = sig12
		m12x = e.b * math.Sin(sig12)
		if outmask&GeodesicScale != 0 {
			M12 = math.Cos(sig12)
			M21 = M12
		}
		a12 = lon12 / e.f1
		sol.method = methodEquatorial
	} else if !meridian {
		// Points lie in a hemisphere bounded by a meridian and the geodesic
		// is neither meridional nor equatorial.
		var dnm float64
		sig12, salp1, calp1, salp2, calp2, dnm = e.inverseStart(
			sbet1, cbet1, dn1, sbet2, cbet2, dn2, lam12, slam12, clam12)

		if sig12 >= 0 {
			// Short lines; inverseStart set salp2, calp2, dnm.
			s12x = sig12 * e.b * dnm
			m12x = sq(dnm) * e.b * math.Sin(sig12/dnm)
			if outmask&GeodesicScale != 0 {
				M12 = math.Cos(sig12 / dnm)
				M21 = M12
			}
			a12 = sig12 / degree
			omg12 = lam12 / (e.f1 * dnm)
			sol.method = methodShortLine
		} else {
			var lr lambdaResult
			lr, salp1, calp1, sol.iterations, sol.method = e.solveAlpha1(
				sbet1, cbet1, dn1, sbet2, cbet2, dn2, salp1, calp1, slam12, clam12,
				maxIt2)
			salp2, calp2, sig12 = lr.salp2, lr.calp2, lr.sig12
			s12x, m12x, _, M12, M21 = e.lengths(lr.eps, sig12, lr.ssig1, lr.csig1, dn1,
				lr.ssig2, lr.csig2, dn2, cbet1, cbet2, lengthMask)
			m12x *= e.b
			s12x *= e.b
			a12 = sig12 / degree
			if outmask&Area != 0 {
				// omg12 = lam12 - domg12
				sdomg12, cdomg12 := math.Sincos(lr.domg12)
				somg12 = slam12*cdomg12 - clam12*sdomg12
				comg12 = clam12*cdomg12 + slam12*sdomg12
			}
		}
	}

	if outmask&Distance != 0 {
		sol.s12 = 0 + s12x // convert -0 to 0
	}
	if outmask&ReducedLength != 0 {
		sol.m12 = 0 + m12x
	}

	if outmask&Area != 0 {
		// From lambda12: sin(alp1) * cos(bet1) = sin(alp0)
		salp0 := salp1 * cbet1
		calp0 := math.Hypot(calp1, salp1*sbet1)
		var s12 float64
		if calp0 != 0 && salp0 != 0 {
			// From lambda12: tan(bet) = tan(sig) * cos(alp)
			ssig1, csig1 := norm2(sbet1, calp1*cbet1)
			ssig2, csig2 := norm2(sbet2, calp2*cbet2)
			eps := epsOf(sq(calp0) * e.ep2)
			// a^2 * e^2 * cos(alp0) * sin(alp0)
			a4 := sq(e.a) * calp0 * salp0 * e.e2
			var c4a [nC4]float64
			e.c4f(eps, c4a[:])
			b41 := sinCosSeries(false, ssig1, csig1, c4a[:])
			b42 := sinCosSeries(false, ssig2, csig2, c4a[:])
			s12 = a4 * (b42 - b41)
		}
		// else: sig1 and sig2 are indeterminate on the equator, S12 = 0

		if !meridian && somg12 == 2 {
			somg12, comg12 = math.Sincos(omg12)
		}

		var alp12 float64
		if !meridian && comg12 > -0.7071 && sbet2-sbet1 < 1.75 {
			// omg12 < 3/4 pi and the latitude difference is not too big:
			// tan(Gamma/2) = tan(omg12/2) *
			//   (tan(bet1/2) + tan(bet2/2)) / (1 + tan(bet1/2) * tan(bet2/2))
			// with tan(x/2) = sin(x) / (1 + cos(x))
			domg12 := 1 + comg12
			dbet1 := 1 + cbet1
			dbet2 := 1 + cbet2
			alp12 = 2 * math.Atan2(somg12*(sbet1*dbet2+sbet2*dbet1),
				domg12*(sbet1*sbet2+dbet1*dbet2))
		} else {
			// alp12 = alp2 - alp1, used in atan2 so no need to normalize
			salp12 := salp2*calp1 - calp2*salp1
			calp12 := calp2*calp1 + salp2*salp1
			// alp1 = +/-180 and alp2 = 0 must give alp12 = -180, which
			// depends on the sign of the zero.
			if salp12 == 0 && calp12 < 0 {
				salp12 = tiny * calp1
				calp12 = -1
			}
			alp12 = math.Atan2(salp12, calp12)
		}
		s12 += e.c2 * alp12
		s12 *= swapp * lonsign * latsign
		sol.S12 = 0 + s12
	}

	// Undo the canonicalizing transformation.
	if swapp < 0 {
		salp1, salp2 = salp2, salp1
		calp1, calp2 = calp2, calp1
		M12, M21 = M21, M12
	}
	salp1 *= swapp * lonsign
	calp1 *= swapp * latsign
	salp2 *= swapp * lonsign
	calp2 *= swapp * latsign

	if outmask&GeodesicScale != 0 {
		sol.M12, sol.M21 = M12, M21
	}
	sol.a12 = a12
	sol.salp1, sol.calp1 = salp1, calp1
	sol.salp2, sol.calp2 = salp2, calp2
	return sol
}

// solveAlpha1 finds the root of lambda12(alp1) - lam12. That function has
// exactly one root in (0, pi) with positive derivative there, so a bracket
// (alp1a, alp1b) is kept and shrunk on every evaluation. Newton steps are
// taken while they stay inside (0, pi) with a positive derivative, up to
// maxIt1 times; otherwise the midpoint of the bracket is used. The search
// gives up at iteration maxit right after evaluating lambda12, so lr always
// belongs to the returned alp1.
func (e *Ellipsoid) solveAlpha1(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
	salp1, calp1, slam12, clam12 float64, maxit int,
) (lr lambdaResult, salp1Out, calp1Out float64, numit int, method inverseMethod) {
	method = methodNewton
	salp1a, calp1a := tiny, 1.0
	salp1b, calp1b := tiny, -1.0
	tripn, tripb := false, false
	for ; ; numit++ {
		lr = e.lambda12(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
			salp1, calp1, slam12, clam12, numit < maxIt1)
		v := lr.lam12
		// 2 * tol0 is approximately 1 ulp for a number in [0, pi].
		// The reversed test lets NaNs escape.
		mult := 1.0
		if tripn {
			mult = 8
		}
		if tripb || !(math.Abs(v) >= mult*tol0) || numit == maxit {
			break
		}
		// Update bracketing values
		if v > 0 && (numit > maxIt1 || calp1/salp1 > calp1b/salp1b) {
			salp1b, calp1b = salp1, calp1
		} else if v < 0 && (numit > maxIt1 || calp1/salp1 < calp1a/salp1a) {
			salp1a, calp1a = salp1, calp1
		}
		if numit < maxIt1 && lr.dlam12 > 0 {
			dalp1 := -v / lr.dlam12
			if math.Abs(dalp1) < math.Pi {
				sdalp1, cdalp1 := math.Sincos(dalp1)
				nsalp1 := salp1*cdalp1 + calp1*sdalp1
				if nsalp1 > 0 {
					calp1 = calp1*cdalp1 - salp1*sdalp1
					salp1 = nsalp1
					salp1, calp1 = norm2(salp1, calp1)
					// Convergence is not quadratic where the slope goes
					// to zero, so test against epsilon, not sqrt(epsilon).
					tripn = math.Abs(v) <= 16*tol0
					continue
				}
			}
		}
		// dv was not positive or the step left (0, pi): bisect.
		method = methodBisection
		salp1 = (salp1a + salp1b) / 2
		calp1 = (calp1a + calp1b) / 2
		salp1, calp1 = norm2(salp1, calp1)
		tripn = false
		tripb = math.Abs(salp1a-salp1)+(calp1a-calp1) < tolb ||
			math.Abs(salp1-salp1b)+(calp1-calp1b) < tolb
	}
	return lr, salp1, calp1, numit, method
}

// lengths computes, as selected by outmask, s12b = distance/b (Distance),
// m12b = reduced length/b and m0, the coefficient of the secular term in
// the reduced length (ReducedLength), and the scales M12, M21
// (GeodesicScale).
func (e *Ellipsoid) lengths(eps, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2,
	cbet1, cbet2 float64, outmask Mask,
) (s12b, m12b, m0, M12, M21 float64) {
	var ca [nC1 + 1]float64
	var cb [nC2 + 1]float64
	outmask &= outAll
	redlp := outmask&(ReducedLength|GeodesicScale) != 0
	var a1, a2, j12 float64
	if outmask&Distance != 0 || redlp {
		a1 = a1m1f(eps)
		c1f(eps, ca[:])
		if redlp {
			a2 = a2m1f(eps)
			c2f(eps, cb[:])
			m0 = a1 - a2
			a2 = 1 + a2
		}
		a1 = 1 + a1
	}
	if outmask&Distance != 0 {
		b1 := sinCosSeries(true, ssig2, csig2, ca[:]) -
			sinCosSeries(true, ssig1, csig1, ca[:])
		s12b = a1 * (sig12 + b1)
		if redlp {
			b2 := sinCosSeries(true, ssig2, csig2, cb[:]) -
				sinCosSeries(true, ssig1, csig1, cb[:])
			j12 = m0*sig12 + (a1*b1 - a2*b2)
		}
	} else if redlp {
		// Assume here that nC1 >= nC2
		for l := 1; l <= nC2; l++ {
			cb[l] = a1*ca[l] - a2*cb[l]
		}
		j12 = m0*sig12 + (sinCosSeries(true, ssig2, csig2, cb[:]) -
			sinCosSeries(true, ssig1, csig1, cb[:]))
	}
	if outmask&ReducedLength != 0 {
		// Parenthesized products cancel accurately for coincident points.
		m12b = dn2*(csig1*ssig2) - dn1*(ssig1*csig2) - csig1*csig2*j12
	}
	if outmask&GeodesicScale != 0 {
		csig12 := csig1*csig2 + ssig1*ssig2
		t := e.ep2 * (cbet1 - cbet2) * (cbet1 + cbet2) / (dn1 + dn2)
		M12 = csig12 + (t*ssig2-csig2*j12)*ssig1/dn1
		M21 = csig12 - (t*ssig1-csig1*j12)*ssig2/dn2
	}
	return s12b, m12b, m0, M12, M21
}

// inverseStart returns a starting azimuth for Newton's method in salp1,
// calp1 with sig12 = -1. For really short lines, where no iteration is
// needed, it returns sig12 >= 0 along with salp2, calp2 and dnm.
func (e *Ellipsoid) inverseStart(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
	lam12, slam12, clam12 float64,
) (sig12, salp1, calp1, salp2, calp2, dnm float64) {
	sig12 = -1
	// bet12 = bet2 - bet1 in [0, pi); bet12a = bet2 + bet1 in (-pi, 0]
	sbet12 := sbet2*cbet1 - cbet2*sbet1
	cbet12 := cbet2*cbet1 + sbet2*sbet1
	sbet12a := sbet2*cbet1 + cbet2*sbet1
	shortline := cbet12 >= 0 && sbet12 < 0.5 && cbet2*lam12 < 0.5
	var somg12, comg12 float64
	if shortline {
		// sin((bet1+bet2)/2)^2 =
		//   (sbet1 + sbet2)^2 / ((sbet1 + sbet2)^2 + (cbet1 + cbet2)^2)
		sbetm2 := sq(sbet1 + sbet2)
		sbetm2 /= sbetm2 + sq(cbet1+cbet2)
		dnm = math.Sqrt(1 + e.ep2*sbetm2)
		omg12 := lam12 / (e.f1 * dnm)
		somg12, comg12 = math.Sincos(omg12)
	} else {
		somg12, comg12 = slam12, clam12
	}

	salp1 = cbet2 * somg12
	if comg12 >= 0 {
		calp1 = sbet12 + cbet2*sbet1*sq(somg12)/(1+comg12)
	} else {
		calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
	}
	ssig12 := math.Hypot(salp1, calp1)
	csig12 := sbet1*sbet2 + cbet1*cbet2*comg12

	switch {
	case shortline && ssig12 < e.etol2:
		// really short lines
		salp2 = cbet1 * somg12
		if comg12 >= 0 {
			calp2 = sbet12 - cbet1*sbet2*(sq(somg12)/(1+comg12))
		} else {
			calp2 = sbet12 - cbet1*sbet2*(1-comg12)
		}
		salp2, calp2 = norm2(salp2, calp2)
		sig12 = math.Atan2(ssig12, csig12)
	case math.Abs(e.n) > 0.1 || csig12 >= 0 ||
		ssig12 >= 6*math.Abs(e.n)*math.Pi*sq(cbet1):
		// Zeroth order spherical approximation is OK; the astroid is
		// skipped for eccentric ellipsoids.
	default:
		// Scale lam12 and bet2 to x, y coordinates where the antipodal
		// point is at the origin and the singular point at y = 0, x = -1.
		var x, y, lamscale, betscale float64
		lam12x := math.Atan2(-slam12, -clam12) // lam12 - pi
		if e.f >= 0 {
			// x = dlong, y = dlat
			eps := epsOf(sq(sbet1) * e.ep2)
			lamscale = e.f * cbet1 * e.a3f(eps) * math.Pi
			betscale = lamscale * cbet1
			x = lam12x / lamscale
			y = sbet12a / betscale
		} else {
			// x = dlat, y = dlong
			cbet12a := cbet2*cbet1 - sbet2*sbet1
			bet12a := math.Atan2(sbet12a, cbet12a)
			// With lon12 = 180 this repeats a calculation made by the
			// meridian branch.
			_, m12b, m0, _, _ := e.lengths(e.n, math.Pi+bet12a,
				sbet1, -cbet1, dn1, sbet2, cbet2, dn2, cbet1, cbet2, ReducedLength)
			x = -1 + m12b/(cbet1*cbet2*m0*math.Pi)
			if x < -0.01 {
				betscale = sbet12a / x
			} else {
				betscale = -e.f * sq(cbet1) * math.Pi
			}
			lamscale = betscale / cbet1
			y = lam12x / lamscale
		}

		if y > -tol1 && x > -1-xthresh {
			// strip near cut
			if e.f >= 0 {
				salp1 = math.Min(1, -x)
				calp1 = -math.Sqrt(1 - sq(salp1))
			} else {
				lo := -1.0
				if x > -tol1 {
					lo = 0
				}
				calp1 = math.Max(lo, x)
				salp1 = math.Sqrt(1 - sq(calp1))
			}
		} else {
			// Estimate omg12 from the astroid problem, then alp1 from the
			// spherical formula. omg12 is near pi so work with
			// omg12a = pi - omg12.
			k := astroid(x, y)
			var omg12a float64
			if e.f >= 0 {
				omg12a = lamscale * (-x * k / (1 + k))
			} else {
				omg12a = lamscale * (-y * (1 + k) / k)
			}
			somg12, comg12 = math.Sincos(omg12a)
			comg12 = -comg12
			salp1 = cbet2 * somg12
			calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
		}
	}
	// Sanity check on the starting guess. The backwards test lets NaN
	// through.
	if !(salp1 <= 0) {
		salp1, calp1 = norm2(salp1, calp1)
	} else {
		salp1, calp1 = 1, 0
	}
	return sig12, salp1, calp1, salp2, calp2, dnm
}

type lambdaResult struct {
	lam12, salp2, calp2, sig12 float64
	ssig1, csig1, ssig2, csig2 float64
	eps, domg12, dlam12        float64
}

// lambda12 solves the hybrid problem: given bet1, bet2 and alp1 it returns
// lam12 - lam120, the longitude mismatch whose root is sought, and, when
// diffp is set, its derivative with respect to alp1.
func (e *Ellipsoid) lambda12(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
	salp1, calp1, slam120, clam120 float64, diffp bool,
) (r lambdaResult) {
	if sbet1 == 0 && calp1 == 0 {
		// Break the degeneracy of the equatorial line; that case is
		// handled elsewhere.
		calp1 = -tiny
	}
	// sin(alp1) * cos(bet1) = sin(alp0)
	salp0 := salp1 * cbet1
	calp0 := math.Hypot(calp1, salp1*sbet1) // calp0 > 0

	// tan(bet1) = tan(sig1) * cos(alp1)
	// tan(omg1) = sin(alp0) * tan(sig1) = tan(alp1) * sin(bet1)
	r.ssig1 = sbet1
	somg1 := salp0 * sbet1
	r.csig1 = calp1 * cbet1
	comg1 := r.csig1
	r.ssig1, r.csig1 = norm2(r.ssig1, r.csig1)

	// Enforce symmetries in the case |bet2| = -bet1, which would otherwise
	// give singularities in the Newton iteration.
	// sin(alp2) * cos(bet2) = sin(alp0)
	if cbet2 != cbet1 {
		r.salp2 = salp0 / cbet2
	} else {
		r.salp2 = salp1
	}
	// calp2 = sqrt(1 - sq(salp2)) = sqrt(sq(calp0) - sq(sbet2)) / cbet2,
	// taking the positive root so alp2 is in [0, pi/2].
	if cbet2 != cbet1 || math.Abs(sbet2) != -sbet1 {
		var d float64
		if cbet1 < -sbet1 {
			d = (cbet2 - cbet1) * (cbet1 + cbet2)
		} else {
			d = (sbet1 - sbet2) * (sbet1 + sbet2)
		}
		r.calp2 = math.Sqrt(sq(calp1*cbet1)+d) / cbet2
	} else {
		r.calp2 = math.Abs(calp1)
	}
	// tan(bet2) = tan(sig2) * cos(alp2)
	// tan(omg2) = sin(alp0) * tan(sig2)
	r.ssig2 = sbet2
	somg2 := salp0 * sbet2
	r.csig2 = r.calp2 * cbet2
	comg2 := r.csig2
	r.ssig2, r.csig2 = norm2(r.ssig2, r.csig2)

	// sig12 = sig2 - sig1, limited to [0, pi]
	r.sig12 = math.Atan2(math.Max(0, r.csig1*r.ssig2-r.ssig1*r.csig2)+0,
		r.csig1*r.csig2+r.ssig1*r.ssig2)
	// omg12 = omg2 - omg1, limited to [0, pi]
	somg12 := math.Max(0, comg1*somg2-somg1*comg2) + 0
	comg12 := comg1*comg2 + somg1*somg2
	// eta = omg12 - lam120
	eta := math.Atan2(somg12*clam120-comg12*slam120, comg12*clam120+somg12*slam120)

	k2 := sq(calp0) * e.ep2
	r.eps = epsOf(k2)
	var c3a [nC3]float64
	e.c3f(r.eps, c3a[:])
	b312 := sinCosSeries(true, r.ssig2, r.csig2, c3a[:]) -
		sinCosSeries(true, r.ssig1, r.csig1, c3a[:])
	r.domg12 = -e.f * e.a3f(r.eps) * salp0 * (r.sig12 + b312)
	r.lam12 = eta + r.domg12

	if diffp {
		if r.calp2 == 0 {
			r.dlam12 = -2 * e.f1 * dn1 / sbet1
		} else {
			_, r.dlam12, _, _, _ = e.lengths(r.eps, r.sig12, r.ssig1, r.csig1, dn1,
				r.ssig2, r.csig2, dn2, cbet1, cbet2, ReducedLength)
			r.dlam12 *= e.f1 / (r.calp2 * cbet2)
		}
	} else {
		r.dlam12 = math.NaN()
	}
	return r
}
