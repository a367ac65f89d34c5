package geodesic

import "math"

const (
	digits  = 53
	maxIt1  = 20
	maxIt2  = maxIt1 + digits + 10
	degree  = math.Pi / 180
	epsilon = 0x1p-52
	realMin = 0x1p-1022
)

var (
	tiny    = math.Sqrt(realMin)
	tol0    = epsilon
	tol1    = 200 * tol0
	tol2    = math.Sqrt(tol0)
	tolb    = tol0 * tol2
	xthresh = 1000 * tol2
)

func sq(x float64) float64 { return x * x }

// polyval evaluates the polynomial of degree n with coefficients p (highest
// order first) at x using Horner's method.
func polyval(n int, p []float64, x float64) float64 {
	if n < 0 {
		return 0
	}
	y := p[0]
	for i := 1; i <= n; i++ {
		y = y*x + p[i]
	}
	return y
}

// twoSum is the error-free transformation of a sum: u + v = s + t exactly,
// with s = round(u + v).
func twoSum(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	if s != 0 {
		t = 0 - (up + vpp)
	} else {
		t = s
	}
	return s, t
}

// angNormalize reduces an angle to (-180, 180].
func angNormalize(x float64) float64 {
	x = math.Remainder(x, 360)
	if x == -180 {
		return 180
	}
	return x
}

// angDiff returns y - x reduced to [-180, 180] along with the rounding
// error e such that y - x = d + e exactly (mod 360).
func angDiff(x, y float64) (d, e float64) {
	d, t := twoSum(angNormalize(-x), angNormalize(y))
	d = angNormalize(d)
	if d == 180 && t > 0 {
		d = -180
	}
	return twoSum(d, t)
}

// angRound coarsens tiny angles so that values below 1/2^57 degrees
// underflow to zero.
func angRound(x float64) float64 {
	const z = 1.0 / 16
	if x == 0 {
		return 0
	}
	y := math.Abs(x)
	if y < z {
		y = z - (z - y)
	}
	if x < 0 {
		return -y
	}
	return y
}

func latFix(x float64) float64 {
	if math.Abs(x) > 90 {
		return math.NaN()
	}
	return x
}

// sincosd returns the sine and cosine of x degrees, reducing the argument
// exactly to [-45, 45] first so that multiples of 90 are exact.
func sincosd(x float64) (sinx, cosx float64) {
	r := math.Mod(x, 360)
	q := 0
	if !math.IsNaN(r) {
		q = int(math.RoundToEven(r / 90))
	}
	r -= 90 * float64(q)
	r *= degree
	s, c := math.Sin(r), math.Cos(r)
	switch q & 3 {
	case 0:
		sinx, cosx = s, c
	case 1:
		sinx, cosx = c, -s
	case 2:
		sinx, cosx = -s, -c
	default:
		sinx, cosx = -c, s
	}
	if x != 0 {
		sinx += 0
		cosx += 0
	}
	return sinx, cosx
}

// atan2d returns atan2(y, x) in degrees, in the range [-180, 180].
func atan2d(y, x float64) float64 {
	q := 0
	if math.Abs(y) > math.Abs(x) {
		x, y = y, x
		q = 2
	}
	if x < 0 {
		x = -x
		q++
	}
	ang := math.Atan2(y, x) / degree
	switch q {
	case 1:
		if y >= 0 {
			ang = 180 - ang
		} else {
			ang = -180 - ang
		}
	case 2:
		ang = 90 - ang
	case 3:
		ang = -90 + ang
	}
	return ang
}

func norm2(x, y float64) (float64, float64) {
	r := math.Hypot(x, y)
	return x / r, y / r
}

// astroid solves k^4 + 2k^3 - (x^2 + y^2 - 1)k^2 - 2y^2 k - y^2 = 0 for the
// positive root k.
func astroid(x, y float64) float64 {
	p := sq(x)
	q := sq(y)
	r := (p + q - 1) / 6
	if q == 0 && r <= 0 {
		// y = 0 with |x| <= 1
		return 0
	}
	// Multiply the equations for s and t by r^3 and r to avoid dividing by
	// zero when r = 0.
	s := p * q / 4
	r2 := sq(r)
	r3 := r * r2
	// zero on the evolute p^(1/3) + q^(1/3) = 1
	disc := s * (s + 2*r3)
	u := r
	if disc >= 0 {
		t3 := s + r3
		// Pick the sign on the sqrt to maximize |t3|.
		if t3 < 0 {
			t3 -= math.Sqrt(disc)
		} else {
			t3 += math.Sqrt(disc)
		}
		t := math.Cbrt(t3)
		u += t
		if t != 0 {
			u += r2 / t
		}
	} else {
		// t is complex but u is real.
		ang := math.Atan2(math.Sqrt(-disc), -(s + r3))
		u += 2 * r * math.Cos(ang/3)
	}
	v := math.Sqrt(sq(u) + q)
	var uv float64
	if u < 0 {
		uv = q / (v - u)
	} else {
		uv = u + v
	}
	w := (uv - q) / (2 * v)
	return uv / (math.Sqrt(uv+sq(w)) + w)
}
