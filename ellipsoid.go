package geodesic

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidEllipsoid is returned by NewEllipsoid for parameters that do
// not describe an ellipsoid of revolution.
var ErrInvalidEllipsoid = errors.New("invalid ellipsoid")

// Ellipsoid is an object for performing geodesic operations. It is
// immutable once constructed and safe for concurrent use.
type Ellipsoid struct {
	a, f      float64
	f1, e2    float64
	ep2, n, b float64
	// c2 is the square of the authalic radius
	c2    float64
	etol2 float64
	coeffTables

	spherical bool
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid. Negative
// values give a prolate ellipsoid.
//
// An error wrapping ErrInvalidEllipsoid is returned if radius or the polar
// semi-axis radius*(1-flattening) is not a finite positive number.
func NewEllipsoid(radius, flattening float64) (*Ellipsoid, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, errors.Wrapf(ErrInvalidEllipsoid,
			"equatorial radius %v is not positive", radius)
	}
	if !(flattening < 1) {
		return nil, errors.Wrapf(ErrInvalidEllipsoid,
			"flattening %v is not less than 1", flattening)
	}
	b := radius * (1 - flattening)
	if !(b > 0) || math.IsInf(b, 0) {
		return nil, errors.Wrapf(ErrInvalidEllipsoid,
			"polar semi-axis %v is not positive", b)
	}
	e := &Ellipsoid{a: radius, f: flattening}
	e.init()
	return e, nil
}

// MustEllipsoid is like NewEllipsoid but panics on invalid parameters.
func MustEllipsoid(radius, flattening float64) *Ellipsoid {
	e, err := NewEllipsoid(radius, flattening)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Ellipsoid) init() {
	e.f1 = 1 - e.f
	e.e2 = e.f * (2 - e.f)
	e.ep2 = e.e2 / sq(e.f1)
	e.n = e.f / (2 - e.f)
	e.b = e.a * e.f1
	var k float64
	switch {
	case e.e2 == 0:
		k = 1
	case e.e2 > 0:
		k = math.Atanh(math.Sqrt(e.e2)) / math.Sqrt(e.e2)
	default:
		k = math.Atan(math.Sqrt(-e.e2)) / math.Sqrt(-e.e2)
	}
	e.c2 = (sq(e.a) + sq(e.b)*k) / 2
	// The sig12 threshold for "really short". Using the auxiliary sphere
	// solution with dnm computed at (bet1 + bet2) / 2, the relative error in
	// the azimuth consistency check is sig12^2 * |f| * min(1, 1-f/2) / 2.
	// Setting this equal to epsilon gives sig12 = etol2; 0.1 is a safety
	// factor and max(0.001, |f|) keeps etol2 bounded when nearly spherical.
	e.etol2 = 0.1 * tol2 /
		math.Sqrt(math.Max(0.001, math.Abs(e.f))*math.Min(1, 1-e.f/2)/2)
	e.coeffTables.init(e.n)
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.a
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.f
}

// MinorRadius is the polar semi-axis b = a(1-f).
func (e *Ellipsoid) MinorRadius() float64 {
	return e.b
}

// AuthalicRadiusSquared is the square of the radius of the sphere with the
// same surface area.
func (e *Ellipsoid) AuthalicRadiusSquared() float64 {
	return e.c2
}

// Area is the total surface area of the ellipsoid (meters squared).
func (e *Ellipsoid) Area() float64 {
	return 4 * math.Pi * e.c2
}

// Spherical returns true if the ellipsoid was initialized using NewSpherical.
func (e *Ellipsoid) Spherical() bool {
	return e.spherical
}
