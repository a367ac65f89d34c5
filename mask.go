package geodesic

// Mask selects the quantities a geodesic computation should produce. Masks
// are combined with bitwise-or. Each output bit also carries the internal
// series bits it depends on, so asking for GeodesicScale brings in the
// distance series as well.
type Mask uint32

// series capability bits
const (
	capNone Mask = 0
	capC1   Mask = 1 << 0
	capC1p  Mask = 1 << 1
	capC2   Mask = 1 << 2
	capC3   Mask = 1 << 3
	capC4   Mask = 1 << 4
	capAll  Mask = 0x1f
	outAll  Mask = 0x7f80
)

const (
	// None computes nothing beyond what every line carries.
	None Mask = 0
	// Latitude of point 2.
	Latitude Mask = 1<<7 | capNone
	// Longitude of point 2.
	Longitude Mask = 1<<8 | capC3
	// Azimuth at both ends.
	Azimuth Mask = 1<<9 | capNone
	// Distance s12.
	Distance Mask = 1<<10 | capC1
	// DistanceIn allows a line to be advanced by distance rather than arc.
	DistanceIn Mask = 1<<11 | capC1 | capC1p
	// ReducedLength m12.
	ReducedLength Mask = 1<<12 | capC1 | capC2
	// GeodesicScale M12 and M21.
	GeodesicScale Mask = 1<<13 | capC1 | capC2
	// Area S12 under the geodesic.
	Area Mask = 1<<14 | capC4
	// Standard is the set returned by the plain direct and inverse problems.
	Standard = Latitude | Longitude | Azimuth | Distance
	// All computes everything.
	All = outAll | capAll
)

// Flags modify how the direct problem and line positions interpret their
// input and report longitude.
type Flags uint32

const (
	// NoFlags is the default: input is a distance, longitude is reduced.
	NoFlags Flags = 0
	// ArcMode means the input is an arc length on the auxiliary sphere, in
	// degrees.
	ArcMode Flags = 1 << 0
	// LongUnroll reports the longitude as the accumulated change from the
	// starting longitude, so full circuits of the ellipsoid are kept.
	LongUnroll Flags = 1 << 15
)

// defaultLineCaps is substituted when a line is built with a zero mask.
const defaultLineCaps = Latitude | Longitude | Azimuth | DistanceIn

// Has reports whether every output bit of q is present in m.
func (m Mask) Has(q Mask) bool {
	q &= outAll
	return m&q == q
}

func (m Mask) caps() Mask { return m & capAll }
