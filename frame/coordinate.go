package frame

import (
	"math"

	"github.com/anupshinde/goeph-frames/units"
	"gonum.org/v1/gonum/spatial/r3"
)

// Coordinate is a Cartesian point tagged with frame F. The tag never
// appears in the value's layout — it is a compile-time discriminant only —
// so two Coordinate values of different frames cannot be compared, added,
// or passed to a function expecting a third frame without an explicit
// transform.
type Coordinate[F Tag] struct {
	components CelestialComponents
}

// NewCoordinate builds a Coordinate from metre-valued Cartesian components.
func NewCoordinate[F Tag](xMetres, yMetres, zMetres float64) Coordinate[F] {
	return Coordinate[F]{components: NewCelestialComponents(xMetres, yMetres, zMetres)}
}

// FromCartesian builds a Coordinate from a CelestialComponents triple.
func FromCartesian[F Tag](c CelestialComponents) Coordinate[F] {
	return Coordinate[F]{components: c}
}

// ToCartesian returns the coordinate's underlying Cartesian components.
func (c Coordinate[F]) ToCartesian() CelestialComponents {
	return c.components
}

// Vec returns the coordinate as a gonum r3.Vec, in metres.
func (c Coordinate[F]) Vec() r3.Vec {
	return c.components.Vec()
}

// DistanceFromOrigin returns the Euclidean norm of the coordinate, in
// metres.
func (c Coordinate[F]) DistanceFromOrigin() float64 {
	return c.components.Norm()
}

// DistanceFrom returns the Euclidean distance between two coordinates in
// the same frame, in metres.
func (c Coordinate[F]) DistanceFrom(other Coordinate[F]) float64 {
	return r3.Norm(r3.Sub(c.Vec(), other.Vec()))
}

// Cast reinterprets a Coordinate⟨F1⟩ as a Coordinate⟨F2⟩ at zero cost. It
// takes an Equivalent witness naming the declared equivalence (today, only
// GCRFICRSWitness for GCRF≡ICRS); the witness does not restrict F1 and F2,
// so the compiler accepts a Cast between any two tags. No rotation is
// applied, matching the "equivalent frames without dynamic dispatch"
// design: a cast between equivalent frames must never perform a runtime
// rotation.
func Cast[F1, F2 Tag, E Equivalent[F1, F2]](c Coordinate[F1]) Coordinate[F2] {
	return Coordinate[F2]{components: c.components}
}

// FromRaDec builds a Coordinate from right ascension, declination, and
// radial distance. ra and dec are in radians; r is in metres. Declination
// is not range-checked: out-of-range inputs silently produce a valid
// Cartesian vector, which is intentional (see CelestialCoordinate design
// notes on RA/Dec round-tripping).
func FromRaDec[F Tag](ra, dec, r float64) Coordinate[F] {
	sinDec, cosDec := math.Sincos(dec)
	sinRa, cosRa := math.Sincos(ra)
	x := r * cosDec * cosRa
	y := r * cosDec * sinRa
	z := r * sinDec
	return NewCoordinate[F](x, y, z)
}

// SphericalCelestial is a right-ascension/declination/range decomposition
// of a Coordinate in a frame with celestial convention.
type SphericalCelestial struct {
	// RA is the right ascension in radians, normalised to [0, 2π).
	RA float64
	// Dec is the declination in radians.
	Dec float64
	// R is the radial distance in metres.
	R float64
}

// ToSphericalCelestial decomposes the coordinate into right ascension,
// declination, and range. RA is normalised to [0, 2π). Dec is zero when r
// is zero.
func (c Coordinate[F]) ToSphericalCelestial() SphericalCelestial {
	x, y, z := c.components.X(), c.components.Y(), c.components.Z()
	r := c.DistanceFromOrigin()

	ra := math.Atan2(y, x)
	if ra < 0 {
		ra += 2 * math.Pi
	}

	var dec float64
	if r > 0 {
		dec = math.Asin(z / r)
	}

	return SphericalCelestial{RA: ra, Dec: dec, R: r}
}

// RAHMS decomposes the right ascension into sign, hours, minutes, and
// fractional seconds, the conventional way of displaying it.
func (s SphericalCelestial) RAHMS() (sign float64, hours, min int, sec float64) {
	return units.NewAngle(s.RA).HMS()
}

// DecDMS decomposes the declination into sign, degrees, arcminutes, and
// fractional arcseconds.
func (s SphericalCelestial) DecDMS() (sign float64, deg, min int, sec float64) {
	return units.NewAngle(s.Dec).DMS()
}

// RangeAU returns the radial distance in astronomical units.
func (s SphericalCelestial) RangeAU() float64 {
	return units.NewDistance(s.R).AU()
}
