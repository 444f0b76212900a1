// Package frame defines the celestial reference frames this library knows
// about as phantom compile-time tags, plus the Cartesian coordinate
// container generic over those tags.
//
// A frame tag carries no data: it exists only as a type parameter on
// Coordinate, RigidBodyTransform, and friends so the compiler refuses to mix
// coordinates from different frames without an explicit transform. GCRF and
// ICRS are declared equivalent (see Cast) — reinterpreting one as the other
// costs nothing at runtime.
package frame

// Convention describes the axis orientation shared by a family of frames.
// Every frame tag in this package except ECEF reports ConventionCelestial:
// right-handed XYZ with Z towards the frame's reference pole and X towards
// its reference direction. ECEF reports ConventionEarthFixed.
type Convention int

const (
	// ConventionCelestial is the right-handed XYZ convention with Z along
	// the reference pole and X along the reference direction.
	ConventionCelestial Convention = iota

	// ConventionEarthFixed is the right-handed XYZ convention of a frame
	// that co-rotates with the Earth, rather than remaining inertial.
	ConventionEarthFixed
)

// Tag is the marker interface every frame type satisfies. It carries no
// methods beyond reporting its Convention; the zero-sized implementing type
// is the actual tag used as a Go type parameter.
type Tag interface {
	Convention() Convention
}

// ICRS is the International Celestial Reference System: a quasi-inertial,
// Earth-centred frame aligned with distant extragalactic radio sources.
type ICRS struct{}

// Convention implements Tag.
func (ICRS) Convention() Convention { return ConventionCelestial }

// MCI is the Moon-Centred Inertial frame, aligned with the Moon's mean
// principal axes per the IAU 2009 lunar orientation model.
type MCI struct{}

// Convention implements Tag.
func (MCI) Convention() Convention { return ConventionCelestial }

// GCRF is the Geocentric Celestial Reference Frame. It is declared
// equivalent to ICRS: casting between them never rotates anything.
type GCRF struct{}

// Convention implements Tag.
func (GCRF) Convention() Convention { return ConventionCelestial }

// EME2000 is the Earth Mean Equator and Equinox of J2000.0. It differs from
// ICRS by a small (milliarcsecond-level) frame bias that this core does not
// model; it exists as a distinct tag so callers cannot silently conflate the
// two.
type EME2000 struct{}

// Convention implements Tag.
func (EME2000) Convention() Convention { return ConventionCelestial }

// Ecliptic is the mean ecliptic and equinox of J2000.0.
type Ecliptic struct{}

// Convention implements Tag.
func (Ecliptic) Convention() Convention { return ConventionCelestial }

// ECEF is the Earth-Centred Earth-Fixed frame: it rotates with the Earth,
// unlike every other tag in this package. The spec treats it as an
// external collaborator frame; it is defined here only so transforms can
// name it as a source or destination tag.
type ECEF struct{}

// Convention implements Tag.
func (ECEF) Convention() Convention { return ConventionEarthFixed }

// Equivalent is the witness constraint on Cast. Its method is unexported, so
// only witnesses declared in this package satisfy it. Its method set does
// not mention F1 or F2, so a witness satisfies Equivalent for every pair of
// tags: the compiler does not reject a Cast between frames that are not
// interchangeable when such a witness is passed.
type Equivalent[F1, F2 Tag] interface {
	equivalentMarker()
}

// GCRFICRSWitness witnesses that GCRF and ICRS are declared equivalent, in
// either direction. It carries no data; it exists solely to be passed as
// the witness type parameter to Cast, e.g.
// frame.Cast[frame.GCRF, frame.ICRS, frame.GCRFICRSWitness](c).
type GCRFICRSWitness struct{}

func (GCRFICRSWitness) equivalentMarker() {}

var (
	_ Equivalent[GCRF, ICRS] = GCRFICRSWitness{}
	_ Equivalent[ICRS, GCRF] = GCRFICRSWitness{}
)
