// Package kepler converts between classical Keplerian orbital elements and
// Cartesian state vectors, and propagates elements under two-body
// dynamics.
//
// Elements are expressed in SI units (metres, radians, m^3/s^2) in the
// ICRS frame, matching this core's internal-metres convention; callers that
// think in kilometres convert at the boundary.
package kepler

import "github.com/anupshinde/goeph-frames/rotations"

// Elements holds the six classical Keplerian orbital elements plus the
// gravitational parameter of the central body.
//
// Invariants: SemiMajorAxis > 0; 0 <= Eccentricity < 1; Inclination in
// [0, π].
type Elements struct {
	// SemiMajorAxis is the orbit's semi-major axis, in metres.
	SemiMajorAxis float64

	// Eccentricity is dimensionless, in [0, 1) for elliptical orbits.
	Eccentricity float64

	// Inclination is the angle between the orbital plane and the
	// reference plane, in radians.
	Inclination float64

	// RAAN is the right ascension of the ascending node, in radians.
	RAAN float64

	// ArgPeriapsis is the argument of periapsis, in radians.
	ArgPeriapsis float64

	// TrueAnomaly is the angular position in the orbit, in radians.
	TrueAnomaly float64

	// Mu is the gravitational parameter of the central body, m^3/s^2.
	// Defaults to Earth's when constructed via New.
	Mu float64
}

// New builds Elements with Earth's gravitational parameter.
func New(semiMajorAxis, eccentricity, inclination, raan, argPeriapsis, trueAnomaly float64) Elements {
	return Elements{
		SemiMajorAxis: semiMajorAxis,
		Eccentricity:  eccentricity,
		Inclination:   inclination,
		RAAN:          raan,
		ArgPeriapsis:  argPeriapsis,
		TrueAnomaly:   trueAnomaly,
		Mu:            rotations.MuEarth,
	}
}

// WithMu returns a copy of e with a custom gravitational parameter.
func (e Elements) WithMu(mu float64) Elements {
	e.Mu = mu
	return e
}
