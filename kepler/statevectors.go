package kepler

import (
	"math"

	"github.com/anupshinde/goeph-frames/frame"
)

// StateVectors is the Cartesian position (ICRS, metres) and velocity
// (metres per second) derived from a set of Keplerian elements.
type StateVectors struct {
	Position frame.Coordinate[frame.ICRS]
	Velocity [3]float64
}

// perifocalToInertialMatrix returns the 3x3 rotation that carries the
// perifocal (PQW) frame into the inertial frame via the 3-1-3 sequence
// R_z(raan) · R_x(inclination) · R_z(argPeriapsis), expanded into its
// explicit matrix elements. Exposed separately (rather than folded
// directly into ToStateVectors) so callers needing the rotation itself —
// e.g. for transforming other perifocal-frame vectors — don't have to
// reconstruct it.
func perifocalToInertialMatrix(inclination, raan, argPeriapsis float64) [3][3]float64 {
	sinRaan, cosRaan := math.Sincos(raan)
	sinInc, cosInc := math.Sincos(inclination)
	sinArg, cosArg := math.Sincos(argPeriapsis)

	return [3][3]float64{
		{
			cosRaan*cosArg - sinRaan*sinArg*cosInc,
			-cosRaan*sinArg - sinRaan*cosArg*cosInc,
			sinRaan * sinInc,
		},
		{
			sinRaan*cosArg + cosRaan*sinArg*cosInc,
			-sinRaan*sinArg + cosRaan*cosArg*cosInc,
			-cosRaan * sinInc,
		},
		{
			sinArg * sinInc,
			cosArg * sinInc,
			cosInc,
		},
	}
}

func applyMatrix(m [3][3]float64, x, y, z float64) (mx, my, mz float64) {
	mx = m[0][0]*x + m[0][1]*y + m[0][2]*z
	my = m[1][0]*x + m[1][1]*y + m[1][2]*z
	mz = m[2][0]*x + m[2][1]*y + m[2][2]*z
	return
}

// PerifocalToInertialMatrix exposes the 3x3 rotation used by
// ToStateVectors, for diagnostic or reuse purposes.
func PerifocalToInertialMatrix(inclination, raan, argPeriapsis float64) [3][3]float64 {
	return perifocalToInertialMatrix(inclination, raan, argPeriapsis)
}

// ToStateVectors converts e to a Cartesian position (ICRS, metres) and
// velocity (m/s), via the perifocal frame and the 3-1-3 rotation sequence
// R_z(Ω)·R_x(i)·R_z(ω).
func (e Elements) ToStateVectors() StateVectors {
	a, ecc, nu := e.SemiMajorAxis, e.Eccentricity, e.TrueAnomaly

	p := a * (1 - ecc*ecc)
	r := p / (1 + ecc*math.Cos(nu))

	sinNu, cosNu := math.Sincos(nu)
	xPQW := r * cosNu
	yPQW := r * sinNu

	sqrtMuOverP := math.Sqrt(e.Mu / p)
	vxPQW := -sqrtMuOverP * sinNu
	vyPQW := sqrtMuOverP * (ecc + cosNu)

	m := perifocalToInertialMatrix(e.Inclination, e.RAAN, e.ArgPeriapsis)

	x, y, z := applyMatrix(m, xPQW, yPQW, 0)
	vx, vy, vz := applyMatrix(m, vxPQW, vyPQW, 0)

	return StateVectors{
		Position: frame.NewCoordinate[frame.ICRS](x, y, z),
		Velocity: [3]float64{vx, vy, vz},
	}
}
