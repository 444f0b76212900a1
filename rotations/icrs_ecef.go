package rotations

import "gonum.org/v1/gonum/num/quat"

// ICRSToECEFRotation builds the ICRS→ECEF rotation quaternion at Julian
// Date jd by composing, in application order from a column-vector
// viewpoint, ERA ⊗ Nut? ⊗ P:
//
//   - P is the IAU 2006/2000A precession rotation (PrecessionRotation).
//   - Nut is the IAU 2000B nutation rotation (NutationRotation) when
//     includeNutation is true, else identity.
//   - ERA = R_z(EarthRotationAngle(jd)).
//
// Applied to a column vector, this first precesses, then (optionally)
// nutates, then rotates by ERA — i.e. ERA is applied last.
func ICRSToECEFRotation(jd float64, includeNutation bool) quat.Number {
	precession := PrecessionRotation(jd)

	nutation := quat.Number{Real: 1}
	if includeNutation {
		nutation = NutationRotation(jd)
	}

	era := rotZ(EarthRotationAngle(jd))

	return composeRotations(era, nutation, precession)
}
