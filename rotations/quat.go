package rotations

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// rotZ returns the unit quaternion rotating by theta radians about the Z
// axis.
func rotZ(theta float64) quat.Number {
	s, c := math.Sincos(theta / 2)
	return quat.Number{Real: c, Kmag: s}
}

// rotY returns the unit quaternion rotating by theta radians about the Y
// axis.
func rotY(theta float64) quat.Number {
	s, c := math.Sincos(theta / 2)
	return quat.Number{Real: c, Jmag: s}
}

// rotX returns the unit quaternion rotating by theta radians about the X
// axis.
func rotX(theta float64) quat.Number {
	s, c := math.Sincos(theta / 2)
	return quat.Number{Real: c, Imag: s}
}

// composeRotations multiplies quaternions left to right, i.e.
// composeRotations(A, B, C) = A⊗B⊗C. Per this library's composition
// convention, applying the result to a column vector applies C first, then
// B, then A.
func composeRotations(qs ...quat.Number) quat.Number {
	result := quat.Number{Real: 1}
	for _, q := range qs {
		result = quat.Mul(result, q)
	}
	return result
}

// RotateVec applies unit quaternion q to vector v via v' = q·v·q⁻¹.
func RotateVec(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	rotated := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vec{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}
}
