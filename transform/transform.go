// Package transform builds the RigidBodyTransform values that relate
// ICRS, ECEF, and MCI at a given instant, from the rotations computed in
// package rotations.
package transform

import (
	"time"

	"github.com/anupshinde/goeph-frames/frame"
	"github.com/anupshinde/goeph-frames/rotations"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// RigidBodyTransform is a translation vector plus a unit quaternion
// rotation, tagged with its source and destination frames. From and To
// never appear in the value; they exist only as type parameters.
type RigidBodyTransform[From, To frame.Tag] struct {
	translation r3.Vec
	rotation    quat.Number
}

// newTransform builds a RigidBodyTransform with zero translation and the
// given rotation.
func newTransform[From, To frame.Tag](rotation quat.Number) RigidBodyTransform[From, To] {
	return RigidBodyTransform[From, To]{rotation: rotation}
}

// Identity returns the identity transform: zero translation, zero
// rotation.
func Identity[From, To frame.Tag]() RigidBodyTransform[From, To] {
	return RigidBodyTransform[From, To]{rotation: quat.Number{Real: 1}}
}

// Rotation returns the transform's rotation quaternion.
func (r RigidBodyTransform[From, To]) Rotation() quat.Number {
	return r.rotation
}

// Translation returns the transform's translation vector, in metres.
func (r RigidBodyTransform[From, To]) Translation() r3.Vec {
	return r.translation
}

// Apply transforms a Coordinate⟨From⟩ into a Coordinate⟨To⟩: rotate then
// translate.
func (r RigidBodyTransform[From, To]) Apply(c frame.Coordinate[From]) frame.Coordinate[To] {
	rotated := rotations.RotateVec(r.rotation, c.Vec())
	translated := r3.Add(rotated, r.translation)
	return frame.FromCartesian[To](frame.FromVec(translated))
}

// ApplyVelocity transforms a velocity vector by the transform's rotation
// alone (translation does not affect velocities). This is equivalent to
// differencing two position transforms at the origin and at origin+v, and
// produces the same result as applying the rotation directly.
func (r RigidBodyTransform[From, To]) ApplyVelocity(v r3.Vec) r3.Vec {
	return rotations.RotateVec(r.rotation, v)
}

// Inverse returns the transform from To back to From.
func (r RigidBodyTransform[From, To]) Inverse() RigidBodyTransform[To, From] {
	invRotation := quat.Conj(r.rotation)
	invTranslation := r3.Scale(-1, rotations.RotateVec(invRotation, r.translation))
	return RigidBodyTransform[To, From]{translation: invTranslation, rotation: invRotation}
}

// ICRSToECEFAt builds the ICRS→ECEF transform at UTC instant t, with
// nutation off by default (precession + Earth Rotation Angle only).
func ICRSToECEFAt(t time.Time) RigidBodyTransform[frame.ICRS, frame.ECEF] {
	jd := rotations.UTCToJulianDate(float64(t.UnixNano()) / 1e9)
	return newTransform[frame.ICRS, frame.ECEF](rotations.ICRSToECEFRotation(jd, false))
}

// ICRSToECEFAtWithNutation builds the ICRS→ECEF transform at UTC instant
// t, including the IAU 2000B nutation correction.
func ICRSToECEFAtWithNutation(t time.Time) RigidBodyTransform[frame.ICRS, frame.ECEF] {
	jd := rotations.UTCToJulianDate(float64(t.UnixNano()) / 1e9)
	return newTransform[frame.ICRS, frame.ECEF](rotations.ICRSToECEFRotation(jd, true))
}

// ECEFToICRSAt builds the ECEF→ICRS transform at UTC instant t: the
// inverse of ICRSToECEFAt.
func ECEFToICRSAt(t time.Time) RigidBodyTransform[frame.ECEF, frame.ICRS] {
	return ICRSToECEFAt(t).Inverse()
}

// MCIToICRS builds the MCI→ICRS transform using the cached IAU 2009 lunar
// orientation rotation.
func MCIToICRS() RigidBodyTransform[frame.MCI, frame.ICRS] {
	return newTransform[frame.MCI, frame.ICRS](rotations.MCIToICRSRotation())
}

// ICRSToMCI builds the ICRS→MCI transform: the inverse of MCIToICRS.
func ICRSToMCI() RigidBodyTransform[frame.ICRS, frame.MCI] {
	return MCIToICRS().Inverse()
}
