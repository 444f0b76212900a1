package rotations

import (
	"sync"

	"gonum.org/v1/gonum/num/quat"
)

var (
	mciToICRSOnce sync.Once
	mciToICRS     quat.Number

	polarMotionOnce sync.Once
	polarMotion     quat.Number
)

// MCIToICRSRotation returns the IAU 2009 lunar-orientation rotation
// R_z(α) ⊗ R_y(δ) ⊗ R_x(W), computed once and cached process-wide.
// sync.Once runs the computation exactly once; concurrent first callers
// wait for it, and every caller observes the same published value with no
// torn reads.
func MCIToICRSRotation() quat.Number {
	mciToICRSOnce.Do(func() {
		ra := LunarRADeg * deg2rad
		dec := LunarDecDeg * deg2rad
		w := LunarWDeg * deg2rad
		mciToICRS = composeRotations(rotZ(ra), rotY(dec), rotX(w))
	})
	return mciToICRS
}

// PolarMotion returns the polar-motion correction quaternion. This
// specification treats polar motion as the identity rotation: IERS
// Bulletin A's xp/yp parameters are not modelled. The hook is a cached
// one-shot value, like MCIToICRSRotation, so a future non-identity model
// can be dropped in without changing any call site.
func PolarMotion() quat.Number {
	polarMotionOnce.Do(func() {
		polarMotion = quat.Number{Real: 1}
	})
	return polarMotion
}
