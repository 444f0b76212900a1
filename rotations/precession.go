package rotations

import "gonum.org/v1/gonum/num/quat"

// precessionAngles computes the IAU 2006 precession angles (zeta, theta, z)
// in radians for t Julian centuries from J2000.
func precessionAngles(t float64) (zeta, theta, z float64) {
	zeta = (2306.2181*t + 1.39656*t*t + 0.000139*t*t*t) * ArcsecToRad
	theta = (2004.3109*t - 0.42665*t*t - 0.041833*t*t*t) * ArcsecToRad
	z = (2306.2181*t + 1.09468*t*t + 0.018203*t*t*t) * ArcsecToRad
	return
}

// PrecessionRotation returns the IAU 2006/2000A precession rotation from
// J2000 to the Julian Date jd, as the quaternion
// R_z(-zeta) ⊗ R_y(theta) ⊗ R_z(-z).
func PrecessionRotation(jd float64) quat.Number {
	t := (jd - J2000JD) / DaysPerCentury
	zeta, theta, z := precessionAngles(t)
	return composeRotations(rotZ(-zeta), rotY(theta), rotZ(-z))
}

// PrecessionBetweenEpochs returns the precession rotation from epoch1 to
// epoch2 (both Julian Dates), using the IAU 2006 polynomials referenced to
// epoch1 rather than J2000: with t1 = (epoch1-J2000)/36525 and
// dt = (epoch2-epoch1)/36525, the angles carry a first-order correction
// in t1 on their quadratic terms; the linear and cubic terms do not depend
// on t1.
func PrecessionBetweenEpochs(epoch1JD, epoch2JD float64) quat.Number {
	t1 := (epoch1JD - J2000JD) / DaysPerCentury
	t2 := (epoch2JD - J2000JD) / DaysPerCentury
	dt := t2 - t1

	zeta := (2306.2181*dt + (1.39656+0.000139*t1)*dt*dt + 0.000139*dt*dt*dt) * ArcsecToRad
	theta := (2004.3109*dt - (0.42665+0.041833*t1)*dt*dt - 0.041833*dt*dt*dt) * ArcsecToRad
	z := (2306.2181*dt + (1.09468+0.018203*t1)*dt*dt + 0.018203*dt*dt*dt) * ArcsecToRad

	return composeRotations(rotZ(-zeta), rotY(theta), rotZ(-z))
}
