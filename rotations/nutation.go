package rotations

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// fundamentalArguments computes the Delaunay-like arguments (Ω, F, D, l)
// used by the IAU 2000B nutation series, in radians, for t Julian
// centuries from J2000.
func fundamentalArguments(t float64) (omega, f, d, l float64) {
	omega = (125.04455501 - (6962890.5431*t+7.4722*t*t)/3600.0) * deg2rad
	f = (93.27209062 + (1739527262.8478*t-12.7512*t*t)/3600.0) * deg2rad
	d = (297.85019547 + (1602961601.2090*t-6.3706*t*t)/3600.0) * deg2rad
	l = (134.96340251 + (1717915923.2178*t+31.8792*t*t)/3600.0) * deg2rad
	return
}

// nutationAngles computes the IAU 2000B nutation in longitude (dpsi) and
// obliquity (deps), in radians, using the five leading terms of the
// truncated series.
func nutationAngles(t float64) (dpsi, deps float64) {
	omega, f, d, l := fundamentalArguments(t)

	dpsi = (-17.2064161*math.Sin(omega) -
		1.3170907*math.Sin(2*f-2*d+2*omega) -
		0.2227794*math.Sin(2*omega) +
		0.2072767*math.Sin(2*f+2*omega) -
		0.1426572*math.Sin(l)) * ArcsecToRad

	deps = (9.2052331*math.Cos(omega) +
		0.5730336*math.Cos(2*f-2*d+2*omega) +
		0.0978459*math.Cos(2*omega) -
		0.0897492*math.Cos(2*f+2*omega)) * ArcsecToRad

	return
}

// meanObliquity returns the mean obliquity of the ecliptic at t Julian
// centuries from J2000, in radians.
func meanObliquity(t float64) float64 {
	return 84381.448*ArcsecToRad + (-46.8150*t-0.00059*t*t+0.001813*t*t*t)*ArcsecToRad
}

// NutationRotation returns the IAU 2000B nutation rotation at Julian Date
// jd, as the quaternion R_x(-(eps0+deps)) ⊗ R_z(-dpsi) ⊗ R_x(eps0).
func NutationRotation(jd float64) quat.Number {
	t := (jd - J2000JD) / DaysPerCentury
	dpsi, deps := nutationAngles(t)
	eps0 := meanObliquity(t)
	return composeRotations(rotX(-(eps0 + deps)), rotZ(-dpsi), rotX(eps0))
}
