// Package rotations computes the fundamental constants and rigid rotations
// that relate ICRS, ECEF, and MCI at a given instant: Julian-Date
// conversion, Earth Rotation Angle, IAU 2006/2000A precession, IAU 2000B
// nutation, the IAU 2009 lunar-orientation rotation, and inter-epoch
// precession.
//
// The numeric coefficients below are an external contract: downstream
// callers compare results against them, so they are reproduced exactly
// rather than rounded or refactored into a denser polynomial form.
package rotations

import "math"

const (
	// J2000JD is the Julian Date of the J2000.0 epoch
	// (2000-01-01 12:00:00 TT).
	J2000JD = 2451545.0

	// DaysPerCentury is the number of days in a Julian century.
	DaysPerCentury = 36525.0

	// SecondsPerDay is the number of SI seconds in a day.
	SecondsPerDay = 86400.0

	// ArcsecToRad converts arcseconds to radians.
	ArcsecToRad = math.Pi / (180.0 * 3600.0)

	// deg2rad converts degrees to radians.
	deg2rad = math.Pi / 180.0

	// MuEarth is Earth's gravitational parameter (m^3/s^2, WGS84).
	MuEarth = 3.986004418e14

	// MuMoon is the Moon's gravitational parameter (m^3/s^2).
	MuMoon = 4.902800066e12

	// AUMetres is the IAU 2012 astronomical unit in metres.
	AUMetres = 149_597_870_700.0

	// EarthRadiusMean is Earth's mean radius in metres (WGS84).
	EarthRadiusMean = 6_371_008.8

	// EarthRadiusEquatorial is Earth's equatorial radius in metres (WGS84).
	EarthRadiusEquatorial = 6_378_137.0

	// EarthRadiusPolar is Earth's polar radius in metres (WGS84).
	EarthRadiusPolar = 6_356_752.314245

	// MoonRadiusMean is the Moon's mean radius in metres (IAU/IAG).
	MoonRadiusMean = 1_737_400.0

	// SpeedOfLight is the speed of light in vacuum, m/s (exact).
	SpeedOfLight = 299_792_458.0

	// EarthRotationRate is Earth's mean rotation rate, rad/s.
	EarthRotationRate = 7.2921151467e-5
)

// Lunar orientation constants (IAU 2009), used by MCIToICRSRotation.
const (
	// LunarRADeg is the right ascension of the lunar north pole, degrees.
	LunarRADeg = 269.9949

	// LunarDecDeg is the declination of the lunar north pole, degrees.
	LunarDecDeg = 66.5392

	// LunarWDeg is the lunar prime-meridian angle, degrees.
	LunarWDeg = 38.3213
)

// UTCToJulianDate converts a UTC instant to a Julian Date, treating UTC as
// UT1 (the UT1-UTC correction is out of scope for this core).
func UTCToJulianDate(unixSeconds float64) float64 {
	return unixSeconds/SecondsPerDay + 2440587.5
}

// EarthRotationAngle returns the Earth Rotation Angle at the given Julian
// Date, in radians, monotone modulo 2π in jd.
//
// Reference: IERS Conventions 2010, Chapter 5, Equation 5.15.
func EarthRotationAngle(jd float64) float64 {
	d := jd - J2000JD
	frac := 0.7790572732640 + 1.0027378119113546*d
	frac -= math.Floor(frac)
	return 2.0 * math.Pi * frac
}
