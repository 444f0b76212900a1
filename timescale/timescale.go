// Package timescale converts UTC instants to the Julian Dates of the other
// astronomical time scales this library needs (TAI, TT, UT1, TDB) and
// validates that an epoch falls within the supported 1900-2100 range.
//
// All leap-second and ΔT behaviour is intentionally simplified: LEAP is a
// single compile-time constant rather than an IERS Bulletin C table, and
// UT1-UTC is treated as zero. Both are explicit non-goals of this core.
package timescale

import (
	"math"
	"time"

	"github.com/anupshinde/goeph-frames/astroerr"
	"github.com/anupshinde/goeph-frames/rotations"
)

const (
	// Leap is the current leap-second count, a fixed compile-time
	// constant rather than a live IERS Bulletin C lookup.
	Leap = 37.0

	// TTMinusTAI is the defined constant offset between TT and TAI, in
	// seconds.
	TTMinusTAI = 32.184

	// MinValidYear and MaxValidYear bound the epoch range this core's
	// astronomical models are considered accurate over.
	MinValidYear = 1900
	MaxValidYear = 2100

	// MinValidJD and MaxValidJD are the Julian Date bounds corresponding
	// to MinValidYear/MaxValidYear, reported by ValidateEpoch failures.
	MinValidJD = 2415020.5
	MaxValidJD = 2488070.5
)

func jdUTC(utc time.Time) float64 {
	return rotations.UTCToJulianDate(float64(utc.UnixNano()) / 1e9)
}

// UTCToTAI returns the TAI Julian Date for a UTC instant: JD(utc) +
// Leap/86400.
func UTCToTAI(utc time.Time) float64 {
	return jdUTC(utc) + Leap/rotations.SecondsPerDay
}

// UTCToTT returns the TT Julian Date for a UTC instant: JD(utc) +
// (Leap+32.184)/86400.
func UTCToTT(utc time.Time) float64 {
	return jdUTC(utc) + (Leap+TTMinusTAI)/rotations.SecondsPerDay
}

// UTCToUT1 returns the UT1 Julian Date for a UTC instant. UT1-UTC is
// treated as zero, so this is simply JD(utc).
func UTCToUT1(utc time.Time) float64 {
	return jdUTC(utc)
}

// UTCToTDB returns the TDB Julian Date for a UTC instant: TT plus the
// periodic correction for Earth's orbital eccentricity,
// 0.001658·sin(g) + 0.000014·sin(2g) seconds, where g is Earth's mean
// anomaly.
func UTCToTDB(utc time.Time) float64 {
	tt := UTCToTT(utc)
	t := tt - rotations.J2000JD
	gDeg := 357.53 + 0.9856003*t
	g := gDeg * math.Pi / 180.0
	periodic := 0.001658*math.Sin(g) + 0.000014*math.Sin(2*g)
	return tt + periodic/rotations.SecondsPerDay
}

// TTToUTCApprox approximates the inverse of UTCToTT. It is non-invertible
// across a leap second boundary, hence "approx".
func TTToUTCApprox(ttJD float64) float64 {
	return ttJD - (Leap+TTMinusTAI)/rotations.SecondsPerDay
}

// ValidateEpoch fails when utc's year is outside [1900, 2100], carrying the
// instant and the implied Julian Date bounds. It succeeds for every other
// instant.
func ValidateEpoch(utc time.Time) error {
	year := utc.Year()
	if year < MinValidYear || year > MaxValidYear {
		return astroerr.NewEpochOutOfRange(utc, MinValidJD, MaxValidJD)
	}
	return nil
}
