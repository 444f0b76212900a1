// Package tle parses NORAD Two-Line Element sets and bridges them into the
// Keplerian elements and state-vector machinery of package kepler.
//
// A TLE set is two fixed-column 69-character lines. This parser reads
// exactly the columns the format specifies; it does not validate checksums
// or most range constraints beyond what's needed to produce usable
// elements.
package tle

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/anupshinde/goeph-frames/astroerr"
	"github.com/anupshinde/goeph-frames/frame"
	"github.com/anupshinde/goeph-frames/kepler"
	"github.com/anupshinde/goeph-frames/rotations"
)

const lineLength = 69

const degToRad = math.Pi / 180.0

// TleElements holds the orbital parameters carried by a two-line element
// set: catalog number, epoch, and the six quantities needed to build a
// Keplerian orbit (inclination, RAAN, eccentricity, argument of perigee,
// mean anomaly, and mean motion).
type TleElements struct {
	CatalogNumber uint32
	Epoch         time.Time
	Inclination   float64 // radians
	RAAN          float64 // radians
	Eccentricity  float64
	ArgPerigee    float64 // radians
	MeanAnomaly   float64 // radians
	MeanMotion    float64 // revolutions per day
}

// Parse reads a TLE from its two lines. Both lines must be at least 69
// characters and start with their expected line number ('1' and '2'
// respectively); any other malformed field returns an
// astroerr.InvalidCoordinates error.
func Parse(line1, line2 string) (TleElements, error) {
	if len(line1) < lineLength || len(line2) < lineLength {
		return TleElements{}, astroerr.NewInvalidCoordinates("TLE lines must be at least 69 characters")
	}
	if !strings.HasPrefix(line1, "1") || !strings.HasPrefix(line2, "2") {
		return TleElements{}, astroerr.NewInvalidCoordinates("invalid TLE line numbers")
	}

	catalogNumber, err := strconv.ParseUint(strings.TrimSpace(line1[2:7]), 10, 32)
	if err != nil {
		return TleElements{}, astroerr.Wrap(err, "invalid catalog number")
	}

	epochYear, err := strconv.Atoi(strings.TrimSpace(line1[18:20]))
	if err != nil {
		return TleElements{}, astroerr.Wrap(err, "invalid epoch year")
	}
	if epochYear < 57 {
		epochYear += 2000
	} else {
		epochYear += 1900
	}

	epochDay, err := strconv.ParseFloat(strings.TrimSpace(line1[20:32]), 64)
	if err != nil {
		return TleElements{}, astroerr.Wrap(err, "invalid epoch day")
	}

	epoch := tleEpochToTime(epochYear, epochDay)

	inclinationDeg, err := strconv.ParseFloat(strings.TrimSpace(line2[8:16]), 64)
	if err != nil {
		return TleElements{}, astroerr.Wrap(err, "invalid inclination")
	}

	raanDeg, err := strconv.ParseFloat(strings.TrimSpace(line2[17:25]), 64)
	if err != nil {
		return TleElements{}, astroerr.Wrap(err, "invalid RAAN")
	}

	eccentricity, err := strconv.ParseFloat("0."+line2[26:33], 64)
	if err != nil {
		return TleElements{}, astroerr.Wrap(err, "invalid eccentricity")
	}

	argPerigeeDeg, err := strconv.ParseFloat(strings.TrimSpace(line2[34:42]), 64)
	if err != nil {
		return TleElements{}, astroerr.Wrap(err, "invalid argument of perigee")
	}

	meanAnomalyDeg, err := strconv.ParseFloat(strings.TrimSpace(line2[43:51]), 64)
	if err != nil {
		return TleElements{}, astroerr.Wrap(err, "invalid mean anomaly")
	}

	meanMotion, err := strconv.ParseFloat(strings.TrimSpace(line2[52:63]), 64)
	if err != nil {
		return TleElements{}, astroerr.Wrap(err, "invalid mean motion")
	}

	return TleElements{
		CatalogNumber: uint32(catalogNumber),
		Epoch:         epoch,
		Inclination:   inclinationDeg * degToRad,
		RAAN:          raanDeg * degToRad,
		Eccentricity:  eccentricity,
		ArgPerigee:    argPerigeeDeg * degToRad,
		MeanAnomaly:   meanAnomalyDeg * degToRad,
		MeanMotion:    meanMotion,
	}, nil
}

// tleEpochToTime converts a TLE epoch year and fractional day-of-year into
// a UTC time.Time.
func tleEpochToTime(year int, dayOfYear float64) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	dayFloor := math.Floor(dayOfYear)
	wholeDays := int64(dayFloor) - 1
	fractionalDay := dayOfYear - dayFloor
	seconds := int64(math.Round(fractionalDay * 86400.0))

	return jan1.AddDate(0, 0, int(wholeDays)).Add(time.Duration(seconds) * time.Second)
}

// ToKeplerian converts t to classical Keplerian elements.
//
// The semi-major axis is recovered from the mean motion via n² = μ/a³.
// The sixth orbital element slot is filled with the TLE's mean anomaly
// directly, without converting it to a true anomaly: this mirrors the
// upstream conversion this package is ported from, which carries the same
// simplification. Callers needing an exact state vector at the TLE epoch
// should treat the result as approximate near periapsis for eccentric
// orbits.
func (t TleElements) ToKeplerian() kepler.Elements {
	n := t.MeanMotion * 2.0 * math.Pi / rotations.SecondsPerDay
	mu := rotations.MuEarth
	a := math.Cbrt(mu / (n * n))

	return kepler.New(a, t.Eccentricity, t.Inclination, t.RAAN, t.ArgPerigee, t.MeanAnomaly)
}

// PropagateTo advances t to targetEpoch using simplified unperturbed
// two-body dynamics (package kepler), returning the resulting ICRS
// position. This is not an SGP4/SDP4 propagation and does not model drag,
// oblateness, or other perturbations; it exists for consistency checks and
// short-horizon estimates, not operational tracking.
func (t TleElements) PropagateTo(targetEpoch time.Time) (frame.Coordinate[frame.ICRS], error) {
	elements := t.ToKeplerian()
	propagated := elements.PropagateTo(targetEpoch, t.Epoch)
	state := propagated.ToStateVectors()
	return state.Position, nil
}
