package tle

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const issLine1 = "1 25544U 98067A   20206.18539600  .00001406  00000-0  33518-4 0  9992"
const issLine2 = "2 25544  51.6461 339.8014 0001473  94.8340 265.2864 15.49309432236008"

func TestParseISSTle(t *testing.T) {
	tle, err := Parse(issLine1, issLine2)
	require.NoError(t, err)

	require.Equal(t, uint32(25544), tle.CatalogNumber)
	require.InDelta(t, 51.6461*degToRad, tle.Inclination, 1e-9)
	require.InDelta(t, 0.0001473, tle.Eccentricity, 1e-9)

	require.Equal(t, 2020, tle.Epoch.Year())
	require.Equal(t, time.July, tle.Epoch.Month())
	require.Equal(t, 24, tle.Epoch.Day())
}

func TestParseRejectsShortLines(t *testing.T) {
	_, err := Parse("1 25544U", issLine2)
	require.Error(t, err)
}

func TestParseRejectsWrongLineNumbers(t *testing.T) {
	_, err := Parse(issLine2, issLine1)
	require.Error(t, err)
}

func TestTleEpochToTimeDayOfYear(t *testing.T) {
	epoch := tleEpochToTime(2020, 206.18539600)

	require.Equal(t, 2020, epoch.Year())
	require.Equal(t, time.July, epoch.Month())
	require.Equal(t, 24, epoch.Day())
}

func TestToKeplerianSemiMajorAxisInRange(t *testing.T) {
	tle, err := Parse(issLine1, issLine2)
	require.NoError(t, err)

	elements := tle.ToKeplerian()

	aKm := elements.SemiMajorAxis / 1000.0
	require.Greater(t, aKm, 6700.0)
	require.Less(t, aKm, 6900.0)
	require.InDelta(t, tle.Eccentricity, elements.Eccentricity, 1e-12)
	require.InDelta(t, tle.Inclination, elements.Inclination, 1e-12)
}

func TestPropagateToReturnsFinitePosition(t *testing.T) {
	tle, err := Parse(issLine1, issLine2)
	require.NoError(t, err)

	target := tle.Epoch.Add(2 * time.Hour)
	pos, err := tle.PropagateTo(target)
	require.NoError(t, err)
	require.True(t, pos.ToCartesian().Finite())

	aKm := tle.ToKeplerian().SemiMajorAxis / 1000.0
	require.InDelta(t, aKm*1000.0, pos.DistanceFromOrigin(), 50_000.0)
}

func TestParseExtendedMetadata(t *testing.T) {
	_, meta, err := ParseExtended(issLine1, issLine2)
	require.NoError(t, err)

	require.Equal(t, byte('U'), meta.Classification)
	require.Equal(t, "98067A", meta.LaunchDesignator)
	require.Equal(t, 999, meta.ElementSetNumber)
	require.Equal(t, 23600, meta.RevolutionNumber)
	require.InDelta(t, 0.33518e-4, meta.BStarDrag, 1e-9)
}

func TestParseBStarNegativeMantissa(t *testing.T) {
	v, err := parseBStar("-12345-3")
	require.NoError(t, err)
	require.InDelta(t, -0.12345e-3, v, 1e-12)
}

func TestLineChecksumIsStable(t *testing.T) {
	cs := lineChecksum(issLine1)
	require.GreaterOrEqual(t, cs, 0)
	require.Less(t, cs, 10)
}

func TestCbrtConsistentWithMeanMotion(t *testing.T) {
	// Sanity check that a known mean motion near ISS's (~15.5 rev/day)
	// produces a semi-major axis consistent with Kepler's third law,
	// independent of the TLE parser.
	n := 15.49309432 * 2.0 * math.Pi / 86400.0
	a := math.Cbrt(398600441800000.0 / (n * n))
	require.Greater(t, a, 6_700_000.0)
	require.Less(t, a, 6_900_000.0)
}
