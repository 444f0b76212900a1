package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngleConversions(t *testing.T) {
	a := AngleFromDegrees(180.0)
	require.InDelta(t, math.Pi, a.Radians(), 1e-15)
	require.InDelta(t, 180.0, a.Degrees(), 1e-12)
	require.InDelta(t, 12.0, a.Hours(), 1e-12)
	require.InDelta(t, 10800.0, a.Arcminutes(), 1e-8)
	require.InDelta(t, 648000.0, a.Arcseconds(), 1e-6)
}

func TestAngleFromHours(t *testing.T) {
	a := AngleFromHours(6.0)
	require.InDelta(t, 90.0, a.Degrees(), 1e-12)
}

func TestAngleFromRadians(t *testing.T) {
	a := NewAngle(math.Pi / 2)
	require.InDelta(t, 90.0, a.Degrees(), 1e-12)
}

func TestAngleDMS(t *testing.T) {
	a := AngleFromDegrees(41.0 + 30.0/60.0 + 15.5/3600.0)
	sign, deg, min, sec := a.DMS()
	require.Equal(t, 1.0, sign)
	require.Equal(t, 41, deg)
	require.Equal(t, 30, min)
	require.InDelta(t, 15.5, sec, 0.01)
}

func TestAngleDMSNegative(t *testing.T) {
	a := AngleFromDegrees(-29.5)
	sign, deg, min, sec := a.DMS()
	require.Equal(t, -1.0, sign)
	require.Equal(t, 29, deg)
	require.Equal(t, 30, min)
	require.Less(t, sec, 0.01)
}

func TestAngleHMS(t *testing.T) {
	a := AngleFromHours(17.0 + 45.0/60.0 + 40.0/3600.0)
	sign, h, m, s := a.HMS()
	require.Equal(t, 1.0, sign)
	require.Equal(t, 17, h)
	require.Equal(t, 45, m)
	require.InDelta(t, 40.0, s, 0.01)
}

func TestAngleZero(t *testing.T) {
	a := NewAngle(0)
	require.Zero(t, a.Degrees())
	require.Zero(t, a.Hours())
	require.Zero(t, a.Radians())
}

func TestDistanceConversions(t *testing.T) {
	d := NewDistance(AUMetres)
	require.InDelta(t, 1.0, d.AU(), 1e-12)
	require.InDelta(t, 149597870.7, d.Km(), 1e-6)
}

func TestDistanceFromKm(t *testing.T) {
	d := DistanceFromKm(149597870.7)
	require.InDelta(t, 1.0, d.AU(), 1e-9)
}

func TestDistanceFromAU(t *testing.T) {
	d := DistanceFromAU(5.2)
	require.InDelta(t, 5.2, d.AU(), 1e-12)
}

func TestDistanceLightSeconds(t *testing.T) {
	d := NewDistance(299792458.0)
	require.InDelta(t, 1.0, d.LightSeconds(), 1e-12)
}
