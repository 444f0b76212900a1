package transform

import (
	"math"
	"testing"
	"time"

	"github.com/anupshinde/goeph-frames/frame"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestICRSECEFRoundTrip(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 11, 1, 18, 30, 0, 0, time.UTC),
	}
	c := frame.NewCoordinate[frame.ICRS](7000_000.0, 1234_000.0, -500_000.0)

	for _, tm := range times {
		out := ECEFToICRSAt(tm).Apply(ICRSToECEFAt(tm).Apply(c))
		require.Less(t, out.DistanceFrom(c), 1e-6)
	}
}

func TestMCIICRSRoundTrip(t *testing.T) {
	c := frame.NewCoordinate[frame.MCI](1_000_000.0, 500_000.0, 200_000.0)
	out := ICRSToMCI().Apply(MCIToICRS().Apply(c))
	require.Less(t, out.DistanceFrom(c), 1e-6)
}

func TestVelocityRoundTrip(t *testing.T) {
	tm := time.Date(2027, 7, 4, 12, 0, 0, 0, time.UTC)
	tr := ICRSToECEFAt(tm)
	inv := tr.Inverse()

	v := r3.Vec{X: 7500.0, Y: -120.0, Z: 30.0}
	roundTripped := inv.ApplyVelocity(tr.ApplyVelocity(v))

	diff := r3.Norm(r3.Sub(roundTripped, v))
	require.Less(t, diff, 1e-9*r3.Norm(v))
}

func TestEarthRotationDrift(t *testing.T) {
	c := frame.NewCoordinate[frame.ICRS](7_000_000.0, 0, 0)
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(24 * time.Hour)

	p0 := ICRSToECEFAt(t0).Apply(c)
	p1 := ICRSToECEFAt(t1).Apply(c)

	require.Greater(t, p0.DistanceFrom(p1), 100_000.0)
}

func TestVelocityTransformIsDirectRotation(t *testing.T) {
	tm := time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)
	tr := ICRSToECEFAt(tm)

	origin := frame.NewCoordinate[frame.ICRS](0, 0, 0)
	v := r3.Vec{X: 10.0, Y: 20.0, Z: -5.0}
	shifted := frame.FromCartesian[frame.ICRS](frame.FromVec(v))

	viaDifference := r3.Sub(tr.Apply(shifted).Vec(), tr.Apply(origin).Vec())
	direct := tr.ApplyVelocity(v)

	require.Less(t, r3.Norm(r3.Sub(viaDifference, direct)), 1e-9*math.Max(1, r3.Norm(v)))
}
