package ephemeris

import (
	"testing"
	"time"

	"github.com/anupshinde/goeph-frames/frame"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTimedCoordinateAccessors(t *testing.T) {
	pos := frame.NewCoordinate[frame.ICRS](1, 2, 3)
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimedCoordinate(pos, epoch)

	require.Equal(t, pos, tc.Position())
	require.Equal(t, epoch, tc.Epoch())

	gotPos, gotEpoch := tc.IntoParts()
	require.Equal(t, pos, gotPos)
	require.Equal(t, epoch, gotEpoch)
}

func TestTimedCoordinateWithUpdaters(t *testing.T) {
	pos := frame.NewCoordinate[frame.ICRS](1, 2, 3)
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tc := NewTimedCoordinate(pos, epoch)

	newPos := frame.NewCoordinate[frame.ICRS](4, 5, 6)
	updated := tc.WithPosition(newPos)
	require.Equal(t, newPos, updated.Position())
	require.Equal(t, epoch, updated.Epoch())
	require.Equal(t, pos, tc.Position()) // original untouched

	newEpoch := epoch.Add(time.Hour)
	updated2 := tc.WithEpoch(newEpoch)
	require.Equal(t, pos, updated2.Position())
	require.Equal(t, newEpoch, updated2.Epoch())
}

func TestEphemerisStateAccessorsAndUpdaters(t *testing.T) {
	pos := frame.NewCoordinate[frame.ICRS](1, 2, 3)
	vel := r3.Vec{X: 10, Y: 0, Z: 0}
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	state := NewEphemerisState(pos, vel, epoch)

	require.Equal(t, pos, state.Position())
	require.Equal(t, vel, state.Velocity())
	require.Equal(t, epoch, state.Epoch())

	newVel := r3.Vec{X: 0, Y: 10, Z: 0}
	updated := state.WithVelocity(newVel)
	require.Equal(t, newVel, updated.Velocity())
	require.Equal(t, vel, state.Velocity())

	tc := state.TimedCoordinate()
	require.Equal(t, pos, tc.Position())
	require.Equal(t, epoch, tc.Epoch())
}
