// Package ephemeris bundles a frame-tagged position (and optionally
// velocity) with a UTC epoch. Both types are plain value types: only
// constructors, accessors, destructuring, and immutable with-style
// updaters — no invariants beyond those of their component fields.
package ephemeris

import (
	"time"

	"github.com/anupshinde/goeph-frames/frame"
	"gonum.org/v1/gonum/spatial/r3"
)

// TimedCoordinate is a Coordinate⟨F⟩ paired with the UTC epoch at which it
// is valid.
type TimedCoordinate[F frame.Tag] struct {
	position frame.Coordinate[F]
	epoch    time.Time
}

// NewTimedCoordinate builds a TimedCoordinate.
func NewTimedCoordinate[F frame.Tag](position frame.Coordinate[F], epoch time.Time) TimedCoordinate[F] {
	return TimedCoordinate[F]{position: position, epoch: epoch}
}

// Position returns the coordinate.
func (t TimedCoordinate[F]) Position() frame.Coordinate[F] { return t.position }

// Epoch returns the epoch.
func (t TimedCoordinate[F]) Epoch() time.Time { return t.epoch }

// IntoParts destructures into position and epoch.
func (t TimedCoordinate[F]) IntoParts() (frame.Coordinate[F], time.Time) {
	return t.position, t.epoch
}

// WithPosition returns a copy with a new position, same epoch.
func (t TimedCoordinate[F]) WithPosition(position frame.Coordinate[F]) TimedCoordinate[F] {
	t.position = position
	return t
}

// WithEpoch returns a copy with a new epoch, same position.
func (t TimedCoordinate[F]) WithEpoch(epoch time.Time) TimedCoordinate[F] {
	t.epoch = epoch
	return t
}

// EphemerisState is a complete state: position, velocity (m/s, expressed in
// the position's frame F), and epoch. The velocity is a plain r3.Vec: the
// frame is not carried in its type.
type EphemerisState[F frame.Tag] struct {
	position frame.Coordinate[F]
	velocity r3.Vec
	epoch    time.Time
}

// NewEphemerisState builds an EphemerisState.
func NewEphemerisState[F frame.Tag](position frame.Coordinate[F], velocity r3.Vec, epoch time.Time) EphemerisState[F] {
	return EphemerisState[F]{position: position, velocity: velocity, epoch: epoch}
}

// Position returns the position.
func (s EphemerisState[F]) Position() frame.Coordinate[F] { return s.position }

// Velocity returns the velocity, in metres per second.
func (s EphemerisState[F]) Velocity() r3.Vec { return s.velocity }

// Epoch returns the epoch.
func (s EphemerisState[F]) Epoch() time.Time { return s.epoch }

// IntoParts destructures into position, velocity, and epoch.
func (s EphemerisState[F]) IntoParts() (frame.Coordinate[F], r3.Vec, time.Time) {
	return s.position, s.velocity, s.epoch
}

// WithPosition returns a copy with a new position.
func (s EphemerisState[F]) WithPosition(position frame.Coordinate[F]) EphemerisState[F] {
	s.position = position
	return s
}

// WithVelocity returns a copy with a new velocity.
func (s EphemerisState[F]) WithVelocity(velocity r3.Vec) EphemerisState[F] {
	s.velocity = velocity
	return s
}

// WithEpoch returns a copy with a new epoch.
func (s EphemerisState[F]) WithEpoch(epoch time.Time) EphemerisState[F] {
	s.epoch = epoch
	return s
}

// TimedCoordinate projects the state down to just its position and epoch.
func (s EphemerisState[F]) TimedCoordinate() TimedCoordinate[F] {
	return NewTimedCoordinate(s.position, s.epoch)
}
