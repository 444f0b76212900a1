package kepler

import (
	"math"
	"time"

	"github.com/anupshinde/goeph-frames/rotations"
)

// newtonIterations is the fixed Newton-Raphson iteration count for solving
// Kepler's equation during propagation. This is a specified contract, not
// a convergence tolerance: the solver always runs exactly this many
// iterations and returns the last iterate with no convergence check, even
// though this may be insufficient very close to e=1. Preserving the fixed
// count keeps propagated outputs reproducible against existing results.
const newtonIterations = 10

// PropagateTo advances e's true anomaly from currentEpoch to targetEpoch
// under unperturbed two-body dynamics, returning a new Elements with every
// other field unchanged.
func (e Elements) PropagateTo(targetEpoch, currentEpoch time.Time) Elements {
	targetJD := rotations.UTCToJulianDate(float64(targetEpoch.UnixNano()) / 1e9)
	currentJD := rotations.UTCToJulianDate(float64(currentEpoch.UnixNano()) / 1e9)
	dt := (targetJD - currentJD) * rotations.SecondsPerDay

	n := math.Sqrt(e.Mu / (e.SemiMajorAxis * e.SemiMajorAxis * e.SemiMajorAxis))
	deltaM := n * dt

	ecc := e.Eccentricity
	eccAnomaly := 2 * math.Atan(math.Tan(e.TrueAnomaly/2)/math.Sqrt((1+ecc)/(1-ecc)))
	meanAnomaly := eccAnomaly - ecc*math.Sin(eccAnomaly)

	newMeanAnomaly := meanAnomaly + deltaM

	newEccAnomaly := newMeanAnomaly
	for i := 0; i < newtonIterations; i++ {
		newEccAnomaly -= (newEccAnomaly - ecc*math.Sin(newEccAnomaly) - newMeanAnomaly) / (1 - ecc*math.Cos(newEccAnomaly))
	}

	newTrueAnomaly := 2 * math.Atan(math.Sqrt((1+ecc)/(1-ecc))*math.Tan(newEccAnomaly/2))

	result := e
	result.TrueAnomaly = newTrueAnomaly
	return result
}
