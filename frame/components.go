package frame

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CelestialComponents is a triple of length quantities in SI metres, backed
// by gonum's r3.Vec. It underlies every Coordinate in this package.
type CelestialComponents struct {
	vec r3.Vec
}

// NewCelestialComponents builds a components triple from metre values.
func NewCelestialComponents(xMetres, yMetres, zMetres float64) CelestialComponents {
	return CelestialComponents{vec: r3.Vec{X: xMetres, Y: yMetres, Z: zMetres}}
}

// FromMetres builds a components triple from a [3]float64 of metre values.
func FromMetres(m [3]float64) CelestialComponents {
	return NewCelestialComponents(m[0], m[1], m[2])
}

// FromVec builds a components triple directly from an r3.Vec of metres.
func FromVec(v r3.Vec) CelestialComponents {
	return CelestialComponents{vec: v}
}

// Metres returns the components as a [3]float64 in metres.
func (c CelestialComponents) Metres() [3]float64 {
	return [3]float64{c.vec.X, c.vec.Y, c.vec.Z}
}

// Vec returns the underlying r3.Vec, in metres.
func (c CelestialComponents) Vec() r3.Vec {
	return c.vec
}

// X returns the X component in metres.
func (c CelestialComponents) X() float64 { return c.vec.X }

// Y returns the Y component in metres.
func (c CelestialComponents) Y() float64 { return c.vec.Y }

// Z returns the Z component in metres.
func (c CelestialComponents) Z() float64 { return c.vec.Z }

// Finite reports whether all three components are finite, the sole
// invariant CelestialComponents (and the Coordinate built on it) must
// maintain.
func (c CelestialComponents) Finite() bool {
	return !math.IsInf(c.vec.X, 0) && !math.IsNaN(c.vec.X) &&
		!math.IsInf(c.vec.Y, 0) && !math.IsNaN(c.vec.Y) &&
		!math.IsInf(c.vec.Z, 0) && !math.IsNaN(c.vec.Z)
}

// Norm returns the Euclidean length of the components, in metres.
func (c CelestialComponents) Norm() float64 {
	return r3.Norm(c.vec)
}
