// Package astroerr defines the single tagged error type shared across this
// library's celestial-mechanics packages.
//
// Following the teacher's practice of exported sentinel-style error values
// rather than ad hoc fmt.Errorf chains, every failure path in this module
// returns a *astroerr.Error carrying one of four kinds. Lower-level causes
// are attached via github.com/pkg/errors and exposed through Unwrap, so
// callers can still reach the original failure with errors.Is and
// errors.As. *Error has no Cause method, so github.com/pkg/errors.Cause
// applied to an *Error returns the *Error itself.
package astroerr

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Kind distinguishes the four ways a celestial computation can fail.
type Kind int

const (
	// EpochOutOfRange is returned only by ValidateEpoch; other functions
	// accept arbitrary epochs and may silently produce reduced-accuracy
	// results instead of failing.
	EpochOutOfRange Kind = iota

	// TimeScaleConversionFailed is reserved for time-scale conversions
	// that cannot produce a result; the core does not currently produce
	// it.
	TimeScaleConversionFailed

	// InvalidCoordinates is returned by TLE parsing and any future
	// coordinate validator.
	InvalidCoordinates

	// NumericalPrecisionError is reserved for solver non-convergence
	// reporting; the fixed-iteration Kepler solver does not currently
	// produce it.
	NumericalPrecisionError
)

// String renders the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case EpochOutOfRange:
		return "EpochOutOfRange"
	case TimeScaleConversionFailed:
		return "TimeScaleConversionFailed"
	case InvalidCoordinates:
		return "InvalidCoordinates"
	case NumericalPrecisionError:
		return "NumericalPrecisionError"
	default:
		return "Unknown"
	}
}

// Error is the tagged error type returned by every fallible operation in
// this library. Exactly one of its payload fields is meaningful, selected
// by Kind.
type Error struct {
	Kind   Kind
	Reason string

	// Epoch, MinJD, and MaxJD are populated only when Kind is
	// EpochOutOfRange.
	Epoch      time.Time
	MinJD      float64
	MaxJD      float64

	// Err, when non-nil, is the wrapped lower-level cause (set via
	// Wrap).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case EpochOutOfRange:
		return fmt.Sprintf("epoch %s is outside valid range [JD %g, JD %g]", e.Epoch.Format(time.RFC3339), e.MinJD, e.MaxJD)
	case TimeScaleConversionFailed:
		return fmt.Sprintf("time scale conversion failed: %s", e.Reason)
	case InvalidCoordinates:
		return fmt.Sprintf("invalid celestial coordinates: %s", e.Reason)
	case NumericalPrecisionError:
		return fmt.Sprintf("numerical precision error: %s", e.Reason)
	default:
		return fmt.Sprintf("astroerr: %s", e.Reason)
	}
}

// Unwrap lets errors.Is / errors.As see through to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewEpochOutOfRange builds an EpochOutOfRange error.
func NewEpochOutOfRange(epoch time.Time, minJD, maxJD float64) *Error {
	return &Error{Kind: EpochOutOfRange, Epoch: epoch, MinJD: minJD, MaxJD: maxJD}
}

// NewInvalidCoordinates builds an InvalidCoordinates error with the given
// human-readable reason.
func NewInvalidCoordinates(reason string) *Error {
	return &Error{Kind: InvalidCoordinates, Reason: reason}
}

// NewNumericalPrecisionError builds a NumericalPrecisionError with the
// given human-readable reason.
func NewNumericalPrecisionError(reason string) *Error {
	return &Error{Kind: NumericalPrecisionError, Reason: reason}
}

// Wrap attaches a lower-level cause to reason and returns an
// InvalidCoordinates error. The cause is wrapped with github.com/pkg/errors
// and stored in Err, where Unwrap exposes it to errors.Is and errors.As.
func Wrap(cause error, reason string) *Error {
	return &Error{Kind: InvalidCoordinates, Reason: reason, Err: errors.Wrap(cause, reason)}
}
