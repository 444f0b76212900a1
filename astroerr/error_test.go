package astroerr

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEpochOutOfRangeMessage(t *testing.T) {
	epoch := time.Date(1850, 1, 1, 0, 0, 0, 0, time.UTC)
	err := NewEpochOutOfRange(epoch, 2415020.5, 2488070.5)

	require.Equal(t, EpochOutOfRange, err.Kind)
	require.Contains(t, err.Error(), "2415020.5")
	require.Contains(t, err.Error(), "2488070.5")
}

func TestInvalidCoordinatesMessage(t *testing.T) {
	err := NewInvalidCoordinates("TLE lines must be at least 69 characters")
	require.Equal(t, InvalidCoordinates, err.Kind)
	require.Contains(t, err.Error(), "TLE lines must be at least 69 characters")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("strconv: parsing failed")
	err := Wrap(cause, "invalid mean motion")

	require.ErrorIs(t, err, cause)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "EpochOutOfRange", EpochOutOfRange.String())
	require.Equal(t, "NumericalPrecisionError", NumericalPrecisionError.String())
}
