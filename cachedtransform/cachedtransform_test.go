package cachedtransform

import (
	"testing"
	"time"

	"github.com/anupshinde/goeph-frames/frame"
	"github.com/anupshinde/goeph-frames/transform"
	"github.com/stretchr/testify/require"
)

func identity(time.Time) transform.RigidBodyTransform[frame.ICRS, frame.MCI] {
	return transform.Identity[frame.ICRS, frame.MCI]()
}

func TestCacheHitAvoidsRecompute(t *testing.T) {
	c := New[frame.ICRS, frame.MCI](60 * time.Second)
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	calls := 0
	compute := func(e time.Time) transform.RigidBodyTransform[frame.ICRS, frame.MCI] {
		calls++
		return identity(e)
	}

	c.GetOrCompute(epoch, compute)
	c.GetOrCompute(epoch, compute)

	require.Equal(t, 1, calls)
}

func TestCacheMissOnTimeChange(t *testing.T) {
	c := New[frame.ICRS, frame.MCI](10 * time.Second)
	epoch1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	epoch2 := epoch1.Add(20 * time.Second)

	calls := 0
	compute := func(e time.Time) transform.RigidBodyTransform[frame.ICRS, frame.MCI] {
		calls++
		return identity(e)
	}

	c.GetOrCompute(epoch1, compute)
	c.GetOrCompute(epoch2, compute)

	require.Equal(t, 2, calls)
}

func TestInvalidateClearsCache(t *testing.T) {
	c := New[frame.ICRS, frame.MCI](60 * time.Second)
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	c.GetOrCompute(epoch, identity)
	require.True(t, c.IsValidFor(epoch))

	c.Invalidate()
	require.False(t, c.IsValidFor(epoch))
}

func TestCloneSharesCacheByReference(t *testing.T) {
	c1 := New[frame.ICRS, frame.MCI](60 * time.Second)
	c2 := c1 // CachedTransform is a value type whose internals are pointers.

	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c1.GetOrCompute(epoch, identity)

	require.True(t, c2.IsValidFor(epoch))
}
