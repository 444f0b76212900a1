// Package cachedtransform memoizes a time-dependent RigidBodyTransform so
// repeated lookups at nearby epochs avoid recomputing the underlying
// rotation.
package cachedtransform

import (
	"sync"
	"time"

	"github.com/anupshinde/goeph-frames/frame"
	"github.com/anupshinde/goeph-frames/transform"
)

type cacheEntry[From, To frame.Tag] struct {
	tr    transform.RigidBodyTransform[From, To]
	epoch time.Time
}

// CachedTransform caches a RigidBodyTransform keyed by epoch, invalidating
// it once a request's epoch differs from the cached one by more than
// Tolerance. It is born empty. The read path takes a shared lock; on a
// cache hit it returns immediately. On a miss, compute runs with no lock
// held, and the result is published under an exclusive lock — so a
// concurrent reader may observe the previous (stale) entry while a new one
// is being computed, by design.
//
// Cloning a CachedTransform shares the cache by reference: both copies see
// each other's writes.
type CachedTransform[From, To frame.Tag] struct {
	mu        *sync.RWMutex
	entry     **cacheEntry[From, To]
	tolerance time.Duration
}

// New creates an empty CachedTransform with the given invalidation
// tolerance.
func New[From, To frame.Tag](tolerance time.Duration) CachedTransform[From, To] {
	var entry *cacheEntry[From, To]
	return CachedTransform[From, To]{
		mu:        &sync.RWMutex{},
		entry:     &entry,
		tolerance: tolerance,
	}
}

// GetOrCompute returns the cached transform if epoch is within tolerance
// of the cached epoch; otherwise it calls compute(epoch), publishes the
// result, and returns it.
func (c CachedTransform[From, To]) GetOrCompute(epoch time.Time, compute func(time.Time) transform.RigidBodyTransform[From, To]) transform.RigidBodyTransform[From, To] {
	c.mu.RLock()
	current := *c.entry
	if current != nil && withinTolerance(epoch, current.epoch, c.tolerance) {
		tr := current.tr
		c.mu.RUnlock()
		return tr
	}
	c.mu.RUnlock()

	computed := compute(epoch)

	c.mu.Lock()
	*c.entry = &cacheEntry[From, To]{tr: computed, epoch: epoch}
	c.mu.Unlock()

	return computed
}

// Invalidate clears the cached entry.
func (c CachedTransform[From, To]) Invalidate() {
	c.mu.Lock()
	*c.entry = nil
	c.mu.Unlock()
}

// IsValidFor reports whether the cache currently holds an entry valid for
// epoch, without computing anything.
func (c CachedTransform[From, To]) IsValidFor(epoch time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	current := *c.entry
	if current == nil {
		return false
	}
	return withinTolerance(epoch, current.epoch, c.tolerance)
}

// withinTolerance compares two epochs by whole seconds, matching the
// contract's "compared by whole-seconds" tolerance check.
func withinTolerance(a, b time.Time, tolerance time.Duration) bool {
	diffSeconds := int64(a.Sub(b).Seconds())
	if diffSeconds < 0 {
		diffSeconds = -diffSeconds
	}
	toleranceSeconds := int64(tolerance.Seconds())
	return diffSeconds <= toleranceSeconds
}
