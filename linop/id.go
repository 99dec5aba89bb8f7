package linop

import "sync/atomic"

// IDSource hands out process-unique, monotonically increasing identities
// for variables and constraints.
//
// Implementations must be safe for concurrent use; the atomic source
// returned by NewIDSource is the only synchronization this module needs.
// Inject a fresh source in tests for deterministic identities.
type IDSource interface {
	// NextID returns a fresh identity, strictly greater than every
	// identity previously returned by this source.
	NextID() int64
}

// DefaultIDs is the package-wide source used when no source is injected.
// It is append-only for the life of the process and has no teardown.
var DefaultIDs = NewIDSource()

// NewIDSource returns an independent atomic IDSource starting at 1.
func NewIDSource() IDSource {
	return new(atomicIDSource)
}

// atomicIDSource implements IDSource with a single atomic counter.
type atomicIDSource struct {
	last atomic.Int64 // last identity handed out; next is last+1
}

// NextID atomically advances the counter and returns the new identity.
// Complexity: O(1); lock-free.
func (s *atomicIDSource) NextID() int64 {
	return s.last.Add(1)
}
