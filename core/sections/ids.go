package sections

import (
	"fmt"
	"math"
)

// Default placeholder id range. Real data is expected to use ascending non-negative ids.
const (
	DefaultMinID int64 = math.MinInt64
	DefaultMaxID int64 = -1
)

// IDAllocator hands out decreasing ids from the half-open range [min, max).
// It is not safe for concurrent use.
type IDAllocator struct {
	min int64
	max int64
}

// NewIDAllocator creates an allocator over [minID, maxID).
func NewIDAllocator(minID, maxID int64) *IDAllocator {
	return &IDAllocator{min: minID, max: maxID}
}

// SetRange replaces the remaining range.
func (a *IDAllocator) SetRange(minID, maxID int64) {
	a.min = minID
	a.max = maxID
}

// Next returns the current upper bound and decrements it.
func (a *IDAllocator) Next() (int64, error) {
	if a.max <= a.min {
		return 0, ErrRangeExhausted
	}
	id := a.max
	a.max--
	return id, nil
}

// NextN returns n ids, or none at all if fewer than n remain.
func (a *IDAllocator) NextN(n int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("allocate %d ids: %w", n, ErrInvalidCount)
	}
	if uint64(n) > a.Remaining() {
		return nil, fmt.Errorf("allocate %d ids: %w", n, ErrRangeExhausted)
	}
	ids := make([]int64, n)
	for i := range ids {
		ids[i] = a.max
		a.max--
	}
	return ids, nil
}

// Remaining returns how many ids are left.
func (a *IDAllocator) Remaining() uint64 {
	if a.max <= a.min {
		return 0
	}
	return uint64(a.max) - uint64(a.min)
}
