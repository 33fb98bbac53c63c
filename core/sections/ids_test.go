package sections

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDAllocator_Next(t *testing.T) {
	a := NewIDAllocator(-4, -1)

	seen := make(map[int64]struct{})
	for _, want := range []int64{-1, -2, -3} {
		id, err := a.Next()
		require.NoError(t, err)
		assert.Equal(t, want, id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 3)

	_, err := a.Next()
	assert.ErrorIs(t, err, ErrRangeExhausted)
	assert.Equal(t, KindRangeExhausted, Classify(err))

	// Exhaustion is sticky until the range is widened.
	_, err = a.Next()
	assert.ErrorIs(t, err, ErrRangeExhausted)

	a.SetRange(-10, -5)
	id, err := a.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(-5), id)
}

func TestIDAllocator_NextN(t *testing.T) {
	a := NewIDAllocator(0, 3)

	ids, err := a.NextN(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2}, ids)

	// Not enough ids left: nothing is consumed.
	_, err = a.NextN(2)
	assert.ErrorIs(t, err, ErrRangeExhausted)
	assert.Equal(t, uint64(1), a.Remaining())

	_, err = a.NextN(-1)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestIDAllocator_DefaultRange(t *testing.T) {
	a := NewIDAllocator(DefaultMinID, DefaultMaxID)
	assert.Equal(t, uint64(math.MaxInt64), a.Remaining())

	wide := NewIDAllocator(math.MinInt64, math.MaxInt64)
	assert.Equal(t, uint64(math.MaxUint64), wide.Remaining())
}
