package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, dataSize, headerSize int) *PlaceholderCache[string] {
	t.Helper()
	c, err := NewPlaceholderCache[string](dataSize, headerSize, NewIDAllocator(DefaultMinID, DefaultMaxID))
	require.NoError(t, err)
	return c
}

func TestPlaceholderCache_DataGrowthAndReuse(t *testing.T) {
	c := newTestCache(t, DefaultDataCacheSize, DefaultHeaderCacheSize)

	first, err := c.DataList(5, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, int64(-1), first[0].ID)
	assert.Equal(t, int64(-2), first[1].ID)

	grown, err := c.DataList(5, 4)
	require.NoError(t, err)
	require.Len(t, grown, 4)
	// Existing objects are reused, the rest are appended.
	assert.Same(t, first[0], grown[0])
	assert.Same(t, first[1], grown[1])
	// Every returned object gets a fresh id, reused ones included.
	assert.Equal(t, []int64{-3, -4, -5, -6}, []int64{grown[0].ID, grown[1].ID, grown[2].ID, grown[3].ID})

	shrunk, err := c.DataList(5, 3)
	require.NoError(t, err)
	require.Len(t, shrunk, 3)
	for i := range shrunk {
		assert.Same(t, grown[i], shrunk[i])
		assert.Equal(t, PlaceholderType(5), shrunk[i].Type)
		assert.True(t, shrunk[i].Placeholder)
	}
	assert.Equal(t, int64(-7), shrunk[0].ID)
	// Entries beyond the requested count keep their previous id.
	assert.Equal(t, int64(-6), grown[3].ID)
}

func TestPlaceholderCache_Header(t *testing.T) {
	c := newTestCache(t, DefaultDataCacheSize, DefaultHeaderCacheSize)

	h1, err := c.Header(5)
	require.NoError(t, err)
	assert.Equal(t, PlaceholderHeaderType(5), h1.Type)
	assert.True(t, h1.Placeholder)

	h2, err := c.Header(5)
	require.NoError(t, err)
	assert.Same(t, h1, h2)
	assert.Equal(t, int64(-2), h2.ID)

	other, err := c.Header(6)
	require.NoError(t, err)
	assert.NotSame(t, h1, other)
}

func TestPlaceholderCache_Eviction(t *testing.T) {
	c := newTestCache(t, 1, 1)

	a, err := c.DataList(1, 1)
	require.NoError(t, err)
	_, err = c.DataList(2, 1)
	require.NoError(t, err)

	again, err := c.DataList(1, 1)
	require.NoError(t, err)
	assert.NotSame(t, a[0], again[0])

	data, headers := c.Len()
	assert.Equal(t, 1, data)
	assert.Equal(t, 0, headers)
}

func TestPlaceholderCache_Errors(t *testing.T) {
	c, err := NewPlaceholderCache[string](4, 4, NewIDAllocator(-2, -1))
	require.NoError(t, err)

	_, err = c.DataList(1, 0)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = c.DataList(1, 2)
	assert.ErrorIs(t, err, ErrRangeExhausted)
	data, _ := c.Len()
	assert.Equal(t, 0, data, "failed request must not populate the cache")

	_, err = NewPlaceholderCache[string](0, 4, NewIDAllocator(-2, -1))
	assert.Error(t, err)
}
