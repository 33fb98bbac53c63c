package sections

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Default placeholder cache capacities.
const (
	DefaultDataCacheSize   = 12
	DefaultHeaderCacheSize = 6
)

// PlaceholderCache reuses placeholder items per data type.
// Cached items are mutated in place on every request: ids are reassigned, objects are kept.
type PlaceholderCache[T any] struct {
	data    *lru.Cache[int, []*Item[T]]
	headers *lru.Cache[int, *Item[T]]
	ids     *IDAllocator
}

// NewPlaceholderCache creates the data and header caches with the given capacities.
func NewPlaceholderCache[T any](dataSize, headerSize int, ids *IDAllocator) (*PlaceholderCache[T], error) {
	data, err := lru.New[int, []*Item[T]](dataSize)
	if err != nil {
		return nil, fmt.Errorf("placeholder data cache: %w", err)
	}
	headers, err := lru.New[int, *Item[T]](headerSize)
	if err != nil {
		return nil, fmt.Errorf("placeholder header cache: %w", err)
	}
	return &PlaceholderCache[T]{data: data, headers: headers, ids: ids}, nil
}

// DataList returns count placeholder items for data type t.
// The cached list grows when shorter than count; the first count entries get fresh ids.
func (c *PlaceholderCache[T]) DataList(t, count int) ([]*Item[T], error) {
	if count < 1 {
		return nil, fmt.Errorf("placeholder data for type %d: %w", t, ErrInvalidCount)
	}

	ids, err := c.ids.NextN(count)
	if err != nil {
		return nil, fmt.Errorf("placeholder data for type %d: %w", t, err)
	}

	list, _ := c.data.Get(t)
	for len(list) < count {
		list = append(list, &Item[T]{Placeholder: true})
	}
	c.data.Add(t, list)

	for i := 0; i < count; i++ {
		item := list[i]
		item.ID = ids[i]
		item.Type = PlaceholderType(t)
		item.Placeholder = true
	}

	return list[:count:count], nil
}

// Header returns the cached placeholder header for data type t with a fresh id.
func (c *PlaceholderCache[T]) Header(t int) (*Item[T], error) {
	id, err := c.ids.Next()
	if err != nil {
		return nil, fmt.Errorf("placeholder header for type %d: %w", t, err)
	}

	header, ok := c.headers.Get(t)
	if !ok {
		header = &Item[T]{Placeholder: true}
		c.headers.Add(t, header)
	}

	header.ID = id
	header.Type = PlaceholderHeaderType(t)
	header.Placeholder = true

	return header, nil
}

// Len returns the number of cached data lists and headers.
func (c *PlaceholderCache[T]) Len() (data, headers int) {
	return c.data.Len(), c.headers.Len()
}
