package sections

import "reflect"

// NoHeaderKey is returned by HeaderKeyOf when a position has no sticky header group.
const NoHeaderKey int64 = -1

// DefaultViewType is returned by ViewTypeOf for positions without an item.
const DefaultViewType = -0xff

// Item is one entry of the flat list.
// The engine holds items by pointer and never copies them; identity matters for reuse.
type Item[T any] struct {
	// Type is the item type; its band decides data, header or placeholder.
	Type int

	// ID is the stable identifier used for diffing.
	ID int64

	// HeaderKey groups items under a sticky header.
	HeaderKey int64

	// Placeholder marks synthetic loading items produced by the placeholder cache.
	Placeholder bool

	// Value is the caller's payload. Zero for placeholders.
	Value T
}

// SameItem is the default identity rule: pointer equality or equal type, id and placeholder flag.
func SameItem[T any](a, b *Item[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Type == b.Type && a.ID == b.ID && a.Placeholder == b.Placeholder
}

// SameContent is the default content rule: same item, same header key and deeply equal payload.
func SameContent[T any](a, b *Item[T]) bool {
	if a == b {
		return true
	}
	if !SameItem(a, b) {
		return false
	}
	return a.HeaderKey == b.HeaderKey && reflect.DeepEqual(a.Value, b.Value)
}
