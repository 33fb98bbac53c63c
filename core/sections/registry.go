package sections

import "fmt"

// HeaderLevel is the level stored for header and placeholder header types.
// Headers have no position of their own; they always sit right before their level's data.
const HeaderLevel = -1

// Type band offsets. A data type t in [0, 1000) owns the companion types below.
const (
	headerOffset            = 1000
	placeholderOffset       = 2000
	placeholderHeaderOffset = 3000
	maxDataType             = 1000
)

// LayoutID identifies the rendering layout of a view type.
type LayoutID int

// UnknownLayout is returned by LayoutOf for view types without a registered layout.
const UnknownLayout LayoutID = 0

// Band is the numeric range an item type falls into.
type Band int

const (
	BandUnknown Band = iota
	BandData
	BandHeader
	BandPlaceholder
	BandPlaceholderHeader
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandData:
		return "data"
	case BandHeader:
		return "header"
	case BandPlaceholder:
		return "placeholder"
	case BandPlaceholderHeader:
		return "placeholder_header"
	default:
		return "unknown"
	}
}

// HeaderType returns the header companion of data type t.
func HeaderType(t int) int { return t - headerOffset }

// PlaceholderType returns the placeholder data companion of data type t.
func PlaceholderType(t int) int { return t - placeholderOffset }

// PlaceholderHeaderType returns the placeholder header companion of data type t.
func PlaceholderHeaderType(t int) int { return t - placeholderHeaderOffset }

// BandOf returns the band of item type t.
func BandOf(t int) Band {
	switch {
	case t >= 0 && t < maxDataType:
		return BandData
	case t >= -headerOffset && t < 0:
		return BandHeader
	case t >= -placeholderOffset && t < -headerOffset:
		return BandPlaceholder
	case t >= -placeholderHeaderOffset && t < -placeholderOffset:
		return BandPlaceholderHeader
	default:
		return BandUnknown
	}
}

// Registry maps item types to levels and layouts.
// Registrations are additive; there is no way to remove one.
type Registry struct {
	levels  map[int]int
	layouts map[int]LayoutID
}

// RegisterOption adds companion types to a registration.
type RegisterOption func(*registration)

type registration struct {
	header            *LayoutID
	placeholder       *LayoutID
	placeholderHeader *LayoutID
}

// WithHeaderLayout registers the header companion type with layout l.
func WithHeaderLayout(l LayoutID) RegisterOption {
	return func(r *registration) { r.header = &l }
}

// WithPlaceholderLayout registers the placeholder data companion type with layout l.
func WithPlaceholderLayout(l LayoutID) RegisterOption {
	return func(r *registration) { r.placeholder = &l }
}

// WithPlaceholderHeaderLayout registers the placeholder header companion type with layout l.
func WithPlaceholderHeaderLayout(l LayoutID) RegisterOption {
	return func(r *registration) { r.placeholderHeader = &l }
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		levels:  make(map[int]int),
		layouts: make(map[int]LayoutID),
	}
}

// Register maps data type t to level and layout, plus any companion types named by opts.
func (r *Registry) Register(t, level int, layout LayoutID, opts ...RegisterOption) error {
	if t < 0 || t >= maxDataType {
		return fmt.Errorf("register type %d: %w", t, ErrInvalidType)
	}
	if level < 0 {
		return fmt.Errorf("register type %d at level %d: %w", t, level, ErrInvalidLevel)
	}

	var reg registration
	for _, opt := range opts {
		opt(&reg)
	}

	r.put(t, level, layout)
	if reg.header != nil {
		r.put(HeaderType(t), HeaderLevel, *reg.header)
	}
	if reg.placeholder != nil {
		r.put(PlaceholderType(t), level, *reg.placeholder)
	}
	if reg.placeholderHeader != nil {
		r.put(PlaceholderHeaderType(t), HeaderLevel, *reg.placeholderHeader)
	}
	return nil
}

func (r *Registry) put(t, level int, layout LayoutID) {
	r.levels[t] = level
	r.layouts[t] = layout
}

// LevelOf returns the level of data type t.
func (r *Registry) LevelOf(t int) (int, error) {
	level, ok := r.levels[t]
	if !ok || level <= HeaderLevel {
		return 0, fmt.Errorf("level of type %d: %w", t, ErrInvalidRegistration)
	}
	return level, nil
}

// LayoutOf returns the layout of viewType, or UnknownLayout.
func (r *Registry) LayoutOf(viewType int) LayoutID {
	if l, ok := r.layouts[viewType]; ok {
		return l
	}
	return UnknownLayout
}

// Registered reports whether t has any registration, companion types included.
func (r *Registry) Registered(t int) bool {
	_, ok := r.levels[t]
	return ok
}

// HasLevel reports whether any data type is registered at level.
func (r *Registry) HasLevel(level int) bool {
	if level <= HeaderLevel {
		return false
	}
	for t, l := range r.levels {
		if l == level && BandOf(t) == BandData {
			return true
		}
	}
	return false
}
