package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		typ     int
		level   int
		wantErr error
	}{
		{"lowest data type", 0, 0, nil},
		{"highest data type", 999, 3, nil},
		{"type too large", 1000, 0, ErrInvalidType},
		{"negative type", -1, 0, ErrInvalidType},
		{"negative level", 5, -1, ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.typ, tt.level, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, r.Registered(tt.typ))
				return
			}
			require.NoError(t, err)
			level, err := r.LevelOf(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, LayoutID(7), r.LayoutOf(tt.typ))
		})
	}
}

func TestRegistry_CompanionTypes(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(1, 2, 10,
		WithHeaderLayout(11),
		WithPlaceholderLayout(12),
		WithPlaceholderHeaderLayout(13),
	))

	assert.Equal(t, LayoutID(11), r.LayoutOf(-999))
	assert.Equal(t, LayoutID(12), r.LayoutOf(-1999))
	assert.Equal(t, LayoutID(13), r.LayoutOf(-2999))

	// Headers have no level of their own.
	_, err := r.LevelOf(-999)
	assert.ErrorIs(t, err, ErrInvalidRegistration)
	_, err = r.LevelOf(-2999)
	assert.ErrorIs(t, err, ErrInvalidRegistration)

	// Placeholder data shares the level of its data type.
	level, err := r.LevelOf(-1999)
	require.NoError(t, err)
	assert.Equal(t, 2, level)

	assert.True(t, r.HasLevel(2))
	assert.False(t, r.HasLevel(0))
	assert.False(t, r.HasLevel(HeaderLevel))
}

func TestRegistry_Misses(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(3, 0, 30))

	_, err := r.LevelOf(4)
	assert.ErrorIs(t, err, ErrInvalidRegistration)
	assert.Equal(t, KindInvalidRegistration, Classify(err))

	// Header layout was not requested, so the companion stays unknown.
	assert.Equal(t, UnknownLayout, r.LayoutOf(HeaderType(3)))
	assert.Equal(t, UnknownLayout, r.LayoutOf(42))
}

func TestBandOf(t *testing.T) {
	assert.Equal(t, BandData, BandOf(0))
	assert.Equal(t, BandData, BandOf(999))
	assert.Equal(t, BandHeader, BandOf(HeaderType(0)))
	assert.Equal(t, BandHeader, BandOf(-1))
	assert.Equal(t, BandPlaceholder, BandOf(PlaceholderType(999)))
	assert.Equal(t, BandPlaceholder, BandOf(-2000))
	assert.Equal(t, BandPlaceholderHeader, BandOf(PlaceholderHeaderType(0)))
	assert.Equal(t, BandUnknown, BandOf(1000))
	assert.Equal(t, BandUnknown, BandOf(-3001))
	assert.Equal(t, "placeholder_header", BandPlaceholderHeader.String())
}
