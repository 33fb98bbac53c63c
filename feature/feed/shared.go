package feed

import (
	"context"
	"strconv"

	"level-list/feature/feed/models"

	"golang.org/x/sync/singleflight"
)

// SharedSource collapses concurrent loads of the same section into one source call.
type SharedSource struct {
	Source
	sf singleflight.Group
}

// NewSharedSource wraps src.
func NewSharedSource(src Source) *SharedSource {
	return &SharedSource{Source: src}
}

// Load returns the content of section type t, sharing the result with concurrent callers.
// The returned rows are copied, so callers may keep or modify them.
func (s *SharedSource) Load(ctx context.Context, t int) (models.Section, error) {
	v, err, _ := s.sf.Do(strconv.Itoa(t), func() (interface{}, error) {
		return s.Source.Load(ctx, t)
	})
	if err != nil {
		return models.Section{}, err
	}

	sec := v.(models.Section)
	out := models.Section{Rows: append([]models.Row(nil), sec.Rows...)}
	if sec.Header != nil {
		h := *sec.Header
		out.Header = &h
	}
	return out, nil
}
