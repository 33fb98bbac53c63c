package feed

import (
	"context"
	"fmt"

	"level-list/core/storage"
	"level-list/feature/feed/models"

	"gorm.io/gorm"
)

// Source loads the content of a feed section.
type Source interface {
	// Name returns the source kind.
	Name() string
	// Check verifies the source can serve loads.
	Check(ctx context.Context) error
	// Load returns the current content of section type t.
	Load(ctx context.Context, t int) (models.Section, error)
}

// NewSource builds the source selected by cfg.
func NewSource(cfg Config, db *gorm.DB, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceDB:
		if db == nil {
			return nil, fmt.Errorf("db source: database connection unavailable")
		}
		return NewDBSource(db), nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("storage source: storage client unavailable")
		}
		return NewStorageSource(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Source, ErrUnknownSource)
	}
}
