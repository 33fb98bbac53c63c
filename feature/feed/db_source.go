package feed

import (
	"context"
	"fmt"
	"strings"

	"level-list/core/database"
	"level-list/feature/feed/models"

	"gorm.io/gorm"
)

// DBSource loads sections from the feed_items table.
type DBSource struct {
	db *gorm.DB
}

// NewDBSource creates a source reading from db.
func NewDBSource(db *gorm.DB) *DBSource {
	return &DBSource{db: db}
}

// Name returns the source kind.
func (s *DBSource) Name() string {
	return SourceDB
}

// Check verifies the feed_items table has every column the source reads.
func (s *DBSource) Check(ctx context.Context) error {
	var model models.FeedItem
	missing, err := database.MissingColumns(s.db.WithContext(ctx), model.TableName(), model.Columns())
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", model.TableName(), strings.Join(missing, ", "))
	}
	return nil
}

// Load returns the rows of type t ordered by position. The first header row is the section title.
func (s *DBSource) Load(ctx context.Context, t int) (models.Section, error) {
	var items []models.FeedItem
	err := s.db.WithContext(ctx).
		Where("type = ?", t).
		Order("position").
		Find(&items).Error
	if err != nil {
		return models.Section{}, fmt.Errorf("failed to load section %d: %w", t, err)
	}

	var sec models.Section
	for _, it := range items {
		row := models.Row{ID: it.ID, Title: it.Title, Body: it.Body}
		if it.IsHeader {
			if sec.Header == nil {
				sec.Header = &row
			}
			continue
		}
		sec.Rows = append(sec.Rows, row)
	}
	return sec, nil
}
