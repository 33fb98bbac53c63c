package models

// FeedItem is one row of the feed_items table.
// A row with IsHeader set is the title of its section; at most one is used per type.
type FeedItem struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Type     int    `gorm:"column:type;index"`
	Position int    `gorm:"column:position"`
	Title    string `gorm:"column:title"`
	Body     string `gorm:"column:body"`
	IsHeader bool   `gorm:"column:is_header"`
}

// TableName overrides the table name used by FeedItem.
func (FeedItem) TableName() string {
	return "feed_items"
}

// Columns returns the columns FeedItem reads.
func (FeedItem) Columns() []string {
	return []string{"id", "type", "position", "title", "body", "is_header"}
}
