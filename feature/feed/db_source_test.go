package feed

import (
	"context"
	"errors"
	"testing"

	"level-list/feature/feed/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func feedRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "type", "position", "title", "body", "is_header"})
}

func TestDBSource_Load(t *testing.T) {
	db, sqlMock := setupMockDB(t)

	rows := feedRows().
		AddRow(10, 1, 0, "News", "", true).
		AddRow(1, 1, 1, "First", "a", false).
		AddRow(11, 1, 2, "Second title", "", true).
		AddRow(2, 1, 3, "Second", "b", false)
	sqlMock.ExpectQuery("SELECT \\* FROM `feed_items` WHERE type = \\? ORDER BY position").
		WithArgs(1).
		WillReturnRows(rows)

	sec, err := NewDBSource(db).Load(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, sec.Header)
	assert.Equal(t, models.Row{ID: 10, Title: "News"}, *sec.Header)
	assert.Equal(t, []models.Row{{ID: 1, Title: "First", Body: "a"}, {ID: 2, Title: "Second", Body: "b"}}, sec.Rows)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDBSource_LoadEmpty(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	sqlMock.ExpectQuery("SELECT \\* FROM `feed_items`").WithArgs(7).WillReturnRows(feedRows())

	sec, err := NewDBSource(db).Load(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, sec.Header)
	assert.Empty(t, sec.Rows)
}

func TestDBSource_LoadError(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	sqlMock.ExpectQuery("SELECT \\* FROM `feed_items`").WillReturnError(errors.New("connection reset"))

	_, err := NewDBSource(db).Load(context.Background(), 1)
	assert.ErrorContains(t, err, "failed to load section 1")
}

func TestDBSource_Check(t *testing.T) {
	columns := func(names ...string) *sqlmock.Rows {
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		for _, n := range names {
			rows.AddRow(n, "int", "NO", "", nil, "")
		}
		return rows
	}

	t.Run("Complete", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `feed_items`").
			WillReturnRows(columns("id", "type", "position", "title", "body", "is_header"))
		assert.NoError(t, NewDBSource(db).Check(context.Background()))
	})

	t.Run("Missing", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `feed_items`").
			WillReturnRows(columns("id", "type", "title"))
		err := NewDBSource(db).Check(context.Background())
		assert.ErrorContains(t, err, "missing columns: position, body, is_header")
	})
}
