// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections from the application's
// configuration.
//
// # Connect
//
// Connect opens a pooled connection and pings it within the configured timeout. The feed
// treats the database as optional: a failed connection only disables the database source.
//
// # Schema Inspection
//
// GetTableColumns reads a table's column definitions; MissingColumns compares them against
// the columns a model needs, so a source can refuse to start on a stale schema.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "feed_items", []string{"id", "type"})
package database
