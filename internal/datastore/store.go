// Package datastore writes the catalog to a local SQLite database so
// it can be browsed with Datasette.
package datastore

// Store defines the interface for local SQLite storage
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// ReplaceAll clears the table and inserts the given records, so the
	// database always mirrors the current catalog
	ReplaceAll(table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}
