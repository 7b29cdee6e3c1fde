package datastore

// Store defines the interface for local SQLite storage
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// ClearTable deletes every row of table
	ClearTable(table string) error

	// BatchInsert inserts multiple records into the specified table
	BatchInsert(table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}
