package datastore

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface for local SQLite storage
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLiteStore instance
func NewSQLiteStore(dbPath string) *SQLiteStore {
	return &SQLiteStore{
		dbPath: dbPath,
	}
}

// Connect opens a connection to the SQLite database
func (s *SQLiteStore) Connect() error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

// CreateTable creates a new table with the given schema if it doesn't exist
func (s *SQLiteStore) CreateTable(schema string) error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// ClearTable deletes every row of table
func (s *SQLiteStore) ClearTable(table string) error {
	if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("failed to clear table %s: %w", table, err)
	}
	return nil
}

// BatchInsert inserts multiple records into the specified table in one transaction
func (s *SQLiteStore) BatchInsert(table string, records []map[string]any) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// Rollback after a successful commit is a no-op error, ignore it
		_ = tx.Rollback()
	}()

	// Column names come from the first record, sorted for a stable statement
	columns := make([]string, 0, len(records[0]))
	for col := range records[0] {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = "?"
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, record := range records {
		values := make([]any, len(columns))
		for i, col := range columns {
			values[i] = record[col]
		}

		if _, err := stmt.Exec(values...); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
