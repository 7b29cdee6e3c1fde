package datastore

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/bookshelf/internal/book"
	"github.com/lepinkainen/bookshelf/internal/codec"
)

// BooksTable is the table written by ExportCatalog.
const BooksTable = "books"

const booksSchema = `CREATE TABLE IF NOT EXISTS books (
		position INTEGER PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT,
		author TEXT,
		year INTEGER,
		genre TEXT,
		style TEXT,
		field TEXT,
		university TEXT,
		issue_number INTEGER,
		month TEXT
	)`

// ExportCatalog writes books into the books table of store, replacing its
// previous contents. The position column keeps catalog order.
func ExportCatalog(store Store, books []book.Book) error {
	if err := store.CreateTable(booksSchema); err != nil {
		return err
	}
	if err := store.ClearTable(BooksTable); err != nil {
		return err
	}

	records := make([]map[string]any, 0, len(books))
	for i, r := range codec.ToRecords(books) {
		records = append(records, recordToMap(i+1, r))
	}

	if err := store.BatchInsert(BooksTable, records); err != nil {
		return fmt.Errorf("failed to export catalog: %w", err)
	}

	slog.Info("Exported catalog to SQLite", "table", BooksTable, "books", len(records))
	return nil
}

// ExportCatalogToFile opens the SQLite database at dbPath and exports books into it.
func ExportCatalogToFile(dbPath string, books []book.Book) error {
	store := NewSQLiteStore(dbPath)
	if err := store.Connect(); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return ExportCatalog(store, books)
}

// recordToMap flattens a record into column values; extras of other variants are NULL.
func recordToMap(position int, r codec.Record) map[string]any {
	return map[string]any{
		"position":     position,
		"type":         string(r.Type),
		"title":        r.Title,
		"author":       r.Author,
		"year":         r.Year,
		"genre":        r.Genre,
		"style":        deref(r.Style),
		"field":        deref(r.Field),
		"university":   deref(r.University),
		"issue_number": deref(r.IssueNumber),
		"month":        deref(r.Month),
	}
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
