package fileutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lepinkainen/bookshelf/internal/book"
	"github.com/lepinkainen/bookshelf/internal/codec"
	"github.com/lepinkainen/bookshelf/internal/errors"
)

// GetMarkdownFilePath returns the expected markdown file path for a given name
func GetMarkdownFilePath(name string, directory string) string {
	filename := SanitizeFilename(name)
	return filepath.Join(directory, filename+".md")
}

// SanitizeFilename cleans a filename by replacing problematic characters
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return name
}

// FileExists checks if a file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// WriteFileWithOverwrite writes data to a file, respecting the overwrite flag
// Returns true if the file was written, false if it was skipped
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return false, err
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, err
	}

	return true, nil
}

// WriteFileAtomic writes data to a temp file next to filePath and renames it
// over the target, so readers see either the old or the new content.
func WriteFileAtomic(filePath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	return os.Rename(tmp, filePath)
}

// LoadCatalog reads and decodes the catalog document at filePath. The format
// follows the file extension. A missing or unreadable file yields a
// FileUnavailableError.
func LoadCatalog(filePath string, opts codec.DecodeOptions) ([]book.Book, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.NewFileUnavailableError(filePath, err)
	}

	books, err := codec.Decode(data, codec.FormatForPath(filePath), opts)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded catalog", "filename", filePath, "books", len(books))
	return books, nil
}

// SaveCatalog encodes books and atomically replaces the document at filePath.
func SaveCatalog(filePath string, books []book.Book) error {
	format := codec.FormatForPath(filePath)
	data, err := codec.Encode(books, format)
	if err != nil {
		return err
	}

	if err := WriteFileAtomic(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", filePath, err)
	}

	slog.Debug("Saved catalog", "filename", filePath, "books", len(books), "format", format)
	return nil
}
