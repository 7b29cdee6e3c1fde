package errors

import (
	"errors"
	"fmt"
)

// CorruptCatalogError is returned when a catalog document, or one of its
// records, cannot be turned back into books.
type CorruptCatalogError struct {
	Index  int // record position, -1 for the document as a whole
	Detail string
	Err    error
}

func (e *CorruptCatalogError) Error() string {
	msg := "corrupt catalog"
	if e.Index >= 0 {
		msg = fmt.Sprintf("corrupt catalog record %d", e.Index)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CorruptCatalogError) Unwrap() error {
	return e.Err
}

// NewCorruptCatalogError creates a CorruptCatalogError for the record at index.
func NewCorruptCatalogError(index int, detail string, err error) *CorruptCatalogError {
	return &CorruptCatalogError{Index: index, Detail: detail, Err: err}
}

// IsCorruptCatalogError reports whether err is a CorruptCatalogError (even when wrapped).
func IsCorruptCatalogError(err error) bool {
	var target *CorruptCatalogError
	return errors.As(err, &target)
}

// FileUnavailableError is returned when the catalog file is missing or unreadable.
type FileUnavailableError struct {
	Path string
	Err  error
}

func (e *FileUnavailableError) Error() string {
	return fmt.Sprintf("catalog file %s unavailable: %v", e.Path, e.Err)
}

func (e *FileUnavailableError) Unwrap() error {
	return e.Err
}

// NewFileUnavailableError creates a FileUnavailableError.
func NewFileUnavailableError(path string, err error) *FileUnavailableError {
	return &FileUnavailableError{Path: path, Err: err}
}

// IsFileUnavailableError reports whether err is a FileUnavailableError (even when wrapped).
func IsFileUnavailableError(err error) bool {
	var target *FileUnavailableError
	return errors.As(err, &target)
}
