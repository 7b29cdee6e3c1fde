package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestUnknownVariantError(t *testing.T) {
	err := NewUnknownVariantError("comic")

	expected := `unknown book type "comic"`
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}

	if !IsUnknownVariantError(err) {
		t.Fatalf("IsUnknownVariantError returned false for UnknownVariantError")
	}

	wrapped := fmt.Errorf("create book: %w", err)
	if !IsUnknownVariantError(wrapped) {
		t.Fatalf("IsUnknownVariantError returned false for wrapped UnknownVariantError")
	}
}

func TestMissingFieldError(t *testing.T) {
	tests := []struct {
		name     string
		err      *MissingFieldError
		expected string
	}{
		{
			name:     "absent",
			err:      NewMissingFieldError("author"),
			expected: `missing required field "author"`,
		},
		{
			name:     "wrong type",
			err:      NewInvalidFieldError("year", "expected integer, got string"),
			expected: `field "year": expected integer, got string`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Fatalf("Error message = %q, want %q", tt.err.Error(), tt.expected)
			}
			if !IsMissingFieldError(stdErrors.Join(tt.err)) {
				t.Fatalf("IsMissingFieldError returned false for wrapped MissingFieldError")
			}
		})
	}
}

func TestBuilderMismatchError(t *testing.T) {
	err := NewBuilderMismatchError("MakeAcademicBook", "AcademicBook", "FictionBook")

	expected := "recipe MakeAcademicBook needs a AcademicBook builder, have FictionBook"
	if err.Error() != expected {
		t.Fatalf("Error message = %q, want %q", err.Error(), expected)
	}
	if !IsBuilderMismatchError(err) {
		t.Fatalf("IsBuilderMismatchError returned false for BuilderMismatchError")
	}
}

func TestCorruptCatalogError(t *testing.T) {
	tests := []struct {
		name     string
		err      *CorruptCatalogError
		expected string
	}{
		{
			name:     "record",
			err:      NewCorruptCatalogError(2, `unknown type "Comic"`, nil),
			expected: `corrupt catalog record 2: unknown type "Comic"`,
		},
		{
			name:     "document",
			err:      NewCorruptCatalogError(-1, "", stdErrors.New("unexpected EOF")),
			expected: "corrupt catalog: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Fatalf("Error message = %q, want %q", tt.err.Error(), tt.expected)
			}
			if !IsCorruptCatalogError(fmt.Errorf("load: %w", tt.err)) {
				t.Fatalf("IsCorruptCatalogError returned false for wrapped CorruptCatalogError")
			}
		})
	}
}

func TestFileUnavailableError(t *testing.T) {
	err := NewFileUnavailableError("library.json", fs.ErrNotExist)

	if !IsFileUnavailableError(err) {
		t.Fatalf("IsFileUnavailableError returned false for FileUnavailableError")
	}
	if !stdErrors.Is(err, fs.ErrNotExist) {
		t.Fatalf("FileUnavailableError does not unwrap to fs.ErrNotExist")
	}
}

func TestStopProcessingError(t *testing.T) {
	err := NewStopProcessingError("user stopped")

	if err.Error() != "user stopped" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "user stopped")
	}

	if !IsStopProcessingError(err) {
		t.Fatalf("IsStopProcessingError returned false for StopProcessingError")
	}

	wrapped := stdErrors.Join(err)
	if !IsStopProcessingError(wrapped) {
		t.Fatalf("IsStopProcessingError returned false for wrapped StopProcessingError")
	}
}
