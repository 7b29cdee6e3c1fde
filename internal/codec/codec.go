// Package codec converts between books and the catalog file format: an
// ordered list of records, each tagged with its variant under "type".
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/bookshelf/internal/book"
	"github.com/lepinkainen/bookshelf/internal/errors"
)

// Format selects the document encoding.
type Format int

const (
	// FormatJSON is pretty-printed JSON, the default catalog format.
	FormatJSON Format = iota
	// FormatYAML is a YAML sequence of mappings.
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatForPath picks the format from the file extension: .yaml and .yml are
// YAML, everything else is JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Mode controls what Decode does with a record it cannot turn into a book.
type Mode int

const (
	// Strict fails the whole decode with a CorruptCatalogError.
	Strict Mode = iota
	// Skip drops the record and logs a warning.
	Skip
)

// DecodeOptions configures Decode.
type DecodeOptions struct {
	Mode Mode
	// OnSkip, if set, is called for every record dropped in Skip mode.
	OnSkip func(index int, err error)
}

// Record is the persisted form of a single book. Only the extras of the
// record's own variant are set.
type Record struct {
	Type        book.Kind `json:"type" yaml:"type"`
	Title       string    `json:"title" yaml:"title"`
	Author      string    `json:"author" yaml:"author"`
	Year        int       `json:"year" yaml:"year"`
	Genre       string    `json:"genre" yaml:"genre"`
	Style       *string   `json:"style,omitempty" yaml:"style,omitempty"`
	Field       *string   `json:"field,omitempty" yaml:"field,omitempty"`
	University  *string   `json:"university,omitempty" yaml:"university,omitempty"`
	IssueNumber *int      `json:"issue_number,omitempty" yaml:"issue_number,omitempty"`
	Month       *string   `json:"month,omitempty" yaml:"month,omitempty"`
}

// ToRecord converts b into its persisted form.
func ToRecord(b book.Book) Record {
	r := Record{
		Type:   b.Kind(),
		Title:  b.Title(),
		Author: b.Author(),
		Year:   b.Year(),
		Genre:  b.Genre(),
	}

	switch v := b.(type) {
	case *book.Fiction:
		r.Style = ptr(v.Style())
	case *book.Academic:
		r.Field = ptr(v.Field())
		r.University = ptr(v.University())
	case *book.Magazine:
		r.IssueNumber = ptr(v.IssueNumber())
		r.Month = ptr(v.Month())
	}
	return r
}

// ToRecords converts books in order.
func ToRecords(books []book.Book) []Record {
	records := make([]Record, 0, len(books))
	for _, b := range books {
		records = append(records, ToRecord(b))
	}
	return records
}

// Encode serializes books in the given format.
func Encode(books []book.Book, format Format) ([]byte, error) {
	records := ToRecords(books)

	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// Decode parses a catalog document and rebuilds each record as the variant
// named by its type tag.
func Decode(data []byte, format Format, opts DecodeOptions) ([]book.Book, error) {
	var raw []map[string]any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = decodeJSON(data, &raw)
	}
	if err != nil {
		return nil, errors.NewCorruptCatalogError(-1, "", err)
	}

	books := make([]book.Book, 0, len(raw))
	for i, fields := range raw {
		b, err := decodeRecord(i, fields)
		if err != nil {
			if opts.Mode == Skip {
				slog.Warn("Skipping unreadable catalog record", "index", i, "error", err)
				if opts.OnSkip != nil {
					opts.OnSkip(i, err)
				}
				continue
			}
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

// decodeJSON keeps numbers as json.Number so integers beyond 2^53 survive.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after catalog document")
	}
	return nil
}

func decodeRecord(index int, fields map[string]any) (book.Book, error) {
	tag, ok := fields["type"].(string)
	if !ok {
		return nil, errors.NewCorruptCatalogError(index, "missing type", nil)
	}

	// Persisted tags are matched exactly; the factory's short tags are not valid here.
	kind := book.Kind(tag)
	switch kind {
	case book.KindFiction, book.KindAcademic, book.KindMagazine:
	default:
		return nil, errors.NewCorruptCatalogError(index, fmt.Sprintf("unknown type %q", tag), nil)
	}

	b, err := book.Create(kind.FactoryTag(), book.Fields(fields))
	if err != nil {
		return nil, errors.NewCorruptCatalogError(index, string(kind), err)
	}
	return b, nil
}

func ptr[T any](v T) *T {
	return &v
}
