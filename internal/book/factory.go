package book

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/lepinkainen/bookshelf/internal/errors"
)

// Field names accepted by Create.
const (
	FieldTitle       = "title"
	FieldAuthor      = "author"
	FieldYear        = "year"
	FieldGenre       = "genre"
	FieldStyle       = "style"
	FieldField       = "field"
	FieldUniversity  = "university"
	FieldIssueNumber = "issue_number"
	FieldMonth       = "month"
)

// Fields is the loosely typed field bag handed to Create.
type Fields map[string]any

// RequiredFields returns the field names kind needs, in the order Create checks them.
func RequiredFields(kind Kind) []string {
	base := []string{FieldTitle, FieldAuthor, FieldYear, FieldGenre}
	switch kind {
	case KindFiction:
		return append(base, FieldStyle)
	case KindAcademic:
		return append(base, FieldField, FieldUniversity)
	case KindMagazine:
		return append(base, FieldIssueNumber, FieldMonth)
	}
	return nil
}

// Create builds a book of the variant named by tag from fields. No field is
// defaulted: an unknown tag yields an UnknownVariantError and an absent or
// mistyped field a MissingFieldError.
func Create(tag string, fields Fields) (Book, error) {
	kind, err := ParseKind(tag)
	if err != nil {
		return nil, err
	}

	r := fieldReader{fields: fields}
	base := Base{
		Title:  r.str(FieldTitle),
		Author: r.str(FieldAuthor),
		Year:   r.integer(FieldYear),
		Genre:  r.str(FieldGenre),
	}

	var b Book
	switch kind {
	case KindFiction:
		b = NewFiction(FictionConfig{Base: base, Style: r.str(FieldStyle)})
	case KindAcademic:
		b = NewAcademic(AcademicConfig{
			Base:       base,
			Field:      r.str(FieldField),
			University: r.str(FieldUniversity),
		})
	case KindMagazine:
		b = NewMagazine(MagazineConfig{
			Base:        base,
			IssueNumber: r.integer(FieldIssueNumber),
			Month:       r.str(FieldMonth),
		})
	}

	if r.err != nil {
		return nil, r.err
	}
	return b, nil
}

// fieldReader pulls typed values out of a Fields bag and keeps the first error.
type fieldReader struct {
	fields Fields
	err    error
}

func (r *fieldReader) lookup(name string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.fields[name]
	if !ok || v == nil {
		r.err = errors.NewMissingFieldError(name)
		return nil, false
	}
	return v, true
}

func (r *fieldReader) str(name string) string {
	v, ok := r.lookup(name)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.err = errors.NewInvalidFieldError(name, fmt.Sprintf("expected string, got %T", v))
		return ""
	}
	return s
}

func (r *fieldReader) integer(name string) int {
	v, ok := r.lookup(name)
	if !ok {
		return 0
	}
	n, ok := toInt(v)
	if !ok {
		r.err = errors.NewInvalidFieldError(name, fmt.Sprintf("expected integer, got %T", v))
		return 0
	}
	return n
}

// toInt accepts any integer type, json.Number, and floats with no fractional
// part, as long as the value fits in an int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return toInt(i)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return toInt(f)
	case float64:
		// -2^63 is exact in float64; 2^63 is the first value past MaxInt64.
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
