// Package book defines the catalog record model: the Book interface, its three
// variants and the factory that builds them from a kind tag and a field bag.
package book

import (
	"strings"

	"github.com/lepinkainen/bookshelf/internal/errors"
)

// Kind identifies a Book variant. Its value is the tag written to catalog files.
type Kind string

const (
	KindFiction  Kind = "FictionBook"
	KindAcademic Kind = "AcademicBook"
	KindMagazine Kind = "Magazine"
)

// Kinds returns every variant in a fixed order.
func Kinds() []Kind {
	return []Kind{KindFiction, KindAcademic, KindMagazine}
}

// FactoryTag returns the short tag used on the command line, e.g. "fiction".
func (k Kind) FactoryTag() string {
	switch k {
	case KindFiction:
		return "fiction"
	case KindAcademic:
		return "academic"
	case KindMagazine:
		return "magazine"
	}
	return ""
}

// ParseKind resolves a factory tag ("fiction", "academic", "magazine") or a
// persisted tag ("FictionBook", ...) to a Kind. Matching is case-insensitive.
func ParseKind(tag string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "fiction", "fictionbook":
		return KindFiction, nil
	case "academic", "academicbook":
		return KindAcademic, nil
	case "magazine":
		return KindMagazine, nil
	}
	return "", errors.NewUnknownVariantError(tag)
}

// Book is a catalog record. The set of implementations is closed: Fiction,
// Academic and Magazine.
type Book interface {
	Kind() Kind
	Title() string
	Author() string
	Year() int
	Genre() string
	// Describe returns a human-readable summary with all of the record's fields.
	Describe() string

	sealed()
}

// Base holds the fields shared by every variant.
type Base struct {
	Title  string
	Author string
	Year   int
	Genre  string
}

type common struct {
	title  string
	author string
	year   int
	genre  string
}

func newCommon(b Base) common {
	return common{title: b.Title, author: b.Author, year: b.Year, genre: b.Genre}
}

func (c common) Title() string  { return c.title }
func (c common) Author() string { return c.author }
func (c common) Year() int      { return c.year }
func (c common) Genre() string  { return c.genre }
func (c common) sealed()        {}
