// Package builder provides stepwise, chainable construction of books and a
// Director with canned construction recipes.
//
// Builders do not reset themselves after Build: reuse one for a new record
// by calling Reset first.
package builder

import "github.com/lepinkainen/bookshelf/internal/book"

// Builder is the part every variant builder has in common.
type Builder interface {
	// Kind returns the variant this builder produces.
	Kind() book.Kind
	// Build returns a book from the current field values.
	Build() book.Book
}

// Compile-time checks.
var (
	_ Builder = (*FictionBuilder)(nil)
	_ Builder = (*AcademicBuilder)(nil)
	_ Builder = (*MagazineBuilder)(nil)
)

// FictionBuilder assembles a book.Fiction.
type FictionBuilder struct {
	cfg book.FictionConfig
}

// NewFictionBuilder returns an empty FictionBuilder.
func NewFictionBuilder() *FictionBuilder {
	return (&FictionBuilder{}).Reset()
}

// Reset clears every field, including Style.
func (b *FictionBuilder) Reset() *FictionBuilder {
	b.cfg = book.FictionConfig{}
	return b
}

func (b *FictionBuilder) SetTitle(title string) *FictionBuilder {
	b.cfg.Title = title
	return b
}

func (b *FictionBuilder) SetAuthor(author string) *FictionBuilder {
	b.cfg.Author = author
	return b
}

func (b *FictionBuilder) SetYear(year int) *FictionBuilder {
	b.cfg.Year = year
	return b
}

func (b *FictionBuilder) SetGenre(genre string) *FictionBuilder {
	b.cfg.Genre = genre
	return b
}

func (b *FictionBuilder) SetStyle(style string) *FictionBuilder {
	b.cfg.Style = style
	return b
}

func (b *FictionBuilder) Kind() book.Kind { return book.KindFiction }

func (b *FictionBuilder) Build() book.Book {
	return book.NewFiction(b.cfg)
}

// AcademicBuilder assembles a book.Academic.
type AcademicBuilder struct {
	cfg book.AcademicConfig
}

// NewAcademicBuilder returns an empty AcademicBuilder.
func NewAcademicBuilder() *AcademicBuilder {
	return (&AcademicBuilder{}).Reset()
}

// Reset clears every field, including Field and University.
func (b *AcademicBuilder) Reset() *AcademicBuilder {
	b.cfg = book.AcademicConfig{}
	return b
}

func (b *AcademicBuilder) SetTitle(title string) *AcademicBuilder {
	b.cfg.Title = title
	return b
}

func (b *AcademicBuilder) SetAuthor(author string) *AcademicBuilder {
	b.cfg.Author = author
	return b
}

func (b *AcademicBuilder) SetYear(year int) *AcademicBuilder {
	b.cfg.Year = year
	return b
}

func (b *AcademicBuilder) SetGenre(genre string) *AcademicBuilder {
	b.cfg.Genre = genre
	return b
}

func (b *AcademicBuilder) SetField(field string) *AcademicBuilder {
	b.cfg.Field = field
	return b
}

func (b *AcademicBuilder) SetUniversity(university string) *AcademicBuilder {
	b.cfg.University = university
	return b
}

func (b *AcademicBuilder) Kind() book.Kind { return book.KindAcademic }

func (b *AcademicBuilder) Build() book.Book {
	return book.NewAcademic(b.cfg)
}

// MagazineBuilder assembles a book.Magazine.
type MagazineBuilder struct {
	cfg book.MagazineConfig
}

// NewMagazineBuilder returns an empty MagazineBuilder.
func NewMagazineBuilder() *MagazineBuilder {
	return (&MagazineBuilder{}).Reset()
}

// Reset clears every field, including IssueNumber and Month.
func (b *MagazineBuilder) Reset() *MagazineBuilder {
	b.cfg = book.MagazineConfig{}
	return b
}

func (b *MagazineBuilder) SetTitle(title string) *MagazineBuilder {
	b.cfg.Title = title
	return b
}

func (b *MagazineBuilder) SetAuthor(author string) *MagazineBuilder {
	b.cfg.Author = author
	return b
}

func (b *MagazineBuilder) SetYear(year int) *MagazineBuilder {
	b.cfg.Year = year
	return b
}

func (b *MagazineBuilder) SetGenre(genre string) *MagazineBuilder {
	b.cfg.Genre = genre
	return b
}

func (b *MagazineBuilder) SetIssueNumber(issue int) *MagazineBuilder {
	b.cfg.IssueNumber = issue
	return b
}

func (b *MagazineBuilder) SetMonth(month string) *MagazineBuilder {
	b.cfg.Month = month
	return b
}

func (b *MagazineBuilder) Kind() book.Kind { return book.KindMagazine }

func (b *MagazineBuilder) Build() book.Book {
	return book.NewMagazine(b.cfg)
}

// ForKind returns a fresh builder for kind.
func ForKind(kind book.Kind) (Builder, bool) {
	switch kind {
	case book.KindFiction:
		return NewFictionBuilder(), true
	case book.KindAcademic:
		return NewAcademicBuilder(), true
	case book.KindMagazine:
		return NewMagazineBuilder(), true
	}
	return nil, false
}
