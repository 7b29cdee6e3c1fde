package builder

import (
	"github.com/lepinkainen/bookshelf/internal/book"
	"github.com/lepinkainen/bookshelf/internal/errors"
)

// Values fixed by the director recipes.
const (
	RecipeYear     = 2024
	GenreAdventure = "adventure"
	StyleFantasy   = "fantasy"
	GenreScience   = "science"
	GenreMagazine  = "magazine"
)

// Director runs preset construction recipes against the builder it holds.
// Each recipe needs a builder of its own variant.
type Director struct {
	builder Builder
}

// NewDirector creates a Director around b.
func NewDirector(b Builder) *Director {
	return &Director{builder: b}
}

// SetBuilder swaps the builder used by later recipes.
func (d *Director) SetBuilder(b Builder) {
	d.builder = b
}

// MakeSimpleFictionBook builds a 2024 fantasy adventure novel.
func (d *Director) MakeSimpleFictionBook(title, author string) (book.Book, error) {
	b, ok := d.builder.(*FictionBuilder)
	if !ok {
		return nil, d.mismatch("MakeSimpleFictionBook", book.KindFiction)
	}

	return b.Reset().
		SetTitle(title).
		SetAuthor(author).
		SetYear(RecipeYear).
		SetGenre(GenreAdventure).
		SetStyle(StyleFantasy).
		Build(), nil
}

// MakeAcademicBook builds a 2024 science title for the given field and university.
func (d *Director) MakeAcademicBook(title, author, field, university string) (book.Book, error) {
	b, ok := d.builder.(*AcademicBuilder)
	if !ok {
		return nil, d.mismatch("MakeAcademicBook", book.KindAcademic)
	}

	return b.Reset().
		SetTitle(title).
		SetAuthor(author).
		SetYear(RecipeYear).
		SetGenre(GenreScience).
		SetField(field).
		SetUniversity(university).
		Build(), nil
}

// MakeMagazineIssue builds a magazine issue; the publisher is stored as the author.
func (d *Director) MakeMagazineIssue(title, publisher string, year, issue int, month string) (book.Book, error) {
	b, ok := d.builder.(*MagazineBuilder)
	if !ok {
		return nil, d.mismatch("MakeMagazineIssue", book.KindMagazine)
	}

	return b.Reset().
		SetTitle(title).
		SetAuthor(publisher).
		SetYear(year).
		SetGenre(GenreMagazine).
		SetIssueNumber(issue).
		SetMonth(month).
		Build(), nil
}

func (d *Director) mismatch(recipe string, want book.Kind) error {
	got := "none"
	if d.builder != nil {
		got = string(d.builder.Kind())
	}
	return errors.NewBuilderMismatchError(recipe, string(want), got)
}
