package menu

import (
	"fmt"
	"io"

	"github.com/lepinkainen/bookshelf/internal/book"
	"github.com/lepinkainen/bookshelf/internal/builder"
	"github.com/lepinkainen/bookshelf/internal/catalog"
)

// Demo walks an in-memory catalog through the factory, a builder, a search
// and a removal, writing each step to out.
func Demo(out io.Writer) error {
	_, _ = fmt.Fprintln(out, "=== Bookshelf demonstration ===")
	cat := catalog.New()

	_, _ = fmt.Fprintln(out, "\n1. Creating books with the factory:")
	lotr, err := book.Create("fiction", book.Fields{
		book.FieldTitle:  "The Lord of the Rings",
		book.FieldAuthor: "Tolkien",
		book.FieldYear:   1954,
		book.FieldGenre:  "fantasy",
		book.FieldStyle:  "epic fantasy",
	})
	if err != nil {
		return fmt.Errorf("failed to create fiction book: %w", err)
	}
	addAndReport(out, cat, lotr)

	python, err := book.Create("academic", book.Fields{
		book.FieldTitle:      "Programming with Python",
		book.FieldAuthor:     "Ivan Petrov",
		book.FieldYear:       2023,
		book.FieldGenre:      "computer science",
		book.FieldField:      "Computer Science",
		book.FieldUniversity: "Sofia University",
	})
	if err != nil {
		return fmt.Errorf("failed to create academic book: %w", err)
	}
	addAndReport(out, cat, python)

	_, _ = fmt.Fprintln(out, "\n2. Creating books with a builder:")
	potter := builder.NewFictionBuilder().
		SetTitle("Harry Potter").
		SetAuthor("Rowling").
		SetYear(1997).
		SetGenre("fantasy").
		SetStyle("magical fantasy").
		Build()
	addAndReport(out, cat, potter)
	PrintBooks(out, cat.All())

	_, _ = fmt.Fprintln(out, "\n3. Searching by author:")
	PrintMatches(out, ByAuthor, "Tolkien", cat.SearchByAuthor("Tolkien"))

	_, _ = fmt.Fprintln(out, "\n4. Removing a book:")
	PrintRemoval(out, python.Title(), cat.RemoveByTitle(python.Title()))
	PrintBooks(out, cat.All())

	return nil
}

func addAndReport(out io.Writer, cat *catalog.Catalog, b book.Book) {
	cat.Add(b)
	_, _ = fmt.Fprintf(out, "Added book: %s\n", b.Title())
}
