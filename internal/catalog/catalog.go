// Package catalog holds the ordered in-memory collection of books and the
// operations the CLI runs against it.
package catalog

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/lepinkainen/bookshelf/internal/book"
)

// Catalog is an ordered sequence of books. Insertion order is kept until
// SortByYear reorders it. It is not safe for concurrent use.
type Catalog struct {
	books []book.Book
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{books: []book.Book{}}
}

// Add appends b to the end of the catalog.
func (c *Catalog) Add(b book.Book) {
	c.books = append(c.books, b)
	slog.Debug("Added book", "title", b.Title(), "type", b.Kind())
}

// All returns the books in catalog order. The slice is a copy.
func (c *Catalog) All() []book.Book {
	return slices.Clone(c.books)
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// SearchByAuthor returns the books whose author contains substr, ignoring case.
func (c *Catalog) SearchByAuthor(substr string) []book.Book {
	return c.filter(substr, book.Book.Author)
}

// SearchByGenre returns the books whose genre contains substr, ignoring case.
func (c *Catalog) SearchByGenre(substr string) []book.Book {
	return c.filter(substr, book.Book.Genre)
}

// SearchByTitle returns the books whose title contains substr, ignoring case.
func (c *Catalog) SearchByTitle(substr string) []book.Book {
	return c.filter(substr, book.Book.Title)
}

func (c *Catalog) filter(substr string, field func(book.Book) string) []book.Book {
	needle := fold(substr)
	found := []book.Book{}
	for _, b := range c.books {
		if strings.Contains(fold(field(b)), needle) {
			found = append(found, b)
		}
	}
	return found
}

// RemoveByTitle removes the first book whose title equals title, ignoring
// case. It reports whether a book was removed.
func (c *Catalog) RemoveByTitle(title string) bool {
	want := fold(title)
	idx := slices.IndexFunc(c.books, func(b book.Book) bool {
		return fold(b.Title()) == want
	})
	if idx < 0 {
		return false
	}

	c.books = slices.Delete(c.books, idx, idx+1)
	slog.Debug("Removed book", "title", title, "index", idx)
	return true
}

// RemoveAt removes the book at position index in catalog order.
func (c *Catalog) RemoveAt(index int) (book.Book, bool) {
	if index < 0 || index >= len(c.books) {
		return nil, false
	}

	removed := c.books[index]
	c.books = slices.Delete(c.books, index, index+1)
	slog.Debug("Removed book", "title", removed.Title(), "index", index)
	return removed, true
}

// SortByYear orders the books by ascending year. Books from the same year
// keep their relative order.
func (c *Catalog) SortByYear() {
	slices.SortStableFunc(c.books, func(a, b book.Book) int {
		return cmp.Compare(a.Year(), b.Year())
	})
}

// Replace discards the current books and takes books as the new contents.
func (c *Catalog) Replace(books []book.Book) {
	if books == nil {
		books = []book.Book{}
	}
	c.books = books
}

// fold maps s to its Unicode case-folded form for case-insensitive matching.
func fold(s string) string {
	return cases.Fold().String(s)
}
