// Package menu implements the numbered interactive shell and the
// demonstration routine, plus the plain-text listings shared with the CLI.
package menu

import (
	"fmt"
	"io"

	"github.com/lepinkainen/bookshelf/internal/book"
)

// Search criteria accepted by PrintMatches.
const (
	ByAuthor = "author"
	ByGenre  = "genre"
	ByTitle  = "title"
)

// PrintBooks writes a numbered listing of books, or "Catalog is empty".
func PrintBooks(w io.Writer, books []book.Book) {
	if len(books) == 0 {
		_, _ = fmt.Fprintln(w, "Catalog is empty")
		return
	}

	_, _ = fmt.Fprintln(w, "=== All books in the catalog ===")
	for i, b := range books {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, b.Describe())
	}
}

// PrintMatches writes the result of a search by criterion.
func PrintMatches(w io.Writer, criterion, query string, books []book.Book) {
	if len(books) == 0 {
		_, _ = fmt.Fprintf(w, "No books with %s matching '%s'\n", criterion, query)
		return
	}

	_, _ = fmt.Fprintf(w, "Books with %s matching '%s':\n", criterion, query)
	for _, b := range books {
		_, _ = fmt.Fprintf(w, "- %s\n", b.Describe())
	}
}

// PrintRemoval reports the outcome of a remove by title.
func PrintRemoval(w io.Writer, title string, removed bool) {
	if removed {
		_, _ = fmt.Fprintf(w, "Removed book: %s\n", title)
		return
	}
	_, _ = fmt.Fprintf(w, "No book titled exactly '%s'\n", title)
}
