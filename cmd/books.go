package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lepinkainen/bookshelf/cmd/menu"
	"github.com/lepinkainen/bookshelf/internal/book"
	"github.com/lepinkainen/bookshelf/internal/builder"
	"github.com/lepinkainen/bookshelf/internal/catalog"
	bookerrors "github.com/lepinkainen/bookshelf/internal/errors"
	"github.com/lepinkainen/bookshelf/internal/tui"
)

// AddCmd adds a book through the factory
type AddCmd struct {
	Fiction  AddFictionCmd  `cmd:"" help:"Add a fiction book"`
	Academic AddAcademicCmd `cmd:"" help:"Add an academic book"`
	Magazine AddMagazineCmd `cmd:"" help:"Add a magazine issue"`
}

// BookFlags are the fields shared by every variant. Flags left unset are
// not passed on, so the factory reports them as missing.
type BookFlags struct {
	Title  string `short:"t" help:"Book title"`
	Author string `short:"a" help:"Author or publisher"`
	Year   string `short:"y" help:"Publication year"`
	Genre  string `short:"g" help:"Genre"`
}

// AddFictionCmd represents the add fiction command
type AddFictionCmd struct {
	Book  BookFlags `embed:""`
	Style string    `help:"Literary style"`
}

// AddAcademicCmd represents the add academic command
type AddAcademicCmd struct {
	Book       BookFlags `embed:""`
	Field      string    `help:"Field of study"`
	University string    `help:"University"`
}

// AddMagazineCmd represents the add magazine command
type AddMagazineCmd struct {
	Book  BookFlags `embed:""`
	Issue string    `help:"Issue number"`
	Month string    `help:"Month of the issue"`
}

func (a *AddFictionCmd) Run() error {
	fields, err := a.Book.fields()
	if err != nil {
		return err
	}
	setString(fields, book.FieldStyle, a.Style)
	return addFromFields(book.KindFiction, fields)
}

func (a *AddAcademicCmd) Run() error {
	fields, err := a.Book.fields()
	if err != nil {
		return err
	}
	setString(fields, book.FieldField, a.Field)
	setString(fields, book.FieldUniversity, a.University)
	return addFromFields(book.KindAcademic, fields)
}

func (a *AddMagazineCmd) Run() error {
	fields, err := a.Book.fields()
	if err != nil {
		return err
	}
	if err := setInt(fields, book.FieldIssueNumber, a.Issue); err != nil {
		return err
	}
	setString(fields, book.FieldMonth, a.Month)
	return addFromFields(book.KindMagazine, fields)
}

func (f BookFlags) fields() (book.Fields, error) {
	fields := book.Fields{}
	setString(fields, book.FieldTitle, f.Title)
	setString(fields, book.FieldAuthor, f.Author)
	if err := setInt(fields, book.FieldYear, f.Year); err != nil {
		return nil, err
	}
	setString(fields, book.FieldGenre, f.Genre)
	return fields, nil
}

func setString(fields book.Fields, name, value string) {
	if value != "" {
		fields[name] = value
	}
}

func setInt(fields book.Fields, name, value string) error {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return bookerrors.NewInvalidFieldError(name, "must be an integer")
	}
	fields[name] = n
	return nil
}

// addFromFields constructs the book before the catalog is touched, so a
// construction failure leaves the catalog file as it was.
func addFromFields(kind book.Kind, fields book.Fields) error {
	b, err := book.Create(kind.FactoryTag(), fields)
	if err != nil {
		return fmt.Errorf("failed to create %s book: %w", kind.FactoryTag(), err)
	}
	return addBook(b)
}

func addBook(b book.Book) error {
	return updateCatalog(func(c *catalog.Catalog) error {
		c.Add(b)
		_, _ = fmt.Fprintf(stdout, "Added book: %s\n", b.Title())
		return nil
	})
}

// BuildCmd adds a book through a builder
type BuildCmd struct {
	Fiction  BuildFictionCmd  `cmd:"" help:"Build a fiction book (recipe: 2024, adventure, fantasy)"`
	Academic BuildAcademicCmd `cmd:"" help:"Build an academic book (recipe: 2024, science)"`
	Magazine BuildMagazineCmd `cmd:"" help:"Build a magazine issue"`
}

// BuildFictionCmd runs the simple fiction recipe, or drives the builder
// directly when any recipe value is overridden.
type BuildFictionCmd struct {
	Title  string `short:"t" help:"Book title" required:""`
	Author string `short:"a" help:"Author" required:""`
	Year   int    `short:"y" help:"Override the recipe year"`
	Genre  string `short:"g" help:"Override the recipe genre"`
	Style  string `help:"Override the recipe style"`
}

// BuildAcademicCmd runs the academic recipe, or drives the builder directly
// when the year or genre is overridden.
type BuildAcademicCmd struct {
	Title      string `short:"t" help:"Book title" required:""`
	Author     string `short:"a" help:"Author" required:""`
	Field      string `help:"Field of study" required:""`
	University string `help:"University" required:""`
	Year       int    `short:"y" help:"Override the recipe year"`
	Genre      string `short:"g" help:"Override the recipe genre"`
}

// BuildMagazineCmd runs the magazine issue recipe
type BuildMagazineCmd struct {
	Title     string `short:"t" help:"Magazine title" required:""`
	Publisher string `short:"p" help:"Publisher" required:""`
	Year      int    `short:"y" help:"Publication year" required:""`
	Issue     int    `help:"Issue number" required:""`
	Month     string `help:"Month of the issue" required:""`
}

func (b *BuildFictionCmd) Run() error {
	built, err := b.build()
	if err != nil {
		return err
	}
	return addBook(built)
}

func (b *BuildFictionCmd) build() (book.Book, error) {
	if b.Year == 0 && b.Genre == "" && b.Style == "" {
		return builder.NewDirector(builder.NewFictionBuilder()).MakeSimpleFictionBook(b.Title, b.Author)
	}

	return builder.NewFictionBuilder().
		SetTitle(b.Title).
		SetAuthor(b.Author).
		SetYear(orDefault(b.Year, builder.RecipeYear)).
		SetGenre(orDefault(b.Genre, builder.GenreAdventure)).
		SetStyle(orDefault(b.Style, builder.StyleFantasy)).
		Build(), nil
}

func (b *BuildAcademicCmd) Run() error {
	built, err := b.build()
	if err != nil {
		return err
	}
	return addBook(built)
}

func (b *BuildAcademicCmd) build() (book.Book, error) {
	if b.Year == 0 && b.Genre == "" {
		return builder.NewDirector(builder.NewAcademicBuilder()).
			MakeAcademicBook(b.Title, b.Author, b.Field, b.University)
	}

	return builder.NewAcademicBuilder().
		SetTitle(b.Title).
		SetAuthor(b.Author).
		SetYear(orDefault(b.Year, builder.RecipeYear)).
		SetGenre(orDefault(b.Genre, builder.GenreScience)).
		SetField(b.Field).
		SetUniversity(b.University).
		Build(), nil
}

func (b *BuildMagazineCmd) Run() error {
	built, err := builder.NewDirector(builder.NewMagazineBuilder()).
		MakeMagazineIssue(b.Title, b.Publisher, b.Year, b.Issue, b.Month)
	if err != nil {
		return err
	}
	return addBook(built)
}

func orDefault[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}
	return value
}

// ListCmd shows all books in catalog order
type ListCmd struct{}

func (l *ListCmd) Run() error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	menu.PrintBooks(stdout, cat.All())
	return nil
}

// SearchCmd represents the search command
type SearchCmd struct {
	By    string `arg:"" enum:"author,genre,title" help:"Field to search: author, genre or title"`
	Query string `arg:"" help:"Case-insensitive substring to look for"`
}

func (s *SearchCmd) Run() error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	var found []book.Book
	switch s.By {
	case menu.ByAuthor:
		found = cat.SearchByAuthor(s.Query)
	case menu.ByGenre:
		found = cat.SearchByGenre(s.Query)
	case menu.ByTitle:
		found = cat.SearchByTitle(s.Query)
	default:
		return fmt.Errorf("unknown search field %q", s.By)
	}

	menu.PrintMatches(stdout, s.By, s.Query, found)
	return nil
}

// RemoveCmd represents the remove command
type RemoveCmd struct {
	Title string `arg:"" optional:"" help:"Exact title of the book to remove (case-insensitive)"`
	Pick  bool   `help:"Choose the book to remove in an interactive picker"`
}

func (r *RemoveCmd) Run() error {
	if r.Pick {
		err := updateCatalog(r.pick)
		if bookerrors.IsStopProcessingError(err) {
			slog.Info("Removal cancelled", "reason", err)
			return nil
		}
		return err
	}

	if r.Title == "" {
		return fmt.Errorf("book title is required (provide it as an argument or use --pick)")
	}

	return updateCatalog(func(c *catalog.Catalog) error {
		menu.PrintRemoval(stdout, r.Title, c.RemoveByTitle(r.Title))
		return nil
	})
}

func (r *RemoveCmd) pick(c *catalog.Catalog) error {
	result, err := selectBook("Remove which book?", c.All())
	if err != nil {
		return fmt.Errorf("book selection failed: %w", err)
	}

	switch result.Action {
	case tui.ActionSelected:
		if removed, ok := c.RemoveAt(result.Index); ok {
			menu.PrintRemoval(stdout, removed.Title(), true)
		}
	case tui.ActionStopped:
		return bookerrors.NewStopProcessingError("user quit the picker")
	default:
		_, _ = fmt.Fprintln(stdout, "Nothing removed")
	}
	return nil
}

// SortCmd sorts the catalog by year
type SortCmd struct{}

func (s *SortCmd) Run() error {
	return updateCatalog(func(c *catalog.Catalog) error {
		c.SortByYear()
		_, _ = fmt.Fprintln(stdout, "Books sorted by year.")
		return nil
	})
}
