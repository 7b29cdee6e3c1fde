package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/lepinkainen/bookshelf/internal/book"
	"github.com/lepinkainen/bookshelf/internal/builder"
	"github.com/lepinkainen/bookshelf/internal/catalog"
	"github.com/lepinkainen/bookshelf/internal/codec"
	bookerrors "github.com/lepinkainen/bookshelf/internal/errors"
)

const banner = `==================================================
  ____              _        _          _  __
 | __ )  ___   ___ | | _____| |__   ___| |/ _|
 |  _ \ / _ \ / _ \| |/ / __| '_ \ / _ \ | |_
 | |_) | (_) | (_) |   <\__ \ | | |  __/ |  _|
 |____/ \___/ \___/|_|\_\___/_| |_|\___|_|_|

  Library catalog
==================================================`

var menuEntries = []string{
	"1. Add book via factory",
	"2. Add book via builder",
	"3. Show all books",
	"4. Search by author",
	"5. Search by genre",
	"6. Search by title",
	"7. Remove book",
	"8. Sort by year",
	"9. Save to file",
	"10. Load from file",
	"0. Exit",
}

// Shell is the numbered interactive menu over a catalog.
type Shell struct {
	Catalog       *catalog.Catalog
	DecodeOptions codec.DecodeOptions
	// DefaultFile is used when the save or load prompt is left empty.
	DefaultFile string

	in  *bufio.Scanner
	out io.Writer
}

// NewShell creates a shell reading answers from in and writing to out.
func NewShell(in io.Reader, out io.Writer, cat *catalog.Catalog) *Shell {
	return &Shell{
		Catalog: cat,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run shows the menu until the user picks 0 or input ends. Errors from a
// single action are reported and the loop continues.
func (s *Shell) Run() error {
	for {
		s.showMenu()

		choice, err := s.prompt("\nYour choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = s.addWithFactory()
		case "2":
			err = s.addWithBuilder()
		case "3":
			PrintBooks(s.out, s.Catalog.All())
		case "4":
			err = s.search(ByAuthor, "Author to search for: ", s.Catalog.SearchByAuthor)
		case "5":
			err = s.search(ByGenre, "Genre to search for: ", s.Catalog.SearchByGenre)
		case "6":
			err = s.search(ByTitle, "Title to search for: ", s.Catalog.SearchByTitle)
		case "7":
			err = s.remove()
		case "8":
			s.Catalog.SortByYear()
			s.println("Books sorted by year.")
		case "9":
			err = s.save()
		case "10":
			err = s.load()
		case "0":
			s.println("Goodbye!")
			return nil
		default:
			s.println("Invalid choice!")
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.printf("Error: %v\n", err)
		}
	}
}

func (s *Shell) showMenu() {
	s.println("\n" + banner)
	for _, entry := range menuEntries {
		s.println(entry)
	}
}

func (s *Shell) addWithFactory() error {
	s.println("\nBook types: fiction, academic, magazine")
	tag, err := s.prompt("Book type: ")
	if err != nil {
		return err
	}
	kind, err := book.ParseKind(tag)
	if err != nil {
		return err
	}

	fields := book.Fields{}
	if err := s.ask(fields, book.FieldTitle, "Title: "); err != nil {
		return err
	}
	if err := s.ask(fields, book.FieldAuthor, "Author: "); err != nil {
		return err
	}
	if err := s.askInt(fields, book.FieldYear, "Year: "); err != nil {
		return err
	}
	if err := s.ask(fields, book.FieldGenre, "Genre: "); err != nil {
		return err
	}

	switch kind {
	case book.KindFiction:
		err = s.ask(fields, book.FieldStyle, "Style: ")
	case book.KindAcademic:
		if err = s.ask(fields, book.FieldField, "Field of study: "); err == nil {
			err = s.ask(fields, book.FieldUniversity, "University: ")
		}
	case book.KindMagazine:
		if err = s.askInt(fields, book.FieldIssueNumber, "Issue number: "); err == nil {
			err = s.ask(fields, book.FieldMonth, "Month: ")
		}
	}
	if err != nil {
		return err
	}

	b, err := book.Create(kind.FactoryTag(), fields)
	if err != nil {
		return err
	}
	s.add(b)
	return nil
}

func (s *Shell) addWithBuilder() error {
	s.println("\nBuilders: 1-Fiction, 2-Academic, 3-Magazine")
	choice, err := s.prompt("Choice: ")
	if err != nil {
		return err
	}

	var (
		b       book.Book
		answers []string
	)
	switch choice {
	case "1":
		if answers, err = s.promptAll("Title: ", "Author: "); err != nil {
			return err
		}
		b, err = builder.NewDirector(builder.NewFictionBuilder()).
			MakeSimpleFictionBook(answers[0], answers[1])
	case "2":
		if answers, err = s.promptAll("Title: ", "Author: ", "Field of study: ", "University: "); err != nil {
			return err
		}
		b, err = builder.NewDirector(builder.NewAcademicBuilder()).
			MakeAcademicBook(answers[0], answers[1], answers[2], answers[3])
	case "3":
		if answers, err = s.promptAll("Title: ", "Publisher: ", "Year: ", "Issue number: ", "Month: "); err != nil {
			return err
		}
		year, convErr := parseInt(book.FieldYear, answers[2])
		if convErr != nil {
			return convErr
		}
		issue, convErr := parseInt(book.FieldIssueNumber, answers[3])
		if convErr != nil {
			return convErr
		}
		b, err = builder.NewDirector(builder.NewMagazineBuilder()).
			MakeMagazineIssue(answers[0], answers[1], year, issue, answers[4])
	default:
		s.println("Invalid choice!")
		return nil
	}
	if err != nil {
		return err
	}

	s.add(b)
	return nil
}

func (s *Shell) search(criterion, question string, find func(string) []book.Book) error {
	query, err := s.prompt(question)
	if err != nil {
		return err
	}
	PrintMatches(s.out, criterion, query, find(query))
	return nil
}

func (s *Shell) remove() error {
	title, err := s.prompt("Exact title to remove: ")
	if err != nil {
		return err
	}
	PrintRemoval(s.out, title, s.Catalog.RemoveByTitle(title))
	return nil
}

func (s *Shell) save() error {
	name, err := s.fileName("File name (e.g. library.json): ")
	if err != nil {
		return err
	}
	if err := s.Catalog.Save(name); err != nil {
		return err
	}
	s.printf("Catalog saved to %s\n", name)
	return nil
}

func (s *Shell) load() error {
	name, err := s.fileName("File to load: ")
	if err != nil {
		return err
	}
	if err := s.Catalog.Load(name, s.DecodeOptions); err != nil {
		if bookerrors.IsFileUnavailableError(err) && errors.Is(err, fs.ErrNotExist) {
			s.printf("File %s does not exist\n", name)
			return nil
		}
		return err
	}
	s.printf("Catalog loaded from %s\n", name)
	return nil
}

func (s *Shell) add(b book.Book) {
	s.Catalog.Add(b)
	s.printf("Added book: %s\n", b.Title())
}

func (s *Shell) fileName(question string) (string, error) {
	name, err := s.prompt(question)
	if err != nil {
		return "", err
	}
	if name == "" {
		name = s.DefaultFile
	}
	if name == "" {
		return "", fmt.Errorf("file name is required")
	}
	return name, nil
}

func (s *Shell) ask(fields book.Fields, field, question string) error {
	answer, err := s.prompt(question)
	if err != nil {
		return err
	}
	fields[field] = answer
	return nil
}

func (s *Shell) askInt(fields book.Fields, field, question string) error {
	answer, err := s.prompt(question)
	if err != nil {
		return err
	}
	n, err := parseInt(field, answer)
	if err != nil {
		return err
	}
	fields[field] = n
	return nil
}

func (s *Shell) promptAll(questions ...string) ([]string, error) {
	answers := make([]string, 0, len(questions))
	for _, q := range questions {
		answer, err := s.prompt(q)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

// prompt writes question and returns the next trimmed input line.
func (s *Shell) prompt(question string) (string, error) {
	_, _ = fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, bookerrors.NewInvalidFieldError(field, "must be an integer")
	}
	return n, nil
}
