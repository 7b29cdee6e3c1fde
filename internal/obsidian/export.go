package obsidian

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lepinkainen/bookshelf/internal/book"
	"github.com/lepinkainen/bookshelf/internal/codec"
	"github.com/lepinkainen/bookshelf/internal/fileutil"
)

// BookNote renders b as a note: the record fields go to frontmatter and the
// description becomes the body.
func BookNote(b book.Book) *Note {
	r := codec.ToRecord(b)
	fm := NewFrontmatter()

	fm.Set("title", r.Title)
	fm.Set("type", b.Kind().FactoryTag())
	fm.Set("author", r.Author)
	fm.Set("year", r.Year)
	fm.Set("genre", r.Genre)

	if r.Style != nil {
		fm.Set("style", *r.Style)
	}
	if r.Field != nil {
		fm.Set("field", *r.Field)
	}
	if r.University != nil {
		fm.Set("university", *r.University)
	}
	if r.IssueNumber != nil {
		fm.Set("issue_number", *r.IssueNumber)
	}
	if r.Month != nil {
		fm.Set("month", *r.Month)
	}

	tags := NewTagSet()
	tags.AddFormat("bookshelf/%s", b.Kind().FactoryTag())
	if r.Genre != "" {
		tags.AddFormat("genre/%s", r.Genre)
	}
	tags.Add(DecadeTag(r.Year))
	fm.Set("tags", tags.GetSorted())

	body := fmt.Sprintf("# %s\n\n%s\n", r.Title, b.Describe())
	return &Note{Frontmatter: fm, Body: body}
}

// ExportCatalog writes one note per book into directory and returns how many
// files were written. Existing notes are kept unless overwrite is set.
// Books sharing a title get distinct file names.
func ExportCatalog(books []book.Book, directory string, overwrite bool) (int, error) {
	paths := newNotePaths(directory)
	written := 0
	for _, b := range books {
		content, err := BookNote(b).Build()
		if err != nil {
			return written, fmt.Errorf("failed to build note for %q: %w", b.Title(), err)
		}

		filePath := paths.claim(b)
		ok, err := fileutil.WriteFileWithOverwrite(filePath, content, 0644, overwrite)
		if err != nil {
			return written, fmt.Errorf("failed to write %s: %w", filePath, err)
		}
		if !ok {
			slog.Info("Markdown file already exists, skipping", "filename", filePath)
			continue
		}
		written++
	}

	slog.Info("Exported catalog to markdown", "directory", directory, "written", written, "total", len(books))
	return written, nil
}

// notePaths hands out one file per book within a single export. A name is
// free when no earlier book in this export took it and the file on disk, if
// any, is a note for the same record.
type notePaths struct {
	directory string
	claimed   map[string]bool
}

func newNotePaths(directory string) *notePaths {
	return &notePaths{directory: directory, claimed: make(map[string]bool)}
}

// claim returns the first free path out of "Title", "Title (Author)",
// "Title (Author, Year)" and then numbered variants of the last.
func (p *notePaths) claim(b book.Book) string {
	full := fmt.Sprintf("%s (%s, %d)", b.Title(), b.Author(), b.Year())
	names := []string{b.Title(), fmt.Sprintf("%s (%s)", b.Title(), b.Author()), full}

	for i := 0; ; i++ {
		name := full
		if i < len(names) {
			name = names[i]
		} else {
			name = fmt.Sprintf("%s %d", full, i-len(names)+2)
		}

		path := fileutil.GetMarkdownFilePath(name, p.directory)
		if p.claimed[path] {
			continue
		}
		if fileutil.FileExists(path) && !noteDescribes(path, b) {
			continue
		}
		p.claimed[path] = true
		return path
	}
}

// noteDescribes reports whether the note at path was exported from a book
// with the same kind, title, author and year as b.
func noteDescribes(path string, b book.Book) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	note, err := ParseMarkdown(content)
	if err != nil {
		return false
	}

	fm := note.Frontmatter
	return fm.GetString("type") == b.Kind().FactoryTag() &&
		fm.GetString("title") == b.Title() &&
		fm.GetString("author") == b.Author() &&
		fm.GetInt("year") == b.Year()
}
