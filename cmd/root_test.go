package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/bookshelf/internal/book"
	"github.com/lepinkainen/bookshelf/internal/config"
	bookerrors "github.com/lepinkainen/bookshelf/internal/errors"
	"github.com/lepinkainen/bookshelf/internal/testutil"
	"github.com/lepinkainen/bookshelf/internal/tui"
)

func resetCmdState(t *testing.T) *testutil.TestEnv {
	t.Helper()

	env := testutil.NewTestEnv(t)
	testutil.UseTestEnv(t, env)
	return env
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = orig })
	return &buf
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	originalArgs := os.Args
	os.Args = append([]string{"bookshelf"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("bookshelf"),
		kong.Description("A single-user library catalog manager."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)

	return cli, ctx
}

// runCLI parses and runs one command, returning what it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := captureOutput(t)
	cli, ctx := parseCLI(t, args...)
	updateGlobalConfig(cli)
	err := ctx.Run()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()

	out, err := runCLI(t, args...)
	require.NoError(t, err)
	return out
}

func TestUpdateGlobalConfig(t *testing.T) {
	resetCmdState(t)

	cli := &CLI{
		Catalog:     "/tmp/other.yaml",
		SkipUnknown: true,
		Overwrite:   true,
	}

	updateGlobalConfig(cli)

	assert.Equal(t, "/tmp/other.yaml", config.CatalogFile)
	assert.False(t, config.StrictLoad)
	assert.True(t, config.OverwriteFiles)
}

func TestUpdateGlobalConfigKeepsConfiguredValues(t *testing.T) {
	env := resetCmdState(t)

	updateGlobalConfig(&CLI{})

	assert.Equal(t, env.Path("library.json"), config.CatalogFile)
	assert.True(t, config.StrictLoad)
	assert.False(t, config.OverwriteFiles)
}

func TestCLIDefaultFlags(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "list")

	assert.Empty(t, cli.Catalog)
	assert.False(t, cli.SkipUnknown, "SkipUnknown should default to false")
	assert.False(t, cli.Overwrite, "Overwrite should default to false")
	assert.False(t, cli.Debug, "Debug should default to false")
}

func TestAddCommandParsing(t *testing.T) {
	resetCmdState(t)

	cli, _ := parseCLI(t, "add", "academic",
		"-t", "SICP", "-a", "Abelson", "-y", "1985", "-g", "cs",
		"--field", "Computer Science", "--university", "MIT")

	assert.Equal(t, "SICP", cli.Add.Academic.Book.Title)
	assert.Equal(t, "1985", cli.Add.Academic.Book.Year)
	assert.Equal(t, "Computer Science", cli.Add.Academic.Field)
	assert.Equal(t, "MIT", cli.Add.Academic.University)
}

func TestAddThenList(t *testing.T) {
	env := resetCmdState(t)

	out := mustRun(t, "add", "fiction", "-t", "Dune", "-a", "Frank Herbert", "-y", "1965", "-g", "sci-fi", "--style", "epic")
	assert.Equal(t, "Added book: Dune\n", out)

	out = mustRun(t, "add", "magazine", "-t", "Byte", "-a", "McGraw-Hill", "-y", "1984", "-g", "computer", "--issue", "8", "--month", "August")
	assert.Equal(t, "Added book: Byte\n", out)

	out = mustRun(t, "list")
	assert.Contains(t, out, "1. Fiction: 'Dune' by Frank Herbert (1965), genre: sci-fi, style: epic")
	assert.Contains(t, out, "2. Magazine: 'Byte' by McGraw-Hill (1984), genre: computer, issue: 8, month: August")

	saved := env.ReadFileString("library.json")
	assert.Contains(t, saved, `"type": "FictionBook"`)
	assert.Contains(t, saved, `"issue_number": 8`)
}

func TestListEmptyCatalog(t *testing.T) {
	resetCmdState(t)

	out := mustRun(t, "list")
	assert.Equal(t, "Catalog is empty\n", out)
}

func TestAddMissingFieldDoesNotTouchCatalog(t *testing.T) {
	env := resetCmdState(t)

	_, err := runCLI(t, "add", "fiction", "-t", "Dune")
	require.Error(t, err)
	assert.True(t, bookerrors.IsMissingFieldError(err))
	assert.Contains(t, err.Error(), `missing required field "author"`)
	assert.False(t, env.FileExists("library.json"))
}

func TestAddRejectsNonNumericYear(t *testing.T) {
	resetCmdState(t)

	_, err := runCLI(t, "add", "fiction", "-t", "Dune", "-a", "Herbert", "-y", "soon", "-g", "sci-fi", "--style", "epic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "year": must be an integer`)
}

func TestBuildCommands(t *testing.T) {
	resetCmdState(t)

	mustRun(t, "build", "fiction", "-t", "The Hobbit", "-a", "Tolkien")
	mustRun(t, "build", "fiction", "-t", "Dune", "-a", "Herbert", "-y", "1965")
	mustRun(t, "build", "academic", "-t", "TAOCP", "-a", "Knuth", "--field", "Algorithms", "--university", "Stanford")
	mustRun(t, "build", "magazine", "-t", "Byte", "-p", "McGraw-Hill", "-y", "1984", "--issue", "8", "--month", "August")

	out := mustRun(t, "list")
	assert.Contains(t, out, "1. Fiction: 'The Hobbit' by Tolkien (2024), genre: adventure, style: fantasy")
	assert.Contains(t, out, "2. Fiction: 'Dune' by Herbert (1965), genre: adventure, style: fantasy")
	assert.Contains(t, out, "3. Academic: 'TAOCP' by Knuth (2024), genre: science, field: Algorithms, university: Stanford")
	assert.Contains(t, out, "4. Magazine: 'Byte' by McGraw-Hill (1984), genre: magazine, issue: 8, month: August")
}

func TestSearchCommand(t *testing.T) {
	resetCmdState(t)
	seedCatalog(t)

	out := mustRun(t, "search", "author", "TOLKIEN")
	assert.Contains(t, out, "Books with author matching 'TOLKIEN':")
	assert.Contains(t, out, "- Fiction: 'The Hobbit'")
	assert.NotContains(t, out, "Dune")

	out = mustRun(t, "search", "genre", "horror")
	assert.Equal(t, "No books with genre matching 'horror'\n", out)

	out = mustRun(t, "search", "title", "dun")
	assert.Contains(t, out, "- Fiction: 'Dune'")
}

func TestRemoveCommand(t *testing.T) {
	resetCmdState(t)
	seedCatalog(t)

	out := mustRun(t, "remove", "the hobbit")
	assert.Equal(t, "Removed book: the hobbit\n", out)

	out = mustRun(t, "remove", "The Hobbit")
	assert.Equal(t, "No book titled exactly 'The Hobbit'\n", out)

	_, err := runCLI(t, "remove")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "book title is required")
}

func TestRemovePick(t *testing.T) {
	resetCmdState(t)
	seedCatalog(t)

	orig := selectBook
	t.Cleanup(func() { selectBook = orig })

	selectBook = func(header string, books []book.Book) (tui.SelectionResult, error) {
		require.Len(t, books, 2)
		return tui.SelectionResult{Action: tui.ActionSelected, Index: 0, Selection: books[0]}, nil
	}
	out := mustRun(t, "remove", "--pick")
	assert.Equal(t, "Removed book: Dune\n", out)

	selectBook = func(string, []book.Book) (tui.SelectionResult, error) {
		return tui.SelectionResult{Action: tui.ActionStopped, Index: -1}, nil
	}
	_, err := runCLI(t, "remove", "--pick")
	require.NoError(t, err)

	selectBook = func(string, []book.Book) (tui.SelectionResult, error) {
		return tui.SelectionResult{Action: tui.ActionSkipped, Index: -1}, nil
	}
	out = mustRun(t, "remove", "--pick")
	assert.Equal(t, "Nothing removed\n", out)

	out = mustRun(t, "list")
	assert.Contains(t, out, "The Hobbit")
	assert.NotContains(t, out, "Dune")
}

func TestSortCommand(t *testing.T) {
	resetCmdState(t)
	seedCatalog(t)

	out := mustRun(t, "sort")
	assert.Equal(t, "Books sorted by year.\n", out)

	out = mustRun(t, "list")
	assert.Less(t, strings.Index(out, "The Hobbit"), strings.Index(out, "Dune"))
}

func TestSaveAndLoadCommands(t *testing.T) {
	env := resetCmdState(t)
	seedCatalog(t)

	copyPath := env.Path("backup", "library.yaml")
	out := mustRun(t, "save", copyPath)
	assert.Equal(t, "Catalog saved to "+copyPath+"\n", out)
	assert.Contains(t, env.ReadFileString("backup/library.yaml"), "type: FictionBook")

	mustRun(t, "remove", "Dune")
	mustRun(t, "load", copyPath)

	out = mustRun(t, "list")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "The Hobbit")
}

func TestLoadCorruptFileKeepsWorkingCatalog(t *testing.T) {
	env := resetCmdState(t)
	seedCatalog(t)
	before := env.ReadFileString("library.json")

	env.WriteFileString("broken.json", `[{"type": "Pamphlet", "title": "X"}]`)
	_, err := runCLI(t, "load", env.Path("broken.json"))
	require.Error(t, err)
	assert.True(t, bookerrors.IsCorruptCatalogError(err))

	assert.Equal(t, before, env.ReadFileString("library.json"))
}

func TestLoadMissingFile(t *testing.T) {
	env := resetCmdState(t)

	_, err := runCLI(t, "load", env.Path("nope.json"))
	require.Error(t, err)
	assert.True(t, bookerrors.IsFileUnavailableError(err))
}

func TestSkipUnknownFlag(t *testing.T) {
	env := resetCmdState(t)
	env.WriteFileString("library.json", `[
  {"type": "Pamphlet", "title": "X"},
  {"type": "FictionBook", "title": "Dune", "author": "Herbert", "year": 1965, "genre": "sci-fi", "style": "epic"}
]`)

	_, err := runCLI(t, "list")
	require.Error(t, err)
	assert.True(t, bookerrors.IsCorruptCatalogError(err))

	out := mustRun(t, "--skip-unknown", "list")
	assert.Equal(t, "=== All books in the catalog ===\n1. Fiction: 'Dune' by Herbert (1965), genre: sci-fi, style: epic\n", out)
}

func TestSkipUnknownRefusesToSave(t *testing.T) {
	env := resetCmdState(t)
	original := `[
  {"type": "Pamphlet", "title": "X"},
  {"type": "FictionBook", "title": "Dune", "author": "Herbert", "year": 1965, "genre": "sci-fi", "style": "epic"}
]`
	env.WriteFileString("library.json", original)

	for _, args := range [][]string{
		{"--skip-unknown", "sort"},
		{"--skip-unknown", "remove", "Dune"},
		{"--skip-unknown", "build", "fiction", "-t", "Emma", "-a", "Austen"},
	} {
		_, err := runCLI(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "1 unreadable records were skipped")
	}

	assert.Equal(t, original, env.ReadFileString("library.json"))

	out := mustRun(t, "--skip-unknown", "search", "author", "Herbert")
	assert.Contains(t, out, "Dune")
}

func TestCatalogFlagSelectsFile(t *testing.T) {
	env := resetCmdState(t)

	other := env.Path("other.yaml")
	mustRun(t, "--catalog", other, "build", "fiction", "-t", "Dune", "-a", "Herbert")

	assert.True(t, env.FileExists("other.yaml"))
	assert.False(t, env.FileExists("library.json"))
}

func TestExportSQLiteCommand(t *testing.T) {
	resetCmdState(t)
	seedCatalog(t)

	var gotPath string
	var gotBooks []book.Book
	orig := exportSQLite
	exportSQLite = func(dbPath string, books []book.Book) error {
		gotPath, gotBooks = dbPath, books
		return nil
	}
	t.Cleanup(func() { exportSQLite = orig })

	out := mustRun(t, "export", "sqlite")
	assert.Equal(t, config.DatasetteDB, gotPath)
	assert.Len(t, gotBooks, 2)
	assert.Equal(t, "Exported 2 books to "+config.DatasetteDB+"\n", out)

	mustRun(t, "export", "sqlite", "--db", "/tmp/custom.db")
	assert.Equal(t, "/tmp/custom.db", gotPath)
}

func TestExportMarkdownCommand(t *testing.T) {
	env := resetCmdState(t)
	seedCatalog(t)

	out := mustRun(t, "export", "markdown")
	assert.Equal(t, "Wrote 2 of 2 notes to "+config.MarkdownOutputDir+"\n", out)
	assert.True(t, env.FileExists("markdown/Dune.md"))
	assert.True(t, env.FileExists("markdown/The Hobbit.md"))

	out = mustRun(t, "export", "markdown")
	assert.Contains(t, out, "Wrote 0 of 2 notes")

	out = mustRun(t, "--overwrite", "export", "markdown", "-o", env.Path("notes"))
	assert.Contains(t, out, "Wrote 2 of 2 notes")
	assert.True(t, env.FileExists("notes/Dune.md"))
}

func TestMenuCommand(t *testing.T) {
	resetCmdState(t)
	seedCatalog(t)

	orig := stdin
	stdin = strings.NewReader("3\n0\n")
	t.Cleanup(func() { stdin = orig })

	out := mustRun(t, "menu")
	assert.Contains(t, out, "1. Fiction: 'Dune'")
	assert.Contains(t, out, "Goodbye!")
}

func TestDemoCommand(t *testing.T) {
	env := resetCmdState(t)

	out := mustRun(t, "demo")
	assert.Contains(t, out, "=== Bookshelf demonstration ===")
	assert.Contains(t, out, "Removed book: Programming with Python")
	assert.False(t, env.FileExists("library.json"))
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFromEnv(tt.value))
		})
	}
}

func TestInitLogging(t *testing.T) {
	t.Setenv("BOOKSHELF_LOG_LEVEL", "debug")
	require.NotPanics(t, func() {
		initLogging()
	})
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))

	setLogLevel(slog.LevelInfo)
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
}

// seedCatalog writes a working catalog with Dune (1965) then The Hobbit (1937).
func seedCatalog(t *testing.T) {
	t.Helper()

	mustRun(t, "add", "fiction", "-t", "Dune", "-a", "Frank Herbert", "-y", "1965", "-g", "sci-fi", "--style", "epic")
	mustRun(t, "add", "fiction", "-t", "The Hobbit", "-a", "J.R.R. Tolkien", "-y", "1937", "-g", "fantasy", "--style", "children's")
}
