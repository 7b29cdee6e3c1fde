package cmd

import (
	"fmt"

	"github.com/lepinkainen/bookshelf/cmd/menu"
	"github.com/lepinkainen/bookshelf/internal/catalog"
	"github.com/lepinkainen/bookshelf/internal/config"
	"github.com/lepinkainen/bookshelf/internal/datastore"
	"github.com/lepinkainen/bookshelf/internal/obsidian"
)

var (
	exportSQLite   = datastore.ExportCatalogToFile
	exportMarkdown = obsidian.ExportCatalog
)

// SaveCmd writes a copy of the working catalog to another file
type SaveCmd struct {
	File string `arg:"" help:"Destination file (.json, .yaml or .yml)"`
}

func (s *SaveCmd) Run() error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}
	if err := cat.Save(s.File); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	_, _ = fmt.Fprintf(stdout, "Catalog saved to %s\n", s.File)
	return nil
}

// LoadCmd replaces the working catalog with the contents of another file
type LoadCmd struct {
	File string `arg:"" help:"Catalog file to load (.json, .yaml or .yml)"`
}

func (l *LoadCmd) Run() error {
	cat := catalog.New()
	if err := cat.Load(l.File, decodeOptions()); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if err := cat.Save(config.CatalogFile); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "Catalog loaded from %s\n", l.File)
	return nil
}

// ExportCmd represents the export command and its subcommands
type ExportCmd struct {
	SQLite   ExportSQLiteCmd   `cmd:"" name:"sqlite" help:"Export the catalog to a SQLite database for Datasette"`
	Markdown ExportMarkdownCmd `cmd:"" help:"Export one markdown note per book"`
}

// ExportSQLiteCmd represents the export sqlite command
type ExportSQLiteCmd struct {
	DB string `name:"db" help:"Path to SQLite database file (defaults to datasette.dbfile)"`
}

// ExportMarkdownCmd represents the export markdown command
type ExportMarkdownCmd struct {
	Dir string `short:"o" help:"Output directory (defaults to MarkdownOutputDir)"`
}

func (e *ExportSQLiteCmd) Run() error {
	dbPath := e.DB
	if dbPath == "" {
		dbPath = config.DatasetteDB
	}

	cat, err := openCatalog()
	if err != nil {
		return err
	}
	if err := exportSQLite(dbPath, cat.All()); err != nil {
		return fmt.Errorf("failed to export to %s: %w", dbPath, err)
	}
	_, _ = fmt.Fprintf(stdout, "Exported %d books to %s\n", cat.Len(), dbPath)
	return nil
}

func (e *ExportMarkdownCmd) Run() error {
	dir := e.Dir
	if dir == "" {
		dir = config.MarkdownOutputDir
	}

	cat, err := openCatalog()
	if err != nil {
		return err
	}
	written, err := exportMarkdown(cat.All(), dir, config.OverwriteFiles)
	if err != nil {
		return fmt.Errorf("failed to export markdown: %w", err)
	}
	_, _ = fmt.Fprintf(stdout, "Wrote %d of %d notes to %s\n", written, cat.Len(), dir)
	return nil
}

// MenuCmd runs the interactive numbered menu on the working catalog
type MenuCmd struct{}

func (m *MenuCmd) Run() error {
	cat, err := openCatalog()
	if err != nil {
		return err
	}

	shell := menu.NewShell(stdin, stdout, cat)
	shell.DecodeOptions = decodeOptions()
	shell.DefaultFile = config.CatalogFile
	return shell.Run()
}

// DemoCmd runs the demonstration
type DemoCmd struct{}

func (d *DemoCmd) Run() error {
	return menu.Demo(stdout)
}
