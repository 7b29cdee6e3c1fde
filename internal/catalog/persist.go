package catalog

import (
	"log/slog"

	"github.com/lepinkainen/bookshelf/internal/codec"
	"github.com/lepinkainen/bookshelf/internal/fileutil"
)

// Load replaces the catalog with the contents of the file at path. The
// catalog is left unchanged when the file cannot be read or decoded.
func (c *Catalog) Load(path string, opts codec.DecodeOptions) error {
	books, err := fileutil.LoadCatalog(path, opts)
	if err != nil {
		return err
	}

	c.Replace(books)
	slog.Info("Catalog loaded", "filename", path, "books", len(books))
	return nil
}

// Save writes the whole catalog to path.
func (c *Catalog) Save(path string) error {
	if err := fileutil.SaveCatalog(path, c.books); err != nil {
		return err
	}

	slog.Info("Catalog saved", "filename", path, "books", len(c.books))
	return nil
}
