package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/bookshelf/internal/catalog"
	"github.com/lepinkainen/bookshelf/internal/codec"
	"github.com/lepinkainen/bookshelf/internal/config"
	bookerrors "github.com/lepinkainen/bookshelf/internal/errors"
	"github.com/lepinkainen/bookshelf/internal/tui"
)

var (
	stdout     io.Writer = os.Stdout
	stdin      io.Reader = os.Stdin
	selectBook           = tui.Select
)

// CLI represents the complete command structure for the bookshelf application
type CLI struct {
	// Global flags
	Catalog     string `help:"Path to the working catalog file (.json, .yaml or .yml)"`
	SkipUnknown bool   `help:"Skip unreadable records when loading instead of failing; commands that save refuse to run if any were skipped"`
	Overwrite   bool   `help:"Overwrite existing markdown files when exporting"`
	Debug       bool   `help:"Enable debug logging"`

	Add    AddCmd    `cmd:"" help:"Add a book through the factory"`
	Build  BuildCmd  `cmd:"" help:"Add a book through a builder and director recipe"`
	List   ListCmd   `cmd:"" help:"Show all books"`
	Search SearchCmd `cmd:"" help:"Search books by author, genre or title"`
	Remove RemoveCmd `cmd:"" help:"Remove a book by exact title"`
	Sort   SortCmd   `cmd:"" help:"Sort the catalog by year"`
	Save   SaveCmd   `cmd:"" help:"Save a copy of the catalog to another file"`
	Load   LoadCmd   `cmd:"" help:"Replace the catalog with the contents of another file"`
	Export ExportCmd `cmd:"" help:"Export the catalog to SQLite or markdown"`
	Menu   MenuCmd   `cmd:"" help:"Interactive numbered menu"`
	Demo   DemoCmd   `cmd:"" help:"Run the demonstration on an in-memory catalog"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("bookshelf"),
		kong.Description("A single-user library catalog manager."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	viper.SetDefault("catalog.file", config.DefaultCatalogFile)
	viper.SetDefault("catalog.strict", true)
	viper.SetDefault("MarkdownOutputDir", config.DefaultMarkdownOutputDir)
	viper.SetDefault("OverwriteFiles", false)
	viper.SetDefault("datasette.dbfile", config.DefaultDatasetteDB)

	// BOOKSHELF_CATALOG_FILE overrides catalog.file
	viper.SetEnvPrefix("BOOKSHELF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
		slog.Debug("Config file not found, using defaults")
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetCatalogFile(cli.Catalog)
	if cli.SkipUnknown {
		config.SetStrictLoad(false)
	}
	if cli.Overwrite {
		config.SetOverwriteFiles(true)
	}
	if cli.Debug {
		setLogLevel(slog.LevelDebug)
	}
}

func initLogging() {
	setLogLevel(levelFromEnv(os.Getenv("BOOKSHELF_LOG_LEVEL")))
}

func setLogLevel(level slog.Level) {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func levelFromEnv(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func decodeOptions() codec.DecodeOptions {
	if config.StrictLoad {
		return codec.DecodeOptions{Mode: codec.Strict}
	}
	return codec.DecodeOptions{Mode: codec.Skip}
}

// openCatalog loads the working catalog. A catalog file that does not exist
// yet is an empty catalog.
func openCatalog() (*catalog.Catalog, error) {
	return loadCatalog(decodeOptions())
}

func loadCatalog(opts codec.DecodeOptions) (*catalog.Catalog, error) {
	cat := catalog.New()
	err := cat.Load(config.CatalogFile, opts)
	if err != nil {
		if bookerrors.IsFileUnavailableError(err) && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Catalog file does not exist yet, starting empty", "filename", config.CatalogFile)
			return cat, nil
		}
		return nil, err
	}
	return cat, nil
}

// updateCatalog loads the working catalog, applies fn and saves the result.
// Saving would drop records skipped during the load, so it refuses instead.
func updateCatalog(fn func(*catalog.Catalog) error) error {
	skipped := 0
	opts := decodeOptions()
	opts.OnSkip = func(int, error) { skipped++ }

	cat, err := loadCatalog(opts)
	if err != nil {
		return err
	}
	if skipped > 0 {
		return fmt.Errorf("refusing to modify %s: %d unreadable records were skipped and would be lost on save", config.CatalogFile, skipped)
	}
	if err := fn(cat); err != nil {
		return err
	}
	return cat.Save(config.CatalogFile)
}
