package config

import (
	"github.com/spf13/viper"
)

// Default values, also written into viper by InitConfig.
const (
	DefaultCatalogFile       = "./library.json"
	DefaultMarkdownOutputDir = "./markdown/"
	DefaultDatasetteDB       = "./bookshelf.db"
)

// Global configuration variables
var (
	// CatalogFile is the path of the working catalog document
	CatalogFile = DefaultCatalogFile
	// StrictLoad makes loading fail on unreadable records instead of skipping them
	StrictLoad = true
	// OverwriteFiles controls whether exports may replace existing files
	OverwriteFiles bool
	// MarkdownOutputDir is where markdown notes are exported
	MarkdownOutputDir = DefaultMarkdownOutputDir
	// DatasetteDB is the SQLite file written by the datasette export
	DatasetteDB = DefaultDatasetteDB
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("catalog.file", DefaultCatalogFile)
	viper.SetDefault("catalog.strict", true)
	viper.SetDefault("MarkdownOutputDir", DefaultMarkdownOutputDir)
	viper.SetDefault("OverwriteFiles", false)
	viper.SetDefault("datasette.dbfile", DefaultDatasetteDB)

	// Get values from viper
	CatalogFile = viper.GetString("catalog.file")
	StrictLoad = viper.GetBool("catalog.strict")
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	MarkdownOutputDir = viper.GetString("MarkdownOutputDir")
	DatasetteDB = viper.GetString("datasette.dbfile")
}

// SetCatalogFile overrides the catalog path, ignoring empty values
func SetCatalogFile(path string) {
	if path != "" {
		CatalogFile = path
	}
}

// SetStrictLoad sets the StrictLoad flag
func SetStrictLoad(strict bool) {
	StrictLoad = strict
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}
