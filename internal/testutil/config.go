package testutil

import (
	"testing"

	"github.com/lepinkainen/bookshelf/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	CatalogFile       string
	StrictLoad        bool
	OverwriteFiles    bool
	MarkdownOutputDir string
	DatasetteDB       string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		CatalogFile:       config.CatalogFile,
		StrictLoad:        config.StrictLoad,
		OverwriteFiles:    config.OverwriteFiles,
		MarkdownOutputDir: config.MarkdownOutputDir,
		DatasetteDB:       config.DatasetteDB,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.CatalogFile = state.CatalogFile
	config.StrictLoad = state.StrictLoad
	config.OverwriteFiles = state.OverwriteFiles
	config.MarkdownOutputDir = state.MarkdownOutputDir
	config.DatasetteDB = state.DatasetteDB
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// UseTestEnv points every configured path into env so a test never touches
// the working directory. Config is restored when the test completes.
func UseTestEnv(t *testing.T, env *TestEnv) {
	t.Helper()

	ResetConfig(t)

	config.CatalogFile = env.Path("library.json")
	config.StrictLoad = true
	config.OverwriteFiles = false
	config.MarkdownOutputDir = env.Path("markdown")
	config.DatasetteDB = env.Path("bookshelf.db")
}
