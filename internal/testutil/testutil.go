// Package testutil provides common test utilities for the bookshelf project.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnv provides a sandboxed test environment that validates all paths
// stay within a temporary directory. It is cleaned up when the test completes.
type TestEnv struct {
	t       *testing.T
	rootDir string
}

// NewTestEnv creates a new sandboxed test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return &TestEnv{
		t:       t,
		rootDir: t.TempDir(),
	}
}

// RootDir returns the root directory of the test environment.
func (e *TestEnv) RootDir() string {
	return e.rootDir
}

// Path returns an absolute path within the test environment.
// It fails the test if the path would escape the sandbox.
func (e *TestEnv) Path(elem ...string) string {
	e.t.Helper()

	cleanPath := filepath.Clean(filepath.Join(e.rootDir, filepath.Join(elem...)))
	if !e.isWithinSandbox(cleanPath) {
		e.t.Fatalf("path %q escapes test sandbox %q", cleanPath, e.rootDir)
	}

	return cleanPath
}

func (e *TestEnv) isWithinSandbox(path string) bool {
	cleanRoot := filepath.Clean(e.rootDir)
	return strings.HasPrefix(path, cleanRoot+string(filepath.Separator)) || path == cleanRoot
}

// WriteFile writes content to a file within the test environment,
// creating parent directories as needed.
func (e *TestEnv) WriteFile(path string, content []byte) {
	e.t.Helper()

	absPath := e.Path(path)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		e.t.Fatalf("failed to create directory for %q: %v", absPath, err)
	}
	if err := os.WriteFile(absPath, content, 0o644); err != nil {
		e.t.Fatalf("failed to write file %q: %v", absPath, err)
	}
}

// WriteFileString writes a string to a file within the test environment.
func (e *TestEnv) WriteFileString(path, content string) {
	e.t.Helper()
	e.WriteFile(path, []byte(content))
}

// ReadFile reads a file from within the test environment.
func (e *TestEnv) ReadFile(path string) []byte {
	e.t.Helper()

	absPath := e.Path(path)
	content, err := os.ReadFile(absPath)
	if err != nil {
		e.t.Fatalf("failed to read file %q: %v", absPath, err)
	}
	return content
}

// ReadFileString reads a file from within the test environment as a string.
func (e *TestEnv) ReadFileString(path string) string {
	e.t.Helper()
	return string(e.ReadFile(path))
}

// FileExists reports whether a regular file exists within the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	info, err := os.Stat(e.Path(path))
	return err == nil && !info.IsDir()
}

// ListFiles returns the names of the entries in a directory within the test environment.
func (e *TestEnv) ListFiles(path string) []string {
	e.t.Helper()

	absPath := e.Path(path)
	entries, err := os.ReadDir(absPath)
	if err != nil {
		e.t.Fatalf("failed to read directory %q: %v", absPath, err)
	}

	var files []string
	for _, entry := range entries {
		files = append(files, entry.Name())
	}
	return files
}
