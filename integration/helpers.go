//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// TempDBPath creates a temporary database path for testing
func TempDBPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "audit.db")
}

// TempConfigPath creates a temporary config file path for testing
func TempConfigPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "config.toml")
}

// WriteConfig writes a config file for the given operator and audit database
func WriteConfig(t *testing.T, user string, level int, dbPath string) string {
	t.Helper()
	path := TempConfigPath(t)

	content := `[general]
store_name = "Ferretería Test"

[session]
user = "` + user + `"
level = ` + strconv.Itoa(level) + `

[audit]
persist = true
database_path = "` + dbPath + `"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

