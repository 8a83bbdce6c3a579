package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Default()

	if cfg.Session.User != "DEMO" {
		t.Errorf("Session.User = %q, want DEMO", cfg.Session.User)
	}
	if cfg.Session.Level != 3 {
		t.Errorf("Session.Level = %d, want 3", cfg.Session.Level)
	}
	if cfg.General.Width != 60 {
		t.Errorf("General.Width = %d, want 60", cfg.General.Width)
	}
	if !cfg.Audit.Persist {
		t.Error("audit persistence should be enabled by default")
	}
	if cfg.Audit.AlertsEnabled() {
		t.Error("alerts should be disabled by default")
	}
}

func TestLoad_Alerts(t *testing.T) {
	path := writeTempConfig(t, `
[audit]
slack_webhook = "https://hooks.slack.com/services/T000/B000/XXX"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Audit.AlertsEnabled() {
		t.Error("AlertsEnabled() = false with a slack webhook configured")
	}
	if cfg.Audit.DesktopAlerts {
		t.Error("DesktopAlerts = true, want false")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.StoreName != Default().General.StoreName {
		t.Errorf("StoreName = %q, want default", cfg.General.StoreName)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := writeTempConfig(t, `
[general]
store_name = "Ferretería Central"
detail = true

[session]
user = "JUAN"
level = 1

[audit]
persist = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.General.StoreName != "Ferretería Central" {
		t.Errorf("StoreName = %q, want Ferretería Central", cfg.General.StoreName)
	}
	if !cfg.General.Detail {
		t.Error("Detail = false, want true")
	}
	if cfg.General.Width != 60 {
		t.Errorf("Width = %d, want default 60", cfg.General.Width)
	}
	if cfg.Session.User != "JUAN" || cfg.Session.Level != 1 {
		t.Errorf("Session = %+v, want JUAN/1", cfg.Session)
	}
	if cfg.Audit.Persist {
		t.Error("Audit.Persist = true, want false")
	}
}

func TestLoad_ExpandsDatabasePath(t *testing.T) {
	home, _ := os.UserHomeDir()
	path := writeTempConfig(t, `
[audit]
database_path = "~/erp/audit.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "erp", "audit.db"); cfg.Audit.DatabasePath != want {
		t.Errorf("DatabasePath = %q, want %q", cfg.Audit.DatabasePath, want)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative level", "[session]\nlevel = -1\n"},
		{"negative width", "[general]\nwidth = -5\n"},
		{"persist without path", "[audit]\npersist = true\ndatabase_path = \"\"\n"},
		{"bad toml", "[general\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeTempConfig(t, tt.content)); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative", "relative"},
	}

	for _, tt := range tests {
		got := ExpandPath(tt.input)
		if got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFindLocalConfig(t *testing.T) {
	root := t.TempDir()
	subdir := filepath.Join(root, "sub", "dir")
	if err := os.MkdirAll(subdir, 0755); err != nil {
		t.Fatal(err)
	}

	localConfig := filepath.Join(root, LocalConfigName)
	if err := os.WriteFile(localConfig, []byte("[general]\nstore_name = \"Local\""), 0644); err != nil {
		t.Fatal(err)
	}

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	if err := os.Chdir(subdir); err != nil {
		t.Fatal(err)
	}

	// t.TempDir may sit behind a symlink, so compare resolved paths
	found, _ := filepath.EvalSymlinks(FindLocalConfig())
	want, _ := filepath.EvalSymlinks(localConfig)
	if found != want {
		t.Errorf("FindLocalConfig() = %q, want %q", found, want)
	}
}

func TestLoadWithLocalFallback_ExplicitPath(t *testing.T) {
	path := writeTempConfig(t, "[general]\nstore_name = \"Explicit\"\n")

	cfg, err := LoadWithLocalFallback(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.StoreName != "Explicit" {
		t.Errorf("StoreName = %q, want Explicit", cfg.General.StoreName)
	}
}

func TestLoadWithLocalFallback_LocalConfig(t *testing.T) {
	root := t.TempDir()
	localConfig := filepath.Join(root, LocalConfigName)
	if err := os.WriteFile(localConfig, []byte("[general]\nstore_name = \"From Local\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	if err := os.Chdir(root); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithLocalFallback("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.StoreName != "From Local" {
		t.Errorf("StoreName = %q, want From Local", cfg.General.StoreName)
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
