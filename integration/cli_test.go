//go:build integration

package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// binaryPath returns the path to the built CLI binary
func binaryPath(t *testing.T) string {
	t.Helper()
	paths := []string{
		"../erp-console",
		"./erp-console",
		filepath.Join(os.Getenv("GOPATH"), "bin", "erp-console"),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			abs, _ := filepath.Abs(p)
			return abs
		}
	}

	t.Log("Binary not found, building...")
	cmd := exec.Command("go", "build", "-o", "../erp-console", "../cmd/erp-console")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, out)
	}

	abs, _ := filepath.Abs("../erp-console")
	return abs
}

// runCLI runs the binary with the given stdin and returns combined output
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath(t), args...)
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

type auditRow struct {
	User   string `json:"user"`
	Detail string `json:"detail"`
}

func listAudit(t *testing.T, configPath string) []auditRow {
	t.Helper()
	out, err := runCLI(t, "", "--config", configPath, "audit", "list", "--format", "json")
	if err != nil {
		t.Fatalf("audit list failed: %v\n%s", err, out)
	}

	var rows []auditRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("audit list output is not JSON: %v\n%s", err, out)
	}
	return rows
}

func TestCLI_Help(t *testing.T) {
	out, err := runCLI(t, "", "--help")
	if err != nil {
		t.Fatalf("help failed: %v\n%s", err, out)
	}

	for _, cmd := range []string{"tui", "iva", "audit"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("help output missing %q command", cmd)
		}
	}
}

func TestCLI_MenuExit(t *testing.T) {
	config := WriteConfig(t, "DEMO", 3, TempDBPath(t))

	out, err := runCLI(t, "0\n", "--config", config)
	if err != nil {
		t.Fatalf("menu failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "SISTEMA ERP — Ferretería Test") {
		t.Errorf("menu title missing:\n%s", out)
	}
	if !strings.Contains(out, "Cerrando sistema...") {
		t.Errorf("closing message missing:\n%s", out)
	}
}

func TestCLI_DeniedAttemptIsPersisted(t *testing.T) {
	config := WriteConfig(t, "JUAN", 1, TempDBPath(t))

	out, err := runCLI(t, "3\n\n0\n", "--config", config)
	if err != nil {
		t.Fatalf("menu failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Usuario no autorizado") {
		t.Errorf("unauthorized notice missing:\n%s", out)
	}

	rows := listAudit(t, config)
	if len(rows) != 1 {
		t.Fatalf("audit rows = %d, want 1", len(rows))
	}
	if rows[0].User != "JUAN" || !strings.Contains(rows[0].Detail, "vendedores") {
		t.Errorf("audit row = %+v", rows[0])
	}
}

func TestCLI_LevelFlagOverridesConfig(t *testing.T) {
	config := WriteConfig(t, "JUAN", 1, TempDBPath(t))

	out, err := runCLI(t, "3\n\n0\n", "--config", config, "--level", "3")
	if err != nil {
		t.Fatalf("menu failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "[PENDIENTE DE MIGRACIÓN] → fer700 - Vendedores") {
		t.Errorf("restricted module did not open:\n%s", out)
	}
	if rows := listAudit(t, config); len(rows) != 0 {
		t.Errorf("audit rows = %d, want 0", len(rows))
	}
}

func TestCLI_IVAChart(t *testing.T) {
	config := WriteConfig(t, "DEMO", 3, TempDBPath(t))

	out, err := runCLI(t, "1\n3\n\n0\n", "--config", config, "iva")
	if err != nil {
		t.Fatalf("iva failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "[PENDIENTE] fer113 → Gráfico progresión IVA VENTAS") {
		t.Errorf("chart placeholder missing:\n%s", out)
	}
}

func TestCLI_AuditListBadFormat(t *testing.T) {
	config := WriteConfig(t, "DEMO", 3, TempDBPath(t))

	if out, err := runCLI(t, "", "--config", config, "audit", "list", "--format", "xml"); err == nil {
		t.Errorf("expected failure for unknown format:\n%s", out)
	}
}
