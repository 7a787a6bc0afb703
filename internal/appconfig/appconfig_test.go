// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config

	if cfg.QueryTimeout() != 120*time.Second {
		t.Fatalf("expected default query timeout of 120s, got %v", cfg.QueryTimeout())
	}
	if cfg.LogFilePath() != "revlens.log" {
		t.Fatalf("expected default log file, got %q", cfg.LogFilePath())
	}
	if cfg.ExportFilePath() != "reports/revlens.html" {
		t.Fatalf("expected default export path, got %q", cfg.ExportFilePath())
	}
	if len(cfg.ScopeList()) != 2 {
		t.Fatalf("expected default scopes, got %v", cfg.ScopeList())
	}
}

func TestConfigOverrides(t *testing.T) {
	cfg := Config{Timeout: 5, LogFile: "custom.log", ExportPath: "out/report.html"}

	if cfg.QueryTimeout() != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.QueryTimeout())
	}
	if cfg.LogFilePath() != "custom.log" {
		t.Fatalf("log file = %q", cfg.LogFilePath())
	}
	if cfg.ExportFilePath() != "out/report.html" {
		t.Fatalf("export path = %q", cfg.ExportFilePath())
	}
}

func TestScopeListOverride(t *testing.T) {
	cfg := Config{Warehouse: Warehouse{Scopes: []string{"custom_table"}}}
	scopes := cfg.ScopeList()
	if len(scopes) != 1 || scopes[0] != "custom_table" {
		t.Fatalf("expected configured scopes to win, got %v", scopes)
	}
}

func TestResolveConfigPathExplicit(t *testing.T) {
	if got := ResolveConfigPath("/etc/revlens/config.json"); got != "/etc/revlens/config.json" {
		t.Fatalf("explicit path rewritten to %q", got)
	}
}

func TestResolveConfigPathLegacyFallback(t *testing.T) {
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatal(err)
		}
	})

	// Neither file exists: stick with the default path.
	if got := ResolveConfigPath(""); got != DefaultConfigPath {
		t.Fatalf("resolved %q, want %q", got, DefaultConfigPath)
	}

	if err := os.WriteFile(legacyConfigPath, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := ResolveConfigPath(DefaultConfigPath); got != legacyConfigPath {
		t.Fatalf("resolved %q, want legacy %q", got, legacyConfigPath)
	}

	// Once the default file exists it wins over the legacy one.
	if err := os.MkdirAll(filepath.Dir(DefaultConfigPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(DefaultConfigPath, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := ResolveConfigPath(DefaultConfigPath); got != DefaultConfigPath {
		t.Fatalf("resolved %q, want %q", got, DefaultConfigPath)
	}
}
