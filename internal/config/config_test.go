package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	run := Apply(cfg, DefaultRunConfig())
	if run.BaseDir != ".." || run.OutDir != "." {
		t.Fatalf("unexpected defaults: %+v", run)
	}
	if len(run.Files) != 7 || run.Files[0] != "eff.txt" || run.Files[6] != "starwars.txt" {
		t.Fatalf("unexpected default files: %v", run.Files)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[analysis]
base-dir = "/srv/lists"
files = ["one.txt", "two.txt"]

[history]
db = "/tmp/history.db"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.History.DB == nil || *cfg.History.DB != "/tmp/history.db" {
		t.Fatalf("expected history db to be set")
	}
	run := Apply(cfg, DefaultRunConfig())
	if run.BaseDir != "/srv/lists" {
		t.Fatalf("unexpected base dir %q", run.BaseDir)
	}
	if run.OutDir != "." {
		t.Fatalf("expected out dir to keep default, got %q", run.OutDir)
	}
	if len(run.Files) != 2 || run.Files[1] != "two.txt" {
		t.Fatalf("unexpected files %v", run.Files)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[analysis\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultRunConfigIsCopy(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Files[0] = "changed.txt"
	if DefaultFiles[0] != "eff.txt" {
		t.Fatalf("DefaultRunConfig must not alias DefaultFiles")
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "wordstats", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "wordstats", "history.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
