package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets the variables Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvEndpoint, EnvBackend, EnvAddr, EnvStore, EnvDSN} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New("/tmp/x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != "/tmp/x" {
		t.Errorf("expected dir /tmp/x, got %s", cfg.Dir)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected endpoint %s, got %s", DefaultEndpoint, cfg.Endpoint)
	}
	if cfg.Backend != BackendHTTP {
		t.Errorf("expected backend http, got %s", cfg.Backend)
	}
	if cfg.Server.Addr != DefaultAddr || cfg.Server.Store != DefaultStore {
		t.Errorf("unexpected server defaults %+v", cfg.Server)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/xdg", AppName) {
		t.Errorf("expected /xdg/todo, got %s", got)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	clearEnv(t)
	cfg, _ := New(t.TempDir())
	if err := cfg.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %s", cfg.Endpoint)
	}
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ConfigFile), `
endpoint: http://tasks.example:9000/
backend: Google
server:
  addr: ":9090"
  store: sqlite
  dsn: tasks.db
`)

	cfg, _ := New(dir)
	if err := cfg.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Endpoint != "http://tasks.example:9000/" {
		t.Errorf("unexpected endpoint %s", cfg.Endpoint)
	}
	if cfg.Backend != BackendGoogle {
		t.Errorf("expected backend normalized to google, got %s", cfg.Backend)
	}
	want := ServerConfig{Addr: ":9090", Store: "sqlite", DSN: "tasks.db"}
	if cfg.Server != want {
		t.Errorf("expected %+v, got %+v", want, cfg.Server)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ConfigFile), "endpoint: [unterminated")

	cfg, _ := New(dir)
	if err := cfg.Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ConfigFile), "endpoint: http://from-yaml/\n")
	t.Setenv(EnvEndpoint, "http://from-env/")
	t.Setenv(EnvStore, "mysql")

	cfg, _ := New(dir)
	if err := cfg.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Endpoint != "http://from-env/" {
		t.Errorf("expected env endpoint, got %s", cfg.Endpoint)
	}
	if cfg.Server.Store != "mysql" {
		t.Errorf("expected env store, got %s", cfg.Server.Store)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, EnvFile), "TODO_DSN=file.db\nTODO_ADDR=:7000\n")
	t.Setenv(EnvAddr, ":6000")

	cfg, _ := New(dir)
	if err := cfg.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.DSN != "file.db" {
		t.Errorf("expected DSN from .env, got %q", cfg.Server.DSN)
	}
	if cfg.Server.Addr != ":6000" {
		t.Errorf("process env must win over .env, got %q", cfg.Server.Addr)
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvBackend, "carrier-pigeon")

	cfg, _ := New(t.TempDir())
	if err := cfg.Load(); err == nil {
		t.Fatal("expected unknown backend error")
	}
}

func TestTokenHelpers(t *testing.T) {
	cfg, _ := New(t.TempDir())
	if cfg.HasToken() || cfg.HasOAuthClient() {
		t.Fatal("expected no credential files")
	}
	writeFile(t, cfg.TokenPath(), "{}")
	if !cfg.HasToken() {
		t.Fatal("expected token to exist")
	}
	if err := cfg.RemoveToken(); err != nil {
		t.Fatalf("remove token: %v", err)
	}
	if cfg.HasToken() {
		t.Error("expected token removed")
	}
}
