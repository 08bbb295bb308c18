package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mordilloSan/go-phklogger/logger"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "logger.toml", `
target = "/var/log/app/app.log"
threshold = "info"
name = "app"
console = true
backup_count = 7
rotate_when = "H"
rotate_interval = 6
max_size_mb = 50
pattern = "%(levelname)s %(message)s"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := logger.Config{
		Target:         "/var/log/app/app.log",
		Threshold:      logger.LevelName("info"),
		Name:           "app",
		Console:        true,
		BackupCount:    7,
		RotateWhen:     "H",
		RotateInterval: 6,
		MaxSizeMB:      50,
		Pattern:        "%(levelname)s %(message)s",
	}
	if cfg != want {
		t.Fatalf("Load = %+v, want %+v", cfg, want)
	}
}

func TestLoad_TOMLIntegerThreshold(t *testing.T) {
	path := writeConfig(t, "logger.toml", "threshold = 25\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Threshold != logger.Level(25) {
		t.Fatalf("Threshold = %#v, want Level(25)", cfg.Threshold)
	}
}

func TestLoad_JSON5(t *testing.T) {
	path := writeConfig(t, "logger.json5", `{
  // comments and trailing commas are allowed
  name: 'svc',
  threshold: 40,
  console: "true",
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "svc" || cfg.Threshold != logger.ErrorLevel || !cfg.Console {
		t.Fatalf("Load = %+v", cfg)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "logger.json", `{"threshold": "CRITICAL", "target": "out.log"}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Threshold != logger.LevelName("CRITICAL") || cfg.Target != "out.log" {
		t.Fatalf("Load = %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]struct {
		name, content, want string
	}{
		"unknown key":       {"a.toml", "colour = \"red\"\n", "colour"},
		"fractional level":  {"a.json", `{"threshold": 12.5}`, "not an integer"},
		"bad level type":    {"a.json", `{"threshold": [1]}`, "threshold must be"},
		"unsupported ext":   {"a.yaml", "name: x\n", "unsupported config format"},
		"malformed toml":    {"a.toml", "name = \n", "parse"},
		"malformed json5":   {"a.json5", "{name: }", "parse"},
		"bad console value": {"a.toml", "console = \"maybe\"\n", "console"},
	}
	for name, tc := range cases {
		_, err := Load(writeConfig(t, tc.name, tc.content))
		if err == nil {
			t.Fatalf("%s: expected an error", name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q should mention %q", name, err, tc.want)
		}
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("missing file should fail")
	}
}

func TestParseLevelSpec(t *testing.T) {
	if got := ParseLevelSpec(" 15 "); got != logger.Level(15) {
		t.Fatalf("ParseLevelSpec(15) = %#v", got)
	}
	if got := ParseLevelSpec("warning"); got != logger.LevelName("warning") {
		t.Fatalf("ParseLevelSpec(warning) = %#v", got)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFile, "/tmp/app.log")
	t.Setenv(EnvName, "env")
	t.Setenv(EnvConsole, "1")

	cfg := logger.Config{Name: "file", Threshold: logger.ErrorLevel, BackupCount: 9}
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	want := logger.Config{
		Target:      "/tmp/app.log",
		Threshold:   logger.LevelName("debug"),
		Name:        "env",
		Console:     true,
		BackupCount: 9,
	}
	if cfg != want {
		t.Fatalf("ApplyEnv = %+v, want %+v", cfg, want)
	}
}

func TestApplyEnv_UnsetKeepsConfig(t *testing.T) {
	for _, key := range []string{EnvLevel, EnvFile, EnvName, EnvConsole} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg := logger.Config{Name: "keep", Threshold: logger.Level(42)}
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Name != "keep" || cfg.Threshold != logger.Level(42) {
		t.Fatalf("ApplyEnv changed config: %+v", cfg)
	}
}

func TestApplyEnv_BadConsole(t *testing.T) {
	t.Setenv(EnvConsole, "sometimes")
	var cfg logger.Config
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatalf("expected an error for an invalid %s", EnvConsole)
	}
}
