package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/s8508235/src-cli/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "src-cli.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingDefaultReturnsDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(config.EnvConfigPath, "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".src-cli.toml"); resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	if len(cfg.Segment.UserDictionaries) != 0 {
		t.Fatalf("expected no user dictionaries, got %q", cfg.Segment.UserDictionaries)
	}
	def := config.Default()
	if cfg.Segment.HMM != def.Segment.HMM || cfg.Output.Format != def.Output.Format || cfg.Output.Normalize != def.Output.Normalize {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvOverridesPath(t *testing.T) {
	path := writeConfig(t, "[output]\nformat = \"json\"\n")
	t.Setenv(config.EnvConfigPath, path)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("Load resolved %q (exists=%v), want %q", resolved, exists, path)
	}
	if cfg.Output.Format != config.FormatJSON {
		t.Errorf("format = %q, want json", cfg.Output.Format)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := writeConfig(t, `
[segment]
hmm = false
user_dictionaries = ["~/dict/user.txt", "  "]

[output]
format = " TABLE "
normalize = false

[logging]
level = "Debug"
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Segment.HMM {
		t.Error("expected hmm disabled")
	}
	if len(cfg.Segment.UserDictionaries) != 1 {
		t.Fatalf("user dictionaries = %q, want one entry", cfg.Segment.UserDictionaries)
	}
	if want := filepath.Join(tempHome, "dict", "user.txt"); cfg.Segment.UserDictionaries[0] != want {
		t.Errorf("user dictionary = %q, want %q", cfg.Segment.UserDictionaries[0], want)
	}
	if cfg.Output.Format != config.FormatTable {
		t.Errorf("format = %q, want table", cfg.Output.Format)
	}
	if cfg.Output.Normalize {
		t.Error("expected normalize disabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"format", "[output]\nformat = \"xml\"\n", config.ErrInvalidFormat},
		{"level", "[logging]\nlevel = \"loud\"\n", config.ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := config.Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, _, _, err := config.Load(writeConfig(t, "wpm = 300\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, _, _, err := config.Load(t.TempDir()); err == nil {
		t.Fatal("expected error for directory config path")
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	var cfg config.Config
	if err := toml.Unmarshal([]byte(config.SampleConfig()), &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
	def := config.Default()
	if cfg.Segment.HMM != def.Segment.HMM ||
		cfg.Output.Format != def.Output.Format ||
		cfg.Output.Normalize != def.Output.Normalize ||
		cfg.Logging.Level != def.Logging.Level {
		t.Errorf("sample config %+v differs from defaults %+v", cfg, def)
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "src-cli.toml")
	if err := config.WriteSample(path, false); err != nil {
		t.Fatalf("WriteSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[segment]") {
		t.Errorf("sample config missing [segment] section")
	}
	if err := config.WriteSample(path, false); err == nil {
		t.Error("expected error when config already exists")
	}
	if err := config.WriteSample(path, true); err != nil {
		t.Errorf("WriteSample with overwrite returned error: %v", err)
	}
}
