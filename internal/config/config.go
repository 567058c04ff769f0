package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatTable = "table"

	// overrides the default config location
	EnvConfigPath = "SRC_CLI_CONFIG"
)

var (
	ErrInvalidFormat = errors.New("invalid output format")
	ErrInvalidLevel  = errors.New("invalid log level")
)

// Segment controls the segmentation engine.
type Segment struct {
	HMM              bool     `toml:"hmm"`
	UserDictionaries []string `toml:"user_dictionaries"`
}

// Output controls how tokens are printed.
type Output struct {
	Format    string `toml:"format"`
	Normalize bool   `toml:"normalize"`
}

type Logging struct {
	Level string `toml:"level"`
}

// Config is the contents of ~/.src-cli.toml.
type Config struct {
	Segment Segment `toml:"segment"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

func Default() Config {
	return Config{
		Segment: Segment{HMM: true},
		Output:  Output{Format: FormatLines, Normalize: true},
		Logging: Logging{Level: "info"},
	}
}

// SampleConfig returns the commented sample written by `config init`.
func SampleConfig() string {
	return sampleConfig
}

// DefaultPath returns $SRC_CLI_CONFIG or ~/.src-cli.toml.
func DefaultPath() (string, error) {
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return expandPath(env)
	}
	return expandPath("~/.src-cli.toml")
}

// Load reads the config at path (or the default path when empty). A missing
// file is not an error: defaults are returned with exists == false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved, exists, err := resolvePath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolved, exists, nil
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatLines, FormatJSON, FormatTable:
	default:
		return fmt.Errorf("%w %q: use lines, json, or table", ErrInvalidFormat, c.Output.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w %q: use debug, info, warn, or error", ErrInvalidLevel, c.Logging.Level)
	}
	return nil
}

func (c *Config) normalize() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = FormatLines
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	dicts := make([]string, 0, len(c.Segment.UserDictionaries))
	for _, p := range c.Segment.UserDictionaries {
		if strings.TrimSpace(p) == "" {
			continue
		}
		expanded, err := expandPath(strings.TrimSpace(p))
		if err != nil {
			return err
		}
		dicts = append(dicts, expanded)
	}
	c.Segment.UserDictionaries = dicts
	return nil
}

// WriteSample writes the sample config to path. Existing files are kept
// unless overwrite is set.
func WriteSample(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("config already exists: %s", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, bool, error) {
	var err error
	if path == "" {
		path, err = DefaultPath()
	} else {
		path, err = expandPath(path)
	}
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path is a directory: %s", path)
	}
	return path, true, nil
}

// ExpandPath resolves a leading ~ and makes the path absolute.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
