package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile     = "./TODO.txt"
	DefaultLogLevel = "warn"

	EnvFile   = "TODO_FILE"
	EnvConfig = "TODO_CONFIG"
)

var configNames = []string{"config.yaml", "config.yml", "config.toml"}

// Config controls where tasks live and how the file is written.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	File     string `yaml:"file" toml:"file"`
	Style    Style  `yaml:"style" toml:"style"`
	Atomic   bool   `yaml:"atomic" toml:"atomic"`
	Lock     bool   `yaml:"lock" toml:"lock"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// ConfigError reports a config file or field that could not be used.
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Path == "":
		return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
	case e.Field == "":
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Field, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func DefaultConfig() Config {
	return Config{
		File:     DefaultFile,
		Style:    StyleSpaced,
		LogLevel: DefaultLogLevel,
	}
}

// LoadConfig reads the first config file found (TODO_CONFIG, then the XDG
// config dir), applies environment overrides and validates the result.
// A missing config file is not an error. The returned path is the file that
// was read, or "" when defaults were used.
func LoadConfig() (Config, string, error) {
	cfg := DefaultConfig()

	used := ""
	for _, path := range configCandidates() {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return cfg, path, &ConfigError{Path: path, Err: err}
		}
		if err := decodeConfig(path, data, &cfg); err != nil {
			return cfg, path, &ConfigError{Path: path, Err: err}
		}
		used = path
		break
	}

	if env := strings.TrimSpace(os.Getenv(EnvFile)); env != "" {
		cfg.File = env
	}

	if err := cfg.normalize(); err != nil {
		return cfg, used, &ConfigError{Path: used, Field: fieldOf(err), Err: err}
	}
	return cfg, used, nil
}

func configCandidates() []string {
	if env := strings.TrimSpace(os.Getenv(EnvConfig)); env != "" {
		return []string{expandHome(env)}
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// No home and no XDG dir: nowhere to look, defaults apply.
			return nil
		}
		dir = filepath.Join(home, ".config")
	}
	paths := make([]string, 0, len(configNames))
	for _, name := range configNames {
		paths = append(paths, filepath.Join(dir, "todo", name))
	}
	return paths
}

func decodeConfig(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
		}
		return nil
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}

type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string { return e.err.Error() }
func (e *fieldError) Unwrap() error { return e.err }

func fieldOf(err error) string {
	var fe *fieldError
	if errors.As(err, &fe) {
		return fe.field
	}
	return ""
}

func (c *Config) normalize() error {
	c.File = strings.TrimSpace(c.File)
	if c.File == "" {
		c.File = DefaultFile
	}
	c.File = expandHome(c.File)

	style, err := parseStyle(string(c.Style))
	if err != nil {
		return &fieldError{field: "style", err: err}
	}
	c.Style = style

	level := strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch level {
	case "":
		level = DefaultLogLevel
	case "debug", "info", "warn", "error":
	default:
		return &fieldError{field: "log_level", err: fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)}
	}
	c.LogLevel = level
	return nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || path == "~" {
		home, _ := os.UserHomeDir()
		if home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
