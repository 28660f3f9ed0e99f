// Package config resolves moodlexml settings from defaults, an optional
// YAML file and MOODLEXML_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MOODLEXML_"

// Config holds the settings shared by all commands.
type Config struct {
	// Output is the destination file; "-" writes to stdout.
	Output string `yaml:"output" json:"output"`

	// Indent is the number of spaces per nesting level; 0 disables
	// pretty printing.
	Indent int `yaml:"indent" json:"indent"`

	LogLevel  string `yaml:"log_level" json:"log_level"`
	LogFormat string `yaml:"log_format" json:"log_format"`

	// Category is the slash-delimited category for questions built from
	// flags, e.g. "$course$/Unit1".
	Category string `yaml:"category" json:"category"`

	DefaultGrade       string `yaml:"default_grade" json:"default_grade"`
	QuestionTextFormat string `yaml:"question_text_format" json:"question_text_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output:             "tmp.xml",
		Indent:             4,
		LogLevel:           "info",
		LogFormat:          "text",
		Category:           "$course$",
		DefaultGrade:       "1",
		QuestionTextFormat: "moodle_auto_format",
	}
}

// Load builds a Config. When path is empty the file named by
// MOODLEXML_CONFIG is used, then DefaultPath; a missing default file is
// not an error. Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
			path, explicit = p, true
		} else if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := parseInto(&cfg, data); err != nil {
				return Config{}, fmt.Errorf("%s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath resolves the config file location:
// 1. $XDG_CONFIG_HOME/moodlexml/config.yaml
// 2. ~/.config/moodlexml/config.yaml
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "moodlexml", "config.yaml"), nil
}

// parseInto decodes a single YAML document over cfg, rejecting unknown
// keys and values the schema does not allow.
func parseInto(cfg *Config, data []byte) error {
	var raw map[string]any
	if err := decodeSingle(data, &raw); err != nil {
		return err
	}
	if err := validateDocument(raw); err != nil {
		return err
	}
	return decodeSingle(data, cfg)
}

func decodeSingle(data []byte, out any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"OUTPUT", &cfg.Output},
		{"LOG_LEVEL", &cfg.LogLevel},
		{"LOG_FORMAT", &cfg.LogFormat},
		{"CATEGORY", &cfg.Category},
		{"DEFAULT_GRADE", &cfg.DefaultGrade},
		{"QUESTION_TEXT_FORMAT", &cfg.QuestionTextFormat},
	}
	for _, s := range strs {
		if v := os.Getenv(EnvPrefix + s.key); v != "" {
			*s.dst = v
		}
	}
	if v := os.Getenv(EnvPrefix + "INDENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sINDENT: %w", EnvPrefix, err)
		}
		cfg.Indent = n
	}
	return nil
}
