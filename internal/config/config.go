// Package config resolves the settings of the aoc command from a YAML file,
// an optional .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aocstars/aoc"
)

// Config holds the settings for the aoc command.
type Config struct {
	InputDir    string        `yaml:"input_dir"`    // cache of <year>/<day>.input files
	Session     string        `yaml:"session"`      // adventofcode.com session token
	SessionFile string        `yaml:"session_file"` // read when Session is empty
	BaseURL     string        `yaml:"base_url"`
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"`
	Timeout     time.Duration `yaml:"timeout"` // per star, 0 for none
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		InputDir:    "inputs",
		SessionFile: filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
		BaseURL:     aoc.DefaultBaseURL,
		LogLevel:    "info",
		LogFormat:   "text",
		Timeout:     time.Minute,
	}
}

// DefaultPath returns the config file read when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "aoc", "config.yaml")
}

// Load returns Default overlaid by the YAML file at path, then by the
// environment after loading dotenv into it. A missing file at path is an
// error only if required is set; a missing dotenv file is ignored.
// Variables already in the environment win over dotenv.
func Load(path string, required bool, dotenv string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", dotenv, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	for name, dst := range map[string]*string{
		"AOC_INPUT_DIR":    &c.InputDir,
		"AOC_SESSION":      &c.Session,
		"AOC_SESSION_FILE": &c.SessionFile,
		"AOC_BASE_URL":     &c.BaseURL,
		"AOC_LOG_LEVEL":    &c.LogLevel,
		"AOC_LOG_FORMAT":   &c.LogFormat,
	} {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}
	if v, ok := os.LookupEnv("AOC_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("AOC_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

// SessionToken returns Session, or the trimmed contents of SessionFile. A
// missing session file means no session.
func (c Config) SessionToken() (string, error) {
	if c.Session != "" {
		return strings.TrimSpace(c.Session), nil
	}
	if c.SessionFile == "" {
		return "", nil
	}
	b, err := os.ReadFile(c.SessionFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
