package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), false, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRequiredMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), true, "")
	assert.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
input_dir: /tmp/aoc
log_level: debug
timeout: 30s
`)
	cfg, err := Load(path, true, "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/aoc", cfg.InputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "text", cfg.LogFormat, "unset keys keep their default")
}

func TestLoadBadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "timeout: [")
	_, err := Load(path, true, "")
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "input_dir: from-file\n")
	t.Setenv("AOC_INPUT_DIR", "from-env")
	t.Setenv("AOC_TIMEOUT", "5s")
	cfg, err := Load(path, true, "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.InputDir)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestBadTimeoutEnv(t *testing.T) {
	t.Setenv("AOC_TIMEOUT", "soon")
	_, err := Load("", false, "")
	assert.Error(t, err)
}

func TestDotEnv(t *testing.T) {
	dotenv := writeFile(t, ".env", "AOC_LOG_FORMAT=json\n")
	t.Setenv("AOC_LOG_FORMAT", "")
	os.Unsetenv("AOC_LOG_FORMAT")
	cfg, err := Load("", false, dotenv)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)

	_, err = Load("", false, filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err, "a missing .env is ignored")
}

func TestSessionToken(t *testing.T) {
	cfg := Default()
	cfg.SessionFile = writeFile(t, "aoc.session", "abc123\n")
	tok, err := cfg.SessionToken()
	require.NoError(t, err)
	assert.Equal(t, "abc123", tok)

	cfg.Session = " direct "
	tok, err = cfg.SessionToken()
	require.NoError(t, err)
	assert.Equal(t, "direct", tok)

	cfg = Default()
	cfg.SessionFile = filepath.Join(t.TempDir(), "missing")
	tok, err = cfg.SessionToken()
	require.NoError(t, err)
	assert.Empty(t, tok)
}
