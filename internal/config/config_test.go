package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no user config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "sample:", cfg.Bank)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("CHAPTERQUIZ_BANK", "/tmp/q.csv")
	t.Setenv("CHAPTERQUIZ_SEED", "42")
	t.Setenv("CHAPTERQUIZ_LOG_LEVEL", "debug")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/q.csv", cfg.Bank)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	p := filepath.Join(dir, "custom.yaml")
	content := "bank: questions.csv\ndelimiter: \";\"\nfetch_timeout: 3s\nlog:\n  level: warn\n  file: quiz.log\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	cfg, err := Load(New(), p)
	require.NoError(t, err)

	assert.Equal(t, "questions.csv", cfg.Bank)
	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "quiz.log", cfg.Log.File)

	r, err := cfg.DelimiterRune()
	require.NoError(t, err)
	assert.Equal(t, ';', r)
}

func TestLoad_DiscoveredConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chapterquiz.yaml"), []byte("bank: found.csv\n"), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "found.csv", cfg.Bank)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(New(), filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadDelimiter(t *testing.T) {
	isolate(t)
	t.Setenv("CHAPTERQUIZ_DELIMITER", ";;")

	_, err := Load(New(), "")
	assert.ErrorIs(t, err, ErrInvalidDelimiter)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CHAPTERQUIZ_BANK", "from-env.csv")

	v := New()
	v.Set("bank", "from-flag.csv")

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "from-flag.csv", cfg.Bank)
}
