package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host env cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SOLVER_CONFIG", "PORT", "LOG_LEVEL", "WORDS_FILE", "WORDS_DB", "WORDS_LIST",
		"WORD_LENGTH", "TOP_K", "JWT_SECRET", "SESSION_TTL", "CLIENT_ORIGIN",
	} {
		t.Setenv(k, "")
	}
	// Run from an empty dir so no solver.toml or .env is picked up.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, path, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "solver.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = "9000"
session_ttl = "30m"

[solver]
top_k = 20
display = 3

[words]
file = "/tmp/words.txt"
`), 0o644))

	t.Setenv("TOP_K", "7")

	cfg, used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL.Duration)
	assert.Equal(t, "/tmp/words.txt", cfg.Words.File)
	assert.Equal(t, 7, cfg.Solver.TopK, "env wins over file")
	assert.Equal(t, 3, cfg.Solver.Display)
	assert.Equal(t, 5, cfg.Words.Length, "unset keys keep defaults")
}

func TestLoad_ConfigFromEnvPath(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "alt.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))
	t.Setenv("SOLVER_CONFIG", path)

	cfg, used, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("WORDS_LIST=extended\n"), 0o644))
	// godotenv never overrides a variable that is set, even to "".
	require.NoError(t, os.Unsetenv("WORDS_LIST"))
	t.Cleanup(func() { _ = os.Unsetenv("WORDS_LIST") })

	cfg, _, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "extended", cfg.Words.List)
}

func TestLoad_BadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORD_LENGTH", "five")
	_, _, err := Load("")
	assert.Error(t, err)

	t.Setenv("WORD_LENGTH", "0")
	_, _, err = Load("")
	assert.ErrorContains(t, err, "words.length")
}

func TestValidate_DisplayClampedToTopK(t *testing.T) {
	cfg := Default()
	cfg.Solver.Display = 50
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cfg.Solver.TopK, cfg.Solver.Display)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
