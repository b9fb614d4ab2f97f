package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// withWordFile points WORDS_FILE at a small list and isolates the env.
func withWordFile(t *testing.T, ws ...string) {
	t.Helper()
	for _, k := range []string{"SOLVER_CONFIG", "WORDS_DB", "WORD_LENGTH", "TOP_K", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	path := filepath.Join(t.TempDir(), "words.txt")
	var buf bytes.Buffer
	for _, w := range ws {
		buf.WriteString(w + "\n")
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	t.Setenv("WORDS_FILE", path)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSuggest_NoGuessesPrintsStarter(t *testing.T) {
	withWordFile(t, "slate", "crane", "trace")
	out, err := run(t, "suggest", "--top", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Starter suggestion: slate")
	assert.Contains(t, out, "Words left: 3")
	assert.Contains(t, out, " 1. trace (12)")
	assert.Contains(t, out, " 2. crane (11)")
	assert.Contains(t, out, " 3. slate (10)")
}

func TestSuggest_Solves(t *testing.T) {
	withWordFile(t, "slate", "shine", "shore", "crane")
	out, err := run(t, "suggest", "-g", "slate=GXXXG", "-g", "shore=GGXXG")
	require.NoError(t, err)
	assert.Contains(t, out, "slate GXXXG: 4 -> 2 words")
	assert.Contains(t, out, "The word is: SHINE")
}

func TestSuggest_GuessesAfterSolveAreIgnored(t *testing.T) {
	withWordFile(t, "slate", "shine", "shore", "crane")
	out, err := run(t, "suggest", "-g", "slate=GXXXG", "-g", "shore=GGXXG", "-g", "shine=XXXXX")
	require.NoError(t, err)
	assert.NotContains(t, out, "shine XXXXX")
	assert.Contains(t, out, "The word is: SHINE")
}

func TestSuggest_Contradiction(t *testing.T) {
	withWordFile(t, "slate", "crane")
	_, err := run(t, "suggest", "-g", "zzzzz=GGGGG")
	assert.ErrorIs(t, err, solver.ErrEmptyPool)
}

func TestSuggest_BadInput(t *testing.T) {
	withWordFile(t, "slate", "crane")
	_, err := run(t, "suggest", "-g", "slate")
	assert.Error(t, err)

	_, err = run(t, "suggest", "-g", "slate=GXQ")
	assert.ErrorIs(t, err, solver.ErrInvalidInput)
}

func TestSimulate(t *testing.T) {
	withWordFile(t, "slate", "sauce", "slice", "shale", "saute", "share", "sooty", "shine", "suite", "crane")
	out, err := run(t, "simulate", "--secret", "sooty", "--turns", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved in")
}

func TestImport_ThenLoadFromDB(t *testing.T) {
	withWordFile(t, "slate", "crane")
	src := os.Getenv("WORDS_FILE")
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	out, err := run(t, "import", "--db", dbPath, "--list", "mini", "--file", src)
	require.NoError(t, err)
	assert.Contains(t, out, `imported 2 new words into "mini"`)
	assert.Contains(t, out, "Catalog:")
	assert.Regexp(t, `mini\s+5 letters, 2 words`, out)

	out, err = run(t, "import", "--db", dbPath, "--list", "mini", "--file", src)
	require.NoError(t, err)
	assert.Contains(t, out, `imported 0 new words into "mini"`)
	assert.Regexp(t, `mini\s+5 letters, 2 words`, out)

	t.Setenv("WORDS_DB", dbPath)
	t.Setenv("WORDS_LIST", "mini")
	out, err = run(t, "suggest")
	require.NoError(t, err)
	assert.Contains(t, out, "Words left: 2")
}
