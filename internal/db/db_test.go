package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/assets"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "data", "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, Migrate(context.Background(), d, assets.Migrations()))
	return d
}

func TestMigrate_Idempotent(t *testing.T) {
	d := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), d, assets.Migrations()))

	var n int
	require.NoError(t, d.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestImportAndListWords_KeepsOrder(t *testing.T) {
	ctx := context.Background()
	d := openTestDB(t)

	added, err := ImportWords(ctx, d, "main", []string{"slate", "crane", "trace"})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	// Duplicates are ignored, new words are appended.
	added, err = ImportWords(ctx, d, "main", []string{"crane", "shine"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	got, err := ListWords(ctx, d, "main")
	require.NoError(t, err)
	assert.Equal(t, []string{"slate", "crane", "trace", "shine"}, got)

	lists, err := Lists(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, []ListInfo{{Name: "main", Length: 5, Words: 4}}, lists)
}

func TestListWords_UnknownList(t *testing.T) {
	d := openTestDB(t)
	_, err := ListWords(context.Background(), d, "nope")
	assert.ErrorIs(t, err, ErrUnknownList)
}

func TestImportWords_RequiresName(t *testing.T) {
	d := openTestDB(t)
	_, err := ImportWords(context.Background(), d, "  ", []string{"slate"})
	assert.Error(t, err)
}
