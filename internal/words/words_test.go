package words

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/db"
)

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" Slate", "CRANE", "slate", "toolong", "ab1de", "", "trace "}, 5)
	assert.Equal(t, []string{"slate", "crane", "trace"}, got)
}

func TestReadLines_SkipsCommentsAndBlanks(t *testing.T) {
	got, err := ReadLines(strings.NewReader("# header\n\nslate\n  crane  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"slate", "crane"}, got)
}

func TestLoad_Embedded(t *testing.T) {
	l, err := Load(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, l.Source())
	assert.Equal(t, DefaultLength, l.Length())
	assert.Greater(t, l.Len(), 100)
	assert.True(t, l.Contains("SLATE"))
}

func TestLoad_UnservedLengthIsAnError(t *testing.T) {
	for _, n := range []int{4, 6, 9} {
		_, err := Load(context.Background(), Options{Length: n})
		assert.ErrorIs(t, err, ErrEmpty, "length %d", n)
	}
}

func TestLoad_FallbackWhenEmbeddedListUnusable(t *testing.T) {
	orig := embeddedList
	t.Cleanup(func() { embeddedList = orig })
	embeddedList = "missing.txt"

	l, err := Load(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, l.Source())
	assert.Equal(t, DefaultLength, l.Length())

	want, err := ReadEmbedded(assets.FallbackList)
	require.NoError(t, err)
	assert.Equal(t, want, l.Words())

	_, err = Load(context.Background(), Options{Length: 6})
	assert.Error(t, err, "the fallback never serves other lengths")
}

func TestReadEmbedded(t *testing.T) {
	ws, err := ReadEmbedded(assets.DefaultList)
	require.NoError(t, err)
	assert.Contains(t, ws, "slate")
	for _, w := range ws {
		assert.False(t, strings.HasPrefix(w, "#"))
	}

	_, err = ReadEmbedded("nope.txt")
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Slate\ncrane\nnope\n"), 0o644))

	l, err := Load(context.Background(), Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, SourceFile, l.Source())
	assert.Equal(t, []string{"slate", "crane"}, l.Words())
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(context.Background(), Options{File: filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestLoad_EmptyFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# nothing\n"), 0o644))

	_, err := Load(context.Background(), Options{File: path})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad_DB(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "words.db")
	d, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, d, assets.Migrations()))
	_, err = db.ImportWords(ctx, d, "mini", []string{"trace", "crane"})
	require.NoError(t, err)
	require.NoError(t, d.Close())

	l, err := Load(ctx, Options{DBPath: path, List: "mini"})
	require.NoError(t, err)
	assert.Equal(t, SourceDB, l.Source())
	assert.Equal(t, []string{"trace", "crane"}, l.Words())
}

func TestList_WordsIsACopy(t *testing.T) {
	l, err := New([]string{"slate", "crane"}, 5)
	require.NoError(t, err)
	w := l.Words()
	w[0] = "xxxxx"
	assert.Equal(t, "slate", l.Words()[0])
}
