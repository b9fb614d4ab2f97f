// apps/solver/internal/words/words.go
//
// Provides the candidate word list for solving sessions.
//
// Responsibilities:
//   - Load the list from a SQLite catalog, a plain file, or embedded defaults.
//   - Normalize words (trim, lowercase, a–z only, fixed length, deduplicated).
//   - Expose lookups and stats for the HTTP layer and CLI.
//
// Source priority (Load):
//   1. Options.DBPath + Options.List  → words of that catalog list.
//   2. Options.File                   → one word per line.
//   3. Embedded words.txt.
//   4. Embedded fallback.txt (last resort, five-letter words only).
//
// A configured source that fails is an error. The embedded lists only fall
// through to each other at DefaultLength; any other length the bundled list
// cannot serve is ErrEmpty.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/db"
)

// DefaultLength is the classic Wordle word length.
const DefaultLength = 5

// Source names reported by List.Source.
const (
	SourceDB       = "db"
	SourceFile     = "file"
	SourceEmbedded = "embedded"
	SourceFallback = "fallback"
)

// ErrEmpty is returned when a configured source yields no usable words.
var ErrEmpty = errors.New("words: list is empty")

// Embedded list names; tests swap them to exercise the fallback.
var (
	embeddedList = assets.DefaultList
	fallbackList = assets.FallbackList
)

// Options select where Load reads words from.
type Options struct {
	DBPath string // SQLite catalog path (optional)
	List   string // catalog list name, used with DBPath
	File   string // word file path (optional)
	Length int    // word length; DefaultLength when <= 0
}

// List is an immutable, normalized word list.
type List struct {
	words  []string
	set    map[string]struct{}
	length int
	source string
}

// Load resolves Options into a List.
func Load(ctx context.Context, opts Options) (*List, error) {
	if opts.Length <= 0 {
		opts.Length = DefaultLength
	}

	switch {
	case opts.DBPath != "":
		raw, err := fromDB(ctx, opts.DBPath, opts.List)
		if err != nil {
			return nil, err
		}
		return build(raw, opts.Length, SourceDB)

	case opts.File != "":
		raw, err := ReadFile(opts.File)
		if err != nil {
			return nil, err
		}
		return build(raw, opts.Length, SourceFile)
	}

	raw, err := ReadEmbedded(embeddedList)
	if err == nil {
		l, berr := build(raw, opts.Length, SourceEmbedded)
		if berr == nil {
			return l, nil
		}
		err = berr
	}
	if opts.Length != DefaultLength {
		return nil, fmt.Errorf("words: no embedded list for length %d: %w", opts.Length, err)
	}
	log.Warn().Err(err).Msg("embedded word list unusable, using fallback")

	raw, err = ReadEmbedded(fallbackList)
	if err != nil {
		return nil, fmt.Errorf("words: fallback list: %w", err)
	}
	return build(raw, DefaultLength, SourceFallback)
}

// New builds a List directly from words (normalized like any other source).
func New(raw []string, length int) (*List, error) {
	if length <= 0 {
		length = DefaultLength
	}
	return build(raw, length, "memory")
}

func build(raw []string, length int, source string) (*List, error) {
	ws := Normalize(raw, length)
	if len(ws) == 0 {
		return nil, fmt.Errorf("%w (source=%s, length=%d)", ErrEmpty, source, length)
	}
	dropped := len(raw) - len(ws)
	log.Debug().Str("source", source).Int("words", len(ws)).Int("dropped", dropped).Msg("word list loaded")
	return &List{words: ws, set: toSet(ws), length: length, source: source}, nil
}

func fromDB(ctx context.Context, path, list string) ([]string, error) {
	if list == "" {
		list = "default"
	}
	d, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return db.ListWords(ctx, d, list)
}

// ReadFile loads raw lines from a word file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// ReadEmbedded loads raw lines from one of the lists bundled in assets.
func ReadEmbedded(name string) ([]string, error) {
	f, err := assets.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// ReadLines splits r into trimmed lines, skipping blanks and # comments.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Normalize lowercases and trims every entry, keeps only a–z words of the
// given length, and drops duplicates (first occurrence wins).
func Normalize(raw []string, length int) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, line := range raw {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Words returns a copy of the list in load order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Contains reports whether w (any case) is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// Length returns the word length.
func (l *List) Length() int { return l.length }

// Source names where the list came from.
func (l *List) Source() string { return l.source }
