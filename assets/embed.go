// apps/solver/assets/embed.go
//
// Embedded data shipped with the binary:
//   - words.txt:    default candidate list
//   - fallback.txt: tiny last-resort list
//   - sql/*.sql:    SQLite migrations for the word catalog

package assets

import (
	"embed"
	"io/fs"
)

// Names of the embedded word lists, for Open.
const (
	DefaultList  = "words.txt"
	FallbackList = "fallback.txt"
)

//go:embed words.txt fallback.txt sql/*.sql
var FS embed.FS

// Open opens one embedded file by name.
func Open(name string) (fs.File, error) {
	return FS.Open(name)
}

// Migrations exposes the sql/ directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// sql/ is embedded at compile time; Sub only fails on a bad path.
		panic(err)
	}
	return sub
}
