// apps/solver/cmd_import.go
//
// `import` loads a word file (or the bundled list) into the SQLite catalog,
// applying migrations first, then prints a summary of every catalog list.

package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/db"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func newImportCmd(rf *rootFlags) *cobra.Command {
	var (
		file   string
		dbPath string
		list   string
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a word file (or the bundled list) into the SQLite catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = cfg.Words.DB
			}
			if dbPath == "" {
				return errors.New("no database: pass --db or set WORDS_DB")
			}
			if list == "" {
				list = cfg.Words.List
			}

			var raw []string
			if file != "" {
				raw, err = words.ReadFile(file)
			} else {
				raw, err = words.ReadEmbedded(assets.DefaultList)
			}
			if err != nil {
				return err
			}
			clean := words.Normalize(raw, cfg.Words.Length)
			if len(clean) == 0 {
				return fmt.Errorf("%w: nothing to import", words.ErrEmpty)
			}

			ctx := cmd.Context()
			d, err := db.Open(dbPath)
			if err != nil {
				return err
			}
			defer d.Close()
			if err := db.Migrate(ctx, d, assets.Migrations()); err != nil {
				return err
			}
			added, err := db.ImportWords(ctx, d, list, clean)
			if err != nil {
				return err
			}
			log.Info().Str("db", dbPath).Str("list", list).Int("read", len(raw)).Int("added", added).Msg("import done")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "imported %d new words into %q\n", added, list)

			lists, err := db.Lists(ctx, d)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Catalog:")
			for _, li := range lists {
				fmt.Fprintf(out, "  %-12s %d letters, %d words\n", li.Name, li.Length, li.Words)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "word file, one per line (default: bundled list)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite catalog path (default WORDS_DB)")
	cmd.Flags().StringVar(&list, "list", "", "catalog list name (default WORDS_LIST)")
	return cmd
}
