package cmd

import (
	"fmt"
	"log/slog"

	"github.com/f3rmion/pmpy/internal/pinyin"
	"github.com/f3rmion/pmpy/internal/store"
	"github.com/spf13/cobra"
)

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the chord of every Pinyin syllable to SQLite",
		Long: `Convert every standard Pinyin syllable to its chord and store the
result in a SQLite table, together with the conversion back to Pinyin and
whether it matches.

Example:
  pmpy export --db chords.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := a.v.GetString("database")

			st, err := store.Open(ctx, path)
			if err != nil {
				return err
			}
			defer st.Close()

			var chords []store.Chord
			exact := 0
			for _, py := range pinyin.Syllables() {
				c, err := store.Build(py)
				if err != nil {
					slog.Warn("skipping syllable", "pinyin", py, "err", err)
					continue
				}
				if c.Exact {
					exact++
				}
				chords = append(chords, c)
			}

			if err := st.Put(ctx, chords...); err != nil {
				return fmt.Errorf("exporting chords: %w", err)
			}

			slog.Info("exported chords", "path", path, "chords", len(chords), "exact", exact)
			fmt.Fprintf(cmd.OutOrStdout(), "%d chords written to %s (%d round-trip exactly)\n", len(chords), path, exact)
			return nil
		},
	}
	cmd.Flags().String("db", "", "database path (default from config)")
	a.v.BindPFlag("database", cmd.Flags().Lookup("db"))
	return cmd
}
