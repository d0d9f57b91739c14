package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/f3rmion/pmpy/internal/config"
	"github.com/f3rmion/pmpy/internal/phonetic"
	"github.com/f3rmion/pmpy/internal/tui"
	"github.com/spf13/cobra"
)

// keyRow is the JSON form of one table entry.
type keyRow struct {
	Key       string `json:"key"`
	Group     string `json:"group"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
	HTML      string `json:"html"`
	Plain     string `json:"plain,omitempty"`
	Position  int    `json:"position"`
}

func (a *app) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key layout",
		Long: `List every key with its group, display fragment and plain value.
Keys without a plain value never contribute to a PM token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Format != config.FormatJSON {
				fmt.Fprint(cmd.OutOrStdout(), tui.KeyTable(a.cfg.Color))
				return nil
			}

			position := map[phonetic.Key]int{}
			for i, k := range phonetic.CanonicalOrder() {
				position[k] = i + 1
			}

			var rows []keyRow
			for _, g := range phonetic.Groups() {
				for _, e := range phonetic.Keys(g) {
					sec, _ := e.Display.Secondary()
					rows = append(rows, keyRow{
						Key:       string(e.Key),
						Group:     string(e.Group),
						Primary:   e.Display.Primary,
						Secondary: sec,
						HTML:      e.Display.HTML(),
						Plain:     e.Plain,
						Position:  position[e.Key],
					})
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		},
	}
}
