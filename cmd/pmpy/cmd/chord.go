package cmd

import (
	"fmt"

	"github.com/f3rmion/pmpy/internal/config"
	"github.com/f3rmion/pmpy/internal/phonetic"
	"github.com/f3rmion/pmpy/internal/romanize"
	"github.com/f3rmion/pmpy/internal/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (a *app) chordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chord <key>...",
		Short: "Convert a set of pressed keys to Pinyin",
		Long: `Treat the given keys as one chord: order them by the layout's key
order, build the PM token from their plain values and convert it to Pinyin.

Keys are letters or the names space, comma, period, semicolon and slash.

Example:
  pmpy chord x c h k l   # zfuang' → zhuang`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := lo.Map(args, func(s string, _ int) phonetic.Key { return phonetic.Key(s) })
			for _, k := range keys {
				if _, ok := phonetic.Lookup(k); !ok {
					return fmt.Errorf("unknown key %q", k)
				}
			}

			token := phonetic.Token(keys)
			out, steps := romanize.TracePMToPinyin(token)
			logSteps(token, steps)

			if a.cfg.Format == config.FormatText {
				fmt.Fprintln(cmd.OutOrStdout(), tui.ChordLine(orderedKeys(keys), a.cfg.Color))
			}
			return a.emit(cmd, []result{{
				Input:  token,
				Output: out,
				Keys:   keyNames(orderedKeys(keys)),
				Chord:  token,
				Steps:  steps,
			}})
		},
	}
}

// orderedKeys returns the distinct keys in canonical order, keys outside the
// order last.
func orderedKeys(keys []phonetic.Key) []phonetic.Key {
	set := lo.Uniq(keys)
	ordered := lo.Filter(phonetic.CanonicalOrder(), func(k phonetic.Key, _ int) bool {
		return lo.Contains(set, k)
	})
	rest := lo.Without(set, ordered...)
	return append(ordered, rest...)
}
