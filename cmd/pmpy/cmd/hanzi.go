package cmd

import (
	"github.com/f3rmion/pmpy/internal/pinyin"
	"github.com/spf13/cobra"
)

func (a *app) hanziCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hanzi <text>",
		Short: "Show the chords for each character of Chinese text",
		Long: `Look up every reading of each Han character and convert it to a PM
spelling. Characters with several readings produce one line per reading.

Example:
  pmpy hanzi 中国`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := pinyin.NewParser()

			var results []result
			for _, r := range parser.ParseText(args[0]) {
				if len(r.Syllables) == 0 {
					results = append(results, result{Input: r.Char, Error: "no reading"})
					continue
				}
				for _, py := range r.Syllables {
					res := pinyinResult(py)
					res.Input = r.Char + " " + py
					results = append(results, res)
				}
			}
			return a.emit(cmd, results)
		},
	}
}
