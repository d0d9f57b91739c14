package cmd

import (
	"github.com/f3rmion/pmpy/internal/phonetic"
	"github.com/f3rmion/pmpy/internal/romanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (a *app) pyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "py <pm>...",
		Short: "Convert PM tokens to Pinyin",
		Long: `Convert each PM token to its Pinyin spelling.

Examples:
  pmpy py zf          # zhi
  pmpy py "gyang'"    # jiang
  pmpy py b. --trace  # beng, with the rules that fired`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			for _, in := range args {
				out, steps := romanize.TracePMToPinyin(in)
				logSteps(in, steps)
				results = append(results, result{Input: in, Output: out, Steps: steps})
			}
			return a.emit(cmd, results)
		},
	}
}

func (a *app) pmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pm <pinyin>...",
		Short: "Convert Pinyin syllables to PM spellings and keys",
		Long: `Convert each toneless Pinyin syllable to its PM spelling, the keys to
press and the chord token those keys produce.

Examples:
  pmpy pm zhi      # z-f  [x c]
  pmpy pm zhuang   # z-f-ua-n-g'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			for _, in := range args {
				results = append(results, pinyinResult(in))
			}
			return a.emit(cmd, results)
		},
	}
}

// pinyinResult converts one syllable and resolves its keys.
func pinyinResult(py string) result {
	out, steps := romanize.TracePinyinToPM(py)
	logSteps(py, steps)

	r := result{Input: py, Output: out, Steps: steps}
	keys, err := phonetic.Resolve(out)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Keys = keyNames(keys)
	r.Chord = phonetic.Token(keys)
	return r
}

func keyNames(keys []phonetic.Key) []string {
	return lo.Map(keys, func(k phonetic.Key, _ int) string { return string(k) })
}
