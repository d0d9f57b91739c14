package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/f3rmion/pmpy/internal/config"
	"github.com/f3rmion/pmpy/internal/romanize"
	"github.com/f3rmion/pmpy/internal/tui"
	"github.com/spf13/cobra"
)

// result is one conversion as printed by the convert commands.
type result struct {
	Input  string          `json:"input"`
	Output string          `json:"output"`
	Keys   []string        `json:"keys,omitempty"`
	Chord  string          `json:"chord,omitempty"`
	Steps  []romanize.Step `json:"steps,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func logSteps(in string, steps []romanize.Step) {
	for _, s := range steps {
		slog.Debug("rule", "input", in, "rule", s.Rule, "before", s.Before, "after", s.After)
	}
}

// emit prints results in the configured format and copies the outputs to
// the clipboard when asked.
func (a *app) emit(cmd *cobra.Command, results []result) error {
	w := cmd.OutOrStdout()
	if !a.cfg.Trace {
		for i := range results {
			results[i].Steps = nil
		}
	}

	if a.cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
	} else {
		for _, r := range results {
			writeText(w, r)
		}
	}

	if a.v.GetBool("copy") {
		outs := make([]string, len(results))
		for i, r := range results {
			outs[i] = r.Output
		}
		if err := clipboard.WriteAll(strings.Join(outs, " ")); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		slog.Info("copied to clipboard", "results", len(outs))
	}
	return nil
}

func writeText(w io.Writer, r result) {
	fmt.Fprintf(w, "%s\t%s", r.Input, r.Output)
	if len(r.Keys) > 0 {
		fmt.Fprintf(w, "\t[%s]", strings.Join(r.Keys, " "))
	}
	if r.Error != "" {
		fmt.Fprintf(w, "\t(%s)", r.Error)
	}
	fmt.Fprintln(w)
	if len(r.Steps) > 0 {
		fmt.Fprint(w, tui.Steps(r.Steps))
	}
}
