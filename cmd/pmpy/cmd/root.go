// Package cmd contains all CLI commands for pmpy.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/pmpy/internal/config"
	"github.com/f3rmion/pmpy/internal/logger"
	"github.com/f3rmion/pmpy/internal/tui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries settings shared by every command.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with its own settings.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "pmpy",
		Short: "Convert between PM chord spellings and Pinyin",
		Long: `pmpy converts single syllables between the PM chord keyboard spelling
and standard toneless Pinyin.

A PM token is the plain values of the keys of one chord, concatenated in the
layout's fixed key order. Converting Pinyin to PM yields the same values
joined by "-", one per key to press.

Running 'pmpy' without arguments launches the interactive converter.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config directory (default is $HOME/.config/pmpy)")
	flags.Bool("verbose", false, "verbose output")
	flags.String("format", "", "output format: text or json")
	flags.Bool("trace", false, "show the rewrite rules that fired")
	flags.Bool("copy", false, "copy the result to the clipboard")

	for _, name := range []string{"config", "verbose", "format", "trace", "copy"} {
		a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		a.pyCmd(),
		a.pmCmd(),
		a.chordCmd(),
		a.keysCmd(),
		a.hanziCmd(),
		a.exportCmd(),
		a.initCmd(),
		a.interactiveCmd(),
	)
	return root
}

// setup reads .env, the config file and PMPY_* variables, then installs the
// logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	a.v.SetEnvPrefix("PMPY")
	a.v.AutomaticEnv()

	dir := a.v.GetString("config")
	if dir == "" {
		d, err := config.GetConfigDir()
		if err != nil {
			return fmt.Errorf("finding config directory: %w", err)
		}
		dir = d
	}
	a.v.Set("config_dir", dir)

	cfg, err := config.LoadDir(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.v.SetDefault("format", cfg.Format)
	a.v.SetDefault("trace", cfg.Trace)
	a.v.SetDefault("database", cfg.Database)
	a.v.SetDefault("color", cfg.Color)

	cfg.Format = a.v.GetString("format")
	cfg.Trace = a.v.GetBool("trace")
	cfg.Database = a.v.GetString("database")
	cfg.Color = a.v.GetBool("color")
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger.Init(cmd.ErrOrStderr(), level, os.Getenv("LOG_FORMAT"))
	return nil
}

func (a *app) configDir() string {
	return a.v.GetString("config_dir")
}

func (a *app) interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i", "ui"},
		Short:   "Launch the interactive converter",
		Long: `Launch a terminal UI that converts as you type.

Controls:
  Tab     Switch direction
  Ctrl+T  Toggle rule trace
  Enter   Commit to history
  Esc     Quit`,
		Args: cobra.NoArgs,
		RunE: a.runInteractive,
	}
}

func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewApp(a.cfg.Trace), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
