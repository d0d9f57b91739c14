package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/pmpy/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize pmpy configuration",
		Long: `Write a default config.yaml to your config directory.

Settings in the file can be overridden by flags or PMPY_* environment
variables, e.g. PMPY_FORMAT=json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			dir := a.configDir()
			path := filepath.Join(dir, config.FileName)

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "overwrite existing configuration")
	return cmd
}
