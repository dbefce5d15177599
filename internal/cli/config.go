package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/showorder/internal/config"
	"github.com/danieljhkim/showorder/internal/fsops"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage default ordering settings",
	Long:  `Manage the settings file holding the default ordering options.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.DefaultPaths()
		if err != nil {
			return fmt.Errorf("failed to get config paths: %w", err)
		}
		if err := paths.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}

		fs := fsops.NewRealFS()
		path := settingsPath(paths)
		exists, err := fs.Exists(path)
		if err != nil {
			return err
		}
		if exists && !configInitForce {
			newReport(cmd).warn("%s already exists; use --force to overwrite it", path)
			return nil
		}

		if err := config.DefaultSettings().Save(fs, path); err != nil {
			return err
		}
		newReport(cmd).success("Wrote default settings to %s", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := newEngine()
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), eng.Settings())
		}
		data, err := yaml.Marshal(eng.Settings())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing settings file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
