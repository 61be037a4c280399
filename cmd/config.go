package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/andreixhz/tools-cli/pkg/config"
	"github.com/andreixhz/tools-cli/pkg/notify"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	configCmd.AddCommand(newConfigInitCmd(a))
	configCmd.AddCommand(newConfigShowCmd(a))
	configCmd.AddCommand(newConfigValidateCmd(a))

	return configCmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var (
		output string
		force  bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := output
			if path == "" {
				path = a.configPath
			}

			path = config.NewHandler(path).Path()

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %w", config.ErrConfiguration, err)
			}

			if err := config.CreateDefaultConfig(path); err != nil {
				return err
			}

			notify.Successf(cmd.OutOrStdout(), "Configuration file created: %s", path)

			return nil
		},
	}

	initCmd.Flags().StringVar(&output, "output", "", "Output file path (defaults to --config)")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return initCmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.configHandler().Document()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(doc)

			return err
		},
	}
}

func newConfigValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.configHandler().Load(); err != nil {
				return fmt.Errorf("configuration is invalid: %w", err)
			}

			notify.Successf(cmd.OutOrStdout(), "Configuration is valid")

			return nil
		},
	}
}
