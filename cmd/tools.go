package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/andreixhz/tools-cli/pkg/notify"
	"github.com/andreixhz/tools-cli/pkg/progress"
	"github.com/andreixhz/tools-cli/pkg/tools"
	"github.com/hashicorp/go-multierror"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newToolsCmd(a *app) *cobra.Command {
	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "Manage development tools",
		Long:  `List, check and install the command-line tools used to work with clusters.`,
	}

	toolsCmd.AddCommand(newToolsListCmd(a))
	toolsCmd.AddCommand(newToolsInstallCmd(a))
	toolsCmd.AddCommand(newToolsCheckCmd(a))

	return toolsCmd
}

func newToolsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported tools",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			manager := a.toolManager(cmd.OutOrStdout())

			var rows []table.Row
			for _, tool := range manager.List() {
				installed := "✗"
				if manager.CheckInstalled(cmd.Context(), tool.Name) {
					installed = "✓"
				}

				rows = append(rows, table.Row{tool.Name, tool.Description, installed})
			}

			renderTable(cmd.OutOrStdout(), "Supported Tools", table.Row{"Tool", "Description", "Installed"}, rows)
		},
	}
}

func newToolsInstallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "install <tool>...",
		Short: "Install one or more tools",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			manager := a.toolManager(out)

			notify.Infof(out, "Installing tools: %s", strings.Join(args, ", "))

			var bar *progress.Progress
			if f, ok := cmd.ErrOrStderr().(*os.File); ok {
				bar = progress.ForTerminal(f, len(args))
			}

			manager.OnInstall = func(name string, _ error) { bar.Update(name) }
			results := manager.InstallMultiple(cmd.Context(), args)
			bar.Done()

			var result *multierror.Error
			for _, name := range args {
				if err := results[name]; err != nil {
					notify.Errorf(out, "Failed to install %s", name)
					result = multierror.Append(result, err)

					continue
				}

				notify.Successf(out, "%s installed successfully", name)
			}

			if result != nil {
				result.ErrorFormat = installErrorFormat
			}

			return result.ErrorOrNil()
		},
	}
}

func installErrorFormat(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Sprintf("%d tool(s) not installed: %s", len(errs), strings.Join(msgs, "; "))
}

func newToolsCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <tool>",
		Short: "Check whether a tool is installed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			manager := a.toolManager(cmd.OutOrStdout())

			if _, ok := manager.Lookup(name); !ok {
				return fmt.Errorf("%w: '%s'", tools.ErrToolNotFound, name)
			}

			if !manager.CheckInstalled(cmd.Context(), name) {
				return errors.New(name + " is not installed")
			}

			notify.Successf(cmd.OutOrStdout(), "%s is installed", name)

			return nil
		},
	}
}
