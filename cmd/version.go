package cmd

import (
	"fmt"

	"github.com/andreixhz/tools-cli/internal/buildmeta"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tools-cli %s\n", buildmeta.Version)
		},
	}
}
