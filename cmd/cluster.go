package cmd

import (
	"fmt"
	"strings"

	"github.com/andreixhz/tools-cli/pkg/config"
	"github.com/andreixhz/tools-cli/pkg/notify"
	"github.com/andreixhz/tools-cli/pkg/providers"
	"github.com/andreixhz/tools-cli/pkg/types"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const (
	defaultClusterName  = "my-cluster"
	defaultProviderType = types.ProviderLocal
)

func providerFlagUsage() string {
	names := make([]string, 0, len(types.AllProviderTypes()))
	for _, p := range types.AllProviderTypes() {
		names = append(names, string(p))
	}

	return fmt.Sprintf("Cluster provider (%s); defaults to clusterConfig.type", strings.Join(names, ", "))
}

func newClusterCmd(a *app) *cobra.Command {
	clusterCmd := &cobra.Command{
		Use:   "cluster",
		Short: "Manage Kubernetes clusters",
		Long: `Create, delete, list, inspect and bootstrap Kubernetes clusters.

Values not given on the command line are taken from the clusterConfig section
of the configuration file.`,
	}

	clusterCmd.AddCommand(newClusterCreateCmd(a))
	clusterCmd.AddCommand(newClusterDeleteCmd(a))
	clusterCmd.AddCommand(newClusterListCmd(a))
	clusterCmd.AddCommand(newClusterInfoCmd(a))
	clusterCmd.AddCommand(newClusterBootstrapCmd(a))

	return clusterCmd
}

// clusterTarget is a cluster name and provider after applying precedence:
// command line, then clusterConfig, then built-in defaults.
type clusterTarget struct {
	name     string
	provider types.ProviderType
}

func resolveTarget(args []string, providerFlag string, cc config.ClusterConfig) clusterTarget {
	target := clusterTarget{name: defaultClusterName, provider: defaultProviderType}

	switch {
	case len(args) > 0 && args[0] != "":
		target.name = args[0]
	case cc.Name != "":
		target.name = cc.Name
	}

	switch {
	case providerFlag != "":
		target.provider = types.ProviderType(providerFlag)
	case cc.Type != "":
		target.provider = types.ProviderType(cc.Type)
	}

	target.provider = target.provider.Normalize()

	return target
}

func (a *app) clusterConfig() (config.ClusterConfig, error) {
	cfg, err := a.configHandler().Config()
	if err != nil {
		return config.ClusterConfig{}, err
	}

	return cfg.ClusterConfig, nil
}

func newClusterCreateCmd(a *app) *cobra.Command {
	var (
		provider string
		ports    string
		registry bool
	)

	createCmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new cluster",
		Long: `Create a new cluster. The name, provider, ports and registry settings fall
back to clusterConfig values when not given on the command line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := a.clusterConfig()
			if err != nil {
				return err
			}

			target := resolveTarget(args, provider, cc)

			opts := types.CreateOptions{Ports: cc.PortsToOpen, UseRegistry: cc.UseLocalRegistry}
			if cmd.Flags().Changed("ports") {
				opts.Ports = ports
			}
			if cmd.Flags().Changed("registry") {
				opts.UseRegistry = registry
			}

			return a.clusterManager(cmd.OutOrStdout()).CreateCluster(cmd.Context(), target.name, target.provider, opts)
		},
	}

	createCmd.Flags().StringVar(&provider, "provider", "", providerFlagUsage())
	createCmd.Flags().StringVar(&ports, "ports", "", "Comma-separated ports to expose through the load balancer")
	createCmd.Flags().BoolVar(&registry, "registry", false, "Create a local image registry for the cluster")

	return createCmd
}

func newClusterDeleteCmd(a *app) *cobra.Command {
	var provider string

	deleteCmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a cluster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := a.clusterConfig()
			if err != nil {
				return err
			}

			target := resolveTarget(args, provider, cc)

			return a.clusterManager(cmd.OutOrStdout()).DeleteCluster(cmd.Context(), target.name, target.provider)
		},
	}

	deleteCmd.Flags().StringVar(&provider, "provider", "", providerFlagUsage())

	return deleteCmd
}

type clusterListEntry struct {
	Name     string `json:"name" yaml:"name"`
	Provider string `json:"provider" yaml:"provider"`
}

func newClusterListCmd(a *app) *cobra.Command {
	var (
		provider string
		output   outputFormat
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := a.clusterConfig()
			if err != nil {
				return err
			}

			target := resolveTarget(nil, provider, cc)
			out := cmd.OutOrStdout()

			clusters, err := a.clusterManager(out).ListClusters(cmd.Context(), target.provider)
			if err != nil {
				return err
			}

			if output != outputTable {
				entries := make([]clusterListEntry, 0, len(clusters))
				for _, name := range clusters {
					entries = append(entries, clusterListEntry{Name: name, Provider: string(target.provider)})
				}

				return writeStructured(out, output, entries)
			}

			if len(clusters) == 0 {
				notify.Infof(out, "No clusters found for provider: %s", target.provider)
				return nil
			}

			rows := make([]table.Row, 0, len(clusters))
			for _, name := range clusters {
				rows = append(rows, table.Row{name, target.provider})
			}

			renderTable(out, fmt.Sprintf("Clusters (%s)", target.provider), table.Row{"Name", "Provider"}, rows)

			return nil
		},
	}

	listCmd.Flags().StringVar(&provider, "provider", "", providerFlagUsage())
	addOutputFlag(listCmd.Flags(), &output)

	return listCmd
}

func newClusterInfoCmd(a *app) *cobra.Command {
	var (
		provider string
		output   outputFormat
	)

	infoCmd := &cobra.Command{
		Use:   "info [name]",
		Short: "Show cluster information",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := a.clusterConfig()
			if err != nil {
				return err
			}

			target := resolveTarget(args, provider, cc)
			out := cmd.OutOrStdout()

			info, err := a.clusterManager(out).GetClusterInfo(cmd.Context(), target.name, target.provider)
			if err != nil {
				return err
			}

			if info.IsZero() {
				return fmt.Errorf("%w: '%s'", providers.ErrClusterNotFound, target.name)
			}

			if output != outputTable {
				return writeStructured(out, output, info)
			}

			fields := info.Fields()
			rows := make([]table.Row, 0, len(fields))
			for _, f := range fields {
				rows = append(rows, table.Row{f.Key, f.Value})
			}

			renderTable(out, "Cluster Info: "+target.name, table.Row{"Property", "Value"}, rows)

			return nil
		},
	}

	infoCmd.Flags().StringVar(&provider, "provider", "", providerFlagUsage())
	addOutputFlag(infoCmd.Flags(), &output)

	return infoCmd
}

func newClusterBootstrapCmd(a *app) *cobra.Command {
	var provider string

	bootstrapCmd := &cobra.Command{
		Use:   "bootstrap [name]",
		Short: "Bootstrap a cluster with GitOps tooling (Flux CD)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := a.clusterConfig()
			if err != nil {
				return err
			}

			target := resolveTarget(args, provider, cc)

			return a.clusterManager(cmd.OutOrStdout()).BootstrapCluster(cmd.Context(), target.name, target.provider)
		},
	}

	bootstrapCmd.Flags().StringVar(&provider, "provider", "", providerFlagUsage())

	return bootstrapCmd
}
