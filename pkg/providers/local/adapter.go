package local

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/andreixhz/tools-cli/pkg/executor"
	"github.com/andreixhz/tools-cli/pkg/notify"
	"github.com/andreixhz/tools-cli/pkg/providers"
	"github.com/andreixhz/tools-cli/pkg/types"
)

const k3dBinary = "k3d"

// K3dAdapter implements the providers.Provider interface on top of the k3d CLI.
type K3dAdapter struct {
	exec executor.Executor
	out  io.Writer
}

var _ providers.Provider = (*K3dAdapter)(nil)

// NewK3dAdapter creates an adapter that runs k3d through exec and reports
// progress to out.
func NewK3dAdapter(exec executor.Executor, out io.Writer) *K3dAdapter {
	return &K3dAdapter{exec: exec, out: out}
}

// CreateArgs builds the k3d arguments for creating a cluster.
func CreateArgs(name string, opts types.CreateOptions) []string {
	args := []string{"cluster", "create", name}

	for _, port := range opts.PortList() {
		args = append(args, "-p", fmt.Sprintf("%s:%s@loadbalancer", port, port))
	}

	if opts.UseRegistry {
		args = append(args, "--registry-create", name+"-registry")
	}

	return args
}

func (a *K3dAdapter) Create(ctx context.Context, name string, opts types.CreateOptions) error {
	notify.Infof(a.out, "Creating local k3d cluster: %s", name)

	if err := a.run(ctx, "creation", name, CreateArgs(name, opts)...); err != nil {
		notify.Errorf(a.out, "Failed to create cluster '%s'", name)
		return err
	}

	notify.Successf(a.out, "Cluster '%s' created successfully", name)
	return nil
}

func (a *K3dAdapter) Delete(ctx context.Context, name string) error {
	notify.Infof(a.out, "Deleting local k3d cluster: %s", name)

	if err := a.run(ctx, "deletion", name, "cluster", "delete", name); err != nil {
		notify.Errorf(a.out, "Failed to delete cluster '%s'", name)
		return err
	}

	notify.Successf(a.out, "Cluster '%s' deleted successfully", name)
	return nil
}

func (a *K3dAdapter) List(ctx context.Context) ([]string, error) {
	res, err := a.exec.Run(ctx, k3dBinary, "cluster", "list", "--no-headers")
	if err != nil {
		return nil, &providers.ClusterOperationError{Op: "listing", Stderr: res.Stderr, Err: err}
	}

	return ParseClusterList(res.Stdout), nil
}

// ParseClusterList extracts cluster names from `k3d cluster list --no-headers`
// output: the first whitespace-delimited token of every non-blank line.
func ParseClusterList(output string) []string {
	clusters := []string{}

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		clusters = append(clusters, fields[0])
	}

	return clusters
}

// Info reports a cluster as running when k3d lists it. k3d is not queried for
// health details.
func (a *K3dAdapter) Info(ctx context.Context, name string) (types.ClusterInfo, error) {
	clusters, err := a.List(ctx)
	if err != nil {
		return types.ClusterInfo{}, err
	}

	if !slices.Contains(clusters, name) {
		return types.ClusterInfo{}, nil
	}

	return types.ClusterInfo{
		Name:     name,
		Type:     string(types.ProviderLocal),
		Provider: k3dBinary,
		Status:   "running",
	}, nil
}

// Bootstrap currently performs no installation and always succeeds.
func (a *K3dAdapter) Bootstrap(_ context.Context, name string) error {
	notify.Activityf(a.out, "Bootstrapping cluster '%s' with Flux CD", name)
	notify.Successf(a.out, "Cluster '%s' bootstrapped successfully", name)

	return nil
}

func (a *K3dAdapter) run(ctx context.Context, op, name string, args ...string) error {
	res, err := a.exec.Run(ctx, k3dBinary, args...)
	if err != nil {
		return &providers.ClusterOperationError{Op: op, Cluster: name, Stderr: res.Stderr, Err: err}
	}

	return nil
}
