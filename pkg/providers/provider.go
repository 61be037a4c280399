package providers

import (
	"context"

	"github.com/andreixhz/tools-cli/pkg/types"
)

// Provider defines the interface that all cluster providers must implement.
// A nil error means the operation succeeded.
type Provider interface {
	// Create creates a new cluster with the given name.
	Create(ctx context.Context, name string, opts types.CreateOptions) error

	// Delete deletes the specified cluster.
	Delete(ctx context.Context, name string) error

	// List returns the names of all clusters.
	List(ctx context.Context) ([]string, error)

	// Info returns details about the named cluster, or the zero ClusterInfo
	// when no such cluster exists.
	Info(ctx context.Context, name string) (types.ClusterInfo, error)

	// Bootstrap installs GitOps tooling onto an existing cluster.
	Bootstrap(ctx context.Context, name string) error
}
