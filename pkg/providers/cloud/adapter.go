// Package cloud holds placeholder providers for managed Kubernetes services.
// Every operation fails with providers.ErrNotImplemented.
package cloud

import (
	"context"
	"fmt"

	"github.com/andreixhz/tools-cli/pkg/providers"
	"github.com/andreixhz/tools-cli/pkg/types"
)

// Adapter is a managed-cluster provider that is not implemented yet.
type Adapter struct {
	service string
}

var _ providers.Provider = (*Adapter)(nil)

// NewAWSAdapter returns the AWS EKS placeholder.
func NewAWSAdapter() *Adapter {
	return &Adapter{service: "AWS EKS"}
}

// NewAzureAdapter returns the Azure AKS placeholder.
func NewAzureAdapter() *Adapter {
	return &Adapter{service: "Azure AKS"}
}

// Service names the managed service behind the adapter.
func (a *Adapter) Service() string {
	return a.service
}

func (a *Adapter) Create(_ context.Context, name string, _ types.CreateOptions) error {
	return a.unsupported("create", name)
}

func (a *Adapter) Delete(_ context.Context, name string) error {
	return a.unsupported("delete", name)
}

func (a *Adapter) List(context.Context) ([]string, error) {
	return []string{}, a.unsupported("list", "")
}

func (a *Adapter) Info(_ context.Context, name string) (types.ClusterInfo, error) {
	return types.ClusterInfo{}, a.unsupported("info", name)
}

func (a *Adapter) Bootstrap(_ context.Context, name string) error {
	return a.unsupported("bootstrap", name)
}

func (a *Adapter) unsupported(op, name string) error {
	if name == "" {
		return fmt.Errorf("%s provider: %s: %w", a.service, op, providers.ErrNotImplemented)
	}

	return fmt.Errorf("%s provider: %s '%s': %w", a.service, op, name, providers.ErrNotImplemented)
}
