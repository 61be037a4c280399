package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andreixhz/tools-cli/pkg/executor"
	"github.com/andreixhz/tools-cli/pkg/providers"
	"github.com/andreixhz/tools-cli/pkg/providers/cloud"
	"github.com/andreixhz/tools-cli/pkg/providers/local"
	"github.com/andreixhz/tools-cli/pkg/types"
	"go.uber.org/zap"
)

// ErrProviderNotSupported is returned for provider types missing from the provider map.
var ErrProviderNotSupported = errors.New("provider not supported")

// Deps are handed to a Factory when a provider is first needed.
type Deps struct {
	Executor executor.Executor
	Out      io.Writer
}

// Factory constructs a provider.
type Factory func(Deps) providers.Provider

func newLocal(d Deps) providers.Provider { return local.NewK3dAdapter(d.Executor, d.Out) }
func newAWS(Deps) providers.Provider { return cloud.NewAWSAdapter() }
func newAzure(Deps) providers.Provider { return cloud.NewAzureAdapter() }

// ClusterManager resolves provider types to providers and forwards cluster
// operations to them. Providers are built on first use and reused afterwards.
type ClusterManager struct {
	factories map[types.ProviderType]Factory
	providers map[types.ProviderType]providers.Provider
	deps      Deps
	logger    *zap.Logger
}

// Option configures a ClusterManager.
type Option func(*ClusterManager)

// WithExecutor sets the executor used by subprocess-backed providers.
func WithExecutor(exec executor.Executor) Option {
	return func(m *ClusterManager) { m.deps.Executor = exec }
}

// WithWriter sets where providers write user-facing messages.
func WithWriter(w io.Writer) Option {
	return func(m *ClusterManager) { m.deps.Out = w }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *ClusterManager) { m.logger = logger }
}

// WithFactory replaces the factory registered for a provider type.
func WithFactory(providerType types.ProviderType, factory Factory) Option {
	return func(m *ClusterManager) { m.factories[providerType.Normalize()] = factory }
}

func NewClusterManager(opts ...Option) *ClusterManager {
	m := &ClusterManager{
		factories: map[types.ProviderType]Factory{
			types.ProviderLocal: newLocal,
			types.ProviderK3d:   newLocal,
			types.ProviderAWS:   newAWS,
			types.ProviderEKS:   newAWS,
			types.ProviderAzure: newAzure,
			types.ProviderAKS:   newAzure,
		},
		providers: map[types.ProviderType]providers.Provider{},
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.deps.Executor == nil {
		m.deps.Executor = executor.NewCommandExecutor(m.logger)
	}

	return m
}

// Provider returns the provider registered for providerType, constructing it
// on first use.
func (m *ClusterManager) Provider(providerType types.ProviderType) (providers.Provider, error) {
	key := providerType.Normalize()

	if p, ok := m.providers[key]; ok {
		return p, nil
	}

	factory, ok := m.factories[key]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'. Available providers: %s",
			ErrProviderNotSupported, key, strings.Join(m.available(), ", "))
	}

	m.logger.Debug("initializing provider", zap.String("provider", string(key)))

	p := factory(m.deps)
	m.providers[key] = p

	return p, nil
}

func (m *ClusterManager) available() []string {
	var names []string

	for _, t := range types.AllProviderTypes() {
		if _, ok := m.factories[t]; ok {
			names = append(names, string(t))
		}
	}

	return names
}

func (m *ClusterManager) CreateCluster(
	ctx context.Context,
	name string,
	providerType types.ProviderType,
	opts types.CreateOptions,
) error {
	p, err := m.Provider(providerType)
	if err != nil {
		return err
	}

	return p.Create(ctx, name, opts)
}

func (m *ClusterManager) DeleteCluster(ctx context.Context, name string, providerType types.ProviderType) error {
	p, err := m.Provider(providerType)
	if err != nil {
		return err
	}

	return p.Delete(ctx, name)
}

func (m *ClusterManager) ListClusters(ctx context.Context, providerType types.ProviderType) ([]string, error) {
	p, err := m.Provider(providerType)
	if err != nil {
		return nil, err
	}

	return p.List(ctx)
}

func (m *ClusterManager) GetClusterInfo(
	ctx context.Context,
	name string,
	providerType types.ProviderType,
) (types.ClusterInfo, error) {
	p, err := m.Provider(providerType)
	if err != nil {
		return types.ClusterInfo{}, err
	}

	return p.Info(ctx, name)
}

func (m *ClusterManager) BootstrapCluster(ctx context.Context, name string, providerType types.ProviderType) error {
	p, err := m.Provider(providerType)
	if err != nil {
		return err
	}

	return p.Bootstrap(ctx, name)
}
