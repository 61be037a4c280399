package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/andreixhz/tools-cli/internal/core"
	"github.com/andreixhz/tools-cli/pkg/executor"
	"github.com/andreixhz/tools-cli/pkg/providers"
	"github.com/andreixhz/tools-cli/pkg/providers/cloud"
	"github.com/andreixhz/tools-cli/pkg/providers/local"
	"github.com/andreixhz/tools-cli/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errCreate = errors.New("create failed")

func TestClusterManager_UnknownProvider(t *testing.T) {
	t.Parallel()

	manager := core.NewClusterManager(core.WithExecutor(executor.NewFakeExecutor()))

	for _, providerType := range []types.ProviderType{"gcp", "", "docker"} {
		_, err := manager.Provider(providerType)
		require.ErrorIs(t, err, core.ErrProviderNotSupported)
		assert.Contains(t, err.Error(), "Available providers: local, k3d, aws, eks, azure, aks")
	}
}

func TestClusterManager_ResolvesAliases(t *testing.T) {
	t.Parallel()

	manager := core.NewClusterManager(core.WithExecutor(executor.NewFakeExecutor()))

	cases := map[types.ProviderType]func(providers.Provider) bool{
		"local": isLocal,
		"k3d":   isLocal,
		"LOCAL": isLocal,
		"aws":   isCloud("AWS EKS"),
		"eks":   isCloud("AWS EKS"),
		"azure": isCloud("Azure AKS"),
		"aks":   isCloud("Azure AKS"),
	}

	for providerType, check := range cases {
		p, err := manager.Provider(providerType)
		require.NoError(t, err, providerType)
		assert.True(t, check(p), providerType)
	}
}

func isLocal(p providers.Provider) bool {
	_, ok := p.(*local.K3dAdapter)
	return ok
}

func isCloud(service string) func(providers.Provider) bool {
	return func(p providers.Provider) bool {
		adapter, ok := p.(*cloud.Adapter)
		return ok && adapter.Service() == service
	}
}

func TestClusterManager_CachesProviders(t *testing.T) {
	t.Parallel()

	built := 0
	mockProvider := providers.NewMockProvider()
	manager := core.NewClusterManager(core.WithFactory(types.ProviderLocal, func(core.Deps) providers.Provider {
		built++
		return mockProvider
	}))

	first, err := manager.Provider("local")
	require.NoError(t, err)

	second, err := manager.Provider("Local")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, built)
}

func TestClusterManager_Delegates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	opts := types.CreateOptions{Ports: "80,443", UseRegistry: true}
	info := types.ClusterInfo{Name: "alpha", Type: "local", Provider: "k3d", Status: "running"}

	mockProvider := providers.NewMockProvider()
	mockProvider.On("Create", mock.Anything, "alpha", opts).Return(nil)
	mockProvider.On("Delete", mock.Anything, "alpha").Return(nil)
	mockProvider.On("List", mock.Anything).Return([]string{"alpha"}, nil)
	mockProvider.On("Info", mock.Anything, "alpha").Return(info, nil)
	mockProvider.On("Bootstrap", mock.Anything, "alpha").Return(nil)

	manager := core.NewClusterManager(core.WithFactory(types.ProviderLocal, func(core.Deps) providers.Provider {
		return mockProvider
	}))

	require.NoError(t, manager.CreateCluster(ctx, "alpha", types.ProviderLocal, opts))
	require.NoError(t, manager.DeleteCluster(ctx, "alpha", types.ProviderLocal))

	clusters, err := manager.ListClusters(ctx, types.ProviderLocal)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, clusters)

	got, err := manager.GetClusterInfo(ctx, "alpha", types.ProviderLocal)
	require.NoError(t, err)
	assert.Equal(t, info, got)

	require.NoError(t, manager.BootstrapCluster(ctx, "alpha", types.ProviderLocal))

	mockProvider.AssertExpectations(t)
}

func TestClusterManager_PropagatesProviderErrors(t *testing.T) {
	t.Parallel()

	mockProvider := providers.NewMockProvider()
	mockProvider.On("Create", mock.Anything, "alpha", types.CreateOptions{}).Return(errCreate)

	manager := core.NewClusterManager(core.WithFactory(types.ProviderLocal, func(core.Deps) providers.Provider {
		return mockProvider
	}))

	err := manager.CreateCluster(context.Background(), "alpha", types.ProviderLocal, types.CreateOptions{})
	require.ErrorIs(t, err, errCreate)
}

func TestClusterManager_UnknownProviderOnEveryOperation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager := core.NewClusterManager()

	require.ErrorIs(t, manager.CreateCluster(ctx, "a", "gke", types.CreateOptions{}), core.ErrProviderNotSupported)
	require.ErrorIs(t, manager.DeleteCluster(ctx, "a", "gke"), core.ErrProviderNotSupported)
	require.ErrorIs(t, manager.BootstrapCluster(ctx, "a", "gke"), core.ErrProviderNotSupported)

	_, err := manager.ListClusters(ctx, "gke")
	require.ErrorIs(t, err, core.ErrProviderNotSupported)

	_, err = manager.GetClusterInfo(ctx, "a", "gke")
	require.ErrorIs(t, err, core.ErrProviderNotSupported)
}

func TestClusterManager_LocalUsesExecutor(t *testing.T) {
	t.Parallel()

	fake := executor.NewFakeExecutor().On("k3d cluster list --no-headers", "alpha running\n", nil)
	manager := core.NewClusterManager(core.WithExecutor(fake))

	clusters, err := manager.ListClusters(context.Background(), types.ProviderK3d)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, clusters)
}
