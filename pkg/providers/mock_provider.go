package providers

import (
	"context"

	"github.com/andreixhz/tools-cli/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of the Provider interface for testing.
type MockProvider struct {
	mock.Mock
}

// NewMockProvider creates a new MockProvider instance.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Create mocks cluster creation.
func (m *MockProvider) Create(ctx context.Context, name string, opts types.CreateOptions) error {
	args := m.Called(ctx, name, opts)

	return args.Error(0)
}

// Delete mocks cluster deletion.
func (m *MockProvider) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)

	return args.Error(0)
}

// List mocks listing clusters.
func (m *MockProvider) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	clusters, ok := args.Get(0).([]string)
	if !ok {
		return nil, args.Error(1)
	}

	return clusters, args.Error(1)
}

// Info mocks fetching cluster details.
func (m *MockProvider) Info(ctx context.Context, name string) (types.ClusterInfo, error) {
	args := m.Called(ctx, name)

	info, _ := args.Get(0).(types.ClusterInfo)

	return info, args.Error(1)
}

// Bootstrap mocks cluster bootstrapping.
func (m *MockProvider) Bootstrap(ctx context.Context, name string) error {
	args := m.Called(ctx, name)

	return args.Error(0)
}
