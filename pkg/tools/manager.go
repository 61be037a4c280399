package tools

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andreixhz/tools-cli/pkg/executor"
	"github.com/andreixhz/tools-cli/pkg/notify"
	"go.uber.org/zap"
)

var (
	// ErrToolNotFound is returned for tools missing from the registry.
	ErrToolNotFound = errors.New("tool not supported")

	// ErrToolInstallation is returned when a tool is absent and cannot be installed automatically.
	ErrToolInstallation = errors.New("tool installation failed")
)

// Tool describes a supported development tool.
type Tool struct {
	Name         string
	Description  string
	CheckCommand []string
}

// DefaultTools returns the registry of supported tools.
func DefaultTools() []Tool {
	return []Tool{
		{Name: "kubectl", Description: "Kubernetes command-line tool", CheckCommand: []string{"kubectl", "version", "--client"}},
		{Name: "helm", Description: "Kubernetes package manager", CheckCommand: []string{"helm", "version"}},
		{Name: "k3d", Description: "k3s in Docker - lightweight Kubernetes", CheckCommand: []string{"k3d", "version"}},
		{Name: "argocd", Description: "GitOps toolkit for Kubernetes", CheckCommand: []string{"argocd", "version"}},
	}
}

// Manager checks for and installs development tools.
type Manager struct {
	tools  []Tool
	exec   executor.Executor
	out    io.Writer
	logger *zap.Logger

	// OnInstall, when set, is called after each install attempt of InstallMultiple.
	OnInstall func(name string, err error)
}

// NewManager creates a manager over the default registry.
func NewManager(exec executor.Executor, out io.Writer, logger *zap.Logger) *Manager {
	return NewManagerWithTools(DefaultTools(), exec, out, logger)
}

// NewManagerWithTools creates a manager over a custom registry.
func NewManagerWithTools(tools []Tool, exec executor.Executor, out io.Writer, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Manager{tools: tools, exec: exec, out: out, logger: logger}
}

// List returns the supported tools in registry order.
func (m *Manager) List() []Tool {
	return append([]Tool(nil), m.tools...)
}

// Lookup finds a tool by name.
func (m *Manager) Lookup(name string) (Tool, bool) {
	for _, tool := range m.tools {
		if tool.Name == name {
			return tool, true
		}
	}

	return Tool{}, false
}

// CheckInstalled reports whether the tool's check command exists and exits zero.
// Unknown tools and missing binaries both report false.
func (m *Manager) CheckInstalled(ctx context.Context, name string) bool {
	tool, ok := m.Lookup(name)
	if !ok || len(tool.CheckCommand) == 0 {
		return false
	}

	_, err := m.exec.Run(ctx, tool.CheckCommand[0], tool.CheckCommand[1:]...)
	if err != nil {
		m.logger.Debug("tool check failed",
			zap.String("tool", name),
			zap.Bool("binary_missing", executor.IsNotFound(err)),
			zap.Error(err))

		return false
	}

	return true
}

// Install ensures the tool is present. Automatic installation is not
// available, so a missing tool yields ErrToolInstallation after telling the
// user to install it manually.
func (m *Manager) Install(ctx context.Context, name string) error {
	if _, ok := m.Lookup(name); !ok {
		notify.Errorf(m.out, "Tool '%s' is not supported", name)
		return fmt.Errorf("%w: '%s'", ErrToolNotFound, name)
	}

	if m.CheckInstalled(ctx, name) {
		notify.Infof(m.out, "Tool '%s' is already installed", name)
		return nil
	}

	notify.Activityf(m.out, "Installing %s...", name)
	notify.Infof(m.out, "Please install %s manually for now", name)

	return fmt.Errorf("%w: %s must be installed manually", ErrToolInstallation, name)
}

// InstallMultiple installs each tool independently and returns the outcome per
// name; a nil error means the tool is available.
func (m *Manager) InstallMultiple(ctx context.Context, names []string) map[string]error {
	results := make(map[string]error, len(names))

	for _, name := range names {
		err := m.Install(ctx, name)
		results[name] = err

		if m.OnInstall != nil {
			m.OnInstall(name, err)
		}
	}

	return results
}
