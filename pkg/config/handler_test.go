package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andreixhz/tools-cli/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewHandler_DefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, config.DefaultPath, config.NewHandler("").Path())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	handler := config.NewHandler(filepath.Join(t.TempDir(), "absent.yaml"))

	err := handler.Load()
	require.ErrorIs(t, err, config.ErrConfiguration)
	assert.Contains(t, err.Error(), "configuration file not found")
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	handler := config.NewHandler(writeConfig(t, "clusterConfig: [unterminated\n"))

	err := handler.Load()
	require.ErrorIs(t, err, config.ErrConfiguration)
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestLoad_RootMustBeMapping(t *testing.T) {
	t.Parallel()

	for name, content := range map[string]string{
		"scalar":   "just a string\n",
		"sequence": "- kubectl\n- helm\n",
	} {
		content := content
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := config.NewHandler(writeConfig(t, content)).Load()
			require.ErrorIs(t, err, config.ErrConfiguration)
		})
	}
}

func TestLoad_EmptyFileIsEmptyMapping(t *testing.T) {
	t.Parallel()

	handler := config.NewHandler(writeConfig(t, ""))

	require.NoError(t, handler.Load())
	assert.Equal(t, "fallback", handler.Get("clusterConfig.name", "fallback"))
}

func TestGet_DottedKeys(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		content string
		key     string
		want    any
	}{
		"nested value":          {content: "clusterConfig:\n  name: x\n", key: "clusterConfig.name", want: "x"},
		"empty section":         {content: "clusterConfig: {}\n", key: "clusterConfig.name", want: "fallback"},
		"missing section":       {content: "tools: [kubectl]\n", key: "clusterConfig.name", want: "fallback"},
		"null value":            {content: "clusterConfig:\n  name: null\n", key: "clusterConfig.name", want: "fallback"},
		"walk through scalar":   {content: "clusterConfig:\n  name: x\n", key: "clusterConfig.name.first", want: "fallback"},
		"walk through sequence": {content: "tools: [kubectl]\n", key: "tools.0", want: "fallback"},
		"bool value":            {content: "clusterConfig:\n  useLocalRegistry: true\n", key: "clusterConfig.useLocalRegistry", want: true},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := config.NewHandler(writeConfig(t, tc.content))
			require.NoError(t, handler.Load())

			assert.Equal(t, tc.want, handler.Get(tc.key, "fallback"))
		})
	}
}

func TestGet_LoadsLazilyAndFallsBackOnError(t *testing.T) {
	t.Parallel()

	loaded := config.NewHandler(writeConfig(t, "clusterConfig:\n  name: lazy\n"))
	assert.Equal(t, "lazy", loaded.GetString("clusterConfig.name", "fallback"))

	missing := config.NewHandler(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, "fallback", missing.GetString("clusterConfig.name", "fallback"))
}

func TestGet_KeepsKeysAsWritten(t *testing.T) {
	t.Parallel()

	handler := config.NewHandler(writeConfig(t,
		"clusterConfig:\n  name: x\n  useLocalRegistry: true\n  portsToOpen: \"80\"\n"))
	require.NoError(t, handler.Load())

	assert.Equal(t, map[string]any{
		"name":             "x",
		"useLocalRegistry": true,
		"portsToOpen":      "80",
	}, handler.Get("clusterConfig", nil))
	assert.Equal(t, true, handler.Get("clusterConfig.useLocalRegistry", "fallback"))
	assert.Equal(t, "fallback", handler.Get("clusterconfig.name", "fallback"))
	assert.Equal(t, "fallback", handler.Get("clusterConfig.uselocalregistry", "fallback"))
}

func TestConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("TOOLSCLI_CLUSTERCONFIG_NAME", "from-env")

	handler := config.NewHandler(writeConfig(t, "clusterConfig:\n  name: from-file\n"))

	cfg, err := handler.Config()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.ClusterConfig.Name)
	assert.Equal(t, "from-file", handler.Get("clusterConfig.name", "fallback"))
}

func TestConfig_Decodes(t *testing.T) {
	t.Parallel()

	handler := config.NewHandler(writeConfig(t, `credentials:
  accessToken: secret
templateConfig:
  templateProvider: local
  templateTag: 3.1.0
  templateUrl: https://example.com/templates
clusterConfig:
  name: alpha
  type: k3d
  groupId: 7
  useLocalRegistry: true
  portsToOpen: [8080, 8443]
tools:
  - kubectl
  - helm
`))

	cfg, err := handler.Config()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Credentials.AccessToken)
	assert.Equal(t, "https://example.com/templates", cfg.TemplateConfig.TemplateURL)
	assert.Equal(t, config.ClusterConfig{
		Name:             "alpha",
		Type:             "k3d",
		GroupID:          7,
		UseLocalRegistry: true,
		PortsToOpen:      "8080,8443",
	}, cfg.ClusterConfig)
	assert.Equal(t, []string{"kubectl", "helm"}, cfg.Tools)
}

func TestDocument_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	content := "zeta: 1\nalpha:\n  second: b\n  first: a\n"
	handler := config.NewHandler(writeConfig(t, content))

	out, err := handler.Document()
	require.NoError(t, err)
	assert.Equal(t, content, string(out))
}

func TestSave_OverwritesExistingFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "old: true\n")
	handler := config.NewHandler(path)

	require.NoError(t, handler.Save(map[string]any{"new": "value"}, ""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new: value\n", string(data))
}

func TestSave_UnwritablePath(t *testing.T) {
	t.Parallel()

	handler := config.NewHandler("")
	path := filepath.Join(t.TempDir(), "missing-dir", "config.yaml")

	require.ErrorIs(t, handler.Save(config.Default(), path), config.ErrConfiguration)
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.CreateDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, `credentials:
  accessToken: ""
templateConfig:
  templateProvider: local
  templateTag: 3.1.0
  templateUrl: ""
clusterConfig:
  name: my-cluster
  type: local
  groupId: 0
  useLocalRegistry: true
  portsToOpen: 80,443
tools:
  - kubectl
  - helm
  - k3d
`, string(data))

	cfg, err := config.NewHandler(path).Config()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
