package config

// DefaultPath is the configuration file used when no path is given.
const DefaultPath = "config.yaml"

// Config is the typed view of a configuration file.
type Config struct {
	Credentials    Credentials    `yaml:"credentials" mapstructure:"credentials"`
	TemplateConfig TemplateConfig `yaml:"templateConfig" mapstructure:"templateConfig"`
	ClusterConfig  ClusterConfig  `yaml:"clusterConfig" mapstructure:"clusterConfig"`
	Tools          []string       `yaml:"tools" mapstructure:"tools"`
}

type Credentials struct {
	AccessToken string `yaml:"accessToken" mapstructure:"accessToken"`
}

type TemplateConfig struct {
	TemplateProvider string `yaml:"templateProvider" mapstructure:"templateProvider"`
	TemplateTag      string `yaml:"templateTag" mapstructure:"templateTag"`
	TemplateURL      string `yaml:"templateUrl" mapstructure:"templateUrl"`
}

// ClusterConfig holds the defaults used by cluster commands.
type ClusterConfig struct {
	Name             string `yaml:"name" mapstructure:"name"`
	Type             string `yaml:"type" mapstructure:"type"`
	GroupID          int    `yaml:"groupId" mapstructure:"groupId"`
	UseLocalRegistry bool   `yaml:"useLocalRegistry" mapstructure:"useLocalRegistry"`
	// PortsToOpen is a comma-separated port list. A YAML list is accepted on load.
	PortsToOpen string `yaml:"portsToOpen" mapstructure:"portsToOpen"`
}

// Default returns the document written by CreateDefaultConfig.
func Default() *Config {
	return &Config{
		Credentials: Credentials{AccessToken: ""},
		TemplateConfig: TemplateConfig{
			TemplateProvider: "local",
			TemplateTag:      "3.1.0",
			TemplateURL:      "",
		},
		ClusterConfig: ClusterConfig{
			Name:             "my-cluster",
			Type:             "local",
			GroupID:          0,
			UseLocalRegistry: true,
			PortsToOpen:      "80,443",
		},
		Tools: []string{"kubectl", "helm", "k3d"},
	}
}
