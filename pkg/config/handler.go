package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment variables that override file values,
// e.g. TOOLSCLI_CLUSTERCONFIG_NAME overrides clusterConfig.name.
const EnvPrefix = "TOOLSCLI"

// ErrConfiguration is returned when configuration is missing, unreadable or invalid.
var ErrConfiguration = errors.New("configuration error")

// Handler loads and saves a single YAML configuration file.
type Handler struct {
	path   string
	viper  *viper.Viper
	doc    yaml.Node
	values map[string]any
	loaded bool
}

// NewHandler creates a handler for path, or DefaultPath when path is empty.
func NewHandler(path string) *Handler {
	if path == "" {
		path = DefaultPath
	}

	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &Handler{path: path}
}

// Path returns the resolved configuration file path.
func (h *Handler) Path() string {
	return h.path
}

// Load reads and parses the configuration file. The file must exist and
// contain a YAML mapping; an empty file is an empty mapping.
func (h *Handler) Load() error {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: configuration file not found: %s", ErrConfiguration, h.path)
		}

		return fmt.Errorf("%w: error loading configuration: %w", ErrConfiguration, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: invalid YAML in config file %s: %w", ErrConfiguration, h.path, err)
	}

	if len(doc.Content) > 0 && doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("%w: invalid YAML in config file %s: top-level value must be a mapping",
			ErrConfiguration, h.path)
	}

	values := map[string]any{}
	if len(doc.Content) > 0 {
		if err := doc.Decode(&values); err != nil {
			return fmt.Errorf("%w: invalid YAML in config file %s: %w", ErrConfiguration, h.path, err)
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: invalid YAML in config file %s: %w", ErrConfiguration, h.path, err)
	}

	h.viper = v
	h.doc = doc
	h.values = values
	h.loaded = true

	return nil
}

// Get returns the value at a dot-separated key such as "clusterConfig.name",
// matching keys exactly as written in the file. def is returned when any
// segment is missing or null, when the walk reaches a non-mapping value, or
// when the file cannot be loaded. Environment overrides apply to Config only.
func (h *Handler) Get(key string, def any) any {
	if !h.loaded {
		if err := h.Load(); err != nil {
			return def
		}
	}

	var value any = h.values

	for _, segment := range strings.Split(key, ".") {
		m, ok := value.(map[string]any)
		if !ok {
			return def
		}

		value, ok = m[segment]
		if !ok || value == nil {
			return def
		}
	}

	return value
}

// GetString is Get for string values; non-string values yield def.
func (h *Handler) GetString(key, def string) string {
	if s, ok := h.Get(key, def).(string); ok {
		return s
	}

	return def
}

// Config decodes the loaded file into a Config, applying environment overrides.
func (h *Handler) Config() (*Config, error) {
	if !h.loaded {
		if err := h.Load(); err != nil {
			return nil, err
		}
	}

	var cfg Config

	err := h.viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		joinListHook(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrConfiguration, h.path, err)
	}

	return &cfg, nil
}

// Document re-encodes the loaded file with its original key order.
func (h *Handler) Document() ([]byte, error) {
	if !h.loaded {
		if err := h.Load(); err != nil {
			return nil, err
		}
	}

	if len(h.doc.Content) == 0 {
		return []byte("{}\n"), nil
	}

	return encode(&h.doc)
}

// Save writes value as YAML to path, or to the handler's path when path is
// empty, replacing any existing file. Key order follows struct field order or
// yaml.Node order.
func (h *Handler) Save(value any, path string) error {
	if path == "" {
		path = h.path
	}

	data, err := encode(value)
	if err != nil {
		return fmt.Errorf("%w: error saving configuration: %w", ErrConfiguration, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: error saving configuration: %w", ErrConfiguration, err)
	}

	return nil
}

// CreateDefaultConfig writes the default configuration document to path.
func CreateDefaultConfig(path string) error {
	h := NewHandler(path)

	return h.Save(Default(), "")
}

func encode(value any) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(value); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// joinListHook turns a YAML list into a comma-separated string when the target
// is a string, so portsToOpen may be written as [80, 443].
func joinListHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to.Kind() != reflect.String || (from.Kind() != reflect.Slice && from.Kind() != reflect.Array) {
			return data, nil
		}

		items := reflect.ValueOf(data)
		parts := make([]string, 0, items.Len())

		for i := 0; i < items.Len(); i++ {
			parts = append(parts, fmt.Sprint(items.Index(i).Interface()))
		}

		return strings.Join(parts, ","), nil
	}
}
