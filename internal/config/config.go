package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the managed cluster. These match the declarative config this
// tool writes: a single control-plane node with two host port mappings.
const (
	DefaultClusterName = "local-dev"
	DefaultKindConfig  = "tools/kind-cluster-config.yaml"
	DefaultWait        = 5 * time.Minute
)

// PortMapping maps a host port to a container port on the control-plane node.
type PortMapping struct {
	HostPort      int `yaml:"host_port"`
	ContainerPort int `yaml:"container_port"`
}

// Settings is the configuration value object for the managed cluster. It is
// constructed once at startup and passed into every operation; the lifecycle
// commands themselves take no flags.
type Settings struct {
	ClusterName  string        `yaml:"cluster_name"`
	KindConfig   string        `yaml:"kind_config"`
	Wait         string        `yaml:"wait,omitempty"` // control-plane wait bound, e.g. "5m"
	PortMappings []PortMapping `yaml:"port_mappings,omitempty"`
}

// Context returns the kubeconfig context name kind generates for the cluster.
func (s Settings) Context() string {
	return "kind-" + s.ClusterName
}

// WaitTimeout parses the configured control-plane wait bound, falling back to
// the default when unset or malformed.
func (s Settings) WaitTimeout() time.Duration {
	d, err := time.ParseDuration(s.Wait)
	if err != nil || d <= 0 {
		return DefaultWait
	}
	return d
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		ClusterName: DefaultClusterName,
		KindConfig:  DefaultKindConfig,
		Wait:        DefaultWait.String(),
		PortMappings: []PortMapping{
			{HostPort: 8080, ContainerPort: 80},
			{HostPort: 8443, ContainerPort: 443},
		},
	}
}

// Path returns the settings file path (~/.kindctl.yaml).
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kindctl.yaml"
	}
	return filepath.Join(home, ".kindctl.yaml")
}

// Load reads the settings file, returning the defaults when it does not exist.
func Load() (Settings, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to read config file: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A file that clears a field falls back to the default rather than
	// producing an unnamed cluster.
	if s.ClusterName == "" {
		s.ClusterName = DefaultClusterName
	}
	if s.KindConfig == "" {
		s.KindConfig = DefaultKindConfig
	}

	return s, nil
}

// Save writes the settings file.
func Save(s Settings) error {
	return saveTo(Path(), s)
}

func saveTo(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
