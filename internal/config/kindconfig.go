package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// kindPortMapping, kindNode and kindClusterConfig mirror the subset of the
// kind.x-k8s.io/v1alpha4 schema this tool writes. The lifecycle commands
// never read this file back; only kind itself consumes it.
type kindPortMapping struct {
	ContainerPort int    `yaml:"containerPort"`
	HostPort      int    `yaml:"hostPort"`
	Protocol      string `yaml:"protocol"`
}

type kindNode struct {
	Role              string            `yaml:"role"`
	ExtraPortMappings []kindPortMapping `yaml:"extraPortMappings,omitempty"`
}

type kindClusterConfig struct {
	Kind       string     `yaml:"kind"`
	APIVersion string     `yaml:"apiVersion"`
	Nodes      []kindNode `yaml:"nodes"`
}

// RenderKindConfig produces the declarative kind cluster config: a single
// control-plane node carrying the configured host port mappings.
func RenderKindConfig(s Settings) ([]byte, error) {
	node := kindNode{Role: "control-plane"}
	for _, pm := range s.PortMappings {
		node.ExtraPortMappings = append(node.ExtraPortMappings, kindPortMapping{
			ContainerPort: pm.ContainerPort,
			HostPort:      pm.HostPort,
			Protocol:      "TCP",
		})
	}

	cfg := kindClusterConfig{
		Kind:       "Cluster",
		APIVersion: "kind.x-k8s.io/v1alpha4",
		Nodes:      []kindNode{node},
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal kind config: %w", err)
	}
	return data, nil
}

// WriteKindConfig materializes the kind config at s.KindConfig, creating
// parent directories as needed. An existing file is overwritten.
func WriteKindConfig(s Settings) error {
	data, err := RenderKindConfig(s)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.KindConfig); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(s.KindConfig, data, 0644); err != nil {
		return fmt.Errorf("failed to write kind config: %w", err)
	}

	return nil
}
