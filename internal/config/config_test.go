package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "local-dev", s.ClusterName)
	assert.Equal(t, "tools/kind-cluster-config.yaml", s.KindConfig)
	assert.Equal(t, 5*time.Minute, s.WaitTimeout())
	require.Len(t, s.PortMappings, 2)
	assert.Equal(t, PortMapping{HostPort: 8080, ContainerPort: 80}, s.PortMappings[0])
	assert.Equal(t, PortMapping{HostPort: 8443, ContainerPort: 443}, s.PortMappings[1])
}

func TestContextName(t *testing.T) {
	s := Settings{ClusterName: "local-dev"}
	assert.Equal(t, "kind-local-dev", s.Context())
}

func TestWaitTimeoutFallsBackOnBadValues(t *testing.T) {
	tests := []struct {
		name string
		wait string
		want time.Duration
	}{
		{"unset", "", DefaultWait},
		{"malformed", "five minutes", DefaultWait},
		{"negative", "-1m", DefaultWait},
		{"valid", "90s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{Wait: tt.wait}
			assert.Equal(t, tt.want, s.WaitTimeout())
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := loadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kindctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cluster_name: [broken"), 0644))

	_, err := loadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kindctl.yaml")

	want := Settings{
		ClusterName:  "scratch",
		KindConfig:   "configs/scratch.yaml",
		Wait:         "2m",
		PortMappings: []PortMapping{{HostPort: 9090, ContainerPort: 90}},
	}
	require.NoError(t, saveTo(path, want))

	got, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFillsClearedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kindctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cluster_name: \"\"\nkind_config: \"\"\n"), 0644))

	s, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultClusterName, s.ClusterName)
	assert.Equal(t, DefaultKindConfig, s.KindConfig)
}

func TestRenderKindConfig(t *testing.T) {
	data, err := RenderKindConfig(DefaultSettings())
	require.NoError(t, err)

	rendered := string(data)
	assert.Contains(t, rendered, "kind: Cluster")
	assert.Contains(t, rendered, "apiVersion: kind.x-k8s.io/v1alpha4")
	assert.Contains(t, rendered, "role: control-plane")
	assert.Contains(t, rendered, "containerPort: 80")
	assert.Contains(t, rendered, "hostPort: 8080")
	assert.Contains(t, rendered, "containerPort: 443")
	assert.Contains(t, rendered, "hostPort: 8443")
	assert.Contains(t, rendered, "protocol: TCP")
}

func TestWriteKindConfigCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	s := DefaultSettings()
	s.KindConfig = filepath.Join(dir, "tools", "kind-cluster-config.yaml")

	require.NoError(t, WriteKindConfig(s))

	data, err := os.ReadFile(s.KindConfig)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: Cluster")
}
