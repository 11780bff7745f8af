package kind

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mkarlsen/kindctl/internal/shell"
)

// Client wraps the kind CLI. Creation and deletion stream the tool's own
// output so its diagnostics reach the user unmodified.
type Client struct {
	runner shell.Runner
}

// NewClient creates a kind client over the given runner.
func NewClient(runner shell.Runner) *Client {
	return &Client{runner: runner}
}

// Clusters returns the names of all kind clusters known to the daemon.
func (c *Client) Clusters(ctx context.Context) ([]string, error) {
	out, err := c.runner.Output(ctx, "kind", "get", "clusters")
	if err != nil {
		return nil, fmt.Errorf("failed to list kind clusters: %w", err)
	}
	return parseClusterList(out), nil
}

// Exists reports whether a cluster with the given name exists.
func (c *Client) Exists(ctx context.Context, name string) (bool, error) {
	clusters, err := c.Clusters(ctx)
	if err != nil {
		return false, err
	}
	for _, n := range clusters {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Create provisions a cluster from the given config file and blocks until the
// control plane is ready or the wait bound expires. The polling itself is
// kind's own --wait implementation.
func (c *Client) Create(ctx context.Context, name, configPath string, wait time.Duration) error {
	return c.runner.RunStreaming(ctx, "kind", "create", "cluster",
		"--name", name,
		"--config", configPath,
		"--wait", wait.String())
}

// Delete removes the named cluster.
func (c *Client) Delete(ctx context.Context, name string) error {
	return c.runner.RunStreaming(ctx, "kind", "delete", "cluster", "--name", name)
}

// LoadImage pushes a locally built Docker image into the cluster's nodes.
func (c *Client) LoadImage(ctx context.Context, name, image string) error {
	return c.runner.RunStreaming(ctx, "kind", "load", "docker-image", image, "--name", name)
}

// parseClusterList splits `kind get clusters` stdout into cluster names.
// Assumption about the tool's output stability: kind prints one bare cluster
// name per line and nothing else on stdout (its "No kind clusters found"
// notice goes to stderr). Each line is trimmed and matched whole, so stray
// whitespace cannot produce a false existence hit.
func parseClusterList(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}
