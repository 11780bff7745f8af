package kubectl

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkarlsen/kindctl/internal/shell"
	"github.com/mkarlsen/kindctl/pkg/types"
)

// Client wraps the kubectl CLI for context management and read-only cluster
// introspection.
type Client struct {
	runner shell.Runner
}

// NewClient creates a kubectl client over the given runner.
func NewClient(runner shell.Runner) *Client {
	return &Client{runner: runner}
}

// UseContext activates the given kubeconfig context.
func (c *Client) UseContext(ctx context.Context, kubeContext string) error {
	return c.runner.Run(ctx, "kubectl", "config", "use-context", kubeContext)
}

// CurrentContext returns the active kubeconfig context name.
func (c *Client) CurrentContext(ctx context.Context) (string, error) {
	return c.runner.Output(ctx, "kubectl", "config", "current-context")
}

// Contexts returns all kubeconfig context names.
func (c *Client) Contexts(ctx context.Context) ([]string, error) {
	out, err := c.runner.Output(ctx, "kubectl", "config", "get-contexts", "-o", "name")
	if err != nil {
		return nil, fmt.Errorf("failed to list kubeconfig contexts: %w", err)
	}

	var contexts []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			contexts = append(contexts, name)
		}
	}
	return contexts, nil
}

// ClusterInfo returns the cluster-info banner for the given context.
func (c *Client) ClusterInfo(ctx context.Context, kubeContext string) (string, error) {
	return c.runner.Output(ctx, "kubectl", "cluster-info", "--context", kubeContext)
}

// Nodes returns the node list for the given context.
func (c *Client) Nodes(ctx context.Context, kubeContext string) ([]types.Node, error) {
	out, err := c.runner.Output(ctx, "kubectl", "get", "nodes", "--context", kubeContext, "--no-headers")
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	return parseNodes(out), nil
}

// parseNodes parses `kubectl get nodes --no-headers` rows of the form
// NAME STATUS ROLES AGE VERSION. Rows with fewer columns are skipped.
func parseNodes(out string) []types.Node {
	var nodes []types.Node
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		nodes = append(nodes, types.Node{
			Name:    fields[0],
			Status:  fields[1],
			Roles:   fields[2],
			Age:     fields[3],
			Version: fields[4],
		})
	}
	return nodes
}
