package docker

import (
	"context"
	"fmt"

	"github.com/mkarlsen/kindctl/internal/shell"
)

// Client checks the local Docker daemon.
type Client struct {
	runner shell.Runner
}

// NewClient creates a Docker client over the given runner.
func NewClient(runner shell.Runner) *Client {
	return &Client{runner: runner}
}

// Ping verifies that the Docker daemon is reachable. A single attempt, no
// retry: every cluster operation needs a live daemon and should fail fast
// without one.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.runner.Output(ctx, "docker", "info", "--format", "{{.ServerVersion}}"); err != nil {
		return fmt.Errorf("docker daemon is not reachable (is Docker running?): %w", err)
	}
	return nil
}
