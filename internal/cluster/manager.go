package cluster

import (
	"context"
	"fmt"

	"github.com/mkarlsen/kindctl/internal/config"
	"github.com/mkarlsen/kindctl/internal/docker"
	"github.com/mkarlsen/kindctl/internal/kind"
	"github.com/mkarlsen/kindctl/internal/kubectl"
	"github.com/mkarlsen/kindctl/internal/shell"
	"github.com/mkarlsen/kindctl/pkg/types"
)

// Manager drives the lifecycle of the configured kind cluster. It keeps no
// state of its own: existence is always a live query against the kind CLI,
// and the Docker daemon must be reachable before any operation runs.
type Manager struct {
	settings config.Settings
	docker   *docker.Client
	kind     *kind.Client
	kubectl  *kubectl.Client
}

// NewManager creates a Manager over the given settings and runner.
func NewManager(settings config.Settings, runner shell.Runner) *Manager {
	return &Manager{
		settings: settings,
		docker:   docker.NewClient(runner),
		kind:     kind.NewClient(runner),
		kubectl:  kubectl.NewClient(runner),
	}
}

// CreateResult reports what Create actually did.
type CreateResult struct {
	AlreadyExists bool
}

// DeleteResult reports what Delete actually did.
type DeleteResult struct {
	WasAbsent bool
}

// Status is a point-in-time snapshot of the configured cluster. ClusterInfo
// and Nodes are best-effort: they stay empty when the underlying kubectl
// calls fail.
type Status struct {
	Exists      bool
	Name        string
	Context     string
	ClusterInfo string
	Nodes       []types.Node
}

// Create provisions the configured cluster unless it already exists, then
// points the active kubectl context at it. Repeated invocations are safe:
// the second call is a no-op reported via CreateResult.AlreadyExists, so
// setup scripts can run this without pre-checking state.
func (m *Manager) Create(ctx context.Context) (CreateResult, error) {
	if err := m.docker.Ping(ctx); err != nil {
		return CreateResult{}, err
	}

	exists, err := m.kind.Exists(ctx, m.settings.ClusterName)
	if err != nil {
		return CreateResult{}, err
	}
	if exists {
		return CreateResult{AlreadyExists: true}, nil
	}

	if err := m.kind.Create(ctx, m.settings.ClusterName, m.settings.KindConfig, m.settings.WaitTimeout()); err != nil {
		// No cleanup of partial state; kind owns the atomicity of creation.
		return CreateResult{}, fmt.Errorf("failed to create cluster %q: %w", m.settings.ClusterName, err)
	}

	if err := m.kubectl.UseContext(ctx, m.settings.Context()); err != nil {
		return CreateResult{}, fmt.Errorf("cluster created, but switching kubectl context failed: %w", err)
	}

	return CreateResult{}, nil
}

// Delete removes the configured cluster if it exists. Deleting an absent
// cluster is a no-op reported via DeleteResult.WasAbsent, not an error.
func (m *Manager) Delete(ctx context.Context) (DeleteResult, error) {
	if err := m.docker.Ping(ctx); err != nil {
		return DeleteResult{}, err
	}

	exists, err := m.kind.Exists(ctx, m.settings.ClusterName)
	if err != nil {
		return DeleteResult{}, err
	}
	if !exists {
		return DeleteResult{WasAbsent: true}, nil
	}

	if err := m.kind.Delete(ctx, m.settings.ClusterName); err != nil {
		return DeleteResult{}, fmt.Errorf("failed to delete cluster %q: %w", m.settings.ClusterName, err)
	}

	return DeleteResult{}, nil
}

// Restart deletes and recreates the cluster, sequentially and not
// transactionally: if create fails after a successful delete, the net state
// is no cluster and the error is returned for the caller to surface.
func (m *Manager) Restart(ctx context.Context) (CreateResult, error) {
	if _, err := m.Delete(ctx); err != nil {
		return CreateResult{}, err
	}
	return m.Create(ctx)
}

// Status queries existence and, when the cluster is present, gathers the
// cluster-info banner and node list. The info gathering is best-effort: a
// failed kubectl sub-call leaves its field empty without failing Status.
func (m *Manager) Status(ctx context.Context) (Status, error) {
	if err := m.docker.Ping(ctx); err != nil {
		return Status{}, err
	}

	st := Status{
		Name:    m.settings.ClusterName,
		Context: m.settings.Context(),
	}

	exists, err := m.kind.Exists(ctx, m.settings.ClusterName)
	if err != nil {
		return Status{}, err
	}
	st.Exists = exists
	if !exists {
		return st, nil
	}

	if info, err := m.kubectl.ClusterInfo(ctx, st.Context); err == nil {
		st.ClusterInfo = info
	}
	if nodes, err := m.kubectl.Nodes(ctx, st.Context); err == nil {
		st.Nodes = nodes
	}

	return st, nil
}

// List returns every kind cluster known to the daemon, with best-effort node
// lists.
func (m *Manager) List(ctx context.Context) ([]types.Cluster, error) {
	if err := m.docker.Ping(ctx); err != nil {
		return nil, err
	}

	names, err := m.kind.Clusters(ctx)
	if err != nil {
		return nil, err
	}

	clusters := make([]types.Cluster, 0, len(names))
	for _, name := range names {
		c := types.Cluster{Name: name, Context: "kind-" + name}
		if nodes, err := m.kubectl.Nodes(ctx, c.Context); err == nil {
			c.Nodes = nodes
		}
		clusters = append(clusters, c)
	}

	return clusters, nil
}

// LoadImage pushes a locally built Docker image into the configured cluster.
func (m *Manager) LoadImage(ctx context.Context, image string) error {
	if err := m.docker.Ping(ctx); err != nil {
		return err
	}

	exists, err := m.kind.Exists(ctx, m.settings.ClusterName)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("cluster %q does not exist; run 'kindctl create' first", m.settings.ClusterName)
	}

	if err := m.kind.LoadImage(ctx, m.settings.ClusterName, image); err != nil {
		return fmt.Errorf("failed to load image %q: %w", image, err)
	}

	return nil
}
