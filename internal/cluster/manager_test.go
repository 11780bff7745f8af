package cluster

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/kindctl/internal/config"
)

const (
	pingCmd     = "docker info --format {{.ServerVersion}}"
	clustersCmd = "kind get clusters"
	createCmd   = "kind create cluster --name local-dev --config tools/kind-cluster-config.yaml --wait 5m0s"
	deleteCmd   = "kind delete cluster --name local-dev"
	contextCmd  = "kubectl config use-context kind-local-dev"
	infoCmd     = "kubectl cluster-info --context kind-local-dev"
	nodesCmd    = "kubectl get nodes --context kind-local-dev --no-headers"
)

// fakeRunner records every issued command and replies from scripted outputs.
// Outputs are queues so a command can answer differently across calls
// (e.g. the cluster list before and after a delete).
type fakeRunner struct {
	calls    []string
	outputs  map[string][]string
	failures map[string]error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs:  make(map[string][]string),
		failures: make(map[string]error),
	}
}

func (f *fakeRunner) record(name string, args []string) (string, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)

	if err, ok := f.failures[line]; ok {
		return "", err
	}

	queue := f.outputs[line]
	if len(queue) == 0 {
		return "", nil
	}
	out := queue[0]
	f.outputs[line] = queue[1:]
	return out, nil
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	return f.record(name, args)
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	_, err := f.record(name, args)
	return err
}

func (f *fakeRunner) RunStreaming(_ context.Context, name string, args ...string) error {
	_, err := f.record(name, args)
	return err
}

func (f *fakeRunner) called(line string) bool {
	for _, c := range f.calls {
		if c == line {
			return true
		}
	}
	return false
}

func (f *fakeRunner) indexOf(line string) int {
	for i, c := range f.calls {
		if c == line {
			return i
		}
	}
	return -1
}

func testSettings() config.Settings {
	return config.Settings{
		ClusterName: "local-dev",
		KindConfig:  "tools/kind-cluster-config.yaml",
		Wait:        "5m",
	}
}

func TestCreateProvisionsCluster(t *testing.T) {
	runner := newFakeRunner()
	m := NewManager(testSettings(), runner)

	res, err := m.Create(context.Background())
	require.NoError(t, err)
	assert.False(t, res.AlreadyExists)

	// Precondition, existence check, creation, context switch, in that order.
	assert.Equal(t, []string{pingCmd, clustersCmd, createCmd, contextCmd}, runner.calls)
}

func TestCreateIsIdempotent(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs[clustersCmd] = []string{"local-dev"}
	m := NewManager(testSettings(), runner)

	res, err := m.Create(context.Background())
	require.NoError(t, err)
	assert.True(t, res.AlreadyExists)
	assert.False(t, runner.called(createCmd), "no creation call for an existing cluster")
	assert.False(t, runner.called(contextCmd))
}

func TestCreateFailurePropagates(t *testing.T) {
	runner := newFakeRunner()
	runner.failures[createCmd] = errors.New("node image pull failed")
	m := NewManager(testSettings(), runner)

	_, err := m.Create(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local-dev")
	assert.Contains(t, err.Error(), "node image pull failed")
}

func TestDeleteRemovesCluster(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs[clustersCmd] = []string{"local-dev"}
	m := NewManager(testSettings(), runner)

	res, err := m.Delete(context.Background())
	require.NoError(t, err)
	assert.False(t, res.WasAbsent)
	assert.True(t, runner.called(deleteCmd))
}

func TestDeleteIsIdempotent(t *testing.T) {
	runner := newFakeRunner()
	m := NewManager(testSettings(), runner)

	res, err := m.Delete(context.Background())
	require.NoError(t, err)
	assert.True(t, res.WasAbsent)
	assert.False(t, runner.called(deleteCmd), "no deletion call for an absent cluster")
}

func TestRestartDeletesThenCreates(t *testing.T) {
	runner := newFakeRunner()
	// The cluster exists before the delete step and is gone before the
	// create step.
	runner.outputs[clustersCmd] = []string{"local-dev", ""}
	m := NewManager(testSettings(), runner)

	_, err := m.Restart(context.Background())
	require.NoError(t, err)

	deleteIdx := runner.indexOf(deleteCmd)
	createIdx := runner.indexOf(createCmd)
	require.GreaterOrEqual(t, deleteIdx, 0)
	require.GreaterOrEqual(t, createIdx, 0)
	assert.Less(t, deleteIdx, createIdx, "delete must run before create")
}

func TestRestartFailsWhenCreateFails(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs[clustersCmd] = []string{"local-dev", ""}
	runner.failures[createCmd] = errors.New("wait bound exceeded")
	m := NewManager(testSettings(), runner)

	_, err := m.Restart(context.Background())
	require.Error(t, err)
	assert.True(t, runner.called(deleteCmd), "delete step ran before the failing create")
}

func TestDaemonGateBlocksEveryOperation(t *testing.T) {
	ops := map[string]func(m *Manager, ctx context.Context) error{
		"create": func(m *Manager, ctx context.Context) error {
			_, err := m.Create(ctx)
			return err
		},
		"delete": func(m *Manager, ctx context.Context) error {
			_, err := m.Delete(ctx)
			return err
		},
		"restart": func(m *Manager, ctx context.Context) error {
			_, err := m.Restart(ctx)
			return err
		},
		"status": func(m *Manager, ctx context.Context) error {
			_, err := m.Status(ctx)
			return err
		},
		"list": func(m *Manager, ctx context.Context) error {
			_, err := m.List(ctx)
			return err
		},
		"load": func(m *Manager, ctx context.Context) error {
			return m.LoadImage(ctx, "myapp:dev")
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			runner := newFakeRunner()
			runner.failures[pingCmd] = errors.New("cannot connect to the Docker daemon")
			m := NewManager(testSettings(), runner)

			err := op(m, context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "docker daemon is not reachable")

			for _, call := range runner.calls {
				assert.True(t, strings.HasPrefix(call, "docker "),
					"no kind/kubectl call after a failed daemon check, got %q", call)
			}
		})
	}
}

func TestStatusWhenAbsent(t *testing.T) {
	runner := newFakeRunner()
	m := NewManager(testSettings(), runner)

	st, err := m.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, st.Exists)
	assert.Equal(t, "local-dev", st.Name)
	assert.Equal(t, "kind-local-dev", st.Context)
	assert.False(t, runner.called(infoCmd))
	assert.False(t, runner.called(nodesCmd))
}

func TestStatusReportsNodes(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs[clustersCmd] = []string{"local-dev"}
	runner.outputs[infoCmd] = []string{"Kubernetes control plane is running at https://127.0.0.1:39281"}
	runner.outputs[nodesCmd] = []string{"local-dev-control-plane   Ready   control-plane   5m   v1.31.0"}
	m := NewManager(testSettings(), runner)

	st, err := m.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Exists)
	assert.Contains(t, st.ClusterInfo, "control plane is running")
	require.Len(t, st.Nodes, 1)
	assert.Equal(t, "local-dev-control-plane", st.Nodes[0].Name)
	assert.True(t, st.Nodes[0].IsReady())
}

func TestStatusSubCallsAreBestEffort(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs[clustersCmd] = []string{"local-dev"}
	runner.failures[infoCmd] = errors.New("connection refused")
	runner.failures[nodesCmd] = errors.New("connection refused")
	m := NewManager(testSettings(), runner)

	st, err := m.Status(context.Background())
	require.NoError(t, err, "info sub-call failures must not fail status")
	assert.True(t, st.Exists)
	assert.Empty(t, st.ClusterInfo)
	assert.Empty(t, st.Nodes)
}

func TestListCollectsAllClusters(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs[clustersCmd] = []string{"local-dev\nscratch"}
	runner.outputs[nodesCmd] = []string{"local-dev-control-plane   Ready   control-plane   5m   v1.31.0"}
	m := NewManager(testSettings(), runner)

	clusters, err := m.List(context.Background())
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	assert.Equal(t, "local-dev", clusters[0].Name)
	assert.Equal(t, "kind-local-dev", clusters[0].Context)
	assert.Equal(t, "scratch", clusters[1].Name)
	require.Len(t, clusters[0].Nodes, 1)
}

func TestLoadImageRequiresCluster(t *testing.T) {
	runner := newFakeRunner()
	m := NewManager(testSettings(), runner)

	err := m.LoadImage(context.Background(), "myapp:dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
	assert.False(t, runner.called("kind load docker-image myapp:dev --name local-dev"))
}

func TestLoadImage(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs[clustersCmd] = []string{"local-dev"}
	m := NewManager(testSettings(), runner)

	err := m.LoadImage(context.Background(), "myapp:dev")
	require.NoError(t, err)
	assert.True(t, runner.called("kind load docker-image myapp:dev --name local-dev"))
}
