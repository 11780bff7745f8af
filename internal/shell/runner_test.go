package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputTrimsStdout(t *testing.T) {
	r := NewRunner()

	out, err := r.Output(context.Background(), "sh", "-c", "printf '  hello  \\n'")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestOutputIncludesToolStderrOnFailure(t *testing.T) {
	r := NewRunner()

	_, err := r.Output(context.Background(), "sh", "-c", "echo 'no such cluster' >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, err.Error(), "no such cluster", "the tool's diagnostic text must survive")
}

func TestOutputFailureWithoutStderr(t *testing.T) {
	r := NewRunner()

	_, err := r.Output(context.Background(), "sh", "-c", "exit 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 2")
}
