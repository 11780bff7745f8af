package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner abstracts execution of external CLI tools so callers can be tested
// without docker, kind, or kubectl installed.
type Runner interface {
	// Output runs the command and returns its stdout, trimmed.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// Run runs the command, discarding its output.
	Run(ctx context.Context, name string, args ...string) error

	// RunStreaming runs the command with stdin, stdout and stderr attached to
	// the current process, so the external tool's diagnostics reach the user
	// verbatim.
	RunStreaming(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		// Output captures stderr in the ExitError; surface the tool's own
		// diagnostic text instead of a bare exit status.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
				return "", fmt.Errorf("%s: %w: %s", commandLine(name, args), err, msg)
			}
		}
		return "", fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		return fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	return nil
}

func (execRunner) RunStreaming(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	return nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
