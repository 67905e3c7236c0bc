package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/go-logr/logr"
)

// Executor performs the side effects of provisioning steps.
type Executor interface {
	// Run executes cmd and blocks until it exits.
	Run(ctx context.Context, cmd Command) error

	// MakeDirs creates each path (relative to root) including parents.
	MakeDirs(ctx context.Context, root string, paths []string) error
}

// OSExecutor runs commands as child processes sharing the given streams.
type OSExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSExecutor returns an executor wired to the parent's standard streams.
func NewOSExecutor() *OSExecutor {
	return &OSExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run implements Executor.
func (e *OSExecutor) Run(ctx context.Context, c Command) error {
	logr.FromContextOrDiscard(ctx).V(1).Info("running command", "cmd", c.String(), "dir", c.Dir)

	// #nosec G204 - program names come from the static package manager table
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	return nil
}

// MakeDirs implements Executor.
func (e *OSExecutor) MakeDirs(ctx context.Context, root string, paths []string) error {
	log := logr.FromContextOrDiscard(ctx)
	for _, p := range paths {
		full := filepath.Join(root, p)
		log.V(1).Info("creating directory", "path", full)
		if err := os.MkdirAll(full, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", full, err)
		}
	}
	return nil
}
