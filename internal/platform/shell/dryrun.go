package shell

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
)

// DryRunExecutor prints what would be executed instead of executing it.
type DryRunExecutor struct {
	Out io.Writer
}

// Run implements Executor.
func (d *DryRunExecutor) Run(_ context.Context, c Command) error {
	_, err := fmt.Fprintf(d.Out, "  $ %s%s\n", dirPrefix(c.Dir), c)
	return err
}

// MakeDirs implements Executor.
func (d *DryRunExecutor) MakeDirs(_ context.Context, root string, paths []string) error {
	for _, p := range paths {
		if _, err := fmt.Fprintf(d.Out, "  $ mkdir -p %s\n", filepath.Join(root, p)); err != nil {
			return err
		}
	}
	return nil
}

func dirPrefix(dir string) string {
	if dir == "" || dir == "." {
		return ""
	}
	return fmt.Sprintf("(cd %s) ", dir)
}
