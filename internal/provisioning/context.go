package provisioning

import (
	"context"

	"github.com/imamik/rnsetup/internal/config"
	"github.com/imamik/rnsetup/internal/platform/shell"
	"github.com/imamik/rnsetup/internal/project"
)

// Context wraps all dependencies needed by a provisioning step.
type Context struct {
	context.Context
	Request  project.Request
	Settings *config.Settings
	Exec     shell.Executor
	Observer Observer
}

// NewContext creates a new provisioning context.
// A nil observer discards all events.
func NewContext(
	ctx context.Context,
	req project.Request,
	settings *config.Settings,
	exec shell.Executor,
	observer Observer,
) *Context {
	if observer == nil {
		observer = MultiObserver{}
	}
	return &Context{
		Context:  ctx,
		Request:  req,
		Settings: settings,
		Exec:     exec,
		Observer: observer,
	}
}

// ProjectDir is the directory created by the generator.
func (c *Context) ProjectDir() string {
	return c.Settings.ProjectDir(c.Request.Name.String())
}
