package provisioning

import "github.com/imamik/rnsetup/internal/project"

// Step defines the interface for a provisioning step.
type Step interface {
	// Name identifies the step in errors, logs and metrics.
	Name() string

	// Title is the progress text shown while the step runs.
	Title() string

	// Enabled reports whether the step applies to req.
	Enabled(req project.Request) bool

	// Run executes the step.
	Run(ctx *Context) error
}

// completionReporter is implemented by steps that announce their success.
type completionReporter interface {
	Completed() string
}
