package provisioning

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imamik/rnsetup/internal/config"
	"github.com/imamik/rnsetup/internal/platform/shell"
	"github.com/imamik/rnsetup/internal/project"
)

// action is one side effect recorded by recordingExecutor.
type action struct {
	Kind  string // "run" or "mkdir"
	Dir   string
	Line  string
	Paths []string
}

// recordingExecutor records actions and fails those whose line contains failOn.
type recordingExecutor struct {
	actions []action
	failOn  string
}

func (r *recordingExecutor) Run(_ context.Context, c shell.Command) error {
	r.actions = append(r.actions, action{Kind: "run", Dir: c.Dir, Line: c.String()})
	if r.failOn != "" && strings.Contains(c.String(), r.failOn) {
		return errors.New("exit status 1")
	}
	return nil
}

func (r *recordingExecutor) MakeDirs(_ context.Context, root string, paths []string) error {
	r.actions = append(r.actions, action{Kind: "mkdir", Dir: root, Paths: paths})
	if r.failOn == "mkdir" {
		return errors.New("permission denied")
	}
	return nil
}

// recordingObserver collects events.
type recordingObserver struct {
	events []Event
}

func (o *recordingObserver) Event(e Event) {
	o.events = append(o.events, e)
}

func (o *recordingObserver) types() []EventType {
	out := make([]EventType, len(o.events))
	for i, e := range o.events {
		out[i] = e.Type
	}
	return out
}

func newTestContext(t *testing.T, req project.Request, exec shell.Executor, obs Observer) *Context {
	t.Helper()
	settings, err := config.NewSettings(".", config.DefaultGenerator, "npm")
	require.NoError(t, err)
	return NewContext(context.Background(), req, settings, exec, obs)
}
