package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/imamik/rnsetup/internal/config/wizard"
	"github.com/imamik/rnsetup/internal/platform/shell"
	"github.com/imamik/rnsetup/internal/project"
	"github.com/imamik/rnsetup/internal/ui/console"
	"github.com/imamik/rnsetup/internal/util/prerequisites"
)

// fakeExecutor records commands and fails the first one containing failOn.
type fakeExecutor struct {
	commands []shell.Command
	dirs     []string
	failOn   string
}

func (f *fakeExecutor) Run(_ context.Context, c shell.Command) error {
	f.commands = append(f.commands, c)
	if f.failOn != "" && strings.Contains(c.String(), f.failOn) {
		return errors.New("exit status 1")
	}
	return nil
}

func (f *fakeExecutor) MakeDirs(_ context.Context, root string, paths []string) error {
	f.dirs = append(f.dirs, root)
	return nil
}

// silentPrompter fails every question; handlers under test never reach it
// unless the wizard functions are left unreplaced.
type silentPrompter struct{}

func (silentPrompter) Input(context.Context, wizard.InputPrompt) (string, error) {
	return "", errors.New("unexpected prompt")
}

func (silentPrompter) Select(context.Context, wizard.SelectPrompt) (string, error) {
	return "", errors.New("unexpected prompt")
}

// handlerEnv swaps the handler factories for fakes and restores them on cleanup.
type handlerEnv struct {
	out  *bytes.Buffer
	exec *fakeExecutor

	wizardCalls int
	nameCalls   int
}

func setupHandlers(t *testing.T, req project.Request) *handlerEnv {
	t.Helper()

	env := &handlerEnv{out: &bytes.Buffer{}, exec: &fakeExecutor{}}

	origPrinter := newPrinter
	origPrompter := newPrompter
	origExecutor := newExecutor
	origCheck := checkPrerequisites
	origCheckAll := checkAllTools
	origWizard := runWizard
	origName := collectName
	t.Cleanup(func() {
		newPrinter = origPrinter
		newPrompter = origPrompter
		newExecutor = origExecutor
		checkPrerequisites = origCheck
		checkAllTools = origCheckAll
		runWizard = origWizard
		collectName = origName
	})

	newPrinter = func() *console.Printer { return console.New(env.out) }
	newPrompter = func(bool) wizard.Prompter { return silentPrompter{} }
	newExecutor = func(dryRun bool, out io.Writer) shell.Executor {
		if dryRun {
			return &shell.DryRunExecutor{Out: out}
		}
		return env.exec
	}
	checkPrerequisites = func(string) *prerequisites.CheckResults {
		return &prerequisites.CheckResults{}
	}
	runWizard = func(context.Context, wizard.Prompter, *console.Printer) (project.Request, error) {
		env.wizardCalls++
		return req, nil
	}
	collectName = func(context.Context, wizard.Prompter, *console.Printer) (project.Name, error) {
		env.nameCalls++
		return req.Name, nil
	}

	return env
}
