package provisioning

import (
	"path"

	"github.com/imamik/rnsetup/internal/platform/shell"
	"github.com/imamik/rnsetup/internal/project"
)

// Step names.
const (
	StepGenerate = "generate project"
	StepFolders  = "create folder structure"
)

// DefaultPlan returns every step in execution order.
// Steps after the first only depend on the project directory existing.
func DefaultPlan() []Step {
	steps := []Step{GenerateStep{}}
	for _, f := range project.Features() {
		steps = append(steps, InstallStep{Feature: f})
	}
	return append(steps, FoldersStep{})
}

// GenerateStep creates the base project with the external generator.
type GenerateStep struct{}

// Name implements Step.
func (GenerateStep) Name() string { return StepGenerate }

// Title implements Step.
func (GenerateStep) Title() string { return "Creating project..." }

// Completed implements completionReporter.
func (GenerateStep) Completed() string { return "Project created successfully!" }

// Enabled implements Step. Generation always runs.
func (GenerateStep) Enabled(project.Request) bool { return true }

// Run implements Step.
func (GenerateStep) Run(ctx *Context) error {
	return ctx.Exec.Run(ctx, GenerateCommand(ctx))
}

// GenerateCommand is "npx <generator> init <name>" run in the parent directory.
func GenerateCommand(ctx *Context) shell.Command {
	return shell.New(ctx.Settings.ParentDir, "npx", ctx.Settings.Generator, "init", ctx.Request.Name.String())
}

// InstallStep installs the packages of one add-on inside the project.
type InstallStep struct {
	Feature project.Feature
}

// Name implements Step.
func (s InstallStep) Name() string { return "install " + string(s.Feature) }

// Title implements Step.
func (s InstallStep) Title() string { return "Installing " + s.Feature.Label() + "..." }

// Enabled implements Step.
func (s InstallStep) Enabled(req project.Request) bool { return req.Wants(s.Feature) }

// Run implements Step.
func (s InstallStep) Run(ctx *Context) error {
	return ctx.Exec.Run(ctx, s.Command(ctx))
}

// Command is the package manager invocation for the add-on.
func (s InstallStep) Command(ctx *Context) shell.Command {
	pm := ctx.Settings.PackageManager
	return shell.New(ctx.ProjectDir(), pm.Name, pm.InstallArgs(s.Feature.Packages())...)
}

// FoldersStep creates project.FolderLayout under project.SourceRoot.
type FoldersStep struct{}

// Name implements Step.
func (FoldersStep) Name() string { return StepFolders }

// Title implements Step.
func (FoldersStep) Title() string { return "Creating folder structure..." }

// Enabled implements Step.
func (FoldersStep) Enabled(req project.Request) bool { return req.FolderStructure }

// Run implements Step.
func (FoldersStep) Run(ctx *Context) error {
	return ctx.Exec.MakeDirs(ctx, ctx.ProjectDir(), FolderPaths())
}

// FolderPaths returns the layout as slash-separated paths relative to the project.
func FolderPaths() []string {
	paths := make([]string, len(project.FolderLayout))
	for i, d := range project.FolderLayout {
		paths[i] = path.Join(project.SourceRoot, d)
	}
	return paths
}
