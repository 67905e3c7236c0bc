package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/rnsetup/internal/config"
	"github.com/imamik/rnsetup/internal/config/wizard"
	"github.com/imamik/rnsetup/internal/platform/shell"
	"github.com/imamik/rnsetup/internal/project"
	"github.com/imamik/rnsetup/internal/provisioning"
	"github.com/imamik/rnsetup/internal/ui/console"
	"github.com/imamik/rnsetup/internal/util/prerequisites"
)

// InitOptions holds the flag values of the init command.
type InitOptions struct {
	ParentDir      string
	Generator      string
	PackageManager string
	PresetPath     string
	Accessible     bool
	DryRun         bool
	MetricsFile    string
	SkipChecks     bool
}

// Factory function variables for init - can be replaced in tests.
var (
	// newPrinter returns the printer for user-facing output.
	newPrinter = console.Stdout

	// newPrompter returns the prompter used by the wizard.
	newPrompter = func(accessible bool) wizard.Prompter {
		return &wizard.HuhPrompter{
			In:         os.Stdin,
			Out:        os.Stdout,
			Accessible: accessible || !stdinIsTerminal(),
		}
	}

	// newExecutor returns the executor for provisioning side effects.
	newExecutor = func(dryRun bool, out io.Writer) shell.Executor {
		if dryRun {
			return &shell.DryRunExecutor{Out: out}
		}
		return shell.NewOSExecutor()
	}

	// newPlan returns the provisioning steps.
	newPlan = provisioning.DefaultPlan

	// checkPrerequisites checks the tools needed for a package manager.
	checkPrerequisites = prerequisites.CheckRequired

	// loadPreset reads a preset file.
	loadPreset = config.LoadPreset

	// runWizard collects a full request interactively.
	runWizard = wizard.Collect

	// collectName asks only for the project name.
	collectName = wizard.CollectName
)

// Init collects a project request and provisions it.
//
// Every provisioning failure is reported the same way: a single failure line
// followed by the returned error, which names the step that failed.
// Nothing that was already created is cleaned up.
func Init(ctx context.Context, opts InitOptions) error {
	log := logr.FromContextOrDiscard(ctx)
	out := newPrinter()

	var preset *config.Preset
	if opts.PresetPath != "" {
		p, err := loadPreset(opts.PresetPath)
		if err != nil {
			return err
		}
		preset = p
	}

	pmName := opts.PackageManager
	if preset != nil && preset.PackageManager != "" {
		pmName = preset.PackageManager
	}
	settings, err := config.NewSettings(opts.ParentDir, opts.Generator, pmName)
	if err != nil {
		return err
	}
	log.V(1).Info("settings resolved", "settings", settings.String())

	if !opts.SkipChecks && !opts.DryRun {
		if results := checkPrerequisites(settings.PackageManager.Name); results.HasErrors() {
			return results.Error()
		}
	}

	out.Banner("React Native Project Setup")
	if preset != nil {
		out.Info("Using preset %s", opts.PresetPath)
	}

	req, err := collectRequest(ctx, out, preset, opts.Accessible)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}
	log.V(1).Info("request collected", "name", req.Name.String(), "features", fmt.Sprint(req.Selected()), "folders", req.FolderStructure)

	metrics := provisioning.NewMetrics()
	observers := provisioning.MultiObserver{provisioning.NewLogObserver(log), metrics}
	if opts.DryRun {
		out.Section("Dry run: these commands would be executed")
	} else {
		observers = append(observers, provisioning.NewConsoleObserver(out))
	}

	pctx := provisioning.NewContext(ctx, req, settings, newExecutor(opts.DryRun, out.Writer()), observers)
	outcome := provisioning.NewPipeline(newPlan()...).Run(pctx)

	if opts.MetricsFile != "" {
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			log.Error(err, "failed to write metrics file", "path", opts.MetricsFile)
		}
	}

	if outcome.State != provisioning.StateSucceeded {
		log.V(1).Info("provisioning stopped", "state", outcome.State.String(), "step", outcome.FailedStep(), "executed", len(outcome.Executed))
		out.Fail("Error creating project")
		return fmt.Errorf("provisioning failed: %w", outcome.Err)
	}

	if opts.DryRun {
		out.Info("Dry run: nothing was executed.")
		return nil
	}

	printNextSteps(out, settings, req.Name)
	return nil
}

// collectRequest asks the questions a preset does not answer.
func collectRequest(ctx context.Context, out *console.Printer, preset *config.Preset, accessible bool) (project.Request, error) {
	prompter := newPrompter(accessible)
	if preset == nil {
		return runWizard(ctx, prompter, out)
	}

	var req project.Request
	preset.Apply(&req)

	if preset.Name != "" {
		name, err := project.ParseName(preset.Name)
		if err != nil {
			return project.Request{}, err
		}
		req.Name = name
		return req, nil
	}

	name, err := collectName(ctx, prompter, out)
	if err != nil {
		return project.Request{}, err
	}
	req.Name = name
	return req, nil
}

// printNextSteps prints the commands the user runs next. Nothing here is executed.
func printNextSteps(out *console.Printer, settings *config.Settings, name project.Name) {
	dir := settings.ProjectDir(name.String())
	pm := settings.PackageManager

	out.Plain("")
	out.Warn("If you are on Mac, run:")
	out.Warn("cd %s && npx pod-install", dir)
	out.Good("To run your project:")
	out.Good("cd %s && %s", dir, pm.RunScript("android"))
	out.Hint("For iOS: %s", pm.RunScript("ios"))
	out.Dim("App is ready! (っ◕‿◕)っ")
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
