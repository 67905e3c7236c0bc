package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/rnsetup/cmd/rnsetup/handlers"
	"github.com/imamik/rnsetup/internal/config"
)

// Init returns the command for interactively creating a React Native project.
//
// Flags:
//
//	--dir, -C: Directory the project is created in (default ".")
//	--package-manager, -m: Package manager used to install add-ons (default "npm")
//	--generator: npx package that generates the project
//	--preset, -p: YAML file answering the wizard questions
//	--accessible: Plain line-based prompts instead of the interactive UI
//	--dry-run: Print the commands instead of executing them
//	--metrics-file: Write Prometheus textfile metrics after the run
//	--skip-checks: Do not check for npx and the package manager first
func Init() *cobra.Command {
	var opts handlers.InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a React Native project",
		Long: `Interactively create a React Native project.

This command asks for a project name in camelCase and then
asks about each optional add-on:

  - React Navigation
  - Stack, Bottom Tabs and Drawer navigators
  - Axios
  - A src/ folder structure

The project is generated with the React Native community CLI,
after which the selected packages are installed one by one.
The first failing step stops the run.

Use --preset to answer the questions from a YAML file, and
--dry-run to see the commands without running them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ParentDir, "dir", "C", ".", "Directory to create the project in")
	cmd.Flags().StringVarP(&opts.PackageManager, "package-manager", "m", config.DefaultPackageManager, "Package manager used to install add-ons")
	cmd.Flags().StringVar(&opts.Generator, "generator", config.DefaultGenerator, "npx package that generates the project")
	cmd.Flags().StringVarP(&opts.PresetPath, "preset", "p", "", "YAML preset answering the wizard questions")
	cmd.Flags().BoolVar(&opts.Accessible, "accessible", false, "Use plain line-based prompts")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the commands without executing them")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	cmd.Flags().BoolVar(&opts.SkipChecks, "skip-checks", false, "Skip the prerequisite tool checks")

	_ = cmd.RegisterFlagCompletionFunc("package-manager", packageManagerCompletion)
	_ = cmd.MarkFlagFilename("preset", "yaml", "yml")

	return cmd
}
