package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/rnsetup/cmd/rnsetup/handlers"
	"github.com/imamik/rnsetup/internal/config"
)

// Doctor returns the command for checking the local toolchain.
//
// Optional flags:
//
//	--package-manager, -m: Package manager whose binary must be present (default "npm")
func Doctor() *cobra.Command {
	var packageManager string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the required tools are installed",
		Long: `Check that the tools rnsetup shells out to are installed.

Required:
  - npx, which runs the project generator
  - the selected package manager

Optional:
  - adb, for running on Android
  - pod, for running on iOS (macOS only)

Examples:
  # Check for npm
  rnsetup doctor

  # Check for yarn instead
  rnsetup doctor -m yarn`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), packageManager)
		},
	}

	cmd.Flags().StringVarP(&packageManager, "package-manager", "m", config.DefaultPackageManager, "Package manager to check for")
	_ = cmd.RegisterFlagCompletionFunc("package-manager", packageManagerCompletion)

	return cmd
}
