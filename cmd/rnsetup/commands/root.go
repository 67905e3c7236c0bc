// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/imamik/rnsetup/internal/util/logging"
)

// Root returns the root command for the rnsetup CLI.
//
// The persistent --verbose flag controls how much diagnostic logging is
// written to stderr; the logger travels to handlers through the context.
func Root() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:          "rnsetup",
		Short:        "Scaffold a React Native project with optional add-ons",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log := logging.New(os.Stderr, verbosity)
			cmd.SetContext(logr.NewContext(cmd.Context(), log))
		},
	}

	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	cmd.AddCommand(Init())
	cmd.AddCommand(Features())
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
