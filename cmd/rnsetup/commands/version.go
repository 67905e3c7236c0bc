package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/rnsetup/internal/config"
)

// Build information, set by main from linker flags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo sets the version information from main.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Version returns the version command. Besides the build information it
// shows the generator init uses when --generator is not given.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rnsetup %s (commit %s, built %s)\n", version, commit, date)
			fmt.Fprintf(out, "  default generator: %s\n", config.DefaultGenerator)
		},
	}
}
