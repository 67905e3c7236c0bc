package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/rnsetup/cmd/rnsetup/handlers"
)

// Features returns the command listing the available add-ons.
func Features() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List the add-ons init can install",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Features()
		},
	}
}
