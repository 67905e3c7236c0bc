package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imamik/rnsetup/internal/config"
)

// packageManagerCompletion completes --package-manager values.
var packageManagerCompletion = cobra.FixedCompletions(config.PackageManagerNames(), cobra.ShellCompDirectiveNoFileComp)

// Completion returns the completion command for shell autocompletion.
//
// Package manager names are completed for --package-manager and preset
// files for --preset.
func Completion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for rnsetup.

Bash:
  $ source <(rnsetup completion bash)
  # Every session (Linux):
  $ rnsetup completion bash > /etc/bash_completion.d/rnsetup

Zsh:
  $ rnsetup completion zsh > "${fpath[1]}/_rnsetup"

Fish:
  $ rnsetup completion fish > ~/.config/fish/completions/rnsetup.fish

PowerShell:
  PS> rnsetup completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}

	return cmd
}
