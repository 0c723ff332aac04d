package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a completion script for your shell. Besides commands and flags it
completes saved chart names for 'store get' and 'store delete', config keys,
and the fixed values of --format, --report, --style and --method.

  source <(chartspec completion bash)
  source <(chartspec completion zsh)
  chartspec completion fish | source

Add the line to your shell profile to keep it across sessions.`,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch root := cmd.Root(); args[0] {
		case "zsh":
			return root.GenZshCompletion(w)
		case "fish":
			return root.GenFishCompletion(w, true)
		case "powershell":
			return root.GenPowerShellCompletionWithDesc(w)
		default:
			return root.GenBashCompletionV2(w, true)
		}
	},
}

// fixedValues completes a flag or argument from a closed list.
func fixedValues(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeChartNames offers the names saved in the store for the first argument.
func completeChartNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	deps, err := buildDeps()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer deps.Close()
	st, err := deps.Store()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	recs, err := st.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, r := range recs {
		if strings.HasPrefix(r.Name, toComplete) {
			names = append(names, r.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(completionCmd)

	storeGetCmd.ValidArgsFunction = completeChartNames
	storeDeleteCmd.ValidArgsFunction = completeChartNames
	configSetCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return configKeys, cobra.ShellCompDirectiveNoFileComp
	}
}
