package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/kindctl/internal/kubectl"
	"github.com/mkarlsen/kindctl/internal/shell"
	"github.com/mkarlsen/kindctl/internal/ui"
)

var useCmd = &cobra.Command{
	Use:   "use [context]",
	Short: "Switch the active kubectl context between kind clusters",
	Long: `Set the active kubeconfig context to one of the kind clusters.

The argument may be a kind cluster name or a full context name (the
kind- prefix is added when missing). With no argument, an interactive
selector opens over the kind contexts found in the kubeconfig.

Examples:
  kindctl use                # Pick a context interactively
  kindctl use local-dev      # Switch to kind-local-dev
  kindctl use kind-local-dev`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	kc := kubectl.NewClient(shell.NewRunner())

	target := ""
	if len(args) == 1 {
		target = args[0]
		if !strings.HasPrefix(target, "kind-") {
			target = "kind-" + target
		}
	} else {
		contexts, err := kc.Contexts(cmd.Context())
		if err != nil {
			return err
		}

		var kindContexts []string
		for _, name := range contexts {
			if strings.HasPrefix(name, "kind-") {
				kindContexts = append(kindContexts, name)
			}
		}
		if len(kindContexts) == 0 {
			fmt.Println("No kind contexts found in the kubeconfig.")
			fmt.Println()
			fmt.Println("Create a cluster with:")
			fmt.Println("  kindctl create")
			return nil
		}

		// Current context is best-effort; the selector works without one.
		current, _ := kc.CurrentContext(cmd.Context())

		target, err = ui.SelectClusterContext(kindContexts, current)
		if err != nil {
			return err
		}
	}

	if err := kc.UseContext(cmd.Context(), target); err != nil {
		return fmt.Errorf("failed to switch context to %q: %w", target, err)
	}

	fmt.Printf("%s Switched to context %s\n",
		ui.RunningStyle.Render("✓"), ui.ContextStyle.Render(target))
	return nil
}
