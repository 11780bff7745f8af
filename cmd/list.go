package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/kindctl/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all kind clusters in the Docker daemon",
	Long: `List every kind cluster known to the local Docker daemon, including
clusters not managed by this tool, with their kubeconfig contexts and
node readiness.

Examples:
  kindctl list
  kindctl ls`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	clusters, err := newManager().List(cmd.Context())
	if err != nil {
		return err
	}

	if len(clusters) == 0 {
		fmt.Println("No kind clusters found.")
		fmt.Println()
		fmt.Println("Create one with:")
		fmt.Println("  kindctl create")
		return nil
	}

	ui.PrintClusterTable(clusters)
	return nil
}
