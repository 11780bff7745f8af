package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/kindctl/internal/ui"
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Delete and recreate the local kind cluster",
	Long: `Delete the local kind cluster and create it again from the configured
declarative config.

The two steps are not transactional: if the create step fails after a
successful delete, no cluster remains and the command exits non-zero;
re-run 'kindctl create' to provision it.

Examples:
  kindctl restart`,
	Args: cobra.NoArgs,
	RunE: runRestart,
}

func init() {
	rootCmd.AddCommand(restartCmd)
}

func runRestart(cmd *cobra.Command, args []string) error {
	if _, err := newManager().Restart(cmd.Context()); err != nil {
		return err
	}

	fmt.Printf("%s Cluster %s recreated\n",
		ui.RunningStyle.Render("✓"), ui.NameStyle.Render(settings.ClusterName))
	fmt.Println(ui.MutedStyle.Render("  kubectl context set to " + settings.Context()))
	return nil
}
