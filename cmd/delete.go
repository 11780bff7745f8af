package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/kindctl/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the local kind cluster",
	Long: `Delete the local kind cluster. There is no confirmation prompt.

Deleting a cluster that does not exist is a warning, not an error.

Examples:
  kindctl delete`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	res, err := newManager().Delete(cmd.Context())
	if err != nil {
		return err
	}

	if res.WasAbsent {
		fmt.Printf("%s Cluster %s does not exist, nothing to do\n",
			ui.WarnStyle.Render("!"), ui.NameStyle.Render(settings.ClusterName))
		return nil
	}

	fmt.Printf("%s Cluster %s deleted\n",
		ui.RunningStyle.Render("✓"), ui.NameStyle.Render(settings.ClusterName))
	return nil
}
