package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/kindctl/internal/ui"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the local kind cluster",
	Long: `Create the local kind cluster if it does not already exist, wait for
the control plane to become ready, and point the active kubectl context
at it.

Creating a cluster that already exists is a warning, not an error, so
this command is safe to call repeatedly from setup scripts.

Examples:
  kindctl create`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	res, err := newManager().Create(cmd.Context())
	if err != nil {
		return err
	}

	if res.AlreadyExists {
		fmt.Printf("%s Cluster %s already exists, nothing to do\n",
			ui.WarnStyle.Render("!"), ui.NameStyle.Render(settings.ClusterName))
		return nil
	}

	fmt.Printf("%s Cluster %s is ready\n",
		ui.RunningStyle.Render("✓"), ui.NameStyle.Render(settings.ClusterName))
	fmt.Println(ui.MutedStyle.Render("  kubectl context set to " + settings.Context()))
	return nil
}
