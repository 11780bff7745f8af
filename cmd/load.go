package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/kindctl/internal/ui"
)

var loadCmd = &cobra.Command{
	Use:   "load <image>",
	Short: "Load a local Docker image into the cluster",
	Long: `Push a locally built Docker image into the kind cluster's nodes so pods
can use it without a registry.

Examples:
  kindctl load myapp:dev`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	image := args[0]

	if err := newManager().LoadImage(cmd.Context(), image); err != nil {
		return err
	}

	fmt.Printf("%s Image %s loaded into cluster %s\n",
		ui.RunningStyle.Render("✓"), ui.NameStyle.Render(image),
		ui.NameStyle.Render(settings.ClusterName))
	return nil
}
