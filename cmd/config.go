package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/kindctl/internal/config"
	"github.com/mkarlsen/kindctl/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the declarative cluster config",
	Long: `Inspect and materialize the declarative kind cluster config: a single
control-plane node with the configured host port mappings.

The lifecycle commands never parse this file; they only pass its path
to kind.

Examples:
  kindctl config init
  kindctl config show
  kindctl config path`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the cluster config file",
	Long: `Write the declarative kind cluster config to the configured path,
creating parent directories as needed. An existing file is overwritten.

Examples:
  kindctl config init`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the cluster config",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cluster config path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteKindConfig(settings); err != nil {
		return err
	}

	fmt.Printf("%s Cluster config written to %s\n",
		ui.RunningStyle.Render("✓"), ui.NameStyle.Render(settings.KindConfig))
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := config.RenderKindConfig(settings)
	if err != nil {
		return err
	}

	fmt.Print(string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(settings.KindConfig)
	return nil
}
