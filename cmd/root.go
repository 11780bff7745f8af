package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkarlsen/kindctl/internal/cluster"
	"github.com/mkarlsen/kindctl/internal/config"
	"github.com/mkarlsen/kindctl/internal/shell"
)

// settings is the configuration value object, constructed once in initConfig
// and passed into every operation.
var settings config.Settings

var rootCmd = &cobra.Command{
	Use:   "kindctl",
	Short: "Manage a local kind Kubernetes development cluster",
	Long: `kindctl manages the lifecycle of a named local Kubernetes cluster
running inside Docker via kind. Cluster name, config file and wait timeout
come from ~/.kindctl.yaml or KINDCTL_* environment variables, so every
command is safe to re-run from setup scripts without arguments.

Lifecycle Commands:
  kindctl create             # Create the cluster (no-op if it exists)
  kindctl delete             # Delete the cluster (no-op if absent)
  kindctl restart            # Delete then recreate the cluster
  kindctl status             # Show cluster state and nodes

Workflow Commands:
  kindctl list               # List all kind clusters in the daemon
  kindctl use                # Switch kubectl context between kind clusters
  kindctl load <image>       # Load a local Docker image into the cluster
  kindctl config init        # Write the declarative cluster config file`,
	// Errors are reported once, by Execute; only a bad sub-command gets the
	// usage text, so a usage error is distinguishable from a tool failure.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes the error line and, for an unrecognized sub-command,
// re-prints the usage text.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, err)
	if strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprint(w, rootCmd.UsageString())
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// Read from environment variables
	viper.SetEnvPrefix("KINDCTL")
	viper.AutomaticEnv()

	loaded, err := config.Load()
	if err != nil {
		// A broken settings file falls back to the defaults; the warning
		// tells the user which file to fix.
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		loaded = config.DefaultSettings()
	}
	settings = loaded

	// Priority: KINDCTL_* env > ~/.kindctl.yaml > built-in defaults
	if v := viper.GetString("cluster"); v != "" {
		settings.ClusterName = v
	}
	if v := viper.GetString("kind_config"); v != "" {
		settings.KindConfig = v
	}
	if v := viper.GetString("wait"); v != "" {
		settings.Wait = v
	}
}

// newManager builds the lifecycle manager over the real external tools.
func newManager() *cluster.Manager {
	return cluster.NewManager(settings, shell.NewRunner())
}
