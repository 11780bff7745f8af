package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/kindctl/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the local kind cluster",
	Long: `Display whether the local kind cluster exists, and if so its kubeconfig
context, cluster-info banner and node list.

The cluster-info and node sub-queries are best-effort: when one of them
fails, status still reports the cluster as running.

Examples:
  kindctl status`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, err := newManager().Status(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println("Cluster Status")
	fmt.Println(ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Println()

	fmt.Printf("Cluster:  %s\n", ui.NameStyle.Render(st.Name))

	if !st.Exists {
		fmt.Printf("State:    %s\n", ui.StoppedStyle.Render("○ not running"))
		fmt.Println()
		fmt.Println("No cluster found. Create one with:")
		fmt.Println("  kindctl create")
		return nil
	}

	fmt.Printf("State:    %s\n", ui.RunningStyle.Render("● running"))
	fmt.Printf("Context:  %s\n", ui.ContextStyle.Render(st.Context))

	if st.ClusterInfo != "" {
		fmt.Println()
		fmt.Println(st.ClusterInfo)
	}

	if len(st.Nodes) > 0 {
		fmt.Println()
		fmt.Printf("%s\n", ui.HeaderStyle.Render("Nodes"))
		for i := range st.Nodes {
			n := &st.Nodes[i]
			marker := ui.RunningStyle.Render("●")
			if !n.IsReady() {
				marker = ui.WarnStyle.Render("◐")
			}
			fmt.Printf("  %s %-30s %-10s %-16s %s\n",
				marker, n.Name, n.Status, n.Roles, ui.MutedStyle.Render(n.Version))
		}
	}

	return nil
}
