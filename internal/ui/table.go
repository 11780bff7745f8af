package ui

import (
	"fmt"
	"strings"

	pkgtypes "github.com/mkarlsen/kindctl/pkg/types"
)

// Column widths: Name, Context, Nodes, State
var clusterColumnWidths = []int{22, 26, 7, 12}

// PrintClusterTable prints kind clusters in a styled box table
func PrintClusterTable(clusters []pkgtypes.Cluster) {
	headers := []string{"Name", "Context", "Nodes", "State"}

	var sb strings.Builder

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	for i, w := range clusterColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(clusterColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(TopT))
		}
	}
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		cell := fmt.Sprintf(" %s ", padRight(h, clusterColumnWidths[i]))
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	sb.WriteString(BorderStyle.Render(LeftT))
	for i, w := range clusterColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(clusterColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(Cross))
		}
	}
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Data rows
	for i := range clusters {
		c := &clusters[i]
		sb.WriteString(BorderStyle.Render(Vertical))

		cell := fmt.Sprintf(" %s ", padRight(c.Name, clusterColumnWidths[0]))
		sb.WriteString(NameStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = fmt.Sprintf(" %s ", padRight(c.Context, clusterColumnWidths[1]))
		sb.WriteString(ContextStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		nodes := "-"
		if len(c.Nodes) > 0 {
			nodes = fmt.Sprintf("%d/%d", c.ReadyNodes(), len(c.Nodes))
		}
		cell = fmt.Sprintf(" %s ", padRight(nodes, clusterColumnWidths[2]))
		sb.WriteString(MutedStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString(formatClusterState(c, clusterColumnWidths[3]))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	for i, w := range clusterColumnWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(clusterColumnWidths)-1 {
			sb.WriteString(BorderStyle.Render(BottomT))
		}
	}
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	fmt.Print(sb.String())

	fmt.Printf("  %d clusters\n", len(clusters))
}

func formatClusterState(c *pkgtypes.Cluster, width int) string {
	// A kind cluster listed by the daemon is running; degrade the marker when
	// some of its nodes are not Ready.
	indicator := "●"
	style := RunningStyle
	state := "running"
	if len(c.Nodes) > 0 && c.ReadyNodes() < len(c.Nodes) {
		indicator = "◐"
		style = WarnStyle
		state = "degraded"
	}

	text := fmt.Sprintf(" %s %-*s ", indicator, width-3, state)
	return style.Render(text)
}
