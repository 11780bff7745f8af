package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	listHeight       = 8
	detailLabelWidth = 12
	minWidth         = 60
	maxWidth         = 120
)

// clusterItem holds display data for a single kind kubeconfig context.
type clusterItem struct {
	context string // full kubeconfig context name, e.g. kind-local-dev
	cluster string // kind cluster name with the kind- prefix stripped
	current bool
}

// ClusterModel is the bubbletea model for interactive cluster context selection.
type ClusterModel struct {
	items        []clusterItem
	filtered     []clusterItem
	cursor       int
	offset       int
	search       string
	selected     string
	quitting     bool
	cancelled    bool
	termWidth    int
	contentWidth int
	colWidths    []int // [Context, Cluster, Active]
}

func newClusterModel(items []clusterItem) ClusterModel {
	m := ClusterModel{
		items:     items,
		filtered:  items,
		termWidth: 80,
	}
	m.calculateClusterWidths()
	return m
}

func (m *ClusterModel) calculateClusterWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < minWidth {
		m.contentWidth = minWidth
	}
	if m.contentWidth > maxWidth {
		m.contentWidth = maxWidth
	}

	// Compute minimum widths from actual content
	clusterW := runewidth.StringWidth("CLUSTER")
	activeW := runewidth.StringWidth("active")
	for _, item := range m.items {
		clusterW = max(clusterW, runewidth.StringWidth(item.cluster))
	}

	// cursor+marker(3) + context(dynamic) + sp(2) + cluster + sp(2) + active
	fixedW := 3 + 2 + clusterW + 2 + activeW
	contextW := m.contentWidth - fixedW
	if contextW < 10 {
		contextW = 10
	}

	m.colWidths = []int{contextW, clusterW, activeW}
}

// Init implements tea.Model.
func (m ClusterModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m ClusterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateClusterWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = m.filtered[m.cursor].context
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+listHeight {
					m.offset = m.cursor - listHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterClusters()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterClusters()
		}
	}

	return m, nil
}

func (m *ClusterModel) filterClusters() {
	if m.search == "" {
		m.filtered = m.items
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, item := range m.items {
			if strings.Contains(strings.ToLower(item.context), query) ||
				strings.Contains(strings.ToLower(item.cluster), query) {
				m.filtered = append(m.filtered, item)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
}

// View implements tea.Model.
func (m ClusterModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Search input
	searchLine := " > " + m.search
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(NameStyle.Render(padRight(searchLine, w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Empty line after search
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(strings.Repeat(" ", w))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Cluster list
	visibleEnd := m.offset + listHeight
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}
	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderClusterRow(i))
	}
	for i := visibleEnd; i < m.offset+listHeight; i++ {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(strings.Repeat(" ", w))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	// Empty line before separator
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(strings.Repeat(" ", w))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Separator
	sb.WriteString(BorderStyle.Render(LeftT))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Details panel
	sb.WriteString(m.renderClusterDetailsPanel())

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	// Status bar
	sb.WriteString(m.renderClusterStatusBar())

	return sb.String()
}

func (m ClusterModel) renderClusterRow(idx int) string {
	item := m.filtered[idx]
	w := m.contentWidth

	var sb strings.Builder
	sb.WriteString(BorderStyle.Render(Vertical))

	var line strings.Builder
	plainWidth := 0

	// 3-char prefix: space + cursor(>) + current-marker(*)
	cursor := " "
	if idx == m.cursor {
		cursor = ">"
	}
	marker := " "
	if item.current {
		marker = "*"
	}
	line.WriteString(" " + cursor + marker)
	plainWidth += 3

	// Context
	contextText := padRight(item.context, m.colWidths[0])
	if item.current {
		line.WriteString(RunningStyle.Render(contextText))
	} else {
		line.WriteString(ContextStyle.Render(contextText))
	}
	line.WriteString("  ")
	plainWidth += m.colWidths[0] + 2

	// Cluster
	clusterText := padRight(item.cluster, m.colWidths[1])
	line.WriteString(NameStyle.Render(clusterText))
	line.WriteString("  ")
	plainWidth += m.colWidths[1] + 2

	// Active marker
	active := "-"
	if item.current {
		active = "active"
	}
	activeText := padRight(active, m.colWidths[2])
	line.WriteString(MutedStyle.Render(activeText))
	plainWidth += m.colWidths[2]

	// Pad remaining space
	if plainWidth < w {
		line.WriteString(strings.Repeat(" ", w-plainWidth))
	}

	sb.WriteString(line.String())
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	return sb.String()
}

func (m ClusterModel) renderClusterDetailsPanel() string {
	var sb strings.Builder
	w := m.contentWidth

	// Header
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(HeaderStyle.Render(padRight(" Context Details", w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	// Underline
	sb.WriteString(BorderStyle.Render(Vertical))
	underline := " " + strings.Repeat("─", 20)
	sb.WriteString(MutedStyle.Render(padRight(underline, w)))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	if len(m.filtered) == 0 {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(MutedStyle.Render(padRight(" No contexts found", w)))
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
		// 3 empty lines to match filled panel height (3 detail rows + 1 trailing)
		for i := 0; i < 3; i++ {
			sb.WriteString(BorderStyle.Render(Vertical))
			sb.WriteString(strings.Repeat(" ", w))
			sb.WriteString(BorderStyle.Render(Vertical))
			sb.WriteString("\n")
		}
		return sb.String()
	}

	item := m.filtered[m.cursor]

	active := "no"
	activeStyle := MutedStyle
	if item.current {
		active = "yes"
		activeStyle = RunningStyle
	}

	details := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Context:", item.context, ContextStyle},
		{"Cluster:", item.cluster, NameStyle},
		{"Active:", active, activeStyle},
	}

	for _, d := range details {
		sb.WriteString(BorderStyle.Render(Vertical))

		labelText := padRight(d.label, detailLabelWidth)
		valueText := d.value
		maxValueWidth := w - 1 - detailLabelWidth
		if runewidth.StringWidth(valueText) > maxValueWidth {
			valueText = runewidth.Truncate(valueText, maxValueWidth, "...")
		}

		plainWidth := 1 + detailLabelWidth + runewidth.StringWidth(valueText)
		line := MutedStyle.Render(" "+labelText) + d.style.Render(valueText)
		if plainWidth < w {
			line += strings.Repeat(" ", w-plainWidth)
		}

		sb.WriteString(line)
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	// Trailing empty line
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString(strings.Repeat(" ", w))
	sb.WriteString(BorderStyle.Render(Vertical))
	sb.WriteString("\n")

	return sb.String()
}

func (m ClusterModel) renderClusterStatusBar() string {
	var sb strings.Builder
	w := m.contentWidth + 2

	countInfo := fmt.Sprintf("  %d/%d contexts", len(m.filtered), len(m.items))
	hintsPlain := "[Enter:select] [Esc:quit]"

	countWidth := runewidth.StringWidth(countInfo)
	hintsWidth := runewidth.StringWidth(hintsPlain)
	padding := w - countWidth - hintsWidth

	sb.WriteString(countInfo)
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(HintStyle.Render(hintsPlain))
	sb.WriteString("\n")

	return sb.String()
}

// SelectClusterContext runs the interactive selector TUI over kind kubeconfig
// contexts and returns the selected context name. The currently active
// context is pre-highlighted.
func SelectClusterContext(contexts []string, current string) (string, error) {
	if len(contexts) == 0 {
		return "", fmt.Errorf("no kind contexts available")
	}

	sorted := make([]string, len(contexts))
	copy(sorted, contexts)
	sort.Strings(sorted)

	items := make([]clusterItem, len(sorted))
	for i, name := range sorted {
		items[i] = clusterItem{
			context: name,
			cluster: strings.TrimPrefix(name, "kind-"),
			current: name == current,
		}
	}

	m := newClusterModel(items)

	// Pre-position cursor on the current context
	for i, item := range items {
		if item.current {
			m.cursor = i
			break
		}
	}

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(ClusterModel)
	if result.cancelled {
		return "", fmt.Errorf("selection cancelled")
	}

	return result.selected, nil
}
