package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	markerWidth   = 2
	nameColWidth  = 16
	selectedGlyph = "●"
)

// renderRosterTable renders the filtered rows with Name and Type columns.
func (m Model) renderRosterTable(width, height int) string {
	styles := m.theme.Styles()

	if !m.session.Loaded {
		return styles.MutedText.Render("No data yet. Press ") + styles.Key.Render("r") + styles.MutedText.Render(" to fetch.")
	}

	typeWidth := max(0, width-markerWidth-nameColWidth-1)
	header := strings.Repeat(" ", markerWidth) +
		fitCell("Name", nameColWidth) + " " +
		fitCell("Type", typeWidth)

	lines := []string{styles.Heading.Render(header)}

	visible := m.session.Visible()
	start, end := visibleWindow(len(visible), m.cursor, height-1)
	for i := start; i < end; i++ {
		c := visible[i]

		marker := strings.Repeat(" ", markerWidth)
		if sel := m.session.Selected; sel != nil && sel.ID == c.ID && sel.Name.English == c.Name.English {
			marker = fitCell(selectedGlyph, markerWidth)
		}
		name := fitCell(c.Name.English, nameColWidth)
		types := fitCell(c.TypeLabel(), typeWidth)

		if i == m.cursor && m.focus == PaneTable {
			lines = append(lines, styles.Cursor.Width(width).Render(marker+name+" "+types))
			continue
		}
		lines = append(lines, styles.Marker.Render(marker)+styles.Text.Render(name)+" "+m.renderTypes(c.Type, typeWidth))
	}
	return strings.Join(lines, "\n")
}

// renderTypes colors each type, keeping the ", " separator of the label.
func (m Model) renderTypes(kinds []string, width int) string {
	label := fitCell(strings.Join(kinds, ", "), width)
	if strings.Contains(label, "…") || len(kinds) == 0 {
		return m.theme.Styles().MutedText.Render(label)
	}
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.TypeColor(kind))).Render(kind))
	}
	used := runewidth.StringWidth(strings.Join(kinds, ", "))
	return strings.Join(parts, ", ") + strings.Repeat(" ", max(0, width-used))
}
