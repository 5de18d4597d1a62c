package ui

import (
	"fmt"
	"strings"
)

const (
	statKeyWidth = 12
	statBarWidth = 15
	// statBarMax is the scale for stat bars; no base stat in the roster exceeds it.
	statBarMax = 255
)

// renderDetail renders the selected creature, if any, followed by the
// "no filter" heading while the filter is empty.
func (m Model) renderDetail(width int) string {
	styles := m.theme.Styles()
	var lines []string

	if sel := m.session.Selected; sel != nil {
		lines = append(lines, styles.Heading.Render(fitCell(sel.Name.English, width)))
		meta := sel.TypeLabel()
		if sel.ID > 0 {
			meta = fmt.Sprintf("#%03d  %s", sel.ID, meta)
		}
		lines = append(lines, styles.MutedText.Render(fitCell(meta, width)), "")

		for _, stat := range sel.Base {
			line := styles.MutedText.Render(fitCell(stat.Key, statKeyWidth)) +
				styles.Text.Render(padLeft(fmt.Sprintf("%d", stat.Value), 4))
			if m.statBars {
				barWidth := min(statBarWidth, width-statKeyWidth-5)
				line += " " + styles.Accent.Render(statBar(stat.Value, statBarMax, barWidth))
			}
			lines = append(lines, line)
		}
	}

	if m.session.ShowNoFilterHeading() {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, styles.Warning.Render("no filter"))
	}

	return strings.Join(lines, "\n")
}
