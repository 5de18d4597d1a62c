package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders header, command bar, filter input and the two panes.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	// header + command bar + filter line
	contentHeight := max(4, m.height-3)

	// 70% table, 30% detail
	tableWidth := m.width * 70 / 100
	detailWidth := m.width - tableWidth

	// borders and the box title take three rows
	table := m.renderRosterTable(tableWidth-4, contentHeight-3)
	detail := m.renderDetail(detailWidth - 4)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderBox("Pokemon", table, tableWidth, contentHeight, m.focus == PaneTable),
		m.renderBox("Details", detail, detailWidth, contentHeight, false),
	))
	return b.String()
}

// renderHeader shows the title and the roster status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Title.Render("Pokemon Search")}
	if m.session.Loaded {
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%d loaded · %d shown",
			len(m.session.Roster), len(m.session.Visible()))))
		parts = append(parts, styles.FaintText.Render(m.session.LastLoaded.Format("15:04:05")))
	} else {
		parts = append(parts, styles.MutedText.Render("empty"))
	}
	if label := strings.TrimSpace(m.sourceLabel); label != "" {
		parts = append(parts, styles.FaintText.Render(truncateMiddle(label, 50)))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderCommandBar lists the short-help bindings.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	bindings := m.keys.ShortHelp()
	if m.focus == PaneFilter {
		bindings = append(bindings[:0:0], m.keys.Done, m.keys.Tab)
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.Key.Render("<"+h.Key+">")+" "+styles.MutedText.Render(h.Desc))
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderBox draws a rounded border around content, highlighting when focused.
func (m Model) renderBox(title, content string, width, height int, focused bool) string {
	border := m.theme.Border
	if focused {
		border = m.theme.BorderFocus
	}
	titleLine := m.theme.Styles().Text.Bold(true).Render(title)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(max(0, width-2)).
		Height(max(0, height-2)).
		MaxHeight(height).
		Render(titleLine + "\n" + content)
}

func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}
