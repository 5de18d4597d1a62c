package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// fitCell truncates value to width display cells and pads it on the right.
func fitCell(value string, width int) string {
	if width <= 0 {
		return ""
	}
	value = strings.TrimSpace(value)
	if runewidth.StringWidth(value) > width {
		value = runewidth.Truncate(value, width, "…")
	}
	return runewidth.FillRight(value, width)
}

// padLeft right-aligns value within width display cells.
func padLeft(value string, width int) string {
	return runewidth.FillLeft(value, width)
}

// statBar renders value as a bar scaled against max, at most width cells.
func statBar(value, max, width int) string {
	if width <= 0 || max <= 0 || value <= 0 {
		return ""
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	if filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled)
}

// visibleWindow returns the [start, end) slice of count rows to render so
// that cursor stays inside a window of height rows.
func visibleWindow(count, cursor, height int) (int, int) {
	if height <= 0 || count <= 0 {
		return 0, 0
	}
	if count <= height {
		return 0, count
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	return start, start + height
}
