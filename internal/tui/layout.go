package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// fitLine cuts or pads s to exactly width terminal columns, ANSI-aware.
// Cut lines end with an ellipsis and a reset so styling never bleeds into the border.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := xansi.StringWidth(s)
	if w > width {
		if width == 1 {
			s = xansi.Cut(s, 0, 1)
		} else {
			s = xansi.Cut(s, 0, width-1) + "…"
		}
		s += "\x1b[0m"
		w = xansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// normalizePane forces s to be exactly width columns wide and height lines tall,
// which keeps lipgloss.JoinHorizontal stable when pane contents change between frames.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i := range lines {
		lines[i] = fitLine(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// visibleWindow returns the [start, end) range of n rows to draw in height lines
// so that the selected row (sel < 0 for none) stays on screen.
func visibleWindow(n, sel, height int) (int, int) {
	if height <= 0 || n <= 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	start := 0
	if sel >= height {
		start = sel - height + 1
	}
	return start, start + height
}
