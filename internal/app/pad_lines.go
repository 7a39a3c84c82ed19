package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

func padLines(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = padToWidth(line, width)
	}
	return strings.Join(out, "\n")
}

func padToWidth(text string, width int) string {
	lineWidth := xansi.StringWidth(text)
	if lineWidth >= width {
		return text
	}
	return text + strings.Repeat(" ", width-lineWidth)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	if xansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return xansi.Truncate(text, width, "…")
}

// truncatePlain cuts unstyled user text, counting wide runes as two cells.
func truncatePlain(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

func indentBlock(block string, spaces int) string {
	if spaces <= 0 {
		return block
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
