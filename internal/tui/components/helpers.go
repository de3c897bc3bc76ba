package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// splitLines splits a rendered string on newlines.
func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// joinLines joins lines back with newlines.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// fitLine cuts or pads a possibly styled line to exactly width cells.
func fitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := ansi.StringWidth(line); w < width {
		return line + strings.Repeat(" ", width-w)
	} else if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line
}

// fitBlock returns exactly height lines, each exactly width cells wide.
func fitBlock(lines []string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = fitLine(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", max(width, 0))
		}
	}
	return out
}

// Overlay splices fg over bg with its top-left corner at column x, row y.
// Every cell fg covers is replaced; bg outside that rectangle is kept.
// bg is expected to be a rendered frame of the given width.
func Overlay(bg, fg string, width, x, y int) string {
	bgLines := splitLines(bg)
	fgLines := splitLines(fg)

	fgW := 0
	for _, l := range fgLines {
		fgW = max(fgW, ansi.StringWidth(l))
	}
	if fgW == 0 {
		return bg
	}
	x, y = max(x, 0), max(y, 0)

	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := fitLine(bgLines[y+i], width)
		left := ansi.Cut(bgLine, 0, x)
		right := ansi.Cut(bgLine, x+fgW, width)
		bgLines[y+i] = left + fitLine(fgLines[i], fgW) + right
	}
	return joinLines(bgLines)
}

// Fit clips or pads a rendered block to exactly width x height cells.
func Fit(s string, width, height int) string {
	return joinLines(fitBlock(splitLines(s), width, height))
}
