package styles

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// Convenience color helpers
// ---------------------------------------------------------------------------

// Cyan renders s in AccentPrimary.
func Cyan(s string) string {
	return lipgloss.NewStyle().Foreground(AccentPrimary).Render(s)
}

// Dim renders s in TextMuted.
func Dim(s string) string {
	return lipgloss.NewStyle().Foreground(TextMuted).Render(s)
}

// ---------------------------------------------------------------------------
// Sparkline
// ---------------------------------------------------------------------------

// barRamp holds the eighth-block glyphs, index i filling i/8 of a cell.
var barRamp = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SparklineRows draws values as a bar chart height rows tall and at most
// width columns wide, scaled from zero to the largest value. When there
// are more values than columns the most recent ones are kept. Rows are
// returned top first and are unstyled.
func SparklineRows(values []uint64, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var peak uint64
	for _, v := range values {
		peak = max(peak, v)
	}

	// Bar heights in eighths of a cell.
	levels := make([]int, len(values))
	if peak > 0 {
		total := float64(height * 8)
		for i, v := range values {
			levels[i] = int(float64(v) / float64(peak) * total)
		}
	}

	rows := make([]string, height)
	for r := range height {
		// floor is the number of eighths below this row.
		floor := (height - 1 - r) * 8
		var b strings.Builder
		for _, lvl := range levels {
			fill := min(max(lvl-floor, 0), 8)
			b.WriteRune(barRamp[fill])
		}
		rows[r] = b.String()
	}
	return rows
}

// Sparkline renders SparklineRows in AccentSecondary, joined by newlines.
func Sparkline(values []uint64, width, height int) string {
	rows := SparklineRows(values, width, height)
	if len(rows) == 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(AccentSecondary).Render(strings.Join(rows, "\n"))
}

// ---------------------------------------------------------------------------
// Text utilities
// ---------------------------------------------------------------------------

// TruncateWithEllipsis shortens s to max display cells, ending with "…"
// when truncation occurs.
func TruncateWithEllipsis(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= max {
		return s
	}
	return ansi.Truncate(s, max, "…")
}

var whitespaceReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", "    ")

// SingleLine makes untrusted artifact text safe to draw as one row. ANSI
// sequences are removed, line breaks become spaces, tabs become four
// spaces and any other control character is dropped.
func SingleLine(s string) string {
	s = whitespaceReplacer.Replace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(s))
}
