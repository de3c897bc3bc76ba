package health

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lbrxagents/a2a-dash/internal/reader"
	"github.com/lbrxagents/a2a-dash/internal/tui/styles"
)

// category display order
var categoryOrder = []string{CategoryLayout, CategoryArtifacts}

func categoryLabel(cat string) string {
	switch cat {
	case CategoryLayout:
		return "Project Layout"
	case CategoryArtifacts:
		return "Dashboard Artifacts"
	default:
		return cat
	}
}

// FormatReport creates a lipgloss-styled health report string.
func FormatReport(r *Report) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render("Artifact Health Check")
	b.WriteString("\n  " + title + "\n")
	b.WriteString("  " + divider(50) + "\n")

	grouped := make(map[string][]CheckResult)
	for _, res := range r.Results {
		grouped[res.Category] = append(grouped[res.Category], res)
	}

	nameStyle := lipgloss.NewStyle().Width(18).Foreground(styles.TextPrimary)
	msgStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	catStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Bold(true).
		MarginTop(1)

	for _, cat := range categoryOrder {
		results := grouped[cat]
		if len(results) == 0 {
			continue
		}

		b.WriteString("\n  " + catStyle.Render(categoryLabel(cat)) + "\n")
		for _, res := range results {
			fmt.Fprintf(&b, "  %s %s %s\n",
				statusSymbol(res.Status),
				nameStyle.Render(res.Name),
				msgStyle.Render(styles.TruncateWithEllipsis(res.Message, 60)),
			)
		}
	}

	b.WriteString("\n  " + divider(50) + "\n")
	summary := fmt.Sprintf("%d/%d passed", r.Passed, r.Total)
	if r.Warned > 0 {
		summary += fmt.Sprintf(", %d warning(s)", r.Warned)
	}
	if r.Failed > 0 {
		summary += fmt.Sprintf(", %d failed", r.Failed)
	}
	b.WriteString("  " + lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(summary))
	b.WriteString("  " + overallBadge(r) + "\n")

	return b.String()
}

// statusSymbol returns a color-coded status symbol.
func statusSymbol(s Status) string {
	switch s {
	case StatusPass:
		return lipgloss.NewStyle().Foreground(styles.AccentSecondary).Bold(true).Render(s.Symbol())
	case StatusWarn:
		return styles.SeverityStyle(reader.SeverityWarning).Bold(true).Render(s.Symbol())
	case StatusFail:
		return styles.SeverityStyle(reader.SeverityError).Render(s.Symbol())
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMuted).Render(s.Symbol())
	}
}

// overallBadge returns a styled overall status badge.
func overallBadge(r *Report) string {
	switch {
	case r.Failed > 0:
		return styles.Badge("UNHEALTHY", styles.SeverityError)
	case r.Warned > 0:
		return styles.Badge("DEGRADED", styles.SeverityWarning)
	default:
		return styles.Badge("HEALTHY", styles.AccentSecondary)
	}
}

func divider(width int) string {
	return lipgloss.NewStyle().Foreground(styles.BorderNormal).Render(strings.Repeat("─", width))
}
