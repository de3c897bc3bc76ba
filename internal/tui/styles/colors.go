package styles

import "github.com/charmbracelet/lipgloss"

// Dashboard palette: near-black panels, cyan focus, traffic-light severities.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#0a0e14") // Title and footer bars
	BgOverlay = lipgloss.Color("#1a1f2e") // Help overlay surface

	// Accents
	AccentPrimary   = lipgloss.Color("#4fc1ff") // Cyan -- titles, selection marker
	AccentSecondary = lipgloss.Color("#39c5bb") // Teal -- sparkline
	AccentTertiary  = lipgloss.Color("#7c3aed") // Purple -- overlay border

	// Severity
	SeverityError   = lipgloss.Color("#ef4444") // Red
	SeverityWarning = lipgloss.Color("#f59e0b") // Amber
	SeverityInfo    = lipgloss.Color("#e2e8f0") // Plain text

	// Text
	TextPrimary   = lipgloss.Color("#e2e8f0") // High contrast
	TextSecondary = lipgloss.Color("#94a3b8") // Dimmed
	TextMuted     = lipgloss.Color("#64748b") // Very dim

	// Borders
	BorderNormal  = lipgloss.Color("#2d3748") // Inactive panels
	BorderFocused = lipgloss.Color("#4fc1ff") // Active right-hand panel
)
