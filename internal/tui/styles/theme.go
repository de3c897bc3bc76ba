package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Panel styles
// ---------------------------------------------------------------------------

// Panel is the bordered frame used for every dashboard region. Width and
// height are set per render.
var Panel = lipgloss.NewStyle().
	Border(PanelBorder).
	BorderForeground(BorderNormal)

// PanelFocused is Panel with the cyan focus border, used for the active
// right-hand panel.
var PanelFocused = Panel.
	BorderForeground(BorderFocused)

// Overlay frames the help box.
var Overlay = lipgloss.NewStyle().
	Background(BgOverlay).
	Border(OverlayBorder).
	BorderForeground(AccentTertiary).
	BorderBackground(BgOverlay).
	Padding(0, 1)

// ---------------------------------------------------------------------------
// Title / Footer bars
// ---------------------------------------------------------------------------

// TitleBar spans the full width with bold cyan text on the deepest
// background.
var TitleBar = lipgloss.NewStyle().
	Background(BgDeep).
	Foreground(AccentPrimary).
	Bold(true).
	PaddingLeft(1).
	PaddingRight(1)

// FooterBar spans the full width with muted text.
var FooterBar = lipgloss.NewStyle().
	Background(BgDeep).
	Foreground(TextMuted).
	PaddingLeft(1).
	PaddingRight(1)

// ---------------------------------------------------------------------------
// Typography styles
// ---------------------------------------------------------------------------

// Title is bold AccentPrimary text for panel headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// Label is TextMuted text for field labels.
var Label = lipgloss.NewStyle().
	Foreground(TextMuted)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// Selected highlights the selected agent row.
var Selected = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// ---------------------------------------------------------------------------
// Severity
// ---------------------------------------------------------------------------

// SeverityStyle returns the style for a static-analysis severity label.
// ERROR and WARNING are emphasised; everything else is plain text.
func SeverityStyle(severity string) lipgloss.Style {
	switch strings.ToUpper(severity) {
	case "ERROR":
		return lipgloss.NewStyle().Foreground(SeverityError).Bold(true)
	case "WARNING":
		return lipgloss.NewStyle().Foreground(SeverityWarning)
	default:
		return lipgloss.NewStyle().Foreground(SeverityInfo)
	}
}

// Badge returns an inline colored badge such as "● ERROR".
func Badge(text string, color lipgloss.Color) string {
	dot := lipgloss.NewStyle().Foreground(color).Render("●")
	label := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(text)
	return dot + " " + label
}
