package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/lbrxagents/a2a-dash/internal/tui/styles"
)

// Overlay size as a percentage of the viewport.
const (
	HelpWidthPercent  = 60
	HelpHeightPercent = 40
)

// HelpEntry is one key binding line of the help overlay.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpOverlay is the centered key-binding reference drawn over the
// dashboard.
type HelpOverlay struct {
	Entries []HelpEntry
	Width   int // viewport width
	Height  int // viewport height
}

// Rect returns the overlay's position and size inside the viewport.
func (h HelpOverlay) Rect() (x, y, w, ht int) {
	w = h.Width * HelpWidthPercent / 100
	ht = h.Height * HelpHeightPercent / 100
	return (h.Width - w) / 2, (h.Height - ht) / 2, w, ht
}

// Render returns the overlay box alone, Rect-sized, with every cell
// painted so it hides what lies beneath.
func (h HelpOverlay) Render() string {
	_, _, w, ht := h.Rect()
	frame := styles.Overlay.GetHorizontalFrameSize()
	innerW := w - frame
	innerH := ht - styles.Overlay.GetVerticalFrameSize()
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	body := fitBlock(h.bodyLines(innerW), innerW, innerH)
	return styles.Overlay.
		Width(innerW + styles.Overlay.GetHorizontalPadding()).
		Render(joinLines(body))
}

// Place draws the overlay centered over a rendered frame.
func (h HelpOverlay) Place(frame string) string {
	box := h.Render()
	if box == "" {
		return frame
	}
	x, y, _, _ := h.Rect()
	return Overlay(frame, box, h.Width, x, y)
}

func (h HelpOverlay) bodyLines(width int) []string {
	var md strings.Builder
	md.WriteString("# Help\n\n")
	for _, e := range h.Entries {
		fmt.Fprintf(&md, "- **%s** – %s\n", e.Key, e.Desc)
	}

	out, err := renderMarkdown(md.String(), width)
	if err != nil {
		lines := []string{styles.Title.Render("Help"), ""}
		for _, e := range h.Entries {
			lines = append(lines, e.Key+" – "+e.Desc)
		}
		return lines
	}
	return splitLines(out)
}

// markdownCache keeps rendered help text per width; glamour renderers are
// too slow to rebuild on every frame.
var markdownCache = struct {
	sync.Mutex
	entries map[string]string
}{entries: make(map[string]string)}

func renderMarkdown(md string, width int) (string, error) {
	cacheKey := fmt.Sprintf("%d\x00%s", width, md)

	markdownCache.Lock()
	defer markdownCache.Unlock()
	if out, ok := markdownCache.entries[cacheKey]; ok {
		return out, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	out = strings.Trim(out, "\n")
	markdownCache.entries[cacheKey] = out
	return out, nil
}
