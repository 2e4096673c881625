package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status bar glyphs: signal bars, wifi and battery.
const (
	StatusTime  = "9:41"
	statusIcons = "▂▄▆█ ◠ ▭"
)

// StatusBar renders the fake device status bar.
func StatusBar(c Context) string {
	s := c.Styles
	line := Spread(c.Inner(), s.TextPrimary.Bold(true).Render(StatusTime), s.TextPrimary.Render(statusIcons))
	return Indent(gutter, line)
}

// Frame wraps a screen body in the phone frame: status bar on top, every line
// padded to the frame width over the primary background.
func Frame(c Context, body string) string {
	lines := []string{StatusBar(c), ""}
	for _, line := range strings.Split(body, "\n") {
		lines = append(lines, Indent(gutter, line))
	}

	fill := c.Styles.Screen.Width(c.Width)
	for i, line := range lines {
		lines[i] = fill.Render(line)
	}
	return strings.Join(lines, "\n")
}

// Header glyphs.
const (
	GlyphBack    = "‹"
	GlyphClose   = "✕"
	GlyphChevron = "›"
	GlyphArrow   = "→"
	GlyphInfo    = "ⓘ"
)

// HeaderSpec describes a screen header: a leading glyph, a centred title and an
// optional trailing link.
type HeaderSpec struct {
	Lead     string
	Title    string
	Trailing string
}

// Header renders a navigation header across the inner width.
func Header(c Context, spec HeaderSpec) string {
	s := c.Styles
	width := c.Inner()

	lead := s.TextPrimary.Render(spec.Lead)
	trail := ""
	if spec.Trailing != "" {
		trail = s.Accent.Render(spec.Trailing)
	}

	side := max(lipgloss.Width(lead), lipgloss.Width(trail))
	middle := width - 2*side
	if middle < lipgloss.Width(spec.Title) {
		return Spread(width, lead+" "+s.Heading.Render(spec.Title), trail)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(side).Render(lead),
		lipgloss.PlaceHorizontal(middle, lipgloss.Center, s.Heading.Render(spec.Title)),
		lipgloss.NewStyle().Width(side).Align(lipgloss.Right).Render(trail),
	)
}

// SectionHeader renders an upper-case caption with an optional action on the right.
func SectionHeader(c Context, caption, action string) string {
	s := c.Styles
	left := s.TextMuted.Bold(true).Render(Upper(caption))
	if action == "" {
		return left
	}
	return Spread(c.Inner(), left, s.Accent.Render(action))
}
