package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const white = lipgloss.Color("#FFFFFF")

// Badge renders a small pill such as "Active" on the success colour.
func Badge(c Context, label string) string {
	return lipgloss.NewStyle().
		Foreground(white).
		Background(lipgloss.Color(c.Value().Semantic.Success)).
		Bold(true).
		Padding(0, 1).
		Render(label)
}

// Divider draws a horizontal rule across the inner width.
func Divider(c Context) string {
	return Rule(c, c.Inner())
}

// Rule draws a horizontal rule of the given width in the border colour.
func Rule(c Context, width int) string {
	if width <= 0 {
		return ""
	}
	return c.Styles.Border.Render(strings.Repeat("─", width))
}

// TokenGlyph picks the glyph shown inside a token icon.
func TokenGlyph(symbol string) string {
	if symbol == "USDT" {
		return "₮"
	}
	if symbol == "" {
		return "?"
	}
	r := []rune(symbol)
	return string(r[0])
}

// TokenIcon renders a glyph on the token's brand colour.
func TokenIcon(glyph, hex string) string {
	return lipgloss.NewStyle().
		Foreground(white).
		Background(lipgloss.Color(hex)).
		Bold(true).
		Padding(0, 1).
		Render(glyph)
}

// NetworkPill renders a chain selector; the active pill uses the brand fill.
func NetworkPill(c Context, name string, active bool) string {
	if active {
		return c.Styles.Brand.Render(name)
	}
	v := c.Value()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(v.Colors.TextMuted)).
		Background(lipgloss.Color(v.Colors.BgElevated)).
		Padding(0, 1).
		Render(name)
}

// NetworkPills lays pills out on one line.
func NetworkPills(c Context, names []string, active int) string {
	pills := make([]string, len(names))
	for i, name := range names {
		pills[i] = NetworkPill(c, name, i == active)
	}
	return strings.Join(pills, " ")
}

// FlagRow renders country flags separated by spaces, with an optional trailing chevron.
func FlagRow(c Context, flags []string, chevron bool) string {
	row := strings.Join(flags, " ")
	if !chevron {
		return row
	}
	return Spread(c.Inner(), row, c.Styles.TextMuted.Render(GlyphChevron))
}

// ActionButton renders a labelled quick action such as Top Up or Send.
func ActionButton(c Context, glyph, label string) string {
	v := c.Value()
	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color(v.Colors.TextPrimary)).
		Background(lipgloss.Color(v.Colors.BgElevated)).
		Padding(0, 2).
		Render(glyph)
	return lipgloss.JoinVertical(lipgloss.Center, icon, c.Styles.TextMuted.Render(label))
}

// ActionSpec names one quick action.
type ActionSpec struct {
	Glyph string
	Label string
}

// ActionButtons spreads quick actions evenly across the inner width.
func ActionButtons(c Context, actions ...ActionSpec) string {
	if len(actions) == 0 {
		return ""
	}
	slot := c.Inner() / len(actions)
	cells := make([]string, len(actions))
	for i, a := range actions {
		cells[i] = lipgloss.PlaceHorizontal(slot, lipgloss.Center, ActionButton(c, a.Glyph, a.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// BalanceBlock renders a large centred amount with an optional caption above and
// a secondary line below.
func BalanceBlock(c Context, caption, amount, secondary string) string {
	s := c.Styles
	width := c.Inner()
	lines := make([]string, 0, 3)
	if caption != "" {
		lines = append(lines, Center(width, s.TextMuted.Render(caption)))
	}
	lines = append(lines, Center(width, s.DisplayBalance.Render(amount)))
	if secondary != "" {
		lines = append(lines, Center(width, s.TextMuted.Render(secondary)))
	}
	return strings.Join(lines, "\n")
}

// NotFoundText is shown when a screen cannot resolve its entity.
const NotFoundText = "Token not found"

// NotFound renders the placeholder for a missing entity.
func NotFound(c Context, text string) string {
	if text == "" {
		text = NotFoundText
	}
	return Stack(Gap(2), Center(c.Inner(), c.Styles.TextPrimary.Render(text)))
}

// Link renders an accent call to action such as "Verify to unlock →".
func Link(c Context, label string) string {
	return c.Styles.Accent.Render(label)
}
