package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the visual appearance of a Card.
type CardStyle struct {
	// BorderStyle applies to the card's outer border
	BorderStyle lipgloss.Style
	// TitleStyle applies to the card's title text
	TitleStyle lipgloss.Style
	// ContentStyle applies to the card's body lines
	ContentStyle lipgloss.Style
	// Width is the outer width of the card in cells
	Width int
}

// DefaultCardStyle returns the elevated-surface card style for c.
func DefaultCardStyle(c Context) CardStyle {
	return CardStyle{
		BorderStyle:  c.Styles.Elevated,
		TitleStyle:   c.Styles.Heading,
		ContentStyle: c.Styles.Body,
		Width:        c.Inner(),
	}
}

// Card is an elevated container with an optional title, badge and footer.
type Card struct {
	title  string
	badge  string
	lines  []string
	footer string
	style  CardStyle
	ctx    Context
}

// NewCard creates a card rendered with the context's theme.
func NewCard(c Context) *Card {
	return &Card{ctx: c, style: DefaultCardStyle(c)}
}

// WithTitle sets the heading line.
func (cd *Card) WithTitle(title string) *Card {
	cd.title = title
	return cd
}

// WithBadge shows a badge next to the title.
func (cd *Card) WithBadge(label string) *Card {
	cd.badge = label
	return cd
}

// WithLines appends body lines.
func (cd *Card) WithLines(lines ...string) *Card {
	cd.lines = append(cd.lines, lines...)
	return cd
}

// WithFooter sets a line rendered under a divider.
func (cd *Card) WithFooter(footer string) *Card {
	cd.footer = footer
	return cd
}

// WithStyle replaces the card style.
func (cd *Card) WithStyle(style CardStyle) *Card {
	cd.style = style
	return cd
}

// WithBorderColor tints the border, used to mark the active card.
func (cd *Card) WithBorderColor(hex string) *Card {
	cd.style.BorderStyle = cd.style.BorderStyle.BorderForeground(lipgloss.Color(hex))
	return cd
}

// ContentWidth is the width available to body lines.
func (cd *Card) ContentWidth() int {
	frame := cd.style.BorderStyle.GetHorizontalFrameSize()
	return max(cd.style.Width-frame, 1)
}

// Context returns the context rows inside the card should render with.
func (cd *Card) Context() Context {
	return cd.ctx.WithWidth(cd.ContentWidth() + 2*gutter)
}

// View renders the card.
func (cd *Card) View() string {
	var content []string

	if cd.title != "" {
		header := cd.style.TitleStyle.Render(cd.title)
		if cd.badge != "" {
			header += " " + Badge(cd.ctx, cd.badge)
		}
		content = append(content, header)
	}

	for _, line := range cd.lines {
		content = append(content, cd.style.ContentStyle.Render(line))
	}

	if cd.footer != "" {
		content = append(content, Rule(cd.ctx, cd.ContentWidth()), cd.footer)
	}

	inner := strings.Join(content, "\n")
	return cd.style.BorderStyle.Width(cd.ContentWidth() + cd.style.BorderStyle.GetHorizontalPadding()).Render(inner)
}
