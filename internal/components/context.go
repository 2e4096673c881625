// Package components provides the theme-aware building blocks every screen is
// assembled from. Components never read a global theme: the theme value travels
// explicitly in a Context, so the same inputs always render the same output.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yodl/internal/theme"
)

// DefaultWidth is the phone frame width in terminal columns.
const DefaultWidth = 48

// MinWidth is the narrowest frame the kit lays out without clipping.
const MinWidth = 32

// Context carries the styles and layout width a component renders with.
type Context struct {
	Styles theme.Styles
	Width  int
}

// NewContext builds a Context for a theme value. Non-positive widths fall back to
// DefaultWidth; widths below MinWidth are clamped.
func NewContext(v theme.Value, width int) Context {
	switch {
	case width <= 0:
		width = DefaultWidth
	case width < MinWidth:
		width = MinWidth
	}
	return Context{Styles: theme.NewStyles(v), Width: width}
}

// Value returns the theme value the styles were derived from.
func (c Context) Value() theme.Value {
	return c.Styles.Value
}

// Inner returns the usable width inside the frame gutter.
func (c Context) Inner() int {
	return c.Width - 2*gutter
}

// WithWidth returns a copy of c laid out at width.
func (c Context) WithWidth(width int) Context {
	c.Width = width
	return c
}

const gutter = 1

// StyleFunc transforms a style using the context's theme.
type StyleFunc func(lipgloss.Style, Context) lipgloss.Style

// Style applies appliers to base in order.
func (c Context) Style(base lipgloss.Style, appliers ...StyleFunc) lipgloss.Style {
	for _, apply := range appliers {
		if apply == nil {
			continue
		}
		base = apply(base, c)
	}
	return base
}

// Foreground colours text with the named colour slot. Unknown slots leave the style untouched.
func Foreground(slot string) StyleFunc {
	return func(s lipgloss.Style, c Context) lipgloss.Style {
		if hex, ok := c.Value().Colors.Slot(slot); ok {
			return s.Foreground(lipgloss.Color(hex))
		}
		return s
	}
}

// Background fills with the named colour slot.
func Background(slot string) StyleFunc {
	return func(s lipgloss.Style, c Context) lipgloss.Style {
		if hex, ok := c.Value().Colors.Slot(slot); ok {
			return s.Background(lipgloss.Color(hex))
		}
		return s
	}
}

// PaddingX pads left and right by a spacing token, measured in cells.
func PaddingX(size theme.SpacingSize) StyleFunc {
	return func(s lipgloss.Style, c Context) lipgloss.Style {
		return s.Padding(0, c.Value().Spacing.Cells(size))
	}
}

// Typography applies a preset's weight flags.
func Typography(variant theme.TypographyVariant) StyleFunc {
	return func(s lipgloss.Style, c Context) lipgloss.Style {
		preset := c.Styles.TypographyFor(variant)
		return s.Bold(preset.GetBold()).Faint(preset.GetFaint())
	}
}
