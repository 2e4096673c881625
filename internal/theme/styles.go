package theme

import "github.com/charmbracelet/lipgloss"

// Styles are lipgloss renderings of a Value, rebuilt whenever the mode changes.
type Styles struct {
	Value Value

	Screen   lipgloss.Style
	Surface  lipgloss.Style
	Elevated lipgloss.Style

	TextPrimary   lipgloss.Style
	TextSecondary lipgloss.Style
	TextMuted     lipgloss.Style
	TextAmount    lipgloss.Style
	TextLink      lipgloss.Style
	Accent        lipgloss.Style
	Brand         lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	Border   lipgloss.Style
	Selected lipgloss.Style

	DisplayBalance lipgloss.Style
	Heading        lipgloss.Style
	Body           lipgloss.Style
	BodySecondary  lipgloss.Style
	Caption        lipgloss.Style
}

// NewStyles derives the lipgloss styles for v.
func NewStyles(v Value) Styles {
	c := v.Colors
	color := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }

	fg := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(color(hex))
	}

	borderShape := lipgloss.NormalBorder()
	if v.Radius.Rounded(RadiusLG) {
		borderShape = lipgloss.RoundedBorder()
	}

	s := Styles{
		Value: v,

		Screen: lipgloss.NewStyle().
			Background(color(c.BgPrimary)).
			Foreground(color(c.TextPrimary)),
		Surface: lipgloss.NewStyle().
			Background(color(c.BgSecondary)).
			Foreground(color(c.TextPrimary)),
		Elevated: lipgloss.NewStyle().
			BorderStyle(borderShape).
			BorderForeground(color(c.BgElevated)).
			Padding(0, v.Spacing.Cells(SpacingSM)),

		TextPrimary:   fg(c.TextPrimary),
		TextSecondary: fg(c.TextSecondary),
		TextMuted:     fg(c.TextMuted),
		TextAmount:    fg(c.TextAmount),
		TextLink:      fg(c.TextLink).Underline(true),
		Accent:        fg(c.PurpleSecondary),
		Brand: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(color(c.PurpleLight)).
			Padding(0, 1),

		Success: fg(v.Semantic.Success),
		Error:   fg(v.Semantic.Error),
		Warning: fg(v.Semantic.Warning),

		Border: fg(c.Border),
		Selected: lipgloss.NewStyle().
			Foreground(color(c.PurpleSecondary)).
			Bold(true),
	}

	s.DisplayBalance = typographyStyle(v.Typography.DisplayBalance, c.TextPrimary).Bold(true)
	s.Heading = typographyStyle(v.Typography.Heading, c.TextPrimary).Bold(true)
	s.Body = typographyStyle(v.Typography.Body, c.TextPrimary)
	s.BodySecondary = typographyStyle(v.Typography.BodySecondary, c.TextMuted)
	s.Caption = typographyStyle(v.Typography.Caption, c.TextMuted).Faint(true)

	return s
}

func typographyStyle(t TypographyStyle, hex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex)).
		Bold(t.FontWeight.Bold())
}

// TypographyFor returns the text style of a preset.
func (s Styles) TypographyFor(variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyDisplayBalance:
		return s.DisplayBalance
	case TypographyHeading:
		return s.Heading
	case TypographyBodySecondary:
		return s.BodySecondary
	case TypographyCaption:
		return s.Caption
	default:
		return s.Body
	}
}
