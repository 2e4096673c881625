package screens

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yodl/internal/components"
	"github.com/alexisbeaulieu97/yodl/internal/mockdata"
	"github.com/alexisbeaulieu97/yodl/internal/router"
)

var tierGlyphs = map[mockdata.TierIcon]string{
	mockdata.TierIconZap:    "⚡",
	mockdata.TierIconShield: "⛨",
	mockdata.TierIconGlobe:  "◍",
}

// PaymentNetworksScreen lists the payment tiers with their countries and lock state.
func PaymentNetworksScreen(p Props) View {
	c := p.context()
	s := c.Styles
	v := c.Value()

	quickPay, _ := router.Path(router.QuickPay, nil)

	cards := make([]string, 0, 3)
	var actions []Action
	for _, tier := range mockdata.PaymentTiers() {
		card := components.NewCard(c)
		inner := card.Context()

		selection := s.TextMuted.Render("○")
		if tier.Active {
			selection = s.Success.Render("●")
		}
		title := s.Accent.Render(tierGlyphs[tier.Icon]) + " " + s.Heading.Render(tier.Name)
		if tier.Badge != "" {
			title += " " + components.Badge(c, tier.Badge)
		}

		lines := []string{
			components.Spread(inner.Inner(), title, selection),
			s.TextMuted.Render(tier.Subtitle),
			components.Rule(c, card.ContentWidth()),
			components.FlagRow(inner, tier.Countries, true),
		}
		if tier.Locked {
			lines = append(lines, s.TextPrimary.Render("Verify to unlock "+components.GlyphArrow))
		}
		if tier.Active {
			card = card.WithBorderColor(v.Colors.PurpleSecondary)
		}
		cards = append(cards, card.WithLines(lines...).View())

		if tier.ID == mockdata.TierQuick {
			actions = append(actions, navigate(tier.Name+" countries", quickPay))
		}
	}

	body := components.Stack(
		components.Header(c, components.HeaderSpec{
			Lead:     components.GlyphBack,
			Title:    "Payment Networks",
			Trailing: components.GlyphInfo,
		}),
		components.Gap(1),
		components.Stack(cards...),
	)

	actions = append(actions, back("Back"))
	return View{Title: "Payment Networks", Body: body, Actions: actions}
}

// tierSubtitle is the quick tier's tagline, empty when the tier is missing.
func tierSubtitle(c components.Context) string {
	tier, ok := mockdata.Tier(mockdata.TierQuick).Get()
	if !ok {
		return ""
	}
	return components.Center(c.Inner(), c.Styles.Success.Render(tier.Subtitle))
}

// QuickPayScreen details the quick pay tier: countries, limits and tokens.
func QuickPayScreen(p Props) View {
	c := p.context()
	s := c.Styles
	width := c.Inner()
	info := mockdata.QuickPayInfo()

	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(c.Value().Semantic.Processing)).
		Padding(0, 2).
		Render("⚡")

	limits := make([]string, 0, len(info.Limits))
	for _, l := range info.Limits {
		limits = append(limits, components.InfoRow(c, l.Label, l.Value))
	}

	tokens := make([]string, 0, len(info.Tokens))
	for _, t := range info.Tokens {
		tokens = append(tokens, components.TokenRow(c, components.TokenRowData{
			Glyph:    t.Glyph,
			Color:    t.IconColor,
			Symbol:   t.Name,
			Subtitle: t.Network,
		}))
	}

	body := components.Stack(
		components.Header(c, components.HeaderSpec{Lead: components.GlyphBack}),
		components.Gap(1),
		components.Center(width, icon),
		components.Gap(1),
		components.Center(width, components.FlagRow(c, info.Flags, false)),
		components.Center(width, s.DisplayBalance.Render(info.Title)),
		tierSubtitle(c),
		lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
			s.TextMuted.Render(components.Wrap(width, info.Description)),
		),
		components.Gap(1),
		components.Divider(c),
		s.Heading.Render("Your Limits"),
		components.Stack(limits...),
		components.Divider(c),
		s.Heading.Render("Supported tokens:"),
		components.Stack(tokens...),
	)

	return View{Title: info.Title, Body: body, Actions: []Action{back("Back")}}
}
