package screens

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yodl/internal/components"
	"github.com/alexisbeaulieu97/yodl/internal/mockdata"
	"github.com/alexisbeaulieu97/yodl/internal/router"
	"github.com/alexisbeaulieu97/yodl/internal/theme"
)

// SplitScreen lets the user choose which prototype flow to open.
func SplitScreen(p Props) View {
	c := p.context()
	s := c.Styles
	width := c.Inner()

	logo := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.BrandPurpleSecondary)).
		Bold(true).
		Render("yodl")

	option := func(glyph, name, description string) string {
		return components.NewCard(c).
			WithTitle(glyph + "  " + name).
			WithLines(s.TextMuted.Render(description)).
			View()
	}

	body := components.Stack(
		components.Gap(1),
		components.Center(width, logo),
		components.Center(width, s.TextMuted.Render("Choose Test Mode")),
		components.Gap(1),
		option("◍", "Country-Centric", "Payment networks, location-based"),
		option("▤", "Token-Centric", "Asset-focused, wallet-based"),
	)

	country, _ := router.FlowEntry(router.FlowCountry)
	token, _ := router.FlowEntry(router.FlowToken)
	return View{
		Title: "Choose Test Mode",
		Body:  body,
		Actions: []Action{
			navigate("Country-Centric", country),
			navigate("Token-Centric", token),
		},
	}
}

// CountryHomeScreen is the entry of the country flow: the active country at a glance.
func CountryHomeScreen(p Props) View {
	c := p.context()
	s := c.Styles
	wallet := mockdata.Wallet()
	country := wallet.Active

	summary := components.NewCard(c).
		WithTitle(country.Flag + " " + country.Name).
		WithBadge("Quick Pay").
		WithLines(
			s.TextMuted.Render(components.Limits(country.QuickPay.PerTx, country.QuickPay.PerDay)),
		).
		View()

	body := components.Stack(
		components.Header(c, components.HeaderSpec{Title: "Home"}),
		components.Gap(1),
		components.BalanceBlock(c, "Available to spend", components.USD(country.AvailableBalance),
			"of "+components.USD(wallet.TotalBalance)+" total"),
		components.Gap(1),
		summary,
	)

	return View{
		Title: "Home",
		Body:  body,
		Actions: []Action{
			navigate("Wallet", "/(screens)/wallet"),
			navigate("Pay", "/(tabs)/pay"),
			navigate("Payment Networks", "/(screens)/settings/payment-networks"),
			navigate("Menu", "/(tabs)/menu"),
			back("Back to test modes"),
		},
	}
}

func placeholder(p Props, title, text string) View {
	c := p.context()
	body := components.Stack(
		components.Gap(3),
		components.Center(c.Inner(), c.Styles.Heading.Render(text)),
	)
	return View{Title: title, Body: body, Actions: []Action{back("Back")}}
}

// CountryPayScreen is the pay tab placeholder.
func CountryPayScreen(p Props) View {
	return placeholder(p, "Pay", "Pay Screen")
}

// CountryMenuScreen is the menu tab placeholder.
func CountryMenuScreen(p Props) View {
	return placeholder(p, "Menu", "Menu Screen")
}

// WalletScreen shows the total balance, the active country with its tiers and the
// remaining assets.
func WalletScreen(p Props) View {
	c := p.context()
	s := c.Styles
	wallet := mockdata.Wallet()
	country := wallet.Active

	countryCard := components.NewCard(c)
	inner := countryCard.Context()

	tokenRows := make([]string, 0, len(country.QuickPay.Tokens))
	actions := make([]Action, 0, len(country.QuickPay.Tokens)+1)
	for _, t := range country.QuickPay.Tokens {
		tokenRows = append(tokenRows, components.TokenRow(inner, components.TokenRowData{
			Color:    t.IconColor,
			Symbol:   t.Symbol,
			Subtitle: t.Chain,
			Amount:   components.USD(t.Balance),
			Chevron:  true,
		}))
		path, _ := router.Path(router.TokenDetail, map[string]string{"id": string(t.ID)})
		actions = append(actions, navigate(fmt.Sprintf("%s · %s", t.Symbol, t.Chain), path))
	}

	lines := []string{
		s.DisplayBalance.Render(components.USD(country.AvailableBalance)),
		s.TextMuted.Render("available to spend"),
		components.Rule(c, countryCard.ContentWidth()),
		components.Spread(inner.Inner(), s.Heading.Render("Quick Pay"),
			s.TextMuted.Render(components.Limits(country.QuickPay.PerTx, country.QuickPay.PerDay))),
	}
	lines = append(lines, tokenRows...)
	countryView := countryCard.WithTitle(country.Flag + " " + country.Name).WithLines(lines...).View()

	proStatus := components.Link(c, "Verify to unlock "+components.GlyphArrow)
	if country.ProPay.Unlocked {
		proStatus = components.Badge(c, "Active")
	}
	proCard := components.NewCard(c).
		WithStyle(outlinedCard(c)).
		WithTitle("Pro Pay").
		WithLines(
			s.TextMuted.Render(components.Limits(country.ProPay.PerTx, country.ProPay.PerDay)),
			proStatus,
		).
		View()

	assets := make([]string, 0, len(wallet.OtherAssets))
	for _, a := range wallet.OtherAssets {
		assets = append(assets, components.AssetRow(c, a.Symbol, a.Chain,
			formatAmount(a.Amount), components.USD(a.USDValue), a.IconColor))
	}

	body := components.Stack(
		components.Header(c, components.HeaderSpec{Lead: components.GlyphBack, Title: "Wallet", Trailing: "Manage"}),
		components.Gap(1),
		components.BalanceBlock(c, "Total Balance", components.USD(wallet.TotalBalance), ""),
		components.Gap(1),
		countryView,
		proCard,
		components.Gap(1),
		components.SectionHeader(c, "Other Assets", components.USD(mockdata.OtherAssetsValue())),
		components.Stack(assets...),
	)

	actions = append(actions, back("Back"))
	return View{Title: "Wallet", Body: body, Actions: actions}
}

// TokenDetailScreen shows one token of the active country. An empty id falls back
// to the default token; an unknown id renders the not-found placeholder.
func TokenDetailScreen(p Props) View {
	c := p.context()

	token, ok := mockdata.Token(p.Param("id")).Get()
	if !ok {
		return View{
			Title:   components.NotFoundText,
			Body:    components.NotFound(c, components.NotFoundText),
			Actions: []Action{back("Back")},
		}
	}

	width := c.Inner()
	info := components.NewCard(c)
	infoCtx := info.Context()
	infoView := info.WithLines(
		components.InfoRow(infoCtx, "Network", token.Network),
		components.InfoRow(infoCtx, "Address", token.Address+" ⧉"),
	).View()

	txs := make([]string, 0, len(token.Transactions))
	for _, tx := range token.Transactions {
		txs = append(txs, components.TransactionRow(c, tx.Direction == mockdata.Received,
			tx.Amount, token.Symbol, tx.Date, tx.Time))
	}

	body := components.Stack(
		components.Header(c, components.HeaderSpec{Lead: components.GlyphBack, Title: token.Symbol}),
		components.Gap(1),
		components.Center(width, components.TokenIcon(components.TokenGlyph(token.Symbol), token.IconColor)),
		components.BalanceBlock(c, "", components.Token(token.Balance, token.Symbol), components.USD(token.USDValue)),
		components.Gap(1),
		components.ActionButtons(c,
			components.ActionSpec{Glyph: "↙", Label: "Top Up"},
			components.ActionSpec{Glyph: "↗", Label: "Send"},
			components.ActionSpec{Glyph: "⇄", Label: "Swap"},
		),
		components.Gap(1),
		infoView,
		components.Gap(1),
		components.SectionHeader(c, "Transactions", ""),
		components.Stack(txs...),
	)

	return View{Title: token.Symbol, Body: body, Actions: []Action{back("Back")}}
}

func outlinedCard(c components.Context) components.CardStyle {
	style := components.DefaultCardStyle(c)
	style.BorderStyle = style.BorderStyle.BorderForeground(lipgloss.Color(c.Value().Colors.Border))
	return style
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%g", v)
}
