package screens

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yodl/internal/components"
	"github.com/alexisbeaulieu97/yodl/internal/mockdata"
	"github.com/alexisbeaulieu97/yodl/internal/router"
)

// TokenHomeScreen is the entry of the token flow: balance, quick actions and activity.
func TokenHomeScreen(p Props) View {
	c := p.context()
	v := c.Value()
	width := c.Inner()
	user := mockdata.HomeUser()

	band := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(v.Gradient.Header[1])).
		Width(width)
	logo := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Gradient.Header[0])).Bold(true).Render("◆◇ yodl")
	header := band.Render(components.Spread(width, logo, "? ⚙"))

	quick := components.ActionButtons(c,
		components.ActionSpec{Glyph: "+", Label: "Top Up"},
		components.ActionSpec{Glyph: "▤", Label: "Wallet"},
	)

	rows := make([]string, 0, 1)
	for _, a := range mockdata.HomeActivity() {
		rows = append(rows, components.ActivityRow(c, components.ActivityGlyph(string(a.Kind)),
			a.Title, a.Timestamp, a.AmountLocal, a.AmountUSDT))
	}

	body := components.Stack(
		header,
		components.Gap(1),
		components.BalanceBlock(c, "",
			components.USD(user.Balance),
			components.Currency(user.SecondaryCurrency, user.SecondaryBalance)),
		components.Gap(1),
		quick,
		components.Gap(1),
		components.SectionHeader(c, "Activity", "View all"),
		components.Stack(rows...),
	)

	return View{
		Title: "Home",
		Body:  body,
		Actions: []Action{
			navigate("Wallet", "/(tabs-token)/wallet"),
			navigate("Settings", "/(tabs-token)/menu"),
			back("Back to test modes"),
		},
	}
}

// TokenWalletScreen groups holdings into payment tokens and other assets.
func TokenWalletScreen(p Props) View {
	c := p.context()
	s := c.Styles
	summary := mockdata.TokenWalletSummary()

	balance := components.NewCard(c).
		WithStyle(outlinedCard(c)).
		WithLines(
			s.TextMuted.Render("Total Balance"),
			s.DisplayBalance.Render(components.USD(summary.TotalBalance)),
			s.Success.Render(components.USD(summary.SpendableBalance))+
				s.TextMuted.Render(" spendable · "+components.USD(summary.OtherBalance)+" other"),
		).
		View()

	var actions []Action
	section := func(tokens []mockdata.WalletToken) string {
		rows := make([]string, 0, len(tokens))
		for _, t := range tokens {
			amount := components.USD(t.Balance)
			secondary := ""
			if t.BalanceUSD > 0 {
				amount = components.Grouped(t.Balance)
				secondary = components.USD(t.BalanceUSD)
			}
			rows = append(rows, components.TokenRow(c, components.TokenRowData{
				Glyph:     t.Glyph,
				Color:     t.Color,
				Symbol:    t.Name,
				Subtitle:  t.Network,
				Amount:    amount,
				Secondary: secondary,
				Active:    t.Active,
				Chevron:   true,
			}))
			path, _ := router.Path(router.AssetDetail, map[string]string{"id": string(t.ID)})
			actions = append(actions, navigate(t.Name, path))
		}
		return components.Stack(rows...)
	}

	body := components.Stack(
		components.Header(c, components.HeaderSpec{Lead: components.GlyphBack, Title: "Wallet", Trailing: "Manage"}),
		components.Gap(1),
		balance,
		components.Gap(1),
		components.SectionHeader(c, "For Payments", "Tap for details"),
		section(mockdata.PaymentTokens()),
		components.Gap(1),
		components.SectionHeader(c, "Other Assets", "Swap to spend"),
		section(mockdata.OtherWalletTokens()),
	)

	actions = append(actions, back("Back"))
	return View{Title: "Wallet", Body: body, Actions: actions}
}

// AssetDetailScreen shows one asset across its networks. Empty or unknown ids fall
// back to the default asset.
func AssetDetailScreen(p Props) View {
	c := p.context()
	s := c.Styles
	width := c.Inner()
	asset := mockdata.AssetOrDefault(p.Param("id"))
	active := asset.ActiveNetwork()

	names := make([]string, len(asset.Networks))
	activeIndex := 0
	for i, n := range asset.Networks {
		names[i] = n.Name
		if n.ID == active.ID {
			activeIndex = i
		}
	}

	blocks := []string{
		components.Header(c, components.HeaderSpec{
			Lead:  components.GlyphBack,
			Title: components.TokenIcon(asset.Glyph, asset.Color) + " " + asset.Name,
		}),
		components.Gap(1),
		components.NetworkPills(c, names, activeIndex),
		components.Gap(1),
		components.BalanceBlock(c, "", components.USD(active.Balance), components.Token(active.BalanceToken, asset.Name)),
		components.Gap(1),
		components.ActionButtons(c,
			components.ActionSpec{Glyph: "+", Label: "Top Up"},
			components.ActionSpec{Glyph: "↗", Label: "Send"},
			components.ActionSpec{Glyph: "⟳", Label: "Swap"},
		),
	}

	if len(asset.SpendableIn) > 0 {
		blocks = append(blocks,
			components.Gap(1),
			components.SectionHeader(c, "Spendable In", ""),
			components.FlagRow(c, asset.SpendableIn, false),
		)
	}

	if asset.HasLimits() {
		half := (width - 1) / 2
		cardStyle := components.DefaultCardStyle(c)
		cardStyle.Width = half

		quickStyle := cardStyle
		quickStyle.BorderStyle = quickStyle.BorderStyle.BorderForeground(lipgloss.Color(c.Value().Semantic.Success))
		quick := components.NewCard(c).WithStyle(quickStyle).WithTitle("Quick").WithLines(
			s.TextMuted.Render(components.Dollars(asset.Limits.Quick.PerTx)+"/tx"),
			s.TextMuted.Render(components.Dollars(asset.Limits.Quick.PerDay)+"/day"),
		).View()

		proLines := []string{
			s.TextMuted.Render(components.Dollars(asset.Limits.Pro.PerTx) + "/tx"),
			s.TextMuted.Render(components.Dollars(asset.Limits.Pro.PerDay) + "/day"),
		}
		if !asset.Limits.Pro.Verified {
			proLines = append(proLines, components.Link(c, "Verify "+components.GlyphArrow))
		}
		pro := components.NewCard(c).WithStyle(cardStyle).WithTitle("Pro").WithLines(proLines...).View()

		blocks = append(blocks,
			components.Gap(1),
			components.SectionHeader(c, "Limits", ""),
			lipgloss.JoinHorizontal(lipgloss.Top, quick, " ", pro),
		)
	}

	if len(asset.History) > 0 {
		rows := make([]string, 0, len(asset.History))
		for _, h := range asset.History {
			rows = append(rows, components.HistoryRow(c, h.Kind == mockdata.HistoryPayment, h.Title, h.Date, h.Amount, h.Negative))
		}
		blocks = append(blocks,
			components.Gap(1),
			components.SectionHeader(c, "History", "View all"),
			components.Stack(rows...),
		)
	}

	return View{Title: asset.Name, Body: components.Stack(blocks...), Actions: []Action{back("Back")}}
}

var menuGlyphs = map[string]string{
	mockdata.MenuPaymentNetworks: "◍",
	mockdata.MenuCurrency:        "$",
	mockdata.MenuTheme:           "◐",
	mockdata.MenuAbout:           "♡",
	mockdata.MenuSupport:         "?",
	mockdata.MenuLogout:          "⏻",
}

// SettingsScreen shows quick pay usage and the settings menu. The theme row
// reflects the current mode and toggles it.
func SettingsScreen(p Props) View {
	c := p.context()
	s := c.Styles
	settings := mockdata.SettingsMenu()

	usage := components.NewCard(c).WithTitle("Quick Pay").WithBadge("Active")
	inner := usage.Context()
	limits := make([]string, 0, len(settings.QuickPayUsage))
	for _, u := range settings.QuickPayUsage {
		limits = append(limits, components.LimitRow(inner, components.LimitRowData{
			Label:   u.Label,
			Current: u.Current,
			Max:     u.Max,
			Color:   u.Color,
			Bar:     true,
		}))
	}
	usageView := usage.WithLines(limits...).WithFooter(s.Accent.Render("Upgrade for higher limits")).View()

	paymentNetworks, _ := router.Path(router.PaymentNetworks, nil)
	var actions []Action
	sections := make([]string, 0, len(settings.Sections))
	for _, section := range settings.Sections {
		rows := make([]string, 0, len(section.Items))
		for _, item := range section.Items {
			row := components.MenuRowData{
				Glyph:   menuGlyphs[item.ID],
				Label:   item.Label,
				Chevron: item.ShowChevron,
			}
			switch item.ID {
			case mockdata.MenuTheme:
				row.Subtitle = p.Theme.Theme.Label()
				actions = append(actions, Action{Label: "Theme: " + row.Subtitle, Kind: ActionToggleTheme})
			case mockdata.MenuPaymentNetworks:
				actions = append(actions, navigate(item.Label, paymentNetworks))
			}
			rows = append(rows, components.MenuRow(c, row))
		}

		block := components.Stack(rows...)
		if section.Title != "" {
			block = components.Stack(s.TextMuted.Render(section.Title), block)
		} else {
			block = components.Stack(components.Divider(c), block)
		}
		sections = append(sections, block)
	}

	body := components.Stack(
		components.Header(c, components.HeaderSpec{Lead: components.GlyphClose, Title: "Settings"}),
		components.Gap(1),
		usageView,
		components.Gap(1),
		components.Stack(sections...),
	)

	actions = append(actions, back("Close"))
	return View{Title: "Settings", Body: body, Actions: actions}
}
