package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// TokenRowData is the content of a token row. Every screen listing tokens uses
// this one definition; optional fields are left empty when a screen has no value.
type TokenRowData struct {
	Glyph     string
	Color     string
	Symbol    string
	Subtitle  string
	Amount    string
	Secondary string
	Active    bool
	Chevron   bool
}

// TokenRow renders an icon, symbol and subtitle on the left and the amount on the right.
func TokenRow(c Context, d TokenRowData) string {
	s := c.Styles
	width := c.Inner()

	marker := " "
	if d.Active {
		marker = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Value().Semantic.Success)).Render("▌")
	}

	glyph := d.Glyph
	if glyph == "" {
		glyph = TokenGlyph(d.Symbol)
	}
	icon := TokenIcon(glyph, d.Color)
	prefix := marker + icon + " "
	indent := lipgloss.Width(prefix)

	right := s.TextPrimary.Bold(true).Render(d.Amount)
	if d.Chevron {
		right += " " + s.TextMuted.Render(GlyphChevron)
	}

	first := Spread(width, prefix+s.TextPrimary.Bold(true).Render(d.Symbol), right)
	if d.Subtitle == "" && d.Secondary == "" {
		return first
	}

	sub := ""
	if d.Subtitle != "" {
		sub = s.TextMuted.Render(d.Subtitle)
	}
	sec := ""
	if d.Secondary != "" {
		sec = s.TextMuted.Render(d.Secondary)
	}
	if d.Chevron && sec != "" {
		sec += "  "
	}
	second := Spread(width-indent, sub, sec)
	return first + "\n" + Indent(indent, second)
}

// AssetRow renders a non-payment holding with its token amount and USD value.
func AssetRow(c Context, symbol, chain, amount, usd, color string) string {
	return TokenRow(c, TokenRowData{
		Color:     color,
		Symbol:    symbol,
		Subtitle:  chain,
		Amount:    amount,
		Secondary: usd,
	})
}

// ActivityGlyph maps an activity kind to its icon.
func ActivityGlyph(kind string) string {
	switch kind {
	case "spend":
		return "🛍"
	case "topup":
		return "+"
	default:
		return "▣"
	}
}

// ActivityRow renders one home activity entry.
func ActivityRow(c Context, glyph, title, timestamp, local, usdt string) string {
	s := c.Styles
	width := c.Inner()
	icon := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Value().Colors.BgElevated)).
		Padding(0, 1).
		Render(glyph)
	indent := lipgloss.Width(icon) + 1

	first := Spread(width, icon+" "+s.TextPrimary.Bold(true).Render(title), s.TextPrimary.Render(local))
	second := Spread(width-indent, s.TextMuted.Render(timestamp), s.TextMuted.Render(usdt))
	return first + "\n" + Indent(indent, second)
}

// TransactionRow renders a received or sent transfer; received amounts use the success colour.
func TransactionRow(c Context, received bool, amount float64, symbol, date, clock string) string {
	s := c.Styles
	label, glyph, sign := "Sent", "↗", "-"
	amountStyle := s.TextPrimary
	if received {
		label, glyph, sign = "Received", "↙", "+"
		amountStyle = s.Success
	}
	icon := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Value().Colors.BgElevated)).
		Padding(0, 1).
		Render(glyph)
	indent := lipgloss.Width(icon) + 1

	value := fmt.Sprintf("%s%s %s", sign, trimAmount(amount), symbol)
	first := Spread(c.Inner(), icon+" "+s.TextPrimary.Render(label), amountStyle.Render(value))
	second := s.TextMuted.Render(date + " • " + clock)
	return first + "\n" + Indent(indent, second)
}

func trimAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// History row colours, fixed across modes.
const (
	historyPaymentBg = "#5A2828"
	historyTopUpBg   = "#1F4329"
	historyNegative  = "#FF6B6B"
	historyPositive  = "#22C55E"
)

// HistoryRow renders an asset history entry with a signed amount.
func HistoryRow(c Context, payment bool, title, date, amount string, negative bool) string {
	s := c.Styles
	glyph, bg := "↙", historyTopUpBg
	if payment {
		glyph, bg = "↗", historyPaymentBg
	}
	icon := lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color(bg)).Padding(0, 1).Render(glyph)
	amountColor := historyPositive
	if negative {
		amountColor = historyNegative
	}
	indent := lipgloss.Width(icon) + 1

	first := Spread(c.Inner(), icon+" "+s.TextPrimary.Render(title),
		lipgloss.NewStyle().Foreground(lipgloss.Color(amountColor)).Render(amount))
	return first + "\n" + Indent(indent, s.TextMuted.Render(date))
}

// InfoRow renders a muted label with a value on the right.
func InfoRow(c Context, label, value string) string {
	return Spread(c.Inner(), c.Styles.TextMuted.Render(label), c.Styles.TextPrimary.Render(value))
}

// MenuRowData is the content of a settings row.
type MenuRowData struct {
	Glyph    string
	Label    string
	Subtitle string
	Chevron  bool
}

// MenuRow renders a settings row with an accent icon.
func MenuRow(c Context, d MenuRowData) string {
	s := c.Styles
	left := s.Accent.Render(d.Glyph) + " " + s.TextPrimary.Render(d.Label)
	right := ""
	if d.Chevron {
		right = s.TextMuted.Render(GlyphChevron)
	}
	first := Spread(c.Inner(), left, right)
	if d.Subtitle == "" {
		return first
	}
	indent := lipgloss.Width(d.Glyph) + 1
	return first + "\n" + Indent(indent, s.TextMuted.Render(d.Subtitle))
}
