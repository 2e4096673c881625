package screens

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yodl/internal/components"
	"github.com/alexisbeaulieu97/yodl/internal/router"
	"github.com/alexisbeaulieu97/yodl/internal/theme"
)

func render(t *testing.T, path string, mode theme.Mode) View {
	t.Helper()

	m, err := router.Resolve(path)
	require.NoError(t, err, path)
	view, err := Render(m, theme.Snapshot(mode), components.DefaultWidth)
	require.NoError(t, err, path)
	return view
}

func targets(view View) []string {
	var out []string
	for _, a := range view.Actions {
		if a.Kind == ActionNavigate {
			out = append(out, a.Target)
		}
	}
	return out
}

func TestEveryRouteHasAScreen(t *testing.T) {
	t.Parallel()

	for _, r := range router.Routes() {
		_, ok := Default().Lookup(r.Name)
		assert.True(t, ok, "route %s", r.Name)
	}
}

func TestEveryScreenRendersInsideTheFrame(t *testing.T) {
	t.Parallel()

	for _, mode := range theme.Modes() {
		for _, r := range router.Routes() {
			path, err := router.Path(r.Name, map[string]string{"id": "usdt"})
			require.NoError(t, err)

			view := render(t, path, mode)
			assert.NotEmpty(t, view.Body, path)
			assert.NotEmpty(t, view.Actions, path)

			doc := Document(theme.Snapshot(mode), components.DefaultWidth, view, 0)
			assert.Contains(t, doc, components.StatusTime, path)
			for _, line := range strings.Split(doc, "\n") {
				assert.Equal(t, components.DefaultWidth, lipgloss.Width(line), "%s: %q", path, line)
			}
		}
	}
}

func TestNavigateTargetsResolve(t *testing.T) {
	t.Parallel()

	for _, r := range router.Routes() {
		path, err := router.Path(r.Name, map[string]string{"id": "usdt-arb"})
		require.NoError(t, err)
		for _, target := range targets(render(t, path, theme.ModeDark)) {
			_, err := router.Resolve(target)
			assert.NoError(t, err, "%s -> %s", path, target)
		}
	}
}

func TestSplitOffersBothFlows(t *testing.T) {
	t.Parallel()

	view := render(t, "/", theme.ModeDark)
	assert.Contains(t, view.Body, "Choose Test Mode")
	assert.Contains(t, view.Body, "Country-Centric")
	assert.Contains(t, view.Body, "Token-Centric")
	assert.Equal(t, []string{"/(tabs)", "/(tabs-token)"}, targets(view))
}

func TestTokenDetailKnownID(t *testing.T) {
	t.Parallel()

	view := render(t, "/(screens)/token/usdt-arb", theme.ModeDark)
	assert.Equal(t, "USDT", view.Title)
	assert.Contains(t, view.Body, "200.00 USDT")
	assert.Contains(t, view.Body, "$200.00")
	assert.Contains(t, view.Body, "Arbitrum One")
	assert.Contains(t, view.Body, "0x8968...ddD7E9")
	assert.Contains(t, view.Body, "+50 USDT")
	assert.Contains(t, view.Body, "-25 USDT")
	assert.Equal(t, 3, strings.Count(view.Body, "AUG •"))
}

func TestTokenDetailUnknownIDRendersNotFound(t *testing.T) {
	t.Parallel()

	var view View
	require.NotPanics(t, func() {
		view = render(t, "/(screens)/token/doesnotexist", theme.ModeDark)
	})
	assert.Contains(t, view.Body, "Token not found")
	require.Len(t, view.Actions, 1)
	assert.Equal(t, ActionBack, view.Actions[0].Kind)
}

func TestTokenDetailEmptyIDFallsBack(t *testing.T) {
	t.Parallel()

	view := render(t, "/(screens)/token", theme.ModeDark)
	assert.Contains(t, view.Body, "Arbitrum One")
}

func TestAssetDetailFallsBackToUSDT(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/(tabs-token)/token/doesnotexist", "/(tabs-token)/token"} {
		view := render(t, path, theme.ModeDark)
		assert.Equal(t, "USDT", view.Title, path)
		assert.Contains(t, view.Body, "SPENDABLE IN", path)
		assert.Contains(t, view.Body, "Verify →", path)
		assert.Contains(t, view.Body, "-30,000 đ", path)
	}

	eth := render(t, "/(tabs-token)/token/eth", theme.ModeDark)
	assert.Equal(t, "ETH", eth.Title)
	assert.Contains(t, eth.Body, "$98.50")
	assert.NotContains(t, eth.Body, "LIMITS")
	assert.NotContains(t, eth.Body, "HISTORY")
}

func TestWalletScreen(t *testing.T) {
	t.Parallel()

	view := render(t, "/(screens)/wallet", theme.ModeDark)
	assert.Contains(t, view.Body, "$785.00")
	assert.Contains(t, view.Body, "Vietnam")
	assert.Contains(t, view.Body, "$200/tx · $500/day")
	assert.Contains(t, view.Body, "$2,000/tx · $5,000/day")
	assert.Contains(t, view.Body, "Verify to unlock")
	assert.Contains(t, view.Body, "OTHER ASSETS")
	assert.Contains(t, view.Body, "$125.00")
	assert.Contains(t, view.Body, "0.042")
	assert.Equal(t, []string{"/(screens)/token/usdt-arb", "/(screens)/token/usdt-bnb"}, targets(view))
}

func TestTokenWalletScreen(t *testing.T) {
	t.Parallel()

	view := render(t, "/(tabs-token)/wallet", theme.ModeDark)
	assert.Contains(t, view.Body, "$625.00")
	assert.Contains(t, view.Body, "$500.00 spendable · $125.00 other")
	assert.Contains(t, view.Body, "FOR PAYMENTS")
	assert.Contains(t, view.Body, "Swap to spend")
	assert.Equal(t, []string{
		"/(tabs-token)/token/usdt",
		"/(tabs-token)/token/usdc",
		"/(tabs-token)/token/eth",
		"/(tabs-token)/token/dai",
	}, targets(view))
}

func TestTokenHomeScreen(t *testing.T) {
	t.Parallel()

	view := render(t, "/(tabs-token)", theme.ModeDark)
	assert.Contains(t, view.Body, "$125.00")
	assert.Contains(t, view.Body, "VND 3,293,125.00")
	assert.Contains(t, view.Body, "-475,000 VND")
	assert.Contains(t, targets(view), "/(tabs-token)/wallet")
	assert.Contains(t, targets(view), "/(tabs-token)/menu")
}

func TestPaymentNetworksScreen(t *testing.T) {
	t.Parallel()

	view := render(t, "/(screens)/settings/payment-networks", theme.ModeDark)
	assert.Contains(t, view.Body, "Quick Pay")
	assert.Contains(t, view.Body, "Pro Pay")
	assert.Contains(t, view.Body, "Global Pay")
	assert.Contains(t, view.Body, "Active")
	assert.Equal(t, 2, strings.Count(view.Body, "Verify to unlock"))
	assert.Equal(t, []string{"/(screens)/settings/quick-pay"}, targets(view))
}

func TestQuickPayScreen(t *testing.T) {
	t.Parallel()

	view := render(t, "/(screens)/settings/quick-pay", theme.ModeDark)
	assert.Contains(t, view.Body, "Your Limits")
	assert.Contains(t, view.Body, "$5,000 USD")
	assert.Contains(t, view.Body, "No verification required")
	assert.Contains(t, view.Body, "Supported tokens:")
	assert.Contains(t, view.Body, "Arbitrum")
}

func TestCountryPlaceholders(t *testing.T) {
	t.Parallel()

	assert.Contains(t, render(t, "/(tabs)/pay", theme.ModeDark).Body, "Pay Screen")
	assert.Contains(t, render(t, "/(tabs)/menu", theme.ModeDark).Body, "Menu Screen")

	home := render(t, "/(tabs)", theme.ModeDark)
	assert.Contains(t, home.Body, "$350.00")
	assert.Contains(t, targets(home), "/(screens)/wallet")
}

func TestSettingsThemeRowFollowsMode(t *testing.T) {
	t.Parallel()

	dark := render(t, "/(tabs-token)/menu", theme.ModeDark)
	light := render(t, "/(tabs-token)/menu", theme.ModeLight)

	toggle := func(v View) Action {
		for _, a := range v.Actions {
			if a.Kind == ActionToggleTheme {
				return a
			}
		}
		t.Fatalf("no theme action")
		return Action{}
	}

	assert.Equal(t, "Theme: Dark", toggle(dark).Label)
	assert.Equal(t, "Theme: Light", toggle(light).Label)
	assert.Contains(t, dark.Body, "$230/ $500")
	assert.Contains(t, dark.Body, "Upgrade for higher limits")
	assert.Contains(t, targets(dark), "/(screens)/settings/payment-networks")
}

func TestPropsContextFollowsTheme(t *testing.T) {
	t.Parallel()

	dark := Props{Theme: theme.Snapshot(theme.ModeDark)}.context()
	light := Props{Theme: theme.Snapshot(theme.ModeLight)}.context()

	assert.Equal(t, lipgloss.Color(theme.LightColors.BgPrimary), light.Styles.Screen.GetBackground())
	assert.Equal(t, lipgloss.Color(theme.LightColors.TextPrimary), light.Styles.TextPrimary.GetForeground())
	assert.NotEqual(t, dark.Styles.Screen.GetBackground(), light.Styles.Screen.GetBackground())
	assert.Equal(t, dark.Styles.Heading.GetBold(), light.Styles.Heading.GetBold())
}

func TestDocumentHighlightsCursor(t *testing.T) {
	t.Parallel()

	view := View{Body: "body", Actions: []Action{navigate("Wallet", "/(screens)/wallet"), back("Back")}}
	v := theme.Snapshot(theme.ModeDark)

	withCursor := Document(v, components.DefaultWidth, view, 1)
	assert.Contains(t, withCursor, components.GlyphChevron+" Back")
	assert.NotContains(t, withCursor, components.GlyphChevron+" Wallet")

	none := Document(v, components.DefaultWidth, view, NoCursor)
	assert.NotContains(t, none, components.GlyphChevron+" ")
}

func TestRegistryMissingScreen(t *testing.T) {
	t.Parallel()

	m, err := router.Resolve("/(screens)/wallet")
	require.NoError(t, err)

	_, err = NewRegistry().Render(m, theme.Snapshot(theme.ModeDark), 0)
	assert.ErrorIs(t, err, errNoScreen)
}

func TestActionKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "navigate", ActionNavigate.String())
	assert.Equal(t, "back", ActionBack.String())
	assert.Equal(t, "toggle-theme", ActionToggleTheme.String())
	assert.Equal(t, "unknown", ActionKind(9).String())
}
