package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yodl/internal/components"
	"github.com/alexisbeaulieu97/yodl/internal/router"
	"github.com/alexisbeaulieu97/yodl/internal/screens"
	"github.com/alexisbeaulieu97/yodl/internal/theme"
	apperrors "github.com/alexisbeaulieu97/yodl/pkg/errors"
)

func newModel(t *testing.T, start string) (Model, *theme.Provider) {
	t.Helper()

	provider := theme.NewProvider(theme.ModeDark)
	ctx := theme.WithProvider(context.Background(), provider)
	m, err := New(ctx, Options{Start: start})
	require.NoError(t, err)
	t.Cleanup(m.Close)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), provider
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func TestNewRequiresProvider(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMissingProvider))

	var providerErr *apperrors.ProviderError
	assert.ErrorAs(t, err, &providerErr)
}

func TestNewRejectsUnknownStart(t *testing.T) {
	t.Parallel()

	ctx := theme.WithProvider(context.Background(), theme.NewProvider(theme.ModeDark))
	_, err := New(ctx, Options{Start: "/nowhere"})
	assert.ErrorIs(t, err, apperrors.ErrRouteNotFound)
}

func TestStartsOnSplash(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "")
	assert.Equal(t, router.Split, m.Current().Route.Name)
	assert.Contains(t, m.View(), "Choose Test Mode")
	assert.Contains(t, m.View(), components.StatusTime)
	assert.Len(t, m.Actions(), 2)
}

func TestGrowingWindowScrollsBackToTop(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 48, Height: MinHeight})
	m = next.(Model)
	require.Positive(t, m.viewport.YOffset)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	assert.Zero(t, m.viewport.YOffset)
	assert.Contains(t, m.View(), "Choose Test Mode")
	assert.Contains(t, m.View(), components.StatusTime)
}

func TestWindowSizeTooSmall(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 8})
	small := next.(Model)
	assert.Contains(t, small.View(), "Terminal too small (30x8)")

	next, _ = small.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	assert.NotContains(t, next.(Model).View(), "Terminal too small")
}

func TestCursorWraps(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "")
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, keyUp)
	assert.Equal(t, 1, m.Cursor())

	m = press(t, m, keyDown)
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, runes("j"))
	assert.Equal(t, 1, m.Cursor())
}

func TestEnterFollowsAction(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "")
	m = press(t, m, keyDown, keyEnter)
	assert.Equal(t, router.TokenHome, m.Current().Route.Name)
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, keyEnter)
	assert.Equal(t, router.TokenWallet, m.Current().Route.Name)

	m = press(t, m, keyEsc)
	assert.Equal(t, router.TokenHome, m.Current().Route.Name)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, router.Split, m.Current().Route.Name)

	m = press(t, m, keyEsc)
	assert.Equal(t, router.Split, m.Current().Route.Name, "root is never popped")
}

func TestFlowShortcuts(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "")
	m = press(t, m, runes("1"))
	assert.Equal(t, router.CountryHome, m.Current().Route.Name)

	m = press(t, m, runes("2"))
	assert.Equal(t, router.CountryHome, m.Current().Route.Name, "shortcuts only work on the splash")

	m = press(t, m, keyEsc, runes("2"))
	assert.Equal(t, router.TokenHome, m.Current().Route.Name)
}

func TestHomeReturnsToSplash(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "")
	m = press(t, m, runes("h"))
	assert.Equal(t, router.Split, m.Current().Route.Name, "home at the root is a no-op")

	m = press(t, m, runes("2"))
	next, _ := m.Update(NavigateMsg{Path: "/(tabs-token)/wallet"})
	m = next.(Model)
	require.Equal(t, router.TokenWallet, m.Current().Route.Name)

	m = press(t, m, runes("h"))
	assert.Equal(t, router.Split, m.Current().Route.Name)
	assert.Equal(t, 0, m.Cursor())

	m = press(t, m, keyEsc)
	assert.Equal(t, router.Split, m.Current().Route.Name, "home leaves nothing to pop")
}

func TestBackHintFollowsStack(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "")
	assert.NotContains(t, m.renderFooter(), "back")

	m = press(t, m, runes("1"))
	assert.Contains(t, m.renderFooter(), "back")

	m = press(t, m, keyEsc)
	assert.NotContains(t, m.renderFooter(), "back")
}

func TestBackActionPops(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "/(screens)/token/doesnotexist")
	assert.Contains(t, m.View(), "Token not found")

	next, _ := m.Update(NavigateMsg{Path: "/(screens)/wallet"})
	m = next.(Model)
	require.Equal(t, router.Wallet, m.Current().Route.Name)

	last := len(m.Actions()) - 1
	require.Equal(t, screens.ActionBack, m.Actions()[last].Kind)
	m = press(t, m, keyUp, keyEnter)
	assert.Equal(t, router.TokenDetail, m.Current().Route.Name)
}

func TestThemeToggleIsDeliveredThroughSubscription(t *testing.T) {
	t.Parallel()

	m, provider := newModel(t, "/(tabs-token)/menu")
	assert.Equal(t, theme.ModeDark, m.Theme().Theme)

	m = press(t, m, runes("t"))
	assert.Equal(t, theme.ModeLight, provider.Theme())
	assert.Equal(t, theme.ModeDark, m.Theme().Theme, "model waits for the notification")

	msg := m.listen()()
	changed, ok := msg.(ThemeChangedMsg)
	require.True(t, ok)
	assert.Equal(t, theme.LightColors.BgPrimary, changed.Value.Colors.BgPrimary)

	next, cmd := m.Update(changed)
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Equal(t, theme.ModeLight, m.Theme().Theme)

	labels := make([]string, 0, len(m.Actions()))
	for _, a := range m.Actions() {
		labels = append(labels, a.Label)
	}
	assert.Contains(t, labels, "Theme: Light")
}

func TestSettingsThemeActionToggles(t *testing.T) {
	t.Parallel()

	m, provider := newModel(t, "/(tabs-token)/menu")

	idx := -1
	for i, a := range m.Actions() {
		if a.Kind == screens.ActionToggleTheme {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	for range idx {
		m = press(t, m, keyDown)
	}
	press(t, m, keyEnter)
	assert.Equal(t, theme.ModeLight, provider.Theme())
}

func TestUnknownRouteShowsBanner(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "/(tabs)")
	next, _ := m.Update(NavigateMsg{Path: "/(tabs)/missing"})
	m = next.(Model)

	assert.Equal(t, router.CountryHome, m.Current().Route.Name)
	assert.Contains(t, m.ErrorMessage(), "route not found")
	assert.Contains(t, m.View(), "x to dismiss")

	m = press(t, m, runes("x"))
	assert.Empty(t, m.ErrorMessage())

	next, _ = m.Update(ErrorMsg{Err: errors.New("boom")})
	m = next.(Model)
	assert.Equal(t, "boom", m.ErrorMessage())

	m = press(t, m, keyEsc)
	assert.Empty(t, m.ErrorMessage())
	assert.Equal(t, router.CountryHome, m.Current().Route.Name, "esc dismisses before popping")

	next, _ = m.Update(ErrorMsg{Err: errors.New("boom")})
	next, _ = next.(Model).Update(ClearErrorMsg{})
	assert.Empty(t, next.(Model).ErrorMessage())
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "")
	short := m.View()
	assert.NotContains(t, short, "country flow")

	m = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "country flow")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "")
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestBackMsgAndCustomRegistry(t *testing.T) {
	t.Parallel()

	registry := screens.NewRegistry()
	registry.Register(router.Split, func(screens.Props) screens.View {
		return screens.View{Body: "custom splash"}
	})

	ctx := theme.WithProvider(context.Background(), theme.NewProvider(theme.ModeLight))
	m, err := New(ctx, Options{Registry: registry, Width: 60})
	require.NoError(t, err)
	defer m.Close()

	assert.Contains(t, m.View(), "custom splash")
	assert.Empty(t, m.Actions())

	next, _ := m.Update(NavigateMsg{Path: "/(screens)/wallet"})
	m = next.(Model)
	assert.Contains(t, m.ErrorMessage(), "screen not registered")

	next, _ = m.Update(BackMsg{})
	assert.Equal(t, router.Split, next.(Model).Current().Route.Name)
}
