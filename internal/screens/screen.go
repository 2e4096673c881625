// Package screens turns route matches into rendered screens. Every screen is a
// pure function of its props: the same params, theme and width always produce
// the same view.
package screens

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/yodl/internal/components"
	"github.com/alexisbeaulieu97/yodl/internal/router"
	"github.com/alexisbeaulieu97/yodl/internal/theme"
)

// Props are the inputs of a screen.
type Props struct {
	Params map[string]string
	Theme  theme.Value
	Width  int
}

// Param returns a route parameter, empty when absent.
func (p Props) Param(name string) string {
	return p.Params[name]
}

func (p Props) context() components.Context {
	return components.NewContext(p.Theme, p.Width)
}

// ActionKind tells the shell what selecting an action does.
type ActionKind int

const (
	// ActionNavigate pushes Target onto the navigation stack.
	ActionNavigate ActionKind = iota
	// ActionBack pops the current screen.
	ActionBack
	// ActionToggleTheme flips the theme selector.
	ActionToggleTheme
)

func (k ActionKind) String() string {
	switch k {
	case ActionNavigate:
		return "navigate"
	case ActionBack:
		return "back"
	case ActionToggleTheme:
		return "toggle-theme"
	default:
		return "unknown"
	}
}

// Action is one selectable affordance of a screen.
type Action struct {
	Label  string
	Kind   ActionKind
	Target string
}

func navigate(label, target string) Action {
	return Action{Label: label, Kind: ActionNavigate, Target: target}
}

func back(label string) Action {
	return Action{Label: label, Kind: ActionBack}
}

// View is a rendered screen body plus its actions in display order.
type View struct {
	Title   string
	Body    string
	Actions []Action
}

// Screen renders a view from props.
type Screen func(Props) View

// Registry binds route names to screens.
type Registry struct {
	mu      sync.RWMutex
	screens map[router.Name]Screen
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{screens: make(map[router.Name]Screen)}
}

// Register binds a screen to name, replacing any previous binding.
func (r *Registry) Register(name router.Name, screen Screen) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screens[name] = screen
}

// Lookup returns the screen bound to name.
func (r *Registry) Lookup(name router.Name) (Screen, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	screen, ok := r.screens[name]
	return screen, ok
}

// Render resolves the screen for m and renders it.
func (r *Registry) Render(m router.Match, v theme.Value, width int) (View, error) {
	screen, ok := r.Lookup(m.Route.Name)
	if !ok {
		return View{}, fmt.Errorf("no screen registered for %s: %w", m.Route.Name, errNoScreen)
	}
	return screen(Props{Params: m.Params, Theme: v, Width: width}), nil
}

var errNoScreen = errors.New("screen not registered")

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry holding every screen of the app.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		r.Register(router.Split, SplitScreen)
		r.Register(router.CountryHome, CountryHomeScreen)
		r.Register(router.CountryPay, CountryPayScreen)
		r.Register(router.CountryMenu, CountryMenuScreen)
		r.Register(router.Wallet, WalletScreen)
		r.Register(router.TokenDetail, TokenDetailScreen)
		r.Register(router.PaymentNetworks, PaymentNetworksScreen)
		r.Register(router.QuickPay, QuickPayScreen)
		r.Register(router.TokenHome, TokenHomeScreen)
		r.Register(router.TokenWallet, TokenWalletScreen)
		r.Register(router.AssetDetail, AssetDetailScreen)
		r.Register(router.Settings, SettingsScreen)
		defaultRegistry = r
	})
	return defaultRegistry
}

// Render renders m with the default registry.
func Render(m router.Match, v theme.Value, width int) (View, error) {
	return Default().Render(m, v, width)
}

// NoCursor renders a document without a highlighted action.
const NoCursor = -1

// Document frames a view for display: the body, then the action list with the
// cursor row highlighted.
func Document(v theme.Value, width int, view View, cursor int) string {
	c := components.NewContext(v, width)
	s := c.Styles

	var b strings.Builder
	b.WriteString(view.Body)

	if len(view.Actions) > 0 {
		b.WriteString("\n\n")
		b.WriteString(components.Divider(c))
		for i, a := range view.Actions {
			b.WriteString("\n")
			if i == cursor {
				b.WriteString(s.Selected.Render(components.GlyphChevron + " " + a.Label))
				continue
			}
			b.WriteString(s.TextSecondary.Render("  " + a.Label))
		}
	}

	return components.Frame(c, b.String())
}
