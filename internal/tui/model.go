// Package tui is the interactive shell: a bubbletea program that renders the
// current screen inside the phone frame and turns its actions into a cursor list.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yodl/internal/components"
	"github.com/alexisbeaulieu97/yodl/internal/logger"
	"github.com/alexisbeaulieu97/yodl/internal/router"
	"github.com/alexisbeaulieu97/yodl/internal/screens"
	"github.com/alexisbeaulieu97/yodl/internal/theme"
)

// MinHeight is the smallest terminal height the shell renders in.
const MinHeight = 12

// Options configures a Model. The theme provider is read from the context.
type Options struct {
	// Start is the first path on the navigation stack; empty opens the splash.
	Start string
	// Width is the frame width in columns.
	Width    int
	Registry *screens.Registry
	Logger   *logger.Logger
}

// Model is the shell state.
type Model struct {
	nav         *router.Navigator
	provider    *theme.Provider
	registry    *screens.Registry
	log         *logger.Logger
	themes      chan theme.Value
	unsubscribe func()

	value  theme.Value
	view   screens.View
	cursor int

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	frameWidth int
	width      int
	height     int

	tooSmall  bool
	showError bool
	errorMsg  string
}

// New creates the shell model. It fails when ctx carries no theme provider or
// when the start path matches no route.
func New(ctx context.Context, opts Options) (Model, error) {
	provider, err := theme.FromContext(ctx)
	if err != nil {
		return Model{}, err
	}

	nav, err := router.NewNavigator(opts.Start)
	if err != nil {
		return Model{}, err
	}

	registry := opts.Registry
	if registry == nil {
		registry = screens.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	frame := components.NewContext(provider.Read(), opts.Width).Width

	themes := make(chan theme.Value, 8)
	unsubscribe := provider.Subscribe(func(v theme.Value) {
		select {
		case themes <- v:
		default:
			log.Warn("theme change dropped")
		}
	})

	vp := viewport.New(frame, MinHeight)
	vp.KeyMap.Up.SetEnabled(false)
	vp.KeyMap.Down.SetEnabled(false)

	m := Model{
		nav:         nav,
		provider:    provider,
		registry:    registry,
		log:         log,
		themes:      themes,
		unsubscribe: unsubscribe,
		value:       provider.Read(),
		viewport:    vp,
		help:        help.New(),
		keys:        defaultKeyMap(),
		frameWidth:  frame,
		width:       frame,
		height:      MinHeight,
	}
	m.applyHelpStyles()
	m.render()
	m.layout()

	return m, nil
}

// Init starts listening for theme changes.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

// Close stops listening to the provider.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Current returns the match on top of the navigation stack.
func (m Model) Current() router.Match {
	return m.nav.Current()
}

// Cursor returns the highlighted action index.
func (m Model) Cursor() int {
	return m.cursor
}

// Actions returns the actions of the current screen.
func (m Model) Actions() []screens.Action {
	return m.view.Actions
}

// Theme returns the theme value the current screen is rendered with.
func (m Model) Theme() theme.Value {
	return m.value
}

// ErrorMessage returns the banner text, empty when no banner is shown.
func (m Model) ErrorMessage() string {
	if !m.showError {
		return ""
	}
	return m.errorMsg
}

func (m Model) listen() tea.Cmd {
	themes := m.themes
	return func() tea.Msg {
		v, ok := <-themes
		if !ok {
			return nil
		}
		return ThemeChangedMsg{Value: v}
	}
}

// MoveCursorUp moves the cursor up with wrapping.
func (m *Model) MoveCursorUp() {
	if len(m.view.Actions) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.view.Actions) - 1
	}
}

// MoveCursorDown moves the cursor down with wrapping.
func (m *Model) MoveCursorDown() {
	if len(m.view.Actions) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.view.Actions) {
		m.cursor = 0
	}
}

// render re-renders the current screen into the viewport.
func (m *Model) render() {
	view, err := m.registry.Render(m.nav.Current(), m.value, m.frameWidth)
	if err != nil {
		m.setError(err)
		return
	}
	m.view = view
	if m.cursor >= len(view.Actions) {
		m.cursor = max(len(view.Actions)-1, 0)
	}

	cursor := m.cursor
	if len(view.Actions) == 0 {
		cursor = screens.NoCursor
	}
	m.viewport.SetContent(screens.Document(m.value, m.frameWidth, view, cursor))
	m.revealCursor()
}

// revealCursor scrolls the viewport so the highlighted action is visible.
func (m *Model) revealCursor() {
	if len(m.view.Actions) == 0 {
		return
	}
	// status bar and its blank line, the body, a blank line and the divider
	line := 2 + lineCount(m.view.Body) + 2 + m.cursor
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

func (m *Model) setError(err error) {
	m.showError = true
	m.errorMsg = err.Error()
	m.log.Error(err, "shell error")
}

func (m *Model) clearError() {
	m.showError = false
	m.errorMsg = ""
}

// resetScreen is called after the stack changes.
func (m *Model) resetScreen() {
	m.cursor = 0
	m.viewport.GotoTop()
	m.render()
	current := m.nav.Current()
	m.log.WithFields(map[string]any{
		"route": string(current.Route.Name),
		"path":  current.Path,
		"depth": m.nav.Depth(),
		"stack": m.nav.History(),
	}).Debug("screen shown")
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
