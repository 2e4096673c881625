package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/yodl/internal/router"
	"github.com/alexisbeaulieu97/yodl/internal/screens"
)

const tooSmallPrefix = "Terminal too small"

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tooSmall = m.width < m.frameWidth || m.height < MinHeight
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ThemeChangedMsg:
		m.value = msg.Value
		m.applyHelpStyles()
		m.render()
		m.log.WithFields(map[string]any{"theme": string(msg.Value.Theme)}).Info("theme changed")
		return m, m.listen()

	case NavigateMsg:
		m.push(msg.Path)
		return m, nil

	case BackMsg:
		m.back()
		return m, nil

	case ErrorMsg:
		if msg.Err != nil {
			m.setError(msg.Err)
			m.layout()
		}
		return m, nil

	case ClearErrorMsg:
		m.clearError()
		m.layout()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.syncKeys()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.clearError()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()
		m.render()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()
		m.render()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.activate()

	case key.Matches(msg, m.keys.Back):
		if msg.String() == "esc" && m.showError {
			m.clearError()
			m.layout()
			return m, nil
		}
		m.back()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.provider.ToggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Country):
		m.enterFlow(router.FlowCountry)
		return m, nil

	case key.Matches(msg, m.keys.Token):
		m.enterFlow(router.FlowToken)
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.home()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// activate follows the highlighted action.
func (m Model) activate() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.view.Actions) {
		return m, nil
	}

	action := m.view.Actions[m.cursor]
	switch action.Kind {
	case screens.ActionNavigate:
		m.push(action.Target)
	case screens.ActionBack:
		m.back()
	case screens.ActionToggleTheme:
		m.provider.ToggleTheme()
	}
	return m, nil
}

// enterFlow jumps from the splash into a flow; other screens ignore it.
func (m *Model) enterFlow(flow router.Flow) {
	if m.nav.Current().Route.Name != router.Split {
		return
	}
	path, err := router.FlowEntry(flow)
	if err != nil {
		m.setError(err)
		m.layout()
		return
	}
	m.push(path)
}

func (m *Model) push(path string) {
	if err := m.nav.Push(path); err != nil {
		m.setError(fmt.Errorf("navigate: %w", err))
		m.layout()
		return
	}
	m.clearError()
	m.resetScreen()
	m.layout()
}

// home drops the stack back to the splash.
func (m *Model) home() {
	if !m.nav.CanGoBack() {
		return
	}
	if err := m.nav.Reset(router.RootPath); err != nil {
		m.setError(fmt.Errorf("navigate: %w", err))
		m.layout()
		return
	}
	m.clearError()
	m.resetScreen()
	m.layout()
}

func (m *Model) back() {
	if !m.nav.Back() {
		return
	}
	m.resetScreen()
	m.layout()
}
