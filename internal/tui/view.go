package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/yodl/internal/components"
)

// View renders the current model state.
func (m Model) View() string {
	if m.tooSmall {
		return m.renderTooSmall()
	}

	var content strings.Builder
	if m.showError {
		content.WriteString(m.renderErrorBanner())
		content.WriteString("\n")
	}
	content.WriteString(m.viewport.View())
	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

func (m Model) renderTooSmall() string {
	return fmt.Sprintf("%s (%dx%d). Minimum size: %dx%d",
		tooSmallPrefix, m.width, m.height, m.frameWidth, MinHeight)
}

func (m Model) renderErrorBanner() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(m.value.Semantic.Error)).
		Bold(true).
		Width(m.frameWidth).
		Padding(0, 1).
		Render("✗ " + m.errorMsg + "  (x to dismiss)")
}

func (m Model) renderFooter() string {
	return lipgloss.NewStyle().Width(m.frameWidth).Render(m.help.View(m.keys))
}

// layout sizes the viewport to whatever the banner and footer leave free.
func (m *Model) layout() {
	m.help.Width = m.frameWidth
	m.syncKeys()

	used := lipgloss.Height(m.renderFooter())
	if m.showError {
		used += lipgloss.Height(m.renderErrorBanner())
	}

	m.viewport.Width = m.frameWidth
	m.viewport.Height = max(m.height-used, 1)
	m.viewport.GotoTop()
	m.revealCursor()
}

// syncKeys hides the back binding where it would do nothing.
func (m *Model) syncKeys() {
	m.keys.Back.SetEnabled(m.nav.CanGoBack() || m.showError)
}

func (m *Model) applyHelpStyles() {
	s := components.NewContext(m.value, m.frameWidth).Styles
	m.help.Styles.ShortKey = s.Accent
	m.help.Styles.ShortDesc = s.TextMuted
	m.help.Styles.ShortSeparator = s.Border
	m.help.Styles.FullKey = s.Accent
	m.help.Styles.FullDesc = s.TextMuted
	m.help.Styles.FullSeparator = s.Border
	m.help.Styles.Ellipsis = s.TextMuted
}
