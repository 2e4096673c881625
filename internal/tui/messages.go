package tui

import "github.com/alexisbeaulieu97/yodl/internal/theme"

// ThemeChangedMsg carries the provider value after a theme change.
type ThemeChangedMsg struct {
	Value theme.Value
}

// NavigateMsg requests a push of Path onto the navigation stack.
type NavigateMsg struct {
	Path string
}

// BackMsg requests a pop of the navigation stack.
type BackMsg struct{}

// ErrorMsg shows the error banner.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg requests error banner dismissal.
type ClearErrorMsg struct{}
