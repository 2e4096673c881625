package config

import (
	"github.com/alexisbeaulieu97/yodl/internal/components"
	"github.com/alexisbeaulieu97/yodl/internal/router"
	"github.com/alexisbeaulieu97/yodl/internal/theme"
)

// Config represents the yodl configuration document.
type Config struct {
	Theme      string `yaml:"theme,omitempty" validate:"omitempty,oneof=dark light"`
	Flow       string `yaml:"flow,omitempty" validate:"omitempty,oneof=country token"`
	StartRoute string `yaml:"start_route,omitempty" validate:"omitempty,route_path"`
	UI         UI     `yaml:"ui,omitempty"`
	Log        Log    `yaml:"log,omitempty"`
}

// UI holds terminal rendering settings.
type UI struct {
	Width int `yaml:"width,omitempty" validate:"min=32,max=120"`
}

// Log holds logger settings.
type Log struct {
	Level         string `yaml:"level,omitempty" validate:"oneof=trace debug info warn error"`
	File          string `yaml:"file,omitempty"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Theme: string(theme.DefaultMode),
		UI:    UI{Width: components.DefaultWidth},
		Log:   Log{Level: "info"},
	}
}

// ThemeMode converts the theme setting.
func (c *Config) ThemeMode() theme.Mode {
	mode, err := theme.ParseMode(c.Theme)
	if err != nil {
		return theme.DefaultMode
	}
	return mode
}

// StartPath is the first path the shell opens: the start route when set, else
// the entry of the configured flow, else the splash.
func (c *Config) StartPath() (string, error) {
	if c.StartRoute != "" {
		return c.StartRoute, nil
	}
	flow, err := router.ParseFlow(c.Flow)
	if err != nil {
		return "", err
	}
	if flow == "" {
		return router.RootPath, nil
	}
	return router.FlowEntry(flow)
}
