package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/yodl/internal/config"
	"github.com/alexisbeaulieu97/yodl/internal/logger"
	"github.com/alexisbeaulieu97/yodl/internal/mockdata"
	"github.com/alexisbeaulieu97/yodl/internal/theme"
)

// AppContext bundles long-lived services created before any command runs.
type AppContext struct {
	Config   *config.Config
	Logger   *logger.Logger
	Provider *theme.Provider
}

// setup resolves configuration, opens the logger and scopes a theme provider to
// the command context.
func (a *AppContext) setup(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Resolve(flags.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if flags.verbose && !cmd.Flags().Changed("log-level") && cfg.Log.Level == "info" {
		cfg.Log.Level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		File:          cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	log = log.WithFields(map[string]any{
		"session": logger.NewSessionID(),
		"command": cmd.CommandPath(),
	})

	if err := mockdata.Validate(); err != nil {
		log.Error(err, "mock data rejected")
		_ = log.Close()
		return err
	}

	provider := theme.NewProvider(cfg.ThemeMode())

	a.Config = cfg
	a.Logger = log
	a.Provider = provider

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(theme.WithProvider(ctx, provider))

	log.WithFields(map[string]any{
		"theme": string(provider.Theme()),
		"width": cfg.UI.Width,
	}).Debug("configuration resolved")
	return nil
}

func (a *AppContext) close() {
	if a.Logger != nil {
		_ = a.Logger.Close()
	}
}
