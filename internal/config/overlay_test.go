package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/yodl/pkg/errors"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("yodl", pflag.ContinueOnError)
	flags.String("theme", "", "")
	flags.String("flow", "", "")
	flags.String("route", "", "")
	flags.Int("width", 0, "")
	flags.String("log-level", "", "")
	flags.String("log-file", "", "")
	return flags
}

func TestEnvName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "YODL_THEME", EnvName(KeyTheme))
	assert.Equal(t, "YODL_UI_WIDTH", EnvName(KeyWidth))
	assert.Equal(t, "YODL_LOG_HUMAN_READABLE", EnvName(KeyHumanReadable))
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolvePrecedence(t *testing.T) {
	path := writeConfig(t, "theme: light\nflow: country\nui:\n  width: 60\n")

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := Resolve(path, testFlags())
		require.NoError(t, err)
		assert.Equal(t, "light", cfg.Theme)
		assert.Equal(t, "country", cfg.Flow)
		assert.Equal(t, 60, cfg.UI.Width)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("YODL_THEME", "dark")
		t.Setenv("YODL_UI_WIDTH", "72")
		t.Setenv("YODL_LOG_HUMAN_READABLE", "true")

		cfg, err := Resolve(path, testFlags())
		require.NoError(t, err)
		assert.Equal(t, "dark", cfg.Theme)
		assert.Equal(t, 72, cfg.UI.Width)
		assert.True(t, cfg.Log.HumanReadable)
		assert.Equal(t, "country", cfg.Flow)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("YODL_FLOW", "country")

		flags := testFlags()
		require.NoError(t, flags.Parse([]string{"--flow", "token", "--route", "/(screens)/wallet", "--log-level", "DEBUG"}))

		cfg, err := Resolve(path, flags)
		require.NoError(t, err)
		assert.Equal(t, "token", cfg.Flow)
		assert.Equal(t, "/(screens)/wallet", cfg.StartRoute)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "light", cfg.Theme, "unset flags do not override")
	})

	t.Run("overrides are validated", func(t *testing.T) {
		t.Setenv("YODL_UI_WIDTH", "500")

		_, err := Resolve(path, nil)
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "ui.width", validationErr.Field)
	})
}

func TestResolvePropagatesParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Resolve(writeConfig(t, "theme: [\n"), nil)
	var parseErr *apperrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
