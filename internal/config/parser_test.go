package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/yodl/internal/theme"
	apperrors "github.com/alexisbeaulieu97/yodl/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "yodl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "valid configuration is parsed",
			contents: `theme: light
flow: token
ui:
  width: 60
log:
  level: debug
  file: /tmp/yodl.log
  human_readable: true
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "light", cfg.Theme)
				assert.Equal(t, "token", cfg.Flow)
				assert.Equal(t, 60, cfg.UI.Width)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "/tmp/yodl.log", cfg.Log.File)
				assert.True(t, cfg.Log.HumanReadable)
			},
		},
		{
			name:     "omitted fields keep defaults",
			contents: "flow: country\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "dark", cfg.Theme)
				assert.Equal(t, 48, cfg.UI.Width)
				assert.Equal(t, "info", cfg.Log.Level)
			},
		},
		{
			name:     "invalid yaml reports a line",
			contents: "theme: dark\nui:\n  width: [1, 2\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				assert.Nil(t, cfg)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown theme fails validation",
			contents: "theme: sepia\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "theme", validationErr.Field)
				assert.Contains(t, validationErr.Message, "oneof")
			},
		},
		{
			name:     "narrow width fails validation",
			contents: "ui:\n  width: 20\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "ui.width", validationErr.Field)
				assert.Contains(t, validationErr.Message, "min=32")
			},
		},
		{
			name:     "relative start route fails validation",
			contents: "start_route: wallet\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "start_route", validationErr.Field)
			},
		},
		{
			name:     "unknown log level fails validation",
			contents: "log:\n  level: loud\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "log.level", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 0, parseErr.Line)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
	assert.Equal(t, "config", validationErr.Field)
}

func TestStartPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "splash by default", want: "/"},
		{name: "country flow", cfg: Config{Flow: "country"}, want: "/(tabs)"},
		{name: "token flow", cfg: Config{Flow: "token"}, want: "/(tabs-token)"},
		{name: "start route wins", cfg: Config{Flow: "token", StartRoute: "/(screens)/wallet"}, want: "/(screens)/wallet"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.cfg.StartPath()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := (&Config{Flow: "sideways"}).StartPath()
	assert.Error(t, err)
}

func TestThemeMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, theme.ModeLight, (&Config{Theme: "light"}).ThemeMode())
	assert.Equal(t, theme.ModeDark, (&Config{}).ThemeMode())
	assert.Equal(t, theme.ModeDark, (&Config{Theme: "sepia"}).ThemeMode())
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, extractLine(nil))
	assert.Equal(t, 0, extractLine(assert.AnError))
	assert.Equal(t, 7, extractLine(errors.New("yaml: line 7: did not find expected key")))
}
