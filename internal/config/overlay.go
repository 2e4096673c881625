package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override: YODL_THEME, YODL_UI_WIDTH, ...
const EnvPrefix = "YODL"

// EnvKeyReplacer turns config keys into environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Config keys, as written in the YAML document.
const (
	KeyTheme         = "theme"
	KeyFlow          = "flow"
	KeyStartRoute    = "start_route"
	KeyWidth         = "ui.width"
	KeyLogLevel      = "log.level"
	KeyLogFile       = "log.file"
	KeyHumanReadable = "log.human_readable"
)

// Keys lists every config key in document order.
func Keys() []string {
	return []string{KeyTheme, KeyFlow, KeyStartRoute, KeyWidth, KeyLogLevel, KeyLogFile, KeyHumanReadable}
}

// FlagNames maps config keys to the command line flags that override them.
var FlagNames = map[string]string{
	KeyTheme:      "theme",
	KeyFlow:       "flow",
	KeyStartRoute: "route",
	KeyWidth:      "width",
	KeyLogLevel:   "log-level",
	KeyLogFile:    "log-file",
}

// EnvName returns the environment variable overriding key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(EnvKeyReplacer.Replace(key))
}

// Resolve loads the optional file at path and overlays environment variables and
// changed flags. Precedence is flag, then env, then file, then defaults. Flags
// missing from the set are skipped.
func Resolve(path string, flags *pflag.FlagSet) (*Config, error) {
	base, err := Load(path)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)

	defaults := map[string]any{
		KeyTheme:         base.Theme,
		KeyFlow:          base.Flow,
		KeyStartRoute:    base.StartRoute,
		KeyWidth:         base.UI.Width,
		KeyLogLevel:      base.Log.Level,
		KeyLogFile:       base.Log.File,
		KeyHumanReadable: base.Log.HumanReadable,
	}
	for _, key := range Keys() {
		v.SetDefault(key, defaults[key])
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if flags != nil {
		for key, name := range FlagNames {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	cfg := &Config{
		Theme:      v.GetString(KeyTheme),
		Flow:       v.GetString(KeyFlow),
		StartRoute: v.GetString(KeyStartRoute),
		UI:         UI{Width: v.GetInt(KeyWidth)},
		Log: Log{
			Level:         strings.ToLower(v.GetString(KeyLogLevel)),
			File:          v.GetString(KeyLogFile),
			HumanReadable: v.GetBool(KeyHumanReadable),
		},
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
