// Package config loads fsfilter settings from a YAML file, FSFILTER_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ivoronin/fsfilter/internal/filter"
	"github.com/ivoronin/fsfilter/internal/pattern"
)

// EnvPrefix is prepended to every environment variable, e.g. FSFILTER_SIZE.
const EnvPrefix = "FSFILTER"

// Config is the complete CLI configuration.
type Config struct {
	Filter       filter.Config `mapstructure:",squash"`
	LogLevel     string        `mapstructure:"log_level"`
	TimeZone     string        `mapstructure:"timezone"`
	MatchTimeout time.Duration `mapstructure:"match_timeout"`
}

// Location resolves TimeZone; empty means the local zone.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

var defaults = map[string]any{
	"include":        []string{},
	"exclude":        []string{},
	"separator":      pattern.DefaultSeparator,
	"case_sensitive": false,
	"regex":          "",
	"regex_flags":    "",
	"size":           "",
	"mtime":          "",
	"log_level":      "warn",
	"timezone":       "",
	"match_timeout":  pattern.DefaultMatchTimeout,
}

// Loader layers configuration sources on top of built-in defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a loader that already honours FSFILTER_* variables.
func NewLoader() *Loader {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// BindFlags maps configuration keys to flags of fs. Only flags the user
// actually set override the file and environment.
func (l *Loader) BindFlags(fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := fs.Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag --%s is not defined", name)
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads the optional config file at path and returns the merged
// configuration. A missing file is an error when path is given.
func (l *Loader) Load(path string) (Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
