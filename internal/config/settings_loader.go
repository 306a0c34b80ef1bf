package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/schmitthub/tsinit/internal/pkgmgr"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// TSINIT_DEFAULTS_PACKAGE_MANAGER=pnpm.
const EnvPrefix = "TSINIT"

// SettingsLoader handles loading and saving of user settings.
type SettingsLoader struct {
	path string
	v    *viper.Viper
}

// NewSettingsLoader creates a SettingsLoader for the default settings path.
func NewSettingsLoader() *SettingsLoader {
	return NewSettingsLoaderAt(SettingsFilePath())
}

// NewSettingsLoaderAt creates a SettingsLoader for an explicit file path.
func NewSettingsLoaderAt(path string) *SettingsLoader {
	return &SettingsLoader{path: path}
}

// Path returns the full path to the settings file.
func (l *SettingsLoader) Path() string {
	return l.path
}

// Exists checks if the settings file exists.
func (l *SettingsLoader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

func newSettingsViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultSettings())
	return v
}

// setDefaults registers every schema key so AutomaticEnv can see it during
// Unmarshal.
func setDefaults(v *viper.Viper, d *Settings) {
	v.SetDefault("defaults.package_manager", string(d.Defaults.PackageManager))
	v.SetDefault("defaults.install", d.Defaults.Install)
	v.SetDefault("defaults.git_init", d.Defaults.GitInit)
	v.SetDefault("defaults.default_branch", d.Defaults.DefaultBranch)
	for _, m := range pkgmgr.All() {
		v.SetDefault(installKey(m), "")
	}
	v.SetDefault("template.typescript", d.Template.TypeScript)
	v.SetDefault("template.ts_node", d.Template.TSNode)
	v.SetDefault("template.node_types", d.Template.NodeTypes)
	v.SetDefault("template.target", d.Template.Target)
	v.SetDefault("template.module", d.Template.Module)
	v.SetDefault("logging.file_enabled", *d.Logging.FileEnabled)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
}

// Load reads the settings file, applies environment overrides and decodes
// the result. A missing file yields the defaults (not an error).
func (l *SettingsLoader) Load() (*Settings, error) {
	v := newSettingsViper()

	if l.Exists() {
		v.SetConfigFile(l.path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", l.path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", l.path, err)
	}

	if s.Defaults.DefaultBranch == "" {
		s.Defaults.DefaultBranch = DefaultSettings().Defaults.DefaultBranch
	}
	if s.PackageManagers == nil {
		s.PackageManagers = map[string]PackageManagerSettings{}
	}

	l.v = v
	return &s, nil
}

// Get returns the effective value of a single key.
func (l *SettingsLoader) Get(key string) (any, error) {
	key, _, err := LookupKey(key)
	if err != nil {
		return nil, err
	}
	if l.v == nil {
		if _, err := l.Load(); err != nil {
			return nil, err
		}
	}
	return l.v.Get(key), nil
}

// Set validates key, coerces raw to the key's type and persists it to the
// settings file. Only keys already present in the file plus this one are
// written, so defaults and environment overrides never leak into it.
func (l *SettingsLoader) Set(key, raw string) error {
	normalized, _, err := LookupKey(key)
	if err != nil {
		return err
	}
	value, err := Coerce(normalized, raw)
	if err != nil {
		return err
	}

	if err := writeKeyToFile(l.path, normalized, value); err != nil {
		return err
	}

	// Drop cached state so the next Get reflects the write.
	l.v = nil
	return nil
}
