// Package config loads and persists tsinit user settings.
//
// Settings live in a single settings.yaml under the config directory and are
// layered as: built-in defaults < settings file < TSINIT_* environment.
package config

import (
	"github.com/schmitthub/tsinit/internal/logger"
	"github.com/schmitthub/tsinit/internal/pkgmgr"
)

// Settings is the decoded user settings file.
type Settings struct {
	Defaults        DefaultsSettings                  `mapstructure:"defaults" yaml:"defaults"`
	PackageManagers map[string]PackageManagerSettings `mapstructure:"package_managers" yaml:"package_managers"`
	Template        TemplateSettings                  `mapstructure:"template" yaml:"template"`
	Logging         LoggingSettings                   `mapstructure:"logging" yaml:"logging"`
}

// DefaultsSettings pre-answers the create prompts.
type DefaultsSettings struct {
	PackageManager pkgmgr.Manager `mapstructure:"package_manager" yaml:"package_manager"`
	Install        bool           `mapstructure:"install" yaml:"install"`
	GitInit        bool           `mapstructure:"git_init" yaml:"git_init"`
	DefaultBranch  string         `mapstructure:"default_branch" yaml:"default_branch"`
}

// PackageManagerSettings customises how one package manager is invoked.
type PackageManagerSettings struct {
	// Install replaces "<pm> install" when non-empty.
	Install string `mapstructure:"install" yaml:"install"`
}

// TemplateSettings feeds the generated package.json and tsconfig.json.
type TemplateSettings struct {
	TypeScript string `mapstructure:"typescript" yaml:"typescript"`
	TSNode     string `mapstructure:"ts_node" yaml:"ts_node"`
	NodeTypes  string `mapstructure:"node_types" yaml:"node_types"`
	Target     string `mapstructure:"target" yaml:"target"`
	Module     string `mapstructure:"module" yaml:"module"`
}

// LoggingSettings configures file logging.
type LoggingSettings struct {
	FileEnabled *bool `mapstructure:"file_enabled" yaml:"file_enabled,omitempty"`
	MaxSizeMB   int   `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxAgeDays  int   `mapstructure:"max_age_days" yaml:"max_age_days"`
	MaxBackups  int   `mapstructure:"max_backups" yaml:"max_backups"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() *Settings {
	fileEnabled := true
	return &Settings{
		Defaults: DefaultsSettings{
			PackageManager: pkgmgr.NPM,
			Install:        true,
			GitInit:        true,
			DefaultBranch:  "main",
		},
		PackageManagers: map[string]PackageManagerSettings{},
		Template: TemplateSettings{
			TypeScript: "^5.0.0",
			TSNode:     "^10.9.0",
			NodeTypes:  "^20.0.0",
			Target:     "ES2020",
			Module:     "commonjs",
		},
		Logging: LoggingSettings{
			FileEnabled: &fileEnabled,
			MaxSizeMB:   10,
			MaxAgeDays:  7,
			MaxBackups:  3,
		},
	}
}

// InstallOverrides returns the non-empty install command overrides keyed by
// package manager name.
func (s *Settings) InstallOverrides() map[string]string {
	out := make(map[string]string, len(s.PackageManagers))
	for name, pm := range s.PackageManagers {
		if pm.Install != "" {
			out[name] = pm.Install
		}
	}
	return out
}

// LoggerConfig converts the logging settings for logger.InitWithFile.
func (s *Settings) LoggerConfig() *logger.LoggingConfig {
	return &logger.LoggingConfig{
		FileEnabled: s.Logging.FileEnabled,
		MaxSizeMB:   s.Logging.MaxSizeMB,
		MaxAgeDays:  s.Logging.MaxAgeDays,
		MaxBackups:  s.Logging.MaxBackups,
	}
}
