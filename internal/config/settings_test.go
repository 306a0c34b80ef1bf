package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/tsinit/internal/pkgmgr"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, pkgmgr.NPM, s.Defaults.PackageManager)
	assert.True(t, s.Defaults.Install)
	assert.True(t, s.Defaults.GitInit)
	assert.Equal(t, "main", s.Defaults.DefaultBranch)
	assert.Equal(t, "^5.0.0", s.Template.TypeScript)
	assert.Equal(t, "^10.9.0", s.Template.TSNode)
	assert.Equal(t, "^20.0.0", s.Template.NodeTypes)
	assert.Equal(t, "ES2020", s.Template.Target)
	assert.Equal(t, "commonjs", s.Template.Module)
}

func TestSettings_LoggerConfig(t *testing.T) {
	s := DefaultSettings()
	s.Logging.MaxBackups = 5

	cfg := s.LoggerConfig()
	require.NotNil(t, cfg)
	assert.True(t, cfg.IsFileEnabled())
	assert.Equal(t, 10, cfg.GetMaxSizeMB())
	assert.Equal(t, 5, cfg.GetMaxBackups())
}

func TestDirs_EnvPrecedence(t *testing.T) {
	t.Setenv(ConfigDirEnv, "")
	t.Setenv(StateDirEnv, "")
	t.Setenv(xdgConfigHome, "/xdg/config")
	t.Setenv(xdgStateHome, "/xdg/state")

	assert.Equal(t, "/xdg/config/tsinit", ConfigDir())
	assert.Equal(t, "/xdg/state/tsinit", StateDir())
	assert.Equal(t, "/xdg/state/tsinit/logs", LogsDir())

	t.Setenv(ConfigDirEnv, "/explicit/config")
	t.Setenv(StateDirEnv, "/explicit/state")

	assert.Equal(t, "/explicit/config", ConfigDir())
	assert.Equal(t, "/explicit/config/settings.yaml", SettingsFilePath())
	assert.Equal(t, "/explicit/state", StateDir())
}
