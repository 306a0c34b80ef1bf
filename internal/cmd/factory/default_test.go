package factory

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/tsinit/internal/config/configtest"
)

func TestNew(t *testing.T) {
	f := New("1.0.0", "2026-01-01")

	assert.Equal(t, "1.0.0", f.Version)
	assert.Equal(t, "2026-01-01", f.BuildDate)
	require.NotNil(t, f.IOStreams)
	assert.IsType(t, &afero.OsFs{}, f.Fs)
	assert.NotNil(t, f.Runner())
}

func TestFactory_WorkDir(t *testing.T) {
	f := New("1.0.0", "")

	wd, err := f.WorkDir()
	require.NoError(t, err)
	assert.NotEmpty(t, wd)
}

func TestFactory_PrompterIsShared(t *testing.T) {
	f := New("1.0.0", "")

	assert.Same(t, f.Prompter(), f.Prompter())
}

func TestFactory_SettingsUseIsolatedDir(t *testing.T) {
	dirs := configtest.Isolate(t)
	configtest.WriteSettings(t, dirs, "defaults:\n  package_manager: yarn\n")

	f := New("1.0.0", "")

	assert.Equal(t, dirs.SettingsFile(), f.SettingsLoader().Path())
	settings, err := f.Settings()
	require.NoError(t, err)
	assert.Equal(t, "yarn", settings.Defaults.PackageManager.String())

	again, err := f.Settings()
	require.NoError(t, err)
	assert.Same(t, settings, again)
}
