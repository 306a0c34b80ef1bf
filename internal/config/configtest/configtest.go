// Package configtest provides helpers that isolate settings and state
// directories for tests.
package configtest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schmitthub/tsinit/internal/config"
)

// Dirs holds the temporary directories wired into the environment.
type Dirs struct {
	Config string
	State  string
}

// SettingsFile returns the settings path inside the isolated config dir.
func (d Dirs) SettingsFile() string {
	return filepath.Join(d.Config, config.SettingsFileName)
}

// Isolate points TSINIT_CONFIG_DIR and TSINIT_STATE_DIR at fresh temporary
// directories and clears TSINIT_* overrides that would leak from the host.
func Isolate(t *testing.T) Dirs {
	t.Helper()

	root := t.TempDir()
	d := Dirs{
		Config: filepath.Join(root, "config"),
		State:  filepath.Join(root, "state"),
	}
	t.Setenv(config.ConfigDirEnv, d.Config)
	t.Setenv(config.StateDirEnv, d.State)

	for _, key := range []string{
		"TSINIT_DEFAULTS_PACKAGE_MANAGER",
		"TSINIT_DEFAULTS_INSTALL",
		"TSINIT_DEFAULTS_GIT_INIT",
		"TSINIT_DEFAULTS_DEFAULT_BRANCH",
		"TSINIT_LOGGING_FILE_ENABLED",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	return d
}

// WriteSettings writes raw YAML to the isolated settings file.
func WriteSettings(t *testing.T, d Dirs, yaml string) {
	t.Helper()
	if err := os.MkdirAll(d.Config, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(d.SettingsFile(), []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}
}
