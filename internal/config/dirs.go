package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName = "tsinit"

	// SettingsFileName is the name of the user settings file.
	SettingsFileName = "settings.yaml"

	// ConfigDirEnv overrides the settings directory.
	ConfigDirEnv = "TSINIT_CONFIG_DIR"
	// StateDirEnv overrides the state directory holding logs.
	StateDirEnv = "TSINIT_STATE_DIR"

	logsSubdir = "logs"

	xdgConfigHome = "XDG_CONFIG_HOME"
	xdgStateHome  = "XDG_STATE_HOME"
	appData       = "AppData"
	localAppData  = "LOCALAPPDATA"
)

// ConfigDir returns the tsinit config directory.
func ConfigDir() string {
	if a := os.Getenv(ConfigDirEnv); a != "" {
		return a
	}
	if b := os.Getenv(xdgConfigHome); b != "" {
		return filepath.Join(b, appName)
	}
	if runtime.GOOS == "windows" {
		if c := os.Getenv(appData); c != "" {
			return filepath.Join(c, appName)
		}
	}
	d, _ := os.UserHomeDir()
	return filepath.Join(d, ".config", appName)
}

// StateDir returns the tsinit state directory.
func StateDir() string {
	if a := os.Getenv(StateDirEnv); a != "" {
		return a
	}
	if b := os.Getenv(xdgStateHome); b != "" {
		return filepath.Join(b, appName)
	}
	if runtime.GOOS == "windows" {
		if c := os.Getenv(localAppData); c != "" {
			return filepath.Join(c, appName, "state")
		}
	}
	d, _ := os.UserHomeDir()
	return filepath.Join(d, ".local", "state", appName)
}

// LogsDir returns the directory holding rotated log files.
func LogsDir() string {
	return filepath.Join(StateDir(), logsSubdir)
}

// SettingsFilePath returns the full path of the user settings file.
func SettingsFilePath() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}
