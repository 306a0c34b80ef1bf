package factory

import (
	"os"
	"sync"

	"github.com/spf13/afero"

	"github.com/schmitthub/tsinit/internal/cmdutil"
	"github.com/schmitthub/tsinit/internal/config"
	"github.com/schmitthub/tsinit/internal/iostreams"
	"github.com/schmitthub/tsinit/internal/logger"
	"github.com/schmitthub/tsinit/internal/process"
	"github.com/schmitthub/tsinit/internal/prompter"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/tsinit/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, buildDate string) *cmdutil.Factory {
	ios := iostreams.NewIOStreams()
	ios.Logger = &logger.Global{}

	if ios.IsOutputTTY() {
		ios.DetectTerminalTheme()
	} else {
		ios.SetColorEnabled(false)
	}

	// Respect CI environment (disable prompts)
	if os.Getenv("CI") != "" {
		ios.SetNeverPrompt(true)
	}

	f := &cmdutil.Factory{
		Version:   version,
		BuildDate: buildDate,
		IOStreams: ios,
		Fs:        afero.NewOsFs(),
		Getenv:    os.Getenv,
		WorkDir:   os.Getwd,
	}

	// --- Lazy dependency closures ---

	// Settings
	var (
		loaderOnce     sync.Once
		settingsLoader *config.SettingsLoader
		settingsOnce   sync.Once
		settingsData   *config.Settings
		settingsErr    error
	)
	f.SettingsLoader = func() *config.SettingsLoader {
		loaderOnce.Do(func() {
			settingsLoader = config.NewSettingsLoader()
		})
		return settingsLoader
	}
	f.Settings = func() (*config.Settings, error) {
		settingsOnce.Do(func() {
			settingsData, settingsErr = f.SettingsLoader().Load()
		})
		return settingsData, settingsErr
	}

	// Prompter: one instance so every prompt shares a single stdin reader
	var (
		prompterOnce sync.Once
		p            *prompter.Prompter
	)
	f.Prompter = func() *prompter.Prompter {
		prompterOnce.Do(func() {
			p = prompter.NewPrompter(f.IOStreams)
		})
		return p
	}

	// Process runner
	f.Runner = func() process.Runner {
		return process.NewExecRunner()
	}

	return f
}
