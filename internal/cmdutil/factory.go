package cmdutil

import (
	"github.com/spf13/afero"

	"github.com/schmitthub/tsinit/internal/config"
	"github.com/schmitthub/tsinit/internal/iostreams"
	"github.com/schmitthub/tsinit/internal/process"
	"github.com/schmitthub/tsinit/internal/prompter"
)

// Factory provides shared dependencies for CLI commands.
// The struct defines what dependencies exist; internal/cmd/factory wires
// the real implementations and tests assign stubs directly.
//
// Closure fields use lazy initialization. Commands copy the fields they
// need into per-command Options structs.
type Factory struct {
	// Version info (set at build time via ldflags)
	Version   string
	BuildDate string

	IOStreams *iostreams.IOStreams

	// Fs is the filesystem projects are written to.
	Fs afero.Fs

	SettingsLoader func() *config.SettingsLoader
	Settings       func() (*config.Settings, error)

	Prompter func() *prompter.Prompter
	Runner   func() process.Runner

	// Getenv reads the process environment.
	Getenv func(string) string
	// WorkDir returns the directory new projects are created in by default.
	WorkDir func() (string, error)
}
