package config

import (
	"github.com/spf13/cobra"

	"github.com/schmitthub/tsinit/internal/cmdutil"
	internalconfig "github.com/schmitthub/tsinit/internal/config"
	"github.com/schmitthub/tsinit/internal/iostreams"
)

// ConfigOptions holds the dependencies shared by the config subcommands.
type ConfigOptions struct {
	IOStreams      *iostreams.IOStreams
	SettingsLoader func() *internalconfig.SettingsLoader

	Key   string
	Value string
}

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tsinit settings",
		Long: `Reads and writes the tsinit user settings file.

Settings are layered as built-in defaults, then the settings file, then
TSINIT_* environment variables (for example TSINIT_DEFAULTS_PACKAGE_MANAGER=pnpm).`,
		Args: cmdutil.NoArgs,
	}

	cmd.AddCommand(NewCmdList(f, nil))
	cmd.AddCommand(NewCmdGet(f, nil))
	cmd.AddCommand(NewCmdSet(f, nil))
	cmd.AddCommand(NewCmdPath(f, nil))

	return cmd
}

func newOptions(f *cmdutil.Factory) *ConfigOptions {
	return &ConfigOptions{
		IOStreams:      f.IOStreams,
		SettingsLoader: f.SettingsLoader,
	}
}
