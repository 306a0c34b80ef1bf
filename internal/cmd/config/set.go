package config

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/schmitthub/tsinit/internal/cmdutil"
	internalconfig "github.com/schmitthub/tsinit/internal/config"
	"github.com/schmitthub/tsinit/internal/logger"
)

// NewCmdSet creates the config set command.
func NewCmdSet(f *cmdutil.Factory, runF func(context.Context, *ConfigOptions) error) *cobra.Command {
	opts := newOptions(f)

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist one setting to the user settings file",
		Long: `Validates the key, converts the value to the key's type and writes it to
the settings file. Other keys already in the file are kept.`,
		Example: `  tsinit config set defaults.package_manager pnpm
  tsinit config set defaults.install false
  tsinit config set package_managers.npm.install "npm ci"`,
		Args: cmdutil.ExactArgs(2, "a key and a value"),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Key = args[0]
			opts.Value = args[1]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return setRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func setRun(_ context.Context, opts *ConfigOptions) error {
	loader := opts.SettingsLoader()

	if err := loader.Set(opts.Key, opts.Value); err != nil {
		if errors.Is(err, internalconfig.ErrUnknownKey) {
			return cmdutil.FlagErrorWrap(err)
		}
		return err
	}

	logger.Info().Str("key", opts.Key).Str("file", loader.Path()).Msg("updated setting")
	return opts.IOStreams.PrintSuccess("Set %s in %s", opts.Key, loader.Path())
}
