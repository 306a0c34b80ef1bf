package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/schmitthub/tsinit/internal/cmdutil"
	internalconfig "github.com/schmitthub/tsinit/internal/config"
)

// NewCmdGet creates the config get command.
func NewCmdGet(f *cmdutil.Factory, runF func(context.Context, *ConfigOptions) error) *cobra.Command {
	opts := newOptions(f)

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of one setting",
		Example: `  tsinit config get defaults.package_manager
  tsinit config get package_managers.pnpm.install`,
		Args: cmdutil.ExactArgs(1, "a settings key"),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Key = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return getRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func getRun(_ context.Context, opts *ConfigOptions) error {
	value, err := opts.SettingsLoader().Get(opts.Key)
	if err != nil {
		if errors.Is(err, internalconfig.ErrUnknownKey) {
			return cmdutil.FlagErrorWrap(err)
		}
		return err
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", opts.Key, err)
	}
	fmt.Fprintln(opts.IOStreams.Out, s)
	return nil
}
