package config

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/tsinit/internal/cmdutil"
)

// NewCmdPath creates the config path command.
func NewCmdPath(f *cmdutil.Factory, runF func(context.Context, *ConfigOptions) error) *cobra.Command {
	opts := newOptions(f)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			fmt.Fprintln(opts.IOStreams.Out, opts.SettingsLoader().Path())
			return nil
		},
	}

	return cmd
}
