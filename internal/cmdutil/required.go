package cmdutil

import (
	"github.com/spf13/cobra"
)

// NoArgs rejects positional arguments with a FlagError.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if cmd.HasSubCommands() {
		return FlagErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return FlagErrorf("%q accepts no arguments", cmd.CommandPath())
}

// ExactArgs returns a FlagError unless exactly n args are given.
func ExactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == n {
			return nil
		}
		return FlagErrorf("%q requires %s", cmd.CommandPath(), usage)
	}
}

// MaximumArgs returns a FlagError when more than n args are given.
func MaximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) <= n {
			return nil
		}
		return FlagErrorf("%q accepts at most %d %s, received %d", cmd.CommandPath(), n, pluralize("argument", n), len(args))
	}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
