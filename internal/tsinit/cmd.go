// Package tsinit wires the command tree to the process: it builds the
// Factory, runs the root command and maps errors to exit codes.
package tsinit

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schmitthub/tsinit/internal/cmd/factory"
	"github.com/schmitthub/tsinit/internal/cmd/root"
	"github.com/schmitthub/tsinit/internal/cmdutil"
	"github.com/schmitthub/tsinit/internal/iostreams"
	"github.com/schmitthub/tsinit/internal/logger"
	"github.com/schmitthub/tsinit/internal/signals"
)

// Build-time variables injected via ldflags
var (
	Version   = "DEV"
	BuildDate = ""
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the tsinit CLI. It returns the process exit
// code; cmd/tsinit passes it to os.Exit.
func Main() int {
	// Ensure logs are flushed on exit
	defer func() { _ = logger.CloseFileWriter() }()

	ctx, cancel := signals.SetupSignalContext(context.Background())
	defer cancel()

	f := factory.New(Version, BuildDate)
	rootCmd := root.NewCmdRoot(f, Version, BuildDate)

	return run(ctx, f.IOStreams, rootCmd, os.Args[1:])
}

func run(ctx context.Context, ios *iostreams.IOStreams, rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(ios.In)
	rootCmd.SetOut(ios.Out)
	rootCmd.SetErr(ios.ErrOut)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return exitOK
	}
	if cmd == nil {
		cmd = rootCmd
	}
	return handleError(ios, cmd, err)
}

// handleError prints err the way its type asks for and returns the exit code.
func handleError(ios *iostreams.IOStreams, cmd *cobra.Command, err error) int {
	logger.Error().Err(err).Str("command", cmd.CommandPath()).Msg("command failed")

	var exitErr *cmdutil.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		fmt.Fprintln(ios.ErrOut, err)
		fmt.Fprintln(ios.ErrOut)
		fmt.Fprint(ios.ErrOut, cmd.UsageString())
		return exitUsage
	}

	if errors.Is(err, cmdutil.ErrCancelled) {
		_ = ios.PrintFailure("Cancelled")
		return exitError
	}

	_ = ios.PrintFailure("%s", err)
	cmdutil.PrintHelpHint(ios, cmd.CommandPath())
	return exitError
}
