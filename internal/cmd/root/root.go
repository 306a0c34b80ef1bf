package root

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	configcmd "github.com/schmitthub/tsinit/internal/cmd/config"
	"github.com/schmitthub/tsinit/internal/cmd/create"
	versioncmd "github.com/schmitthub/tsinit/internal/cmd/version"
	"github.com/schmitthub/tsinit/internal/cmdutil"
	"github.com/schmitthub/tsinit/internal/config"
	"github.com/schmitthub/tsinit/internal/logger"
)

// NewCmdRoot creates the root command for the tsinit CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "tsinit [project-name]",
		Short: "Scaffold a new TypeScript project",
		Long: `tsinit creates a ready-to-build TypeScript project.

Quick start:
  tsinit my-app            # Same as 'tsinit create my-app'
  tsinit create --plain    # Line-based prompts
  tsinit config list       # Show effective settings`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, buildDate),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(debug)
			logger.SetContext(uuid.NewString(), "")

			logger.Debug().
				Str("version", f.Version).
				Str("command", cmd.CommandPath()).
				Bool("debug", debug).
				Msg("tsinit starting")

			return nil
		},
		Version: version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate))

	registerDefaultCommand(cmd, f)

	cmd.AddCommand(create.NewCmdCreate(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd
}

// registerDefaultCommand makes "tsinit [project-name]" behave exactly like
// "tsinit create [project-name]", flags included.
func registerDefaultCommand(root *cobra.Command, f *cmdutil.Factory) {
	target := create.NewCmdCreate(f, nil)

	root.Flags().AddFlagSet(target.Flags())
	root.Args = target.Args
	root.RunE = target.RunE
	root.Example = target.Example
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to a no-op logger on any error.
func initializeLogger(debug bool) {
	settings, err := config.NewSettingsLoader().Load()
	if err != nil {
		logger.Init()
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	if err := logger.InitWithFile(debug, config.LogsDir(), settings.LoggerConfig()); err != nil {
		logger.Init()
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
