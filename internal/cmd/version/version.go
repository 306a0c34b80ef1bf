package version

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/tsinit/internal/cmdutil"
)

// NewCmdVersion creates the "version" subcommand.
func NewCmdVersion(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of tsinit",
		Args:  cmdutil.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info, ok := cmd.Root().Annotations["versionInfo"]
			if !ok {
				info = Format(version, buildDate)
			}
			fmt.Fprint(f.IOStreams.Out, info)
		},
	}

	return cmd
}

// Format returns the version string for display.
func Format(version, buildDate string) string {
	version = strings.TrimPrefix(version, "v")
	if version == "" {
		version = "DEV"
	}

	var dateStr string
	if buildDate != "" {
		dateStr = fmt.Sprintf(" (%s)", buildDate)
	}

	return fmt.Sprintf("tsinit version %s%s\n", version, dateStr)
}
