package cli

import (
	"github.com/spf13/cobra"

	"github.com/thurmanmarka/nutation"
)

// NewAllCommand creates the all command.
func NewAllCommand(rootOpts *RootOptions) *cobra.Command {
	var timeStr string

	cmd := &cobra.Command{
		Use:           "all",
		Short:         "Every nutation quantity for one instant",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			date, err := parseTime(timeStr, rootOpts.location(), rootOpts.Now)
			if err != nil {
				return fail(formatter, ExitCommandError, ErrCodeBadTime, err)
			}

			s := nutation.At(date)
			rootOpts.logger().Debug("evaluated snapshot", "time", date, "jd", s.JD, "t", s.T)

			return formatter.Success(newSnapshotOutput(s))
		},
	}

	addTimeFlag(cmd, &timeStr)
	return cmd
}
