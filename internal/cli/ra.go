package cli

import (
	"github.com/spf13/cobra"

	"github.com/thurmanmarka/nutation"
)

// NewRACommand creates the ra command.
func NewRACommand(rootOpts *RootOptions) *cobra.Command {
	var timeStr string

	cmd := &cobra.Command{
		Use:           "ra",
		Short:         "Nutation in right ascension (equation of the equinoxes)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			date, err := parseTime(timeStr, rootOpts.location(), rootOpts.Now)
			if err != nil {
				return fail(formatter, ExitCommandError, ErrCodeBadTime, err)
			}

			rootOpts.logger().Debug("evaluating nutation in right ascension", "time", date)

			return formatter.Success(RAOutput{
				Time:    formatTime(date),
				Seconds: nutation.NutationInRA(date).Sec(),
			})
		},
	}

	addTimeFlag(cmd, &timeStr)
	return cmd
}
