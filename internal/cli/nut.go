package cli

import (
	"github.com/spf13/cobra"

	"github.com/thurmanmarka/nutation"
	"github.com/thurmanmarka/nutation/internal/timeutil"
)

// NewNutCommand creates the nut command.
func NewNutCommand(rootOpts *RootOptions) *cobra.Command {
	var timeStr string

	cmd := &cobra.Command{
		Use:           "nut",
		Short:         "Nutation in longitude (Δψ) and obliquity (Δε)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			date, err := parseTime(timeStr, rootOpts.location(), rootOpts.Now)
			if err != nil {
				return fail(formatter, ExitCommandError, ErrCodeBadTime, err)
			}

			jd := timeutil.JulianDay(date)
			rootOpts.logger().Debug("evaluating nutation", "time", date, "jd", jd)

			r := nutation.Nutation(date)
			return formatter.Success(NutationOutput{
				Time: formatTime(date),
				JD:   jd,
				DPsi: newAngleOutput(r.Long),
				DEps: newAngleOutput(r.Obli),
			})
		},
	}

	addTimeFlag(cmd, &timeStr)
	return cmd
}

func addTimeFlag(cmd *cobra.Command, p *string) {
	cmd.Flags().StringVarP(p, "time", "t", "", "time in RFC3339 or 'YYYY-MM-DD[THH:MM[:SS]]' (default now)")
}
