package cli

import (
	"errors"
	"strings"

	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"

	"github.com/thurmanmarka/nutation"
)

// modelTrue selects true obliquity in the obliquity command.
const modelTrue = "true"

// NewObliquityCommand creates the obliquity command.
func NewObliquityCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		timeStr string
		model   string
	)

	cmd := &cobra.Command{
		Use:   "obliquity",
		Short: "Mean or true obliquity of the ecliptic",
		Long: `Compute the obliquity of the ecliptic.

--model iau     mean obliquity, IAU 1980 polynomial (default)
--model laskar  mean obliquity, Laskar's polynomial (within 10000 years of J2000)
--model true    true obliquity, IAU mean obliquity plus nutation in obliquity`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			date, err := parseTime(timeStr, rootOpts.location(), rootOpts.Now)
			if err != nil {
				return fail(formatter, ExitCommandError, ErrCodeBadTime, err)
			}

			name := strings.ToLower(strings.TrimSpace(model))
			rootOpts.logger().Debug("evaluating obliquity", "time", date, "model", name)

			var ε unit.Angle
			if name == modelTrue {
				ε = nutation.TrueObliquity(date)
			} else {
				m, err := nutation.ParseObliquityModel(name)
				if err != nil {
					return fail(formatter, ExitCommandError, ErrCodeBadModel, err)
				}
				ε, err = nutation.MeanObliquityFor(m, date)
				if errors.Is(err, nutation.ErrOutOfRange) {
					return fail(formatter, ExitFailure, ErrCodeOutOfRange, err)
				}
				if err != nil {
					return fail(formatter, ExitFailure, ErrCodeGeneric, err)
				}
			}

			return formatter.Success(ObliquityOutput{
				Time:      formatTime(date),
				Model:     name,
				Obliquity: newAngleOutput(ε),
			})
		},
	}

	addTimeFlag(cmd, &timeStr)
	cmd.Flags().StringVarP(&model, "model", "m", nutation.IAU.String(), "obliquity model (iau|laskar|true)")
	return cmd
}
