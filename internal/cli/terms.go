package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/nutation/internal/series"
)

// TermOutput is one row of the periodic term table.
type TermOutput struct {
	D      int     `json:"d" yaml:"d"`
	M      int     `json:"m" yaml:"m"`
	MPrime int     `json:"mp" yaml:"mp"`
	F      int     `json:"f" yaml:"f"`
	Omega  int     `json:"om" yaml:"om"`
	Sin0   float64 `json:"sin0" yaml:"sin0"`
	Sin1   float64 `json:"sin1" yaml:"sin1"`
	Cos0   float64 `json:"cos0" yaml:"cos0"`
	Cos1   float64 `json:"cos1" yaml:"cos1"`
}

// TermsOutput is the payload of the terms command.
type TermsOutput struct {
	Terms []TermOutput `json:"terms" yaml:"terms"`
}

func (o TermsOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%3s %3s %3s %3s %3s %9s %7s %8s %5s\n", "D", "M", "M'", "F", "Ω", "sin0", "sin1", "cos0", "cos1")
	for _, t := range o.Terms {
		fmt.Fprintf(&b, "%3d %3d %3d %3d %3d %9.1f %7.1f %8.1f %5.1f\n",
			t.D, t.M, t.MPrime, t.F, t.Omega, t.Sin0, t.Sin1, t.Cos0, t.Cos1)
	}
	fmt.Fprintf(&b, "%d terms, units of 0.0001″ (and per century)", len(o.Terms))
	return b.String()
}

// NewTermsCommand creates the terms command.
func NewTermsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "terms",
		Short:         "Print the periodic term table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			terms := series.Terms()
			out := TermsOutput{Terms: make([]TermOutput, len(terms))}
			for i, t := range terms {
				out.Terms[i] = TermOutput{
					D: t.D, M: t.M, MPrime: t.MPrime, F: t.F, Omega: t.Omega,
					Sin0: t.Sin0, Sin1: t.Sin1, Cos0: t.Cos0, Cos1: t.Cos1,
				}
			}
			return formatter.Success(out)
		},
	}
}
