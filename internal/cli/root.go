// Package cli implements the nutation command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	TZ      string // IANA zone for dates without an offset

	// Set up by PersistentPreRunE.
	Location *time.Location
	Logger   *slog.Logger

	// Now returns the instant used when --time is omitted.
	Now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the nutation CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Now: time.Now}

	cmd := &cobra.Command{
		Use:   "nutation",
		Short: "Nutation and obliquity of the ecliptic",
		Long: `Compute the Earth's nutation in longitude and obliquity, the mean and
true obliquity of the ecliptic and the equation of the equinoxes, using the
63-term series from Meeus, "Astronomical Algorithms", chapter 22.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.TZ, "tz", "UTC", "IANA time zone for dates without an offset")

	// Add subcommands
	cmd.AddCommand(NewNutCommand(opts))
	cmd.AddCommand(NewObliquityCommand(opts))
	cmd.AddCommand(NewRACommand(opts))
	cmd.AddCommand(NewAllCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewTermsCommand(opts))

	return cmd
}

// setup validates the global flags and prepares the logger and location.
// Flag errors are written to errOut since no formatter exists yet.
func (o *RootOptions) setup(errOut io.Writer) error {
	if !isValidFormat(o.Format) {
		err := NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
		fmt.Fprintln(errOut, "Error:", err)
		return err
	}

	loc, err := time.LoadLocation(o.TZ)
	if err != nil {
		exitErr := WrapExitError(ExitCommandError, fmt.Sprintf("invalid --tz %q", o.TZ), err)
		fmt.Fprintln(errOut, "Error:", exitErr)
		return exitErr
	}
	o.Location = loc

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	if o.Now == nil {
		o.Now = time.Now
	}
	return nil
}

// logger returns the configured logger, or one that discards everything
// when a subcommand runs without the root command (as in tests).
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// location returns the zone for dates without an offset.
func (o *RootOptions) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
