package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thurmanmarka/nutation"
)

// BatchFile lists the dates evaluated by the batch command.
//
//	tz: America/Phoenix   # optional, defaults to --tz
//	dates:
//	  - "2015-10-10"
//	  - "2015-10-14T04:34:10"
type BatchFile struct {
	TZ    string   `yaml:"tz"`
	Dates []string `yaml:"dates"`
}

// LoadBatch reads and parses a batch YAML file. Unknown fields are
// rejected so typos surface instead of being ignored.
func LoadBatch(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var batch BatchFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(batch.Dates) == 0 {
		return nil, errors.New("invalid batch file: no dates")
	}

	return &batch, nil
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:           "batch",
		Short:         "Evaluate every quantity for the dates listed in a YAML file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return runBatch(rootOpts, formatter, path)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "path to the batch YAML file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runBatch(opts *RootOptions, formatter *OutputFormatter, path string) error {
	log := opts.logger()

	batch, err := LoadBatch(path)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeBatchFailed, err)
	}

	loc := opts.location()
	if batch.TZ != "" {
		loc, err = time.LoadLocation(batch.TZ)
		if err != nil {
			return fail(formatter, ExitCommandError, ErrCodeBatchFailed, fmt.Errorf("invalid tz %q: %w", batch.TZ, err))
		}
	}
	log.Debug("loaded batch", "path", path, "dates", len(batch.Dates), "tz", loc.String())

	out := BatchOutput{Results: make([]SnapshotOutput, 0, len(batch.Dates))}
	for i, s := range batch.Dates {
		if s == "" {
			return fail(formatter, ExitCommandError, ErrCodeBadTime, fmt.Errorf("dates[%d]: empty date", i))
		}
		date, err := parseTime(s, loc, opts.Now)
		if err != nil {
			return fail(formatter, ExitCommandError, ErrCodeBadTime, fmt.Errorf("dates[%d]: %w", i, err))
		}
		out.Results = append(out.Results, newSnapshotOutput(nutation.At(date)))
	}

	return formatter.Success(out)
}
