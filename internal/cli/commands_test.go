package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

type response[T any] struct {
	Status string    `json:"status" yaml:"status"`
	Data   T         `json:"data" yaml:"data"`
	Error  *CLIError `json:"error" yaml:"error"`
}

func decodeJSON[T any](t *testing.T, s string) response[T] {
	t.Helper()
	var resp response[T]
	require.NoError(t, json.Unmarshal([]byte(s), &resp), s)
	return resp
}

func TestNutJSON(t *testing.T) {
	out, _, err := execute(t, "nut", "--time", "2015-10-10", "--format", "json")
	require.NoError(t, err)

	resp := decodeJSON[NutationOutput](t, out)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2015-10-10T00:00:00Z", resp.Data.Time)
	assert.InDelta(t, 2457305.5, resp.Data.JD, 1e-9)
	assert.InDelta(t, -0.757, resp.Data.DPsi.Arcseconds, 0.001)
	assert.InDelta(t, -8.742, resp.Data.DEps.Arcseconds, 0.001)
	assert.Equal(t, "-0°0′0.757″", resp.Data.DPsi.Sexagesimal)
	assert.Equal(t, "-0°0′8.742″", resp.Data.DEps.Sexagesimal)
	assert.InDelta(t, resp.Data.DEps.Arcseconds/3600, resp.Data.DEps.Degrees, 1e-12)
}

func TestNutYAML(t *testing.T) {
	out, _, err := execute(t, "nut", "-t", "2015-10-10T00:00:00Z", "--format", "yaml")
	require.NoError(t, err)

	var resp response[NutationOutput]
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp), out)
	assert.Equal(t, "ok", resp.Status)
	assert.InDelta(t, -0.757, resp.Data.DPsi.Arcseconds, 0.001)
	assert.InDelta(t, -8.742, resp.Data.DEps.Arcseconds, 0.001)
}

func TestNutText(t *testing.T) {
	out, _, err := execute(t, "nut", "--time", "2015-10-10")
	require.NoError(t, err)

	assert.Contains(t, out, "Nutation at 2015-10-10T00:00:00Z")
	assert.Contains(t, out, "Δψ")
	assert.Contains(t, out, "Δε")
	assert.Contains(t, out, "-8.742")
}

func TestNutBadTime(t *testing.T) {
	out, _, err := execute(t, "nut", "--time", "yesterday", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := decodeJSON[any](t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeBadTime, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "yesterday")
}

func TestNutDefaultsToNow(t *testing.T) {
	fixed := time.Date(2015, time.October, 10, 0, 0, 0, 0, time.UTC)
	opts := &RootOptions{Format: "json", Now: func() time.Time { return fixed }}

	out := &bytes.Buffer{}
	cmd := NewNutCommand(opts)
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	resp := decodeJSON[NutationOutput](t, out.String())
	assert.Equal(t, "2015-10-10T00:00:00Z", resp.Data.Time)
	assert.InDelta(t, -0.757, resp.Data.DPsi.Arcseconds, 0.001)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "nut", "--time", "2015-10-10", "--format", "json", "-v")
	require.NoError(t, err)

	assert.Contains(t, errOut, "evaluating nutation")
	assert.Contains(t, errOut, "level=DEBUG")
	decodeJSON[NutationOutput](t, out)
}

func TestObliquity(t *testing.T) {
	// 23°26′14.183″
	const iauArcsec = 23*3600 + 26*60 + 14.183

	out, _, err := execute(t, "obliquity", "--time", "2015-07-10", "--format", "json")
	require.NoError(t, err)
	resp := decodeJSON[ObliquityOutput](t, out)
	assert.Equal(t, "iau", resp.Data.Model)
	assert.InDelta(t, iauArcsec, resp.Data.Obliquity.Arcseconds, 0.001)

	out, _, err = execute(t, "obliquity", "--time", "2015-07-10", "--model", "laskar", "--format", "json")
	require.NoError(t, err)
	resp = decodeJSON[ObliquityOutput](t, out)
	assert.Equal(t, "laskar", resp.Data.Model)
	// 23°14′22.374″
	assert.InDelta(t, 23*3600+14*60+22.374, resp.Data.Obliquity.Arcseconds, 0.001)

	out, _, err = execute(t, "obliquity", "--time", "2015-07-10", "-m", "TRUE", "--format", "json")
	require.NoError(t, err)
	resp = decodeJSON[ObliquityOutput](t, out)
	assert.Equal(t, "true", resp.Data.Model)

	nut, _, err := execute(t, "nut", "--time", "2015-07-10", "--format", "json")
	require.NoError(t, err)
	n := decodeJSON[NutationOutput](t, nut)
	assert.InDelta(t, iauArcsec+n.Data.DEps.Arcseconds, resp.Data.Obliquity.Arcseconds, 0.001)
}

func TestObliquityLaskarOutOfRange(t *testing.T) {
	// five-digit years cannot be typed into --time, so move the clock instead
	far := time.Date(12100, time.January, 1, 0, 0, 0, 0, time.UTC)
	opts := &RootOptions{Format: "json", Now: func() time.Time { return far }}

	buf := &bytes.Buffer{}
	cmd := NewObliquityCommand(opts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--model", "laskar"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	out := buf.String()
	resp := decodeJSON[any](t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeOutOfRange, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "12100")
}

func TestObliquityBadModel(t *testing.T) {
	out, _, err := execute(t, "obliquity", "--model", "iau2006")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error ["+ErrCodeBadModel+"]")
}

func TestRA(t *testing.T) {
	out, _, err := execute(t, "ra", "--time", "2015-10-14T04:34:10", "--format", "json")
	require.NoError(t, err)

	resp := decodeJSON[RAOutput](t, out)
	assert.Equal(t, "2015-10-14T04:34:10Z", resp.Data.Time)
	assert.InDelta(t, -0.0786, resp.Data.Seconds, 0.0001)

	text, _, err := execute(t, "ra", "--time", "2015-10-14T04:34:10")
	require.NoError(t, err)
	assert.Contains(t, text, "-0.0786s")
}

func TestAll(t *testing.T) {
	out, _, err := execute(t, "all", "--time", "2015-10-14T04:34:10", "--format", "json")
	require.NoError(t, err)

	resp := decodeJSON[SnapshotOutput](t, out)
	assert.Equal(t, "ok", resp.Status)
	assert.InDelta(t, -0.0786, resp.Data.RASeconds, 0.0001)
	assert.InDelta(t,
		resp.Data.MeanObliquity.Degrees+resp.Data.DEps.Degrees,
		resp.Data.TrueObliquity.Degrees, 1e-9)
	assert.InDelta(t, (resp.Data.JD-2451545.0)/36525.0, resp.Data.T, 1e-15)

	text, _, err := execute(t, "all", "--time", "2015-10-14T04:34:10")
	require.NoError(t, err)
	assert.Contains(t, text, "true obliquity")
}

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBatch(t *testing.T) {
	path := writeBatch(t, `
dates:
  - "2015-10-10"
  - "2015-10-14T04:34:10"
  - "1987-04-10T00:00:00Z"
`)

	out, _, err := execute(t, "batch", "--file", path, "--format", "json")
	require.NoError(t, err)

	resp := decodeJSON[BatchOutput](t, out)
	require.Len(t, resp.Data.Results, 3)
	assert.InDelta(t, -0.757, resp.Data.Results[0].DPsi.Arcseconds, 0.001)
	assert.InDelta(t, -0.0786, resp.Data.Results[1].RASeconds, 0.0001)
	assert.InDelta(t, -3.788, resp.Data.Results[2].DPsi.Arcseconds, 0.001)
	assert.InDelta(t, 9.443, resp.Data.Results[2].DEps.Arcseconds, 0.001)
}

func TestBatchTZ(t *testing.T) {
	path := writeBatch(t, `
tz: UTC
dates:
  - "2015-10-10 00:00"
`)

	out, _, err := execute(t, "batch", "-f", path, "--format", "yaml")
	require.NoError(t, err)

	var resp response[BatchOutput]
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp), out)
	require.Len(t, resp.Data.Results, 1)
	assert.Equal(t, "2015-10-10T00:00:00Z", resp.Data.Results[0].Time)
}

func TestBatchErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"unknown field", "dates: [\"2015-10-10\"]\ntimezone: UTC\n", ErrCodeBatchFailed},
		{"no dates", "dates: []\n", ErrCodeBatchFailed},
		{"bad tz", "tz: Nowhere/Special\ndates: [\"2015-10-10\"]\n", ErrCodeBatchFailed},
		{"bad date", "dates: [\"2015-10-10\", \"soon\"]\n", ErrCodeBadTime},
		{"empty date", "dates: [\"\"]\n", ErrCodeBadTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeBatch(t, tt.content)

			out, _, err := execute(t, "batch", "--file", path, "--format", "json")
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))

			resp := decodeJSON[any](t, out)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestBatchMissingFile(t *testing.T) {
	_, err := LoadBatch(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read batch file")
}

func TestTermsGolden(t *testing.T) {
	out, _, err := execute(t, "terms")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "terms", []byte(out))
}

func TestTermsJSON(t *testing.T) {
	out, _, err := execute(t, "terms", "--format", "json")
	require.NoError(t, err)

	resp := decodeJSON[TermsOutput](t, out)
	require.Len(t, resp.Data.Terms, 63)
	assert.Equal(t, 1, resp.Data.Terms[0].Omega)
	assert.Equal(t, -171996.0, resp.Data.Terms[0].Sin0)
}

func TestParseTime(t *testing.T) {
	now := func() time.Time { return time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC) }
	loc := time.FixedZone("UTC-7", -7*3600)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", time.Date(2020, 1, 1, 20, 4, 5, 0, loc)},
		{"2015-10-10", time.Date(2015, 10, 10, 0, 0, 0, 0, loc)},
		{"2015-10-14T04:34", time.Date(2015, 10, 14, 4, 34, 0, 0, loc)},
		{"2015-10-14T04:34:10", time.Date(2015, 10, 14, 4, 34, 10, 0, loc)},
		{"2015-10-14 04:34:10", time.Date(2015, 10, 14, 4, 34, 10, 0, loc)},
		{"2015-10-14T04:34:10Z", time.Date(2015, 10, 14, 4, 34, 10, 0, time.UTC)},
		{"２０１５－１０－１４ ０４：３４", time.Date(2015, 10, 14, 4, 34, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTime(tt.in, loc, now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}

	_, err := parseTime("10/10/2015", loc, now)
	assert.Error(t, err)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "E001", assert.AnError)))

	e := WrapExitError(ExitFailure, "E004", assert.AnError)
	assert.ErrorIs(t, e, assert.AnError)
	assert.Contains(t, e.Error(), "E004")
}
