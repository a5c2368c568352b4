package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/thurmanmarka/nutation"
	"github.com/thurmanmarka/nutation/internal/timeutil"
)

// report is the outcome of comparing a reference file against the series.
type report struct {
	rows    int
	skipped int

	dpsi, deps             stats
	dpsiSigned, depsSigned signedStats
}

// profile compares every reference row against Nutation. Rows that fail to
// parse are skipped and counted. When out is non-nil a per-row error record
// is written to it.
func profile(r io.Reader, loc *time.Location, out *csv.Writer, verbose bool) (*report, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	if out != nil {
		if err := out.Write([]string{"time", "dpsi_ref", "dpsi_calc", "dpsi_err", "deps_ref", "deps_calc", "deps_err"}); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	rep := &report{}
	for first := true; ; first = false {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read reference csv: %w", err)
		}
		// file line of the record, comment lines included
		line, _ := cr.FieldPos(0)

		if first && strings.EqualFold(strings.TrimSpace(rec[0]), "time") {
			continue
		}
		rep.rows++

		if len(rec) < 3 {
			log.Printf("line %d: expected 3 columns, got %d; skipping", line, len(rec))
			rep.skipped++
			continue
		}

		t, err := timeutil.ParseTime(rec[0], loc)
		if err != nil {
			log.Printf("line %d: %v; skipping", line, err)
			rep.skipped++
			continue
		}
		dpsiRef, err1 := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		depsRef, err2 := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err1 != nil || err2 != nil {
			log.Printf("line %d: bad arcsecond value; skipping", line)
			rep.skipped++
			continue
		}

		n := nutation.Nutation(t)
		dpsiCalc, depsCalc := n.Long.Sec(), n.Obli.Sec()
		dpsiErr, depsErr := dpsiCalc-dpsiRef, depsCalc-depsRef

		rep.dpsi.add(dpsiErr)
		rep.deps.add(depsErr)
		rep.dpsiSigned.add(dpsiErr)
		rep.depsSigned.add(depsErr)

		if verbose {
			log.Printf("%s  Δψ ref=%+.5f calc=%+.5f err=%+.5f  Δε ref=%+.5f calc=%+.5f err=%+.5f",
				t.Format(time.RFC3339), dpsiRef, dpsiCalc, dpsiErr, depsRef, depsCalc, depsErr)
		}

		if out != nil {
			if err := out.Write([]string{
				t.Format(time.RFC3339),
				formatArcsec(dpsiRef), formatArcsec(dpsiCalc), formatArcsec(dpsiErr),
				formatArcsec(depsRef), formatArcsec(depsCalc), formatArcsec(depsErr),
			}); err != nil {
				return nil, fmt.Errorf("write line %d: %w", line, err)
			}
		}
	}

	if out != nil {
		out.Flush()
		if err := out.Error(); err != nil {
			return nil, fmt.Errorf("flush output csv: %w", err)
		}
	}
	return rep, nil
}

func formatArcsec(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}

func (r *report) print(w io.Writer) {
	fmt.Fprintln(w, "=== nutation profiler summary ===")
	fmt.Fprintf(w, "rows:      %d (%d skipped)\n", r.rows, r.skipped)
	fmt.Fprintf(w, "compared:  %d\n", r.dpsi.count)
	if r.dpsi.count == 0 {
		fmt.Fprintln(w, "no rows compared")
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Δψ (arcsec):")
	fmt.Fprintf(w, "  min abs error:    %.5f\n", r.dpsi.min)
	fmt.Fprintf(w, "  mean abs error:   %.5f\n", r.dpsi.avg())
	fmt.Fprintf(w, "  max abs error:    %.5f\n", r.dpsi.max)
	fmt.Fprintf(w, "  signed mean:      %+.5f\n", r.dpsiSigned.mean())
	fmt.Fprintf(w, "  signed range:     [%+.5f, %+.5f]\n", r.dpsiSigned.min, r.dpsiSigned.max)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Δε (arcsec):")
	fmt.Fprintf(w, "  min abs error:    %.5f\n", r.deps.min)
	fmt.Fprintf(w, "  mean abs error:   %.5f\n", r.deps.avg())
	fmt.Fprintf(w, "  max abs error:    %.5f\n", r.deps.max)
	fmt.Fprintf(w, "  signed mean:      %+.5f\n", r.depsSigned.mean())
	fmt.Fprintf(w, "  signed range:     [%+.5f, %+.5f]\n", r.depsSigned.min, r.depsSigned.max)
}
