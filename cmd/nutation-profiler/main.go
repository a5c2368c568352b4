package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"time"
)

// CSV format:
//
// time,dpsi_arcsec,deps_arcsec
// 2015-10-10,-0.75677,-8.74238
// 1987-04-10T00:00:00Z,-3.788,9.443
//
// - time is RFC 3339 or YYYY-MM-DD[ HH:MM[:SS]]
// - times without an offset are taken in the zone given by -tz
// - dpsi/deps are the reference nutation in arcseconds
func main() {
	var (
		refCSV  = flag.String("refcsv", "", "path to reference CSV file (time,dpsi_arcsec,deps_arcsec)")
		outCSV  = flag.String("outcsv", "", "optional path to write per-row error CSV")
		tzName  = flag.String("tz", "UTC", "IANA time zone name for times without an offset")
		verbose = flag.Bool("verbose", false, "log per-row errors instead of only summary")
	)

	flag.Parse()
	log.SetFlags(0)

	if *refCSV == "" {
		log.Fatalf("missing -refcsv (path to reference CSV)")
	}

	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		log.Fatalf("failed to load timezone %q: %v", *tzName, err)
	}

	in, err := os.Open(*refCSV)
	if err != nil {
		log.Fatalf("failed to open reference CSV %q: %v", *refCSV, err)
	}
	defer in.Close()

	var out *csv.Writer
	if *outCSV != "" {
		f, err := os.Create(*outCSV)
		if err != nil {
			log.Fatalf("failed to create output CSV %q: %v", *outCSV, err)
		}
		defer f.Close()
		out = csv.NewWriter(f)
	}

	rep, err := profile(in, loc, out, *verbose)
	if err != nil {
		log.Fatalf("%v", err)
	}
	rep.print(os.Stdout)
}
