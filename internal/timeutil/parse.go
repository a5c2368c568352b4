package timeutil

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Layouts are tried in order by ParseTime; all but RFC3339 are read in the
// caller's zone.
var Layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime parses s with the first matching layout in Layouts. Input is
// NFKC-normalized first, so full-width digits and colons parse.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(norm.NFKC.String(s))

	var parseErr error
	for _, layout := range Layouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		parseErr = err
	}
	return time.Time{}, fmt.Errorf("could not parse time %q: %w", s, parseErr)
}
