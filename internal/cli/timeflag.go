package cli

import (
	"strings"
	"time"

	"github.com/thurmanmarka/nutation/internal/timeutil"
)

// parseTime parses s in loc using timeutil.ParseTime. A blank s yields now.
func parseTime(s string, loc *time.Location, now func() time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return now().In(loc), nil
	}
	return timeutil.ParseTime(s, loc)
}
