package utils

import (
	"strings"
	"time"
)

// CanonicalDateFormat is the output format for all voucher dates.
const CanonicalDateFormat = "2006-01-02"

// dateLayouts is the ordered set of input layouts tried by ParseDate. ISO
// forms go first; ambiguous slash/dash dates resolve day-first, matching the
// Indian-market reports this system ingests.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
	"02-01-2006 15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
	"02-Jan-2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"02.01.2006",
}

// ParseDate best-effort parses a date-like string and returns it formatted as
// YYYY-MM-DD. Any value that matches no known layout yields "". Never fails.
func ParseDate(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(CanonicalDateFormat)
		}
	}
	return ""
}
