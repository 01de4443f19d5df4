// Package helpers provides utility functions for normalizing finding aid values.
package helpers

import (
	"regexp"
	"strings"
)

var (
	// Year only: 1852
	yearOnlyRegex = regexp.MustCompile(`^(\d{4})$`)

	// Year-month: 1852-03
	yearMonthRegex = regexp.MustCompile(`^(\d{4})-\d{2}$`)

	// Full date: 1852-03-15
	fullDateRegex = regexp.MustCompile(`^(\d{4})-\d{2}-\d{2}$`)

	// Interval endpoint: any value that starts with a four digit year
	intervalSideRegex = regexp.MustCompile(`^(\d{4})`)
)

// YearRange maps an ISO date or interval to its begin and end year.
//
// Supported shapes are "YYYY.../YYYY..." intervals, a bare year, and
// seven or ten character ISO dates. Anything else, including the empty
// string, yields two empty strings: upstream date quality varies and an
// unknown range is not an error.
func YearRange(date string) (begin, end string) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", ""
	}

	if start, stop, ok := strings.Cut(date, "/"); ok {
		b := intervalSideRegex.FindStringSubmatch(strings.TrimSpace(start))
		e := intervalSideRegex.FindStringSubmatch(strings.TrimSpace(stop))
		if b == nil || e == nil {
			return "", ""
		}
		return b[1], e[1]
	}

	for _, re := range []*regexp.Regexp{yearOnlyRegex, yearMonthRegex, fullDateRegex} {
		if m := re.FindStringSubmatch(date); m != nil {
			return m[1], m[1]
		}
	}

	return "", ""
}
