package extraction

import (
	"strconv"
	"strings"
	"time"
)

// LocateMonthBlock scans the label column for the header row that starts
// the month's block (punch-in row, punch-out row, status row). Three label
// conventions appear in the field, tried in priority order:
//
//  1. bare 3-letter month code ("NOV")
//  2. "MMM-YY" ("NOV-24") — the year is accepted within ±1 of the target,
//     because annual sheets copied across a fiscal-year boundary routinely
//     keep last year's label
//  3. a full datetime string beginning with the target year, whose date
//     portion falls in the target month
//
// The topmost matching row wins. No match means the sheet simply has no
// data for this month; callers skip it.
func LocateMonthBlock(rows [][]string, year int, month time.Month) (int, bool) {
	abbr := strings.ToUpper(month.String()[:3])
	yearPrefix := strconv.Itoa(year)

	for i := range rows {
		label := strings.ToUpper(cellAt(rows, i, 0))
		if label == "" {
			continue
		}

		if label == abbr {
			return i, true
		}

		if len(label) == 6 && label[3] == '-' && label[:3] == abbr {
			if yy, err := strconv.Atoi(label[4:]); err == nil {
				diff := (2000 + yy) - year
				if diff >= -1 && diff <= 1 {
					return i, true
				}
			}
		}

		if len(label) >= 10 && strings.HasPrefix(label, yearPrefix) {
			if d, err := time.Parse("2006-01-02", label[:10]); err == nil && d.Month() == month {
				return i, true
			}
		}
	}

	return 0, false
}
