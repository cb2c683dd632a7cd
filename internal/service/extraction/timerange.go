package extraction

import "strings"

// ExtractTimeRange finds the free-text shift window in a sheet's header,
// e.g. "08:30 AM to 07:00 PM". The preparers usually put it in A2; when it
// is not there, the first few header cells are scanned. The string is
// accepted verbatim — lateness derivation downstream owns parsing it and
// must tolerate garbage.
func ExtractTimeRange(rows [][]string) (string, bool) {
	if v := cellAt(rows, 1, 0); looksLikeTimeRange(v) {
		return v, true
	}

	for r := 0; r < 5; r++ {
		for c := 0; c < 3; c++ {
			if v := cellAt(rows, r, c); looksLikeTimeRange(v) {
				return v, true
			}
		}
	}

	return "", false
}

func looksLikeTimeRange(s string) bool {
	if s == "" {
		return false
	}
	up := strings.ToUpper(s)
	if strings.Contains(up, "AM") || strings.Contains(up, "PM") || strings.Contains(up, ":") {
		return true
	}
	for _, word := range strings.Fields(up) {
		if word == "TO" {
			return true
		}
	}
	return false
}
