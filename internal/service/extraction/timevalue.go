package extraction

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a normalized time-of-day. Only the clock component of a
// parsed value is ever retained: partial string parses can invent a date
// fragment, and trusting it would leak spurious dates downstream.
type ClockTime struct {
	Hour   int
	Minute int
}

func (t ClockTime) Format() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// The manually-typed punch formats seen in circulation, in match order.
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04:05 PM",
	"15.04",
	"15.04.05",
}

// Last-resort layouts for cells that carry a full datetime.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// NormalizeTime converts a raw cell value of unknown shape into a
// time-of-day. The value may be an Excel numeric serial, a time string in
// one of several formats, or a full datetime; anything else yields ok=false.
// Deterministic and pure: same input, same output.
func NormalizeTime(raw string) (ClockTime, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ClockTime{}, false
	}

	// Clock layouts go first: the dotted 24-hour forms ("09.15") would
	// otherwise be misread as Excel serials. A genuine serial never matches
	// them — its integer part overflows the hour or its fraction carries
	// more digits than a minute field.
	candidate := strings.ToUpper(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, true
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return clockFromSerial(serial)
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, true
		}
	}

	return ClockTime{}, false
}

// clockFromSerial interprets the fractional day of an Excel serial number.
func clockFromSerial(serial float64) (ClockTime, bool) {
	if math.IsNaN(serial) || serial < 0 {
		return ClockTime{}, false
	}
	frac := serial - math.Floor(serial)
	minutes := int(math.Round(frac * 24 * 60))
	if minutes >= 24*60 {
		minutes = 0
	}
	return ClockTime{Hour: minutes / 60, Minute: minutes % 60}, true
}
