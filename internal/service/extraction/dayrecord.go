package extraction

import (
	"strings"
	"time"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/attendance"
)

// MissingMarker is substituted for a punch field when policy dictates
// showing it but the underlying value could not be read.
const MissingMarker = "MISSING"

// buildDayRecord derives the single attendance fact for one employee-day.
//
// Within a month block the data rows sit at fixed offsets from the header
// row: punch-in on the header row itself, punch-out one below, status two
// below. The day's data column is day+2 (the first two columns carry
// labels).
func (p *Processor) buildDayRecord(
	cls *Classifier,
	sheet string,
	rows [][]string,
	headerRow, col int,
	date time.Time,
	blankEmployee bool,
	timeRange string,
) attendance.Record {
	statusRow := headerRow + 2
	status := strings.ToUpper(cellAt(rows, statusRow, col))

	rec := attendance.Record{
		Employee:  sheet,
		Date:      date,
		Status:    status,
		TimeRange: timeRange,
	}

	rec.PunchIn, rec.PunchOut = p.punchDisplay(rows, headerRow, col, status, blankEmployee)

	pinFlags := cls.Classify(sheet, formattingCell(headerRow, col))
	rec.PunchInHighlight = pinFlags.Highlighted
	rec.PunchInComment = pinFlags.Comment

	if headerRow+1 < len(rows) {
		poutFlags := cls.Classify(sheet, formattingCell(headerRow+1, col))
		rec.PunchOutHighlight = poutFlags.Highlighted
		rec.PunchOutComment = poutFlags.Comment
	}

	if statusRow < len(rows) {
		statusFlags := cls.Classify(sheet, formattingCell(statusRow, col))
		rec.StatusHighlight = statusFlags.Highlighted
		rec.StatusComment = statusFlags.Comment
	}

	return rec
}

// punchDisplay applies the status decision table, then branches on which
// of the two punch readings could be normalized.
func (p *Processor) punchDisplay(rows [][]string, headerRow, col int, status string, blankEmployee bool) (string, string) {
	pol := p.policies[status]

	if pol.Suppress {
		return "", ""
	}
	if blankEmployee {
		// Known employees with structurally blank timesheets: never flag
		// their punches as missing, whatever the status says.
		return "", ""
	}

	in, inOK := NormalizeTime(cellAt(rows, headerRow, col))
	out, outOK := NormalizeTime(cellAt(rows, headerRow+1, col))

	show := pol.AlwaysShow || !pol.IgnoreWhenMissing

	switch {
	case inOK && outOK:
		return in.Format(), out.Format()

	case inOK != outOK:
		if !show {
			return "", ""
		}
		present := in
		if outOK {
			present = out
		}
		// A single reading needs a side: an afternoon hour is far more
		// plausibly a punch-out.
		if present.Hour >= 12 {
			return MissingMarker, present.Format()
		}
		return present.Format(), MissingMarker

	default:
		if !show {
			return "", ""
		}
		return MissingMarker, MissingMarker
	}
}
