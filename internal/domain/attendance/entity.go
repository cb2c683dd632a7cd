package attendance

import "time"

// Record is one employee-day extracted from an uploaded timesheet.
// Identity is (employee, date, file name): re-uploading the same file
// replaces every record previously extracted from it.
type Record struct {
	ID       string
	Employee string
	Date     time.Time

	// Display values: a "HH:MM" time, the MISSING marker, or empty when
	// the status policy or the blank-employee roster suppresses punches.
	PunchIn  string
	PunchOut string

	Status string

	PunchInComment  string
	PunchOutComment string
	StatusComment   string

	PunchInHighlight  bool
	PunchOutHighlight bool
	StatusHighlight   bool

	// Free-text shift window from the sheet header, e.g. "08:30 AM to 07:00 PM".
	TimeRange string

	FileName   string
	UploadedAt time.Time
}

// Upload is one processed workbook upload.
type Upload struct {
	ID          string
	FileName    string
	RecordCount int
	Status      string
	UploadedAt  time.Time
}
