package attendance

import "errors"

// Attendance domain errors
var (
	// Upload errors
	ErrInvalidFileType = errors.New("invalid file type: only .xlsx files are accepted")
	ErrFileUnreadable  = errors.New("timesheet file could not be opened")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrUnauthorized   = errors.New("unauthorized to access this attendance record")
)
