package attendance

import (
	"context"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/leave"
)

type AttendanceService interface {
	// Upload processes one timesheet workbook: extracts the ledger and the
	// cumulative leave totals, replaces all prior data for the file, and
	// auto-provisions accounts for employees seen for the first time.
	Upload(ctx context.Context, req UploadRequest) (UploadResponse, error)

	// List retrieves extracted records. Non-admin callers only see their own rows.
	List(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)

	// ListEmployees returns the distinct employee names in the ledger.
	ListEmployees(ctx context.Context) ([]string, error)

	// LeaveTotals returns cumulative leave counters per employee.
	LeaveTotals(ctx context.Context) ([]leave.Totals, error)
}
