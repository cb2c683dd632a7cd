package attendance

import (
	"io"
	"strings"
	"time"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type UploadRequest struct {
	FileName     string    `json:"-"`
	File         io.Reader `json:"-"`
	SelectedDate time.Time `json:"-"`
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FileName) {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "timesheet file is required",
		})
	} else if !strings.HasSuffix(strings.ToLower(r.FileName), ".xlsx") {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "invalid file type: only .xlsx files are accepted",
		})
	}

	if r.File == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "timesheet file is required",
		})
	}

	if r.SelectedDate.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "selected_date",
			Message: "selected_date is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UploadResponse struct {
	UploadID        string `json:"upload_id"`
	FileName        string `json:"file_name"`
	RecordCount     int    `json:"record_count"`
	SheetsProcessed int    `json:"sheets_processed"`
	SheetsSkipped   int    `json:"sheets_skipped"`
	TotalEmployees  int    `json:"total_employees"`
	NewAccounts     int    `json:"new_accounts"`
	Message         string `json:"message"`
}

type RecordResponse struct {
	Employee          string `json:"employee"`
	Date              string `json:"date"`
	PunchIn           string `json:"punch_in"`
	PunchOut          string `json:"punch_out"`
	Status            string `json:"status"`
	PunchInComment    string `json:"pin_comment,omitempty"`
	PunchOutComment   string `json:"pout_comment,omitempty"`
	StatusComment     string `json:"status_comment,omitempty"`
	PunchInHighlight  bool   `json:"pin_highlight"`
	PunchOutHighlight bool   `json:"pout_highlight"`
	StatusHighlight   bool   `json:"status_highlight"`
	TimeRange         string `json:"time_range,omitempty"`
	FileName          string `json:"file_name"`
}

// ToResponse converts a Record entity into its API shape.
func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		Employee:          r.Employee,
		Date:              r.Date.Format("2006-01-02"),
		PunchIn:           r.PunchIn,
		PunchOut:          r.PunchOut,
		Status:            r.Status,
		PunchInComment:    r.PunchInComment,
		PunchOutComment:   r.PunchOutComment,
		StatusComment:     r.StatusComment,
		PunchInHighlight:  r.PunchInHighlight,
		PunchOutHighlight: r.PunchOutHighlight,
		StatusHighlight:   r.StatusHighlight,
		TimeRange:         r.TimeRange,
		FileName:          r.FileName,
	}
}

type RecordFilter struct {
	Employee *string `json:"employee,omitempty"`
	Status   *string `json:"status,omitempty"` // matched as a prefix, "All" disables
}
