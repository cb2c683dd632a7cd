package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/attendance"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/handler/http/response"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/validator"
)

type AttendanceHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	LeaveTotals(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Upload implements AttendanceHandler. Admin only, enforced by the router.
func (h *AttendanceHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 20MB)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer file.Close()

	// Processing runs up to and including this date; defaults to today.
	selectedDate := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := r.FormValue("selected_date"); raw != "" {
		var ok bool
		if selectedDate, ok = validator.IsValidDate(raw); !ok {
			response.BadRequest(w, "selected_date must be YYYY-MM-DD", nil)
			return
		}
	}

	req := attendance.UploadRequest{
		FileName:     fileHeader.Filename,
		File:         file,
		SelectedDate: selectedDate,
	}

	result, err := h.attendanceService.Upload(r.Context(), req)
	if err != nil {
		slog.Error("Upload service error", "file", fileHeader.Filename, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Timesheet processed",
		"file", result.FileName,
		"records", result.RecordCount,
		"sheets", result.SheetsProcessed,
		"new_accounts", result.NewAccounts,
	)
	response.SuccessWithMessage(w, result.Message, result)
}

// List implements AttendanceHandler. Employees only ever see their own
// rows; the employee query parameter is honored for admins alone.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var filter attendance.RecordFilter
	if v := r.URL.Query().Get("employee"); v != "" {
		filter.Employee = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	admin, _ := claims["is_admin"].(bool)
	if !admin {
		name, _ := claims["name"].(string)
		filter.Employee = &name
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListEmployees implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.attendanceService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// LeaveTotals implements AttendanceHandler.
func (h *AttendanceHandlerImpl) LeaveTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.attendanceService.LeaveTotals(r.Context())
	if err != nil {
		slog.Error("LeaveTotals service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}
