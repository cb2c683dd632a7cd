package response

import (
	"errors"
	"net/http"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/attendance"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/auth"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/user"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrInvalidOTP):
		BadRequest(w, "Invalid or expired reset code", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		BadRequest(w, "Email already registered", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidFileType):
		BadRequest(w, "Only .xlsx files are accepted", nil)
	case errors.Is(err, attendance.ErrFileUnreadable):
		BadRequest(w, "Could not read the uploaded workbook", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to view these records")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
