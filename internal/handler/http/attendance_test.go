package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/attendance"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/leave"
)

type stubAttendanceService struct {
	lastFilter attendance.RecordFilter
	records    []attendance.RecordResponse
}

func (s *stubAttendanceService) Upload(ctx context.Context, req attendance.UploadRequest) (attendance.UploadResponse, error) {
	return attendance.UploadResponse{}, nil
}

func (s *stubAttendanceService) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	s.lastFilter = filter
	return s.records, nil
}

func (s *stubAttendanceService) ListEmployees(ctx context.Context) ([]string, error) {
	return []string{"Raj Kumar"}, nil
}

func (s *stubAttendanceService) LeaveTotals(ctx context.Context) ([]leave.Totals, error) {
	return nil, nil
}

func requestWithClaims(t *testing.T, target string, claims map[string]interface{}) *http.Request {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestList_EmployeeSeesOnlyOwnRows(t *testing.T) {
	svc := &stubAttendanceService{}
	handler := NewAttendanceHandler(svc)

	req := requestWithClaims(t, "/api/v1/attendance/?employee=Someone+Else", map[string]interface{}{
		"name":     "Raj Kumar",
		"is_admin": false,
		"type":     "access",
	})
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastFilter.Employee)
	// The query parameter is overridden with the caller's own name
	assert.Equal(t, "Raj Kumar", *svc.lastFilter.Employee)
}

func TestList_AdminFilterHonored(t *testing.T) {
	svc := &stubAttendanceService{}
	handler := NewAttendanceHandler(svc)

	req := requestWithClaims(t, "/api/v1/attendance/?employee=Asha+Mehta&status=P", map[string]interface{}{
		"name":     "Admin User",
		"is_admin": true,
		"type":     "access",
	})
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastFilter.Employee)
	assert.Equal(t, "Asha Mehta", *svc.lastFilter.Employee)
	require.NotNil(t, svc.lastFilter.Status)
	assert.Equal(t, "P", *svc.lastFilter.Status)
}

func TestList_ResponseShape(t *testing.T) {
	svc := &stubAttendanceService{
		records: []attendance.RecordResponse{
			{Employee: "Raj Kumar", Date: "2025-11-03", PunchIn: "09:10", PunchOut: "18:30", Status: "P"},
		},
	}
	handler := NewAttendanceHandler(svc)

	req := requestWithClaims(t, "/api/v1/attendance/", map[string]interface{}{
		"name":     "Raj Kumar",
		"is_admin": false,
		"type":     "access",
	})
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	var body struct {
		Success bool                        `json:"success"`
		Data    []attendance.RecordResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "09:10", body.Data[0].PunchIn)
}

func TestUpload_InvalidSelectedDate(t *testing.T) {
	svc := &stubAttendanceService{}
	handler := NewAttendanceHandler(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "timesheet.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("not inspected before date validation"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("selected_date", "03-11-2025"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestList_VerifierError(t *testing.T) {
	svc := &stubAttendanceService{}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/", nil)
	req = req.WithContext(jwtauth.NewContext(req.Context(), nil, jwtauth.ErrNoTokenFound))
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
