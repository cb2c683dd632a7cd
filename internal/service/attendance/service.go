package attendance

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/config"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/attendance"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/leave"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/user"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/database"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/email"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/storage"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/repository/postgresql"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/service/extraction"
)

type AttendanceServiceImpl struct {
	db        *database.DB
	cfg       *config.Config
	processor *extraction.Processor
	records   attendance.RecordRepository
	uploads   attendance.UploadRepository
	totals    leave.TotalsRepository
	users     user.UserRepository
	storage   storage.FileStorage
	email     email.EmailService
}

func NewAttendanceService(
	db *database.DB,
	cfg *config.Config,
	processor *extraction.Processor,
	recordRepository attendance.RecordRepository,
	uploadRepository attendance.UploadRepository,
	totalsRepository leave.TotalsRepository,
	userRepository user.UserRepository,
	fileStorage storage.FileStorage,
	emailService email.EmailService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:        db,
		cfg:       cfg,
		processor: processor,
		records:   recordRepository,
		uploads:   uploadRepository,
		totals:    totalsRepository,
		users:     userRepository,
		storage:   fileStorage,
		email:     emailService,
	}
}

// Upload implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Upload(ctx context.Context, req attendance.UploadRequest) (attendance.UploadResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.UploadResponse{}, err
	}

	raw, err := io.ReadAll(req.File)
	if err != nil {
		return attendance.UploadResponse{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	f, err := extraction.OpenWorkbook(bytes.NewReader(raw))
	if err != nil {
		return attendance.UploadResponse{}, attendance.ErrFileUnreadable
	}
	defer f.Close()

	records, stats, err := s.processor.ProcessFile(f, req.SelectedDate)
	if err != nil {
		return attendance.UploadResponse{}, fmt.Errorf("failed to process timesheet: %w", err)
	}
	for i := range records {
		records[i].FileName = req.FileName
	}

	leaveTotals, err := s.processor.ExtractLeaveTotals(f)
	if err != nil {
		return attendance.UploadResponse{}, fmt.Errorf("failed to extract leave totals: %w", err)
	}
	for i := range leaveTotals {
		leaveTotals[i].FileName = req.FileName
	}

	// Keep the original workbook on disk so an extraction bug can be
	// diagnosed against the source file.
	storagePath := fmt.Sprintf("timesheets/%s%s", uuid.NewString(), filepath.Ext(req.FileName))
	if _, err := s.storage.Upload(ctx, bytes.NewReader(raw), storagePath,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"); err != nil {
		slog.Warn("failed to archive uploaded timesheet", "file", req.FileName, "error", err)
	}

	var upload attendance.Upload
	var inserted int
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		inserted, err = s.records.ReplaceForFile(txCtx, req.FileName, records)
		if err != nil {
			return err
		}

		if err := s.totals.ReplaceForFile(txCtx, req.FileName, leaveTotals); err != nil {
			return err
		}

		if err := s.uploads.DeleteByFileName(txCtx, req.FileName); err != nil {
			return err
		}
		upload, err = s.uploads.Create(txCtx, attendance.Upload{
			FileName:    req.FileName,
			RecordCount: inserted,
			Status:      "processed",
		})
		return err
	})
	if err != nil {
		return attendance.UploadResponse{}, err
	}

	newAccounts := s.provisionAccounts(ctx, records)

	employees := make(map[string]struct{})
	for _, rec := range records {
		employees[rec.Employee] = struct{}{}
	}

	return attendance.UploadResponse{
		UploadID:        upload.ID,
		FileName:        req.FileName,
		RecordCount:     inserted,
		SheetsProcessed: stats.SheetsProcessed,
		SheetsSkipped:   stats.SheetsSkipped,
		TotalEmployees:  len(employees),
		NewAccounts:     newAccounts,
		Message:         fmt.Sprintf("Processed %d records from %d sheets", inserted, stats.SheetsProcessed),
	}, nil
}

// provisionAccounts creates portal logins for employees whose sheets appear
// for the first time. Provisioning failures never fail the upload.
func (s *AttendanceServiceImpl) provisionAccounts(ctx context.Context, records []attendance.Record) int {
	seen := make(map[string]struct{})
	created := 0

	for _, rec := range records {
		if _, ok := seen[rec.Employee]; ok {
			continue
		}
		seen[rec.Employee] = struct{}{}

		addr := user.EmployeeEmail(rec.Employee, s.cfg.App.EmployeeEmailDomain)
		if _, err := s.users.GetByEmail(ctx, addr); err == nil {
			continue
		} else if err != user.ErrUserNotFound {
			slog.Warn("failed to check existing account", "email", addr, "error", err)
			continue
		}

		password := s.cfg.App.DefaultEmployeePassword
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			slog.Warn("failed to hash default password", "email", addr, "error", err)
			continue
		}

		_, err = s.users.Create(ctx, user.User{
			Email:        addr,
			Name:         rec.Employee,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
			IsAdmin:      false,
		})
		if err != nil {
			slog.Warn("failed to provision account", "email", addr, "error", err)
			continue
		}
		created++

		if err := s.email.SendAccountCreated(addr, rec.Employee, password); err != nil {
			slog.Warn("failed to send account email", "email", addr, "error", err)
		}
	}

	return created
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	records, err := s.records.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

// ListEmployees implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListEmployees(ctx context.Context) ([]string, error) {
	return s.records.ListEmployees(ctx)
}

// LeaveTotals implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) LeaveTotals(ctx context.Context) ([]leave.Totals, error) {
	return s.totals.List(ctx)
}
