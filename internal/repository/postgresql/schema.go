package postgresql

import (
	"context"
	"fmt"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/database"
)

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'Employee',
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS password_reset_otps (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL,
		code TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		used BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee TEXT NOT NULL,
		date DATE NOT NULL,
		punch_in TEXT NOT NULL DEFAULT '',
		punch_out TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		punch_in_comment TEXT NOT NULL DEFAULT '',
		punch_out_comment TEXT NOT NULL DEFAULT '',
		status_comment TEXT NOT NULL DEFAULT '',
		punch_in_highlight BOOLEAN NOT NULL DEFAULT FALSE,
		punch_out_highlight BOOLEAN NOT NULL DEFAULT FALSE,
		status_highlight BOOLEAN NOT NULL DEFAULT FALSE,
		time_range TEXT NOT NULL DEFAULT '',
		file_name TEXT NOT NULL,
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_employee ON attendance_records (employee)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_file_name ON attendance_records (file_name)`,
	`CREATE TABLE IF NOT EXISTS leave_totals (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee TEXT NOT NULL,
		week_off DOUBLE PRECISION,
		personal_leave DOUBLE PRECISION,
		sick_leave DOUBLE PRECISION,
		festival_leave DOUBLE PRECISION,
		file_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leave_totals_file_name ON leave_totals (file_name)`,
	`CREATE TABLE IF NOT EXISTS uploads (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		file_name TEXT NOT NULL,
		record_count INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'processed',
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the portal tables if they do not exist yet. Safe
// to run on every startup.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
