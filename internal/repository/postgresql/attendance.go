package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/attendance"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/database"
)

type recordRepository struct {
	db *database.DB
}

// ReplaceForFile implements attendance.RecordRepository.
func (r *recordRepository) ReplaceForFile(ctx context.Context, fileName string, records []attendance.Record) (int, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE file_name = $1`, fileName); err != nil {
		return 0, fmt.Errorf("failed to delete records for file: %w", err)
	}

	query := `
		INSERT INTO attendance_records (
			employee, date, punch_in, punch_out, status,
			punch_in_comment, punch_out_comment, status_comment,
			punch_in_highlight, punch_out_highlight, status_highlight,
			time_range, file_name
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
	`

	inserted := 0
	for _, rec := range records {
		_, err := q.Exec(ctx, query,
			rec.Employee,
			rec.Date,
			rec.PunchIn,
			rec.PunchOut,
			rec.Status,
			rec.PunchInComment,
			rec.PunchOutComment,
			rec.StatusComment,
			rec.PunchInHighlight,
			rec.PunchOutHighlight,
			rec.StatusHighlight,
			rec.TimeRange,
			fileName,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert record for %s on %s: %w",
				rec.Employee, rec.Date.Format("2006-01-02"), err)
		}
		inserted++
	}

	return inserted, nil
}

// List implements attendance.RecordRepository.
func (r *recordRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	if filter.Employee != nil && *filter.Employee != "" {
		conditions = append(conditions, fmt.Sprintf("employee = $%d", argIndex))
		args = append(args, *filter.Employee)
		argIndex++
	}
	if filter.Status != nil && *filter.Status != "" && *filter.Status != "All" {
		conditions = append(conditions, fmt.Sprintf("status LIKE $%d", argIndex))
		args = append(args, *filter.Status+"%")
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT id, employee, date, punch_in, punch_out, status,
			   punch_in_comment, punch_out_comment, status_comment,
			   punch_in_highlight, punch_out_highlight, status_highlight,
			   time_range, file_name, uploaded_at
		FROM attendance_records
		WHERE %s
		ORDER BY employee, date
	`, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.Employee, &rec.Date, &rec.PunchIn, &rec.PunchOut, &rec.Status,
			&rec.PunchInComment, &rec.PunchOutComment, &rec.StatusComment,
			&rec.PunchInHighlight, &rec.PunchOutHighlight, &rec.StatusHighlight,
			&rec.TimeRange, &rec.FileName, &rec.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// ListEmployees implements attendance.RecordRepository.
func (r *recordRepository) ListEmployees(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT employee FROM attendance_records ORDER BY employee`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan employee name: %w", err)
		}
		employees = append(employees, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee names: %w", err)
	}

	return employees, nil
}

func NewRecordRepository(db *database.DB) attendance.RecordRepository {
	return &recordRepository{db: db}
}
