package postgresql

import (
	"context"
	"fmt"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/leave"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/database"
)

type leaveTotalsRepository struct {
	db *database.DB
}

// Ineligible counters persist as NULL so the N/A marker survives round-trips.
func counterValue(c leave.Counter) interface{} {
	if !c.Eligible {
		return nil
	}
	return c.Days
}

func scanCounter(v *float64) leave.Counter {
	if v == nil {
		return leave.NotEligible()
	}
	return leave.NewCounter(*v)
}

// ReplaceForFile implements leave.TotalsRepository.
func (r *leaveTotalsRepository) ReplaceForFile(ctx context.Context, fileName string, totals []leave.Totals) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_totals WHERE file_name = $1`, fileName); err != nil {
		return fmt.Errorf("failed to delete leave totals for file: %w", err)
	}

	query := `
		INSERT INTO leave_totals (
			employee, week_off, personal_leave, sick_leave, festival_leave, file_name
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	for _, t := range totals {
		_, err := q.Exec(ctx, query,
			t.Employee,
			counterValue(t.WeekOff),
			counterValue(t.PersonalLeave),
			counterValue(t.SickLeave),
			counterValue(t.FestivalLeave),
			fileName,
		)
		if err != nil {
			return fmt.Errorf("failed to insert leave totals for %s: %w", t.Employee, err)
		}
	}

	return nil
}

// List implements leave.TotalsRepository.
func (r *leaveTotalsRepository) List(ctx context.Context) ([]leave.Totals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee, week_off, personal_leave, sick_leave, festival_leave, file_name
		FROM leave_totals
		ORDER BY employee
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave totals: %w", err)
	}
	defer rows.Close()

	var totals []leave.Totals
	for rows.Next() {
		var t leave.Totals
		var wo, pl, sl, fl *float64
		if err := rows.Scan(&t.Employee, &wo, &pl, &sl, &fl, &t.FileName); err != nil {
			return nil, fmt.Errorf("failed to scan leave totals: %w", err)
		}
		t.WeekOff = scanCounter(wo)
		t.PersonalLeave = scanCounter(pl)
		t.SickLeave = scanCounter(sl)
		t.FestivalLeave = scanCounter(fl)
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave totals: %w", err)
	}

	return totals, nil
}

func NewLeaveTotalsRepository(db *database.DB) leave.TotalsRepository {
	return &leaveTotalsRepository{db: db}
}
