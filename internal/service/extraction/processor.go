package extraction

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

// Options tunes the extraction engine. Everything here reflects local
// timesheet conventions rather than engine behavior.
type Options struct {
	// BlankEmployees are sheets known to carry no punch data; their punch
	// fields stay empty for every status.
	BlankEmployees []string

	// ExceptionTag marks temporary staff in a sheet name, e.g. "(T)".
	ExceptionTag string

	// SuppressHalfDayPunches folds the half-day codes into the
	// punch-suppressing set instead of always showing them.
	SuppressHalfDayPunches bool
}

// Stats summarizes one extraction pass. Skipped sheets are an expected
// outcome (hidden, empty, or no block for the month), never an error.
type Stats struct {
	SheetsProcessed int
	SheetsSkipped   int
}

// Processor extracts the attendance ledger and leave totals from one
// workbook. It holds no mutable state across files; concurrent use on
// different files is safe.
type Processor struct {
	opts     Options
	policies map[string]punchPolicy
	blank    map[string]bool
}

func NewProcessor(opts Options) *Processor {
	if opts.ExceptionTag == "" {
		opts.ExceptionTag = "(T)"
	}

	blank := make(map[string]bool, len(opts.BlankEmployees))
	for _, name := range opts.BlankEmployees {
		blank[strings.TrimSpace(name)] = true
	}

	return &Processor{
		opts:     opts,
		policies: statusPolicies(opts.SuppressHalfDayPunches),
		blank:    blank,
	}
}

// OpenWorkbook parses a workbook from a reader. Failure here is terminal
// for the whole upload.
func OpenWorkbook(r io.Reader) (*excelize.File, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return f, nil
}

// ProcessFile walks every visible sheet of the workbook and extracts one
// record per employee-day from day 1 through the selected date's day.
// Hidden sheets are archival/template sheets, never live employee data.
func (p *Processor) ProcessFile(f *excelize.File, selected time.Time) ([]attendance.Record, Stats, error) {
	var records []attendance.Record
	var stats Stats

	cls := NewClassifier(f)
	year, month, dayLimit := selected.Year(), selected.Month(), selected.Day()

	for _, sheet := range f.GetSheetList() {
		visible, err := f.GetSheetVisible(sheet)
		if err != nil || !visible {
			stats.SheetsSkipped++
			continue
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		if sheetIsEmpty(rows) {
			stats.SheetsSkipped++
			continue
		}

		headerRow, found := LocateMonthBlock(rows, year, month)
		if !found {
			stats.SheetsSkipped++
			continue
		}

		timeRange, _ := ExtractTimeRange(rows)
		width := sheetWidth(rows)
		blankEmployee := p.blank[strings.TrimSpace(sheet)]

		for day := 1; day <= dayLimit; day++ {
			col := day + 2
			if col >= width {
				continue
			}
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			records = append(records, p.buildDayRecord(cls, sheet, rows, headerRow, col, date, blankEmployee, timeRange))
		}

		stats.SheetsProcessed++
	}

	return records, stats, nil
}
