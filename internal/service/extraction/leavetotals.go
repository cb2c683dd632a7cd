package extraction

import (
	"strconv"
	"strings"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/leave"
	"github.com/xuri/excelize/v2"
)

// How many header rows to scan for the leave total labels.
const labelScanRows = 10

// The week-off label as actually typed across the sheets in circulation.
var weekOffLabels = []string{"W/O", "W O", "W-0", "W-O"}

const (
	labelWeekOff = iota
	labelPersonal
	labelSick
	labelFestival
	labelCount
)

// ExtractLeaveTotals locates the cumulative leave counters on every
// visible sheet: a label cell in the header region marks each counter's
// column, and the last numeric value in that column is the running total.
// Sheets with no labels at all are skipped — distinct from "labels exist
// but no value follows", which legitimately yields zeros.
func (p *Processor) ExtractLeaveTotals(f *excelize.File) ([]leave.Totals, error) {
	var totals []leave.Totals

	for _, sheet := range f.GetSheetList() {
		visible, err := f.GetSheetVisible(sheet)
		if err != nil || !visible {
			continue
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, err
		}

		if t, ok := p.sheetLeaveTotals(rows, sheet); ok {
			totals = append(totals, t)
		}
	}

	return totals, nil
}

func (p *Processor) sheetLeaveTotals(rows [][]string, sheet string) (leave.Totals, bool) {
	cols := locateLabelColumns(rows)
	if len(cols) == 0 {
		return leave.Totals{}, false
	}

	counter := func(label int) leave.Counter {
		col, ok := cols[label]
		if !ok {
			return leave.NewCounter(0)
		}
		return leave.NewCounter(lastNumericInColumn(rows, col))
	}

	t := leave.Totals{
		Employee:      sheet,
		WeekOff:       counter(labelWeekOff),
		PersonalLeave: counter(labelPersonal),
		SickLeave:     counter(labelSick),
		FestivalLeave: counter(labelFestival),
	}

	// Temporary staff do not accrue personal or sick leave.
	if strings.Contains(sheet, p.opts.ExceptionTag) {
		t.PersonalLeave = leave.NotEligible()
		t.SickLeave = leave.NotEligible()
	}

	return t, true
}

// locateLabelColumns records the column of each label's first occurrence
// in the header region, stopping early once all four are found.
func locateLabelColumns(rows [][]string) map[int]int {
	cols := make(map[int]int, labelCount)

	for r := 0; r < labelScanRows && r < len(rows); r++ {
		for c := range rows[r] {
			label, ok := matchLeaveLabel(cellAt(rows, r, c))
			if !ok {
				continue
			}
			if _, seen := cols[label]; !seen {
				cols[label] = c
			}
		}
		if len(cols) == labelCount {
			break
		}
	}

	return cols
}

func matchLeaveLabel(cell string) (int, bool) {
	up := strings.ToUpper(cell)
	switch up {
	case "PL":
		return labelPersonal, true
	case "SL":
		return labelSick, true
	case "FL":
		return labelFestival, true
	}
	for _, wo := range weekOffLabels {
		if up == wo {
			return labelWeekOff, true
		}
	}
	return 0, false
}

// lastNumericInColumn scans bottom-up for the first cell that parses as a
// number. Unparseable rows are skipped, not zero-filled.
func lastNumericInColumn(rows [][]string, col int) float64 {
	for r := len(rows) - 1; r >= 0; r-- {
		v := cellAt(rows, r, col)
		if v == "" {
			continue
		}
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return 0
}
