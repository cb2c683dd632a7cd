// Package extraction implements the timesheet extraction engine: it walks
// the month blocks of manually-maintained per-employee sheets and derives
// one attendance fact per employee-day, plus cumulative leave totals.
package extraction

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Bulk row data is addressed 0-based; excelize cell references (used for
// styles and comments) are 1-based. formattingCell is the single place
// that crosses between the two schemes.
func formattingCell(row, col int) string {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return cell
}

// cellAt returns the trimmed value at (row, col) or "" when the sheet's
// ragged row data does not extend that far.
func cellAt(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	if col < 0 || col >= len(rows[row]) {
		return ""
	}
	return strings.TrimSpace(rows[row][col])
}

// sheetWidth is the column extent of the widest row.
func sheetWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func sheetIsEmpty(rows [][]string) bool {
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return false
			}
		}
	}
	return true
}
