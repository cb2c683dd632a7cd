package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocateMonthBlock_BareAbbreviation(t *testing.T) {
	rows := [][]string{
		{"Timesheet"},
		{""},
		{"NOV", "", "", "09:15"},
	}

	row, found := LocateMonthBlock(rows, 2025, time.November)
	assert.True(t, found)
	assert.Equal(t, 2, row)
}

func TestLocateMonthBlock_MonthYearTolerance(t *testing.T) {
	rows := [][]string{{"NOV-24"}}

	// One year of labeling drift is tolerated in either direction
	_, found := LocateMonthBlock(rows, 2024, time.November)
	assert.True(t, found)
	_, found = LocateMonthBlock(rows, 2025, time.November)
	assert.True(t, found)
	_, found = LocateMonthBlock(rows, 2023, time.November)
	assert.True(t, found)

	_, found = LocateMonthBlock(rows, 2027, time.November)
	assert.False(t, found)

	_, found = LocateMonthBlock([][]string{{"NOV-26"}}, 2025, time.November)
	assert.True(t, found)
}

func TestLocateMonthBlock_ISODate(t *testing.T) {
	rows := [][]string{{"2025-11-01 00:00:00"}}

	row, found := LocateMonthBlock(rows, 2025, time.November)
	assert.True(t, found)
	assert.Equal(t, 0, row)

	_, found = LocateMonthBlock([][]string{{"2025-10-01 00:00:00"}}, 2025, time.November)
	assert.False(t, found)
}

func TestLocateMonthBlock_FirstCandidateWins(t *testing.T) {
	rows := [][]string{
		{"NOV-25"},
		{""},
		{""},
		{""},
		{"NOV"},
	}

	row, found := LocateMonthBlock(rows, 2025, time.November)
	assert.True(t, found)
	assert.Equal(t, 0, row)
}

func TestLocateMonthBlock_NoMatch(t *testing.T) {
	rows := [][]string{
		{"DEC"},
		{"OCT-25"},
		{"random text"},
	}

	_, found := LocateMonthBlock(rows, 2025, time.November)
	assert.False(t, found)
}

func TestLocateMonthBlock_WrongMonthAbbreviation(t *testing.T) {
	_, found := LocateMonthBlock([][]string{{"DEC-25"}}, 2025, time.November)
	assert.False(t, found)
}
