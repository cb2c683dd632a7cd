package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newTestWorkbook builds a workbook, round-trips it through the xlsx
// encoder, and reopens it so styles and comments are read the same way
// they would be from an uploaded file.
func newTestWorkbook(t *testing.T, build func(f *excelize.File)) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	build(f)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	reopened, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })
	return reopened
}

func cellName(t *testing.T, row0, col0 int) string {
	t.Helper()
	cell, err := excelize.CoordinatesToCellName(col0+1, row0+1)
	require.NoError(t, err)
	return cell
}

// writeDay fills one day column of a month block: punch-in on the header
// row, punch-out one below, status two below. Day columns start at data
// column day+2.
func writeDay(t *testing.T, f *excelize.File, sheet string, headerRow, day int, punchIn, punchOut interface{}, status string) {
	t.Helper()
	col := day + 2
	if punchIn != nil {
		require.NoError(t, f.SetCellValue(sheet, cellName(t, headerRow, col), punchIn))
	}
	if punchOut != nil {
		require.NoError(t, f.SetCellValue(sheet, cellName(t, headerRow+1, col), punchOut))
	}
	if status != "" {
		require.NoError(t, f.SetCellValue(sheet, cellName(t, headerRow+2, col), status))
	}
}

var november3 = time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)

func TestProcessFile_SuppressingStatusBlanksPunches(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Raj Kumar")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Raj Kumar", "A6", "NOV-25"))
		writeDay(t, f, "Raj Kumar", 5, 1, "09:10", "18:30", "P")
		writeDay(t, f, "Raj Kumar", 5, 2, "09:20", "18:10", "P")
		writeDay(t, f, "Raj Kumar", 5, 3, "09:15", nil, "A")
	})

	p := NewProcessor(Options{})
	records, stats, err := p.ProcessFile(f, november3)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.SheetsProcessed)
	require.Len(t, records, 3)

	day3 := records[2]
	assert.Equal(t, "Raj Kumar", day3.Employee)
	assert.Equal(t, time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC), day3.Date)
	assert.Equal(t, "A", day3.Status)
	assert.Empty(t, day3.PunchIn)
	assert.Empty(t, day3.PunchOut)

	day1 := records[0]
	assert.Equal(t, "09:10", day1.PunchIn)
	assert.Equal(t, "18:30", day1.PunchOut)
	assert.Equal(t, "P", day1.Status)
}

func TestProcessFile_BlankEmployeeRoster(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Bhavin Patel")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Bhavin Patel", "A1", "NOV"))
		writeDay(t, f, "Bhavin Patel", 0, 1, "09:10", "18:30", "P")
	})

	p := NewProcessor(Options{BlankEmployees: []string{"Bhavin Patel"}})
	records, _, err := p.ProcessFile(f, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Present status, punch data in the cells: roster membership still blanks both
	assert.Equal(t, "P", records[0].Status)
	assert.Empty(t, records[0].PunchIn)
	assert.Empty(t, records[0].PunchOut)
}

func TestProcessFile_SinglePunchTieBreak(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Asha Mehta")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Asha Mehta", "A6", "NOV-25"))
		// Afternoon reading: treated as punch-out, punch-in flagged missing
		writeDay(t, f, "Asha Mehta", 5, 1, "14:05", nil, "P")
		// Morning reading: treated as punch-in, punch-out flagged missing
		writeDay(t, f, "Asha Mehta", 5, 2, "09:05", nil, "P")
		// Reading in the punch-out row still tie-breaks by hour
		writeDay(t, f, "Asha Mehta", 5, 3, nil, "08:40", "P")
	})

	p := NewProcessor(Options{})
	records, _, err := p.ProcessFile(f, november3)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, MissingMarker, records[0].PunchIn)
	assert.Equal(t, "14:05", records[0].PunchOut)

	assert.Equal(t, "09:05", records[1].PunchIn)
	assert.Equal(t, MissingMarker, records[1].PunchOut)

	assert.Equal(t, "08:40", records[2].PunchIn)
	assert.Equal(t, MissingMarker, records[2].PunchOut)
}

func TestProcessFile_NoPunchesPresent(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Asha Mehta")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Asha Mehta", "A6", "NOV-25"))
		writeDay(t, f, "Asha Mehta", 5, 1, nil, nil, "P")
		// Unknown status defaults to the non-suppressing policy
		writeDay(t, f, "Asha Mehta", 5, 2, nil, nil, "XYZ")
	})

	p := NewProcessor(Options{})
	records, _, err := p.ProcessFile(f, time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, rec := range records {
		assert.Equal(t, MissingMarker, rec.PunchIn)
		assert.Equal(t, MissingMarker, rec.PunchOut)
	}
}

func TestProcessFile_NumericSerialPunch(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Asha Mehta")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Asha Mehta", "A6", "NOV-25"))
		writeDay(t, f, "Asha Mehta", 5, 1, 0.385416666666667, 0.770833333333333, "P")
	})

	p := NewProcessor(Options{})
	records, _, err := p.ProcessFile(f, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "09:15", records[0].PunchIn)
	assert.Equal(t, "18:30", records[0].PunchOut)
}

func TestProcessFile_HalfDayPolicyConfigurable(t *testing.T) {
	build := func(f *excelize.File) {
		_, err := f.NewSheet("Asha Mehta")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Asha Mehta", "A6", "NOV-25"))
		writeDay(t, f, "Asha Mehta", 5, 1, "09:15", nil, "HF")
	}
	selected := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	// Default: half days always show punches, missing marker included
	records, _, err := NewProcessor(Options{}).ProcessFile(newTestWorkbook(t, build), selected)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "09:15", records[0].PunchIn)
	assert.Equal(t, MissingMarker, records[0].PunchOut)

	// Suppression configured: half days behave like leave codes
	records, _, err = NewProcessor(Options{SuppressHalfDayPunches: true}).ProcessFile(newTestWorkbook(t, build), selected)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].PunchIn)
	assert.Empty(t, records[0].PunchOut)
}

func TestProcessFile_DayColumnBeyondSheetWidth(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Asha Mehta")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Asha Mehta", "A6", "NOV-25"))
		writeDay(t, f, "Asha Mehta", 5, 1, "09:10", "18:30", "P")
		// Days 2 and 3 have no columns at all
	})

	p := NewProcessor(Options{})
	records, _, err := p.ProcessFile(f, november3)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestProcessFile_HiddenSheetSkipped(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		for _, sheet := range []string{"Raj Kumar", "Template"} {
			_, err := f.NewSheet(sheet)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, "A6", "NOV-25"))
			writeDay(t, f, sheet, 5, 1, "09:10", "18:30", "P")
		}
		require.NoError(t, f.SetSheetVisible("Template", false))
	})

	p := NewProcessor(Options{})
	records, stats, err := p.ProcessFile(f, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Raj Kumar", records[0].Employee)
	assert.Equal(t, 1, stats.SheetsProcessed)
	assert.Equal(t, 1, stats.SheetsSkipped)
}

func TestProcessFile_NoMonthBlockIsNotAnError(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Raj Kumar")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Raj Kumar", "A6", "OCT-25"))
		writeDay(t, f, "Raj Kumar", 5, 1, "09:10", "18:30", "P")
	})

	p := NewProcessor(Options{})
	records, stats, err := p.ProcessFile(f, november3)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, stats.SheetsProcessed)
	assert.Equal(t, 1, stats.SheetsSkipped)
}

func TestProcessFile_TimeRangeAttached(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Raj Kumar")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Raj Kumar", "A2", "08:30 AM to 07:00 PM"))
		require.NoError(t, f.SetCellValue("Raj Kumar", "A6", "NOV-25"))
		writeDay(t, f, "Raj Kumar", 5, 1, "09:10", "18:30", "P")
	})

	p := NewProcessor(Options{})
	records, _, err := p.ProcessFile(f, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "08:30 AM to 07:00 PM", records[0].TimeRange)
}

func TestProcessFile_HighlightsAndComments(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Raj Kumar")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Raj Kumar", "A6", "NOV-25"))
		writeDay(t, f, "Raj Kumar", 5, 1, "09:10", "18:30", "P")

		redStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "FF0000"}})
		require.NoError(t, err)
		// Punch-in cell for day 1 sits on the header row, data column 3
		pinCell := cellName(t, 5, 3)
		require.NoError(t, f.SetCellStyle("Raj Kumar", pinCell, pinCell, redStyle))
		require.NoError(t, f.AddComment("Raj Kumar", excelize.Comment{
			Cell:      pinCell,
			Author:    "HR",
			Paragraph: []excelize.RichTextRun{{Text: "verify with site log"}},
		}))
	})

	p := NewProcessor(Options{})
	records, _, err := p.ProcessFile(f, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.True(t, records[0].PunchInHighlight)
	assert.Equal(t, "verify with site log", records[0].PunchInComment)
	assert.False(t, records[0].PunchOutHighlight)
	assert.False(t, records[0].StatusHighlight)
}

func TestProcessFile_Idempotent(t *testing.T) {
	f := newTestWorkbook(t, func(f *excelize.File) {
		_, err := f.NewSheet("Raj Kumar")
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Raj Kumar", "A6", "NOV-25"))
		writeDay(t, f, "Raj Kumar", 5, 1, "09:10", "18:30", "P")
		writeDay(t, f, "Raj Kumar", 5, 2, "14:05", nil, "P")
		writeDay(t, f, "Raj Kumar", 5, 3, nil, nil, "A")
	})

	p := NewProcessor(Options{})
	first, _, err := p.ProcessFile(f, november3)
	require.NoError(t, err)
	second, _, err := p.ProcessFile(f, november3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
