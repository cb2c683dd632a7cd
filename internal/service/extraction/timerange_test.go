package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTimeRange_DesignatedCell(t *testing.T) {
	rows := [][]string{
		{"Timesheet"},
		{"08:30 AM to 07:00 PM"},
	}

	got, found := ExtractTimeRange(rows)
	assert.True(t, found)
	assert.Equal(t, "08:30 AM to 07:00 PM", got)
}

func TestExtractTimeRange_HeaderScanFallback(t *testing.T) {
	rows := [][]string{
		{"Timesheet", "", "9 to 6"},
	}

	got, found := ExtractTimeRange(rows)
	assert.True(t, found)
	assert.Equal(t, "9 to 6", got)
}

func TestExtractTimeRange_NotFound(t *testing.T) {
	rows := [][]string{
		{"Timesheet", "November"},
		{"Employee"},
	}

	got, found := ExtractTimeRange(rows)
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestExtractTimeRange_ScanBounds(t *testing.T) {
	// A shift window outside the 5x3 header region is not picked up
	rows := [][]string{
		{}, {}, {}, {}, {},
		{"08:30 AM to 07:00 PM"},
	}

	_, found := ExtractTimeRange(rows)
	assert.False(t, found)
}

func TestLooksLikeTimeRange(t *testing.T) {
	assert.True(t, looksLikeTimeRange("08:30 AM to 07:00 PM"))
	assert.True(t, looksLikeTimeRange("8.30 am"))
	assert.True(t, looksLikeTimeRange("9:00-18:00"))
	assert.True(t, looksLikeTimeRange("nine to six"))
	assert.False(t, looksLikeTimeRange("total"))
	assert.False(t, looksLikeTimeRange(""))
	assert.False(t, looksLikeTimeRange("November"))
}
