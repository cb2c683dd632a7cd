package leave

import (
	"encoding/json"
	"strconv"
)

// Counter is one cumulative leave total. Employees tagged as temporary
// are not eligible for Personal/Sick Leave accrual; their counters carry
// the N/A marker instead of a number.
type Counter struct {
	Days     float64
	Eligible bool
}

// NewCounter constructs an eligible counter.
func NewCounter(days float64) Counter {
	return Counter{Days: days, Eligible: true}
}

// NotEligible is the ineligibility marker counter.
func NotEligible() Counter {
	return Counter{Eligible: false}
}

func (c Counter) String() string {
	if !c.Eligible {
		return "N/A"
	}
	return strconv.FormatFloat(c.Days, 'f', -1, 64)
}

func (c Counter) MarshalJSON() ([]byte, error) {
	if !c.Eligible {
		return json.Marshal("N/A")
	}
	return json.Marshal(c.Days)
}

// Totals holds the cumulative leave counters for one employee, recomputed
// wholesale from each uploaded file.
type Totals struct {
	Employee      string  `json:"employee"`
	WeekOff       Counter `json:"wo"`
	PersonalLeave Counter `json:"pl"`
	SickLeave     Counter `json:"sl"`
	FestivalLeave Counter `json:"fl"`
	FileName      string  `json:"file_name,omitempty"`
}
