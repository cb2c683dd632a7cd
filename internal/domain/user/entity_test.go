package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeEmail(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     string
	}{
		{"simple name", "Pramod Dubey", "pramoddubey@balarbuilders.com"},
		{"temporary staff tag stripped", "Priya Sharma (T)", "priyasharma@balarbuilders.com"},
		{"dots removed", "A. K. Verma", "akverma@balarbuilders.com"},
		{"surrounding whitespace", "  Raj Kumar  ", "rajkumar@balarbuilders.com"},
		{"already lowercase", "asha mehta", "ashamehta@balarbuilders.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EmployeeEmail(tt.fullName, "balarbuilders.com"))
		})
	}
}
