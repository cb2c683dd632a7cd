package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmployeeEmail derives the login email for an employee auto-provisioned
// from a timesheet sheet name: "Pramod Dubey" -> "pramoddubey@<domain>".
// The temporary-staff tag, if present, is stripped first.
func EmployeeEmail(fullName, domain string) string {
	name := strings.TrimSpace(fullName)
	if i := strings.Index(name, "("); i > 0 {
		name = strings.TrimSpace(name[:i])
	}
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, ".", "")
	return name + "@" + domain
}

type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    string(u.Role),
		IsAdmin: u.IsAdmin,
	}
}
