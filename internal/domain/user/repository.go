package user

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
	ListEmployees(ctx context.Context) ([]User, error)

	// OTP storage for the password reset flow
	CreateOTP(ctx context.Context, email, code string, expiresAt time.Time) error
	VerifyOTP(ctx context.Context, email, code string) (bool, error)
	MarkOTPUsed(ctx context.Context, email, code string) error
}
