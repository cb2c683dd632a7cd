package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/auth"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/user"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/email"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/jwt"
)

const otpValidity = 10 * time.Minute

type AuthServiceImpl struct {
	users user.UserRepository
	jwt   jwt.Service
	email email.EmailService
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, emailService email.EmailService) auth.AuthService {
	return &AuthServiceImpl{
		users: userRepository,
		jwt:   jwtService,
		email: emailService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwt.GenerateAccessToken(userData)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user.ToResponse(userData),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	a.jwt.RevokeToken(token)
	return nil
}

// ForgotPassword implements auth.AuthService. An unknown email gets the
// same nil response as a known one so the endpoint cannot be used to
// enumerate accounts.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			slog.Info("password reset requested for unknown email", "email", req.Email)
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	expiresAt := time.Now().Add(otpValidity)
	if err := a.users.CreateOTP(ctx, userData.Email, otp, expiresAt); err != nil {
		return err
	}

	if err := a.email.SendPasswordResetOTP(userData.Email, userData.Name, otp, expiresAt.Format("3:04 PM")); err != nil {
		return fmt.Errorf("failed to send reset code: %w", err)
	}

	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	valid, err := a.users.VerifyOTP(ctx, req.Email, req.OTP)
	if err != nil {
		return err
	}
	if !valid {
		return auth.ErrInvalidOTP
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.users.UpdatePassword(ctx, req.Email, string(hash)); err != nil {
		return err
	}

	return a.users.MarkOTPUsed(ctx, req.Email, req.OTP)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
