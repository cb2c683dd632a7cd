package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/user"
)

type fakeUserRepo struct {
	employees []user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return nil
}

func (f *fakeUserRepo) ListEmployees(ctx context.Context) ([]user.User, error) {
	return f.employees, nil
}

func (f *fakeUserRepo) CreateOTP(ctx context.Context, email, code string, expiresAt time.Time) error {
	return nil
}

func (f *fakeUserRepo) VerifyOTP(ctx context.Context, email, code string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) MarkOTPUsed(ctx context.Context, email, code string) error {
	return nil
}

func TestListEmployees(t *testing.T) {
	repo := &fakeUserRepo{
		employees: []user.User{
			{
				ID:           "u-1",
				Email:        "rajkumar@balarbuilders.com",
				Name:         "Raj Kumar",
				PasswordHash: "hash",
				Role:         user.RoleEmployee,
			},
		},
	}
	svc := NewUserService(repo)

	accounts, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	assert.Equal(t, "Raj Kumar", accounts[0].Name)
	assert.Equal(t, "rajkumar@balarbuilders.com", accounts[0].Email)
	assert.Equal(t, string(user.RoleEmployee), accounts[0].Role)
}

func TestListEmployees_Empty(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	accounts, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}
