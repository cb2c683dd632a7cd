package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/user"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, name, password_hash, role, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, name, password_hash, role, is_admin, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.Email,
		newUser.Name,
		newUser.PasswordHash,
		newUser.Role,
		newUser.IsAdmin,
	).Scan(
		&created.ID,
		&created.Email,
		&created.Name,
		&created.PasswordHash,
		&created.Role,
		&created.IsAdmin,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, name, password_hash, role, is_admin, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID,
		&found.Email,
		&found.Name,
		&found.PasswordHash,
		&found.Role,
		&found.IsAdmin,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return found, nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE email = $2
	`

	tag, err := q.Exec(ctx, query, passwordHash, email)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// ListEmployees implements user.UserRepository.
func (r *userRepositoryImpl) ListEmployees(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, name, password_hash, role, is_admin, created_at, updated_at
		FROM users
		WHERE is_admin = FALSE
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID, &u.Email, &u.Name, &u.PasswordHash,
			&u.Role, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// CreateOTP implements user.UserRepository. An employee has at most one
// live reset code: issuing a new one invalidates any earlier unused codes.
func (r *userRepositoryImpl) CreateOTP(ctx context.Context, email, code string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM password_reset_otps WHERE email = $1 AND used = FALSE`, email); err != nil {
		return fmt.Errorf("failed to clear previous reset codes: %w", err)
	}

	query := `
		INSERT INTO password_reset_otps (email, code, expires_at, used)
		VALUES ($1, $2, $3, FALSE)
	`

	if _, err := q.Exec(ctx, query, email, code, expiresAt); err != nil {
		return fmt.Errorf("failed to create reset code: %w", err)
	}

	return nil
}

// VerifyOTP implements user.UserRepository.
func (r *userRepositoryImpl) VerifyOTP(ctx context.Context, email, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM password_reset_otps
			WHERE email = $1 AND code = $2 AND used = FALSE AND expires_at > NOW()
		)
	`

	var valid bool
	if err := q.QueryRow(ctx, query, email, code).Scan(&valid); err != nil {
		return false, fmt.Errorf("failed to verify reset code: %w", err)
	}

	return valid, nil
}

// MarkOTPUsed implements user.UserRepository.
func (r *userRepositoryImpl) MarkOTPUsed(ctx context.Context, email, code string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE password_reset_otps
		SET used = TRUE
		WHERE email = $1 AND code = $2
	`

	if _, err := q.Exec(ctx, query, email, code); err != nil {
		return fmt.Errorf("failed to mark reset code used: %w", err)
	}

	return nil
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}
