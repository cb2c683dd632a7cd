package user

import "context"

type UserService interface {
	// ListEmployees returns every provisioned non-admin portal account.
	ListEmployees(ctx context.Context) ([]UserResponse, error)
}
