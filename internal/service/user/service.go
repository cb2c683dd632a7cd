package user

import (
	"context"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/user"
)

type UserServiceImpl struct {
	users user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{users: userRepository}
}

// ListEmployees implements user.UserService.
func (s *UserServiceImpl) ListEmployees(ctx context.Context) ([]user.UserResponse, error) {
	employees, err := s.users.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(employees))
	for _, u := range employees {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}
