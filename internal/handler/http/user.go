package http

import (
	"log/slog"
	"net/http"

	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/domain/user"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/handler/http/response"
)

type UserHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// ListEmployees implements UserHandler. Admin only, enforced by the
// router; returns the provisioned accounts rather than the ledger names.
func (h *UserHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.userService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, accounts)
}
