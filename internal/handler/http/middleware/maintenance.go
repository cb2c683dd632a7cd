package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/handler/http/response"
	"github.com/sachinbalarbuilders-hue/attendance-portal/internal/pkg/maintenance"
)

// MaintenanceGuard returns 503 for employee traffic while the flag file
// exists. Admins keep access so they can finish the work and toggle the
// portal back on.
func MaintenanceGuard(toggle *maintenance.Toggle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !toggle.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			_, claims, err := jwtauth.FromContext(r.Context())
			if err == nil {
				if admin, ok := claims["is_admin"].(bool); ok && admin {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.ServiceUnavailable(w, "The portal is under maintenance, please try again later")
		})
	}
}
