package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse/timeclock-backend-go/internal/domain/auth"
	"github.com/workpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/workpulse/timeclock-backend-go/internal/handler/http/response"
)

func accessLevel(r *http.Request) (employee.AccessLevel, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	level, ok := claims["access_level"].(string)
	if !ok {
		return "", auth.ErrInvalidToken
	}

	return employee.AccessLevel(level), nil
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level, err := accessLevel(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if level != employee.AccessLevelAdmin {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func TeamLeaderOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level, err := accessLevel(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if level != employee.AccessLevelAdmin && level != employee.AccessLevelTeamLeader {
			response.Forbidden(w, "Team leader or admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
